package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"kanban-board-api/internal/domain"
)

const (
	TitleMinLength       = 5
	TitleMaxLength       = 50
	SlugMinLength        = 5
	DescriptionMinLength = 5
	DescriptionMaxLength = 256
)

// Rule names reported in FieldError.Rule
const (
	RuleRequired = "required"
	RuleString   = "string"
	RuleMin      = "min"
	RuleMax      = "max"
	RuleTrimmed  = "trimmed"
	RuleOneOf    = "oneof"
	RuleUnknown  = "unknown"
	RuleUnique   = "unique"
)

type rule struct {
	name    string
	tag     string
	message string
}

type fieldSchema struct {
	name  string
	label string
	rules []rule
}

type objectSchema struct {
	fields       []fieldSchema
	allowUnknown bool
}

func stringField(name, label string, min, max int) fieldSchema {
	rules := []rule{
		{RuleMin, fmt.Sprintf("min=%d", min), fmt.Sprintf("%s must be at least %d characters", label, min)},
	}
	if max > 0 {
		rules = append(rules, rule{RuleMax, fmt.Sprintf("max=%d", max), fmt.Sprintf("%s must be at most %d characters", label, max)})
	}
	rules = append(rules, rule{RuleTrimmed, "trimmed", label + " must not have leading or trailing whitespace"})
	return fieldSchema{name: name, label: label, rules: rules}
}

func typeField() fieldSchema {
	names := make([]string, 0, len(domain.BoardTypes))
	for _, t := range domain.BoardTypes {
		names = append(names, string(t))
	}
	return fieldSchema{
		name:  "type",
		label: "Type",
		rules: []rule{
			{RuleOneOf, "oneof=" + strings.Join(names, " "), "Type must be either " + strings.Join(names, " or ")},
		},
	}
}

// boardCreationSchema is the shape accepted from clients on board creation
var boardCreationSchema = objectSchema{
	fields: []fieldSchema{
		stringField("title", "Title", TitleMinLength, TitleMaxLength),
		stringField("description", "Description", DescriptionMinLength, DescriptionMaxLength),
		typeField(),
	},
}

// boardRecordSchema is what every stored board row must satisfy
var boardRecordSchema = objectSchema{
	fields: []fieldSchema{
		stringField("title", "Title", TitleMinLength, TitleMaxLength),
		stringField("slug", "Slug", SlugMinLength, 0),
		stringField("description", "Description", DescriptionMinLength, DescriptionMaxLength),
		typeField(),
	},
	allowUnknown: true,
}

// Engine validates board payloads against declarative schemas. It never stops at
// the first violation: every field and every rule is evaluated.
type Engine struct {
	validate *validator.Validate
	now      func() time.Time
}

// New creates an Engine that stamps creation times with the wall clock
func New() *Engine {
	return NewWithClock(time.Now)
}

// NewWithClock creates an Engine with a custom clock
func NewWithClock(now func() time.Time) *Engine {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("trimmed", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == strings.TrimSpace(s)
	})
	return &Engine{validate: v, now: now}
}

// ValidateBoardCreation checks a raw creation request ({title, description, type})
// and returns a board carrying the schema defaults: empty column order, CreatedAt now,
// no UpdatedAt, not destroyed. The slug is not part of the request and stays empty.
func (e *Engine) ValidateBoardCreation(raw map[string]any) (*domain.Board, error) {
	if errs := e.check(boardCreationSchema, raw); len(errs) > 0 {
		return nil, &Failure{Errors: errs}
	}

	return &domain.Board{
		Title:          raw["title"].(string),
		Description:    raw["description"].(string),
		Type:           domain.BoardType(raw["type"].(string)),
		ColumnOrderIDs: domain.IDList{},
		CreatedAt:      e.now().UTC(),
		UpdatedAt:      nil,
		Destroyed:      false,
	}, nil
}

// ValidateBoardRecord checks a board right before it is written
func (e *Engine) ValidateBoardRecord(board *domain.Board) error {
	if board == nil {
		return &Failure{Errors: []FieldError{{Field: "board", Rule: RuleRequired, Message: "Board is required"}}}
	}

	errs := e.check(boardRecordSchema, map[string]any{
		"title":       board.Title,
		"slug":        board.Slug,
		"description": board.Description,
		"type":        string(board.Type),
	})

	if _, err := domain.NewIDList(board.ColumnOrderIDs); err != nil {
		errs = append(errs, FieldError{Field: "columnOrderIds", Rule: RuleUnique, Message: "Column order must not contain duplicate ids"})
	}
	if board.CreatedAt.IsZero() {
		errs = append(errs, FieldError{Field: "createdAt", Rule: RuleRequired, Message: "Created at is required"})
	}

	if len(errs) > 0 {
		return &Failure{Errors: errs}
	}
	return nil
}

func (e *Engine) check(schema objectSchema, raw map[string]any) []FieldError {
	var errs []FieldError

	for _, f := range schema.fields {
		value, present := raw[f.name]
		if !present || value == nil {
			errs = append(errs, FieldError{Field: f.name, Rule: RuleRequired, Message: f.label + " is required"})
			continue
		}
		s, ok := value.(string)
		if !ok {
			errs = append(errs, FieldError{Field: f.name, Rule: RuleString, Message: f.label + " must be a string"})
			continue
		}
		if s == "" {
			errs = append(errs, FieldError{Field: f.name, Rule: RuleRequired, Message: f.label + " is required"})
			continue
		}
		for _, r := range f.rules {
			if err := e.validate.Var(s, r.tag); err != nil {
				errs = append(errs, FieldError{Field: f.name, Rule: r.name, Message: r.message})
			}
		}
	}

	if !schema.allowUnknown {
		known := make(map[string]struct{}, len(schema.fields))
		for _, f := range schema.fields {
			known[f.name] = struct{}{}
		}
		var unknown []string
		for key := range raw {
			if _, ok := known[key]; !ok {
				unknown = append(unknown, key)
			}
		}
		sort.Strings(unknown)
		for _, key := range unknown {
			errs = append(errs, FieldError{Field: key, Rule: RuleUnknown, Message: fmt.Sprintf("%q is not allowed", key)})
		}
	}

	return errs
}
