package validation

import "strings"

// FieldError is a single violated rule on one field
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Failure aggregates every rule a payload violated. It is returned as an error.
type Failure struct {
	Errors []FieldError `json:"errors"`
}

// Error joins all messages the same way they are shown to clients
func (f *Failure) Error() string {
	return strings.Join(f.Messages(), ". ")
}

// Messages returns the messages in the order the rules were evaluated
func (f *Failure) Messages() []string {
	msgs := make([]string, 0, len(f.Errors))
	for _, e := range f.Errors {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Fields returns the distinct fields that failed, in evaluation order
func (f *Failure) Fields() []string {
	seen := make(map[string]struct{}, len(f.Errors))
	var fields []string
	for _, e := range f.Errors {
		if _, ok := seen[e.Field]; ok {
			continue
		}
		seen[e.Field] = struct{}{}
		fields = append(fields, e.Field)
	}
	return fields
}

// For returns the errors reported for one field
func (f *Failure) For(field string) []FieldError {
	var out []FieldError
	for _, e := range f.Errors {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}
