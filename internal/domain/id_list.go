package domain

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

var (
	// ErrDuplicateID is returned when an ordered id list names the same id twice
	ErrDuplicateID = errors.New("duplicate id in ordered list")
	// ErrUnknownID is returned when an ordered id list names an id outside the allowed set
	ErrUnknownID = errors.New("id does not belong to the allowed set")
)

// IDList is an ordered list of identifiers, e.g. a board's column display order.
// Position in the list is meaningful. It is persisted as a JSON array.
type IDList []uuid.UUID

// NewIDList builds an ordered list, rejecting duplicates. When known is not empty,
// every id must also appear in known.
func NewIDList(ids []uuid.UUID, known ...uuid.UUID) (IDList, error) {
	allowed := make(map[uuid.UUID]struct{}, len(known))
	for _, id := range known {
		allowed[id] = struct{}{}
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	list := make(IDList, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		if len(allowed) > 0 {
			if _, ok := allowed[id]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownID, id)
			}
		}
		seen[id] = struct{}{}
		list = append(list, id)
	}
	return list, nil
}

// Contains reports whether id is in the list
func (l IDList) Contains(id uuid.UUID) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Missing returns the ids of the list, in list order, that are not in known
func (l IDList) Missing(known []uuid.UUID) []uuid.UUID {
	set := make(map[uuid.UUID]struct{}, len(known))
	for _, id := range known {
		set[id] = struct{}{}
	}
	var missing []uuid.UUID
	for _, id := range l {
		if _, ok := set[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// MarshalJSON encodes a nil list as [] so clients never see null
func (l IDList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]uuid.UUID(l))
}

func (l IDList) slice() datatypes.JSONSlice[uuid.UUID] {
	if l == nil {
		return datatypes.JSONSlice[uuid.UUID]{}
	}
	return datatypes.JSONSlice[uuid.UUID](l)
}

// Value implements driver.Valuer
func (l IDList) Value() (driver.Value, error) {
	return l.slice().Value()
}

// GormValue keeps the encoded array a string so SQLite stores TEXT rather than BLOB
func (l IDList) GormValue(ctx context.Context, db *gorm.DB) clause.Expr {
	return l.slice().GormValue(ctx, db)
}

// Scan implements sql.Scanner. NULL scans to an empty list.
func (l *IDList) Scan(value interface{}) error {
	if value == nil {
		*l = IDList{}
		return nil
	}
	var s datatypes.JSONSlice[uuid.UUID]
	if err := s.Scan(value); err != nil {
		return fmt.Errorf("scan id list: %w", err)
	}
	if s == nil {
		*l = IDList{}
		return nil
	}
	*l = IDList(s)
	return nil
}

// GormDataType gorm common data type
func (IDList) GormDataType() string {
	return datatypes.JSONSlice[uuid.UUID]{}.GormDataType()
}

// GormDBDataType gorm db data type
func (IDList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return datatypes.JSONSlice[uuid.UUID]{}.GormDBDataType(db, field)
}
