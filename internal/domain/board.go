package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardType is the visibility of a board
type BoardType string

const (
	BoardTypePublic  BoardType = "PUBLIC"
	BoardTypePrivate BoardType = "PRIVATE"
)

// BoardTypes lists every accepted board type, in display order
var BoardTypes = []BoardType{BoardTypePublic, BoardTypePrivate}

// Valid reports whether t is one of the accepted board types (case-sensitive)
func (t BoardType) Valid() bool {
	for _, bt := range BoardTypes {
		if t == bt {
			return true
		}
	}
	return false
}

// Board represents a kanban board. Columns and cards reference it through BoardID.
type Board struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string     `gorm:"type:varchar(50);not null" json:"title"`
	Slug           string     `gorm:"type:varchar(255);not null;index:idx_boards_slug" json:"slug"`
	Description    string     `gorm:"type:varchar(256);not null" json:"description"`
	Type           BoardType  `gorm:"type:varchar(20);not null" json:"type"`
	ColumnOrderIDs IDList     `json:"columnOrderIds"`
	CreatedAt      time.Time  `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt      *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
	Destroyed      bool       `gorm:"not null;default:false;index:idx_boards_destroyed" json:"destroyed"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}

// BeforeCreate assigns the identifier so every dialect gets the same id format
func (b *Board) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.ColumnOrderIDs == nil {
		b.ColumnOrderIDs = IDList{}
	}
	return nil
}

// ParseID parses a board identifier. Anything that is not a canonical UUID is rejected.
func ParseID(raw string) (uuid.UUID, error) {
	if len(raw) != 36 {
		return uuid.Nil, fmt.Errorf("parse id %q: expected 36 characters, got %d", raw, len(raw))
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse id %q: %w", raw, err)
	}
	return id, nil
}
