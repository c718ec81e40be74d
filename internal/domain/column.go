package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Column is a list on a board. BoardID is an application-level foreign key:
// the store does not enforce that the board exists.
type Column struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	BoardID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_board_columns_board_id" json:"boardId"`
	Title        string     `gorm:"type:varchar(50);not null" json:"title"`
	CardOrderIDs IDList     `json:"cardOrderIds"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
	Destroyed    bool       `gorm:"not null;default:false" json:"destroyed"`
}

// TableName specifies the table name for Column
func (Column) TableName() string {
	return "board_columns"
}

// BeforeCreate fills the id, creation time and card order when unset
func (c *Column) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.CardOrderIDs == nil {
		c.CardOrderIDs = IDList{}
	}
	return nil
}
