package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card is an item inside a column. BoardID duplicates the owning column's board so
// cards can be fetched per board without going through columns.
type Card struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	BoardID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_cards_board_id" json:"boardId"`
	ColumnID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_cards_column_id" json:"columnId"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Cover       *string    `gorm:"type:text" json:"cover"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
	Destroyed   bool       `gorm:"not null;default:false" json:"destroyed"`
}

// TableName specifies the table name for Card
func (Card) TableName() string {
	return "cards"
}

// BeforeCreate fills the id and creation time when unset
func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return nil
}
