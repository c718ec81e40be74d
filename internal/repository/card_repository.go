package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// CardRepository defines the interface for card data access
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) error
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]domain.Card, error)
}

type cardRepositoryImpl struct {
	db *gorm.DB
}

// NewCardRepository creates a new instance of CardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepositoryImpl{db: db}
}

// Create inserts a card. Neither the board nor the column is checked.
func (r *cardRepositoryImpl) Create(ctx context.Context, card *domain.Card) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return persistenceError("create card", err)
	}
	return nil
}

// FindByBoardID returns every card referencing the board as one flat list, oldest first
func (r *cardRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]domain.Card, error) {
	cards := []domain.Card{}
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC, id ASC").
		Find(&cards).Error; err != nil {
		return nil, persistenceError("find cards", err)
	}
	return cards, nil
}
