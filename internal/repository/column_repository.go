package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// ColumnRepository defines the interface for column data access
type ColumnRepository interface {
	Create(ctx context.Context, column *domain.Column) error
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]domain.Column, error)
}

type columnRepositoryImpl struct {
	db *gorm.DB
}

// NewColumnRepository creates a new instance of ColumnRepository
func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &columnRepositoryImpl{db: db}
}

// Create inserts a column. The owning board is not checked.
func (r *columnRepositoryImpl) Create(ctx context.Context, column *domain.Column) error {
	if err := r.db.WithContext(ctx).Create(column).Error; err != nil {
		return persistenceError("create column", err)
	}
	return nil
}

// FindByBoardID returns every column referencing the board, oldest first
func (r *columnRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]domain.Column, error) {
	columns := []domain.Column{}
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC, id ASC").
		Find(&columns).Error; err != nil {
		return nil, persistenceError("find columns", err)
	}
	return columns, nil
}
