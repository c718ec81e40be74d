package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/validation"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	CreateNew(ctx context.Context, board *domain.Board) (uuid.UUID, error)
	FindOneByID(ctx context.Context, id string) (*domain.Board, error)
	GetAllBoards(ctx context.Context) ([]domain.Board, error)
	GetBoardDetail(ctx context.Context, id string) (*domain.BoardDetail, bool, error)
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db        *gorm.DB
	validator *validation.Engine
	detail    *boardDetailQuery
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB, validator *validation.Engine) BoardRepository {
	if validator == nil {
		validator = validation.New()
	}
	return &boardRepositoryImpl{
		db:        db,
		validator: validator,
		detail:    newBoardDetailQuery(db.Dialector.Name()),
	}
}

// CreateNew validates the record against the stored-board schema and inserts it.
// Callers cannot bypass validation through this path.
func (r *boardRepositoryImpl) CreateNew(ctx context.Context, board *domain.Board) (uuid.UUID, error) {
	if err := r.validator.ValidateBoardRecord(board); err != nil {
		return uuid.Nil, err
	}

	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return uuid.Nil, persistenceError("create board", err)
	}
	return board.ID, nil
}

// FindOneByID returns the board with the given id, or nil when none exists.
// Destroyed boards are returned.
func (r *boardRepositoryImpl) FindOneByID(ctx context.Context, id string) (*domain.Board, error) {
	boardID, err := domain.ParseID(id)
	if err != nil {
		return nil, invalidIdentifier(err)
	}

	var board domain.Board
	if err := r.db.WithContext(ctx).
		Where("id = ?", boardID).
		First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, persistenceError("find board", err)
	}
	return &board, nil
}

// GetAllBoards returns every stored board, destroyed ones included
func (r *boardRepositoryImpl) GetAllBoards(ctx context.Context) ([]domain.Board, error) {
	boards := []domain.Board{}
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&boards).Error; err != nil {
		return nil, persistenceError("list boards", err)
	}
	return boards, nil
}

// GetBoardDetail returns the board with its columns and cards in one statement.
// found is false when no board with this id exists or the board is destroyed.
func (r *boardRepositoryImpl) GetBoardDetail(ctx context.Context, id string) (*domain.BoardDetail, bool, error) {
	boardID, err := domain.ParseID(id)
	if err != nil {
		return nil, false, invalidIdentifier(err)
	}

	detail, found, err := r.detail.run(ctx, r.db, boardID)
	if err != nil {
		return nil, false, persistenceError("get board detail", err)
	}
	return detail, found, nil
}
