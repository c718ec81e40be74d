package service

import (
	"context"

	"github.com/google/uuid"

	"kanban-board-api/internal/cache"
	"kanban-board-api/internal/domain"
)

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateNewFunc      func(ctx context.Context, board *domain.Board) (uuid.UUID, error)
	FindOneByIDFunc    func(ctx context.Context, id string) (*domain.Board, error)
	GetAllBoardsFunc   func(ctx context.Context) ([]domain.Board, error)
	GetBoardDetailFunc func(ctx context.Context, id string) (*domain.BoardDetail, bool, error)
}

func (m *MockBoardRepository) CreateNew(ctx context.Context, board *domain.Board) (uuid.UUID, error) {
	if m.CreateNewFunc != nil {
		return m.CreateNewFunc(ctx, board)
	}
	return uuid.New(), nil
}

func (m *MockBoardRepository) FindOneByID(ctx context.Context, id string) (*domain.Board, error) {
	if m.FindOneByIDFunc != nil {
		return m.FindOneByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) GetAllBoards(ctx context.Context) ([]domain.Board, error) {
	if m.GetAllBoardsFunc != nil {
		return m.GetAllBoardsFunc(ctx)
	}
	return []domain.Board{}, nil
}

func (m *MockBoardRepository) GetBoardDetail(ctx context.Context, id string) (*domain.BoardDetail, bool, error) {
	if m.GetBoardDetailFunc != nil {
		return m.GetBoardDetailFunc(ctx, id)
	}
	return nil, false, nil
}

// MockBoardListCache is an in-memory BoardListCache keyed by generation
type MockBoardListCache struct {
	boards      []domain.Board
	present     bool
	generation  cache.Generation
	Gets        int
	Sets        int
	Invalidates int
}

func (m *MockBoardListCache) GetBoards(ctx context.Context) ([]domain.Board, cache.Generation, bool) {
	m.Gets++
	return m.boards, m.generation, m.present
}

func (m *MockBoardListCache) SetBoards(ctx context.Context, generation cache.Generation, boards []domain.Board) {
	m.Sets++
	if generation != m.generation {
		return
	}
	m.boards = boards
	m.present = true
}

func (m *MockBoardListCache) Invalidate(ctx context.Context) {
	m.Invalidates++
	m.generation++
	m.boards = nil
	m.present = false
}
