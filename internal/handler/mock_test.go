package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/middleware"
)

// MockBoardService is a mock implementation of BoardService
type MockBoardService struct {
	CreateNewFunc      func(ctx context.Context, raw map[string]any) (uuid.UUID, error)
	GetAllBoardsFunc   func(ctx context.Context) ([]domain.Board, error)
	FindOneByIDFunc    func(ctx context.Context, id string) (*domain.Board, error)
	GetBoardDetailFunc func(ctx context.Context, id string) (*domain.BoardDetail, bool, error)
}

func (m *MockBoardService) CreateNew(ctx context.Context, raw map[string]any) (uuid.UUID, error) {
	if m.CreateNewFunc != nil {
		return m.CreateNewFunc(ctx, raw)
	}
	return uuid.Nil, nil
}

func (m *MockBoardService) GetAllBoards(ctx context.Context) ([]domain.Board, error) {
	if m.GetAllBoardsFunc != nil {
		return m.GetAllBoardsFunc(ctx)
	}
	return nil, nil
}

func (m *MockBoardService) FindOneByID(ctx context.Context, id string) (*domain.Board, error) {
	if m.FindOneByIDFunc != nil {
		return m.FindOneByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardService) GetBoardDetail(ctx context.Context, id string) (*domain.BoardDetail, bool, error) {
	if m.GetBoardDetailFunc != nil {
		return m.GetBoardDetailFunc(ctx, id)
	}
	return nil, false, nil
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler(zap.NewNop()))
	return router
}
