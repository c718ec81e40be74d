package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/cache"
	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/util"
	"kanban-board-api/internal/validation"
)

// BoardService defines the interface for board business logic
type BoardService interface {
	CreateNew(ctx context.Context, raw map[string]any) (uuid.UUID, error)
	GetAllBoards(ctx context.Context) ([]domain.Board, error)
	FindOneByID(ctx context.Context, id string) (*domain.Board, error)
	GetBoardDetail(ctx context.Context, id string) (*domain.BoardDetail, bool, error)
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo repository.BoardRepository
	validator *validation.Engine
	cache     cache.BoardListCache
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewBoardService creates a new instance of BoardService. boardCache may be nil.
func NewBoardService(
	boardRepo repository.BoardRepository,
	validator *validation.Engine,
	boardCache cache.BoardListCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	if validator == nil {
		validator = validation.New()
	}
	if boardCache == nil {
		boardCache = cache.NewBoardListCache(nil, 0, m, logger)
	}
	return &boardServiceImpl{
		boardRepo: boardRepo,
		validator: validator,
		cache:     boardCache,
		metrics:   m,
		logger:    logger,
	}
}

// CreateNew validates a creation request, derives the slug from the title and
// stores the board. It returns the new board's id.
func (s *boardServiceImpl) CreateNew(ctx context.Context, raw map[string]any) (uuid.UUID, error) {
	board, err := s.validator.ValidateBoardCreation(raw)
	if err != nil {
		s.recordValidationFailure(err)
		return uuid.Nil, err
	}

	// the id is fixed here so a short slug can borrow its prefix
	board.ID = uuid.New()
	board.Slug = deriveSlug(board.Title, board.ID)

	id, err := s.boardRepo.CreateNew(ctx, board)
	if err != nil {
		s.recordValidationFailure(err)
		s.logger.Debug("Board creation rejected", zap.Error(err))
		return uuid.Nil, err
	}

	s.cache.Invalidate(ctx)
	s.metrics.IncrementBoardCreated()
	s.logger.Info("Board created",
		zap.String("board_id", id.String()),
		zap.String("slug", board.Slug),
		zap.String("type", string(board.Type)),
	)
	return id, nil
}

// GetAllBoards returns every board, destroyed ones included
func (s *boardServiceImpl) GetAllBoards(ctx context.Context) ([]domain.Board, error) {
	boards, generation, ok := s.cache.GetBoards(ctx)
	if ok {
		return boards, nil
	}

	boards, err := s.boardRepo.GetAllBoards(ctx)
	if err != nil {
		return nil, err
	}

	// written under the generation read above; a create in between makes it unreachable
	s.cache.SetBoards(ctx, generation, boards)
	return boards, nil
}

// FindOneByID returns the board or nil when it does not exist
func (s *boardServiceImpl) FindOneByID(ctx context.Context, id string) (*domain.Board, error) {
	return s.boardRepo.FindOneByID(ctx, id)
}

// GetBoardDetail returns the board with its columns and cards. found is false when
// the board does not exist or is destroyed; that is not an error.
func (s *boardServiceImpl) GetBoardDetail(ctx context.Context, id string) (*domain.BoardDetail, bool, error) {
	detail, found, err := s.boardRepo.GetBoardDetail(ctx, id)
	switch {
	case err != nil && errors.Is(err, repository.ErrInvalidIdentifier):
		return nil, false, err
	case err != nil:
		s.metrics.RecordBoardDetailLookup(metrics.LookupError)
		return nil, false, err
	case !found:
		s.metrics.RecordBoardDetailLookup(metrics.LookupNotFound)
		return nil, false, nil
	}

	s.metrics.RecordBoardDetailLookup(metrics.LookupFound)
	if dangling := detail.ColumnOrderViolations(); len(dangling) > 0 {
		s.logger.Warn("Board column order references unknown columns",
			zap.String("board_id", detail.ID.String()),
			zap.Int("dangling", len(dangling)),
		)
	}
	return detail, true, nil
}

// deriveSlug folds the title into a slug. A fold shorter than the stored minimum gets
// the first block of the board id appended, so every accepted title yields a valid slug.
func deriveSlug(title string, id uuid.UUID) string {
	slug := util.Slugify(title)
	if utf8.RuneCountInString(slug) >= validation.SlugMinLength {
		return slug
	}
	suffix := id.String()[:8]
	if slug == "" {
		return "board-" + suffix
	}
	return slug + "-" + suffix
}

func (s *boardServiceImpl) recordValidationFailure(err error) {
	var failure *validation.Failure
	if errors.As(err, &failure) {
		s.metrics.RecordValidationFailure(failure.Fields())
	}
}
