package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
)

// IntegrityJob scans live boards for columnOrderIds entries that do not name one of
// the board's own columns. Nothing is repaired; offenders are logged and counted.
type IntegrityJob struct {
	boardRepo repository.BoardRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
	timeout   time.Duration
}

// NewIntegrityJob creates a new IntegrityJob instance
func NewIntegrityJob(
	boardRepo repository.BoardRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *IntegrityJob {
	return &IntegrityJob{
		boardRepo: boardRepo,
		metrics:   m,
		logger:    logger,
		timeout:   2 * time.Minute,
	}
}

// Run executes the scan. It satisfies cron.Job.
func (j *IntegrityJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	// Scan logs its own failures and cron has nowhere to return them
	_, _ = j.Scan(ctx)
}

// Scan returns the number of dangling column references across live boards
func (j *IntegrityJob) Scan(ctx context.Context) (int, error) {
	j.logger.Debug("Starting board integrity scan")

	boards, err := j.boardRepo.GetAllBoards(ctx)
	if err != nil {
		j.logger.Error("Failed to list boards for integrity scan", zap.Error(err))
		return 0, err
	}

	dangling := 0
	checked := 0
	for _, board := range boards {
		if board.Destroyed {
			continue
		}

		detail, found, err := j.boardRepo.GetBoardDetail(ctx, board.ID.String())
		if err != nil {
			j.logger.Error("Failed to load board detail",
				zap.String("board_id", board.ID.String()),
				zap.Error(err),
			)
			continue
		}
		if !found {
			// destroyed between the list and the detail read
			continue
		}
		checked++

		missing := detail.ColumnOrderViolations()
		if len(missing) == 0 {
			continue
		}
		dangling += len(missing)

		refs := make([]string, 0, len(missing))
		for _, id := range missing {
			refs = append(refs, id.String())
		}
		j.logger.Warn("Board column order references unknown columns",
			zap.String("board_id", board.ID.String()),
			zap.String("slug", board.Slug),
			zap.Strings("column_ids", refs),
		)
	}

	j.metrics.SetDanglingColumnRefs(dangling)

	j.logger.Info("Board integrity scan completed",
		zap.Int("boards_total", len(boards)),
		zap.Int("boards_checked", checked),
		zap.Int("dangling_refs", dangling),
	)
	return dangling, nil
}
