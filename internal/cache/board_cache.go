package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
)

const (
	boardListKeyPrefix = "kanban:boards:all:"
	generationKey      = "kanban:boards:generation"
)

// Generation identifies one version of the board list. Invalidate starts a new one,
// so a list read before a write can only be cached under the old generation.
type Generation int64

// NoGeneration is returned when the cache cannot be used; SetBoards ignores it
const NoGeneration Generation = -1

// BoardListCache caches the board list. Failures are logged and reported as misses,
// the store stays the source of truth.
type BoardListCache interface {
	// GetBoards returns the cached list of the current generation. On a miss the
	// returned generation is the one to pass to SetBoards.
	GetBoards(ctx context.Context) ([]domain.Board, Generation, bool)
	SetBoards(ctx context.Context, generation Generation, boards []domain.Board)
	Invalidate(ctx context.Context)
}

type redisBoardListCache struct {
	client  redis.Cmdable
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewBoardListCache returns a Redis backed cache. A nil client gives a cache that
// never hits.
func NewBoardListCache(client *redis.Client, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) BoardListCache {
	var cmd redis.Cmdable
	if client != nil {
		cmd = client
	}
	return newBoardListCache(cmd, ttl, m, logger)
}

func newBoardListCache(client redis.Cmdable, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) *redisBoardListCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisBoardListCache{client: client, ttl: ttl, metrics: m, logger: logger}
}

func listKey(generation Generation) string {
	return fmt.Sprintf("%s%d", boardListKeyPrefix, generation)
}

func (c *redisBoardListCache) currentGeneration(ctx context.Context) (Generation, error) {
	n, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return NoGeneration, err
	}
	return Generation(n), nil
}

func (c *redisBoardListCache) GetBoards(ctx context.Context) ([]domain.Board, Generation, bool) {
	if c.client == nil {
		return nil, NoGeneration, false
	}

	generation, err := c.currentGeneration(ctx)
	if err != nil {
		c.metrics.RecordCacheRequest(metrics.CacheError)
		c.logger.Warn("failed to read board list generation", zap.Error(err))
		return nil, NoGeneration, false
	}

	data, err := c.client.Get(ctx, listKey(generation)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.metrics.RecordCacheRequest(metrics.CacheMiss)
			return nil, generation, false
		}
		c.metrics.RecordCacheRequest(metrics.CacheError)
		c.logger.Warn("failed to read board list cache", zap.Error(err))
		return nil, NoGeneration, false
	}

	var boards []domain.Board
	if err := json.Unmarshal(data, &boards); err != nil {
		c.metrics.RecordCacheRequest(metrics.CacheError)
		c.logger.Warn("discarding undecodable board list cache entry", zap.Error(err))
		c.Invalidate(ctx)
		return nil, NoGeneration, false
	}

	c.metrics.RecordCacheRequest(metrics.CacheHit)
	return boards, generation, true
}

func (c *redisBoardListCache) SetBoards(ctx context.Context, generation Generation, boards []domain.Board) {
	if c.client == nil || generation == NoGeneration {
		return
	}

	data, err := json.Marshal(boards)
	if err != nil {
		c.logger.Warn("failed to encode board list for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, listKey(generation), data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to write board list cache", zap.Error(err))
	}
}

// Invalidate moves readers to a fresh generation. Entries of older generations are
// left to expire with their TTL.
func (c *redisBoardListCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		c.logger.Error("failed to invalidate board list cache", zap.Error(err))
	}
}
