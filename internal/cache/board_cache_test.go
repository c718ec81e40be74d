package cache

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/metrics"
)

// memoryRedis keeps string keys in a map. Only the commands the cache issues are implemented.
type memoryRedis struct {
	redis.Cmdable
	mu   sync.Mutex
	data map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string]string{}}
}

func (r *memoryRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	r.mu.Lock()
	defer r.mu.Unlock()
	val, ok := r.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (r *memoryRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		r.data[key] = string(v)
	case string:
		r.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (r *memoryRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, _ := strconv.ParseInt(r.data[key], 10, 64)
	n++
	r.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func TestBoardListCache_NilClientNeverHits(t *testing.T) {
	c := NewBoardListCache(nil, time.Minute, nil, nil)
	ctx := context.Background()

	c.SetBoards(ctx, 0, []domain.Board{{Title: "Sprint Board"}})
	boards, generation, ok := c.GetBoards(ctx)

	assert.False(t, ok)
	assert.Nil(t, boards)
	assert.Equal(t, NoGeneration, generation)
	assert.NotPanics(t, func() { c.Invalidate(ctx) })
}

func TestBoardListCache_UnreachableRedisIsAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	c := NewBoardListCache(client, time.Minute, m, zap.NewNop())
	ctx := context.Background()

	assert.NotPanics(t, func() {
		c.SetBoards(ctx, 0, []domain.Board{{Title: "Sprint Board"}})
		c.Invalidate(ctx)
	})

	boards, generation, ok := c.GetBoards(ctx)
	assert.False(t, ok)
	assert.Nil(t, boards)
	assert.Equal(t, NoGeneration, generation)
}

func TestBoardListCache_HitAfterSet(t *testing.T) {
	c := newBoardListCache(newMemoryRedis(), time.Minute, nil, zap.NewNop())
	ctx := context.Background()

	_, generation, ok := c.GetBoards(ctx)
	require.False(t, ok)
	assert.Equal(t, Generation(0), generation)

	c.SetBoards(ctx, generation, []domain.Board{{Title: "Sprint Board", Slug: "sprint-board"}})

	boards, _, ok := c.GetBoards(ctx)
	require.True(t, ok)
	require.Len(t, boards, 1)
	assert.Equal(t, "sprint-board", boards[0].Slug)
}

func TestBoardListCache_LateSetAfterInvalidateIsNeverServed(t *testing.T) {
	store := newMemoryRedis()
	c := newBoardListCache(store, time.Minute, nil, zap.NewNop())
	ctx := context.Background()

	// reader misses and goes to the store
	_, readGeneration, ok := c.GetBoards(ctx)
	require.False(t, ok)

	// a writer creates a board and invalidates before the reader writes back
	c.Invalidate(ctx)

	// the reader's list predates the new board
	c.SetBoards(ctx, readGeneration, []domain.Board{{Title: "Old Board"}})

	boards, generation, ok := c.GetBoards(ctx)
	assert.False(t, ok)
	assert.Nil(t, boards)
	assert.Equal(t, readGeneration+1, generation)

	fresh := []domain.Board{{Title: "Old Board"}, {Title: "New Board"}}
	c.SetBoards(ctx, generation, fresh)

	boards, _, ok = c.GetBoards(ctx)
	require.True(t, ok)
	assert.Equal(t, fresh, boards)
}

func TestBoardListCache_UndecodableEntryIsDiscarded(t *testing.T) {
	store := newMemoryRedis()
	store.data[listKey(0)] = "not json"
	c := newBoardListCache(store, time.Minute, nil, zap.NewNop())
	ctx := context.Background()

	_, generation, ok := c.GetBoards(ctx)
	assert.False(t, ok)
	assert.Equal(t, NoGeneration, generation)

	_, generation, ok = c.GetBoards(ctx)
	assert.False(t, ok)
	assert.Equal(t, Generation(1), generation)
}
