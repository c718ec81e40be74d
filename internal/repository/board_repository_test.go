package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/validation"
)

func TestBoardRepository_CreateNew_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := newTestBoardRepository(db)
	ctx := context.Background()

	board := validBoard("Sprint Board")
	board.Slug = "sprint-board"
	board.Type = domain.BoardTypePrivate

	id, err := repo.CreateNew(ctx, board)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	found, err := repo.FindOneByID(ctx, id.String())
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, id, found.ID)
	assert.Equal(t, "Sprint Board", found.Title)
	assert.Equal(t, "sprint-board", found.Slug)
	assert.Equal(t, "Board used in repository tests", found.Description)
	assert.Equal(t, domain.BoardTypePrivate, found.Type)
	assert.Equal(t, domain.IDList{}, found.ColumnOrderIDs)
	assert.True(t, found.CreatedAt.Equal(testNow), "createdAt %v", found.CreatedAt)
	assert.Nil(t, found.UpdatedAt)
	assert.False(t, found.Destroyed)
}

func TestBoardRepository_CreateNew_RevalidatesRecord(t *testing.T) {
	db := setupTestDB(t)
	repo := newTestBoardRepository(db)

	board := validBoard("Sprint Board")
	board.Slug = ""
	board.Title = " padded "

	_, err := repo.CreateNew(context.Background(), board)

	var failure *validation.Failure
	require.True(t, errors.As(err, &failure), "expected *validation.Failure, got %v", err)
	assert.Equal(t, []string{"title", "slug"}, failure.Fields())

	var count int64
	require.NoError(t, db.Model(&domain.Board{}).Count(&count).Error)
	assert.Zero(t, count, "nothing may be written when validation fails")
}

func TestBoardRepository_CreateNew_StoreFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := newTestBoardRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.CreateNew(context.Background(), validBoard("Sprint Board"))

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr), "expected *PersistenceError, got %v", err)
	assert.Equal(t, "create board", perr.Op)
	assert.Contains(t, err.Error(), "create board: ")
}

func TestBoardRepository_FindOneByID(t *testing.T) {
	db := setupTestDB(t)
	repo := newTestBoardRepository(db)
	ctx := context.Background()

	destroyed := validBoard("Old Board")
	destroyed.Destroyed = true
	destroyedID := seedBoard(t, repo, destroyed)

	t.Run("absent id yields nil without error", func(t *testing.T) {
		board, err := repo.FindOneByID(ctx, uuid.NewString())
		assert.NoError(t, err)
		assert.Nil(t, board)
	})

	t.Run("destroyed boards are still found", func(t *testing.T) {
		board, err := repo.FindOneByID(ctx, destroyedID.String())
		require.NoError(t, err)
		require.NotNil(t, board)
		assert.True(t, board.Destroyed)
	})

	for _, raw := range []string{"", "abc", "12345", uuid.NewString() + "0", "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz"} {
		t.Run("invalid id "+raw, func(t *testing.T) {
			board, err := repo.FindOneByID(ctx, raw)
			assert.ErrorIs(t, err, ErrInvalidIdentifier)
			assert.Nil(t, board)
		})
	}
}

func TestBoardRepository_GetAllBoards(t *testing.T) {
	db := setupTestDB(t)
	repo := newTestBoardRepository(db)
	ctx := context.Background()

	t.Run("empty store yields empty list", func(t *testing.T) {
		boards, err := repo.GetAllBoards(ctx)
		require.NoError(t, err)
		assert.NotNil(t, boards)
		assert.Empty(t, boards)
	})

	first := validBoard("First board")
	second := validBoard("Second board")
	second.CreatedAt = testNow.Add(time.Minute)
	second.Destroyed = true
	seedBoard(t, repo, first)
	seedBoard(t, repo, second)

	t.Run("every row including destroyed", func(t *testing.T) {
		boards, err := repo.GetAllBoards(ctx)
		require.NoError(t, err)
		require.Len(t, boards, 2)
		assert.Equal(t, "First board", boards[0].Title)
		assert.Equal(t, "Second board", boards[1].Title)
		assert.True(t, boards[1].Destroyed)
	})
}

func TestBoardRepository_GetAllBoards_SameCreationTimeOrderedByID(t *testing.T) {
	db := setupTestDB(t)
	repo := newTestBoardRepository(db)

	ids := []string{
		"cccccccc-0000-4000-8000-000000000000",
		"aaaaaaaa-0000-4000-8000-000000000000",
		"bbbbbbbb-0000-4000-8000-000000000000",
	}
	for _, id := range ids {
		board := validBoard("Board " + id[:4])
		board.ID = uuid.MustParse(id)
		seedBoard(t, repo, board)
	}

	boards, err := repo.GetAllBoards(context.Background())
	require.NoError(t, err)
	require.Len(t, boards, 3)
	assert.Equal(t, ids[1], boards[0].ID.String())
	assert.Equal(t, ids[2], boards[1].ID.String())
	assert.Equal(t, ids[0], boards[2].ID.String())
}

func TestBoardRepository_GetAllBoards_StoreFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := newTestBoardRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.GetAllBoards(context.Background())

	var perr *PersistenceError
	assert.True(t, errors.As(err, &perr))
}
