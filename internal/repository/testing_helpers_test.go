package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/validation"
)

var testNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return testNow },
	})
	require.NoError(t, err, "failed to open database")

	// every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Board{}, &domain.Column{}, &domain.Card{}))
	return db
}

func newTestBoardRepository(db *gorm.DB) BoardRepository {
	return NewBoardRepository(db, validation.NewWithClock(func() time.Time { return testNow }))
}

func validBoard(title string) *domain.Board {
	return &domain.Board{
		Title:          title,
		Slug:           "slug-" + uuid.NewString()[:8],
		Description:    "Board used in repository tests",
		Type:           domain.BoardTypePublic,
		ColumnOrderIDs: domain.IDList{},
		CreatedAt:      testNow,
	}
}

func seedBoard(t *testing.T, repo BoardRepository, board *domain.Board) uuid.UUID {
	t.Helper()
	id, err := repo.CreateNew(context.Background(), board)
	require.NoError(t, err)
	return id
}

func seedColumn(t *testing.T, db *gorm.DB, boardID uuid.UUID, title string, offset time.Duration) *domain.Column {
	t.Helper()
	column := &domain.Column{BoardID: boardID, Title: title, CreatedAt: testNow.Add(offset)}
	require.NoError(t, NewColumnRepository(db).Create(context.Background(), column))
	return column
}

func seedCard(t *testing.T, db *gorm.DB, boardID, columnID uuid.UUID, title string, offset time.Duration) *domain.Card {
	t.Helper()
	card := &domain.Card{BoardID: boardID, ColumnID: columnID, Title: title, CreatedAt: testNow.Add(offset)}
	require.NoError(t, NewCardRepository(db).Create(context.Background(), card))
	return card
}
