package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban-board-api/internal/domain"
)

func TestNewBoardResponse_EmptyOrderIsArray(t *testing.T) {
	resp := NewBoardResponse(&domain.Board{ID: uuid.New(), Title: "Sprint Board", Type: domain.BoardTypePublic})

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"columnOrderIds":[]`)
	assert.Contains(t, string(body), `"updatedAt":null`)
	assert.Contains(t, string(body), `"type":"PUBLIC"`)
}

func TestNewBoardResponses_NeverNil(t *testing.T) {
	resp := NewBoardResponses(nil)
	assert.NotNil(t, resp)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestNewBoardDetailResponse(t *testing.T) {
	boardID, columnID := uuid.New(), uuid.New()
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	detail := domain.NewBoardDetail(
		domain.Board{ID: boardID, Title: "Sprint Board", ColumnOrderIDs: domain.IDList{columnID}, CreatedAt: created},
		[]domain.Column{{ID: columnID, BoardID: boardID, Title: "To do", CreatedAt: created}},
		[]domain.Card{{ID: uuid.New(), BoardID: boardID, ColumnID: columnID, Title: "Card", CreatedAt: created}},
	)

	resp := NewBoardDetailResponse(detail)

	assert.Equal(t, boardID, resp.ID)
	assert.Equal(t, []uuid.UUID{columnID}, resp.ColumnOrderIDs)
	require.Len(t, resp.Columns, 1)
	assert.Equal(t, []uuid.UUID{}, resp.Columns[0].CardOrderIDs)
	require.Len(t, resp.Cards, 1)
	assert.Equal(t, columnID, resp.Cards[0].ColumnID)

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	for _, key := range []string{"id", "title", "slug", "description", "type", "columnOrderIds", "createdAt", "updatedAt", "destroyed", "columns", "cards"} {
		assert.Contains(t, decoded, key)
	}
}
