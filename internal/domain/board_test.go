package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardType_Valid(t *testing.T) {
	assert.True(t, BoardTypePublic.Valid())
	assert.True(t, BoardTypePrivate.Valid())
	assert.False(t, BoardType("public").Valid())
	assert.False(t, BoardType("").Valid())
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	got, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	invalid := []string{
		"",
		"not-an-id",
		"507f1f77bcf86cd799439011",
		"{" + id.String() + "}",
		"urn:uuid:" + id.String(),
		"zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz",
	}
	for _, raw := range invalid {
		_, err := ParseID(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestBoardDetail_ColumnOrderViolations(t *testing.T) {
	boardID := uuid.New()
	own1 := Column{ID: uuid.New(), BoardID: boardID}
	own2 := Column{ID: uuid.New(), BoardID: boardID}
	dangling := uuid.New()

	detail := NewBoardDetail(Board{
		ID:             boardID,
		ColumnOrderIDs: IDList{own2.ID, dangling, own1.ID},
	}, []Column{own1, own2}, nil)

	assert.Equal(t, []uuid.UUID{dangling}, detail.ColumnOrderViolations())
	assert.NotNil(t, detail.Cards)

	detail.ColumnOrderIDs = IDList{own1.ID, own2.ID}
	assert.Empty(t, detail.ColumnOrderViolations())
}

func TestBoardDetail_CardsByColumn(t *testing.T) {
	colA, colB := uuid.New(), uuid.New()
	detail := NewBoardDetail(Board{ID: uuid.New()}, nil, []Card{
		{ID: uuid.New(), ColumnID: colA},
		{ID: uuid.New(), ColumnID: colB},
		{ID: uuid.New(), ColumnID: colA},
	})

	grouped := detail.CardsByColumn()
	assert.Len(t, grouped[colA], 2)
	assert.Len(t, grouped[colB], 1)
	assert.NotNil(t, detail.Columns)
	assert.NotNil(t, detail.ColumnOrderIDs)
}
