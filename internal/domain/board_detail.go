package domain

import "github.com/google/uuid"

// BoardDetail is the denormalized view of a board: the board itself, every column
// whose BoardID matches, and every card whose BoardID matches as one flat list.
// Grouping cards per column is left to the caller.
type BoardDetail struct {
	Board
	Columns []Column `json:"columns"`
	Cards   []Card   `json:"cards"`
}

// NewBoardDetail builds a detail view with non-nil collections
func NewBoardDetail(board Board, columns []Column, cards []Card) *BoardDetail {
	if columns == nil {
		columns = []Column{}
	}
	if cards == nil {
		cards = []Card{}
	}
	if board.ColumnOrderIDs == nil {
		board.ColumnOrderIDs = IDList{}
	}
	return &BoardDetail{Board: board, Columns: columns, Cards: cards}
}

// ColumnIDs returns the ids of the joined columns in join order
func (d *BoardDetail) ColumnIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(d.Columns))
	for _, c := range d.Columns {
		ids = append(ids, c.ID)
	}
	return ids
}

// ColumnOrderViolations returns the entries of ColumnOrderIDs that do not name one of
// the board's own columns. An empty result means the display order is consistent.
func (d *BoardDetail) ColumnOrderViolations() []uuid.UUID {
	return d.ColumnOrderIDs.Missing(d.ColumnIDs())
}

// CardsByColumn groups the flat card list by ColumnID
func (d *BoardDetail) CardsByColumn() map[uuid.UUID][]Card {
	grouped := make(map[uuid.UUID][]Card, len(d.Columns))
	for _, card := range d.Cards {
		grouped[card.ColumnID] = append(grouped[card.ColumnID], card)
	}
	return grouped
}
