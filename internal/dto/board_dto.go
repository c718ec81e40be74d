package dto

import (
	"time"

	"github.com/google/uuid"

	"kanban-board-api/internal/domain"
)

// CreateBoardRequest represents the request to create a new board
// @Description title 5-50 and description 5-256 characters without surrounding whitespace.
// @Description type is case-sensitive. No other keys are accepted.
type CreateBoardRequest struct {
	Title       string `json:"title" example:"Sprint Board"`
	Description string `json:"description" example:"Team sprint tracking"`
	Type        string `json:"type" enums:"PUBLIC,PRIVATE" example:"PUBLIC"`
}

// CreateBoardResponse carries the id of the stored board
type CreateBoardResponse struct {
	InsertedID uuid.UUID `json:"insertedId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
}

// BoardResponse represents a stored board
type BoardResponse struct {
	ID             uuid.UUID   `json:"id" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Title          string      `json:"title" example:"Sprint Board"`
	Slug           string      `json:"slug" example:"sprint-board"`
	Description    string      `json:"description" example:"Team sprint tracking"`
	Type           string      `json:"type" example:"PUBLIC"`
	ColumnOrderIDs []uuid.UUID `json:"columnOrderIds"`
	CreatedAt      time.Time   `json:"createdAt" example:"2024-03-01T09:30:00Z"`
	UpdatedAt      *time.Time  `json:"updatedAt"`
	Destroyed      bool        `json:"destroyed" example:"false"`
}

// ColumnResponse represents a column joined into a board detail
type ColumnResponse struct {
	ID           uuid.UUID   `json:"id"`
	BoardID      uuid.UUID   `json:"boardId"`
	Title        string      `json:"title" example:"To do"`
	CardOrderIDs []uuid.UUID `json:"cardOrderIds"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    *time.Time  `json:"updatedAt"`
	Destroyed    bool        `json:"destroyed"`
}

// CardResponse represents a card joined into a board detail
type CardResponse struct {
	ID          uuid.UUID  `json:"id"`
	BoardID     uuid.UUID  `json:"boardId"`
	ColumnID    uuid.UUID  `json:"columnId"`
	Title       string     `json:"title" example:"Write release notes"`
	Description string     `json:"description"`
	Cover       *string    `json:"cover"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
	Destroyed   bool       `json:"destroyed"`
}

// BoardDetailResponse is a board with every column and every card that references it.
// @Description cards is a flat list, group it by columnId on the client.
type BoardDetailResponse struct {
	BoardResponse
	Columns []ColumnResponse `json:"columns"`
	Cards   []CardResponse   `json:"cards"`
}

// StatusResponse is returned by the API status endpoint
type StatusResponse struct {
	Message string `json:"message" example:"API v1 is ready!"`
}

func ids(list domain.IDList) []uuid.UUID {
	if list == nil {
		return []uuid.UUID{}
	}
	return []uuid.UUID(list)
}

// NewBoardResponse converts a domain board
func NewBoardResponse(b *domain.Board) BoardResponse {
	return BoardResponse{
		ID:             b.ID,
		Title:          b.Title,
		Slug:           b.Slug,
		Description:    b.Description,
		Type:           string(b.Type),
		ColumnOrderIDs: ids(b.ColumnOrderIDs),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
		Destroyed:      b.Destroyed,
	}
}

// NewBoardResponses converts a board list, never returning nil
func NewBoardResponses(boards []domain.Board) []BoardResponse {
	out := make([]BoardResponse, 0, len(boards))
	for i := range boards {
		out = append(out, NewBoardResponse(&boards[i]))
	}
	return out
}

// NewBoardDetailResponse converts a board detail view
func NewBoardDetailResponse(d *domain.BoardDetail) BoardDetailResponse {
	columns := make([]ColumnResponse, 0, len(d.Columns))
	for _, c := range d.Columns {
		columns = append(columns, ColumnResponse{
			ID:           c.ID,
			BoardID:      c.BoardID,
			Title:        c.Title,
			CardOrderIDs: ids(c.CardOrderIDs),
			CreatedAt:    c.CreatedAt,
			UpdatedAt:    c.UpdatedAt,
			Destroyed:    c.Destroyed,
		})
	}

	cards := make([]CardResponse, 0, len(d.Cards))
	for _, c := range d.Cards {
		cards = append(cards, CardResponse{
			ID:          c.ID,
			BoardID:     c.BoardID,
			ColumnID:    c.ColumnID,
			Title:       c.Title,
			Description: c.Description,
			Cover:       c.Cover,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
			Destroyed:   c.Destroyed,
		})
	}

	return BoardDetailResponse{
		BoardResponse: NewBoardResponse(&d.Board),
		Columns:       columns,
		Cards:         cards,
	}
}
