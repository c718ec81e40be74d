package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// Postgres builds the nested arrays with json_agg. Timestamps are timestamptz so
// they serialize as RFC 3339, and card_order_ids is already jsonb.
const postgresBoardDetailSQL = `
SELECT b.*,
	COALESCE((
		SELECT json_agg(json_build_object(
			'id', c.id,
			'boardId', c.board_id,
			'title', c.title,
			'cardOrderIds', COALESCE(c.card_order_ids, '[]'::jsonb),
			'createdAt', c.created_at,
			'updatedAt', c.updated_at,
			'destroyed', c.destroyed
		) ORDER BY c.created_at, c.id)
		FROM board_columns c
		WHERE c.board_id = b.id
	), '[]'::json) AS columns_json,
	COALESCE((
		SELECT json_agg(json_build_object(
			'id', k.id,
			'boardId', k.board_id,
			'columnId', k.column_id,
			'title', k.title,
			'description', k.description,
			'cover', k.cover,
			'createdAt', k.created_at,
			'updatedAt', k.updated_at,
			'destroyed', k.destroyed
		) ORDER BY k.created_at, k.id)
		FROM cards k
		WHERE k.board_id = b.id
	), '[]'::json) AS cards_json
FROM boards b
WHERE b.id = ? AND b.destroyed = false`

// SQLite has no native time or bool JSON encoding: timestamps go through strftime,
// booleans and the stored id arrays through json() so they are not quoted.
const sqliteBoardDetailSQL = `
SELECT b.*,
	(
		SELECT json_group_array(json_object(
			'id', c.id,
			'boardId', c.board_id,
			'title', c.title,
			'cardOrderIds', json(COALESCE(CAST(c.card_order_ids AS TEXT), '[]')),
			'createdAt', strftime('%Y-%m-%dT%H:%M:%fZ', c.created_at),
			'updatedAt', strftime('%Y-%m-%dT%H:%M:%fZ', c.updated_at),
			'destroyed', json(CASE WHEN c.destroyed THEN 'true' ELSE 'false' END)
		) ORDER BY c.created_at, c.id)
		FROM board_columns c
		WHERE c.board_id = b.id
	) AS columns_json,
	(
		SELECT json_group_array(json_object(
			'id', k.id,
			'boardId', k.board_id,
			'columnId', k.column_id,
			'title', k.title,
			'description', k.description,
			'cover', k.cover,
			'createdAt', strftime('%Y-%m-%dT%H:%M:%fZ', k.created_at),
			'updatedAt', strftime('%Y-%m-%dT%H:%M:%fZ', k.updated_at),
			'destroyed', json(CASE WHEN k.destroyed THEN 'true' ELSE 'false' END)
		) ORDER BY k.created_at, k.id)
		FROM cards k
		WHERE k.board_id = b.id
	) AS cards_json
FROM boards b
WHERE b.id = ? AND b.destroyed = 0`

// boardDetailRow is one aggregated result row: the board columns plus the two
// JSON-encoded child arrays
type boardDetailRow struct {
	domain.Board
	ColumnsJSON string `gorm:"column:columns_json"`
	CardsJSON   string `gorm:"column:cards_json"`
}

// boardDetailQuery joins a board with its columns and cards in a single statement,
// so the three parts are read from one snapshot
type boardDetailQuery struct {
	sql string
}

func newBoardDetailQuery(dialect string) *boardDetailQuery {
	if dialect == "sqlite" {
		return &boardDetailQuery{sql: sqliteBoardDetailSQL}
	}
	return &boardDetailQuery{sql: postgresBoardDetailSQL}
}

func (q *boardDetailQuery) run(ctx context.Context, db *gorm.DB, boardID uuid.UUID) (*domain.BoardDetail, bool, error) {
	var row boardDetailRow
	result := db.WithContext(ctx).Raw(q.sql, boardID).Scan(&row)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}

	var columns []domain.Column
	if err := decodeArray(row.ColumnsJSON, &columns); err != nil {
		return nil, false, fmt.Errorf("decode columns: %w", err)
	}
	var cards []domain.Card
	if err := decodeArray(row.CardsJSON, &cards); err != nil {
		return nil, false, fmt.Errorf("decode cards: %w", err)
	}

	return domain.NewBoardDetail(row.Board, columns, cards), true, nil
}

func decodeArray(raw string, dest any) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dest)
}
