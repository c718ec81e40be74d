package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// modelInfo holds information about a domain model and its table name
type modelInfo struct {
	model     interface{}
	tableName string
}

func models() []modelInfo {
	return []modelInfo{
		{&domain.Board{}, domain.Board{}.TableName()},
		{&domain.Column{}, domain.Column{}.TableName()},
		{&domain.Card{}, domain.Card{}.TableName()},
	}
}

// AutoMigrate creates or updates the boards, board_columns and cards tables.
// For existing tables only schema differences (new columns, indexes) are applied.
func AutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	all := models()

	for _, m := range all {
		existed := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", existed),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Debug("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", existed),
		)
	}

	logger.Info("Database migrations completed", zap.Int("tables", len(all)))
	return nil
}
