package database

import (
	"time"

	"gorm.io/gorm"
)

const startTimeKey = "metrics:start_time"

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

func startTimer(db *gorm.DB) {
	db.InstanceSet(startTimeKey, time.Now())
}

func recordWith(recorder MetricsRecorder, operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		startTime, ok := db.InstanceGet(startTimeKey)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		recorder.RecordDBQuery(operation, table, time.Since(startTime.(time.Time)), db.Error)
	}
}

// RegisterMetricsCallbacks registers GORM callbacks for metrics collection.
// Raw statements (the board detail aggregation) go through the row callback and
// are recorded as "aggregate".
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	cb := db.Callback()

	_ = cb.Query().Before("gorm:query").Register("metrics:query_before", startTimer)
	_ = cb.Query().After("gorm:query").Register("metrics:query_after", recordWith(recorder, "select"))

	_ = cb.Create().Before("gorm:create").Register("metrics:create_before", startTimer)
	_ = cb.Create().After("gorm:create").Register("metrics:create_after", recordWith(recorder, "insert"))

	_ = cb.Update().Before("gorm:update").Register("metrics:update_before", startTimer)
	_ = cb.Update().After("gorm:update").Register("metrics:update_after", recordWith(recorder, "update"))

	_ = cb.Delete().Before("gorm:delete").Register("metrics:delete_before", startTimer)
	_ = cb.Delete().After("gorm:delete").Register("metrics:delete_after", recordWith(recorder, "delete"))

	_ = cb.Row().Before("gorm:row").Register("metrics:row_before", startTimer)
	_ = cb.Row().After("gorm:row").Register("metrics:row_after", recordWith(recorder, "aggregate"))
}

// StartDBStatsCollector starts periodic DB stats collection. Close the returned
// channel to stop it.
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder, interval time.Duration) chan struct{} {
	done := make(chan struct{})
	if interval <= 0 {
		interval = 15 * time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
