package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessMetricsCollector refreshes the entity gauges periodically
type BusinessMetricsCollector struct {
	db       *gorm.DB
	metrics  *Metrics
	logger   *zap.Logger
	interval time.Duration
	done     chan struct{}
	stopped  chan struct{}
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger, interval time.Duration) *BusinessMetricsCollector {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &BusinessMetricsCollector{
		db:       db,
		metrics:  metrics,
		logger:   logger,
		interval: interval,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		defer close(c.stopped)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		c.collect()
		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector and waits for the running collection to finish
func (c *BusinessMetricsCollector) Stop() {
	close(c.done)
	<-c.stopped
}

// collect counts live (not destroyed) rows per table
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tables := []struct {
		name string
		set  func(int64)
	}{
		{"boards", c.metrics.SetBoardsTotal},
		{"board_columns", c.metrics.SetColumnsTotal},
		{"cards", c.metrics.SetCardsTotal},
	}

	for _, t := range tables {
		var count int64
		if err := c.db.WithContext(ctx).Table(t.name).Where("destroyed = ?", false).Count(&count).Error; err != nil {
			c.logger.Error("Failed to count rows", zap.String("table", t.name), zap.Error(err))
			continue
		}
		t.set(count)
	}
}
