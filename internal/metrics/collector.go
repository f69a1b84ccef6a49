package metrics

import (
	"go.uber.org/zap"
)

// BoardCounter reports the current size of the board collection
type BoardCounter interface {
	Totals() (boards, columns, cards int)
}

// BoardTotalsCollector refreshes the board, column and card gauges.
// It satisfies cron.Job so it can be scheduled directly.
type BoardTotalsCollector struct {
	source  BoardCounter
	metrics *Metrics
	logger  *zap.Logger
}

// NewBoardTotalsCollector creates a new collector
func NewBoardTotalsCollector(source BoardCounter, metrics *Metrics, logger *zap.Logger) *BoardTotalsCollector {
	return &BoardTotalsCollector{
		source:  source,
		metrics: metrics,
		logger:  logger,
	}
}

// Run gathers the totals once
func (c *BoardTotalsCollector) Run() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in board metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	boards, columns, cards := c.source.Totals()
	c.metrics.SetBoardTotals(boards, columns, cards)
	c.logger.Debug("Board totals collected",
		zap.Int("boards", boards),
		zap.Int("columns", columns),
		zap.Int("cards", cards),
	)
}
