package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/optomarket/optomarket-api/internal/constants"
	"github.com/optomarket/optomarket-api/internal/logger"
	"github.com/optomarket/optomarket-api/internal/provider"
	"github.com/optomarket/optomarket-api/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer holds the task handlers executed by the asynq server.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer.
func NewConsumer(container *provider.Container) *Consumer {
	return &Consumer{Container: container}
}

// Register binds every task type onto the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskSupplierStatsRecalc, c.handleSupplierStatsRecalc)
}

func (c *Consumer) handleSupplierStatsRecalc(ctx context.Context, task *asynq.Task) error {
	var payload queue.SupplierStatsRecalcPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode payload: %w: %w", err, asynq.SkipRetry)
	}
	if err := c.Stats.Recalc(payload.SupplierID); err != nil {
		return fmt.Errorf("recalc supplier %d stats: %w", payload.SupplierID, err)
	}
	logger.Debugw("supplier_stats_recalculated", "supplier_id", payload.SupplierID)
	return nil
}
