package queue

import (
	"fmt"

	"github.com/optomarket/optomarket-api/internal/config"
	"github.com/optomarket/optomarket-api/internal/constants"
	"github.com/optomarket/optomarket-api/internal/logger"

	"github.com/hibiken/asynq"
)

// Client wraps the asynq producer. A nil inner client means the queue
// is disabled and enqueue calls become no-ops.
type Client struct {
	inner *asynq.Client
}

// NewClient connects the producer when the queue is enabled.
func NewClient(cfg config.QueueConfig) *Client {
	if !cfg.Enabled {
		logger.Infow("task_queue_disabled")
		return &Client{}
	}
	return &Client{inner: asynq.NewClient(buildRedisOpt(cfg))}
}

// Enabled reports whether tasks can be enqueued.
func (c *Client) Enabled() bool {
	return c != nil && c.inner != nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.inner.Close()
}

// EnqueueSupplierStatsRecalc schedules a statistics rebuild for a
// supplier. Failures are logged, not propagated, so order placement
// never depends on the queue.
func (c *Client) EnqueueSupplierStatsRecalc(supplierID uint) {
	if !c.Enabled() {
		return
	}
	task, err := NewSupplierStatsRecalcTask(supplierID)
	if err != nil {
		logger.Errorw("task_build_failed",
			"task", constants.TaskSupplierStatsRecalc,
			"supplier_id", supplierID,
			"error", err,
		)
		return
	}
	info, err := c.inner.Enqueue(task, asynq.Queue(constants.QueueDefault), asynq.MaxRetry(5))
	if err != nil {
		logger.Errorw("task_enqueue_failed",
			"task", constants.TaskSupplierStatsRecalc,
			"supplier_id", supplierID,
			"error", err,
		)
		return
	}
	logger.Debugw("task_enqueued",
		"task", constants.TaskSupplierStatsRecalc,
		"task_id", info.ID,
		"supplier_id", supplierID,
	)
}

// BuildServerConfig translates the config section into asynq server
// settings for the worker process.
func BuildServerConfig(cfg config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	queues := cfg.Queues
	if len(queues) == 0 {
		queues = map[string]int{constants.QueueDefault: 10}
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	return buildRedisOpt(cfg), asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
		Logger:      asynqLogger{},
	}
}

func buildRedisOpt(cfg config.QueueConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// asynqLogger routes asynq's internal messages through zap.
type asynqLogger struct{}

func (asynqLogger) Debug(args ...interface{}) { logger.S().Debug(args...) }
func (asynqLogger) Info(args ...interface{})  { logger.S().Info(args...) }
func (asynqLogger) Warn(args ...interface{})  { logger.S().Warn(args...) }
func (asynqLogger) Error(args ...interface{}) { logger.S().Error(args...) }
func (asynqLogger) Fatal(args ...interface{}) { logger.S().Fatal(args...) }
