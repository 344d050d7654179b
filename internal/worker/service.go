package worker

import (
	"context"
	"time"

	"github.com/optomarket/optomarket-api/internal/logger"
	"github.com/optomarket/optomarket-api/internal/provider"
	"github.com/optomarket/optomarket-api/internal/queue"

	"github.com/hibiken/asynq"
)

// Service runs the asynq consumer plus the periodic favorite-flag
// reconciliation loop.
type Service struct {
	container *provider.Container
	server    *asynq.Server

	reconcileEvery time.Duration
	stopReconcile  context.CancelFunc
	reconcileDone  chan struct{}
}

// NewService creates the worker service. The asynq server is nil when the
// queue is disabled; reconciliation still runs.
func NewService(container *provider.Container) *Service {
	s := &Service{
		container:      container,
		reconcileEvery: 10 * time.Minute,
	}
	if container.Cfg.Queue.Enabled {
		redisOpt, serverCfg := queue.BuildServerConfig(container.Cfg.Queue)
		s.server = asynq.NewServer(redisOpt, serverCfg)
	}
	return s
}

// Name identifies the service in runner logs.
func (s *Service) Name() string {
	return "worker"
}

// Start launches the consumer and the reconciliation ticker.
func (s *Service) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.stopReconcile = cancel
	s.reconcileDone = make(chan struct{})
	go s.reconcileLoop(ctx)

	if s.server == nil {
		logger.Infow("worker_started_without_queue")
		return nil
	}
	mux := asynq.NewServeMux()
	NewConsumer(s.container).Register(mux)
	if err := s.server.Start(mux); err != nil {
		return err
	}
	logger.Infow("worker_started", "concurrency", s.container.Cfg.Queue.Concurrency)
	return nil
}

// Stop drains the consumer and halts the ticker.
func (s *Service) Stop() error {
	if s.stopReconcile != nil {
		s.stopReconcile()
		<-s.reconcileDone
	}
	if s.server != nil {
		s.server.Shutdown()
	}
	logger.Infow("worker_stopped")
	return nil
}

// reconcileLoop periodically re-derives the denormalized favorite flags so
// any drift self-heals.
func (s *Service) reconcileLoop(ctx context.Context) {
	defer close(s.reconcileDone)
	ticker := time.NewTicker(s.reconcileEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.container.Favorites.ReconcileFlags(); err != nil {
				logger.Errorw("favorite_flag_reconcile_failed", "error", err)
			}
		}
	}
}
