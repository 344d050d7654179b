package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/optomarket/optomarket-api/internal/logger"
)

// Service is a long-lived component managed by the Runner.
type Service interface {
	Name() string
	Start() error
	Stop() error
}

// Runner starts services in order and stops them in reverse on shutdown.
type Runner struct {
	services []Service
}

// NewRunner creates an empty runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Add appends a service.
func (r *Runner) Add(service Service) {
	r.services = append(r.services, service)
}

// Run starts everything, blocks until SIGINT/SIGTERM, then shuts down.
func (r *Runner) Run() error {
	started := make([]Service, 0, len(r.services))
	for _, service := range r.services {
		logger.Infow("service_starting", "service", service.Name())
		if err := service.Start(); err != nil {
			logger.Errorw("service_start_failed", "service", service.Name(), "error", err)
			r.stop(started)
			return err
		}
		started = append(started, service)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Infow("shutdown_signal_received", "signal", sig.String())

	r.stop(started)
	return nil
}

func (r *Runner) stop(started []Service) {
	for i := len(started) - 1; i >= 0; i-- {
		service := started[i]
		if err := service.Stop(); err != nil {
			logger.Errorw("service_stop_failed", "service", service.Name(), "error", err)
			continue
		}
		logger.Infow("service_stopped", "service", service.Name())
	}
}
