package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/optomarket/optomarket-api/internal/logger"

	"github.com/gin-gonic/gin"
)

// HTTPService hosts the gin engine with graceful shutdown.
type HTTPService struct {
	server *http.Server
}

// NewHTTPService wraps an engine into a managed HTTP listener.
func NewHTTPService(host, port string, engine *gin.Engine) *HTTPService {
	return &HTTPService{
		server: &http.Server{
			Addr:              net.JoinHostPort(host, port),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
			ErrorLog:          logger.StdLogger(),
		},
	}
}

// Name identifies the service in runner logs.
func (s *HTTPService) Name() string {
	return "http"
}

// Start begins serving in the background.
func (s *HTTPService) Start() error {
	go func() {
		logger.Infow("http_listening", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("http_serve_failed", "error", err)
		}
	}()
	return nil
}

// Stop drains in-flight requests with a deadline.
func (s *HTTPService) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
