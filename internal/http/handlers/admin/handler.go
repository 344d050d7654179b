package admin

import "github.com/optomarket/optomarket-api/internal/provider"

// Handler serves the management endpoints behind the admin role gate.
type Handler struct {
	*provider.Container
}

// New creates the handler.
func New(container *provider.Container) *Handler {
	return &Handler{Container: container}
}
