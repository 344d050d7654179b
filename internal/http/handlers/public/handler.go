package public

import "github.com/optomarket/optomarket-api/internal/provider"

// Handler serves the storefront and authenticated-user endpoints.
type Handler struct {
	*provider.Container
}

// New creates the handler.
func New(container *provider.Container) *Handler {
	return &Handler{Container: container}
}
