package admin

import (
	"github.com/optomarket/optomarket-api/internal/http/handlers/shared"
	"github.com/optomarket/optomarket-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListSupplierStats returns the order roll-ups for every supplier.
func (h *Handler) ListSupplierStats(c *gin.Context) {
	stats, err := h.Stats.List()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, stats)
}

// GetSupplierStats returns one supplier's roll-up.
func (h *Handler) GetSupplierStats(c *gin.Context) {
	supplierID, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid supplier id")
		return
	}
	stat, err := h.Stats.Get(supplierID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, stat)
}

// RecalcSupplierStats forces a synchronous rebuild for one supplier.
func (h *Handler) RecalcSupplierStats(c *gin.Context) {
	supplierID, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid supplier id")
		return
	}
	if err := h.Stats.Recalc(supplierID); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	stat, err := h.Stats.Get(supplierID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, stat)
}
