package public

import (
	"github.com/optomarket/optomarket-api/internal/http/handlers/shared"
	"github.com/optomarket/optomarket-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SuppliersByCategory lists every supplier serving a category with its
// product count and minimum delivery days.
func (h *Handler) SuppliersByCategory(c *gin.Context) {
	categoryID := shared.QueryUint(c, "category_id")
	if categoryID == 0 {
		response.BadRequest(c, "category_id is required")
		return
	}
	rows, err := h.Pricing.SuppliersByCategory(c.Request.Context(), categoryID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, rows)
}

// ProductsBySupplier lists the products a supplier offers with that
// supplier's price and delivery terms.
func (h *Handler) ProductsBySupplier(c *gin.Context) {
	supplierID := shared.QueryUint(c, "supplier_id")
	if supplierID == 0 {
		response.BadRequest(c, "supplier_id is required")
		return
	}
	rows, err := h.Pricing.ProductsBySupplier(c.Request.Context(), supplierID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, rows)
}
