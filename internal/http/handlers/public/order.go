package public

import (
	"github.com/optomarket/optomarket-api/internal/http/handlers/shared"
	"github.com/optomarket/optomarket-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

type createOrderRequest struct {
	SupplierID uint `json:"supplier_id" binding:"required"`
	ProductID  uint `json:"product_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// CreateOrder places an order priced from the supplier's price row.
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.Orders.Create(userID, req.SupplierID, req.ProductID, req.Quantity)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "order placed", order)
}

// ListOrders returns the user's order history.
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	page, pageSize := shared.Pagination(c)
	orders, total, err := h.Orders.ListByUser(userID, page, pageSize)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, total, page, pageSize)
}

// GetOrder returns one of the user's orders.
func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	orderID, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.Orders.Get(userID, orderID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}
