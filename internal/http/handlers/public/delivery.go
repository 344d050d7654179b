package public

import (
	"time"

	"github.com/optomarket/optomarket-api/internal/http/handlers/shared"
	"github.com/optomarket/optomarket-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

type deliveryRequest struct {
	Address       string     `json:"address" binding:"required"`
	ContactNumber string     `json:"contact_number" binding:"required"`
	DeliveryDate  *time.Time `json:"delivery_date"`
}

type deliveryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListDeliveries returns the user's shipment requests.
func (h *Handler) ListDeliveries(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	page, pageSize := shared.Pagination(c)
	deliveries, total, err := h.Deliveries.List(userID, page, pageSize)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, deliveries, total, page, pageSize)
}

// GetDelivery returns one of the user's deliveries.
func (h *Handler) GetDelivery(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	deliveryID, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid delivery id")
		return
	}
	delivery, err := h.Deliveries.Get(userID, deliveryID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, delivery)
}

// CreateDelivery registers a shipment request.
func (h *Handler) CreateDelivery(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	var req deliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	delivery, err := h.Deliveries.Create(userID, req.Address, req.ContactNumber, req.DeliveryDate)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "delivery created", delivery)
}

// UpdateDelivery changes address/contact/date on a pending delivery.
func (h *Handler) UpdateDelivery(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	deliveryID, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid delivery id")
		return
	}
	var req deliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	delivery, err := h.Deliveries.UpdateMeta(userID, deliveryID, req.Address, req.ContactNumber, req.DeliveryDate)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, delivery)
}

// UpdateDeliveryStatus advances a delivery along its status machine.
func (h *Handler) UpdateDeliveryStatus(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	deliveryID, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid delivery id")
		return
	}
	var req deliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	delivery, err := h.Deliveries.AdvanceStatus(userID, deliveryID, req.Status)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, delivery)
}

// CancelDelivery cancels a not-yet-delivered shipment.
func (h *Handler) CancelDelivery(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	deliveryID, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid delivery id")
		return
	}
	delivery, err := h.Deliveries.Cancel(userID, deliveryID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "cancelled", delivery)
}
