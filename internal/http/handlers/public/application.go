package public

import (
	"time"

	"github.com/optomarket/optomarket-api/internal/http/handlers/shared"
	"github.com/optomarket/optomarket-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

type applicationRequest struct {
	OrderIDs      []uint     `json:"order_ids"`
	PaymentMethod string     `json:"payment_method" binding:"required"`
	DeliveryDate  *time.Time `json:"delivery_date"`
	Comment       string     `json:"comment"`
}

// CreateApplication bundles the user's orders under shared payment and
// delivery metadata.
func (h *Handler) CreateApplication(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	var req applicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	application, err := h.Applications.Create(userID, req.OrderIDs, req.PaymentMethod, req.DeliveryDate, req.Comment)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "application submitted", application)
}

// ListApplications returns the user's applications.
func (h *Handler) ListApplications(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	page, pageSize := shared.Pagination(c)
	applications, total, err := h.Applications.ListByUser(userID, page, pageSize, c.Query("status"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, applications, total, page, pageSize)
}

// GetApplication returns one of the user's applications with its orders.
func (h *Handler) GetApplication(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	applicationID, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid application id")
		return
	}
	application, err := h.Applications.Get(userID, applicationID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, application)
}

// UpdateApplication changes payment/delivery metadata on one of the user's
// applications.
func (h *Handler) UpdateApplication(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	applicationID, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid application id")
		return
	}
	var req applicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	application, err := h.Applications.UpdateMeta(userID, applicationID, req.PaymentMethod, req.DeliveryDate, req.Comment)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, application)
}
