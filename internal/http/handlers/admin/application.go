package admin

import (
	"github.com/optomarket/optomarket-api/internal/http/handlers/shared"
	"github.com/optomarket/optomarket-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

type applicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListApplications returns applications across all users, optionally
// filtered by status.
func (h *Handler) ListApplications(c *gin.Context) {
	page, pageSize := shared.Pagination(c)
	applications, total, err := h.Applications.ListAll(page, pageSize, c.Query("status"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, applications, total, page, pageSize)
}

// GetApplication returns one application with its orders.
func (h *Handler) GetApplication(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid application id")
		return
	}
	application, err := h.Applications.GetAny(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, application)
}

// UpdateApplicationStatus moves an application along pending -> delivering
// -> completed.
func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid application id")
		return
	}
	var req applicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	application, err := h.Applications.AdvanceStatus(id, req.Status)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, application)
}
