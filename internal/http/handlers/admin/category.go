package admin

import (
	"github.com/optomarket/optomarket-api/internal/http/handlers/shared"
	"github.com/optomarket/optomarket-api/internal/http/response"
	"github.com/optomarket/optomarket-api/internal/models"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name      string `json:"name" binding:"required"`
	ParentID  *uint  `json:"parent_id"`
	SortOrder int    `json:"sort_order"`
}

// CreateCategory adds a category to the tree.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	category := &models.Category{
		Name:      req.Name,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
	}
	if err := h.Categories.Create(category); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "created", category)
}

// UpdateCategory renames or re-parents a category. Re-parenting that would
// create a cycle is rejected.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid category id")
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	category := &models.Category{
		ID:        id,
		Name:      req.Name,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
	}
	if err := h.Categories.Update(category); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes a category; children become roots.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid category id")
		return
	}
	if err := h.Categories.Delete(id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "deleted", nil)
}
