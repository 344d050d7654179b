package admin

import (
	"github.com/optomarket/optomarket-api/internal/http/handlers/shared"
	"github.com/optomarket/optomarket-api/internal/http/response"
	"github.com/optomarket/optomarket-api/internal/models"

	"github.com/gin-gonic/gin"
)

type productRequest struct {
	Name            string      `json:"name" binding:"required"`
	Article         string      `json:"article" binding:"required"`
	Description     string      `json:"description"`
	Characteristics models.JSON `json:"characteristics"`
	City            string      `json:"city"`
	Photo           string      `json:"photo"`
	CategoryID      *uint       `json:"category_id"`
}

func (r productRequest) toModel(id uint) *models.Product {
	return &models.Product{
		ID:              id,
		Name:            r.Name,
		Article:         r.Article,
		Description:     r.Description,
		Characteristics: r.Characteristics,
		City:            r.City,
		Photo:           r.Photo,
		CategoryID:      r.CategoryID,
	}
}

// CreateProduct adds a product; the article must be unique.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	product := req.toModel(0)
	if err := h.Products.Create(product); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "created", product)
}

// UpdateProduct saves product fields.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	product := req.toModel(id)
	if err := h.Products.Update(product); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes a product.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	if err := h.Products.Delete(id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "deleted", nil)
}
