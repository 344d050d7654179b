package admin

import (
	"github.com/optomarket/optomarket-api/internal/http/handlers/shared"
	"github.com/optomarket/optomarket-api/internal/http/response"
	"github.com/optomarket/optomarket-api/internal/models"

	"github.com/gin-gonic/gin"
)

type bannerRequest struct {
	Title      string `json:"title" binding:"required"`
	Photo      string `json:"photo"`
	CategoryID *uint  `json:"category_id"`
	SupplierID *uint  `json:"supplier_id"`
	ProductID  *uint  `json:"product_id"`
	IsActive   *bool  `json:"is_active"`
	SortOrder  int    `json:"sort_order"`
}

func (r bannerRequest) toModel(id uint) *models.Banner {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &models.Banner{
		ID:         id,
		Title:      r.Title,
		Photo:      r.Photo,
		CategoryID: r.CategoryID,
		SupplierID: r.SupplierID,
		ProductID:  r.ProductID,
		IsActive:   active,
		SortOrder:  r.SortOrder,
	}
}

// ListBanners returns every banner, active or not.
func (h *Handler) ListBanners(c *gin.Context) {
	banners, err := h.Banners.ListAll()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, banners)
}

// CreateBanner adds a banner.
func (h *Handler) CreateBanner(c *gin.Context) {
	var req bannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	banner := req.toModel(0)
	if err := h.Banners.Create(banner); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "created", banner)
}

// UpdateBanner saves banner fields.
func (h *Handler) UpdateBanner(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid banner id")
		return
	}
	var req bannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	banner := req.toModel(id)
	if err := h.Banners.Update(banner); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, banner)
}

// DeleteBanner removes a banner.
func (h *Handler) DeleteBanner(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid banner id")
		return
	}
	if err := h.Banners.Delete(id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "deleted", nil)
}
