package admin

import (
	"github.com/optomarket/optomarket-api/internal/http/handlers/shared"
	"github.com/optomarket/optomarket-api/internal/http/response"
	"github.com/optomarket/optomarket-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type supplierRequest struct {
	Name          string `json:"name" binding:"required"`
	City          string `json:"city"`
	Rating        string `json:"rating"`
	ContactNumber string `json:"contact_number"`
	Logo          string `json:"logo"`
	CategoryIDs   []uint `json:"category_ids"`
}

func (r supplierRequest) toModel(id uint) (*models.Supplier, error) {
	rating := decimal.Zero
	if r.Rating != "" {
		parsed, err := decimal.NewFromString(r.Rating)
		if err != nil {
			return nil, err
		}
		rating = parsed
	}
	return &models.Supplier{
		ID:            id,
		Name:          r.Name,
		City:          r.City,
		Rating:        rating,
		ContactNumber: r.ContactNumber,
		Logo:          r.Logo,
	}, nil
}

// CreateSupplier adds a supplier and links its categories.
func (h *Handler) CreateSupplier(c *gin.Context) {
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	supplier, err := req.toModel(0)
	if err != nil {
		response.BadRequest(c, "invalid rating")
		return
	}
	if err := h.Suppliers.Create(supplier, req.CategoryIDs); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "created", supplier)
}

// UpdateSupplier saves supplier fields and replaces its category links.
func (h *Handler) UpdateSupplier(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid supplier id")
		return
	}
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	supplier, err := req.toModel(id)
	if err != nil {
		response.BadRequest(c, "invalid rating")
		return
	}
	if err := h.Suppliers.Update(supplier, req.CategoryIDs); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, supplier)
}

// DeleteSupplier removes a supplier and its category links.
func (h *Handler) DeleteSupplier(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid supplier id")
		return
	}
	if err := h.Suppliers.Delete(id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "deleted", nil)
}
