package admin

import (
	"github.com/optomarket/optomarket-api/internal/http/handlers/shared"
	"github.com/optomarket/optomarket-api/internal/http/response"
	"github.com/optomarket/optomarket-api/internal/models"

	"github.com/gin-gonic/gin"
)

type supplierPriceRequest struct {
	SupplierID    uint         `json:"supplier_id" binding:"required"`
	ProductID     uint         `json:"product_id" binding:"required"`
	Price         models.Money `json:"price"`
	DeliveryDays  int          `json:"delivery_days"`
	DeliveryLabel string       `json:"delivery_label"`
}

type supplierPriceUpdateRequest struct {
	Price         models.Money `json:"price"`
	DeliveryDays  int          `json:"delivery_days"`
	DeliveryLabel string       `json:"delivery_label"`
}

// ListSupplierPrices returns price rows with pagination.
func (h *Handler) ListSupplierPrices(c *gin.Context) {
	page, pageSize := shared.Pagination(c)
	prices, total, err := h.Prices.List(page, pageSize)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, prices, total, page, pageSize)
}

// CreateSupplierPrice adds a price row for a unique (supplier, product)
// pair.
func (h *Handler) CreateSupplierPrice(c *gin.Context) {
	var req supplierPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	price := &models.SupplierPrice{
		SupplierID:    req.SupplierID,
		ProductID:     req.ProductID,
		Price:         req.Price,
		DeliveryDays:  req.DeliveryDays,
		DeliveryLabel: req.DeliveryLabel,
	}
	if err := h.Prices.Create(c.Request.Context(), price); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "created", price)
}

// UpdateSupplierPrice changes price and delivery terms; the pair is fixed.
func (h *Handler) UpdateSupplierPrice(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid price id")
		return
	}
	var req supplierPriceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	price, err := h.Prices.Update(c.Request.Context(), id, req.Price, req.DeliveryDays, req.DeliveryLabel)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, price)
}

// DeleteSupplierPrice removes a price row.
func (h *Handler) DeleteSupplierPrice(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid price id")
		return
	}
	if err := h.Prices.Delete(c.Request.Context(), id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "deleted", nil)
}
