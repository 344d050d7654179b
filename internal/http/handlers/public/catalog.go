package public

import (
	"github.com/optomarket/optomarket-api/internal/http/handlers/shared"
	"github.com/optomarket/optomarket-api/internal/http/response"
	"github.com/optomarket/optomarket-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// CategoryTree returns the full category forest with supplier counts.
func (h *Handler) CategoryTree(c *gin.Context) {
	tree, err := h.Categories.Tree()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, tree)
}

// ListBanners returns the active storefront banners.
func (h *Handler) ListBanners(c *gin.Context) {
	banners, err := h.Banners.ListActive()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, banners)
}

// ListSuppliers returns suppliers with optional search/city/category
// filters.
func (h *Handler) ListSuppliers(c *gin.Context) {
	page, pageSize := shared.Pagination(c)
	suppliers, total, err := h.Suppliers.List(repository.SupplierListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     c.Query("search"),
		City:       c.Query("city"),
		CategoryID: shared.QueryUint(c, "category_id"),
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, suppliers, total, page, pageSize)
}

// GetSupplier returns one supplier with its categories.
func (h *Handler) GetSupplier(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid supplier id")
		return
	}
	supplier, err := h.Suppliers.Get(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, supplier)
}

// ListProducts returns products with optional search/category/city filters.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := shared.Pagination(c)
	products, total, err := h.Products.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		Search:       c.Query("search"),
		City:         c.Query("city"),
		CategoryID:   shared.QueryUint(c, "category_id"),
		WithCategory: true,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, products, total, page, pageSize)
}

// GetProduct returns one product with its category.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	product, err := h.Products.Get(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, product)
}
