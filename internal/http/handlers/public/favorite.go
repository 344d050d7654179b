package public

import (
	"github.com/optomarket/optomarket-api/internal/http/handlers/shared"
	"github.com/optomarket/optomarket-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

type favoriteRequest struct {
	ProductID  uint  `json:"product_id" binding:"required"`
	SupplierID *uint `json:"supplier_id"`
}

// ListFavorites returns the user's favorites.
func (h *Handler) ListFavorites(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	favorites, err := h.Favorites.List(userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, favorites)
}

// AddFavorite records a favorite for a product, optionally pinned to a
// supplier.
func (h *Handler) AddFavorite(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	favorite, err := h.Favorites.Add(userID, req.ProductID, req.SupplierID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "added", favorite)
}

// RemoveFavorite deletes a favorite and re-derives the denormalized flags.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := h.Favorites.Remove(userID, req.ProductID, req.SupplierID); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "removed", nil)
}
