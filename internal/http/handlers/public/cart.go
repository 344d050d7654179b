package public

import (
	"github.com/optomarket/optomarket-api/internal/http/handlers/shared"
	"github.com/optomarket/optomarket-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

type cartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// GetCart returns the user's cart, creating it on first access.
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	cart, err := h.Carts.Get(userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, cart)
}

// AddCartItem puts a product in the cart, incrementing an existing line.
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	cart, err := h.Carts.AddItem(userID, req.ProductID, req.Quantity)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, cart)
}

// SetCartItemQuantity overwrites a line quantity.
func (h *Handler) SetCartItemQuantity(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	cart, err := h.Carts.SetItemQuantity(userID, req.ProductID, req.Quantity)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, cart)
}

// RemoveCartItem drops a product from the cart.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := shared.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	productID, ok := shared.ParamUint(c, "product_id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	if err := h.Carts.RemoveItem(userID, productID); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "removed", nil)
}
