package service

import "errors"

// Sentinel errors returned by services. Handlers map these onto
// business response codes.
var (
	ErrNotFound                = errors.New("record not found")
	ErrCategoryNotFound        = errors.New("category not found")
	ErrCategoryCycle           = errors.New("category parent chain forms a cycle")
	ErrSupplierNotFound        = errors.New("supplier not found")
	ErrProductNotFound         = errors.New("product not found")
	ErrArticleExists           = errors.New("product article already in use")
	ErrPriceNotFound           = errors.New("supplier does not sell this product")
	ErrPriceExists             = errors.New("price for this supplier and product already exists")
	ErrInvalidQuantity         = errors.New("quantity must be positive")
	ErrCartItemNotFound        = errors.New("cart item not found")
	ErrDuplicateFavorite       = errors.New("already in favorites")
	ErrFavoriteNotFound        = errors.New("favorite not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrApplicationNotFound     = errors.New("application not found")
	ErrDeliveryNotFound        = errors.New("delivery not found")
	ErrBannerNotFound          = errors.New("banner not found")
	ErrInvalidPaymentMethod    = errors.New("unknown payment method")
	ErrInvalidStatusTransition = errors.New("status transition not allowed")
	ErrEmailTaken              = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrInvalidInput            = errors.New("invalid input")
)
