package shared

import (
	"errors"

	"github.com/optomarket/optomarket-api/internal/http/response"
	"github.com/optomarket/optomarket-api/internal/logger"
	"github.com/optomarket/optomarket-api/internal/service"

	"github.com/gin-gonic/gin"
)

var notFoundErrors = []error{
	service.ErrNotFound,
	service.ErrCategoryNotFound,
	service.ErrSupplierNotFound,
	service.ErrProductNotFound,
	service.ErrPriceNotFound,
	service.ErrCartItemNotFound,
	service.ErrFavoriteNotFound,
	service.ErrOrderNotFound,
	service.ErrApplicationNotFound,
	service.ErrDeliveryNotFound,
	service.ErrBannerNotFound,
}

var badRequestErrors = []error{
	service.ErrInvalidInput,
	service.ErrInvalidQuantity,
	service.ErrInvalidPaymentMethod,
	service.ErrInvalidStatusTransition,
	service.ErrDuplicateFavorite,
	service.ErrPriceExists,
	service.ErrArticleExists,
	service.ErrCategoryCycle,
	service.ErrEmailTaken,
}

// RespondServiceError maps service sentinels onto envelope codes. Unknown
// errors are logged with the request id and reported as internal.
func RespondServiceError(c *gin.Context, err error) {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			response.NotFound(c, sentinel.Error())
			return
		}
	}
	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			response.BadRequest(c, sentinel.Error())
			return
		}
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		response.Unauthorized(c, service.ErrInvalidCredentials.Error())
		return
	}
	logger.Errorw("request_failed",
		"request_id", c.GetString("request_id"),
		"path", c.FullPath(),
		"error", err,
	)
	response.Internal(c, "internal error")
}
