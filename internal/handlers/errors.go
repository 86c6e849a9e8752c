package handlers

import (
	"errors"

	"github.com/dimitrije/sharevault/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
)

// respondError maps service errors onto HTTP statuses. Anything unrecognized
// becomes a 500 carrying only fallback.
func respondError(c *drift.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrInsufficientBalance):
		_ = c.JSON(422, map[string]string{
			"code":    "INSUFFICIENT_BALANCE",
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrOverflow):
		_ = c.JSON(422, map[string]string{
			"code":    "OVERFLOW",
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrVaultAlreadyExists), errors.Is(err, services.ErrAssetAlreadyExists):
		_ = c.JSON(409, map[string]string{
			"code":    "CONFLICT",
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrAssetMismatch),
		errors.Is(err, services.ErrVaultMismatch),
		errors.Is(err, services.ErrSelfMerge):
		c.BadRequest(err.Error())
	case errors.Is(err, services.ErrVaultNotFound),
		errors.Is(err, services.ErrCoinNotFound),
		errors.Is(err, services.ErrShareNotFound),
		errors.Is(err, services.ErrAssetNotFound),
		errors.Is(err, services.ErrAccountNotFound):
		c.NotFound(err.Error())
	case errors.Is(err, services.ErrAdminCapInvalid):
		c.Forbidden(err.Error())
	default:
		c.InternalServerError(fallback)
	}
}
