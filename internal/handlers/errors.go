package handlers

import (
	"errors"

	"stockflow/internal/common"
	"stockflow/internal/services"

	"github.com/labstack/echo/v4"
)

// respondServiceError maps the service error taxonomy onto HTTP responses.
// Anything outside the taxonomy is a store failure surfaced as 500.
func respondServiceError(c echo.Context, err error) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return common.SendValidationError(c, validationErr.Field, validationErr.Message)
	case errors.Is(err, services.ErrItemNotFound):
		return common.SendNotFoundError(c, "Item")
	case errors.Is(err, services.ErrInsufficientStock):
		return common.SendClientError(c, "Insufficient stock")
	default:
		return common.SendServerError(c, "Operation could not be completed")
	}
}
