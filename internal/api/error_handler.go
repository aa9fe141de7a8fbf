package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quickshop/storefront-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// optional fields carry the structured detail from the domain error so a
// client can render a precise message.
type errorResponse struct {
	Error     string `json:"error"`
	ProductID string `json:"product_id,omitempty"`
	Requested int    `json:"requested,omitempty"`
	Available int    `json:"available,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs persistence failures and unexpected errors internally without
//     leaking details to the client.
//   - Renders a consistent JSON envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic HTTP codes.
	var notFound *domain.ProductNotFoundError
	var insufficient *domain.InsufficientStockError
	var invalidQty *domain.InvalidQuantityError
	var persistence *domain.PersistenceError

	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest, errorResponse{Error: "cart is empty"}
	case errors.As(err, &invalidQty):
		return http.StatusBadRequest, errorResponse{
			Error:     "invalid quantity",
			ProductID: invalidQty.ProductID,
			Quantity:  invalidQty.Quantity,
		}
	case errors.As(err, &notFound):
		return http.StatusNotFound, errorResponse{
			Error:     "product not found",
			ProductID: notFound.ProductID,
		}
	case errors.As(err, &insufficient):
		return http.StatusConflict, errorResponse{
			Error:     "insufficient stock",
			ProductID: insufficient.ProductID,
			Requested: insufficient.Requested,
			Available: insufficient.Available,
		}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, errorResponse{Error: "user already exists"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "user not found"}
	case errors.As(err, &persistence):
		// Not user error: the request hit an unwritable or unreadable
		// store. Log distinctly from validation failures.
		log.Error().
			Err(err).
			Str("op", persistence.Op).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("persistence failure")
		return http.StatusInternalServerError, errorResponse{Error: "storage unavailable"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
