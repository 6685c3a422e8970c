package http

import (
	"errors"
	"net/http"

	appDomain "loanmarket-backend/internal/domain/application"
	archiveDomain "loanmarket-backend/internal/domain/archive"
	paymentDomain "loanmarket-backend/internal/domain/payment"
	productDomain "loanmarket-backend/internal/domain/product"
	userDomain "loanmarket-backend/internal/domain/user"
	"loanmarket-backend/internal/usecase/catalog"
	"loanmarket-backend/internal/usecase/registry"
	"loanmarket-backend/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// writeError maps domain sentinels onto the HTTP taxonomy:
// NotFound 404, Conflict 409, Forbidden 403, InvalidArgument 400,
// everything else Internal 500.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, appDomain.ErrNotFound),
		errors.Is(err, productDomain.ErrNotFound),
		errors.Is(err, archiveDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrNotFound),
		errors.Is(err, paymentDomain.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appDomain.ErrAlreadyDecided),
		errors.Is(err, appDomain.ErrNotCancellable):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appDomain.ErrNotOwner):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appDomain.ErrBadDecision),
		errors.Is(err, appDomain.ErrEmptyPaymentRef),
		errors.Is(err, productDomain.ErrBadAvailability),
		errors.Is(err, userDomain.ErrBadRole),
		errors.Is(err, registry.ErrInvalidEmail),
		errors.Is(err, catalog.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	default:
		logger.FromContext(c).Error("request failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
