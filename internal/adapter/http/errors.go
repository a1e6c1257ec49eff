package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	appDomain "franchisehub-backend/internal/domain/application"
	notifDomain "franchisehub-backend/internal/domain/notification"
	pshipDomain "franchisehub-backend/internal/domain/partnership"
	payDomain "franchisehub-backend/internal/domain/payment"
	"franchisehub-backend/internal/feecalc"
	"franchisehub-backend/pkg/apperr"
)

// writeError maps domain errors to HTTP codes. Validation failures are the
// caller's to fix; only external-service failures report a gateway problem.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, appDomain.ErrNotFound),
		errors.Is(err, payDomain.ErrRequestNotFound),
		errors.Is(err, payDomain.ErrTransactionNotFound),
		errors.Is(err, pshipDomain.ErrNotFound),
		errors.Is(err, notifDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appDomain.ErrInvalidTransition),
		errors.Is(err, payDomain.ErrInvalidRequestState),
		errors.Is(err, payDomain.ErrNotApproved),
		errors.Is(err, appDomain.ErrFeeUnpaid):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, feecalc.ErrInvalidAmount),
		errors.Is(err, appDomain.ErrMissingFields),
		errors.Is(err, appDomain.ErrMissingOutcome),
		errors.Is(err, appDomain.ErrMissingReason),
		errors.Is(err, payDomain.ErrInvalidPurpose),
		errors.Is(err, payDomain.ErrEmptySettlement),
		errors.Is(err, payDomain.ErrMixedPayers),
		errors.Is(err, payDomain.ErrNotDue),
		errors.Is(err, pshipDomain.ErrInvalidReason):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case apperr.IsExternal(err):
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})

	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
