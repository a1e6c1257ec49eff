package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	pshipDomain "franchisehub-backend/internal/domain/partnership"
	"franchisehub-backend/internal/usecase/partnership"
)

type PartnershipHandler struct{ uc *partnership.Usecase }

func NewPartnershipHandler(uc *partnership.Usecase) *PartnershipHandler {
	return &PartnershipHandler{uc: uc}
}

type deactivateReq struct {
	Reason string `json:"reason" validate:"required"`
	Notes  string `json:"notes"`
}

func (h *PartnershipHandler) Deactivate(c echo.Context) error {
	var req deactivateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Deactivate(c.Request().Context(), sessionFrom(c), partnership.DeactivateInput{
		ApplicationID: c.Param("application_id"),
		Reason:        pshipDomain.DeactivationReason(req.Reason),
		Notes:         req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PartnershipHandler) Reactivate(c echo.Context) error {
	dto, err := h.uc.Reactivate(c.Request().Context(), sessionFrom(c), c.Param("application_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PartnershipHandler) History(c echo.Context) error {
	dtos, err := h.uc.History(c.Request().Context(), sessionFrom(c), c.Param("application_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
