package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	appDomain "franchisehub-backend/internal/domain/application"
	"franchisehub-backend/internal/usecase/application"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type createApplicationReq struct {
	FranchiseID     string          `json:"franchise_id"      validate:"required"`
	BusinessOwnerID string          `json:"business_owner_id" validate:"required,hex32"`
	PartnerID       string          `json:"partner_id"        validate:"required,hex32"`
	ApplicationFee  decimal.Decimal `json:"application_fee"`
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), sessionFrom(c), application.CreateInput{
		FranchiseID:     req.FranchiseID,
		BusinessOwnerID: req.BusinessOwnerID,
		PartnerID:       req.PartnerID,
		ApplicationFee:  req.ApplicationFee,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	dto, err := h.uc.Submit(c.Request().Context(), sessionFrom(c), c.Param("application_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) StartReview(c echo.Context) error {
	dto, err := h.uc.StartReview(c.Request().Context(), sessionFrom(c), c.Param("application_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type approveReq struct {
	ReviewNotes string `json:"review_notes" validate:"required"`
}

func (h *ApplicationHandler) Approve(c echo.Context) error {
	var req approveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Approve(c.Request().Context(), sessionFrom(c), application.ApproveInput{
		ApplicationID: c.Param("application_id"),
		ReviewNotes:   req.ReviewNotes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type rejectReq struct {
	RejectionReason string `json:"rejection_reason" validate:"required"`
}

func (h *ApplicationHandler) Reject(c echo.Context) error {
	var req rejectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Reject(c.Request().Context(), sessionFrom(c), application.RejectInput{
		ApplicationID:   c.Param("application_id"),
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Withdraw(c echo.Context) error {
	dto, err := h.uc.Withdraw(c.Request().Context(), sessionFrom(c), c.Param("application_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), sessionFrom(c), c.Param("application_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Timeline(c echo.Context) error {
	entries, err := h.uc.Timeline(c.Request().Context(), sessionFrom(c), c.Param("application_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *ApplicationHandler) List(c echo.Context) error {
	var f appDomain.Filter
	if v := c.QueryParam("franchise_id"); v != "" {
		f.FranchiseID = &v
	}
	if v := c.QueryParam("business_owner_id"); v != "" {
		f.BusinessOwnerID = &v
	}
	if v := c.QueryParam("partner_id"); v != "" {
		f.PartnerID = &v
	}
	if v := c.QueryParam("status"); v != "" {
		st := appDomain.Status(v)
		f.Status = &st
	}
	dtos, err := h.uc.List(c.Request().Context(), sessionFrom(c), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
