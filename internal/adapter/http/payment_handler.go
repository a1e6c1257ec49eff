package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	payDomain "franchisehub-backend/internal/domain/payment"
	"franchisehub-backend/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type createRequestReq struct {
	ApplicationID string          `json:"application_id" validate:"required,hex32"`
	Purpose       string          `json:"purpose"        validate:"required"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       *time.Time      `json:"due_date"`
}

func (h *PaymentHandler) CreateRequest(c echo.Context) error {
	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.CreateRequest(c.Request().Context(), sessionFrom(c), payment.CreateRequestInput{
		ApplicationID: req.ApplicationID,
		Purpose:       payDomain.Purpose(req.Purpose),
		Description:   req.Description,
		Amount:        req.Amount,
		DueDate:       req.DueDate,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type settleReq struct {
	RequestIDs    []string          `json:"request_ids"    validate:"required,min=1,dive,hex32"`
	PaymentMethod string            `json:"payment_method"`
	PayerDetails  map[string]string `json:"payer_details"`
}

func (h *PaymentHandler) Settle(c echo.Context) error {
	var req settleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Settle(c.Request().Context(), sessionFrom(c), payment.SettleInput{
		RequestIDs:    req.RequestIDs,
		PaymentMethod: req.PaymentMethod,
		PayerDetails:  req.PayerDetails,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) MarkOverdue(c echo.Context) error {
	dto, err := h.uc.MarkOverdue(c.Request().Context(), sessionFrom(c), c.Param("request_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) Cancel(c echo.Context) error {
	dto, err := h.uc.Cancel(c.Request().Context(), sessionFrom(c), c.Param("request_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) GetRequest(c echo.Context) error {
	dto, err := h.uc.GetRequest(c.Request().Context(), sessionFrom(c), c.Param("request_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) ListRequests(c echo.Context) error {
	var status *payDomain.RequestStatus
	if v := c.QueryParam("status"); v != "" {
		st := payDomain.RequestStatus(v)
		status = &st
	}
	dtos, err := h.uc.ListRequests(c.Request().Context(), sessionFrom(c), c.Param("application_id"), status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
