package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"franchisehub-backend/internal/usecase/notification"
)

type NotificationHandler struct{ uc *notification.Usecase }

func NewNotificationHandler(uc *notification.Usecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) List(c echo.Context) error {
	unreadOnly := c.QueryParam("unread") == "true"
	dtos, err := h.uc.List(c.Request().Context(), sessionFrom(c), unreadOnly)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	dto, err := h.uc.MarkRead(c.Request().Context(), sessionFrom(c), c.Param("notification_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *NotificationHandler) Dismiss(c echo.Context) error {
	dto, err := h.uc.Dismiss(c.Request().Context(), sessionFrom(c), c.Param("notification_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
