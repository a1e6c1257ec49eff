package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// Health is probed by the deployment; it must answer even when MySQL and
// redis are down, since the simulated backend keeps serving without them.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "franchisehub-api",
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
	})
}
