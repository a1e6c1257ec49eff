package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"franchisehub-backend/internal/auth"
)

// Session headers set by the authentication collaborator in front of this
// service. An absent Ax-User-Id means anonymous, which routes to the
// simulated backend.
const (
	headerUserID    = "Ax-User-Id"
	headerUserEmail = "Ax-User-Email"
	headerUserRole  = "Ax-User-Role"
)

func sessionFrom(c echo.Context) auth.Session {
	h := c.Request().Header
	return auth.Session{
		UserID: strings.TrimSpace(h.Get(headerUserID)),
		Email:  strings.TrimSpace(h.Get(headerUserEmail)),
		Role:   auth.Role(strings.TrimSpace(h.Get(headerUserRole))),
	}
}
