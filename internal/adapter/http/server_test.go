package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"franchisehub-backend/internal/adapter/repository/memory"
	"franchisehub-backend/internal/event"
	"franchisehub-backend/internal/gateway"
	"franchisehub-backend/internal/router"
	appuc "franchisehub-backend/internal/usecase/application"
	notifuc "franchisehub-backend/internal/usecase/notification"
	pshipuc "franchisehub-backend/internal/usecase/partnership"
	payuc "franchisehub-backend/internal/usecase/payment"
)

// newServer wires the full stack over the in-memory backend, mirroring
// cmd/api but without redis or a real database.
func newServer(t *testing.T) (*echo.Echo, *gateway.SimulatedCharger) {
	t.Helper()

	store := memory.NewStore()
	sources := router.Sources{Simulated: store}
	rt := router.New(router.NewPolicy(nil, false, false), sources, nil)

	bus := event.NewBus()
	notifuc.NewDispatcher(sources, nil).Register(bus)

	charger := gateway.NewSimulatedCharger()

	appH := NewApplicationHandler(appuc.NewUsecase(rt, bus, false))
	payH := NewPaymentHandler(payuc.NewUsecase(rt, bus, charger))
	pshipH := NewPartnershipHandler(pshipuc.NewUsecase(rt, bus))
	notifH := NewNotificationHandler(notifuc.NewUsecase(rt))

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	e.POST("/applications", appH.Create)
	e.GET("/applications", appH.List)
	e.GET("/applications/:application_id", appH.Get)
	e.GET("/applications/:application_id/timeline", appH.Timeline)
	e.POST("/applications/:application_id/submit", appH.Submit)
	e.POST("/applications/:application_id/review", appH.StartReview)
	e.POST("/applications/:application_id/approve", appH.Approve)
	e.POST("/applications/:application_id/reject", appH.Reject)
	e.POST("/applications/:application_id/withdraw", appH.Withdraw)

	e.POST("/payment-requests", payH.CreateRequest)
	e.GET("/payment-requests/:request_id", payH.GetRequest)
	e.POST("/payment-requests/:request_id/overdue", payH.MarkOverdue)
	e.POST("/payment-requests/:request_id/cancel", payH.Cancel)
	e.GET("/applications/:application_id/payment-requests", payH.ListRequests)
	e.POST("/payments/settle", payH.Settle)

	e.POST("/applications/:application_id/deactivate", pshipH.Deactivate)
	e.POST("/applications/:application_id/reactivate", pshipH.Reactivate)
	e.GET("/applications/:application_id/deactivations", pshipH.History)

	e.GET("/notifications", notifH.List)
	e.POST("/notifications/:notification_id/read", notifH.MarkRead)
	e.POST("/notifications/:notification_id/dismiss", notifH.Dismiss)

	return e, charger
}

func doJSON(t *testing.T, e *echo.Echo, method, target, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID != "" {
		req.Header.Set("Ax-User-Id", userID)
		req.Header.Set("Ax-User-Email", "user@example.com")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v; raw=%s", err, rec.Body.String())
	}
	return out
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body=%s", rec.Code, want, rec.Body.String())
	}
}
