package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "franchisehub-backend/internal/adapter/http"
	"franchisehub-backend/internal/adapter/middleware"
	"franchisehub-backend/internal/adapter/repository/memory"
	"franchisehub-backend/internal/adapter/repository/mysql"
	"franchisehub-backend/internal/config"
	"franchisehub-backend/internal/event"
	"franchisehub-backend/internal/gateway"
	"franchisehub-backend/internal/infrastructure/cache"
	"franchisehub-backend/internal/infrastructure/db"
	"franchisehub-backend/internal/infrastructure/logging"
	"franchisehub-backend/internal/router"
	appuc "franchisehub-backend/internal/usecase/application"
	notifuc "franchisehub-backend/internal/usecase/notification"
	pshipuc "franchisehub-backend/internal/usecase/partnership"
	payuc "franchisehub-backend/internal/usecase/payment"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	// Simulated backend: in-memory store seeded with demo partnerships.
	sim := memory.NewStore()
	if err := sim.SeedDemo(); err != nil {
		log.Fatal("seed demo data", zap.Error(err))
	}

	sources := router.Sources{Simulated: sim}
	if cfg.RealBackendEnabled {
		gdb, err := db.OpenGorm(cfg.MySQLDSN())
		if err != nil {
			log.Fatal("open mysql", zap.Error(err))
		}
		sources.Real = mysql.NewGormUoW(gdb)
	}

	policy := router.NewPolicy(cfg.DemoAccounts, cfg.RealBackendEnabled, cfg.FallbackEnabled)
	rt := router.New(policy, sources, log)

	bus := event.NewBus()
	notifuc.NewDispatcher(sources, log).Register(bus)

	charger := gateway.NewSimulatedCharger()

	appUC := appuc.NewUsecase(rt, bus, cfg.RequireFeeBeforeApproval)
	payUC := payuc.NewUsecase(rt, bus, charger)
	pshipUC := pshipuc.NewUsecase(rt, bus)
	notifUC := notifuc.NewUsecase(rt)

	h := httpadp.NewHandler()
	appH := httpadp.NewApplicationHandler(appUC)
	payH := httpadp.NewPaymentHandler(payUC)
	pshipH := httpadp.NewPartnershipHandler(pshipUC)
	notifH := httpadp.NewNotificationHandler(notifUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("")
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Warn("redis unavailable, idempotency disabled", zap.Error(err))
		} else {
			api.Use(middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log))
		}
	}

	api.POST("/applications", appH.Create)
	api.GET("/applications", appH.List)
	api.GET("/applications/:application_id", appH.Get)
	api.GET("/applications/:application_id/timeline", appH.Timeline)
	api.POST("/applications/:application_id/submit", appH.Submit)
	api.POST("/applications/:application_id/review", appH.StartReview)
	api.POST("/applications/:application_id/approve", appH.Approve)
	api.POST("/applications/:application_id/reject", appH.Reject)
	api.POST("/applications/:application_id/withdraw", appH.Withdraw)

	api.POST("/payment-requests", payH.CreateRequest)
	api.GET("/payment-requests/:request_id", payH.GetRequest)
	api.POST("/payment-requests/:request_id/overdue", payH.MarkOverdue)
	api.POST("/payment-requests/:request_id/cancel", payH.Cancel)
	api.GET("/applications/:application_id/payment-requests", payH.ListRequests)
	api.POST("/payments/settle", payH.Settle)

	api.POST("/applications/:application_id/deactivate", pshipH.Deactivate)
	api.POST("/applications/:application_id/reactivate", pshipH.Reactivate)
	api.GET("/applications/:application_id/deactivations", pshipH.History)

	api.GET("/notifications", notifH.List)
	api.POST("/notifications/:notification_id/read", notifH.MarkRead)
	api.POST("/notifications/:notification_id/dismiss", notifH.Dismiss)

	addr := ":" + cfg.AppPort
	log.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
