package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"utsav-api/core/cache"
	"utsav-api/core/config"
	"utsav-api/core/database"
	"utsav-api/core/logger"
	coreMiddleware "utsav-api/core/middleware"
	"utsav-api/core/tasks"
	"utsav-api/modules/booking"
	"utsav-api/modules/competition"
	"utsav-api/modules/event"
	"utsav-api/modules/notification"
	"utsav-api/modules/participation"
	"utsav-api/modules/ticket"
	"utsav-api/modules/user"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run wires configuration, storage, the HTTP surface and the notification
// worker together and blocks until the process receives SIGINT or SIGTERM.
func Run() error {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	adminUserID, err := uuid.Parse(cfg.Platform.AdminUserID)
	if err != nil {
		return fmt.Errorf("invalid PLATFORM_ADMIN_USER_ID: %w", err)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init redis cache: %w", err)
	}

	mw := coreMiddleware.NewMiddleware(redisCache)

	dispatcher := tasks.NewDispatcher(cfg.Redis)
	defer dispatcher.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1")

	_, userRepo := user.Init(api, db, redisCache, mw)
	_, eventRepo := event.Init(api, db, mw)
	booking.Init(api, db, mw, userRepo, dispatcher)
	competition.Init(api, db, mw)
	participation.Init(api, db, mw, eventRepo, dispatcher)
	ticket.Init(api, db, mw, eventRepo, adminUserID, cfg.Platform.CommissionRate)
	notifSvc := notification.Init(api, db, mw)

	worker := tasks.NewWorker(cfg.Redis, notifSvc)
	go func() {
		if err := worker.Start(); err != nil {
			logger.Error("Server:Worker:Start:Error", "error", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("Server:Run:Listening", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Run:Error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server:Run:Shutdown:Start")
	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("Server:Run:Shutdown:Done")
	return nil
}
