// File: cmd/service/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"login-gate/internal/config"
	"login-gate/internal/logging"
	appmw "login-gate/internal/middleware"
	"login-gate/internal/router"
	"login-gate/internal/service"
	"login-gate/internal/web"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

var (
	loadConfig     = func(l *zap.Logger) (*config.Config, error) { return config.Load(l) }
	newLogger      = logging.New
	newAssets      = web.Assets
	startServer    = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	notifyContext  = signal.NotifyContext
	exitFunc       = os.Exit
)

func run() error {
	// 設定載入前先用 info 等級
	boot, err := newLogger("info")
	if err != nil {
		return fmt.Errorf("建立 logger 失敗: %w", err)
	}
	defer func() { _ = boot.Sync() }()

	cfg, err := loadConfig(boot)
	if err != nil {
		return fmt.Errorf("載入設定失敗: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("建立 logger 失敗: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	gate := service.NewCredentialGate(cfg.Reference())
	if !gate.Configured() {
		logger.Warn("admin credentials not configured, every login resolves to the standard page")
	}

	assets, err := newAssets(cfg.PublicDir)
	if err != nil {
		return fmt.Errorf("載入頁面失敗: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(appmw.RequestLogger(logger))

	if err := router.Setup(e, router.Deps{Gate: gate, Assets: assets, Logger: logger}); err != nil {
		return err
	}

	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := startServer
	errCh := make(chan error, 1)
	go func() { errCh <- start(e, cfg.Addr()) }()
	logger.Info("server running", zap.String("port", cfg.Port))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("啟動服務失敗: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := shutdownServer(shutdownCtx, e); err != nil {
		return fmt.Errorf("關閉服務失敗: %w", err)
	}
	// 等待 Start 回傳
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("服務異常結束: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
