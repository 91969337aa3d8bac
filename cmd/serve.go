package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"genonaut/config"
	"genonaut/di"
	"genonaut/driver/content_db"
	"genonaut/rest"
	"genonaut/utils/logger"
	"genonaut/utils/otel"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	otelShutdown, err := otel.InitProvider(ctx, otel.Config{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: version,
		Environment:    cfg.Telemetry.Environment,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		Enabled:        cfg.Telemetry.Enabled,
		SampleRatio:    cfg.Telemetry.SampleRatio,
	})
	if err != nil {
		logger.Logger.Warn("OpenTelemetry disabled", "error", err)
		cfg.Telemetry.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Logger.Error("failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	logger.InitLoggerWithConfig(cfg.Logging.Level, cfg.Logging.Format, cfg.Telemetry.Enabled)
	logger.Logger.InfoContext(ctx, "starting genonaut", "version", version, "port", cfg.Server.Port, "store_layout", cfg.Store.Layout)

	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg)

	errCh := make(chan error, 1)
	go func() {
		address := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Logger.InfoContext(ctx, "listening", "address", address)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Logger.Info("server exited properly")
	return nil
}

func openPool(ctx context.Context, cfg *config.Config) (content_db.PgxIface, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectionTimeout)
	defer cancel()

	pool, err := content_db.InitDBPool(connectCtx, content_db.PoolConfig{
		ConnString:      cfg.Database.ConnectionString(),
		MaxConns:        int32(cfg.Database.MaxConns),
		MinConns:        int32(cfg.Database.MinConns),
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}
