// Command server runs the AI Market storefront.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	app "github.com/aimarket/storefront/internal/app"
	"github.com/aimarket/storefront/internal/app/httpapi"
	"github.com/aimarket/storefront/internal/app/metrics"
	paymentsvc "github.com/aimarket/storefront/internal/app/services/payment"
	"github.com/aimarket/storefront/internal/config"
	"github.com/aimarket/storefront/internal/middleware"
	"github.com/aimarket/storefront/pkg/logger"
)

func main() {
	// Values already present in the environment win over .env entries.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.NewDefault("server").WithError(err).Error("load configuration")
		os.Exit(1)
	}

	log := logger.New(logger.LoggingConfig{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	application, err := app.New(app.Stores{}, app.Options{
		Credentials: paymentsvc.Credentials{
			ClientID:     cfg.PayPal.ClientID,
			ClientSecret: cfg.PayPal.ClientSecret,
			APIBase:      cfg.PayPal.APIBase,
		},
	}, log)
	if err != nil {
		log.WithError(err).Error("build application")
		os.Exit(1)
	}

	handler := buildHandler(application, cfg, log)
	server := httpapi.NewServer(cfg.Server, handler, log)
	if err := application.Attach(server); err != nil {
		log.WithError(err).Error("register http server")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := application.Start(ctx); err != nil {
		log.WithError(err).Error("start application")
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Infof("received %s, shutting down", sig)
	case err := <-server.Err():
		log.WithError(err).Error("http server failed")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := application.Stop(shutdownCtx); err != nil {
		log.WithError(err).Warn("shutdown incomplete")
	}
}

func buildHandler(application *app.Application, cfg *config.Config, log *logger.Logger) http.Handler {
	handler := httpapi.NewHandler(application, cfg.PayPal.ClientID)
	handler = metrics.InstrumentHandler(handler)
	handler = middleware.NewRateLimiter(cfg.HTTP.RateLimitPerSecond, cfg.HTTP.RateLimitBurst, log).Handler(handler)
	handler = middleware.NewCORSMiddleware(cfg.HTTP.AllowedOrigins()).Handler(handler)
	handler = middleware.NewTracingMiddleware(log).Handler(handler)
	return handler
}
