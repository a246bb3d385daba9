package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/appayon/table-reservation/internal/config"
	"github.com/appayon/table-reservation/internal/handler"
	"github.com/appayon/table-reservation/internal/metrics"
	"github.com/appayon/table-reservation/internal/middleware"
	"github.com/appayon/table-reservation/internal/notify"
	"github.com/appayon/table-reservation/internal/queue"
	"github.com/appayon/table-reservation/internal/repository"
	"github.com/appayon/table-reservation/internal/router"
	"github.com/appayon/table-reservation/internal/service"
	"github.com/appayon/table-reservation/internal/utils"
)

func main() {
	_ = godotenv.Load()

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	cfg := config.Load()

	passwordHash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		logger.Fatal().Err(err).Msg("hash admin password failed")
	}

	repo, err := repository.NewBookingRepo(cfg.DataFile, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DataFile).Msg("open booking store failed")
	}
	svc := service.NewBookingService(repo, logger)
	composer := notify.Composer{
		CountryCode:    cfg.CountryCode,
		RestaurantName: cfg.RestaurantName,
		BaseURL:        cfg.WhatsAppBaseURL,
	}

	metrics.Register()
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), config.NewRedisClient())

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterStatic(e, cfg.PublicDir)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg.AdminUsername, passwordHash, cfg.JWTSecret, cfg.AccessTTLMin))
	router.RegisterBookings(e, handler.NewBookingHandler(svc, composer, cfg.AMQPURL, logger), cfg.JWTSecret, limiter)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AMQPURL != "" {
		go queue.StartBookingConsumer(ctx, cfg.AMQPURL, cfg.LogDir, logger)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("reservation server started")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server error")
	}
}
