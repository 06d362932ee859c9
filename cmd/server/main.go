package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kosarica/price-comparator/config"
	_ "github.com/kosarica/price-comparator/docs"
	"github.com/kosarica/price-comparator/internal/analysis"
	"github.com/kosarica/price-comparator/internal/app"
	"github.com/kosarica/price-comparator/internal/handlers"
	"github.com/kosarica/price-comparator/internal/middleware"
	"github.com/kosarica/price-comparator/internal/sweepers"
	"github.com/kosarica/price-comparator/internal/telemetry"
)

var version = "dev"

// @title Price Comparator API
// @version 1.0
// @description Grocery price comparison, discount discovery, basket optimization and price alerts.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := initLogger(cfg.Logging)

	logger.Info().Str("version", version).Msg("Starting price comparator")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		Endpoint:       cfg.Telemetry.Endpoint,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: version,
		Environment:    cfg.Telemetry.Environment,
		SampleRatio:    cfg.Telemetry.SampleRatio,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize telemetry")
	}

	backend, err := app.Open(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open catalog")
	}
	defer backend.Close()

	ingester := backend.Ingester()
	if cfg.Data.IngestOnStart {
		summary, err := ingester.Run(ctx, "")
		if err != nil {
			logger.Fatal().Err(err).Msg("Initial ingestion failed")
		}
		logger.Info().
			Int("files", len(summary.Files)).
			Int("snapshots", summary.SnapshotsInserted).
			Int("discounts", summary.DiscountsInserted).
			Msg("Initial ingestion done")
	}

	analyzer := analysis.NewAnalyzer(backend.Catalog)
	alertService := analysis.NewAlertService(backend.Catalog, analyzer)
	handlers.Init(analyzer, alertService)
	handlers.InitIngestion(ingester)

	var alertSweeper *sweepers.AlertSweeper
	if cfg.Alerts.SweepSchedule != "" {
		alertSweeper, err = sweepers.NewAlertSweeper(alertService, cfg.Alerts.SweepSchedule, cfg.Alerts.SweepTimeout)
		if err != nil {
			logger.Fatal().Err(err).Msg("Invalid alert sweep schedule")
		}
		if err := alertSweeper.Start(); err != nil {
			logger.Fatal().Err(err).Msg("Failed to start alert sweeper")
		}
	}

	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	opts := handlers.RouteOptions{APIKey: cfg.Auth.APIKey}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstSize:         cfg.RateLimit.Burst,
		})
		go limiter.Run(ctx, time.Minute)
		opts.RateLimiter = limiter
	}
	handlers.RegisterRoutes(router, opts)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	stop()

	logger.Info().Msg("Shutting down server...")
	if alertSweeper != nil {
		alertSweeper.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Failed to flush telemetry")
	}

	logger.Info().Msg("Server exited")
}

func initLogger(cfg config.LoggingConfig) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer
	if cfg.Format == "json" {
		output = os.Stdout
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg.NoColor}
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Str("service", "price-comparator").Logger()
	// Component loggers derive from the global logger
	log.Logger = logger
	return &logger
}
