package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"escrow-dashboard/internal/config"
	"escrow-dashboard/internal/database"
	"escrow-dashboard/internal/handlers"
	appmiddleware "escrow-dashboard/internal/middleware"
	"escrow-dashboard/internal/repositories"
	"escrow-dashboard/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Handle healthcheck subcommand (for container healthchecks)
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	defaultUnit, err := services.ParseAmountUnit(cfg.Report.ChartUnit)
	if err != nil {
		log.Fatalf("Invalid REPORT_CHART_UNIT %q: %v", cfg.Report.ChartUnit, err)
	}

	// Services
	metrics := services.NewPrometheusMetrics()
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfigFrom("escrow_rows", cfg.Breaker), metrics)
	layoutRules := services.DefaultLayoutRules()

	entryRepo := repositories.NewEscrowEntryRepository(db.DB)
	reportService := services.NewReportService(
		entryRepo,
		breaker,
		metrics,
		services.ReportServiceConfig{
			CacheTTL:     cfg.Report.RowCacheTTL,
			CacheSize:    cfg.Report.RowCacheSize,
			QueryTimeout: cfg.Database.QueryTimeout,
			LayoutRules:  layoutRules,
		},
	)
	chartService := services.NewChartService(metrics, layoutRules)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health" || c.Request().URL.Path == "/metrics"
		},
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			rctx := c.Request().Context()
			if v.Error == nil {
				slog.InfoContext(rctx, "request completed",
					"trace_id", appmiddleware.GetTraceID(c),
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				slog.ErrorContext(rctx, "request failed",
					"trace_id", appmiddleware.GetTraceID(c),
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))
	e.Use(appmiddleware.SecurityHeaders())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(middleware.BodyLimit("1M"))

	rateLimiter := appmiddleware.NewRateLimiter(cfg.RateLimit)

	handlers.RegisterRoutes(e,
		handlers.NewHealthCheckHandler(db, breaker),
		handlers.NewReportHandler(reportService, defaultUnit),
		handlers.NewChartHandler(chartService),
		rateLimiter.Middleware(),
	)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if cfg.IsDevelopment() {
		generator := services.NewEntryGenerator(uint64(time.Now().UnixNano()))
		handlers.RegisterDevRoutes(e, handlers.NewDevHandler(entryRepo, generator, reportService))
	}

	slog.InfoContext(ctx, "starting escrow dashboard server",
		"address", cfg.Server.Address(),
		"environment", cfg.Server.Environment,
		"row_cache_ttl", cfg.Report.RowCacheTTL,
		"chart_unit", defaultUnit)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		rateLimiter.RunCleanup(gCtx, time.Minute)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited properly")
}

func initLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.IsDevelopment() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// runHealthcheck performs a health check against the local server.
func runHealthcheck() error {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://localhost:%s/health", port))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}
