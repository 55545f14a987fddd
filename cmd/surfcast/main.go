package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/saltline/surfcast/internal/api/http"
	"github.com/saltline/surfcast/internal/catalog"
	"github.com/saltline/surfcast/internal/conditions"
	"github.com/saltline/surfcast/internal/conditions/sources"
	"github.com/saltline/surfcast/internal/config"
	"github.com/saltline/surfcast/internal/forecast"
	"github.com/saltline/surfcast/internal/locations"
	"github.com/saltline/surfcast/internal/logging"
	"github.com/saltline/surfcast/internal/scheduler"
	"github.com/saltline/surfcast/internal/store"
	"github.com/saltline/surfcast/internal/watertemp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	loc, err := locations.ByID(cfg.LocationID)
	if err != nil {
		zlog.Fatalw("unknown location", "location", cfg.LocationID, "error", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		zlog.Fatalw("failed to load catalog", "error", err)
	}

	// Shared HTTP client for outbound upstream calls.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	// Conditions sources in priority order: marine zone text forecast,
	// then buoys, then the CO-OPS met station, then the land gridpoint.
	srcs := []conditions.Source{sources.NewNWSZone(httpClient, loc.MarineZone)}
	for _, station := range loc.NDBCStations {
		srcs = append(srcs, sources.NewNDBC(httpClient, station))
	}
	srcs = append(srcs,
		sources.NewCoopsWind(httpClient, loc.CoopsStation),
		sources.NewNWSGrid(httpClient, loc.Lat, loc.Lng),
	)
	chain := conditions.NewChain(zlog, srcs...)

	water := watertemp.NewResolver(httpClient, loc.CoopsStation, zlog)

	var cache forecast.Store
	switch cfg.CacheBackend {
	case config.CacheBackendSQLite:
		s, err := store.NewSQLiteStore(cfg.CachePath)
		if err != nil {
			zlog.Fatalw("failed to open cache database", "path", cfg.CachePath, "error", err)
		}
		defer s.Close()
		cache = s
	default:
		cache = store.NewFileStore(cfg.CachePath)
	}

	svc, err := forecast.NewService(loc, chain, water, cat, cache, cfg.CacheTTL, zlog)
	if err != nil {
		zlog.Fatalw("failed to build forecast service", "error", err)
	}

	sched := scheduler.New(svc, cfg.RefreshInterval, zlog)
	if err := sched.Start(); err != nil {
		zlog.Fatalw("failed to start scheduler", "error", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "surfcast",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  "surfcast",
			"location": loc.ID,
		})
	})

	httpapi.RegisterRoutes(app, svc)

	go func() {
		zlog.Infow("listening", "port", cfg.Port, "location", loc.ID)
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Errorw("fiber server stopped", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		zlog.Errorw("error during shutdown", "error", err)
	}
}
