// Package httpapi exposes the forecast over HTTP.
package httpapi

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rotisserie/eris"

	"github.com/saltline/surfcast/internal/forecast"
	"github.com/saltline/surfcast/internal/locations"
)

// ForecastService is the service surface the handlers need.
type ForecastService interface {
	GetOrRefresh(ctx context.Context) (*forecast.Forecast, error)
	RefreshNow(ctx context.Context) (*forecast.Forecast, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service ForecastService) {
	api := app.Group("/api")

	api.Get("/forecast", func(c *fiber.Ctx) error {
		f, err := service.GetOrRefresh(c.Context())
		if err != nil {
			if eris.Is(err, forecast.ErrNoForecast) {
				return fiber.NewError(fiber.StatusServiceUnavailable, "no forecast available")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load forecast")
		}
		return c.JSON(f)
	})

	api.Post("/refresh", func(c *fiber.Ctx) error {
		f, err := service.RefreshNow(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "forecast refresh failed")
		}
		return c.JSON(f)
	})

	api.Get("/locations", func(c *fiber.Ctx) error {
		return c.JSON(locations.All())
	})
}
