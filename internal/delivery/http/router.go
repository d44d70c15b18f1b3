package http

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, handler *Handler) {
	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Catalogs and live inputs
		api.Get("/reference", handler.GetReference)
		api.Get("/rates/live", handler.GetLiveRates)

		// Calculations
		api.Post("/history", handler.CalculateHistory)
		api.Post("/future", handler.CalculateFuture)
		api.Post("/assets/compare", handler.CompareAsset)
		api.Post("/commodities/basket", handler.CommodityBasket)
		api.Post("/assets/time-machine", handler.TimeMachine)
		api.Post("/personal-inflation", handler.PersonalInflation)

		// Generated insights
		api.Post("/insight/history", handler.HistoryInsight)
		api.Post("/insight/future", handler.FutureInsight)
		api.Get("/insight/property/:city", handler.CityPropertyPrice)

		// Per-client UI state
		api.Get("/preferences/:clientID", handler.GetPreferences)
		api.Put("/preferences/:clientID", handler.UpdatePreferences)
	}
}
