package http

import (
	"errors"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/rupeerewind/backend/internal/domain"
	"github.com/rupeerewind/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	calculator  *service.CalculatorService
	assets      *service.AssetService
	insights    *service.InsightService
	preferences *service.PreferenceService
	repo        service.DataRepository
}

// NewHandler creates a new handler
func NewHandler(
	calculator *service.CalculatorService,
	assets *service.AssetService,
	insights *service.InsightService,
	preferences *service.PreferenceService,
	repo service.DataRepository,
) *Handler {
	return &Handler{
		calculator:  calculator,
		assets:      assets,
		insights:    insights,
		preferences: preferences,
		repo:        repo,
	}
}

// historyRequest is the wire form of a history calculation; the city is
// referenced by catalog name.
type historyRequest struct {
	Amount                 float64             `json:"amount"`
	OriginYear             int                 `json:"origin_year"`
	AnnualIncrementPct     float64             `json:"annual_increment_pct"`
	IncludeLifestyleBuffer bool                `json:"include_lifestyle_buffer"`
	CityTierMove           domain.CityTierMove `json:"city_tier_move"`
	City                   string              `json:"city"`
	IndustryID             string              `json:"industry_id"`
	DomainID               string              `json:"domain_id"`
}

type personalInflationRequest struct {
	Shares map[string]float64 `json:"shares"`
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	database := "ok"
	if err := h.repo.Health(c.Context()); err != nil {
		log.Printf("Health check: %v", err)
		database = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "rupeerewind-backend",
		"version":  "1.0.0",
		"database": database,
		"ai":       h.insights.Available(),
	})
}

// GetReference returns the catalogs a client needs to build its forms
func (h *Handler) GetReference(c *fiber.Ctx) error {
	store := h.calculator.Store()

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"current_year":           store.CurrentYear,
			"min_year":               store.MinYear,
			"years":                  store.Years(),
			"default_inflation_rate": store.DefaultInflationRate,
			"cities":                 store.Cities,
			"domains":                store.Domains,
			"industries":             store.Industries,
			"mutual_funds":           store.MutualFunds,
			"assets":                 store.Assets,
			"investments":            store.Investments(),
			"commodities":            store.Commodities,
			"events":                 store.Events,
			"category_rates":         store.CategoryRates,
		},
	})
}

// GetLiveRates returns the live inflation rate and gold price, if available
func (h *Handler) GetLiveRates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.calculator.LiveRates(c.Context()),
	})
}

// CalculateHistory values a past amount in today's terms
func (h *Handler) CalculateHistory(c *fiber.Ctx) error {
	var body historyRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	store := h.calculator.Store()
	city := store.DefaultCity()
	if body.City != "" {
		var ok bool
		if city, ok = store.City(body.City); !ok {
			return h.fail(domain.ErrUnknownCity)
		}
	}

	report, err := h.calculator.History(c.Context(), domain.CalculationRequest{
		Amount:                 body.Amount,
		OriginYear:             body.OriginYear,
		AnnualIncrementPct:     body.AnnualIncrementPct,
		IncludeLifestyleBuffer: body.IncludeLifestyleBuffer,
		CityTierMove:           body.CityTierMove,
		City:                   city,
		IndustryID:             body.IndustryID,
		DomainID:               body.DomainID,
	})
	if err != nil {
		return h.fail(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}

// CalculateFuture projects a current amount forward; ?shock=true adds a stressed rerun
func (h *Handler) CalculateFuture(c *fiber.Ctx) error {
	var req domain.FutureCalculationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	report, err := h.calculator.Future(c.Context(), req, c.QueryBool("shock", false))
	if err != nil {
		return h.fail(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}

// HistoryInsight returns prose about a history result
func (h *Handler) HistoryInsight(c *fiber.Ctx) error {
	var result domain.CalculationResult
	if err := c.BodyParser(&result); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if result.OriginalAmount <= 0 || result.AdjustedAmount <= 0 {
		return h.fail(domain.ErrInvalidAmount)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.insights.HistoryInsight(c.Context(), result),
	})
}

// FutureInsight returns prose about a future result
func (h *Handler) FutureInsight(c *fiber.Ctx) error {
	var result domain.FuturePredictionResult
	if err := c.BodyParser(&result); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if result.CurrentAmount <= 0 {
		return h.fail(domain.ErrInvalidAmount)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.insights.FutureInsight(c.Context(), result),
	})
}

// CityPropertyPrice returns the model's estimate of a city's price per sqft
func (h *Handler) CityPropertyPrice(c *fiber.Ctx) error {
	store := h.calculator.Store()
	name, err := url.PathUnescape(c.Params("city"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid city")
	}
	city, ok := store.City(name)
	if !ok {
		return h.fail(domain.ErrUnknownCity)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"city":           city.Name,
			"price_per_sqft": h.insights.CityPropertyPrice(c.Context(), city.Name, store.CurrentYear-1),
		},
	})
}

// CompareAsset prices a benchmark or free-text product then and now
func (h *Handler) CompareAsset(c *fiber.Ctx) error {
	var req domain.AssetComparisonRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	cmp, err := h.assets.Compare(c.Context(), req)
	if err != nil {
		return h.fail(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    cmp,
	})
}

// CommodityBasket compares commodity quantities affordable then and now
func (h *Handler) CommodityBasket(c *fiber.Ctx) error {
	var req domain.BasketRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	basket, err := h.assets.Basket(req)
	if err != nil {
		return h.fail(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    basket,
		"count":   len(basket),
	})
}

// TimeMachine values a past lump sum invested in index, metals and property
func (h *Handler) TimeMachine(c *fiber.Ctx) error {
	var req domain.TimeMachineRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	outcomes, err := h.assets.TimeMachine(req)
	if err != nil {
		return h.fail(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    outcomes,
		"count":   len(outcomes),
	})
}

// PersonalInflation weights category inflation by expense shares
func (h *Handler) PersonalInflation(c *fiber.Ctx) error {
	var req personalInflationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := h.calculator.PersonalInflation(req.Shares)
	if err != nil {
		return h.fail(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    res,
	})
}

// GetPreferences returns a client's stored UI state
func (h *Handler) GetPreferences(c *fiber.Ctx) error {
	prefs, err := h.preferences.Get(c.Context(), c.Params("clientID"))
	if err != nil {
		return h.fail(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    prefs,
	})
}

// UpdatePreferences stores a client's UI state
func (h *Handler) UpdatePreferences(c *fiber.Ctx) error {
	var upd service.PreferencesUpdate
	if err := c.BodyParser(&upd); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	prefs, err := h.preferences.Update(c.Context(), c.Params("clientID"), upd)
	if err != nil {
		return h.fail(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    prefs,
	})
}

var validationErrors = []error{
	domain.ErrInvalidAmount,
	domain.ErrInvalidYear,
	domain.ErrInvalidRate,
	domain.ErrInvalidHorizon,
	domain.ErrInvalidTierMove,
	domain.ErrUnknownCity,
	domain.ErrUnknownAsset,
	domain.ErrInvalidShares,
	domain.ErrInvalidClientID,
}

// fail maps validation errors to 400 and everything else to a logged 500
func (h *Handler) fail(err error) error {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	log.Printf("Request failed: %v", err)
	return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
}

// ErrorHandler renders errors as {"error": true, "message": ...}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
