package http

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"github.com/rupeerewind/backend/internal/refdata"
	"github.com/rupeerewind/backend/internal/repository/postgres"
	"github.com/rupeerewind/backend/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := refdata.Default()
	repo := postgres.NewMemoryRepository()
	insights := service.NewInsightService(nil)
	calculator := service.NewCalculatorService(store, nil, repo, 12)
	t.Cleanup(calculator.WaitBackground)

	handler := NewHandler(
		calculator,
		service.NewAssetService(store, insights),
		insights,
		service.NewPreferenceService(repo),
		repo,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	SetupRoutes(app, handler)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("%s %s: invalid JSON %q: %v", method, path, raw, err)
	}
	return resp.StatusCode, out
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no data object: %v", body)
	}
	return d
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/health", "")
	if status != 200 || body["status"] != "ok" || body["database"] != "ok" || body["ai"] != false {
		t.Fatalf("health = %d %v", status, body)
	}
}

func TestGetReference(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/api/v1/reference", "")
	d := data(t, body)
	if status != 200 || d["current_year"] != float64(2026) || d["min_year"] != float64(2001) {
		t.Fatalf("reference = %d %v", status, d)
	}
	if cities, _ := d["cities"].([]interface{}); len(cities) != 11 {
		t.Fatalf("cities = %v", d["cities"])
	}
	years, _ := d["years"].([]interface{})
	if len(years) != 26 || years[0] != float64(2001) || years[25] != float64(2026) {
		t.Fatalf("years = %v", d["years"])
	}
	if inv, _ := d["investments"].([]interface{}); len(inv) != 4 {
		t.Fatalf("investments = %v", d["investments"])
	}
}

func TestGetLiveRatesWithoutSources(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/api/v1/rates/live", "")
	d := data(t, body)
	if status != 200 || d["inflation_rate"] != nil || d["gold_price"] != nil {
		t.Fatalf("rates = %d %v", status, d)
	}
}

func TestCalculateHistory(t *testing.T) {
	app := newTestApp(t)
	payload := `{"amount": 53000, "origin_year": 2013, "annual_increment_pct": 10,
		"include_lifestyle_buffer": true, "city_tier_move": "SAME", "city": "National Average", "industry_id": "it"}`

	status, body := doJSON(t, app, "POST", "/api/v1/history", payload)
	if status != 200 {
		t.Fatalf("status = %d body = %v", status, body)
	}
	d := data(t, body)
	result := d["result"].(map[string]interface{})
	if result["adjusted_amount"] != float64(144140) || result["salary_with_increment"] != float64(182970) {
		t.Fatalf("result = %v", result)
	}
	if chart, _ := d["chart"].([]interface{}); len(chart) != 14 {
		t.Fatalf("chart len = %d", len(chart))
	}
	if id, _ := d["id"].(string); id == "" {
		t.Fatal("missing calculation id")
	}
}

func TestCalculateHistoryValidation(t *testing.T) {
	app := newTestApp(t)

	cases := map[string]struct {
		body    string
		message string
	}{
		"unknown city": {`{"amount": 1000, "origin_year": 2010, "city": "Atlantis"}`, "unknown city"},
		"zero amount":  {`{"amount": 0, "origin_year": 2010}`, "amount must be greater than zero"},
		"future year":  {`{"amount": 1000, "origin_year": 2040}`, "origin year must not be after the current year"},
		"bad tier":     {`{"amount": 1000, "origin_year": 2010, "city_tier_move": "UP"}`, "unknown city tier move"},
		"malformed":    {`{"amount": `, "Invalid request body"},
	}
	for name, c := range cases {
		status, body := doJSON(t, app, "POST", "/api/v1/history", c.body)
		if status != 400 || body["error"] != true || body["message"] != c.message {
			t.Fatalf("%s: %d %v", name, status, body)
		}
	}
}

func TestCalculateFutureWithShock(t *testing.T) {
	app := newTestApp(t)
	payload := `{"current_amount": 100000, "growth_rate": 10, "inflation_rate": 6, "years": 5, "base_year": 2026}`

	status, body := doJSON(t, app, "POST", "/api/v1/future?shock=true", payload)
	if status != 200 {
		t.Fatalf("status = %d body = %v", status, body)
	}
	d := data(t, body)
	result := d["result"].(map[string]interface{})
	if result["future_nominal_amount"] != float64(161051) {
		t.Fatalf("result = %v", result)
	}
	shock := d["shock"].(map[string]interface{})["result"].(map[string]interface{})
	if shock["projected_inflation_rate"] != float64(12) {
		t.Fatalf("shock = %v", shock)
	}

	_, body = doJSON(t, app, "POST", "/api/v1/future", payload)
	if _, ok := data(t, body)["shock"]; ok {
		t.Fatal("shock should be omitted without the query flag")
	}
}

func TestCalculateFutureValidation(t *testing.T) {
	app := newTestApp(t)

	cases := map[string]struct {
		body    string
		message string
	}{
		"huge horizon":     {`{"current_amount": 100000, "growth_rate": 10, "years": 9223372036854775807}`, "years must be between 0 and 100"},
		"past horizon cap": {`{"current_amount": 100000, "growth_rate": 10, "years": 101}`, "years must be between 0 and 100"},
		"negative years":   {`{"current_amount": 100000, "years": -1}`, "years must be between 0 and 100"},
		"growth too high":  {`{"current_amount": 100000, "growth_rate": 500, "years": 5}`, "rate is out of range"},
	}
	for name, c := range cases {
		status, body := doJSON(t, app, "POST", "/api/v1/future", c.body)
		if status != 400 || body["message"] != c.message {
			t.Fatalf("%s: %d %v", name, status, body)
		}
	}
}

func TestInsightEndpoints(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/v1/insight/history",
		`{"original_amount": 53000, "original_year": 2013, "adjusted_amount": 144140,
		  "salary_with_increment": 120000, "eroded_original_amount": 24824, "selected_city": {"name": "Pune"}}`)
	d := data(t, body)
	if status != 200 || d["source"] != "fallback" || !strings.HasPrefix(d["text"].(string), "Reality Check") {
		t.Fatalf("history insight = %d %v", status, d)
	}

	status, body = doJSON(t, app, "POST", "/api/v1/insight/future",
		`{"current_amount": 100000, "growth_rate": 4, "projected_inflation_rate": 6, "years": 10, "future_real_amount": 80000}`)
	d = data(t, body)
	if status != 200 || !strings.HasPrefix(d["text"].(string), "Warning:") {
		t.Fatalf("future insight = %d %v", status, d)
	}

	status, _ = doJSON(t, app, "POST", "/api/v1/insight/history", `{}`)
	if status != 400 {
		t.Fatalf("empty result status = %d", status)
	}

	status, body = doJSON(t, app, "POST", "/api/v1/insight/history", `{"original_amount": 53000, "original_year": 2013}`)
	if status != 400 || body["message"] != "amount must be greater than zero" {
		t.Fatalf("missing adjusted amount = %d %v", status, body)
	}
}

func TestCityPropertyPrice(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/api/v1/insight/property/Delhi%20NCR", "")
	d := data(t, body)
	if status != 200 || d["city"] != "Delhi NCR" || d["price_per_sqft"] != nil {
		t.Fatalf("property = %d %v", status, d)
	}

	status, _ = doJSON(t, app, "GET", "/api/v1/insight/property/Atlantis", "")
	if status != 400 {
		t.Fatalf("unknown city status = %d", status)
	}
}

func TestCompareAssetEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/v1/assets/compare", `{"asset_id": "mba", "year_then": 2010}`)
	d := data(t, body)
	if status != 200 || d["price_then"] != float64(1200000) || d["price_now"] != float64(3200000) {
		t.Fatalf("compare = %d %v", status, d)
	}

	// No generator: free-text queries use the compounded 1000 fallback
	status, body = doJSON(t, app, "POST", "/api/v1/assets/compare", `{"query": "Maggi", "year_then": 2016}`)
	d = data(t, body)
	if status != 200 || d["is_custom"] != true || d["price_then"] != float64(1000) {
		t.Fatalf("custom compare = %d %v", status, d)
	}

	status, _ = doJSON(t, app, "POST", "/api/v1/assets/compare", `{"asset_id": "yacht", "year_then": 2010}`)
	if status != 400 {
		t.Fatalf("unknown asset status = %d", status)
	}
}

func TestCommodityBasketEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/v1/commodities/basket",
		`{"amount_then": 10000, "year_then": 2010, "amount_now": 21000}`)
	if status != 200 || body["count"] != float64(4) {
		t.Fatalf("basket = %d %v", status, body)
	}
}

func TestTimeMachineEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/v1/assets/time-machine", `{"amount": 53000, "year_then": 2013}`)
	if status != 200 || body["count"] != float64(4) {
		t.Fatalf("time machine = %d %v", status, body)
	}
	first := body["data"].([]interface{})[0].(map[string]interface{})
	if first["id"] != "nifty" || first["value_now"] != float64(252221) {
		t.Fatalf("nifty = %v", first)
	}

	status, _ = doJSON(t, app, "POST", "/api/v1/assets/time-machine", `{"amount": 53000, "year_then": 2040}`)
	if status != 400 {
		t.Fatalf("future year status = %d", status)
	}
}

func TestPersonalInflationEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/v1/personal-inflation", `{"shares": {"food": 50, "medical": 50}}`)
	d := data(t, body)
	if status != 200 || d["rate"] != float64(10) {
		t.Fatalf("personal inflation = %d %v", status, d)
	}

	status, _ = doJSON(t, app, "POST", "/api/v1/personal-inflation", `{"shares": {"caviar": 100}}`)
	if status != 400 {
		t.Fatalf("unknown category status = %d", status)
	}
}

func TestPreferencesEndpoints(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "PUT", "/api/v1/preferences/abc", `{"onboarding_seen": true, "user_name": "Asha"}`)
	if status != 200 {
		t.Fatalf("put status = %d %v", status, body)
	}

	status, body = doJSON(t, app, "GET", "/api/v1/preferences/abc", "")
	d := data(t, body)
	if status != 200 || d["onboarding_seen"] != true || d["user_name"] != "Asha" {
		t.Fatalf("prefs = %d %v", status, d)
	}

	status, body = doJSON(t, app, "GET", "/api/v1/preferences/other", "")
	d = data(t, body)
	if status != 200 || d["onboarding_seen"] != false || d["user_name"] != "" {
		t.Fatalf("fresh prefs = %d %v", status, d)
	}
}
