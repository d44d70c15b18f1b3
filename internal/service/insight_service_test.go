package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/rupeerewind/backend/internal/domain"
)

type fakeGenerator struct {
	text     string
	err      error
	calls    int
	prompt   string
	jsonMode bool
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	f.calls++
	f.prompt = prompt
	f.jsonMode = jsonMode
	return f.text, f.err
}

func trailingResult() domain.CalculationResult {
	return domain.CalculationResult{
		OriginalAmount:       53000,
		OriginalYear:         2013,
		AdjustedAmount:       144140,
		SalaryWithIncrement:  120000,
		ErodedOriginalAmount: 24824,
		GoldAdjustedAmount:   164730,
		SIPMissedFortune:     5500000,
		SelectedCity:         domain.CityInfo{Name: "Pune"},
	}
}

func TestHistoryInsightFallbackWithoutGenerator(t *testing.T) {
	svc := NewInsightService(nil)
	if svc.Available() {
		t.Fatal("service without generator reported available")
	}

	in := svc.HistoryInsight(context.Background(), trailingResult())
	if in.Source != domain.InsightSourceFallback {
		t.Fatalf("source = %q", in.Source)
	}
	if !strings.HasPrefix(in.Text, "Reality Check") || !strings.Contains(in.Text, "₹1,44,140") {
		t.Fatalf("text = %q", in.Text)
	}
	if !strings.Contains(in.HTML, "<p>") {
		t.Fatalf("html = %q", in.HTML)
	}
}

func TestHistoryInsightFallbackWhenBeatingInflation(t *testing.T) {
	r := trailingResult()
	r.SalaryWithIncrement = 182970

	in := NewInsightService(nil).HistoryInsight(context.Background(), r)
	if !strings.HasPrefix(in.Text, "Great news!") || !strings.Contains(in.Text, "Pune") {
		t.Fatalf("text = %q", in.Text)
	}
}

func TestHistoryInsightFallbackWithoutAdjustedAmount(t *testing.T) {
	r := trailingResult()
	r.AdjustedAmount = 0

	in := NewInsightService(nil).HistoryInsight(context.Background(), r)
	if in.Text == "" || !strings.Contains(in.Text, "₹53,000") || !strings.Contains(in.Text, "₹24,824") {
		t.Fatalf("text = %q", in.Text)
	}
}

func TestHistoryInsightUsesGenerator(t *testing.T) {
	gen := &fakeGenerator{text: "```markdown\n**Solid** growth.\n```"}
	svc := NewInsightService(gen)

	in := svc.HistoryInsight(context.Background(), trailingResult())
	if in.Source != domain.InsightSourceAI || in.Text != "**Solid** growth." {
		t.Fatalf("insight = %+v", in)
	}
	if !strings.Contains(in.HTML, "<strong>Solid</strong>") {
		t.Fatalf("html = %q", in.HTML)
	}
	if !strings.Contains(gen.prompt, "City: Pune.") || gen.jsonMode {
		t.Fatalf("prompt = %q json=%v", gen.prompt, gen.jsonMode)
	}
}

func TestInsightFallsBackOnError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	svc := NewInsightService(gen)

	in := svc.HistoryInsight(context.Background(), trailingResult())
	if in.Source != domain.InsightSourceFallback || gen.calls != 1 {
		t.Fatalf("insight = %+v calls=%d", in, gen.calls)
	}

	gen.err = nil
	gen.text = "   "
	in = svc.HistoryInsight(context.Background(), trailingResult())
	if in.Source != domain.InsightSourceFallback {
		t.Fatal("blank model output should fall back")
	}
}

func TestFutureInsightFallback(t *testing.T) {
	svc := NewInsightService(nil)

	positive := domain.FuturePredictionResult{
		CurrentAmount: 100000, GrowthRate: 10, ProjectedInflationRate: 6, Years: 5,
		FutureRealAmount: 120347, WealthLazy: 1000, WealthSmart: 2500, FutureTax: 23315,
	}
	in := svc.FutureInsight(context.Background(), positive)
	if !strings.HasPrefix(in.Text, "Your trajectory looks positive") || !strings.Contains(in.Text, "(2.5x)") {
		t.Fatalf("text = %q", in.Text)
	}

	stagnant := positive
	stagnant.FutureRealAmount = 90000
	in = svc.FutureInsight(context.Background(), stagnant)
	if !strings.HasPrefix(in.Text, "Warning:") || !strings.Contains(in.Text, "next 5 years") {
		t.Fatalf("text = %q", in.Text)
	}
}

func TestProductPriceWithoutGenerator(t *testing.T) {
	p := NewInsightService(nil).ProductPrice(context.Background(), "Maggi", 2016, 2026)
	want := 1000 * math.Pow(1.06, 10)
	if p.Name != "Maggi" || p.PriceThen != 1000 || math.Abs(p.PriceNow-want) > 1e-9 {
		t.Fatalf("price = %+v", p)
	}
}

func TestProductPriceParsesLooseJSON(t *testing.T) {
	inputs := []string{
		`{"name": "Maggi", "priceThen": 5, "priceNow": 14}`,
		"```json\n{\"name\": \"Maggi\", \"priceThen\": 5, \"priceNow\": 14,}\n```",
		`{name: "Maggi", priceThen: 5, priceNow: 14}`,
	}
	for _, in := range inputs {
		gen := &fakeGenerator{text: in}
		p := NewInsightService(gen).ProductPrice(context.Background(), "maggi noodles", 2010, 2026)
		if p.Name != "Maggi" || p.PriceThen != 5 || p.PriceNow != 14 {
			t.Fatalf("input %q parsed as %+v", in, p)
		}
		if !gen.jsonMode {
			t.Fatal("product lookup should request JSON output")
		}
	}
}

func TestProductPriceFallbacks(t *testing.T) {
	want := domain.ProductPrice{Name: "Maggi", PriceThen: 5000, PriceNow: 5000 * math.Pow(1.065, 10)}

	gens := map[string]*fakeGenerator{
		"error":    {err: errors.New("boom")},
		"garbage":  {text: "sorry, I cannot help with that"},
		"negative": {text: `{"name": "Maggi", "priceThen": -5, "priceNow": 14}`},
	}
	for name, gen := range gens {
		p := NewInsightService(gen).ProductPrice(context.Background(), "Maggi", 2016, 2026)
		if p.Name != want.Name || p.PriceThen != want.PriceThen || math.Abs(p.PriceNow-want.PriceNow) > 1e-9 {
			t.Fatalf("%s: price = %+v, want %+v", name, p, want)
		}
	}
}

func TestCityPropertyPrice(t *testing.T) {
	gen := &fakeGenerator{text: "₹12,500 per sqft"}
	got := NewInsightService(gen).CityPropertyPrice(context.Background(), "Pune", 2025)
	if got == nil || *got != 12500 {
		t.Fatalf("price = %v", got)
	}

	if NewInsightService(nil).CityPropertyPrice(context.Background(), "Pune", 2025) != nil {
		t.Fatal("no generator should yield nil")
	}
	gen = &fakeGenerator{text: "unknown"}
	if NewInsightService(gen).CityPropertyPrice(context.Background(), "Pune", 2025) != nil {
		t.Fatal("non-numeric answer should yield nil")
	}
}
