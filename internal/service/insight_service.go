package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/rupeerewind/backend/internal/domain"
	"github.com/rupeerewind/backend/pkg/utils"
)

var digitsOnly = regexp.MustCompile(`[^0-9]`)

// InsightService turns calculation results into short prose.
// With no generator configured, or when generation fails, it returns a
// templated insight derived from the result alone.
type InsightService struct {
	gen TextGenerator
	md  goldmark.Markdown
}

// NewInsightService creates a new insight service. gen may be nil.
func NewInsightService(gen TextGenerator) *InsightService {
	return &InsightService{
		gen: gen,
		md:  goldmark.New(),
	}
}

// Available reports whether a generator is configured
func (s *InsightService) Available() bool {
	return s.gen != nil
}

// HistoryInsight explains a history-mode result
func (s *InsightService) HistoryInsight(ctx context.Context, r domain.CalculationResult) domain.Insight {
	prompt := fmt.Sprintf(`Context: User salary ₹%.0f (%d) vs ₹%.0f (Now).
Required for lifestyle: ₹%.0f.
Inflation Erosion: ₹%.0f then = ₹%.0f purchasing power today.
City: %s.

Provide brief financial analysis (max 100 words). Be professional but direct.`,
		r.OriginalAmount, r.OriginalYear, r.SalaryWithIncrement,
		r.AdjustedAmount,
		r.OriginalAmount, utils.Round(r.ErodedOriginalAmount),
		r.SelectedCity.Name,
	)

	return s.generate(ctx, prompt, func() string { return historyFallback(r) })
}

// FutureInsight explains a future-mode result
func (s *InsightService) FutureInsight(ctx context.Context, r domain.FuturePredictionResult) domain.Insight {
	prompt := fmt.Sprintf(`Context: Current ₹%.0f, Growth %g%%, Inflation %g%%.
Future Nominal: ₹%.0f, Future Real: ₹%.0f.
Smart Wealth (SIP): ₹%.0f vs Lazy (FD): ₹%.0f.

Provide career/wealth analysis (max 100 words).`,
		r.CurrentAmount, r.GrowthRate, r.ProjectedInflationRate,
		r.FutureNominalAmount, r.FutureRealAmount,
		r.WealthSmart, r.WealthLazy,
	)

	return s.generate(ctx, prompt, func() string { return futureFallback(r) })
}

// ProductPrice asks the model for a product's price in two years. Without a
// generator the price is 1000 compounded at 6%; on any failure it is 5000
// compounded at 6.5%.
func (s *InsightService) ProductPrice(ctx context.Context, name string, yearThen, yearNow int) domain.ProductPrice {
	years := yearNow - yearThen
	if s.gen == nil {
		return domain.ProductPrice{Name: name, PriceThen: 1000, PriceNow: 1000 * math.Pow(1.06, float64(years))}
	}

	prompt := fmt.Sprintf(`Find the approximate price of %q in India in the year %d and in %d.
Return ONLY a JSON object: {"name": "Product", "priceThen": number, "priceNow": number}`, name, yearThen, yearNow)

	fallback := domain.ProductPrice{Name: name, PriceThen: 5000, PriceNow: 5000 * math.Pow(1.065, float64(years))}

	text, err := s.gen.Generate(ctx, prompt, true)
	if err != nil {
		log.Printf("Insight: product price lookup failed, using fallback: %v", err)
		return fallback
	}

	var p domain.ProductPrice
	if err := smartParse(text, &p); err != nil {
		log.Printf("Insight: %v", err)
		return fallback
	}
	if p.PriceThen <= 0 || p.PriceNow <= 0 {
		log.Printf("Insight: model returned non-positive prices for %q", name)
		return fallback
	}
	if p.Name == "" {
		p.Name = name
	}
	return p
}

// CityPropertyPrice asks the model for the average price per sqft in a city.
// Returns nil when unavailable.
func (s *InsightService) CityPropertyPrice(ctx context.Context, city string, year int) *float64 {
	if s.gen == nil || city == "" {
		return nil
	}

	prompt := fmt.Sprintf("Avg property price per sqft in %s India %d. Return only number.", city, year)
	text, err := s.gen.Generate(ctx, prompt, false)
	if err != nil {
		return nil
	}

	price, err := strconv.ParseFloat(digitsOnly.ReplaceAllString(text, ""), 64)
	if err != nil || price <= 0 {
		return nil
	}
	return &price
}

func (s *InsightService) generate(ctx context.Context, prompt string, fallback func() string) domain.Insight {
	if s.gen != nil {
		text, err := s.gen.Generate(ctx, prompt, false)
		if err == nil {
			if cleaned := cleanMarkdown(text); cleaned != "" {
				return s.insight(cleaned, domain.InsightSourceAI)
			}
		} else {
			log.Printf("Insight: generation failed, using fallback: %v", err)
		}
	}
	return s.insight(fallback(), domain.InsightSourceFallback)
}

func (s *InsightService) insight(text, source string) domain.Insight {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(text), &buf); err != nil {
		log.Printf("Insight: failed to render markdown: %v", err)
	}
	return domain.Insight{Text: text, HTML: buf.String(), Source: source}
}

// cleanMarkdown trims model output and drops a wrapping code fence
func cleanMarkdown(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = stripCodeFence(text)
	}
	return text
}

func historyFallback(r domain.CalculationResult) string {
	if r.AdjustedAmount <= 0 {
		return fmt.Sprintf("Your original %s from %d has the purchasing power of %s today. "+
			"Compare it with what you earn now to see whether your income has kept up with inflation.",
			utils.FormatINR(r.OriginalAmount), r.OriginalYear, utils.FormatINR(r.ErodedOriginalAmount))
	}
	gap := (r.SalaryWithIncrement - r.AdjustedAmount) / r.AdjustedAmount * 100

	if gap >= 0 {
		return fmt.Sprintf("Great news! You are currently beating lifestyle inflation by about %.0f%%. "+
			"Your salary growth has successfully outpaced the rising cost of living in %s.\n\n"+
			"However, note that your original %s only has the purchasing power of %s today. "+
			"Investing in assets like Gold (which would be worth %s) or SIPs (%s) would have accelerated "+
			"your wealth significantly beyond just salary hikes.",
			gap, r.SelectedCity.Name,
			utils.FormatINR(r.OriginalAmount), utils.FormatINR(r.ErodedOriginalAmount),
			utils.FormatINR(r.GoldAdjustedAmount), utils.FormatINR(r.SIPMissedFortune))
	}

	return fmt.Sprintf("Reality Check: You are currently trailing behind lifestyle inflation by %.0f%%. "+
		"To maintain the exact same standard of living you had in %d, you technically need to earn %s.\n\n"+
		"The starkest data point is that your original %s is now effectively worth only %s. "+
		"This erosion helps explain why big ticket purchases like Real Estate feel significantly harder now "+
		"compared to %d.",
		-gap, r.OriginalYear, utils.FormatINR(r.AdjustedAmount),
		utils.FormatINR(r.OriginalAmount), utils.FormatINR(r.ErodedOriginalAmount),
		r.OriginalYear)
}

func futureFallback(r domain.FuturePredictionResult) string {
	if r.FutureRealAmount > r.CurrentAmount {
		multiplier := "n/a"
		if r.WealthLazy > 0 {
			multiplier = strconv.FormatFloat(r.WealthSmart/r.WealthLazy, 'f', 1, 64)
		}
		return fmt.Sprintf("Your trajectory looks positive. By growing at %g%% against %g%% inflation, "+
			"you are increasing your real purchasing power.\n\n"+
			"Key Strategy: The difference between 'Lazy' and 'Smart' wealth in your chart is massive (%sx). "+
			"Ensure you are aggressive with equity investments early on, as your tax burden will rise "+
			"significantly to %s a month by year %d.",
			r.GrowthRate, r.ProjectedInflationRate, multiplier, utils.FormatINR(r.FutureTax), r.Years)
	}

	return fmt.Sprintf("Warning: Your current growth rate of %g%% is barely fighting off inflation (%g%%). "+
		"In real terms, your purchasing power is stagnating.\n\n"+
		"Advice: You need to break linearity. Upskilling to jump brackets or aggressive investing "+
		"(targeting 12%%+) is mandatory. Relying on standard increments will likely lead to a lifestyle "+
		"downgrade over the next %d years.",
		r.GrowthRate, r.ProjectedInflationRate, r.Years)
}
