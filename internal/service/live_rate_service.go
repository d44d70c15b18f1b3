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
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/rupeerewind/backend/internal/domain"
)

// Elements carrying the 24K price per 10g on a rate page
const goldPriceSelector = "[data-gold-price], .gold-price-24k, #gold-price"

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// LiveRateService fetches the current inflation rate and gold price.
// Each source is tried once per process; failures leave the value nil so the
// engine falls back to its tables.
type LiveRateService struct {
	inflationURL string
	goldURL      string
	client       *fasthttp.Client
	timeout      time.Duration

	once  sync.Once
	rates domain.LiveRates
}

// NewLiveRateService creates a new live rate service. Empty URLs disable the
// corresponding source.
func NewLiveRateService(inflationURL, goldURL string) *LiveRateService {
	return &LiveRateService{
		inflationURL: inflationURL,
		goldURL:      goldURL,
		client: &fasthttp.Client{
			Name:         "rupeerewind",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		timeout: 5 * time.Second,
	}
}

// inflationResponse is the JSON shape of the inflation source
type inflationResponse struct {
	Rate          *float64 `json:"rate"`
	InflationRate *float64 `json:"inflation_rate"`
}

// goldResponse is the JSON shape of the gold source when it is not HTML
type goldResponse struct {
	Price *float64 `json:"price"`
}

// Rates returns the memoised live rates, fetching both sources concurrently
// on first use.
func (s *LiveRateService) Rates(ctx context.Context) domain.LiveRates {
	s.once.Do(func() {
		var wg sync.WaitGroup

		wg.Add(2)
		go func() {
			defer wg.Done()
			s.rates.InflationRate = s.FetchCurrentInflationRate(ctx)
		}()
		go func() {
			defer wg.Done()
			s.rates.GoldPrice = s.FetchCurrentGoldPrice(ctx)
		}()
		wg.Wait()

		log.Printf("Live rates: inflation=%s gold=%s", describe(s.rates.InflationRate), describe(s.rates.GoldPrice))
	})
	return s.rates
}

// FetchCurrentInflationRate returns the live annual inflation rate in percent, or nil
func (s *LiveRateService) FetchCurrentInflationRate(ctx context.Context) *float64 {
	if s.inflationURL == "" {
		return nil
	}

	body, _, err := s.get(ctx, s.inflationURL)
	if err != nil {
		log.Printf("Live rates: inflation fetch failed: %v", err)
		return nil
	}

	var resp inflationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Printf("Live rates: failed to decode inflation response: %v", err)
		return nil
	}

	rate := resp.Rate
	if rate == nil {
		rate = resp.InflationRate
	}
	if rate == nil || !validRate(*rate) {
		return nil
	}
	return rate
}

// FetchCurrentGoldPrice returns the live 24K gold price per 10g, or nil.
// JSON sources are decoded directly; anything else is scraped as HTML.
func (s *LiveRateService) FetchCurrentGoldPrice(ctx context.Context) *float64 {
	if s.goldURL == "" {
		return nil
	}

	body, contentType, err := s.get(ctx, s.goldURL)
	if err != nil {
		log.Printf("Live rates: gold fetch failed: %v", err)
		return nil
	}

	var price float64
	if strings.Contains(contentType, "json") {
		var resp goldResponse
		if err := json.Unmarshal(body, &resp); err != nil || resp.Price == nil {
			log.Printf("Live rates: failed to decode gold response: %v", err)
			return nil
		}
		price = *resp.Price
	} else {
		price, err = scrapeGoldPrice(body)
		if err != nil {
			log.Printf("Live rates: %v", err)
			return nil
		}
	}

	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil
	}
	return &price
}

// get performs a single GET bounded by the service timeout and the context deadline
func (s *LiveRateService) get(ctx context.Context, url string) ([]byte, string, error) {
	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return nil, "", fmt.Errorf("live_rates: context expired before request to %s", url)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json, text/html")

	if err := s.client.DoTimeout(req, resp, timeout); err != nil {
		return nil, "", fmt.Errorf("live_rates: failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, "", fmt.Errorf("live_rates: %s returned status %d", url, resp.StatusCode())
	}

	// Body is owned by the pooled response
	body := append([]byte(nil), resp.Body()...)
	return body, string(resp.Header.ContentType()), nil
}

func scrapeGoldPrice(page []byte) (float64, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return 0, fmt.Errorf("live_rates: failed to parse gold page: %w", err)
	}

	sel := doc.Find(goldPriceSelector).First()
	if sel.Length() == 0 {
		return 0, fmt.Errorf("live_rates: gold price element not found")
	}

	raw := sel.AttrOr("data-gold-price", "")
	if raw == "" {
		raw = sel.Text()
	}
	price, err := strconv.ParseFloat(nonNumeric.ReplaceAllString(raw, ""), 64)
	if err != nil {
		return 0, fmt.Errorf("live_rates: failed to parse gold price %q: %w", raw, err)
	}
	return price, nil
}

func validRate(r float64) bool {
	return !math.IsNaN(r) && r > -100 && r < 100
}

func describe(v *float64) string {
	if v == nil {
		return "unavailable"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
