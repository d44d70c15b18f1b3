package domain

// Insight sources
const (
	InsightSourceAI       = "ai"
	InsightSourceFallback = "fallback"
)

// Insight is generated prose about a calculation result
type Insight struct {
	Text   string `json:"text"`
	HTML   string `json:"html"`
	Source string `json:"source"`
}

// ProductPrice is a then/now price pair for a free-text product
type ProductPrice struct {
	Name      string  `json:"name"`
	PriceThen float64 `json:"priceThen"`
	PriceNow  float64 `json:"priceNow"`
}

// LiveRates is the outcome of a live-rate fetch; fields are nil when unavailable
type LiveRates struct {
	InflationRate *float64 `json:"inflation_rate"`
	GoldPrice     *float64 `json:"gold_price"`
}

// Overrides converts fetched rates into engine overrides
func (r LiveRates) Overrides() LiveOverrides {
	return LiveOverrides{
		InflationRate: r.InflationRate,
		GoldPrice:     r.GoldPrice,
	}
}
