package domain

// Upper bounds accepted for a forward projection
const (
	MaxFutureYears = 100
	MaxFutureRate  = 100.0
)

// FutureCalculationRequest represents input for a forward projection.
// Rates are percentages, e.g. 6.0 for 6%.
type FutureCalculationRequest struct {
	CurrentAmount float64 `json:"current_amount"`
	GrowthRate    float64 `json:"growth_rate"`
	InflationRate float64 `json:"inflation_rate"`
	Years         int     `json:"years"`
	BaseYear      int     `json:"base_year,omitempty"`
}

// Validate rejects requests the engine is not contracted to handle
func (r FutureCalculationRequest) Validate() error {
	if r.CurrentAmount <= 0 {
		return ErrInvalidAmount
	}
	if r.Years < 0 || r.Years > MaxFutureYears {
		return ErrInvalidHorizon
	}
	if r.InflationRate <= -100 || r.GrowthRate <= -100 ||
		r.InflationRate > MaxFutureRate || r.GrowthRate > MaxFutureRate {
		return ErrInvalidRate
	}
	return nil
}

// ItemPrice is a projected price for one basket item
type ItemPrice struct {
	Name  string  `json:"name"`
	Emoji string  `json:"emoji"`
	Price float64 `json:"price"`
}

// GoalComparison projects a fixed present-day goal cost forward
type GoalComparison struct {
	Label      string  `json:"label"`
	CostToday  float64 `json:"cost_today"`
	CostFuture float64 `json:"cost_future"`
}

// FuturePredictionResult is the full future-mode snapshot
type FuturePredictionResult struct {
	CurrentAmount          float64 `json:"current_amount"`
	GrowthRate             float64 `json:"growth_rate"`
	Years                  int     `json:"years"`
	BaseYear               int     `json:"base_year"`
	FutureNominalAmount    float64 `json:"future_nominal_amount"`
	FutureRealAmount       float64 `json:"future_real_amount"`
	ProjectedInflationRate float64 `json:"projected_inflation_rate"`

	FutureAnnualTax float64 `json:"future_annual_tax"`
	FutureTax       float64 `json:"future_tax"` // monthly

	WealthLazy  float64 `json:"wealth_lazy"`
	WealthSmart float64 `json:"wealth_smart"`

	FireCorpus        float64 `json:"fire_corpus"`
	YearsToFreedom    int     `json:"years_to_freedom"`
	TotalInterestPaid float64 `json:"total_interest_paid"`

	FutureItemPrices []ItemPrice    `json:"future_item_prices"`
	GoalComparison   GoalComparison `json:"goal_comparison"`
}
