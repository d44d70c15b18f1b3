package domain

// AssetComparisonRequest asks how an asset's price moved between two years.
// Either AssetID (catalog benchmark) or Query (free-text product) is set.
type AssetComparisonRequest struct {
	AssetID  string `json:"asset_id,omitempty"`
	Query    string `json:"query,omitempty"`
	YearThen int    `json:"year_then"`
	YearNow  int    `json:"year_now,omitempty"`
	// Optional monthly incomes used to express the price in months of income
	IncomeThen float64 `json:"income_then,omitempty"`
	IncomeNow  float64 `json:"income_now,omitempty"`
}

// AssetComparison is the then/now price of one asset
type AssetComparison struct {
	AssetID            string  `json:"asset_id,omitempty"`
	Name               string  `json:"name"`
	Example            string  `json:"example,omitempty"`
	Emoji              string  `json:"emoji,omitempty"`
	YearThen           int     `json:"year_then"`
	YearNow            int     `json:"year_now"`
	PriceThen          float64 `json:"price_then"`
	PriceNow           float64 `json:"price_now"`
	PriceGrowthPct     float64 `json:"price_growth_pct"`
	MonthsOfIncomeThen float64 `json:"months_of_income_then,omitempty"`
	MonthsOfIncomeNow  float64 `json:"months_of_income_now,omitempty"`
	IsCustom           bool    `json:"is_custom"`
}

// CommodityQuantity compares how many units of a commodity an income buys then and now
type CommodityQuantity struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Emoji        string  `json:"emoji"`
	Unit         string  `json:"unit"`
	PriceThen    float64 `json:"price_then"`
	PriceNow     float64 `json:"price_now"`
	QuantityThen int     `json:"quantity_then"`
	QuantityNow  int     `json:"quantity_now"`
	Difference   int     `json:"difference"`
}

// PersonalInflation is a weighted inflation rate for a user's spending mix
type PersonalInflation struct {
	Rate            float64            `json:"rate"`
	NationalAverage float64            `json:"national_average"`
	Difference      float64            `json:"difference"`
	TotalShare      float64            `json:"total_share"`
	Shares          map[string]float64 `json:"shares"`
}

// TimeMachineRequest asks what a lump sum placed in each instrument in
// YearThen would be worth in YearNow
type TimeMachineRequest struct {
	Amount   float64 `json:"amount"`
	YearThen int     `json:"year_then"`
	YearNow  int     `json:"year_now,omitempty"`
}

// Validate rejects requests the time machine cannot price
func (r TimeMachineRequest) Validate(currentYear int) error {
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if r.YearThen <= 0 || r.YearThen > r.YearNow || r.YearNow > currentYear {
		return ErrInvalidYear
	}
	return nil
}

// InvestmentOutcome is the present value of one lump-sum investment
type InvestmentOutcome struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Ticker         string  `json:"ticker"`
	Emoji          string  `json:"emoji"`
	InvestedAmount float64 `json:"invested_amount"`
	PriceThen      float64 `json:"price_then"`
	PriceNow       float64 `json:"price_now"`
	Units          float64 `json:"units"`
	ValueNow       float64 `json:"value_now"`
	ROIPct         float64 `json:"roi_pct"`
}
