package domain

// CityTierMove describes a relocation between city tiers since the origin year
type CityTierMove string

const (
	TierSame     CityTierMove = "SAME"
	Tier2ToTier1 CityTierMove = "TIER2_TO_1"
	Tier1ToTier2 CityTierMove = "TIER1_TO_2"
)

// Valid reports whether the move is one of the known values
func (m CityTierMove) Valid() bool {
	switch m {
	case TierSame, Tier2ToTier1, Tier1ToTier2:
		return true
	}
	return false
}

// CityInfo is a city catalog entry
type CityInfo struct {
	Name                 string  `json:"name" yaml:"name"`
	Tier                 int     `json:"tier" yaml:"tier"`
	RealEstateMultiplier float64 `json:"real_estate_multiplier" yaml:"real_estate_multiplier"`
}

// InflationDomain adds a fixed number of percentage points to the base inflation rate
type InflationDomain struct {
	ID          string  `json:"id" yaml:"id"`
	Label       string  `json:"label" yaml:"label"`
	Offset      float64 `json:"offset" yaml:"offset"`
	Description string  `json:"description" yaml:"description"`
}

// Industry is a salary-growth benchmark for a sector
type Industry struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	AvgGrowth float64 `json:"avg_growth" yaml:"avg_growth"`
}

// LiveOverrides carries the optional live scalars fed into history mode.
// A nil field means "use the table default".
type LiveOverrides struct {
	InflationRate *float64 `json:"inflation_rate,omitempty"`
	GoldPrice     *float64 `json:"gold_price,omitempty"`
}

// CalculationRequest represents input for a past-to-present calculation
type CalculationRequest struct {
	Amount                 float64      `json:"amount"`
	OriginYear             int          `json:"origin_year"`
	AnnualIncrementPct     float64      `json:"annual_increment_pct"`
	IncludeLifestyleBuffer bool         `json:"include_lifestyle_buffer"`
	CityTierMove           CityTierMove `json:"city_tier_move"`
	City                   CityInfo     `json:"city"`
	IndustryID             string       `json:"industry_id"`
	DomainID               string       `json:"domain_id,omitempty"`
}

// Validate rejects requests the engine is not contracted to handle
func (r CalculationRequest) Validate(currentYear int) error {
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if r.OriginYear <= 0 || r.OriginYear > currentYear {
		return ErrInvalidYear
	}
	if r.AnnualIncrementPct < 0 {
		return ErrInvalidRate
	}
	if r.CityTierMove != "" && !r.CityTierMove.Valid() {
		return ErrInvalidTierMove
	}
	return nil
}

// FundReturn is the SIP outcome for one mutual fund
type FundReturn struct {
	Name  string  `json:"name"`
	CAGR  float64 `json:"cagr"`
	Emoji string  `json:"emoji"`
	Value float64 `json:"value"`
}

// CalculationResult is the full history-mode snapshot
type CalculationResult struct {
	OriginalAmount float64 `json:"original_amount"`
	OriginalYear   int     `json:"original_year"`
	TargetYear     int     `json:"target_year"`

	AdjustedAmount       float64 `json:"adjusted_amount"`
	SalaryWithIncrement  float64 `json:"salary_with_increment"`
	ErodedOriginalAmount float64 `json:"eroded_original_amount"`
	PurchasingPower1000  float64 `json:"purchasing_power_1000"`
	SalaryCAGR           float64 `json:"salary_cagr"`

	InflationPercentage    float64 `json:"inflation_percentage"`
	BaseInflationRate      float64 `json:"base_inflation_rate"`
	CustomInflationRate    float64 `json:"custom_inflation_rate"`
	IncludeLifestyleBuffer bool    `json:"include_lifestyle_buffer"`
	CityMultiplier         float64 `json:"city_multiplier"`

	GoldAdjustedAmount   float64 `json:"gold_adjusted_amount"`
	GoldPriceThen        float64 `json:"gold_price_then"`
	GoldPriceNow         float64 `json:"gold_price_now"`
	IsGoldPriceLive      bool    `json:"is_gold_price_live"`
	SilverAdjustedAmount float64 `json:"silver_adjusted_amount"`
	CopperAdjustedAmount float64 `json:"copper_adjusted_amount"`

	SIPMissedFortune  float64      `json:"sip_missed_fortune"`
	MutualFundReturns []FundReturn `json:"mutual_fund_returns"`

	TaxOriginal         float64 `json:"tax_original"`
	TaxNow              float64 `json:"tax_now"`
	NetIncomeOriginal   float64 `json:"net_income_original"`
	NetIncomeNow        float64 `json:"net_income_now"`
	EffectiveTaxRateNow float64 `json:"effective_tax_rate_now"`
	DaysWorkedForTax    int     `json:"days_worked_for_tax"`

	SqftAffordabilityOriginal float64 `json:"sqft_affordability_original"`
	SqftAffordabilityNow      float64 `json:"sqft_affordability_now"`
	AffordabilityShrinkagePct float64 `json:"affordability_shrinkage_pct"`

	SelectedCity       CityInfo        `json:"selected_city"`
	CityTier           CityTierMove    `json:"city_tier"`
	SelectedDomain     InflationDomain `json:"selected_domain"`
	SelectedIndustry   string          `json:"selected_industry"`
	IndustryGrowthDiff float64         `json:"industry_growth_diff"`
}

// ChartDataPoint is one row of a year-indexed chart series
type ChartDataPoint struct {
	Year   int      `json:"year"`
	Value  float64  `json:"value"`
	Value2 *float64 `json:"value2,omitempty"`
	Value3 *float64 `json:"value3,omitempty"`
	Event  string   `json:"event,omitempty"`
}
