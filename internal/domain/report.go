package domain

// HistoryReport is a history-mode result with its chart and the live rates used
type HistoryReport struct {
	ID     string            `json:"id"`
	Result CalculationResult `json:"result"`
	Chart  []ChartDataPoint  `json:"chart"`
	Rates  LiveRates         `json:"rates"`
}

// FutureScenario pairs a projection with its chart
type FutureScenario struct {
	Result FuturePredictionResult `json:"result"`
	Chart  []ChartDataPoint       `json:"chart"`
}

// FutureReport is a future-mode result, optionally with a stressed-inflation rerun
type FutureReport struct {
	ID string `json:"id"`
	FutureScenario
	Shock *FutureScenario `json:"shock,omitempty"`
}

// BasketRequest asks what an amount bought in a past year versus what another amount buys now
type BasketRequest struct {
	AmountThen float64 `json:"amount_then"`
	YearThen   int     `json:"year_then"`
	AmountNow  float64 `json:"amount_now"`
}

// Validate rejects requests the basket comparison cannot price
func (r BasketRequest) Validate(currentYear int) error {
	if r.AmountThen <= 0 || r.AmountNow <= 0 {
		return ErrInvalidAmount
	}
	if r.YearThen <= 0 || r.YearThen > currentYear {
		return ErrInvalidYear
	}
	return nil
}
