package engine

import (
	"math"

	"github.com/rupeerewind/backend/internal/domain"
	"github.com/rupeerewind/backend/internal/refdata"
	"github.com/rupeerewind/backend/pkg/utils"
)

const (
	savingsShareOfIncome = 0.20
	lazyTrackReturn      = 1.06
	smartTrackReturn     = 1.12

	fireExpenseShare = 0.50
	fireMultiple     = 25
	freedomSavings   = 0.30
	freedomReturn    = 1.12

	loanPrincipal   = 5000000
	loanRatePct     = 8.5
	loanTenureYears = 20

	goalLabel     = "Dream Home (3BHK)"
	goalCostToday = 10000000

	futureBasketSize = 3
)

// Future projects a current monthly amount forward by req.Years.
// A zero BaseYear means the store's current year.
func Future(store *refdata.Store, req domain.FutureCalculationRequest) (domain.FuturePredictionResult, []domain.ChartDataPoint) {
	cur := req.CurrentAmount
	g := req.GrowthRate
	i := req.InflationRate
	n := req.Years
	baseYear := req.BaseYear
	if baseYear == 0 {
		baseYear = store.CurrentYear
	}

	nominal := utils.Round(cur * utils.Growth(g, n))
	realAmount := utils.Round(nominal / utils.Growth(i, n))
	annualTax := store.Tax.Tax(nominal*12, baseYear+n)

	lazy, smart := twinTrack(cur, g, n)

	corpus := cur * fireExpenseShare * utils.Growth(i, n) * 12 * fireMultiple

	prices := make([]domain.ItemPrice, 0, futureBasketSize)
	for idx, c := range store.Commodities {
		if idx == futureBasketSize {
			break
		}
		prices = append(prices, domain.ItemPrice{
			Name:  c.Name,
			Emoji: c.Emoji,
			Price: utils.Round(c.Prices.Nearest(baseYear) * utils.Growth(i, n)),
		})
	}

	result := domain.FuturePredictionResult{
		CurrentAmount:          cur,
		GrowthRate:             g,
		Years:                  n,
		BaseYear:               baseYear,
		FutureNominalAmount:    nominal,
		FutureRealAmount:       realAmount,
		ProjectedInflationRate: i,

		FutureAnnualTax: annualTax,
		FutureTax:       utils.Round(annualTax / 12),

		WealthLazy:  utils.Round(lazy),
		WealthSmart: utils.Round(smart),

		FireCorpus:        corpus,
		YearsToFreedom:    yearsToFreedom(corpus, cur),
		TotalInterestPaid: utils.Round(loanPrincipal * loanRatePct * loanTenureYears / 100),

		FutureItemPrices: prices,
		GoalComparison: domain.GoalComparison{
			Label:      goalLabel,
			CostToday:  goalCostToday,
			CostFuture: utils.Round(goalCostToday * utils.Growth(i, n)),
		},
	}

	chart := make([]domain.ChartDataPoint, 0, n+1)
	for k := 0; k <= n; k++ {
		nom := utils.Round(cur * utils.Growth(g, k))
		r := utils.Round(nom / utils.Growth(i, k))
		chart = append(chart, domain.ChartDataPoint{Year: baseYear + k, Value: nom, Value2: &r})
	}

	return result, chart
}

// Shock re-runs Future with the inflation rate replaced by stressRate
func Shock(store *refdata.Store, req domain.FutureCalculationRequest, stressRate float64) (domain.FuturePredictionResult, []domain.ChartDataPoint) {
	req.InflationRate = stressRate
	return Future(store, req)
}

// twinTrack accumulates a fixed share of a growing salary, invested at the
// start of each year into a low-return and a high-return track.
func twinTrack(salary, growthPct float64, years int) (lazy, smart float64) {
	for y := 0; y < years; y++ {
		savings := salary * 12 * savingsShareOfIncome
		lazy = (lazy + savings) * lazyTrackReturn
		smart = (smart + savings) * smartTrackReturn
		salary *= 1 + growthPct/100
	}
	return lazy, smart
}

func yearsToFreedom(corpus, monthly float64) int {
	annualSavings := monthly * 12 * freedomSavings
	years := math.Ceil(math.Log(corpus/annualSavings) / math.Log(freedomReturn))
	if math.IsNaN(years) {
		return 0
	}
	return int(utils.Clamp(years, 0, math.MaxInt32))
}
