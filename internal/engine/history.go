// Package engine holds the pure valuation formulas. Every function here is
// deterministic for a given store and request and never touches shared state.
package engine

import (
	"math"

	"github.com/rupeerewind/backend/internal/domain"
	"github.com/rupeerewind/backend/internal/refdata"
	"github.com/rupeerewind/backend/pkg/utils"
)

const (
	lifestyleBufferPct = 2.0

	tier2ToTier1Multiplier = 1.25
	tier1ToTier2Multiplier = 0.85

	sipShareOfIncome = 0.20
	sipBenchmarkCAGR = 13.0
)

// CityMultiplier returns the cost-of-living adjustment for a tier move
func CityMultiplier(move domain.CityTierMove) float64 {
	switch move {
	case domain.Tier2ToTier1:
		return tier2ToTier1Multiplier
	case domain.Tier1ToTier2:
		return tier1ToTier2Multiplier
	default:
		return 1.0
	}
}

// EffectiveRate is the base rate plus the lifestyle buffer and domain offset
func EffectiveRate(baseRate float64, lifestyle bool, d domain.InflationDomain) float64 {
	rate := baseRate + d.Offset
	if lifestyle {
		rate += lifestyleBufferPct
	}
	return rate
}

// History values a past monthly amount in today's terms.
// The request is assumed valid; see CalculationRequest.Validate.
func History(store *refdata.Store, req domain.CalculationRequest, ov domain.LiveOverrides) (domain.CalculationResult, []domain.ChartDataPoint) {
	amount := req.Amount
	year := req.OriginYear
	now := store.CurrentYear
	yearsDiff := now - year

	baseRate := store.DefaultInflationRate
	if ov.InflationRate != nil {
		baseRate = *ov.InflationRate
	}
	dom := store.Domain(req.DomainID)
	rate := EffectiveRate(baseRate, req.IncludeLifestyleBuffer, dom)

	move := req.CityTierMove
	if move == "" {
		move = domain.TierSame
	}
	cityMultiplier := CityMultiplier(move)

	city := req.City
	if city.Name == "" || city.RealEstateMultiplier <= 0 {
		city = store.DefaultCity()
	}

	adjustedAmount := utils.Round(amount * utils.Growth(rate, yearsDiff) * cityMultiplier)
	salaryWithIncrement := utils.Round(amount * utils.Growth(req.AnnualIncrementPct, yearsDiff))
	erodedOriginal := utils.Round(amount / utils.Growth(baseRate, yearsDiff))
	purchasingPower1000 := utils.Round(1000 * utils.Growth(baseRate, yearsDiff))

	goldThen := store.Gold.Nearest(year)
	goldNow := store.Gold.Nearest(now)
	if ov.GoldPrice != nil {
		goldNow = *ov.GoldPrice
	}

	monthlyInvestment := amount * sipShareOfIncome
	months := yearsDiff * 12
	funds := make([]domain.FundReturn, 0, len(store.MutualFunds))
	for _, mf := range store.MutualFunds {
		funds = append(funds, domain.FundReturn{
			Name:  mf.Name,
			CAGR:  mf.CAGR,
			Emoji: mf.Emoji,
			Value: utils.Round(SIPFutureValue(monthlyInvestment, mf.CAGR, months)),
		})
	}

	annualThen := amount * 12
	annualNow := salaryWithIncrement * 12
	taxThen := store.Tax.Tax(annualThen, year)
	taxNow := store.Tax.Tax(annualNow, now)

	var taxShareNow float64
	if annualNow > 0 {
		taxShareNow = taxNow / annualNow
	}

	propertyThen := store.Property.Nearest(year) * city.RealEstateMultiplier
	propertyNow := store.Property.Nearest(now) * city.RealEstateMultiplier
	sqftThen := annualThen / propertyThen
	sqftNow := annualNow / propertyNow

	industry := store.Industry(req.IndustryID)

	result := domain.CalculationResult{
		OriginalAmount: amount,
		OriginalYear:   year,
		TargetYear:     now,

		AdjustedAmount:       adjustedAmount,
		SalaryWithIncrement:  salaryWithIncrement,
		ErodedOriginalAmount: erodedOriginal,
		PurchasingPower1000:  purchasingPower1000,
		SalaryCAGR:           salaryCAGR(amount, salaryWithIncrement, yearsDiff),

		InflationPercentage:    (adjustedAmount - amount) / amount * 100,
		BaseInflationRate:      baseRate,
		CustomInflationRate:    rate,
		IncludeLifestyleBuffer: req.IncludeLifestyleBuffer,
		CityMultiplier:         cityMultiplier,

		GoldAdjustedAmount:   metalEquivalent(amount, goldThen, goldNow),
		GoldPriceThen:        goldThen,
		GoldPriceNow:         goldNow,
		IsGoldPriceLive:      ov.GoldPrice != nil,
		SilverAdjustedAmount: metalEquivalent(amount, store.Silver.Nearest(year), store.Silver.Nearest(now)),
		CopperAdjustedAmount: metalEquivalent(amount, store.Copper.Nearest(year), store.Copper.Nearest(now)),

		SIPMissedFortune:  utils.Round(SIPFutureValue(monthlyInvestment, sipBenchmarkCAGR, months)),
		MutualFundReturns: funds,

		TaxOriginal:         taxThen,
		TaxNow:              taxNow,
		NetIncomeOriginal:   annualThen - taxThen,
		NetIncomeNow:        annualNow - taxNow,
		EffectiveTaxRateNow: taxShareNow * 100,
		DaysWorkedForTax:    int(utils.Round(taxShareNow * 30)),

		SqftAffordabilityOriginal: sqftThen,
		SqftAffordabilityNow:      sqftNow,
		AffordabilityShrinkagePct: utils.RoundTo((1-sqftNow/sqftThen)*100, 1),

		SelectedCity:       city,
		CityTier:           move,
		SelectedDomain:     dom,
		SelectedIndustry:   industry.Name,
		IndustryGrowthDiff: utils.Round(req.AnnualIncrementPct - industry.AvgGrowth),
	}

	return result, historyChart(store, amount, year, req.AnnualIncrementPct, rate, goldThen)
}

// historyChart emits one point per year from the origin year to the current
// year. Value2 is the inflation requirement without the city multiplier;
// only AdjustedAmount carries the relocation.
func historyChart(store *refdata.Store, amount float64, originYear int, incrementPct, rate, goldThen float64) []domain.ChartDataPoint {
	points := make([]domain.ChartDataPoint, 0, store.CurrentYear-originYear+1)
	for y := originYear; y <= store.CurrentYear; y++ {
		k := y - originYear
		required := utils.Round(amount * utils.Growth(rate, k))
		gold := utils.Round(amount * store.Gold.Nearest(y) / goldThen)

		p := domain.ChartDataPoint{
			Year:   y,
			Value:  utils.Round(amount * utils.Growth(incrementPct, k)),
			Value2: &required,
			Value3: &gold,
		}
		if ev, ok := store.Event(y); ok {
			p.Event = ev.Label
		}
		points = append(points, p)
	}
	return points
}

// metalEquivalent is what amount's worth of a metal bought at priceThen is worth at priceNow
func metalEquivalent(amount, priceThen, priceNow float64) float64 {
	return utils.Round(amount / priceThen * priceNow)
}

func salaryCAGR(amount, salaryNow float64, years int) float64 {
	if years <= 0 {
		return 0
	}
	return utils.RoundTo((math.Pow(salaryNow/amount, 1/float64(years))-1)*100, 2)
}
