package engine

import (
	"math"
	"sort"

	"github.com/rupeerewind/backend/internal/domain"
	"github.com/rupeerewind/backend/internal/refdata"
	"github.com/rupeerewind/backend/pkg/utils"
)

// CompareAsset prices a catalog benchmark in both years by interpolation
func CompareAsset(asset refdata.AssetBenchmark, req domain.AssetComparisonRequest) domain.AssetComparison {
	c := priceComparison(asset.Prices.Interpolate(req.YearThen), asset.Prices.Interpolate(req.YearNow), req)
	c.AssetID = asset.ID
	c.Name = asset.Name
	c.Example = asset.Example
	c.Emoji = asset.Emoji
	return c
}

// CompareProduct wraps an externally sourced then/now price pair
func CompareProduct(p domain.ProductPrice, req domain.AssetComparisonRequest) domain.AssetComparison {
	c := priceComparison(p.PriceThen, p.PriceNow, req)
	c.Name = p.Name
	c.IsCustom = true
	return c
}

func priceComparison(then, now float64, req domain.AssetComparisonRequest) domain.AssetComparison {
	c := domain.AssetComparison{
		YearThen:  req.YearThen,
		YearNow:   req.YearNow,
		PriceThen: utils.Round(then),
		PriceNow:  utils.Round(now),
	}
	if then > 0 {
		c.PriceGrowthPct = utils.RoundTo((now-then)/then*100, 1)
	}
	if req.IncomeThen > 0 {
		c.MonthsOfIncomeThen = utils.RoundTo(then/req.IncomeThen, 1)
	}
	if req.IncomeNow > 0 {
		c.MonthsOfIncomeNow = utils.RoundTo(now/req.IncomeNow, 1)
	}
	return c
}

// CommodityBasket compares how many units of each commodity amountThen bought
// in yearThen against what amountNow buys in the current year.
func CommodityBasket(store *refdata.Store, amountThen float64, yearThen int, amountNow float64) []domain.CommodityQuantity {
	out := make([]domain.CommodityQuantity, 0, len(store.Commodities))
	for _, c := range store.Commodities {
		priceThen := c.Prices.Nearest(yearThen)
		priceNow := c.Prices.Nearest(store.CurrentYear)
		qThen := int(math.Floor(amountThen / priceThen))
		qNow := int(math.Floor(amountNow / priceNow))

		out = append(out, domain.CommodityQuantity{
			ID:           c.ID,
			Name:         c.Name,
			Emoji:        c.Emoji,
			Unit:         c.Unit,
			PriceThen:    priceThen,
			PriceNow:     priceNow,
			QuantityThen: qThen,
			QuantityNow:  qNow,
			Difference:   qNow - qThen,
		})
	}
	return out
}

// TimeMachine values amount invested once in yearThen in each instrument,
// priced with the latest recorded entry at or before each year.
func TimeMachine(investments []refdata.Investment, amount float64, yearThen, yearNow int) []domain.InvestmentOutcome {
	out := make([]domain.InvestmentOutcome, 0, len(investments))
	for _, inv := range investments {
		priceThen := inv.Prices.Floor(yearThen)
		priceNow := inv.Prices.Floor(yearNow)
		units := amount / priceThen
		valueNow := units * priceNow

		out = append(out, domain.InvestmentOutcome{
			ID:             inv.ID,
			Name:           inv.Name,
			Ticker:         inv.Ticker,
			Emoji:          inv.Emoji,
			InvestedAmount: amount,
			PriceThen:      priceThen,
			PriceNow:       priceNow,
			Units:          utils.RoundTo(units, 4),
			ValueNow:       utils.Round(valueNow),
			ROIPct:         utils.RoundTo((valueNow-amount)/amount*100, 2),
		})
	}
	return out
}

// PersonalInflation weights category inflation rates by the caller's
// expense shares. Shares need not sum to 100; they are normalised.
func PersonalInflation(store *refdata.Store, shares map[string]float64) (domain.PersonalInflation, error) {
	keys := make([]string, 0, len(shares))
	for k := range shares {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var total, weighted float64
	for _, k := range keys {
		share := shares[k]
		rate, ok := store.CategoryRates[k]
		if !ok || share < 0 {
			return domain.PersonalInflation{}, domain.ErrInvalidShares
		}
		total += share
		weighted += share * rate
	}
	if total <= 0 {
		return domain.PersonalInflation{}, domain.ErrInvalidShares
	}

	rate := utils.RoundTo(weighted/total, 2)
	national := store.DefaultInflationRate
	return domain.PersonalInflation{
		Rate:            rate,
		NationalAverage: national,
		Difference:      utils.RoundTo(rate-national, 2),
		TotalShare:      total,
		Shares:          shares,
	}, nil
}
