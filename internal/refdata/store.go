package refdata

import (
	"errors"
	"fmt"

	"github.com/rupeerewind/backend/internal/domain"
)

// Store is the read-only reference catalog shared by every calculation.
// It is built once at startup and must not be mutated afterwards; concurrent
// reads are safe.
type Store struct {
	CurrentYear            int
	MinYear                int
	DefaultInflationRate   float64
	ProjectedInflationRate float64

	CII      PriceSeries
	Gold     PriceSeries // per 10g
	Silver   PriceSeries // per kg
	Copper   PriceSeries // per kg
	Property PriceSeries // per sqft
	Nifty    PriceSeries

	Commodities   []Commodity
	Assets        []AssetBenchmark
	Cities        []domain.CityInfo
	Domains       []domain.InflationDomain
	Industries    []domain.Industry
	MutualFunds   []MutualFund
	Events        []EconomicEvent
	CategoryRates map[string]float64
	Tax           TaxRegime
}

// Default builds the store from the built-in tables
func Default() *Store {
	return &Store{
		CurrentYear:            2026,
		MinYear:                2001,
		DefaultInflationRate:   6.0,
		ProjectedInflationRate: 6.0,

		CII:      NewPriceSeries(ciiTable),
		Gold:     NewPriceSeries(goldTable),
		Silver:   NewPriceSeries(silverTable),
		Copper:   NewPriceSeries(copperTable),
		Property: NewPriceSeries(propertyTable),
		Nifty:    NewPriceSeries(niftyTable),

		Commodities:   defaultCommodities(),
		Assets:        defaultAssets(),
		Cities:        defaultCities(),
		Domains:       defaultDomains(),
		Industries:    defaultIndustries(),
		MutualFunds:   defaultMutualFunds(),
		Events:        defaultEvents(),
		CategoryRates: defaultCategoryRates(),
		Tax:           defaultTaxRegime(),
	}
}

// City looks up a city by name
func (s *Store) City(name string) (domain.CityInfo, bool) {
	for _, c := range s.Cities {
		if c.Name == name {
			return c, true
		}
	}
	return domain.CityInfo{}, false
}

// DefaultCity returns the first catalog city
func (s *Store) DefaultCity() domain.CityInfo {
	if len(s.Cities) == 0 {
		return domain.CityInfo{Name: "National Average", Tier: 2, RealEstateMultiplier: 1}
	}
	return s.Cities[0]
}

// Domain looks up an inflation domain, falling back to the first entry
func (s *Store) Domain(id string) domain.InflationDomain {
	for _, d := range s.Domains {
		if d.ID == id {
			return d
		}
	}
	if len(s.Domains) == 0 {
		return domain.InflationDomain{ID: "general"}
	}
	return s.Domains[0]
}

// Industry looks up an industry, falling back to the first entry
func (s *Store) Industry(id string) domain.Industry {
	for _, in := range s.Industries {
		if in.ID == id {
			return in
		}
	}
	if len(s.Industries) == 0 {
		return domain.Industry{}
	}
	return s.Industries[0]
}

// Asset looks up an asset benchmark by id
func (s *Store) Asset(id string) (AssetBenchmark, bool) {
	for _, a := range s.Assets {
		if a.ID == id {
			return a, true
		}
	}
	return AssetBenchmark{}, false
}

// Years returns the selectable origin years, taken from the CII table
func (s *Store) Years() []int {
	return s.CII.Years()
}

// Investments lists the instruments a past lump sum can be placed in
func (s *Store) Investments() []Investment {
	return []Investment{
		{ID: "nifty", Name: "Nifty 50", Ticker: "NIFTY", Emoji: "🇮🇳", Prices: s.Nifty},
		{ID: "gold", Name: "Gold (24K, 10g)", Ticker: "XAU", Emoji: "🪙", Prices: s.Gold},
		{ID: "silver", Name: "Silver (1kg)", Ticker: "XAG", Emoji: "🥈", Prices: s.Silver},
		{ID: "property", Name: "Real Estate (sqft)", Ticker: "RE", Emoji: "🏠", Prices: s.Property},
	}
}

// Event returns the economic event recorded for year, if any
func (s *Store) Event(year int) (EconomicEvent, bool) {
	for _, e := range s.Events {
		if e.Year == year {
			return e, true
		}
	}
	return EconomicEvent{}, false
}

// Validate checks the invariants the engine relies on
func (s *Store) Validate() error {
	var errs []error

	if s.MinYear > s.CurrentYear {
		errs = append(errs, fmt.Errorf("min year %d is after current year %d", s.MinYear, s.CurrentYear))
	}

	series := map[string]PriceSeries{
		"cii": s.CII, "gold": s.Gold, "silver": s.Silver,
		"copper": s.Copper, "property": s.Property, "nifty": s.Nifty,
	}
	for _, c := range s.Commodities {
		series["commodity "+c.ID] = c.Prices
	}
	for _, a := range s.Assets {
		series["asset "+a.ID] = a.Prices
	}
	for name, ps := range series {
		if err := validateSeries(ps); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	for _, c := range s.Cities {
		if c.RealEstateMultiplier <= 0 {
			errs = append(errs, fmt.Errorf("city %q: real estate multiplier must be positive", c.Name))
		}
	}
	if len(s.Cities) == 0 {
		errs = append(errs, errors.New("at least one city is required"))
	}
	if len(s.Domains) == 0 {
		errs = append(errs, errors.New("at least one inflation domain is required"))
	}
	if len(s.Industries) == 0 {
		errs = append(errs, errors.New("at least one industry is required"))
	}
	if len(s.Tax) == 0 {
		errs = append(errs, errors.New("at least one tax schedule is required"))
	}
	for _, ts := range s.Tax {
		if err := validateSchedule(ts); err != nil {
			errs = append(errs, fmt.Errorf("tax schedule %q: %w", ts.Name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("refdata: invalid reference data: %w", errors.Join(errs...))
	}
	return nil
}

func validateSeries(ps PriceSeries) error {
	if ps.Len() == 0 {
		return errors.New("series is empty")
	}
	for _, p := range ps.points {
		if p.Price <= 0 {
			return fmt.Errorf("price for %d must be positive", p.Year)
		}
	}
	return nil
}

// validateSchedule requires brackets ordered by strictly descending threshold,
// since Tax applies the first bracket the income exceeds.
func validateSchedule(ts TaxSchedule) error {
	for i, b := range ts.Brackets {
		if b.Rate < 0 || b.Rate > 1 {
			return fmt.Errorf("bracket above %v: rate %v must be between 0 and 1", b.Above, b.Rate)
		}
		if i > 0 && b.Above >= ts.Brackets[i-1].Above {
			return fmt.Errorf("bracket above %v must come after a higher threshold than %v", b.Above, ts.Brackets[i-1].Above)
		}
	}
	return nil
}
