package refdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/rupeerewind/backend/internal/domain"
)

// overrideFile is the YAML shape accepted by Load. Omitted sections keep
// the built-in defaults; a present section replaces the default wholesale.
type overrideFile struct {
	CurrentYear            int                      `yaml:"current_year"`
	MinYear                int                      `yaml:"min_year"`
	DefaultInflationRate   float64                  `yaml:"default_inflation_rate"`
	ProjectedInflationRate float64                  `yaml:"projected_inflation_rate"`
	Gold                   map[int]float64          `yaml:"gold"`
	Silver                 map[int]float64          `yaml:"silver"`
	Copper                 map[int]float64          `yaml:"copper"`
	Property               map[int]float64          `yaml:"property"`
	Nifty                  map[int]float64          `yaml:"nifty"`
	CII                    map[int]float64          `yaml:"cii"`
	Cities                 []domain.CityInfo        `yaml:"cities"`
	Domains                []domain.InflationDomain `yaml:"domains"`
	Industries             []domain.Industry        `yaml:"industries"`
	MutualFunds            []MutualFund             `yaml:"mutual_funds"`
	CategoryRates          map[string]float64       `yaml:"category_rates"`
	TaxSchedules           []TaxSchedule            `yaml:"tax_schedules"`
}

// Load returns the default store with the YAML file at path applied on top.
// An empty path yields the validated defaults.
func Load(path string) (*Store, error) {
	store := Default()
	if path == "" {
		return store, store.Validate()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("refdata: failed to read %s: %w", path, err)
	}

	var file overrideFile
	if err := yaml.UnmarshalStrict(raw, &file); err != nil {
		return nil, fmt.Errorf("refdata: failed to parse %s: %w", path, err)
	}

	file.apply(store)
	if err := store.Validate(); err != nil {
		return nil, err
	}
	return store, nil
}

func (f overrideFile) apply(s *Store) {
	if f.CurrentYear != 0 {
		s.CurrentYear = f.CurrentYear
	}
	if f.MinYear != 0 {
		s.MinYear = f.MinYear
	}
	if f.DefaultInflationRate != 0 {
		s.DefaultInflationRate = f.DefaultInflationRate
	}
	if f.ProjectedInflationRate != 0 {
		s.ProjectedInflationRate = f.ProjectedInflationRate
	}

	replaceSeries := func(dst *PriceSeries, src map[int]float64) {
		if src != nil {
			*dst = NewPriceSeries(src)
		}
	}
	replaceSeries(&s.Gold, f.Gold)
	replaceSeries(&s.Silver, f.Silver)
	replaceSeries(&s.Copper, f.Copper)
	replaceSeries(&s.Property, f.Property)
	replaceSeries(&s.Nifty, f.Nifty)
	replaceSeries(&s.CII, f.CII)

	if f.Cities != nil {
		s.Cities = f.Cities
	}
	if f.Domains != nil {
		s.Domains = f.Domains
	}
	if f.Industries != nil {
		s.Industries = f.Industries
	}
	if f.MutualFunds != nil {
		s.MutualFunds = f.MutualFunds
	}
	if f.CategoryRates != nil {
		s.CategoryRates = f.CategoryRates
	}
	if f.TaxSchedules != nil {
		s.Tax = f.TaxSchedules
	}
}
