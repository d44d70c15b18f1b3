package refdata

// TaxBracket taxes income above Above at Rate, on top of a fixed Base amount
type TaxBracket struct {
	Above float64 `json:"above" yaml:"above"`
	Rate  float64 `json:"rate" yaml:"rate"`
	Base  float64 `json:"base" yaml:"base"`
}

// TaxSchedule is one era of progressive brackets, ordered highest threshold first.
// Until is the first year the schedule no longer applies; zero means open-ended.
type TaxSchedule struct {
	Name     string       `json:"name" yaml:"name"`
	Until    int          `json:"until,omitempty" yaml:"until"`
	Brackets []TaxBracket `json:"brackets" yaml:"brackets"`
}

// Tax computes the annual tax owed on income under this schedule
func (s TaxSchedule) Tax(annualIncome float64) float64 {
	for _, b := range s.Brackets {
		if annualIncome > b.Above {
			return (annualIncome-b.Above)*b.Rate + b.Base
		}
	}
	return 0
}

// TaxRegime is the ordered list of eras; the first schedule whose Until is
// after the year wins.
type TaxRegime []TaxSchedule

// For selects the schedule applicable to year
func (r TaxRegime) For(year int) TaxSchedule {
	for _, s := range r {
		if s.Until == 0 || year < s.Until {
			return s
		}
	}
	if len(r) == 0 {
		return TaxSchedule{}
	}
	return r[len(r)-1]
}

// Tax computes the annual tax owed on income earned in year
func (r TaxRegime) Tax(annualIncome float64, year int) float64 {
	return r.For(year).Tax(annualIncome)
}

func defaultTaxRegime() TaxRegime {
	return TaxRegime{
		{
			Name:  "pre-2014",
			Until: 2014,
			Brackets: []TaxBracket{
				{Above: 1000000, Rate: 0.30, Base: 130000},
				{Above: 500000, Rate: 0.20, Base: 30000},
				{Above: 200000, Rate: 0.10},
			},
		},
		{
			Name: "modern",
			Brackets: []TaxBracket{
				{Above: 1500000, Rate: 0.30, Base: 150000},
				{Above: 1200000, Rate: 0.20, Base: 90000},
				{Above: 900000, Rate: 0.15, Base: 45000},
				{Above: 600000, Rate: 0.10, Base: 15000},
				{Above: 300000, Rate: 0.05},
			},
		},
	}
}
