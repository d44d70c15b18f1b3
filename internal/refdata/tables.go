package refdata

import "github.com/rupeerewind/backend/internal/domain"

// Commodity is an everyday good tracked for the "how many could you buy" basket
type Commodity struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Emoji  string      `json:"emoji"`
	Unit   string      `json:"unit"`
	Prices PriceSeries `json:"prices"`
}

// AssetBenchmark is an aspirational purchase priced across years
type AssetBenchmark struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Example string      `json:"example"`
	Emoji   string      `json:"emoji"`
	Prices  PriceSeries `json:"prices"`
}

// MutualFund is a representative fund category with its long-run CAGR
type MutualFund struct {
	Name  string  `json:"name" yaml:"name"`
	CAGR  float64 `json:"cagr" yaml:"cagr"`
	Emoji string  `json:"emoji" yaml:"emoji"`
}

// Investment is a market instrument the time-machine view puts a lump sum into
type Investment struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Ticker string      `json:"ticker"`
	Emoji  string      `json:"emoji"`
	Prices PriceSeries `json:"prices"`
}

// EconomicEvent annotates a chart year
type EconomicEvent struct {
	Year        int    `json:"year"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Cost Inflation Index, base year shifted to 2001-02 = 100. 2025/2026 projected.
var ciiTable = map[int]float64{
	2001: 100, 2002: 105, 2003: 109, 2004: 113, 2005: 117, 2006: 122,
	2007: 129, 2008: 137, 2009: 148, 2010: 167, 2011: 184, 2012: 200,
	2013: 220, 2014: 240, 2015: 254, 2016: 264, 2017: 272, 2018: 280,
	2019: 289, 2020: 301, 2021: 317, 2022: 331, 2023: 348, 2024: 363,
	2025: 381, 2026: 400,
}

// 24K gold, average annual INR per 10g
var goldTable = map[int]float64{
	2001: 4300, 2002: 4990, 2003: 5600, 2004: 6000, 2005: 7000, 2006: 8400,
	2007: 10800, 2008: 12500, 2009: 14500, 2010: 18500, 2011: 26400, 2012: 31050,
	2013: 29600, 2014: 28000, 2015: 26343, 2016: 28623, 2017: 29667, 2018: 31438,
	2019: 35220, 2020: 48651, 2021: 48720, 2022: 52670, 2023: 61200, 2024: 72500,
	2025: 85000, 2026: 92000,
}

// Silver, average annual INR per kg
var silverTable = map[int]float64{
	2001: 7200, 2002: 7900, 2003: 7700, 2004: 10000, 2005: 10700, 2006: 17400,
	2007: 19500, 2008: 23600, 2009: 22000, 2010: 27250, 2011: 56900, 2012: 56300,
	2013: 54000, 2014: 43000, 2015: 37800, 2016: 36990, 2017: 37825, 2018: 41400,
	2019: 40600, 2020: 63435, 2021: 62572, 2022: 55100, 2023: 78600, 2024: 95700,
	2025: 105000, 2026: 110000,
}

// Copper, approximate INR per kg
var copperTable = map[int]float64{
	2001: 100, 2003: 110, 2005: 180, 2006: 310, 2007: 340, 2008: 330,
	2009: 280, 2010: 350, 2011: 420, 2012: 430, 2013: 440, 2014: 420,
	2015: 380, 2016: 340, 2017: 420, 2018: 450, 2019: 430, 2020: 480,
	2021: 720, 2022: 750, 2023: 730, 2024: 820, 2025: 880, 2026: 920,
}

// National average residential price, INR per sqft
var propertyTable = map[int]float64{
	2001: 1800, 2002: 1950, 2003: 2100, 2004: 2400, 2005: 2900, 2006: 3800,
	2007: 4800, 2008: 5200, 2009: 5000, 2010: 5800, 2011: 6800, 2012: 7500,
	2013: 8200, 2014: 8600, 2015: 9000, 2016: 9200, 2017: 9300, 2018: 9500,
	2019: 9800, 2020: 10000, 2021: 11500, 2022: 13500, 2023: 16500, 2024: 19000,
	2025: 22000, 2026: 25000,
}

var niftyTable = map[int]float64{
	2001: 1059, 2002: 1093, 2003: 1879, 2004: 2080, 2005: 2836, 2006: 3966,
	2007: 6138, 2008: 2959, 2009: 5201, 2010: 6134, 2011: 4624, 2012: 5905,
	2013: 6304, 2014: 8282, 2015: 7946, 2016: 8185, 2017: 10530, 2018: 10862,
	2019: 12168, 2020: 13981, 2021: 17354, 2022: 18105, 2023: 21731, 2024: 24500,
	2025: 27000, 2026: 30000,
}

func defaultCities() []domain.CityInfo {
	return []domain.CityInfo{
		{Name: "National Average", Tier: 2, RealEstateMultiplier: 1.0},
		{Name: "Mumbai", Tier: 1, RealEstateMultiplier: 3.5},
		{Name: "Bangalore", Tier: 1, RealEstateMultiplier: 1.8},
		{Name: "Delhi NCR", Tier: 1, RealEstateMultiplier: 1.6},
		{Name: "Hyderabad", Tier: 1, RealEstateMultiplier: 1.5},
		{Name: "Chennai", Tier: 1, RealEstateMultiplier: 1.4},
		{Name: "Pune", Tier: 1, RealEstateMultiplier: 1.3},
		{Name: "Kolkata", Tier: 1, RealEstateMultiplier: 1.1},
		{Name: "Ahmedabad", Tier: 2, RealEstateMultiplier: 0.9},
		{Name: "Jaipur", Tier: 2, RealEstateMultiplier: 0.8},
		{Name: "Chandigarh", Tier: 2, RealEstateMultiplier: 1.2},
	}
}

func defaultDomains() []domain.InflationDomain {
	return []domain.InflationDomain{
		{ID: "general", Label: "Overall Inflation", Offset: 0, Description: "Standard CPI (Default)"},
		{ID: "education", Label: "Education", Offset: 4.5, Description: "School & College Fees"},
		{ID: "healthcare", Label: "Healthcare", Offset: 5.0, Description: "Medical & Hospitalization"},
		{ID: "housing", Label: "Real Estate", Offset: 3.0, Description: "Property & Rent"},
		{ID: "wedding", Label: "Weddings", Offset: 6.0, Description: "Events & Luxury"},
	}
}

func defaultIndustries() []domain.Industry {
	return []domain.Industry{
		{ID: "general", Name: "All Industries", AvgGrowth: 8.0},
		{ID: "it", Name: "IT / Software", AvgGrowth: 10.0},
		{ID: "banking", Name: "Banking & Finance", AvgGrowth: 8.5},
		{ID: "healthcare", Name: "Healthcare", AvgGrowth: 8.0},
		{ID: "manufacturing", Name: "Manufacturing", AvgGrowth: 6.5},
		{ID: "government", Name: "Government", AvgGrowth: 7.0},
		{ID: "startup", Name: "Startups", AvgGrowth: 12.0},
	}
}

func defaultMutualFunds() []MutualFund {
	return []MutualFund{
		{Name: "Nifty 50 Index Fund", CAGR: 12.5, Emoji: "🇮🇳"},
		{Name: "Flexi Cap Fund", CAGR: 15.0, Emoji: "🧭"},
		{Name: "Mid Cap Fund", CAGR: 17.5, Emoji: "🚀"},
		{Name: "Small Cap Fund", CAGR: 19.0, Emoji: "🔥"},
		{Name: "ELSS Tax Saver", CAGR: 14.0, Emoji: "🧾"},
	}
}

func defaultCommodities() []Commodity {
	return []Commodity{
		{ID: "petrol", Name: "Petrol", Emoji: "⛽️", Unit: "Liters", Prices: NewPriceSeries(map[int]float64{
			2001: 28, 2005: 40, 2010: 50, 2013: 70, 2015: 60, 2018: 75, 2020: 80, 2024: 100, 2026: 105,
		})},
		{ID: "movie", Name: "Movie Ticket", Emoji: "🎟️", Unit: "Tickets", Prices: NewPriceSeries(map[int]float64{
			2001: 40, 2005: 80, 2010: 120, 2013: 150, 2018: 200, 2024: 350, 2026: 400,
		})},
		{ID: "lpg", Name: "LPG Cylinder", Emoji: "🔥", Unit: "Cylinders", Prices: NewPriceSeries(map[int]float64{
			2001: 200, 2005: 250, 2010: 350, 2013: 410, 2014: 900, 2018: 700, 2024: 900, 2026: 1100,
		})},
		{ID: "milk", Name: "Milk", Emoji: "🥛", Unit: "Liters", Prices: NewPriceSeries(map[int]float64{
			2001: 14, 2005: 18, 2010: 28, 2013: 35, 2018: 42, 2024: 60, 2026: 70,
		})},
	}
}

func defaultAssets() []AssetBenchmark {
	return []AssetBenchmark{
		{ID: "sneakers", Name: "Air Jordan 1s", Example: "Nike High OG", Emoji: "👟", Prices: NewPriceSeries(map[int]float64{
			2001: 4500, 2005: 6000, 2010: 7500, 2013: 9999, 2018: 12999, 2024: 16995, 2025: 18995, 2026: 19999,
		})},
		{ID: "hatchback", Name: "Entry Hatchback", Example: "Maruti Alto/Swift", Emoji: "🚗", Prices: NewPriceSeries(map[int]float64{
			2001: 200000, 2005: 250000, 2010: 300000, 2013: 450000, 2018: 550000, 2025: 700000, 2026: 750000,
		})},
		{ID: "suv", Name: "Mid-Range SUV", Example: "Scorpio/Creta", Emoji: "🚙", Prices: NewPriceSeries(map[int]float64{
			2001: 600000, 2005: 750000, 2010: 900000, 2013: 1100000, 2018: 1500000, 2025: 2000000, 2026: 2200000,
		})},
		{ID: "sedan", Name: "Executive Sedan", Example: "Honda City/Verna", Emoji: "🚘", Prices: NewPriceSeries(map[int]float64{
			2001: 650000, 2005: 750000, 2010: 950000, 2013: 1050000, 2018: 1300000, 2025: 1800000, 2026: 1950000,
		})},
		{ID: "bike", Name: "150cc Bike", Example: "Pulsar/Apache", Emoji: "🏍️", Prices: NewPriceSeries(map[int]float64{
			2001: 45000, 2005: 55000, 2010: 65000, 2013: 75000, 2018: 95000, 2025: 140000, 2026: 155000,
		})},
		{ID: "iphone", Name: "Flagship Phone", Example: "iPhone Pro Model", Emoji: "📱", Prices: NewPriceSeries(map[int]float64{
			2008: 31000, 2010: 45000, 2013: 55000, 2015: 65000, 2018: 100000, 2025: 145000, 2026: 159000,
		})},
		{ID: "mba", Name: "MBA Degree", Example: "Top B-School Fee", Emoji: "🎓", Prices: NewPriceSeries(map[int]float64{
			2001: 200000, 2005: 400000, 2010: 1200000, 2013: 1600000, 2018: 2000000, 2025: 2800000, 2026: 3200000,
		})},
		{ID: "trip", Name: "Europe Trip", Example: "10 Days (Per Person)", Emoji: "✈️", Prices: NewPriceSeries(map[int]float64{
			2001: 50000, 2005: 80000, 2010: 100000, 2013: 150000, 2018: 200000, 2025: 350000, 2026: 380000,
		})},
		{ID: "wedding", Name: "Avg Indian Wedding", Example: "300 Guests (Mid-tier)", Emoji: "💒", Prices: NewPriceSeries(map[int]float64{
			2001: 200000, 2005: 500000, 2010: 1000000, 2013: 1500000, 2018: 2500000, 2025: 4000000, 2026: 4500000,
		})},
	}
}

func defaultEvents() []EconomicEvent {
	return []EconomicEvent{
		{Year: 2008, Label: "Global Crash", Description: "Financial Crisis"},
		{Year: 2016, Label: "Demonetization", Description: "Currency Ban"},
		{Year: 2020, Label: "COVID-19", Description: "Market Crash"},
		{Year: 2022, Label: "War Impact", Description: "High Inflation"},
	}
}

// Annual inflation by household spending category, percent
func defaultCategoryRates() map[string]float64 {
	return map[string]float64{
		"food":      8.0,
		"rent":      7.0,
		"transport": 6.5,
		"medical":   12.0,
		"education": 10.5,
		"lifestyle": 5.0,
	}
}
