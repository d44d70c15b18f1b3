package refdata

import (
	"sort"

	json "github.com/goccy/go-json"

	"github.com/rupeerewind/backend/pkg/utils"
)

// PricePoint is a single year/price observation
type PricePoint struct {
	Year  int     `json:"year"`
	Price float64 `json:"price"`
}

// PriceSeries is a year -> price table kept in ascending year order.
// Years need not be contiguous.
type PriceSeries struct {
	points []PricePoint
}

// NewPriceSeries builds a series from a year/price map
func NewPriceSeries(prices map[int]float64) PriceSeries {
	points := make([]PricePoint, 0, len(prices))
	for year, price := range prices {
		points = append(points, PricePoint{Year: year, Price: price})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return PriceSeries{points: points}
}

// Len returns the number of entries
func (s PriceSeries) Len() int {
	return len(s.points)
}

// Points returns a copy of the entries in ascending year order
func (s PriceSeries) Points() []PricePoint {
	out := make([]PricePoint, len(s.points))
	copy(out, s.points)
	return out
}

// At returns the price recorded for exactly this year
func (s PriceSeries) At(year int) (float64, bool) {
	i := sort.Search(len(s.points), func(i int) bool { return s.points[i].Year >= year })
	if i < len(s.points) && s.points[i].Year == year {
		return s.points[i].Price, true
	}
	return 0, false
}

// Nearest returns the exact-year price, or the price of the entry closest to
// year by absolute distance. Ties resolve to the earlier year. An empty
// series yields 1 so callers dividing by the result stay finite.
func (s PriceSeries) Nearest(year int) float64 {
	if price, ok := s.At(year); ok {
		return price
	}
	if len(s.points) == 0 {
		return 1
	}

	best := s.points[0]
	for _, p := range s.points[1:] {
		if absInt(year-p.Year) < absInt(year-best.Year) {
			best = p
		}
	}
	return best.Price
}

// Interpolate returns the exact-year price, or a linear estimate between the
// bracketing entries. Years outside the table clamp to the first/last entry.
func (s PriceSeries) Interpolate(year int) float64 {
	if price, ok := s.At(year); ok {
		return price
	}
	n := len(s.points)
	if n == 0 {
		return 0
	}

	first, last := s.points[0], s.points[n-1]
	if year <= first.Year {
		return first.Price
	}
	if year >= last.Year {
		return last.Price
	}

	i := sort.Search(n, func(i int) bool { return s.points[i].Year > year })
	lo, hi := s.points[i-1], s.points[i]
	t := float64(year-lo.Year) / float64(hi.Year-lo.Year)
	return utils.Lerp(lo.Price, hi.Price, t)
}

// Floor returns the exact-year price, or the price of the latest entry before
// year. Years outside the table clamp to the first/last entry; an empty series
// yields 1.
func (s PriceSeries) Floor(year int) float64 {
	n := len(s.points)
	if n == 0 {
		return 1
	}
	if year <= s.points[0].Year {
		return s.points[0].Price
	}
	i := sort.Search(n, func(i int) bool { return s.points[i].Year > year })
	return s.points[i-1].Price
}

// Years returns the recorded years in ascending order
func (s PriceSeries) Years() []int {
	out := make([]int, len(s.points))
	for i, p := range s.points {
		out[i] = p.Year
	}
	return out
}

// MarshalJSON encodes the series as an ascending list of points
func (s PriceSeries) MarshalJSON() ([]byte, error) {
	if s.points == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.points)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
