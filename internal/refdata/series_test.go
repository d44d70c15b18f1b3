package refdata

import "testing"

func TestNearestPrefersExactThenClosest(t *testing.T) {
	s := NewPriceSeries(map[int]float64{2001: 10, 2010: 20, 2020: 30})

	cases := []struct {
		year int
		want float64
	}{
		{2010, 20},
		{2005, 10}, // 4 from 2001, 5 from 2010
		{2016, 30},
		{1990, 10},
		{2030, 30},
	}
	for _, c := range cases {
		if got := s.Nearest(c.year); got != c.want {
			t.Fatalf("Nearest(%d) = %v, want %v", c.year, got, c.want)
		}
	}
}

func TestNearestTieGoesToEarlierYear(t *testing.T) {
	s := NewPriceSeries(map[int]float64{2010: 100, 2020: 200})
	if got := s.Nearest(2015); got != 100 {
		t.Fatalf("Nearest(2015) = %v, want 100", got)
	}
}

func TestEmptySeriesFallbacks(t *testing.T) {
	var s PriceSeries
	if got := s.Nearest(2010); got != 1 {
		t.Fatalf("empty Nearest = %v, want 1", got)
	}
	if got := s.Interpolate(2010); got != 0 {
		t.Fatalf("empty Interpolate = %v, want 0", got)
	}
}

func TestInterpolate(t *testing.T) {
	s := NewPriceSeries(map[int]float64{2010: 100, 2020: 200})

	cases := []struct {
		year int
		want float64
	}{
		{2015, 150},
		{2010, 100},
		{2012, 120},
		{2005, 100},
		{2025, 200},
	}
	for _, c := range cases {
		if got := s.Interpolate(c.year); got != c.want {
			t.Fatalf("Interpolate(%d) = %v, want %v", c.year, got, c.want)
		}
	}
}

func TestPointsAreSortedCopies(t *testing.T) {
	s := NewPriceSeries(map[int]float64{2020: 3, 2001: 1, 2010: 2})
	pts := s.Points()
	if len(pts) != 3 || pts[0].Year != 2001 || pts[2].Year != 2020 {
		t.Fatalf("Points not ascending: %+v", pts)
	}
	pts[0].Price = 99
	if p, _ := s.At(2001); p != 1 {
		t.Fatal("Points must not alias the series")
	}
}

func TestMarshalJSON(t *testing.T) {
	s := NewPriceSeries(map[int]float64{2002: 5, 2001: 4})
	raw, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	want := `[{"year":2001,"price":4},{"year":2002,"price":5}]`
	if string(raw) != want {
		t.Fatalf("MarshalJSON = %s, want %s", raw, want)
	}
}

func TestFloorUsesPreviousEntry(t *testing.T) {
	s := NewPriceSeries(map[int]float64{2010: 100, 2015: 150, 2020: 200})

	cases := []struct {
		year int
		want float64
	}{
		{2015, 150}, {2012, 100}, {2019, 150}, {2001, 100}, {2030, 200},
	}
	for _, c := range cases {
		if got := s.Floor(c.year); got != c.want {
			t.Fatalf("Floor(%d) = %v, want %v", c.year, got, c.want)
		}
	}

	var empty PriceSeries
	if got := empty.Floor(2010); got != 1 {
		t.Fatalf("empty Floor = %v, want 1", got)
	}
}
