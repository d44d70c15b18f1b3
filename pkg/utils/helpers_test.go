package utils

import (
	"math"
	"testing"
)

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]float64{
		2.5:   3,
		2.49:  2,
		-2.5:  -2,
		-2.51: -3,
		0:     0,
	}
	for in, want := range cases {
		if got := Round(in); got != want {
			t.Fatalf("Round(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(12.345, 1); got != 12.3 {
		t.Fatalf("RoundTo = %v, want 12.3", got)
	}
	if got := RoundTo(0.125, 2); math.Abs(got-0.13) > 1e-9 {
		t.Fatalf("RoundTo = %v, want 0.13", got)
	}
}

func TestClampAndLerp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Fatal("Clamp returned a value outside the bounds")
	}
	if got := Lerp(100, 200, 0.5); got != 150 {
		t.Fatalf("Lerp = %v, want 150", got)
	}
}

func TestGrowth(t *testing.T) {
	if got := Growth(10, 0); got != 1 {
		t.Fatalf("Growth over zero periods = %v, want 1", got)
	}
	if got := Growth(10, 2); math.Abs(got-1.21) > 1e-12 {
		t.Fatalf("Growth = %v, want 1.21", got)
	}
}

func TestFormatINR(t *testing.T) {
	cases := map[float64]string{
		0:        "₹0",
		999:      "₹999",
		1000:     "₹1,000",
		123456:   "₹1,23,456",
		1234567:  "₹12,34,567",
		10000000: "₹1,00,00,000",
		-1500:    "-₹1,500",
		53000.4:  "₹53,000",
	}
	for in, want := range cases {
		if got := FormatINR(in); got != want {
			t.Fatalf("FormatINR(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	cases := map[float64]string{
		12500000: "₹1.25 Cr",
		450000:   "₹4.50 L",
		75000:    "₹75,000",
		-2e7:     "-₹2.00 Cr",
	}
	for in, want := range cases {
		if got := FormatCompact(in); got != want {
			t.Fatalf("FormatCompact(%v) = %q, want %q", in, got, want)
		}
	}
}
