package shade

import (
	"math"
	"testing"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"two pi", 2 * math.Pi, 0},
		{"four pi", 4 * math.Pi, 0},
		{"six pi", 6 * math.Pi, 0},
		{"negative two pi", -2 * math.Pi, 0},
		{"just below two pi", 2*math.Pi - 1e-12, 0},
		{"pi", math.Pi, math.Pi},
		{"negative half pi", -math.Pi / 2, 3 * math.Pi / 2},
		{"three pi", 3 * math.Pi, math.Pi},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapAngle(tt.in)
			if tt.want == 0 {
				if got != 0 {
					t.Errorf("WrapAngle(%v) = %v, want exactly 0", tt.in, got)
				}
				return
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrapAngleRange(t *testing.T) {
	for a := -20.0; a <= 20; a += 0.137 {
		w := WrapAngle(a)
		if w < 0 || w >= 2*math.Pi {
			t.Fatalf("WrapAngle(%v) = %v, outside [0, 2π)", a, w)
		}
	}
}

func TestWrapUnit(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{1.25, 0.25},
		{-0.25, 0.75},
		{-1e-20, 0},
		{math.NaN(), 0},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		if got := WrapUnit(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapUnit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{7, 1},
		{math.NaN(), 0},
		{math.Inf(1), 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
