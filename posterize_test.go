package shade

import (
	"errors"
	"math"
	"testing"
)

func TestBin(t *testing.T) {
	tests := []struct {
		t    float64
		n    int
		want int
	}{
		{0, 1, 0},
		{1, 1, 0},
		{0.49, 2, 0},
		{0.5, 2, 1},
		{1, 2, 1},
		{0.999, 3, 2},
		{1, 3, 2},
		{-1, 3, 0},
		{2, 3, 2},
		{math.NaN(), 3, 0},
		{0.5, 50, 25},
	}
	for _, tt := range tests {
		if got := Bin(tt.t, tt.n); got != tt.want {
			t.Errorf("Bin(%v, %d) = %d, want %d", tt.t, tt.n, got, tt.want)
		}
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		i, n int
		want float64
	}{
		{0, 1, 0.5},
		{0, 2, 0},
		{1, 2, 1},
		{1, 3, 0.5},
		{4, 5, 1},
	}
	for _, tt := range tests {
		if got := Level(tt.i, tt.n); got != tt.want {
			t.Errorf("Level(%d, %d) = %v, want %v", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestQuantizeCardinality(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 50} {
		seen := map[float64]bool{}
		for i := range 1001 {
			q, err := Quantize(float64(i)/1000, n)
			if err != nil {
				t.Fatalf("Quantize(_, %d): %v", n, err)
			}
			seen[q] = true
		}
		if len(seen) != n {
			t.Errorf("n=%d: %d distinct levels, want %d", n, len(seen), n)
		}
	}
}

func TestQuantizeRejectsZero(t *testing.T) {
	for _, n := range []int{0, -3} {
		if _, err := Quantize(0.5, n); !errors.Is(err, ErrConfig) {
			t.Errorf("Quantize(0.5, %d) error = %v, want ErrConfig", n, err)
		}
	}
}
