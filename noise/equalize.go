package noise

import (
	"slices"
	"sort"
)

const (
	equalizeGrid    = 96
	equalizeSpacing = 3.173
)

// Equalizer remaps a field's samples so they are spread approximately
// uniformly over [0, 1], using the empirical distribution of the field on a
// fixed sample grid.
type Equalizer struct {
	quantiles []float64
}

// NewEqualizer samples f on a deterministic grid and records its sorted
// values. The result is safe for concurrent use.
func NewEqualizer(f *Field) *Equalizer {
	q := make([]float64, 0, equalizeGrid*equalizeGrid)
	for j := range equalizeGrid {
		for i := range equalizeGrid {
			q = append(q, f.Sample(float64(i)*equalizeSpacing+0.37, float64(j)*equalizeSpacing+0.61))
		}
	}
	slices.Sort(q)
	return &Equalizer{quantiles: q}
}

// Map returns the interpolated empirical CDF at v. It is monotonically
// non-decreasing, returns 0 at or below the smallest recorded sample and 1
// above the largest.
func (e *Equalizer) Map(v float64) float64 {
	q := e.quantiles
	n := len(q)
	if v != v {
		return 0
	}
	i := sort.SearchFloat64s(q, v)
	switch {
	case i == 0:
		return 0
	case i == n:
		return 1
	}
	lo, hi := q[i-1], q[i]
	frac := (v - lo) / (hi - lo)
	return (float64(i-1) + frac) / float64(n-1)
}
