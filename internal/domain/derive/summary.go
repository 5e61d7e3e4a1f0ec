package derive

import (
	"math"
	"sort"
)

// Summary describes a distribution for box and violin charts.
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// Summarize computes the five-number summary and mean of values. Quartiles
// use linear interpolation between closest ranks. NaN values are ignored.
// The input is not modified.
func Summarize(values []float64) Summary {
	xs := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}
	if len(xs) == 0 {
		return Summary{}
	}
	sort.Float64s(xs)

	var sum float64
	for _, v := range xs {
		sum += v
	}
	return Summary{
		Count:  len(xs),
		Min:    xs[0],
		Q1:     quantile(xs, 0.25),
		Median: quantile(xs, 0.5),
		Q3:     quantile(xs, 0.75),
		Max:    xs[len(xs)-1],
		Mean:   sum / float64(len(xs)),
	}
}

// quantile expects sorted input.
func quantile(xs []float64, p float64) float64 {
	pos := p * float64(len(xs)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return xs[lo]
	}
	return xs[lo] + (xs[hi]-xs[lo])*(pos-float64(lo))
}
