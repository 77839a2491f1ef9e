package calculator

import (
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// Statistics helpers over raw metric samples. All of these treat an
// empty sample list as 0 rather than an error - some funds legitimately
// contribute no samples to a metric, and a zero row beats a failed run.
// Results are rounded to 2 decimals; inputs are never mutated.

func Average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean, err := stats.Mean(xs)
	if err != nil {
		return 0
	}
	return Round2(mean)
}

func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	median, err := stats.Median(xs)
	if err != nil {
		return 0
	}
	return Round2(median)
}

// StdDev is the population standard deviation (divide by n, not n-1).
// A single sample has no spread, so it returns 0 like the empty case.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	stdev, err := stats.StandardDeviationPopulation(xs)
	if err != nil {
		return 0
	}
	return Round2(stdev)
}

// Round2 rounds half away from zero to 2 decimal places. Only reported
// values go through here - accumulators keep full precision.
func Round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}
