package clockbench

import (
	"math"
	"time"
)

// Summary holds the derived metrics for one candidate.
type Summary struct {
	AvgNs     float64 // mean per-call latency, nanoseconds
	StddevNs  float64 // sample standard deviation of per-call latency, nanoseconds
	OpsPerSec float64 // calls per second
}

// Summarize reduces the raw per-repeat batch totals for one candidate.
// Throughput comes from the mean of the raw batch totals, not back from
// the scaled per-call figure.
func Summarize(totals []time.Duration, iterations int) Summary {
	secs := make([]float64, len(totals))
	for i, d := range totals {
		secs[i] = d.Seconds()
	}
	m := mean(secs)
	return Summary{
		AvgNs:     m / float64(iterations) * 1e9,
		StddevNs:  stddev(secs, m) / float64(iterations) * 1e9,
		OpsPerSec: float64(iterations) / m,
	}
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the sample standard deviation (n-1 divisor). A single sample
// has no spread to estimate and reports zero.
func stddev(xs []float64, m float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}
