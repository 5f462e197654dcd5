// Package stats holds the descriptive statistics shared by the aggregation
// layers.
package stats

// Summary pairs the mean and population variance of a sample.
type Summary struct {
	Mean     float64 `json:"mean" yaml:"mean"`
	Variance float64 `json:"variance" yaml:"variance"`
}

// Mean returns the arithmetic mean of xs, or 0 for an empty sample.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Variance returns the population variance (divisor n) of xs, or 0 for an
// empty sample.
func Variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := Mean(xs)
	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	return sq / float64(len(xs))
}

// Summarize computes Mean and Variance in one call.
func Summarize(xs []float64) Summary {
	return Summary{Mean: Mean(xs), Variance: Variance(xs)}
}

// Flatten concatenates nested samples, preserving order.
func Flatten(groups [][]float64) []float64 {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]float64, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
