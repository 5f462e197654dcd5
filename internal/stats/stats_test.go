package stats

import (
	"math"
	"testing"
)

func TestMeanAndVariance(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		mean     float64
		variance float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{0.4}, 0.4, 0},
		{"symmetric", []float64{-1, 1}, 0, 1},
		{"sequence", []float64{1, 2, 3, 4}, 2.5, 1.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.input); math.Abs(got-tt.mean) > 1e-12 {
				t.Errorf("Mean(%v) = %v, want %v", tt.input, got, tt.mean)
			}
			if got := Variance(tt.input); math.Abs(got-tt.variance) > 1e-12 {
				t.Errorf("Variance(%v) = %v, want %v", tt.input, got, tt.variance)
			}
		})
	}
}

func TestSummarizeFlatten(t *testing.T) {
	flat := Flatten([][]float64{{1}, nil, {2, 3}})
	if len(flat) != 3 || flat[2] != 3 {
		t.Fatalf("unexpected flatten result: %v", flat)
	}
	s := Summarize(flat)
	if s.Mean != 2 {
		t.Fatalf("unexpected mean: %v", s.Mean)
	}
	if math.Abs(s.Variance-2.0/3.0) > 1e-12 {
		t.Fatalf("unexpected variance: %v", s.Variance)
	}
}
