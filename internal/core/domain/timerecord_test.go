package domain_test

import (
	"testing"

	"go.trai.ch/sift/internal/core/domain"
)

func TestNewTimeRecord(t *testing.T) {
	r := domain.NewTimeRecord("com.example.FooTest", 1.2)

	if r.Mean != 1.2 {
		t.Errorf("expected mean 1.2, got %v", r.Mean)
	}
	if r.Count != 1 {
		t.Errorf("expected count 1, got %d", r.Count)
	}
	if r.Stdev != 0 {
		t.Errorf("expected stdev 0, got %v", r.Stdev)
	}
	if r.SumSq != 1.44 {
		t.Errorf("expected sumSq 1.44, got %v", r.SumSq)
	}
	if len(r.PastTimes) != 1 || r.PastTimes[0] != 1.2 {
		t.Errorf("expected past times [1.2], got %v", r.PastTimes)
	}
	if len(r.PastEstimates) != 0 {
		t.Errorf("expected no past estimates, got %v", r.PastEstimates)
	}
}

func TestTimeRecord_Observe(t *testing.T) {
	r := domain.NewTimeRecord("com.example.FooTest", 1.2)
	r.Observe(0.8)

	if r.Count != 2 {
		t.Errorf("expected count 2, got %d", r.Count)
	}
	if r.Mean != 1.0 {
		t.Errorf("expected mean 1.0, got %v", r.Mean)
	}
	if r.Stdev != 0.2 {
		t.Errorf("expected stdev 0.2, got %v", r.Stdev)
	}
	if r.SumSq != 2.08 {
		t.Errorf("expected sumSq 2.08, got %v", r.SumSq)
	}
	// Newest first on both histories.
	if len(r.PastTimes) != 2 || r.PastTimes[0] != 0.8 || r.PastTimes[1] != 1.2 {
		t.Errorf("expected past times [0.8 1.2], got %v", r.PastTimes)
	}
	// The pre-update mean was the estimate in effect for this run.
	if len(r.PastEstimates) != 1 || r.PastEstimates[0] != 1.2 {
		t.Errorf("expected past estimates [1.2], got %v", r.PastEstimates)
	}

	r.Observe(1.0)
	if r.Count != 3 {
		t.Errorf("expected count 3, got %d", r.Count)
	}
	if r.Mean != 1.0 {
		t.Errorf("expected mean 1.0, got %v", r.Mean)
	}
	if r.Stdev != 0.163 {
		t.Errorf("expected stdev 0.163, got %v", r.Stdev)
	}
	if len(r.PastEstimates) != 2 || r.PastEstimates[0] != 1.0 || r.PastEstimates[1] != 1.2 {
		t.Errorf("expected past estimates [1.0 1.2], got %v", r.PastEstimates)
	}
}

func TestTimeRecord_Observe_VarianceClamped(t *testing.T) {
	// Identical observations: rounding must never push the variance below
	// zero and produce NaN.
	r := domain.NewTimeRecord("com.example.SteadyTest", 0.1)
	for range 10 {
		r.Observe(0.1)
	}

	if r.Stdev != 0 {
		t.Errorf("expected stdev 0 for identical observations, got %v", r.Stdev)
	}
	if r.Mean != 0.1 {
		t.Errorf("expected mean 0.1, got %v", r.Mean)
	}
}

func TestRound3(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.23456, 1.235},
		{1.2344, 1.234},
		{0, 0},
		{2.0005, 2.001},
	}
	for _, tt := range tests {
		if got := domain.Round3(tt.in); got != tt.want {
			t.Errorf("Round3(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
