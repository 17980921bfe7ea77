package domain

// TestEstimate is the per-test part of a run-time estimate.
type TestEstimate struct {
	Name string
	// Mean is the running average time of past runs.
	Mean float64
	// LastEstimate is the most recent estimate recorded for this test, or
	// zero when none exists yet.
	LastEstimate float64
}

// TimeEstimate is the projected cost of running an affected-test set. Tests
// without timing history contribute nothing and do not appear in Tests.
type TimeEstimate struct {
	Tests []TestEstimate
	Total float64
}
