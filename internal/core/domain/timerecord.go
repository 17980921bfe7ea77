package domain

import "math"

// TimeRecord holds the running timing statistics for a single test across
// selection cycles. A record is only mutated for tests that actually ran; a
// test skipped as non-affected keeps its record untouched, so Count is
// monotonically non-decreasing.
type TimeRecord struct {
	Name  string
	Mean  float64
	Count int
	Stdev float64
	SumSq float64
	// PastTimes are raw observed times, newest first.
	PastTimes []float64
	// PastEstimates are the estimates that were current when each run was
	// recorded, newest first.
	PastEstimates []float64
}

// NewTimeRecord creates a record for a test observed for the first time.
func NewTimeRecord(name string, cur float64) *TimeRecord {
	return &TimeRecord{
		Name:      name,
		Mean:      Round3(cur),
		Count:     1,
		Stdev:     0,
		SumSq:     cur * cur,
		PastTimes: []float64{cur},
	}
}

// Observe folds a new elapsed time into the running statistics. The update is
// deliberately not idempotent: applying the same observation twice advances
// Count and shifts Mean twice.
//
// The variance is computed as sumSq/count - mean^2 clamped at zero. This is
// the algebraic equivalent of the historical recurrence
// sqrt(count*sumSq - (mean*count)^2)/count, which can go negative under the
// square root through rounding; the clamp keeps the result defined.
func (r *TimeRecord) Observe(cur float64) {
	// The mean in effect before this run was the estimate used for it.
	r.PastEstimates = append([]float64{r.Mean}, r.PastEstimates...)

	count := r.Count + 1
	mean := (cur + r.Mean*float64(r.Count)) / float64(count)
	sumSq := r.SumSq + cur*cur

	variance := sumSq/float64(count) - mean*mean
	if variance < 0 {
		variance = 0
	}

	r.Count = count
	r.Mean = Round3(mean)
	r.Stdev = Round3(math.Sqrt(variance))
	r.SumSq = sumSq
	r.PastTimes = append([]float64{cur}, r.PastTimes...)
}

// Round3 rounds to three decimal places, the precision used for all persisted
// and reported timing values.
func Round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
