// Package estimator maintains per-test timing statistics and predicts
// how long a selected set of tests will take to run.
package estimator

import (
	"fmt"
	"sort"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
)

// Estimator folds observed test run times into the persisted timing
// table and answers duration queries for selected tests.
type Estimator struct {
	store  ports.StateStore
	logger ports.Logger
}

func NewEstimator(store ports.StateStore, logger ports.Logger) *Estimator {
	return &Estimator{
		store:  store,
		logger: logger,
	}
}

// Update merges the run times observed in the current cycle into the
// timing table under artifactsDir. Tests listed in nonAffected were
// skipped this cycle, so their rows are carried over untouched.
func (e *Estimator) Update(artifactsDir string, runTimes map[string]float64, nonAffected map[string]struct{}) error {
	table, err := e.store.ReadTimeTable(artifactsDir)
	if err != nil {
		return zerr.Wrap(err, "reading timing table")
	}

	updated := 0
	for name, seconds := range runTimes {
		if _, skipped := nonAffected[name]; skipped {
			continue
		}
		if rec, ok := table[name]; ok {
			rec.Observe(seconds)
		} else {
			table[name] = domain.NewTimeRecord(name, seconds)
		}
		updated++
	}

	e.logger.Info(fmt.Sprintf("timing table: %d observed, %d updated, %d rows", len(runTimes), updated, len(table)))

	if err := e.store.WriteTimeTable(artifactsDir, table); err != nil {
		return zerr.Wrap(err, "writing timing table")
	}
	return nil
}

// Estimate predicts the wall time of running every test in affected,
// based on the timing table under artifactsDir. Tests with no recorded
// history contribute nothing and are omitted from the breakdown.
func (e *Estimator) Estimate(artifactsDir string, affected map[string]struct{}) (*domain.TimeEstimate, error) {
	table, err := e.store.ReadTimeTable(artifactsDir)
	if err != nil {
		return nil, zerr.Wrap(err, "reading timing table")
	}

	names := make([]string, 0, len(affected))
	for name := range affected {
		names = append(names, name)
	}
	sort.Strings(names)

	estimate := &domain.TimeEstimate{
		Tests: make([]domain.TestEstimate, 0, len(names)),
	}

	var total float64
	for _, name := range names {
		rec, ok := table[name]
		if !ok {
			continue
		}
		test := domain.TestEstimate{Name: name, Mean: rec.Mean}
		if len(rec.PastEstimates) > 0 {
			test.LastEstimate = rec.PastEstimates[0]
		}
		total += rec.Mean
		estimate.Tests = append(estimate.Tests, test)
	}
	estimate.Total = domain.Round3(total)

	return estimate, nil
}
