package estimator_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports/mocks"
	"go.trai.ch/sift/internal/engine/estimator"
	"go.uber.org/mock/gomock"
)

const artifactsDir = ".sift"

func TestEstimator_Update_NewAndExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStateStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	existing := domain.NewTimeRecord("com.example.OldTest", 1.2)
	store.EXPECT().ReadTimeTable(artifactsDir).Return(map[string]*domain.TimeRecord{
		"com.example.OldTest": existing,
	}, nil)

	var written map[string]*domain.TimeRecord
	store.EXPECT().WriteTimeTable(artifactsDir, gomock.Any()).DoAndReturn(
		func(_ string, table map[string]*domain.TimeRecord) error {
			written = table
			return nil
		})

	e := estimator.NewEstimator(store, logger)
	runTimes := map[string]float64{
		"com.example.OldTest": 0.8,
		"com.example.NewTest": 0.5,
	}
	require.NoError(t, e.Update(artifactsDir, runTimes, nil))

	require.Len(t, written, 2)

	old := written["com.example.OldTest"]
	require.Equal(t, 2, old.Count)
	require.Equal(t, 1.0, old.Mean)
	require.Equal(t, []float64{1.2}, old.PastEstimates)

	fresh := written["com.example.NewTest"]
	require.Equal(t, 1, fresh.Count)
	require.Equal(t, 0.5, fresh.Mean)
	require.Empty(t, fresh.PastEstimates)
}

func TestEstimator_Update_SkipsNonAffected(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStateStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	skipped := domain.NewTimeRecord("com.example.SkippedTest", 2.0)
	store.EXPECT().ReadTimeTable(artifactsDir).Return(map[string]*domain.TimeRecord{
		"com.example.SkippedTest": skipped,
	}, nil)

	var written map[string]*domain.TimeRecord
	store.EXPECT().WriteTimeTable(artifactsDir, gomock.Any()).DoAndReturn(
		func(_ string, table map[string]*domain.TimeRecord) error {
			written = table
			return nil
		})

	e := estimator.NewEstimator(store, logger)
	// The reports still contain a line for the skipped test from an older
	// run; it must not advance the record.
	runTimes := map[string]float64{"com.example.SkippedTest": 9.9}
	nonAffected := map[string]struct{}{"com.example.SkippedTest": {}}
	require.NoError(t, e.Update(artifactsDir, runTimes, nonAffected))

	rec := written["com.example.SkippedTest"]
	require.Equal(t, 1, rec.Count)
	require.Equal(t, 2.0, rec.Mean)
}

func TestEstimator_Estimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStateStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	slow := domain.NewTimeRecord("com.example.SlowTest", 1.2)
	slow.Observe(1.2)
	fast := domain.NewTimeRecord("com.example.FastTest", 0.8)
	store.EXPECT().ReadTimeTable(artifactsDir).Return(map[string]*domain.TimeRecord{
		"com.example.SlowTest": slow,
		"com.example.FastTest": fast,
	}, nil)

	e := estimator.NewEstimator(store, logger)
	affected := map[string]struct{}{
		"com.example.SlowTest": {},
		"com.example.FastTest": {},
		// No history yet: contributes nothing.
		"com.example.BrandNewTest": {},
	}

	estimate, err := e.Estimate(artifactsDir, affected)
	require.NoError(t, err)

	require.Equal(t, 2.0, estimate.Total)
	require.Equal(t, []domain.TestEstimate{
		{Name: "com.example.FastTest", Mean: 0.8, LastEstimate: 0},
		{Name: "com.example.SlowTest", Mean: 1.2, LastEstimate: 1.2},
	}, estimate.Tests)
}

func TestEstimator_Estimate_EmptySelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStateStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	store.EXPECT().ReadTimeTable(artifactsDir).Return(map[string]*domain.TimeRecord{}, nil)

	e := estimator.NewEstimator(store, logger)
	estimate, err := e.Estimate(artifactsDir, nil)
	require.NoError(t, err)
	require.Empty(t, estimate.Tests)
	require.Zero(t, estimate.Total)
}
