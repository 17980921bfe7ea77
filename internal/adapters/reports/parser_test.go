package reports_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/sift/internal/adapters/reports"
	"go.trai.ch/sift/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestParser_TestTimes(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	p := reports.NewParser(logger)

	dir := t.TempDir()
	report := `-------------------------------------------------------------------------------
Test set: com.example.FooTest
-------------------------------------------------------------------------------
Tests run: 3, Failures: 0, Errors: 0, Skipped: 0, Time elapsed: 0.952 s - in com.example.FooTest
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "com.example.FooTest.txt"), []byte(report), 0o600))

	second := "Tests run: 1, Failures: 0, Errors: 0, Skipped: 0, Time elapsed: 1.5 s - in com.example.BarTest\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "com.example.BarTest.txt"), []byte(second), 0o600))

	// Non-txt files are ignored entirely.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "TEST-com.example.FooTest.xml"), []byte("<xml/>"), 0o600))

	times, err := p.TestTimes(dir)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{
		"com.example.FooTest": 0.952,
		"com.example.BarTest": 1.5,
	}, times)
}

func TestParser_TestTimes_MissingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	p := reports.NewParser(logger)

	times, err := p.TestTimes(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	require.Empty(t, times)
}

func TestParser_TestTimes_MalformedLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).Times(2)
	p := reports.NewParser(logger)

	dir := t.TempDir()
	report := "Time elapsed: not-a-number s - in com.example.FooTest\n" +
		"Time elapsed: 0.5 s without the separator\n" +
		"Time elapsed: 0.25 s - in com.example.OkTest\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.txt"), []byte(report), 0o600))

	times, err := p.TestTimes(dir)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"com.example.OkTest": 0.25}, times)
}
