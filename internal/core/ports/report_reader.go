package ports

// ReportReader parses per-test execution reports into elapsed run times in
// seconds, keyed by test name.
//
//go:generate go run go.uber.org/mock/mockgen -source=report_reader.go -destination=mocks/mock_report_reader.go -package=mocks
type ReportReader interface {
	// TestTimes scans the reports directory. A missing directory yields an
	// empty map; malformed report lines are skipped with a warning.
	TestTimes(reportsDir string) (map[string]float64, error)
}
