package ports

import "go.trai.ch/sift/internal/core/domain"

// StateStore reads and writes the artifacts a selection cycle carries between
// runs. Absent artifacts are first-run state, not errors. No locking is
// provided; exactly one cycle is assumed to own the artifacts directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=state_store.go -destination=mocks/mock_state_store.go -package=mocks
type StateStore interface {
	// EnsureArtifactsDir creates the artifacts directory if needed. Failure
	// is fatal for the cycle.
	EnsureArtifactsDir(dir string) error

	// ReadNonAffected returns the test names recorded as unaffected by the
	// upstream change-detection step, or an empty set on first run.
	ReadNonAffected(dir string) (map[string]struct{}, error)

	// WriteNonAffected rewrites the non-affected list, one name per line.
	WriteNonAffected(dir string, tests []string) error

	// ReadTimeTable loads the timing table, skipping malformed records with
	// a warning. Absent file means an empty table.
	ReadTimeTable(dir string) (map[string]*domain.TimeRecord, error)

	// WriteTimeTable rewrites the timing table.
	WriteTimeTable(dir string, table map[string]*domain.TimeRecord) error

	// WriteGraph dumps the dependency graph for inspection. It is never read
	// back.
	WriteGraph(dir string, name string, g *domain.DependencyGraph) error
}
