package ports

import "go.trai.ch/sift/internal/core/domain"

// Workspace is the capability contract the host build environment implements.
// The engine depends only on this narrow surface, never on build-tool
// internals.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Components lists the third-party classpath components (archive paths)
	// whose edges are cached across cycles.
	Components(cfg *domain.Config) ([]string, error)

	// ClassesToAnalyze lists the compiled classes of the project under
	// analysis, the roots of the closure computation.
	ClassesToAnalyze(cfg *domain.Config) ([]domain.ClassName, error)

	// TestClasses lists the test classes among the classes to analyze.
	TestClasses(cfg *domain.Config) ([]domain.ClassName, error)

	// KnownClasses returns the full classpath universe. Graph nodes outside
	// it are unresolvable and poison their ancestors' closures with StarNode.
	KnownClasses(cfg *domain.Config) (domain.ClassSet, error)
}
