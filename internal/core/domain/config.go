package domain

// Config is the per-cycle configuration, computed once when a cycle starts
// and passed explicitly to every component. Nothing caches it across cycles.
type Config struct {
	// ArtifactsDir holds the state carried between runs: the non-affected
	// list, the timing table and the optional graph dump.
	ArtifactsDir string

	// CacheDir is the root under which per-component edge caches live.
	CacheDir string

	// Format selects the persisted dependency encoding.
	Format DependencyFormat

	// PrintGraph enables writing the merged dependency graph to GraphFile in
	// the artifacts directory at the end of the cycle.
	PrintGraph bool
	GraphFile  string

	// ReportsDir is scanned for per-test execution reports to collect run
	// times.
	ReportsDir string

	// ClassesDir and TestClassesDir hold the compiled classes of the project
	// under analysis.
	ClassesDir     string
	TestClassesDir string

	// Classpath lists third-party component archives whose edges are cached
	// across cycles.
	Classpath []string

	// Extractor is the external static-analysis command that emits raw
	// dependency edges, argv style.
	Extractor []string

	// FilterLib drops edges into the platform library namespaces (java.*,
	// sun.*) when merging extractor output.
	FilterLib bool

	// Parallelism bounds concurrent cache and extraction work. Zero means
	// one worker per CPU.
	Parallelism int
}
