// Package app implements the application layer for sift.
package app

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/sift/internal/engine/analyzer"
	"go.trai.ch/sift/internal/engine/estimator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// SelectOptions controls the optional outputs of a selection cycle.
type SelectOptions struct {
	// Estimate requests a run-time projection for the affected tests.
	Estimate bool
	// Unreached requests the diagnostic set of classpath classes never
	// targeted by any dependency edge.
	Unreached bool
}

// Selection is the outcome of one selection cycle.
type Selection struct {
	// Affected lists the test classes that must run this cycle, sorted.
	Affected []string
	// Estimate is only populated when requested.
	Estimate *domain.TimeEstimate
	// Unreached is only populated when requested.
	Unreached []string
}

// App represents the main application logic: it orchestrates one
// selection cycle in strict order, cache then graph then impact then
// estimation then persistence.
type App struct {
	configLoader ports.ConfigLoader
	workspace    ports.Workspace
	cache        ports.EdgeCache
	extractor    ports.EdgeExtractor
	builder      *analyzer.Builder
	estimator    *estimator.Estimator
	reports      ports.ReportReader
	store        ports.StateStore
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	ws ports.Workspace,
	cache ports.EdgeCache,
	extractor ports.EdgeExtractor,
	builder *analyzer.Builder,
	est *estimator.Estimator,
	reports ports.ReportReader,
	store ports.StateStore,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		workspace:    ws,
		cache:        cache,
		extractor:    extractor,
		builder:      builder,
		estimator:    est,
		reports:      reports,
		store:        store,
		logger:       logger,
		telemetry:    telemetry,
	}
}

// Select runs one full selection cycle from the current working
// directory and returns the affected test classes. The configuration is
// loaded fresh on every call; nothing cycle-scoped survives on the App.
func (a *App) Select(ctx context.Context, opts SelectOptions) (*Selection, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if err := a.store.EnsureArtifactsDir(cfg.ArtifactsDir); err != nil {
		return nil, err
	}

	nonAffected, err := a.store.ReadNonAffected(cfg.ArtifactsDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read non-affected tests")
	}

	libEdges, err := a.libraryEdges(ctx, cfg)
	if err != nil {
		return nil, err
	}

	result, tests, err := a.buildGraph(ctx, cfg, libEdges, opts.Unreached)
	if err != nil {
		return nil, err
	}

	affected := a.affectedTests(ctx, cfg, tests, nonAffected, result.Closures)

	if cfg.PrintGraph {
		if err := a.store.WriteGraph(cfg.ArtifactsDir, cfg.GraphFile, result.Graph); err != nil {
			return nil, zerr.Wrap(err, "failed to write graph file")
		}
	}

	selection := &Selection{Affected: sortedNames(affected)}
	if opts.Unreached {
		selection.Unreached = result.Unreached.Sorted()
	}
	if err := a.updateTimings(ctx, cfg, nonAffected); err != nil {
		return nil, err
	}
	if opts.Estimate {
		selection.Estimate, err = a.estimator.Estimate(cfg.ArtifactsDir, affected)
		if err != nil {
			return nil, err
		}
	}

	if err := a.persist(ctx, cfg, tests, affected); err != nil {
		return nil, err
	}

	return selection, nil
}

// Clean removes the artifacts directory, resetting all selection state.
func (a *App) Clean() error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if err := os.RemoveAll(cfg.ArtifactsDir); err != nil {
		return zerr.Wrap(err, "failed to remove artifacts directory")
	}
	a.logger.Info("removed " + cfg.ArtifactsDir)
	return nil
}

// libraryEdges loads cached third-party edges and re-extracts every
// component that missed, storing the fresh entries for the next cycle.
func (a *App) libraryEdges(ctx context.Context, cfg *domain.Config) ([]domain.Edge, error) {
	_, vtx := a.telemetry.Record(ctx, "Load Edge Cache")

	components, err := a.workspace.Components(cfg)
	if err != nil {
		vtx.Complete(err)
		return nil, zerr.Wrap(err, "failed to list classpath components")
	}

	edges, misses, err := a.cache.Load(ctx, cfg.CacheDir, components)
	if err != nil {
		vtx.Complete(err)
		return nil, zerr.Wrap(err, "failed to load edge cache")
	}
	if len(misses) == 0 {
		vtx.Cached()
		vtx.Complete(nil)
		return edges, nil
	}
	vtx.Complete(nil)

	_, vtx = a.telemetry.Record(ctx, "Extract Library Dependencies")
	vtx.Log(domain.LogLevelInfo, fmt.Sprintf("%d of %d components missed the cache", len(misses), len(components)))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism(cfg))
	for _, component := range misses {
		g.Go(func() error {
			fresh, err := a.extractor.ExtractComponent(gctx, cfg, component)
			if err != nil {
				return zerr.Wrap(err, "failed to extract component "+component)
			}
			if err := a.cache.Store(gctx, cfg.CacheDir, component, fresh); err != nil {
				return zerr.Wrap(err, "failed to cache component "+component)
			}
			mu.Lock()
			edges = append(edges, fresh...)
			mu.Unlock()
			return nil
		})
	}
	err = g.Wait()
	vtx.Complete(err)
	if err != nil {
		return nil, err
	}
	return edges, nil
}

// buildGraph extracts the project's own edges, merges them with the
// library edges and computes per-root closures. It also resolves the
// test classes while the workspace listing is warm.
func (a *App) buildGraph(ctx context.Context, cfg *domain.Config, libEdges []domain.Edge, unreached bool) (*analyzer.Result, []domain.ClassName, error) {
	_, vtx := a.telemetry.Record(ctx, "Build Dependency Graph")

	classes, err := a.workspace.ClassesToAnalyze(cfg)
	if err != nil {
		vtx.Complete(err)
		return nil, nil, zerr.Wrap(err, "failed to list classes to analyze")
	}

	universe, err := a.workspace.KnownClasses(cfg)
	if err != nil {
		vtx.Complete(err)
		return nil, nil, zerr.Wrap(err, "failed to list classpath universe")
	}

	result, err := a.builder.Build(ctx, cfg, classes, libEdges, universe, unreached)
	if err != nil {
		vtx.Complete(err)
		return nil, nil, err
	}

	tests, err := a.workspace.TestClasses(cfg)
	if err != nil {
		vtx.Complete(err)
		return nil, nil, zerr.Wrap(err, "failed to list test classes")
	}

	vtx.Complete(nil)
	return result, tests, nil
}

// affectedTests applies the format-specific impact correction. Under
// ZLC the upstream non-affected list is already final, so the selection
// is the plain complement.
func (a *App) affectedTests(
	ctx context.Context,
	cfg *domain.Config,
	tests []domain.ClassName,
	nonAffected map[string]struct{},
	closures map[domain.ClassName]domain.ClassSet,
) map[string]struct{} {
	_, vtx := a.telemetry.Record(ctx, "Impact Analysis")
	defer vtx.Complete(nil)

	affected := analyzer.ComputeAffected(tests, nonAffected, closures, cfg.Format)
	if affected == nil {
		affected = make(map[string]struct{})
		for _, t := range tests {
			if _, skip := nonAffected[t.String()]; !skip {
				affected[t.String()] = struct{}{}
			}
		}
	}
	vtx.Log(domain.LogLevelInfo, fmt.Sprintf("%d of %d tests affected", len(affected), len(tests)))
	return affected
}

// updateTimings folds the previous run's execution reports into the
// timing table.
func (a *App) updateTimings(ctx context.Context, cfg *domain.Config, nonAffected map[string]struct{}) error {
	_, vtx := a.telemetry.Record(ctx, "Update Timing Table")

	runTimes, err := a.reports.TestTimes(cfg.ReportsDir)
	if err != nil {
		vtx.Complete(err)
		return zerr.Wrap(err, "failed to parse execution reports")
	}

	err = a.estimator.Update(cfg.ArtifactsDir, runTimes, nonAffected)
	vtx.Complete(err)
	return err
}

// persist writes the new non-affected list, the complement of the
// affected set over all known tests.
func (a *App) persist(ctx context.Context, cfg *domain.Config, tests []domain.ClassName, affected map[string]struct{}) error {
	_, vtx := a.telemetry.Record(ctx, "Persist Selection")

	notAffected := make([]string, 0, len(tests))
	for _, t := range tests {
		if _, ok := affected[t.String()]; !ok {
			notAffected = append(notAffected, t.String())
		}
	}
	sort.Strings(notAffected)

	err := a.store.WriteNonAffected(cfg.ArtifactsDir, notAffected)
	vtx.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "failed to write non-affected tests")
	}
	return nil
}

func parallelism(cfg *domain.Config) int {
	if cfg.Parallelism > 0 {
		return cfg.Parallelism
	}
	return runtime.NumCPU()
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
