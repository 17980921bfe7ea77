// Package analyzer implements the dependency graph builder and the change
// impact analysis that turns closures into an affected-test set.
package analyzer

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result bundles the outputs of one graph construction.
type Result struct {
	Graph    *domain.DependencyGraph
	Closures map[domain.ClassName]domain.ClassSet
	// Unreached is only populated on request: classes in the universe that
	// are never the target of any edge. Diagnostic, never used by selection.
	Unreached domain.ClassSet
}

// Builder merges cached and freshly extracted edges into one dependency
// graph and computes per-root transitive closures.
type Builder struct {
	extractor ports.EdgeExtractor
	logger    ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(extractor ports.EdgeExtractor, logger ports.Logger) *Builder {
	return &Builder{
		extractor: extractor,
		logger:    logger,
	}
}

// Build extracts fresh edges for the classes under analysis, unions them with
// the cached library edges and computes the transitive closure of every root.
// Extraction failure is fatal: without a graph there is no safe selection.
func (b *Builder) Build(
	ctx context.Context,
	cfg *domain.Config,
	classes []domain.ClassName,
	cachedEdges []domain.Edge,
	universe domain.ClassSet,
	computeUnreached bool,
) (*Result, error) {
	fresh, err := b.extractor.Extract(ctx, cfg, classes)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to extract dependency edges")
	}

	g := domain.NewDependencyGraph()
	for _, c := range classes {
		g.AddNode(c)
	}

	kept := 0
	for _, edge := range append(cachedEdges, fresh...) {
		if cfg.FilterLib && isPlatformClass(edge.To) {
			continue
		}
		g.AddEdge(edge)
		kept++
	}
	b.logger.Info(fmt.Sprintf("dependency graph: %d nodes, %d edges (%d raw)",
		g.NodeCount(), g.EdgeCount(), kept))

	result := &Result{
		Graph:    g,
		Closures: domain.ComputeClosures(g, classes, universe),
	}
	if computeUnreached {
		result.Unreached = domain.Unreached(g, universe)
	}
	return result, nil
}

// isPlatformClass reports whether a class belongs to the platform library
// namespaces filtered out by the filterLib option.
func isPlatformClass(c domain.ClassName) bool {
	name := c.String()
	return strings.HasPrefix(name, "java.") || strings.HasPrefix(name, "sun.")
}
