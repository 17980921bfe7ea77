// Package jdeps runs an external jdeps-style tool and parses its output into
// dependency edges. Only the output is consumed here; the static analysis
// itself belongs to the tool.
package jdeps

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EdgeExtractor = (*Extractor)(nil)

// Extractor implements ports.EdgeExtractor using os/exec.
type Extractor struct {
	logger ports.Logger
}

// NewExtractor creates a new Extractor.
func NewExtractor(logger ports.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract runs the configured extractor over the compiled class directories
// and returns the edges of the classes under analysis.
func (e *Extractor) Extract(ctx context.Context, cfg *domain.Config, classes []domain.ClassName) ([]domain.Edge, error) {
	if len(classes) == 0 {
		return nil, domain.ErrNoClassesToAnalyze
	}
	return e.run(ctx, cfg, cfg.ClassesDir, cfg.TestClassesDir)
}

// ExtractComponent runs the extractor over one third-party archive, used to
// fill edge-cache misses.
func (e *Extractor) ExtractComponent(ctx context.Context, cfg *domain.Config, component string) ([]domain.Edge, error) {
	return e.run(ctx, cfg, component)
}

func (e *Extractor) run(ctx context.Context, cfg *domain.Config, targets ...string) ([]domain.Edge, error) {
	if len(cfg.Extractor) == 0 {
		return nil, zerr.Wrap(domain.ErrExtractionFailed, "no extractor command configured")
	}

	name := cfg.Extractor[0]
	args := append(append([]string{}, cfg.Extractor[1:]...), targets...)

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // Extractor command comes from config
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrExtractionFailed, err.Error()), "command", name),
			"stderr", strings.TrimSpace(stderr.String()),
		)
	}

	return e.parse(&stdout), nil
}

// parse reads "from -> to" lines from the extractor output. Malformed lines
// are skipped with a warning; a single bad line must not abort extraction.
func (e *Extractor) parse(out *bytes.Buffer) []domain.Edge {
	var edges []domain.Edge

	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "->") {
			continue
		}
		edge, ok := parseEdge(line)
		if !ok {
			e.logger.Warn("skipping malformed extractor line: " + strings.TrimSpace(line))
			continue
		}
		edges = append(edges, edge)
	}
	return edges
}

// parseEdge handles lines such as
//
//	com.example.Foo -> com.example.Bar app.jar
//
// taking the token before the arrow and the first token after it. The
// trailing archive column, when present, is ignored.
func parseEdge(line string) (domain.Edge, bool) {
	parts := strings.SplitN(line, "->", 2)
	if len(parts) != 2 {
		return domain.Edge{}, false
	}

	leftFields := strings.Fields(parts[0])
	rightFields := strings.Fields(parts[1])
	if len(leftFields) == 0 || len(rightFields) == 0 {
		return domain.Edge{}, false
	}

	from := leftFields[len(leftFields)-1]
	to := rightFields[0]
	return domain.NewEdge(from, to), true
}
