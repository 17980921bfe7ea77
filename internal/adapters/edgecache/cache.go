// Package edgecache implements the on-disk cache of dependency edges for
// third-party classpath components.
package edgecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.EdgeCache = (*Cache)(nil)

// Cache implements ports.EdgeCache with one JSON file per component identity
// under the cache root. Entries additionally carry a content fingerprint of
// the component archive, so reusing a path for different content is detected
// as a miss instead of silently serving stale edges.
type Cache struct {
	logger ports.Logger
}

// NewCache creates a new Cache.
func NewCache(logger ports.Logger) *Cache {
	return &Cache{logger: logger}
}

// entry is the persisted cache unit for one component.
type entry struct {
	Component   string    `json:"component"`
	Fingerprint string    `json:"fingerprint"`
	Edges       []edgeDTO `json:"edges"`
}

type edgeDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Load returns the cached edges for every component with a usable entry and
// the identities that missed. Unreadable or stale entries are misses with a
// warning, never errors; a corrupt cache must not fail the build.
func (c *Cache) Load(ctx context.Context, cacheRoot string, components []string) ([]domain.Edge, []string, error) {
	var (
		mu     sync.Mutex
		edges  []domain.Edge
		misses []string
	)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, component := range components {
		g.Go(func() error {
			loaded, ok := c.loadOne(cacheRoot, component)
			mu.Lock()
			defer mu.Unlock()
			if !ok {
				misses = append(misses, component)
				return nil
			}
			edges = append(edges, loaded...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	sort.Strings(misses)
	return edges, misses, nil
}

// loadOne reads a single entry. The bool result is false on any miss.
func (c *Cache) loadOne(cacheRoot, component string) ([]domain.Edge, bool) {
	path := entryPath(cacheRoot, component)

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the configured cache root
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn("unreadable edge cache entry, re-extracting: " + path)
		}
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		c.logger.Warn("corrupt edge cache entry, re-extracting: " + path)
		return nil, false
	}

	fp, err := fingerprint(component)
	if err != nil {
		c.logger.Warn("cannot fingerprint component, re-extracting: " + component)
		return nil, false
	}
	if e.Fingerprint != fp {
		c.logger.Info("component changed since caching, re-extracting: " + component)
		return nil, false
	}

	edges := make([]domain.Edge, 0, len(e.Edges))
	for _, dto := range e.Edges {
		edges = append(edges, domain.NewEdge(dto.From, dto.To))
	}
	return edges, true
}

// Store persists the edges of one component for future cycles.
func (c *Cache) Store(_ context.Context, cacheRoot string, component string, edges []domain.Edge) error {
	if err := os.MkdirAll(cacheRoot, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create edge cache root"), "cache_root", cacheRoot)
	}

	fp, err := fingerprint(component)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to fingerprint component"), "component", component)
	}

	e := entry{
		Component:   component,
		Fingerprint: fp,
		Edges:       make([]edgeDTO, 0, len(edges)),
	}
	for _, edge := range edges {
		e.Edges = append(e.Edges, edgeDTO{From: edge.From.String(), To: edge.To.String()})
	}

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal edge cache entry")
	}

	path := entryPath(cacheRoot, component)
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // Cache entries are not sensitive
		return zerr.With(zerr.Wrap(err, "failed to write edge cache entry"), "path", path)
	}
	return nil
}

// entryPath maps a component identity to its cache file. The identity hash
// keeps entries distinct for equally named archives in different directories.
func entryPath(cacheRoot, component string) string {
	name := fmt.Sprintf("%s-%016x.json", filepath.Base(component), xxhash.Sum64String(component))
	return filepath.Join(cacheRoot, name)
}

// fingerprint computes the XXHash of the component archive's content.
func fingerprint(component string) (string, error) {
	f, err := os.Open(component) //nolint:gosec // Component paths come from the classpath
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
