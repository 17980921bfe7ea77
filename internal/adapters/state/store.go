// Package state implements the on-disk store for the artifacts a selection
// cycle carries between runs: the non-affected list, the timing table and the
// optional dependency graph dump.
package state

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	nonAffectedFile = "non-affected-tests"
	timeTableFile   = "select-time-table"

	// emptyList marks an empty history field in the timing table, keeping
	// every record at exactly seven space-delimited fields.
	emptyList = "-"
)

var _ ports.StateStore = (*Store)(nil)

// Store implements ports.StateStore on plain files. No locking is provided;
// exactly one cycle is assumed to own the artifacts directory at a time.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new Store.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// EnsureArtifactsDir creates the artifacts directory if needed.
func (s *Store) EnsureArtifactsDir(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrArtifactsDir, err.Error()), "dir", dir)
	}
	return nil
}

// ReadNonAffected returns the recorded non-affected test names. An absent
// file is first-run state and yields an empty set.
func (s *Store) ReadNonAffected(dir string) (map[string]struct{}, error) {
	tests := make(map[string]struct{})

	f, err := os.Open(filepath.Join(dir, nonAffectedFile)) //nolint:gosec // Path is inside the artifacts dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tests, nil
		}
		return nil, zerr.Wrap(err, "failed to read non-affected tests")
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			tests[line] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to scan non-affected tests")
	}
	return tests, nil
}

// WriteNonAffected rewrites the non-affected list, one name per line, sorted.
func (s *Store) WriteNonAffected(dir string, tests []string) error {
	sorted := make([]string, len(tests))
	copy(sorted, tests)
	sort.Strings(sorted)

	var b strings.Builder
	for _, t := range sorted {
		b.WriteString(t)
		b.WriteByte('\n')
	}

	path := filepath.Join(dir, nonAffectedFile)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil { //nolint:gosec // Artifacts are not sensitive
		return zerr.With(zerr.Wrap(err, "failed to write non-affected tests"), "path", path)
	}
	return nil
}

// ReadTimeTable loads the timing table. Records are seven space-delimited
// fields: name mean count stdev sumSq pastTimes pastEstimates. A malformed
// record is skipped with a warning; a single bad line must not abort the
// whole update.
func (s *Store) ReadTimeTable(dir string) (map[string]*domain.TimeRecord, error) {
	table := make(map[string]*domain.TimeRecord)

	f, err := os.Open(filepath.Join(dir, timeTableFile)) //nolint:gosec // Path is inside the artifacts dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return table, nil
		}
		return nil, zerr.Wrap(err, "failed to read time table")
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			s.logger.Warn("skipping malformed time table record: " + line)
			continue
		}
		table[rec.Name] = rec
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to scan time table")
	}
	return table, nil
}

// WriteTimeTable rewrites the timing table, sorted by test name.
func (s *Store) WriteTimeTable(dir string, table map[string]*domain.TimeRecord) error {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(formatRecord(table[name]))
		b.WriteByte('\n')
	}

	path := filepath.Join(dir, timeTableFile)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil { //nolint:gosec // Artifacts are not sensitive
		return zerr.With(zerr.Wrap(err, "failed to write time table"), "path", path)
	}
	return nil
}

// WriteGraph dumps the dependency graph for inspection.
func (s *Store) WriteGraph(dir string, name string, g *domain.DependencyGraph) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path) //nolint:gosec // Path is inside the artifacts dir
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create graph file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	return g.Write(f)
}

func parseRecord(line string) (*domain.TimeRecord, error) {
	fields := strings.Fields(line)
	if len(fields) != 7 {
		return nil, zerr.With(zerr.New("expected 7 fields"), "got", len(fields))
	}

	mean, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, err
	}
	stdev, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return nil, err
	}
	sumSq, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return nil, err
	}
	pastTimes, err := parseList(fields[5])
	if err != nil {
		return nil, err
	}
	pastEstimates, err := parseList(fields[6])
	if err != nil {
		return nil, err
	}

	return &domain.TimeRecord{
		Name:          fields[0],
		Mean:          mean,
		Count:         count,
		Stdev:         stdev,
		SumSq:         sumSq,
		PastTimes:     pastTimes,
		PastEstimates: pastEstimates,
	}, nil
}

func formatRecord(r *domain.TimeRecord) string {
	return fmt.Sprintf("%s %s %d %s %s %s %s",
		r.Name,
		formatFloat(r.Mean),
		r.Count,
		formatFloat(r.Stdev),
		formatFloat(r.SumSq),
		formatList(r.PastTimes),
		formatList(r.PastEstimates),
	)
}

func parseList(s string) ([]float64, error) {
	if s == emptyList {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func formatList(vs []float64) string {
	if len(vs) == 0 {
		return emptyList
	}
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, formatFloat(v))
	}
	return strings.Join(parts, ",")
}

// formatFloat uses the shortest representation that round-trips, so an
// untouched record survives a write/read cycle verbatim.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
