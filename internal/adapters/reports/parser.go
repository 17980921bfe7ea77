// Package reports parses per-test execution report files into elapsed run
// times.
package reports

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
)

// timeMarker is the literal each report emits before the elapsed duration.
const timeMarker = "Time elapsed:"

// testMarker separates the duration from the test identifier.
const testMarker = " - in "

var _ ports.ReportReader = (*Parser)(nil)

// Parser implements ports.ReportReader over a directory of plain-text report
// files, one per test.
type Parser struct {
	logger ports.Logger
}

// NewParser creates a new Parser.
func NewParser(logger ports.Logger) *Parser {
	return &Parser{logger: logger}
}

// TestTimes scans reportsDir for *.txt reports and collects elapsed seconds
// per test name. A missing directory yields an empty map; malformed lines are
// skipped with a warning.
func (p *Parser) TestTimes(reportsDir string) (map[string]float64, error) {
	times := make(map[string]float64)

	entries, err := os.ReadDir(reportsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return times, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read reports directory"), "dir", reportsDir)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		if err := p.parseFile(filepath.Join(reportsDir, e.Name()), times); err != nil {
			return nil, err
		}
	}
	return times, nil
}

func (p *Parser) parseFile(path string, times map[string]float64) error {
	f, err := os.Open(path) //nolint:gosec // Path is inside the configured reports dir
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open report"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, timeMarker) {
			continue
		}
		name, secs, ok := parseLine(line)
		if !ok {
			p.logger.Warn("skipping malformed report line: " + line)
			continue
		}
		times[name] = secs
	}
	if err := scanner.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to scan report"), "path", path)
	}
	return nil
}

// parseLine extracts the test name and elapsed seconds from a line such as
// "Tests run: 3, ... Time elapsed: 0.95 s - in com.example.FooTest".
func parseLine(line string) (string, float64, bool) {
	rest := line[strings.Index(line, timeMarker)+len(timeMarker):]
	rest = strings.TrimLeft(rest, " ")

	end := strings.IndexByte(rest, ' ')
	if end < 0 {
		return "", 0, false
	}
	secs, err := strconv.ParseFloat(strings.TrimSuffix(rest[:end], "s"), 64)
	if err != nil {
		return "", 0, false
	}

	at := strings.Index(rest, testMarker)
	if at < 0 {
		return "", 0, false
	}
	name := strings.TrimSpace(rest[at+len(testMarker):])
	if name == "" {
		return "", 0, false
	}
	return name, secs, true
}
