// Package workspace implements the host capability contract on the
// filesystem: it lists compiled classes and classpath components without
// exposing any build-tool internals to the engine.
package workspace

import (
	"archive/zip"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
)

const classSuffix = ".class"

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace for a compiled project layout.
type Workspace struct {
	logger ports.Logger
}

// New creates a new Workspace.
func New(logger ports.Logger) *Workspace {
	return &Workspace{logger: logger}
}

// Components lists the third-party classpath archives. Missing entries are
// skipped with a warning so that a stale classpath line does not abort the
// cycle.
func (w *Workspace) Components(cfg *domain.Config) ([]string, error) {
	var components []string
	for _, c := range cfg.Classpath {
		if _, err := os.Stat(c); err != nil {
			w.logger.Warn("skipping missing classpath component: " + c)
			continue
		}
		components = append(components, c)
	}
	return components, nil
}

// ClassesToAnalyze lists the compiled classes of the project, main and test.
func (w *Workspace) ClassesToAnalyze(cfg *domain.Config) ([]domain.ClassName, error) {
	names, err := w.classDirNames(cfg.ClassesDir, cfg.TestClassesDir)
	if err != nil {
		return nil, err
	}

	classes := make([]domain.ClassName, 0, len(names))
	for _, n := range names {
		classes = append(classes, domain.NewClassName(n))
	}
	return classes, nil
}

// TestClasses lists the test classes among the classes to analyze, using the
// conventional test naming patterns.
func (w *Workspace) TestClasses(cfg *domain.Config) ([]domain.ClassName, error) {
	names, err := w.classDirNames(cfg.TestClassesDir)
	if err != nil {
		return nil, err
	}

	var tests []domain.ClassName
	for _, n := range names {
		if isTestClass(n) {
			tests = append(tests, domain.NewClassName(n))
		}
	}
	return tests, nil
}

// KnownClasses returns the full classpath universe: project classes plus
// every class packaged in a classpath component.
func (w *Workspace) KnownClasses(cfg *domain.Config) (domain.ClassSet, error) {
	known := make(domain.ClassSet)

	names, err := w.classDirNames(cfg.ClassesDir, cfg.TestClassesDir)
	if err != nil {
		return nil, err
	}
	for _, n := range names {
		known.Add(domain.NewClassName(n))
	}

	components, err := w.Components(cfg)
	if err != nil {
		return nil, err
	}
	for _, c := range components {
		if err := addArchiveClasses(known, c); err != nil {
			return nil, err
		}
	}
	return known, nil
}

// classDirNames walks class directories and converts file paths into
// fully-qualified class names, sorted for determinism. A missing directory
// contributes nothing.
func (w *Workspace) classDirNames(dirs ...string) ([]string, error) {
	var names []string
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, classSuffix) {
				return nil
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			names = append(names, pathToClass(rel))
			return nil
		})
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to walk class directory"), "dir", dir)
		}
	}
	sort.Strings(names)
	return names, nil
}

// addArchiveClasses lists the .class entries of one component archive.
func addArchiveClasses(known domain.ClassSet, component string) error {
	r, err := zip.OpenReader(component)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open classpath component"), "component", component)
	}
	defer r.Close() //nolint:errcheck // Best effort close in defer

	for _, f := range r.File {
		if strings.HasSuffix(f.Name, classSuffix) {
			known.Add(domain.NewClassName(pathToClass(f.Name)))
		}
	}
	return nil
}

// pathToClass converts "com/example/Foo.class" to "com.example.Foo".
func pathToClass(p string) string {
	p = strings.TrimSuffix(p, classSuffix)
	p = strings.ReplaceAll(p, "\\", "/")
	return strings.ReplaceAll(p, "/", ".")
}

// isTestClass applies the conventional surefire-style include patterns to a
// fully-qualified class name.
func isTestClass(name string) bool {
	simple := name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		simple = name[i+1:]
	}
	// Inner classes are never selected directly.
	if strings.ContainsRune(simple, '$') {
		return false
	}
	return strings.HasPrefix(simple, "Test") ||
		strings.HasSuffix(simple, "Test") ||
		strings.HasSuffix(simple, "Tests") ||
		strings.HasSuffix(simple, "TestCase")
}
