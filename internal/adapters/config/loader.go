// Package config provides the configuration loader for sift.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working
// directory when none is specified.
const DefaultFilename = "sift.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory. A missing
// file is not an error; it yields the defaults.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	return Load(filepath.Join(cwd, name))
}

// Load reads a configuration file from the given path and returns a
// validated domain.Config.
func Load(path string) (*domain.Config, error) {
	var file siftFile
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by user
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
		}
		// Defaults only.
	} else if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	file.applyDefaults()

	format, err := domain.ParseFormat(file.Format)
	if err != nil {
		return nil, err
	}

	return &domain.Config{
		ArtifactsDir:   file.ArtifactsDir,
		CacheDir:       file.CacheDir,
		Format:         format,
		PrintGraph:     *file.PrintGraph,
		GraphFile:      file.GraphFile,
		ReportsDir:     file.ReportsDir,
		ClassesDir:     file.ClassesDir,
		TestClassesDir: file.TestClassesDir,
		Classpath:      file.Classpath,
		Extractor:      file.Extractor,
		FilterLib:      file.FilterLib,
		Parallelism:    file.Parallelism,
	}, nil
}
