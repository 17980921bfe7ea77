package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/sift/internal/adapters/config"
	"go.trai.ch/sift/internal/core/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "sift.yaml"))
	require.NoError(t, err)

	require.Equal(t, domain.FormatZLC, cfg.Format)
	require.Equal(t, ".sift", cfg.ArtifactsDir)
	require.Equal(t, "jdeps-cache", cfg.CacheDir)
	require.True(t, cfg.PrintGraph)
	require.Equal(t, "graph", cfg.GraphFile)
	require.Equal(t, filepath.Join("target", "surefire-reports"), cfg.ReportsDir)
	require.Equal(t, filepath.Join("target", "classes"), cfg.ClassesDir)
	require.Equal(t, filepath.Join("target", "test-classes"), cfg.TestClassesDir)
	require.Equal(t, []string{"jdeps", "-verbose:class"}, cfg.Extractor)
	require.False(t, cfg.FilterLib)
	require.Zero(t, cfg.Parallelism)
}

func TestLoad_FullFile(t *testing.T) {
	dir := t.TempDir()
	content := `version: "1"
format: clz
artifactsDir: .selection
cacheDir: /var/cache/sift
printGraph: false
graphFile: deps.txt
reportsDir: build/reports
classesDir: build/classes
testClassesDir: build/test-classes
classpath:
  - build/classes
  - lib/guava.jar
extractor: ["jdeps", "-verbose:class", "-R"]
filterLib: true
parallelism: 4
`
	path := filepath.Join(dir, "sift.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, domain.FormatCLZ, cfg.Format)
	require.Equal(t, ".selection", cfg.ArtifactsDir)
	require.Equal(t, "/var/cache/sift", cfg.CacheDir)
	require.False(t, cfg.PrintGraph)
	require.Equal(t, "deps.txt", cfg.GraphFile)
	require.Equal(t, "build/reports", cfg.ReportsDir)
	require.Equal(t, []string{"build/classes", "lib/guava.jar"}, cfg.Classpath)
	require.Equal(t, []string{"jdeps", "-verbose:class", "-R"}, cfg.Extractor)
	require.True(t, cfg.FilterLib)
	require.Equal(t, 4, cfg.Parallelism)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sift.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [unclosed"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sift.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0o600))

	_, err := config.Load(path)
	require.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestFileConfigLoader_Load(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sift.yaml"), []byte("format: CLZ\n"), 0o600))

	loader := &config.FileConfigLoader{}
	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	require.Equal(t, domain.FormatCLZ, cfg.Format)
}

func TestFileConfigLoader_Load_CustomFilename(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("format: CLZ\n"), 0o600))

	loader := &config.FileConfigLoader{Filename: "other.yaml"}
	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	require.Equal(t, domain.FormatCLZ, cfg.Format)
}
