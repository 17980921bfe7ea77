package config

import "path/filepath"

// siftFile represents the structure of the sift.yaml configuration file.
type siftFile struct {
	Version        string   `yaml:"version"`
	Format         string   `yaml:"format"`
	ArtifactsDir   string   `yaml:"artifactsDir"`
	CacheDir       string   `yaml:"cacheDir"`
	PrintGraph     *bool    `yaml:"printGraph"`
	GraphFile      string   `yaml:"graphFile"`
	ReportsDir     string   `yaml:"reportsDir"`
	ClassesDir     string   `yaml:"classesDir"`
	TestClassesDir string   `yaml:"testClassesDir"`
	Classpath      []string `yaml:"classpath"`
	Extractor      []string `yaml:"extractor"`
	FilterLib      bool     `yaml:"filterLib"`
	Parallelism    int      `yaml:"parallelism"`
}

// applyDefaults fills unset fields with the conventional layout of a Maven
// style project, matching the tool this engine sits behind.
func (f *siftFile) applyDefaults() {
	if f.Format == "" {
		f.Format = "ZLC"
	}
	if f.ArtifactsDir == "" {
		f.ArtifactsDir = ".sift"
	}
	if f.CacheDir == "" {
		f.CacheDir = "jdeps-cache"
	}
	if f.PrintGraph == nil {
		t := true
		f.PrintGraph = &t
	}
	if f.GraphFile == "" {
		f.GraphFile = "graph"
	}
	if f.ReportsDir == "" {
		f.ReportsDir = filepath.Join("target", "surefire-reports")
	}
	if f.ClassesDir == "" {
		f.ClassesDir = filepath.Join("target", "classes")
	}
	if f.TestClassesDir == "" {
		f.TestClassesDir = filepath.Join("target", "test-classes")
	}
	if len(f.Extractor) == 0 {
		f.Extractor = []string{"jdeps", "-verbose:class"}
	}
}
