package domain

import "go.trai.ch/zerr"

var (
	// ErrArtifactsDir is returned when the artifacts directory cannot be
	// created or accessed. This is fatal for the whole selection cycle.
	ErrArtifactsDir = zerr.New("cannot create artifacts directory")

	// ErrExtractionFailed is returned when the external edge extractor fails
	// outright. Without fresh edges no graph can be built, so this aborts
	// the cycle.
	ErrExtractionFailed = zerr.New("dependency edge extraction failed")

	// ErrUnknownFormat is returned when a dependency format string is neither
	// CLZ nor ZLC.
	ErrUnknownFormat = zerr.New("unknown dependency format")

	// ErrMalformedEdge is returned when an extractor output line cannot be
	// parsed into a dependency edge.
	ErrMalformedEdge = zerr.New("malformed dependency edge")

	// ErrNoClassesToAnalyze is returned when the workspace yields no classes,
	// which usually means the project has not been compiled yet.
	ErrNoClassesToAnalyze = zerr.New("no classes to analyze")
)
