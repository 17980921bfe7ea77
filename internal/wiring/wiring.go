// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sift/internal/adapters/config"
	_ "go.trai.ch/sift/internal/adapters/edgecache"
	_ "go.trai.ch/sift/internal/adapters/jdeps"
	_ "go.trai.ch/sift/internal/adapters/logger"
	_ "go.trai.ch/sift/internal/adapters/reports"
	_ "go.trai.ch/sift/internal/adapters/state"
	_ "go.trai.ch/sift/internal/adapters/telemetry"
	_ "go.trai.ch/sift/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/sift/internal/app"
	_ "go.trai.ch/sift/internal/engine/analyzer"
	_ "go.trai.ch/sift/internal/engine/estimator"
)
