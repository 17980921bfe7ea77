package app

import "go.trai.ch/sift/internal/core/ports"

// Components contains the initialized application components. It is the
// surface the CLI layer receives from the dependency graph; the
// telemetry handle is exposed so the process can flush it on exit.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
