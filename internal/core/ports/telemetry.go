package ports

import (
	"context"

	"go.trai.ch/sift/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of a selection cycle as vertices, one per
// phase.
type Telemetry interface {
	// Record starts recording a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Log records a message associated with this vertex.
	Log(level domain.LogLevel, msg string)

	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)

	// Cached marks the vertex as satisfied from cache.
	Cached()
}
