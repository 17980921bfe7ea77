package ports

import (
	"context"

	"go.trai.ch/sift/internal/core/domain"
)

// EdgeCache persists extracted dependency edges for third-party components
// across cycles, keyed by component identity.
//
//go:generate go run go.uber.org/mock/mockgen -source=edge_cache.go -destination=mocks/mock_edge_cache.go -package=mocks
type EdgeCache interface {
	// Load returns the cached edges for every component with a usable entry
	// and the identities of the components that missed. A corrupt or stale
	// entry counts as a miss, never as an error; the caller is expected to
	// re-extract and Store.
	Load(ctx context.Context, cacheRoot string, components []string) (edges []domain.Edge, misses []string, err error)

	// Store persists the edges of one component for future cycles.
	Store(ctx context.Context, cacheRoot string, component string, edges []domain.Edge) error
}
