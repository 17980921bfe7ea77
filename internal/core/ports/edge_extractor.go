package ports

import (
	"context"

	"go.trai.ch/sift/internal/core/domain"
)

// EdgeExtractor is the external static-analysis collaborator that produces
// raw dependency edges. The extractor itself is out of scope; only its output
// is consumed.
//
//go:generate go run go.uber.org/mock/mockgen -source=edge_extractor.go -destination=mocks/mock_edge_extractor.go -package=mocks
type EdgeExtractor interface {
	// Extract returns the dependency edges of the given classes.
	Extract(ctx context.Context, cfg *domain.Config, classes []domain.ClassName) ([]domain.Edge, error)

	// ExtractComponent returns the dependency edges of a third-party
	// component archive. Used to fill edge-cache misses.
	ExtractComponent(ctx context.Context, cfg *domain.Config, component string) ([]domain.Edge, error)
}
