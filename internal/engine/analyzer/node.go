package analyzer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/adapters/jdeps"
	"go.trai.ch/sift/internal/adapters/logger"
	"go.trai.ch/sift/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			jdeps.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			extractor, err := graft.Dep[ports.EdgeExtractor](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(extractor, log), nil
		},
	})
}
