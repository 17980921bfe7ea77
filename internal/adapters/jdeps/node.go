package jdeps

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/adapters/logger"
	"go.trai.ch/sift/internal/core/ports"
)

// NodeID is the unique identifier for the edge extractor Graft node.
const NodeID graft.ID = "adapter.edge_extractor"

func init() {
	graft.Register(graft.Node[ports.EdgeExtractor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EdgeExtractor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExtractor(log), nil
		},
	})
}
