package edgecache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/adapters/logger"
	"go.trai.ch/sift/internal/core/ports"
)

// NodeID is the unique identifier for the edge cache Graft node.
const NodeID graft.ID = "adapter.edge_cache"

func init() {
	graft.Register(graft.Node[ports.EdgeCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EdgeCache, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCache(log), nil
		},
	})
}
