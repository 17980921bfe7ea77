package estimator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/adapters/logger"
	"go.trai.ch/sift/internal/adapters/state"
	"go.trai.ch/sift/internal/core/ports"
)

// NodeID is the unique identifier for the estimator Graft node.
const NodeID graft.ID = "engine.estimator"

func init() {
	graft.Register(graft.Node[*Estimator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			state.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Estimator, error) {
			store, err := graft.Dep[ports.StateStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewEstimator(store, log), nil
		},
	})
}
