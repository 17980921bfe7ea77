package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sift/internal/adapters/config"
	"go.trai.ch/sift/internal/adapters/edgecache"
	"go.trai.ch/sift/internal/adapters/jdeps"
	"go.trai.ch/sift/internal/adapters/logger"
	"go.trai.ch/sift/internal/adapters/reports"
	"go.trai.ch/sift/internal/adapters/state"
	"go.trai.ch/sift/internal/adapters/telemetry"
	"go.trai.ch/sift/internal/adapters/workspace"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/sift/internal/engine/analyzer"
	"go.trai.ch/sift/internal/engine/estimator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			workspace.NodeID,
			edgecache.NodeID,
			jdeps.NodeID,
			analyzer.NodeID,
			estimator.NodeID,
			reports.NodeID,
			state.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	ws, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.EdgeCache](ctx)
	if err != nil {
		return nil, err
	}

	extractor, err := graft.Dep[ports.EdgeExtractor](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*analyzer.Builder](ctx)
	if err != nil {
		return nil, err
	}

	est, err := graft.Dep[*estimator.Estimator](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.ReportReader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.StateStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tele, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, ws, cache, extractor, builder, est, reader, store, log, tele), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tele, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: tele,
	}, nil
}
