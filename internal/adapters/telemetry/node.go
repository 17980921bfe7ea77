package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/mattn/go-isatty"
	"go.trai.ch/sift/internal/adapters/telemetry/progrock"
	"go.trai.ch/sift/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			// Progress rendering only makes sense on an interactive
			// terminal; batch runs (CI) get the no-op recorder.
			if isatty.IsTerminal(os.Stderr.Fd()) {
				return progrock.New(), nil
			}
			return NewNoOp(), nil
		},
	})
}
