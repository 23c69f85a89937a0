package codec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/steady/internal/core/ports"
)

// NodeID is the unique identifier for the codec Graft node.
const NodeID graft.ID = "adapter.codec"

func init() {
	graft.Register(graft.Node[ports.InstanceCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstanceCodec, error) {
			return New()
		},
	})
}
