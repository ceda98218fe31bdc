package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/launchpad/internal/adapters/cmake"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/launchpad/internal/adapters/compiler" //nolint:depguard // Wired in engine wiring
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{compiler.NodeID, cmake.NodeID},
		Run: func(ctx context.Context) (*Planner, error) {
			direct, err := graft.Dep[*compiler.Strategy](ctx)
			if err != nil {
				return nil, err
			}
			delegated, err := graft.Dep[*cmake.Strategy](ctx)
			if err != nil {
				return nil, err
			}
			return New(direct, delegated), nil
		},
	})
}
