package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/launchpad/internal/adapters/config"
	"go.trai.ch/launchpad/internal/adapters/logger"
	"go.trai.ch/launchpad/internal/adapters/shell"
	"go.trai.ch/launchpad/internal/adapters/toolchain"
	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/launchpad/internal/core/ports"
)

// NodeID is the unique identifier for the direct compile strategy Graft node.
const NodeID graft.ID = "adapter.compiler"

func init() {
	graft.Register(graft.Node[*Strategy]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{toolchain.NodeID, shell.RunnerNodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Strategy, error) {
			resolver, err := graft.Dep[ports.ToolchainResolver](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			project, err := graft.Dep[*domain.Project](ctx)
			if err != nil {
				return nil, err
			}
			return New(resolver, runner, log, project), nil
		},
	})
}
