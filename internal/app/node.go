package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/launchpad/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/launchpad/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/launchpad/internal/adapters/locator"   //nolint:depguard // Wired in app layer
	"go.trai.ch/launchpad/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/launchpad/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/launchpad/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/launchpad/internal/core/ports"
	"go.trai.ch/launchpad/internal/engine/planner"
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
			planner.NodeID,
			locator.NodeID,
			shell.LauncherNodeID,
			telemetry.NodeID,
			fs.DigesterNodeID,
			logger.NodeID,
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
	project, err := graft.Dep[*domain.Project](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	loc, err := graft.Dep[ports.ExecutableLocator](ctx)
	if err != nil {
		return nil, err
	}

	launcher, err := graft.Dep[ports.ProcessLauncher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	digester, err := graft.Dep[ports.Digester](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(project, builder, loc, launcher, tracer, digester, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: application, Logger: log, Tracer: tracer}, nil
}
