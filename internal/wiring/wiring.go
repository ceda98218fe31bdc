// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/launchpad/internal/adapters/cmake"
	_ "go.trai.ch/launchpad/internal/adapters/compiler"
	_ "go.trai.ch/launchpad/internal/adapters/config"
	_ "go.trai.ch/launchpad/internal/adapters/fs"
	_ "go.trai.ch/launchpad/internal/adapters/locator"
	_ "go.trai.ch/launchpad/internal/adapters/logger"
	_ "go.trai.ch/launchpad/internal/adapters/shell"
	_ "go.trai.ch/launchpad/internal/adapters/telemetry"
	_ "go.trai.ch/launchpad/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "go.trai.ch/launchpad/internal/app"
	_ "go.trai.ch/launchpad/internal/engine/planner"
)
