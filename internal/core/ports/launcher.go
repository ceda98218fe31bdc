package ports

import (
	"context"

	"go.trai.ch/launchpad/internal/core/domain"
)

// ProcessLauncher runs the application with inherited stdio.
//
//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type ProcessLauncher interface {
	Launch(ctx context.Context, path string, args []string) (domain.LaunchResult, error)
}
