package ports

import (
	"context"

	"go.trai.ch/launchpad/internal/core/domain"
)

// CommandRunner runs build tools synchronously.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run blocks until the command exits and returns its exit code.
	// A non-nil error means the command could not be run or was aborted;
	// a nonzero exit code alone is not an error.
	Run(ctx context.Context, cmd domain.Command) (int, error)
}
