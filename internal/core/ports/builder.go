package ports

import (
	"context"

	"go.trai.ch/launchpad/internal/core/domain"
)

// BuildStrategy produces the application executable for a build request.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type BuildStrategy interface {
	// Build runs the strategy to completion. It returns the artifact path when
	// the strategy knows it, or an empty string when locating is left to the
	// ExecutableLocator.
	Build(ctx context.Context, req domain.BuildRequest) (string, error)
}
