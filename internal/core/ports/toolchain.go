package ports

import "go.trai.ch/launchpad/internal/core/domain"

// ToolchainResolver discovers the compiler used by the direct strategy.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ToolchainResolver interface {
	// Resolve returns the explicit toolchain unchanged when it is non-empty.
	// Otherwise it probes the platform candidates on the search path and fails
	// with domain.ErrToolchainNotFound when none resolves.
	Resolve(explicit string) (domain.ToolchainChoice, error)
}
