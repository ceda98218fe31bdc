// Package toolchain resolves the C++ compiler used by the direct build strategy.
package toolchain

import (
	"os/exec"
	"runtime"

	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/launchpad/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolchainResolver = (*Resolver)(nil)

// LookPathFunc reports where an executable resolves on the search path.
type LookPathFunc func(file string) (string, error)

// Candidates lists compiler drivers in probe order per GOOS.
// Platforms without an entry use the "default" list.
type Candidates map[string][]string

// DefaultCandidates prefers MSVC on Windows and g++-compatible drivers elsewhere.
func DefaultCandidates() Candidates {
	return Candidates{
		"windows": {"cl", "clang++", "g++"},
		"default": {"g++", "clang++"},
	}
}

// For returns the probe order for goos.
func (c Candidates) For(goos string) []string {
	if list, ok := c[goos]; ok {
		return list
	}
	return c["default"]
}

// Resolver implements ports.ToolchainResolver by probing the search path.
type Resolver struct {
	lookPath   LookPathFunc
	candidates []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookPath replaces exec.LookPath.
func WithLookPath(fn LookPathFunc) Option {
	return func(r *Resolver) {
		r.lookPath = fn
	}
}

// WithPlatform selects the candidate list of goos instead of the running platform.
func WithPlatform(goos string, candidates Candidates) Option {
	return func(r *Resolver) {
		r.candidates = candidates.For(goos)
	}
}

// NewResolver creates a Resolver for the running platform.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		lookPath:   exec.LookPath,
		candidates: DefaultCandidates().For(runtime.GOOS),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns explicit unchecked when set; otherwise the first candidate found on PATH.
func (r *Resolver) Resolve(explicit string) (domain.ToolchainChoice, error) {
	if explicit != "" {
		return domain.NewToolchainChoice(explicit), nil
	}

	for _, candidate := range r.candidates {
		if _, err := r.lookPath(candidate); err == nil {
			// Keep the bare name so the invocation goes through the same search path.
			return domain.NewToolchainChoice(candidate), nil
		}
	}

	return domain.ToolchainChoice{}, zerr.With(
		zerr.Wrap(domain.ErrToolchainNotFound, "toolchain resolution failed"),
		"candidates", r.candidates,
	)
}
