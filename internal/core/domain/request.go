package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Strategy selects how the executable is produced.
type Strategy int

const (
	// StrategyDirect compiles the fixed source list with a single compiler invocation.
	StrategyDirect Strategy = iota
	// StrategyDelegated hands configure and build to CMake.
	StrategyDelegated
)

// String returns the canonical flag value of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyDelegated:
		return "delegated"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a flag or config value into a Strategy.
// The empty string selects StrategyDirect.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "direct":
		return StrategyDirect, nil
	case "delegated", "cmake":
		return StrategyDelegated, nil
	default:
		return StrategyDirect, zerr.With(zerr.Wrap(ErrInvalidStrategy, "unknown strategy"), "strategy", s)
	}
}

// BuildRequest describes one build. Strategies ignore the fields they do not use.
type BuildRequest struct {
	// SourceRoot is the project root handed to the delegated build system.
	SourceRoot string
	// OutputDirectory is where build output is written.
	OutputDirectory string
	Strategy        Strategy
	// ExplicitToolchain overrides compiler auto-detection (direct only).
	ExplicitToolchain string
	// Generator is forwarded to the configure phase (delegated only).
	Generator string
	// Config selects a configuration of a multi-config build tree (delegated only).
	Config string
	Clean  bool
	// Interactive attaches build tools to a pseudo-terminal.
	Interactive bool
}
