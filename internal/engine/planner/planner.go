// Package planner selects and runs the build strategy for a request.
package planner

import (
	"context"

	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/launchpad/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildStrategy = (*Planner)(nil)

// Planner dispatches a BuildRequest to the strategy registered for its kind.
type Planner struct {
	strategies map[domain.Strategy]ports.BuildStrategy
}

// New creates a Planner for the direct and delegated strategies.
func New(direct, delegated ports.BuildStrategy) *Planner {
	return &Planner{
		strategies: map[domain.Strategy]ports.BuildStrategy{
			domain.StrategyDirect:    direct,
			domain.StrategyDelegated: delegated,
		},
	}
}

// StrategyFor returns the strategy that builds requests of the given kind.
func (p *Planner) StrategyFor(kind domain.Strategy) (ports.BuildStrategy, error) {
	strategy, ok := p.strategies[kind]
	if !ok || strategy == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidStrategy, "no build strategy registered"), "strategy", kind.String())
	}
	return strategy, nil
}

// Build runs the strategy selected by req.Strategy exactly once.
func (p *Planner) Build(ctx context.Context, req domain.BuildRequest) (string, error) {
	strategy, err := p.StrategyFor(req.Strategy)
	if err != nil {
		return "", err
	}
	return strategy.Build(ctx, req)
}
