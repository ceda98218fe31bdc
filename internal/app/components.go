package app

import (
	"context"

	"go.trai.ch/launchpad/internal/core/ports"
)

// Components contains the initialized application components handed to the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

// Shutdown releases resources held by the components.
func (c *Components) Shutdown(ctx context.Context) error {
	if c.Tracer == nil {
		return nil
	}
	return c.Tracer.Shutdown(ctx)
}
