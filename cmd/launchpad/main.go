// Package main is the entry point for the launchpad game launcher.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/launchpad/cmd/launchpad/commands"
	"go.trai.ch/launchpad/internal/adapters/logger"
	"go.trai.ch/launchpad/internal/app"
	"go.trai.ch/launchpad/internal/core/domain"
	_ "go.trai.ch/launchpad/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	// Children receive the same signals; waiting stops and they finish on their own.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// The configured logger is not available yet.
		lg := logger.New()
		lg.SetOutput(stderr)
		lg.Error(err)
		return domain.ExitFailure
	}
	defer func() {
		_ = components.Shutdown(context.WithoutCancel(ctx))
	}()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrAborted) || errors.Is(err, context.Canceled) {
			components.Logger.Info("Launch aborted by user.")
			return domain.ExitAborted
		}
		components.Logger.Error(err)
		return domain.ExitFailure
	}
	return cli.ExitCode()
}
