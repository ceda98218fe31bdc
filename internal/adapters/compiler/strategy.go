// Package compiler implements the direct build strategy: one compiler
// invocation over a fixed list of sources, without incremental builds.
package compiler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/launchpad/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildStrategy = (*Strategy)(nil)

// Strategy compiles the project's sources with a single command.
type Strategy struct {
	resolver ports.ToolchainResolver
	runner   ports.CommandRunner
	logger   ports.Logger
	project  *domain.Project
	goos     string
}

// New creates a direct compile Strategy for project.
func New(
	resolver ports.ToolchainResolver,
	runner ports.CommandRunner,
	logger ports.Logger,
	project *domain.Project,
) *Strategy {
	return &Strategy{
		resolver: resolver,
		runner:   runner,
		logger:   logger,
		project:  project,
		goos:     runtime.GOOS,
	}
}

// WithPlatform returns a copy of the strategy that names the artifact for goos.
func (s *Strategy) WithPlatform(goos string) *Strategy {
	c := *s
	c.goos = goos
	return &c
}

// Build recompiles everything into req.OutputDirectory and returns the artifact path.
func (s *Strategy) Build(ctx context.Context, req domain.BuildRequest) (string, error) {
	tc, err := s.resolver.Resolve(req.ExplicitToolchain)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(req.OutputDirectory, domain.DirPerm); err != nil {
		return "", zerr.With(
			zerr.With(zerr.Wrap(domain.ErrOutputDirCreateFailed, "cannot prepare build directory"), "path", req.OutputDirectory),
			"reason", err.Error(),
		)
	}

	artifact := filepath.Join(req.OutputDirectory, s.project.ExecutableName(s.goos))
	inv := ArgsFor(tc, artifact, s.project.SourceDir, s.project.SourcePaths())

	s.logger.Info("Using compiler: " + tc.ExecutablePath)
	s.logger.Info("Building into: " + req.OutputDirectory)

	code, err := s.runner.Run(ctx, domain.Command{
		Name:        inv.Argv[0],
		Args:        inv.Argv[1:],
		Dir:         inv.Dir,
		Interactive: req.Interactive,
	})
	if err != nil {
		return "", err
	}
	if code != 0 {
		msg := fmt.Sprintf("Compilation failed with exit code %d. Check the compiler output above for details.", code)
		return "", zerr.With(zerr.Wrap(domain.ErrCompileFailed, msg), "exit_code", code)
	}

	if _, err := os.Stat(artifact); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrArtifactMissing, "compiler reported success"), "path", artifact)
	}

	return artifact, nil
}
