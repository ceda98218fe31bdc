// Package cmake implements the delegated build strategy on top of CMake.
package cmake

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/launchpad/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildStrategy = (*Strategy)(nil)

// DefaultBinary is the cmake executable used when LAUNCHPAD_CMAKE is unset.
const DefaultBinary = "cmake"

// Strategy runs the configure and build phases of CMake.
// Where the executable ends up depends on the generator, so Build does not report it.
type Strategy struct {
	binary string
	runner ports.CommandRunner
	logger ports.Logger
}

// New creates a Strategy invoking binary; an empty binary selects DefaultBinary.
func New(binary string, runner ports.CommandRunner, logger ports.Logger) *Strategy {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Strategy{binary: binary, runner: runner, logger: logger}
}

// ConfigureArgs returns the arguments of the configure phase.
// Without a generator CMake picks its own default.
func ConfigureArgs(sourceRoot, buildDir, generator string) []string {
	args := []string{"-S", sourceRoot, "-B", buildDir}
	if generator != "" {
		args = append(args, "-G", generator)
	}
	return args
}

// BuildArgs returns the arguments of the build phase.
// The config only matters to multi-config generators.
func BuildArgs(buildDir, config string) []string {
	args := []string{"--build", buildDir}
	if config != "" {
		args = append(args, "--config", config)
	}
	return args
}

// Build configures when needed, then builds.
func (s *Strategy) Build(ctx context.Context, req domain.BuildRequest) (string, error) {
	if s.needsConfigure(req) {
		s.logger.Info("Configuring " + req.SourceRoot + " into " + req.OutputDirectory)
		if err := s.phase(ctx, req, ConfigureArgs(req.SourceRoot, req.OutputDirectory, req.Generator), domain.ErrConfigureFailed); err != nil {
			return "", err
		}
	} else {
		s.logger.Debug("reusing existing " + domain.CMakeCacheFile)
	}

	s.logger.Info("Building into: " + req.OutputDirectory)
	if err := s.phase(ctx, req, BuildArgs(req.OutputDirectory, req.Config), domain.ErrBuildFailed); err != nil {
		return "", err
	}

	return "", nil
}

// needsConfigure is false only when a cache exists and no generator was asked for;
// an explicit generator always reconfigures.
func (s *Strategy) needsConfigure(req domain.BuildRequest) bool {
	if req.Generator != "" {
		return true
	}
	_, err := os.Stat(filepath.Join(req.OutputDirectory, domain.CMakeCacheFile))
	return err != nil
}

func (s *Strategy) phase(ctx context.Context, req domain.BuildRequest, args []string, sentinel error) error {
	code, err := s.runner.Run(ctx, domain.Command{
		Name:        s.binary,
		Args:        args,
		Interactive: req.Interactive,
	})
	if err != nil {
		return err
	}
	if code != 0 {
		msg := fmt.Sprintf("%s exited with code %d", s.binary, code)
		return zerr.With(zerr.Wrap(sentinel, msg), "exit_code", code)
	}
	return nil
}
