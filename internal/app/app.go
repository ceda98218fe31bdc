// Package app implements the launcher's orchestration: clean, build, locate
// and launch, in that order and exactly once each.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/launchpad/internal/adapters/detector" //nolint:depguard // Environment detection is an app concern
	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/launchpad/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	project  *domain.Project
	builder  ports.BuildStrategy
	locator  ports.ExecutableLocator
	launcher ports.ProcessLauncher
	tracer   ports.Tracer
	digester ports.Digester
	logger   ports.Logger
	detect   func() detector.OutputMode
}

// New creates a new App instance.
func New(
	project *domain.Project,
	builder ports.BuildStrategy,
	locator ports.ExecutableLocator,
	launcher ports.ProcessLauncher,
	tracer ports.Tracer,
	digester ports.Digester,
	log ports.Logger,
) *App {
	return &App{
		project:  project,
		builder:  builder,
		locator:  locator,
		launcher: launcher,
		tracer:   tracer,
		digester: digester,
		logger:   log,
		detect:   detector.DetectEnvironment,
	}
}

// WithDetector replaces terminal detection. Used by tests.
func (a *App) WithDetector(detect func() detector.OutputMode) *App {
	a.detect = detect
	return a
}

// RunOptions holds the command-line inputs of a launch.
// Empty strings defer to the environment, the project file and the defaults.
type RunOptions struct {
	BuildDir   string
	Compiler   string
	Generator  string
	Config     string
	Strategy   string
	OutputMode string
	SkipBuild  bool
	BuildOnly  bool
	Clean      bool
	AppArgs    []string
}

// ConfigureLogging applies the --verbose and --log-format flags.
func (a *App) ConfigureLogging(verbose, jsonFormat bool) {
	a.logger.SetVerbose(verbose)
	a.logger.SetJSON(jsonFormat)
}

// Request turns options and the loaded project into a BuildRequest.
// Flags take precedence over the project, which already carries the
// environment and project file layers.
func (a *App) Request(opts RunOptions) (domain.BuildRequest, error) {
	strategy := a.project.Strategy
	if opts.Strategy != "" {
		parsed, err := domain.ParseStrategy(opts.Strategy)
		if err != nil {
			return domain.BuildRequest{}, err
		}
		strategy = parsed
	}

	buildDir := a.project.BuildDir
	if opts.BuildDir != "" {
		buildDir = a.project.ResolvePath(opts.BuildDir)
	}

	mode := detector.ResolveMode(a.detect(), opts.OutputMode)

	return domain.BuildRequest{
		SourceRoot:        a.project.Root,
		OutputDirectory:   filepath.Clean(buildDir),
		Strategy:          strategy,
		ExplicitToolchain: firstNonEmpty(opts.Compiler, a.project.Compiler),
		Generator:         firstNonEmpty(opts.Generator, a.project.Generator),
		Config:            firstNonEmpty(opts.Config, a.project.Config),
		Clean:             opts.Clean,
		Interactive:       mode.Interactive(),
	}, nil
}

// Run cleans, builds, locates and launches according to opts.
// The returned result carries the child's exit code when it ran.
func (a *App) Run(ctx context.Context, opts RunOptions) (domain.LaunchResult, error) {
	req, err := a.Request(opts)
	if err != nil {
		return domain.LaunchResult{ExitCode: domain.ExitFailure}, err
	}

	ctx, span := a.tracer.Start(ctx, "run")
	defer span.End()
	span.SetAttribute("strategy", req.Strategy.String())
	span.SetAttribute("build_dir", req.OutputDirectory)

	result, err := a.run(ctx, req, opts)
	if err != nil {
		span.RecordError(err)
	}
	span.SetAttribute("exit_code", result.ExitCode)
	return result, err
}

func (a *App) run(ctx context.Context, req domain.BuildRequest, opts RunOptions) (domain.LaunchResult, error) {

	if req.Clean {
		if err := a.phase(ctx, "clean", func(context.Context) error {
			return a.removeBuildDir(req.OutputDirectory)
		}); err != nil {
			return failedResult(err), err
		}
	}

	if !opts.SkipBuild {
		if err := a.phase(ctx, "build", func(ctx context.Context) error {
			_, err := a.builder.Build(ctx, req)
			return err
		}); err != nil {
			return failedResult(err), err
		}
	}

	var executable string
	if err := a.phase(ctx, "locate", func(context.Context) error {
		path, err := a.locate(req)
		if err != nil && opts.SkipBuild && errors.Is(err, domain.ErrExecutableNotFound) {
			return zerr.Wrap(err, "--skip-build was requested but no executable exists; run without --skip-build first")
		}
		executable = path
		return err
	}); err != nil {
		return failedResult(err), err
	}

	if opts.BuildOnly {
		a.logger.Info("Build completed. Skipping execution as requested.")
		return domain.LaunchResult{ExitCode: domain.ExitSuccess}, nil
	}

	a.logDigest(executable)
	a.logger.Info("Launching " + executable)

	var result domain.LaunchResult
	err := a.phase(ctx, "launch", func(ctx context.Context) error {
		var err error
		result, err = a.launcher.Launch(ctx, executable, opts.AppArgs)
		return err
	})
	if err != nil && errors.Is(err, domain.ErrAborted) {
		result.ExitCode = domain.ExitAborted
	}
	return result, err
}

func failedResult(err error) domain.LaunchResult {
	if errors.Is(err, domain.ErrAborted) {
		return domain.LaunchResult{ExitCode: domain.ExitAborted}
	}
	return domain.LaunchResult{ExitCode: domain.ExitFailure}
}

// CleanOptions holds the inputs of the clean command.
type CleanOptions struct {
	BuildDir string
}

// Clean removes the build directory. A missing directory is not an error.
func (a *App) Clean(ctx context.Context, opts CleanOptions) error {
	req, err := a.Request(RunOptions{BuildDir: opts.BuildDir})
	if err != nil {
		return err
	}
	return a.phase(ctx, "clean", func(context.Context) error {
		return a.removeBuildDir(req.OutputDirectory)
	})
}

// LocateOptions holds the inputs of the locate command.
type LocateOptions struct {
	BuildDir string
	Config   string
	Strategy string
}

// Locate returns the executable the next launch would run, without building.
// An explicit config restricts the search even for the direct strategy.
func (a *App) Locate(ctx context.Context, opts LocateOptions) (string, error) {
	req, err := a.Request(RunOptions{BuildDir: opts.BuildDir, Config: opts.Config, Strategy: opts.Strategy})
	if err != nil {
		return "", err
	}

	var path string
	err = a.phase(ctx, "locate", func(context.Context) error {
		var err error
		if opts.Config != "" {
			path, err = a.locator.Locate(req.OutputDirectory, opts.Config)
			return err
		}
		path, err = a.locate(req)
		return err
	})
	return path, err
}

func (a *App) locate(req domain.BuildRequest) (string, error) {
	config := ""
	if req.Strategy == domain.StrategyDelegated {
		config = req.Config
	}
	return a.locator.Locate(req.OutputDirectory, config)
}

func (a *App) removeBuildDir(dir string) error {
	if dir == a.project.Root || dir == filepath.Dir(dir) {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrCleanFailed, "refusing to remove the project root"), "path", dir),
			"hint", "point --build-dir at a dedicated output directory")
	}

	if _, err := os.Lstat(dir); errors.Is(err, fs.ErrNotExist) {
		a.logger.Debug("nothing to clean at " + dir)
		return nil
	}

	a.logger.Info("Removing " + dir)
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrCleanFailed, "clean failed"), "path", dir), "reason", err.Error())
	}
	return nil
}

func (a *App) logDigest(path string) {
	digest, err := a.digester.DigestFile(path)
	if err != nil {
		a.logger.Debug(fmt.Sprintf("could not fingerprint %s: %v", path, err))
		return
	}
	a.logger.Debug(fmt.Sprintf("artifact %s xxh64:%s", path, digest))
}

// phase runs fn inside a span named after the orchestration step.
func (a *App) phase(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()

	if ctx.Err() != nil {
		err := zerr.With(zerr.Wrap(domain.ErrAborted, "phase not started"), "phase", name)
		span.RecordError(err)
		return err
	}

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
