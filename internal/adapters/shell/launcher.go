package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/launchpad/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProcessLauncher = (*Launcher)(nil)

// Launcher implements ports.ProcessLauncher.
// The child runs in its own directory so it can load assets relative to itself.
type Launcher struct {
	logger ports.Logger
	stdio  Stdio
}

// NewLauncher creates a Launcher that inherits the process streams.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{logger: logger, stdio: OSStdio()}
}

// WithStdio returns a copy of the launcher using the given streams.
func (l *Launcher) WithStdio(stdio Stdio) *Launcher {
	return &Launcher{logger: l.logger, stdio: stdio}
}

// Launch runs path with args verbatim and waits without a timeout.
func (l *Launcher) Launch(ctx context.Context, path string, args []string) (domain.LaunchResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if err := checkNotCanceled(ctx, abs); err != nil {
		return domain.LaunchResult{ExitCode: domain.ExitAborted}, err
	}

	cmd := exec.Command(abs, args...) //nolint:gosec // launching the located application is the purpose
	cmd.Dir = filepath.Dir(abs)
	cmd.Stdin = l.stdio.In
	cmd.Stdout = l.stdio.Out
	cmd.Stderr = l.stdio.Err

	if err := cmd.Start(); err != nil {
		return domain.LaunchResult{ExitCode: domain.ExitFailure}, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrLaunchFailed, "could not start application"), "path", abs),
			"reason", err.Error(),
		)
	}

	waitErr := waitOrAbort(ctx, &plainProcess{cmd: cmd})
	code, signal, ok := exitStatus(waitErr)
	if !ok {
		if errors.Is(waitErr, domain.ErrAborted) {
			return domain.LaunchResult{ExitCode: domain.ExitAborted}, waitErr
		}
		return domain.LaunchResult{ExitCode: domain.ExitFailure}, zerr.With(
			zerr.Wrap(domain.ErrLaunchFailed, waitErr.Error()), "path", abs,
		)
	}

	if signal != "" {
		l.logger.Warn(fmt.Sprintf("Application terminated by signal %s", signal))
	}

	return domain.LaunchResult{ExitCode: code, Signal: signal}, nil
}
