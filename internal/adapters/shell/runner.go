package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/launchpad/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// PTYStarter starts cmd attached to a new pseudo-terminal and returns its master side.
type PTYStarter func(cmd *exec.Cmd) (*os.File, error)

// Runner implements ports.CommandRunner for compiler and build-system invocations.
type Runner struct {
	logger   ports.Logger
	stdio    Stdio
	startPTY PTYStarter
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunnerStdio replaces the inherited streams.
func WithRunnerStdio(stdio Stdio) RunnerOption {
	return func(r *Runner) {
		r.stdio = stdio
	}
}

// WithPTYStarter replaces pty.Start.
func WithPTYStarter(fn PTYStarter) RunnerOption {
	return func(r *Runner) {
		r.startPTY = fn
	}
}

// NewRunner creates a Runner writing to the process streams.
func NewRunner(logger ports.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		logger:   logger,
		stdio:    OSStdio(),
		startPTY: startPTY,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the command, waits for it and returns its exit code.
func (r *Runner) Run(ctx context.Context, c domain.Command) (int, error) {
	r.logger.Debug("exec: " + strings.Join(c.Argv(), " "))

	if err := checkNotCanceled(ctx, c.Name); err != nil {
		return -1, err
	}

	proc, err := r.start(c)
	if err != nil {
		return -1, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrCommandStartFailed, "could not start "+c.Name), "command", c.Name),
			"reason", err.Error(),
		)
	}

	waitErr := waitOrAbort(ctx, proc)
	code, signal, ok := exitStatus(waitErr)
	if !ok {
		return -1, waitErr
	}
	if signal != "" {
		r.logger.Warn(fmt.Sprintf("%s terminated by signal %s", c.Name, signal))
	}
	return code, nil
}

func (r *Runner) start(c domain.Command) (Process, error) {
	if c.Interactive && r.startPTY != nil {
		proc, err := r.startWithPTY(c)
		if err == nil {
			return proc, nil
		}
		r.logger.Debug("pty unavailable, using inherited stdio: " + err.Error())
	}

	cmd := r.command(c)
	cmd.Stdin = r.stdio.In
	cmd.Stdout = r.stdio.Out
	cmd.Stderr = r.stdio.Err
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &plainProcess{cmd: cmd}, nil
}

func (r *Runner) startWithPTY(c domain.Command) (Process, error) {
	cmd := r.command(c)
	ptmx, err := r.startPTY(cmd)
	if err != nil {
		return nil, err
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// PTYs merge stdout and stderr.
		_, _ = io.Copy(r.stdio.Out, ptmx)
	}()

	return &ptyProcess{cmd: cmd, ioDone: ioDone}, nil
}

func (r *Runner) command(c domain.Command) *exec.Cmd {
	cmd := exec.Command(c.Name, c.Args...) //nolint:gosec // build tool invocation assembled from config
	cmd.Dir = c.Dir
	return cmd
}

func startPTY(cmd *exec.Cmd) (*os.File, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, err
	}
	// Diagnostics wrap at the real terminal width.
	_ = pty.InheritSize(os.Stdin, ptmx)
	return ptmx, nil
}
