// Package shell runs build tools and the launched application as child processes.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/zerr"
)

// Process represents a started child.
type Process interface {
	Wait() error
}

type plainProcess struct {
	cmd *exec.Cmd
}

func (p *plainProcess) Wait() error {
	return p.cmd.Wait()
}

type ptyProcess struct {
	cmd    *exec.Cmd
	ioDone <-chan struct{}
}

func (p *ptyProcess) Wait() error {
	err := p.cmd.Wait()

	// The copy loop ends once the slave side is closed by the exiting child.
	<-p.ioDone

	return err
}

// Stdio is the set of streams inherited by children.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// OSStdio returns the streams of the current process.
func OSStdio() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// checkNotCanceled refuses to start a child once the run was interrupted.
func checkNotCanceled(ctx context.Context, name string) error {
	if ctx.Err() == nil {
		return nil
	}
	return zerr.With(
		zerr.With(zerr.Wrap(domain.ErrAborted, "not started"), "command", name),
		"reason", context.Cause(ctx).Error(),
	)
}

// waitOrAbort blocks until proc exits or ctx is canceled.
// A canceled wait returns domain.ErrAborted and leaves the child to the OS;
// the interrupt already reached it through the process group.
func waitOrAbort(ctx context.Context, proc Process) error {
	done := make(chan error, 1)
	go func() {
		done <- proc.Wait()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return zerr.With(zerr.Wrap(domain.ErrAborted, "wait interrupted"), "reason", context.Cause(ctx).Error())
	}
}

// exitStatus extracts the exit code from a Wait error.
// Children killed by a signal report 128+signo, matching shell conventions.
func exitStatus(err error) (code int, signal string, ok bool) {
	if err == nil {
		return domain.ExitSuccess, "", true
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return -1, "", false
	}

	if ws, isWait := exitErr.Sys().(syscall.WaitStatus); isWait && ws.Signaled() {
		sig := ws.Signal()
		return 128 + int(sig), sig.String(), true
	}

	return exitErr.ExitCode(), "", true
}
