package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/launchpad/internal/adapters/shell"
	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/launchpad/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func newQuietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

func TestRunner_Run_ExitCodes(t *testing.T) {
	skipOnWindows(t)

	tests := []struct {
		name     string
		script   string
		wantCode int
		wantOut  string
	}{
		{name: "success", script: "echo compiled", wantCode: 0, wantOut: "compiled\n"},
		{name: "failure is not an error", script: "echo broken >&2; exit 3", wantCode: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			r := shell.NewRunner(newQuietLogger(t), shell.WithRunnerStdio(shell.Stdio{Out: &stdout, Err: &stderr}))

			code, err := r.Run(context.Background(), domain.Command{
				Name: "sh",
				Args: []string{"-c", tt.script},
				Dir:  t.TempDir(),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOut, stdout.String())
		})
	}
}

func TestRunner_Run_WorkingDirectory(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	var stdout bytes.Buffer
	r := shell.NewRunner(newQuietLogger(t), shell.WithRunnerStdio(shell.Stdio{Out: &stdout, Err: &stdout}))

	code, err := r.Run(context.Background(), domain.Command{Name: "sh", Args: []string{"-c", "touch marker"}, Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.FileExists(t, dir+"/marker")
}

func TestRunner_Run_StartFailure(t *testing.T) {
	r := shell.NewRunner(newQuietLogger(t), shell.WithRunnerStdio(shell.Stdio{}))

	code, err := r.Run(context.Background(), domain.Command{Name: "launchpad-no-such-compiler"})
	require.ErrorIs(t, err, domain.ErrCommandStartFailed)
	assert.Equal(t, -1, code)
}

func TestRunner_Run_Signaled(t *testing.T) {
	skipOnWindows(t)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).Times(1)

	r := shell.NewRunner(log, shell.WithRunnerStdio(shell.Stdio{}))
	code, err := r.Run(context.Background(), domain.Command{Name: "sh", Args: []string{"-c", "kill -9 $$"}})
	require.NoError(t, err)
	assert.Equal(t, 128+9, code)
}

func TestRunner_Run_Aborted(t *testing.T) {
	skipOnWindows(t)

	ctx, cancel := context.WithCancel(context.Background())
	r := shell.NewRunner(newQuietLogger(t), shell.WithRunnerStdio(shell.Stdio{}))

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := r.Run(ctx, domain.Command{Name: "sleep", Args: []string{"2"}})
	require.ErrorIs(t, err, domain.ErrAborted)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRunner_Run_CanceledStartsNothing(t *testing.T) {
	skipOnWindows(t)

	marker := filepath.Join(t.TempDir(), "ran")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := shell.NewRunner(newQuietLogger(t), shell.WithRunnerStdio(shell.Stdio{}))
	_, err := r.Run(ctx, domain.Command{Name: "touch", Args: []string{marker}})
	require.ErrorIs(t, err, domain.ErrAborted)

	time.Sleep(100 * time.Millisecond)
	assert.NoFileExists(t, marker)
}

func TestRunner_Run_PTYFallback(t *testing.T) {
	skipOnWindows(t)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).MinTimes(2)

	var stdout bytes.Buffer
	starterCalled := false
	r := shell.NewRunner(log,
		shell.WithRunnerStdio(shell.Stdio{Out: &stdout, Err: &stdout}),
		shell.WithPTYStarter(func(_ *exec.Cmd) (*os.File, error) {
			starterCalled = true
			return nil, errors.New("no pty")
		}),
	)

	code, err := r.Run(context.Background(), domain.Command{Name: "sh", Args: []string{"-c", "echo plain"}, Interactive: true})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.True(t, starterCalled)
	assert.Equal(t, "plain\n", stdout.String())
}

func TestRunner_Run_PTY(t *testing.T) {
	skipOnWindows(t)

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	_ = ptmx.Close()
	_ = tty.Close()

	var stdout bytes.Buffer
	r := shell.NewRunner(newQuietLogger(t), shell.WithRunnerStdio(shell.Stdio{Out: &stdout, Err: &stdout}))

	code, err := r.Run(context.Background(), domain.Command{
		Name:        "sh",
		Args:        []string{"-c", "test -t 1 && echo tty; exit 4"},
		Interactive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, code)
	assert.Contains(t, stdout.String(), "tty")
}
