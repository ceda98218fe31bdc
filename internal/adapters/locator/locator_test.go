package locator_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/launchpad/internal/adapters/locator"
	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/zerr"
)

func touch(t *testing.T, path string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("bin"), mode))
}

func paths(cs []domain.Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Path())
	}
	return out
}

func TestLocator_Candidates(t *testing.T) {
	root := filepath.FromSlash("/out")

	t.Run("unix order without config", func(t *testing.T) {
		l := locator.New("app", locator.WithPlatform("linux"))
		assert.Equal(t, []string{
			filepath.Join(root, "app"),
			filepath.Join(root, "app.exe"),
			filepath.Join(root, "Debug", "app"),
			filepath.Join(root, "Debug", "app.exe"),
			filepath.Join(root, "Release", "app"),
			filepath.Join(root, "Release", "app.exe"),
			filepath.Join(root, "RelWithDebInfo", "app"),
			filepath.Join(root, "RelWithDebInfo", "app.exe"),
			filepath.Join(root, "MinSizeRel", "app"),
			filepath.Join(root, "MinSizeRel", "app.exe"),
		}, paths(l.Candidates(root, "")))
	})

	t.Run("windows prefers the exe name", func(t *testing.T) {
		l := locator.New("app", locator.WithPlatform("windows"))
		got := paths(l.Candidates(root, ""))
		assert.Equal(t, filepath.Join(root, "app.exe"), got[0])
		assert.Equal(t, filepath.Join(root, "app"), got[1])
	})

	t.Run("config restricts to its directory", func(t *testing.T) {
		for _, cfg := range []string{"Release", "Debug", "Custom"} {
			l := locator.New("app", locator.WithPlatform("linux"))
			for _, c := range l.Candidates(root, cfg) {
				assert.Equal(t, filepath.Join(root, cfg), c.Dir)
			}
			assert.Len(t, l.Candidates(root, cfg), 2)
		}
	})
}

func TestLocator_Locate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}

	tests := []struct {
		name    string
		files   map[string]os.FileMode
		config  string
		want    string
		wantErr bool
	}{
		{
			name:  "bare root wins",
			files: map[string]os.FileMode{"app": 0o755, "Debug/app": 0o755},
			want:  "app",
		},
		{
			name:  "first conventional config",
			files: map[string]os.FileMode{"Release/app": 0o755, "Debug/app": 0o755},
			want:  "Debug/app",
		},
		{
			name:  "platform suffixed variant",
			files: map[string]os.FileMode{"Release/app.exe": 0o755},
			want:  "Release/app.exe",
		},
		{
			name:  "non executable is skipped",
			files: map[string]os.FileMode{"app": 0o644, "MinSizeRel/app": 0o755},
			want:  "MinSizeRel/app",
		},
		{
			name:   "explicit config",
			files:  map[string]os.FileMode{"Release/app": 0o755},
			config: "Release",
			want:   "Release/app",
		},
		{
			name:    "explicit config never falls back",
			files:   map[string]os.FileMode{"app": 0o755, "Debug/app": 0o755},
			config:  "Release",
			wantErr: true,
		},
		{
			name:    "empty tree",
			files:   map[string]os.FileMode{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for rel, mode := range tt.files {
				touch(t, filepath.Join(root, filepath.FromSlash(rel)), mode)
			}

			got, err := locator.New("app").Locate(root, tt.config)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrExecutableNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(root, filepath.FromSlash(tt.want)), got)
		})
	}
}

func TestLocator_Locate_DirectoryIsNotAMatch(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "app"), 0o750))

	l := locator.New("app", locator.WithExecutableCheck(func(string) bool { return true }))
	_, err := l.Locate(root, "")
	require.ErrorIs(t, err, domain.ErrExecutableNotFound)
}

func TestLocator_Locate_ErrorMetadata(t *testing.T) {
	root := t.TempDir()
	l := locator.New("app", locator.WithPlatform("linux"))

	_, err := l.Locate(root, "Release")

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, root, meta["root"])
	assert.Equal(t, "Release", meta["config"])
	assert.Equal(t, []string{
		filepath.Join(root, "Release", "app"),
		filepath.Join(root, "Release", "app.exe"),
	}, meta["searched"])
	assert.Contains(t, meta["hint"], "--config")
}
