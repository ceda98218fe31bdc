package toolchain_test

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/launchpad/internal/adapters/toolchain"
	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/zerr"
)

// pathWith returns a LookPathFunc that only resolves the given names and
// records every probe.
func pathWith(probed *[]string, available ...string) toolchain.LookPathFunc {
	set := make(map[string]bool, len(available))
	for _, a := range available {
		set[a] = true
	}
	return func(file string) (string, error) {
		*probed = append(*probed, file)
		if set[file] {
			return "/usr/bin/" + file, nil
		}
		return "", exec.ErrNotFound
	}
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		goos       string
		available  []string
		explicit   string
		want       domain.ToolchainChoice
		wantProbed []string
	}{
		{
			name:       "linux prefers g++",
			goos:       "linux",
			available:  []string{"g++", "clang++"},
			want:       domain.ToolchainChoice{ExecutablePath: "g++", Kind: domain.KindUnixStyle},
			wantProbed: []string{"g++"},
		},
		{
			name:       "linux falls back to clang++",
			goos:       "linux",
			available:  []string{"clang++"},
			want:       domain.ToolchainChoice{ExecutablePath: "clang++", Kind: domain.KindUnixStyle},
			wantProbed: []string{"g++", "clang++"},
		},
		{
			name:       "linux never selects msvc even when cl is present",
			goos:       "linux",
			available:  []string{"cl", "clang++"},
			want:       domain.ToolchainChoice{ExecutablePath: "clang++", Kind: domain.KindUnixStyle},
			wantProbed: []string{"g++", "clang++"},
		},
		{
			name:       "windows prefers cl",
			goos:       "windows",
			available:  []string{"cl", "g++"},
			want:       domain.ToolchainChoice{ExecutablePath: "cl", Kind: domain.KindMSVCStyle},
			wantProbed: []string{"cl"},
		},
		{
			name:       "windows with only unix drivers",
			goos:       "windows",
			available:  []string{"g++"},
			want:       domain.ToolchainChoice{ExecutablePath: "g++", Kind: domain.KindUnixStyle},
			wantProbed: []string{"cl", "clang++", "g++"},
		},
		{
			name:       "explicit is trusted without probing",
			goos:       "linux",
			explicit:   "/opt/llvm/bin/clang++",
			want:       domain.ToolchainChoice{ExecutablePath: "/opt/llvm/bin/clang++", Kind: domain.KindUnixStyle},
			wantProbed: nil,
		},
		{
			name:       "explicit cl selects msvc dialect",
			goos:       "linux",
			explicit:   "cl",
			want:       domain.ToolchainChoice{ExecutablePath: "cl", Kind: domain.KindMSVCStyle},
			wantProbed: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var probed []string
			r := toolchain.NewResolver(
				toolchain.WithLookPath(pathWith(&probed, tt.available...)),
				toolchain.WithPlatform(tt.goos, toolchain.DefaultCandidates()),
			)

			got, err := r.Resolve(tt.explicit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantProbed, probed)
		})
	}
}

func TestResolver_NotFound(t *testing.T) {
	var probed []string
	r := toolchain.NewResolver(
		toolchain.WithLookPath(pathWith(&probed)),
		toolchain.WithPlatform("darwin", toolchain.DefaultCandidates()),
	)

	_, err := r.Resolve("")
	require.ErrorIs(t, err, domain.ErrToolchainNotFound)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, []string{"g++", "clang++"}, zErr.Metadata()["candidates"])
	assert.Equal(t, []string{"g++", "clang++"}, probed)
}

func TestCandidates_For(t *testing.T) {
	c := toolchain.DefaultCandidates()
	assert.Equal(t, []string{"cl", "clang++", "g++"}, c.For("windows"))
	assert.Equal(t, []string{"g++", "clang++"}, c.For("freebsd"))
}
