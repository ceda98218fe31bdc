package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/launchpad/internal/core/domain"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Strategy
		wantErr bool
	}{
		{in: "", want: domain.StrategyDirect},
		{in: "direct", want: domain.StrategyDirect},
		{in: " Direct ", want: domain.StrategyDirect},
		{in: "delegated", want: domain.StrategyDelegated},
		{in: "cmake", want: domain.StrategyDelegated},
		{in: "ninja", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseStrategy(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidStrategy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "direct", domain.StrategyDirect.String())
	assert.Equal(t, "delegated", domain.StrategyDelegated.String())
	assert.Equal(t, "unknown", domain.Strategy(42).String())
}

func TestToolchainKindOf(t *testing.T) {
	tests := []struct {
		name string
		want domain.ToolchainKind
	}{
		{"g++", domain.KindUnixStyle},
		{"clang++", domain.KindUnixStyle},
		{"/usr/bin/g++-13", domain.KindUnixStyle},
		{"cl", domain.KindMSVCStyle},
		{"CL.EXE", domain.KindMSVCStyle},
		{`C:\VS\bin\cl.exe`, domain.KindMSVCStyle},
		{"clang-cl", domain.KindMSVCStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ToolchainKindOf(tt.name))
			assert.Equal(t, tt.want, domain.NewToolchainChoice(tt.name).Kind)
		})
	}
}

func TestDefaultProject(t *testing.T) {
	root := filepath.FromSlash("/work/game")
	p := domain.DefaultProject(root)

	assert.Equal(t, "hero_line_wars", p.Name)
	assert.Equal(t, filepath.Join(root, "src"), p.SourceDir)
	assert.Equal(t, filepath.Join(root, "build", "local"), p.BuildDir)
	assert.Equal(t, domain.StrategyDirect, p.Strategy)
	assert.Equal(t, "hero_line_wars.exe", p.ExecutableName("windows"))
	assert.Equal(t, "hero_line_wars", p.ExecutableName("linux"))

	paths := p.SourcePaths()
	require.Len(t, paths, len(domain.DefaultSources))
	assert.Equal(t, filepath.Join(root, "src", "main.cpp"), paths[0])

	// The built-in list must not be aliased.
	p.Sources[0] = "changed.cpp"
	assert.Equal(t, "main.cpp", domain.DefaultSources[0])
}

func TestProject_ResolvePath(t *testing.T) {
	root := filepath.FromSlash("/work/game")
	p := domain.DefaultProject(root)

	assert.Equal(t, filepath.Join(root, "out"), p.ResolvePath("out"))
	abs := t.TempDir()
	assert.Equal(t, abs, p.ResolvePath(abs))
	assert.Empty(t, p.ResolvePath(""))
}

func TestCommand_Argv(t *testing.T) {
	cmd := domain.Command{Name: "cmake", Args: []string{"--build", "out"}}
	assert.Equal(t, []string{"cmake", "--build", "out"}, cmd.Argv())
}

func TestCandidate_Path(t *testing.T) {
	c := domain.Candidate{Dir: filepath.Join("out", "Debug"), Name: "app"}
	assert.Equal(t, filepath.Join("out", "Debug", "app"), c.Path())
}
