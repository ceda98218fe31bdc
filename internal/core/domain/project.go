package domain

import "path/filepath"

// DefaultExecutableName is the base name of the launched application.
const DefaultExecutableName = "hero_line_wars"

// DefaultSources is the fixed list of translation units compiled by the direct strategy.
// It mirrors the CMake target so both strategies produce the same executable.
var DefaultSources = []string{
	"main.cpp",
	"HeroLineWarsGame.cpp",
	"Hero.cpp",
	"IconLibrary.cpp",
	"Item.cpp",
	"Team.cpp",
	"UnitType.cpp",
}

// Project is the resolved description of the application being built.
// Root, SourceDir and BuildDir are absolute once loaded.
type Project struct {
	Root      string
	Name      string
	SourceDir string
	Sources   []string
	BuildDir  string
	Strategy  Strategy
	Generator string
	Config    string
	Compiler  string
	// CMake is the cmake executable used by the delegated strategy.
	CMake string
}

// DefaultProject returns the built-in project rooted at root.
func DefaultProject(root string) *Project {
	return &Project{
		Root:      root,
		Name:      DefaultExecutableName,
		SourceDir: filepath.Join(root, DefaultSourceDir),
		Sources:   append([]string(nil), DefaultSources...),
		BuildDir:  filepath.Join(root, filepath.FromSlash(DefaultBuildDir)),
		Strategy:  StrategyDirect,
	}
}

// ExecutableName returns the platform-specific file name of the executable.
func (p *Project) ExecutableName(goos string) string {
	if goos == "windows" {
		return p.Name + ".exe"
	}
	return p.Name
}

// SourcePaths returns the source files joined with the source directory.
func (p *Project) SourcePaths() []string {
	paths := make([]string, 0, len(p.Sources))
	for _, src := range p.Sources {
		paths = append(paths, filepath.Join(p.SourceDir, src))
	}
	return paths
}

// ResolvePath makes path absolute relative to the project root.
func (p *Project) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Root, path)
}
