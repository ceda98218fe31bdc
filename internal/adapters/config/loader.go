// Package config resolves the project description from launchpad.yaml,
// .env files and LAUNCHPAD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/launchpad/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvFiles are loaded from the project root, highest precedence first.
// Variables already present in the environment are never overridden.
var EnvFiles = []string{".env.local", ".env"}

var validNameRegex = regexp.MustCompile("^[a-zA-Z0-9_.-]+$")

// SchemaVersion is the only launchpad.yaml version understood. An omitted version means this one.
const SchemaVersion = "1"

// Loader implements ports.ProjectLoader.
type Loader struct {
	Logger ports.Logger
	getenv func(string) string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, getenv: os.Getenv}
}

// Load resolves the project for cwd. Precedence is environment over project
// file over built-in defaults; relative directories are anchored at the
// project root, which is the directory holding launchpad.yaml or cwd.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, found := findProjectFile(cwd)

	root := cwd
	if found {
		root = filepath.Dir(configPath)
	}

	if err := l.loadEnvFiles(root); err != nil {
		return nil, err
	}

	project := domain.DefaultProject(root)

	if found {
		l.Logger.Debug("using project file " + configPath)
		var file ProjectFile
		if err := readAndUnmarshalYAML(configPath, &file); err != nil {
			return nil, err
		}
		if err := applyFile(project, &file); err != nil {
			return nil, zerr.With(err, "path", configPath)
		}
	}

	if err := l.applyEnv(project); err != nil {
		return nil, err
	}

	project.SourceDir = project.ResolvePath(project.SourceDir)
	project.BuildDir = project.ResolvePath(project.BuildDir)

	return project, nil
}

func findProjectFile(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ProjectFileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) loadEnvFiles(root string) error {
	for _, name := range EnvFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrEnvFileLoadFailed, err.Error()), "path", path)
		}
		l.Logger.Debug("loaded environment defaults from " + path)
	}
	return nil
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", configPath)
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, parseErr.Error()), "path", configPath)
	}

	return nil
}

func applyFile(project *domain.Project, file *ProjectFile) error {
	if file.Version != "" && file.Version != SchemaVersion {
		return zerr.With(
			zerr.Wrap(domain.ErrConfigParseFailed, fmt.Sprintf("unsupported version %q, expected %q", file.Version, SchemaVersion)),
			"version", file.Version,
		)
	}
	if file.Name != "" {
		if !validNameRegex.MatchString(file.Name) {
			return zerr.With(
				zerr.Wrap(domain.ErrConfigParseFailed, fmt.Sprintf("invalid executable name %q", file.Name)),
				"name", file.Name,
			)
		}
		project.Name = file.Name
	}
	if file.SourceDir != "" {
		project.SourceDir = file.SourceDir
	}
	if len(file.Sources) > 0 {
		project.Sources = append([]string(nil), file.Sources...)
	}
	if file.BuildDir != "" {
		project.BuildDir = file.BuildDir
	}
	if file.Strategy != "" {
		strategy, err := domain.ParseStrategy(file.Strategy)
		if err != nil {
			return err
		}
		project.Strategy = strategy
	}
	setIfNotEmpty(&project.Generator, file.Generator)
	setIfNotEmpty(&project.Config, file.Config)
	setIfNotEmpty(&project.Compiler, file.Compiler)
	setIfNotEmpty(&project.CMake, file.CMake)
	return nil
}

func (l *Loader) applyEnv(project *domain.Project) error {
	setIfNotEmpty(&project.BuildDir, l.getenv(domain.EnvBuildDir))
	setIfNotEmpty(&project.Generator, l.getenv(domain.EnvGenerator))
	setIfNotEmpty(&project.Config, l.getenv(domain.EnvConfig))
	setIfNotEmpty(&project.Compiler, l.getenv(domain.EnvCompiler))
	setIfNotEmpty(&project.CMake, l.getenv(domain.EnvCMake))

	if raw := l.getenv(domain.EnvStrategy); raw != "" {
		strategy, err := domain.ParseStrategy(raw)
		if err != nil {
			return zerr.With(err, "variable", domain.EnvStrategy)
		}
		project.Strategy = strategy
	}
	return nil
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
