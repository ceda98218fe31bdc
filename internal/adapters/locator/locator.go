// Package locator finds the built executable beneath a build output root.
package locator

import (
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/launchpad/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ExecutableLocator = (*Locator)(nil)

const notFoundHint = "verify the build completed, or pass --config to select a configuration directory"

// Locator implements ports.ExecutableLocator as a pure filesystem search.
// It does not know which strategy produced the build.
type Locator struct {
	baseName   string
	goos       string
	configs    []string
	executable func(path string) bool
}

// Option configures a Locator.
type Option func(*Locator)

// WithPlatform overrides the platform used for name variants.
func WithPlatform(goos string) Option {
	return func(l *Locator) {
		l.goos = goos
	}
}

// WithExecutableCheck replaces the permission check.
func WithExecutableCheck(fn func(path string) bool) Option {
	return func(l *Locator) {
		l.executable = fn
	}
}

// New creates a Locator for executables named baseName.
func New(baseName string, opts ...Option) *Locator {
	l := &Locator{
		baseName:   baseName,
		goos:       runtime.GOOS,
		configs:    domain.ConventionalConfigs,
		executable: isExecutable,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Names returns the file names probed in each directory, platform-preferred first.
func (l *Locator) Names() []string {
	if l.goos == "windows" {
		return []string{l.baseName + ".exe", l.baseName}
	}
	return []string{l.baseName, l.baseName + ".exe"}
}

// Candidates returns the ordered probe list.
// A non-empty config yields only candidates inside root/config.
func (l *Locator) Candidates(root, config string) []domain.Candidate {
	var dirs []string
	if config != "" {
		dirs = []string{filepath.Join(root, config)}
	} else {
		dirs = make([]string, 0, len(l.configs)+1)
		dirs = append(dirs, root)
		for _, c := range l.configs {
			dirs = append(dirs, filepath.Join(root, c))
		}
	}

	names := l.Names()
	candidates := make([]domain.Candidate, 0, len(dirs)*len(names))
	for _, dir := range dirs {
		for _, name := range names {
			candidates = append(candidates, domain.Candidate{Dir: dir, Name: name})
		}
	}
	return candidates
}

// Locate returns the first candidate that is an executable regular file.
func (l *Locator) Locate(root, config string) (string, error) {
	candidates := l.Candidates(root, config)
	searched := make([]string, 0, len(candidates))

	for _, c := range candidates {
		path := c.Path()
		searched = append(searched, path)

		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if l.executable(path) {
			return path, nil
		}
	}

	err := zerr.Wrap(domain.ErrExecutableNotFound, "no runnable "+l.baseName+" below "+root)
	err = zerr.With(err, "root", root)
	if config != "" {
		err = zerr.With(err, "config", config)
	}
	err = zerr.With(err, "searched", searched)
	return "", zerr.With(err, "hint", notFoundHint)
}
