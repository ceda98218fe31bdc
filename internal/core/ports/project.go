package ports

import "go.trai.ch/launchpad/internal/core/domain"

// ProjectLoader resolves the project description for a working directory.
//
//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type ProjectLoader interface {
	// Load searches cwd and its parents for a project file and falls back to
	// the built-in project rooted at cwd.
	Load(cwd string) (*domain.Project, error)
}
