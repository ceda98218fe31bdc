package ports

// ExecutableLocator finds a runnable artifact beneath a build output root.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ExecutableLocator interface {
	// Locate returns the first candidate that is an executable regular file.
	// A non-empty config restricts the search to that configuration's directory.
	Locate(root, config string) (string, error)
}
