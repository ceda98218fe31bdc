package config

// WithGetenv replaces the environment lookup used for LAUNCHPAD_* overrides.
func (l *Loader) WithGetenv(getenv func(string) string) *Loader {
	l.getenv = getenv
	return l
}
