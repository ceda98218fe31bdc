package domain

// LaunchResult is the outcome of running the application.
type LaunchResult struct {
	// ExitCode is passed through as the launcher's own exit code.
	ExitCode int
	// Signal names the signal that terminated the child, if any.
	Signal string
}

// Command is a single blocking subprocess invocation. No shell is involved.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Interactive runs the command under a pseudo-terminal when possible.
	Interactive bool
}

// Argv returns the full argument vector including the program name.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}
