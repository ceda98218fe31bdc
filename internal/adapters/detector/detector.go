// Package detector decides how build tools are attached to the terminal.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how build tool output reaches the user.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModePTY runs build tools under a pseudo-terminal so they keep colored diagnostics.
	ModePTY
	// ModePlain runs build tools with inherited stdio only.
	ModePlain
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModePTY:
		return "pty"
	case ModePlain:
		return "plain"
	default:
		return "auto"
	}
}

// Interactive reports whether build tools should be attached to a pseudo-terminal.
func (m OutputMode) Interactive() bool {
	return m == ModePTY
}

// DetectEnvironment returns the recommended output mode for the current process.
// Both stdin and stdout must be terminals, and CI must not be set.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	return Detect(isTTY, os.Getenv("CI"))
}

// Detect maps terminal and CI state to an output mode.
func Detect(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModePlain
	}
	return ModePTY
}

// ResolveMode applies the user's --output-mode flag to auto-detection.
// userFlag should be one of "auto", "pty", "plain", "ci" or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "pty":
		return ModePTY
	case "plain", "ci":
		return ModePlain
	default:
		return autoDetected
	}
}
