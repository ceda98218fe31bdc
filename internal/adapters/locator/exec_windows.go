//go:build windows

package locator

import (
	"path/filepath"
	"strings"
)

var executableExts = map[string]struct{}{
	".exe": {},
	".com": {},
	".bat": {},
	".cmd": {},
}

// isExecutable reports whether Windows would run path directly.
func isExecutable(path string) bool {
	_, ok := executableExts[strings.ToLower(filepath.Ext(path))]
	return ok
}
