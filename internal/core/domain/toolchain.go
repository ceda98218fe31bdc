package domain

import (
	"path/filepath"
	"strings"
)

// ToolchainKind is the argument dialect understood by a compiler driver.
type ToolchainKind int

const (
	// KindUnixStyle is the g++/clang++ dialect.
	KindUnixStyle ToolchainKind = iota
	// KindMSVCStyle is the cl.exe dialect.
	KindMSVCStyle
)

func (k ToolchainKind) String() string {
	if k == KindMSVCStyle {
		return "msvc"
	}
	return "unix"
}

// ToolchainChoice is the compiler selected for a direct build.
type ToolchainChoice struct {
	ExecutablePath string
	Kind           ToolchainKind
}

var msvcDrivers = map[string]struct{}{
	"cl":       {},
	"clang-cl": {},
}

// ToolchainKindOf classifies a compiler by its base name.
func ToolchainKindOf(name string) ToolchainKind {
	base := strings.ToLower(filepath.Base(strings.ReplaceAll(name, `\`, "/")))
	base = strings.TrimSuffix(base, ".exe")
	if _, ok := msvcDrivers[base]; ok {
		return KindMSVCStyle
	}
	return KindUnixStyle
}

// NewToolchainChoice builds a ToolchainChoice whose kind is derived from the executable name.
func NewToolchainChoice(path string) ToolchainChoice {
	return ToolchainChoice{ExecutablePath: path, Kind: ToolchainKindOf(path)}
}
