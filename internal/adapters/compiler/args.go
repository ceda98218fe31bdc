package compiler

import (
	"path/filepath"

	"go.trai.ch/launchpad/internal/core/domain"
)

// Invocation is one compiler command line and the directory to run it in.
type Invocation struct {
	Argv []string
	Dir  string
}

// UnixArgs builds a g++-style command line.
// Output goes to an explicit path, so the working directory is irrelevant.
func UnixArgs(compiler, output, sourceDir string, sources []string) Invocation {
	argv := []string{
		compiler,
		"-std=c++17",
		"-O2",
		"-Wall",
		"-Wextra",
		"-pedantic",
		"-o", output,
	}
	argv = append(argv, sources...)
	argv = append(argv, "-I", sourceDir)
	return Invocation{Argv: argv}
}

// MSVCArgs builds a cl-style command line.
// cl writes objects and the executable into the working directory, so /Fe gets
// the file name only and the command runs inside the output directory.
func MSVCArgs(compiler, output, sourceDir string, sources []string) Invocation {
	argv := []string{
		compiler,
		"/std:c++17",
		"/EHsc",
		"/nologo",
		"/Fe" + filepath.Base(output),
		"/I", sourceDir,
	}
	argv = append(argv, sources...)
	return Invocation{Argv: argv, Dir: filepath.Dir(output)}
}

// ArgsFor dispatches on the toolchain dialect.
func ArgsFor(tc domain.ToolchainChoice, output, sourceDir string, sources []string) Invocation {
	if tc.Kind == domain.KindMSVCStyle {
		return MSVCArgs(tc.ExecutablePath, output, sourceDir, sources)
	}
	return UnixArgs(tc.ExecutablePath, output, sourceDir, sources)
}
