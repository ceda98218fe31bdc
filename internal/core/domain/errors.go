package domain

import "go.trai.ch/zerr"

var (
	// ErrToolchainNotFound is returned when no compiler candidate resolves on the search path.
	ErrToolchainNotFound = zerr.New("no suitable C++ compiler was found; install g++, clang++ or MSVC, or pass --compiler")

	// ErrCompileFailed is returned when the direct compiler invocation exits nonzero.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrConfigureFailed is returned when the build system's configure phase exits nonzero.
	ErrConfigureFailed = zerr.New("configure step failed")

	// ErrBuildFailed is returned when the build system's build phase exits nonzero.
	ErrBuildFailed = zerr.New("build step failed")

	// ErrArtifactMissing is returned when a compile succeeded but the expected executable is absent.
	ErrArtifactMissing = zerr.New("expected executable was not produced; ensure your compiler supports C++17 and retry")

	// ErrExecutableNotFound is returned when no candidate path holds a runnable executable.
	ErrExecutableNotFound = zerr.New("executable not found")

	// ErrAborted is returned when the user interrupts a running phase.
	ErrAborted = zerr.New("aborted by user")

	// ErrCommandStartFailed is returned when a build tool process cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrLaunchFailed is returned when the located executable cannot be started.
	ErrLaunchFailed = zerr.New("failed to launch executable")

	// ErrCleanFailed is returned when the build directory cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove build directory")

	// ErrOutputDirCreateFailed is returned when the build directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create build directory")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrEnvFileLoadFailed is returned when a .env file exists but cannot be parsed.
	ErrEnvFileLoadFailed = zerr.New("failed to load env file")

	// ErrInvalidStrategy is returned when a build strategy name is not recognized.
	ErrInvalidStrategy = zerr.New("invalid build strategy, expected 'direct' or 'delegated'")

	// ErrUnexpectedArgs is returned when positional arguments are given without a "--" separator.
	ErrUnexpectedArgs = zerr.New("unexpected arguments; pass application arguments after --")

	// ErrInvalidFlag is returned when a flag value is outside its accepted set.
	ErrInvalidFlag = zerr.New("invalid flag value")

	// ErrDigestFailed is returned when the executable cannot be fingerprinted.
	ErrDigestFailed = zerr.New("failed to digest executable")
)
