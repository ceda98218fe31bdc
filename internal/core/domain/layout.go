package domain

const (
	// ProjectFileName is the name of the optional project configuration file.
	ProjectFileName = "launchpad.yaml"

	// DefaultBuildDir is the build directory used when none is configured, relative to the project root.
	DefaultBuildDir = "build/local"

	// DefaultSourceDir is the source directory used when none is configured, relative to the project root.
	DefaultSourceDir = "src"

	// CMakeCacheFile marks a build directory that has already been configured.
	CMakeCacheFile = "CMakeCache.txt"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Environment variables consulted for defaults.
const (
	EnvBuildDir  = "LAUNCHPAD_BUILD_DIR"
	EnvGenerator = "LAUNCHPAD_GENERATOR"
	EnvConfig    = "LAUNCHPAD_CONFIG"
	EnvCompiler  = "LAUNCHPAD_COMPILER"
	EnvStrategy  = "LAUNCHPAD_STRATEGY"
	EnvCMake     = "LAUNCHPAD_CMAKE"
)

// Process exit codes.
const (
	// ExitSuccess is returned when the run completed without launching, or the child exited cleanly.
	ExitSuccess = 0
	// ExitFailure is returned when orchestration failed before a child application ran.
	ExitFailure = 1
	// ExitAborted is returned when the user interrupted the run.
	ExitAborted = 130
)
