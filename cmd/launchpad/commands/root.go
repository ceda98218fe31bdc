// Package commands implements the CLI commands for launchpad.
package commands

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/launchpad/internal/app"
	"go.trai.ch/launchpad/internal/build"
	"go.trai.ch/launchpad/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	logFormats  = []string{"pretty", "json"}
	outputModes = []string{"auto", "pty", "plain"}
)

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (domain.LaunchResult, error)
	Clean(ctx context.Context, opts app.CleanOptions) error
	Locate(ctx context.Context, opts app.LocateOptions) (string, error)
	ConfigureLogging(verbose, jsonFormat bool)
}

// CLI represents the command line interface for launchpad.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	exitCode int
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "launchpad [flags] [-- app-args...]",
		Short: "Build the game from source and launch it",
		Long: "launchpad compiles the game with the local C++ toolchain or CMake,\n" +
			"finds the produced executable and runs it, forwarding everything after --.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: c.configureLogging,
		RunE:              c.runLaunch,
	}

	// Persistent flags go first so -v stays with --verbose and --version gets no shorthand.
	pf := rootCmd.PersistentFlags()
	pf.String("build-dir", "", "Build output directory (default build/local, relative to the project root)")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.String("log-format", "pretty", "Log format: pretty or json")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	f := rootCmd.Flags()
	f.String("compiler", "", "C++ compiler to use for the direct strategy (skips auto-detection)")
	f.String("generator", "", "CMake generator for the delegated strategy")
	f.String("config", "", "Build configuration for the delegated strategy, e.g. Debug or Release")
	f.String("strategy", "", "Build strategy: direct or delegated")
	f.Bool("skip-build", false, "Launch an existing executable without building")
	f.Bool("build-only", false, "Build but do not launch")
	f.Bool("clean", false, "Remove the build directory before building")
	f.StringP("output-mode", "o", "auto", "How build tools attach to the terminal: auto, pty or plain")
	f.Bool("ci", false, "Use plain output mode (shorthand for --output-mode=plain)")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newLocateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code of the launched application, if one ran.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logFormat, _ := cmd.Flags().GetString("log-format")

	if err := oneOf("log-format", logFormat, logFormats); err != nil {
		return err
	}

	c.app.ConfigureLogging(verbose, logFormat == "json")
	return nil
}

func (c *CLI) runLaunch(cmd *cobra.Command, args []string) error {
	appArgs, err := forwardedArgs(cmd, args)
	if err != nil {
		return err
	}

	outputMode, _ := cmd.Flags().GetString("output-mode")
	if ci, _ := cmd.Flags().GetBool("ci"); ci {
		outputMode = "plain"
	}
	if err := oneOf("output-mode", outputMode, outputModes); err != nil {
		return err
	}

	buildDir, _ := cmd.Flags().GetString("build-dir")
	compiler, _ := cmd.Flags().GetString("compiler")
	generator, _ := cmd.Flags().GetString("generator")
	config, _ := cmd.Flags().GetString("config")
	strategy, _ := cmd.Flags().GetString("strategy")
	skipBuild, _ := cmd.Flags().GetBool("skip-build")
	buildOnly, _ := cmd.Flags().GetBool("build-only")
	clean, _ := cmd.Flags().GetBool("clean")

	result, err := c.app.Run(cmd.Context(), app.RunOptions{
		BuildDir:   buildDir,
		Compiler:   compiler,
		Generator:  generator,
		Config:     config,
		Strategy:   strategy,
		OutputMode: outputMode,
		SkipBuild:  skipBuild,
		BuildOnly:  buildOnly,
		Clean:      clean,
		AppArgs:    appArgs,
	})
	c.exitCode = result.ExitCode
	return err
}

// forwardedArgs returns the arguments after "--". Anything before it is rejected.
func forwardedArgs(cmd *cobra.Command, args []string) ([]string, error) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		dash = len(args)
	}
	if dash > 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnexpectedArgs, "positional arguments are not accepted"), "args", args[:dash])
	}
	return append([]string{}, args[dash:]...), nil
}

func oneOf(flag, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidFlag, "--"+flag+" must be one of "+fmt.Sprint(allowed)), "flag", flag), "value", value)
}
