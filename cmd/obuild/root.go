// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ivg/ocamlbuild/internal/config"
	"github.com/ivg/ocamlbuild/internal/issue"
	"github.com/ivg/ocamlbuild/pkg/command"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// toolfilePath allows specifying a custom tool file
	toolfilePath string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "obuild",
		Short: "A tag-driven command synthesis tool",
		Long: TitleStyle.Render("obuild") + SubtitleStyle.Render(" - A tag-driven command synthesis tool") + `

obuild assembles and runs shell command lines from structured command
specifications. Tag-guarded flags from a tool file are injected into
placeholders, virtual commands resolve to the first matching executable
in PATH, and boolean glob patterns select which tag sets apply.

Tool declarations live in 'obuild.toml' files using TOML format.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create an obuild.toml in your project directory
  2. Declare [[flag]] fragments and [virtual] candidates
  3. Run commands with: obuild exec --tag <tag> -- <words...>

` + SubtitleStyle.Render("Examples:") + `
  obuild exec --tag compile -- ocamlfind main.ml
  obuild exec -- @cc -o main main.c
  obuild match '<*.ml> | <*.mli>' src/main.ml
  obuild init                 Create a starter obuild.toml
  obuild config show          Show current configuration`,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/obuild/config.cue)")
	rootCmd.PersistentFlags().StringVar(&toolfilePath, "toolfile", "", "tool file (default is ./obuild.toml)")

	// Add subcommands
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newCompletionCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var cliExit *ExitError
		if errors.As(err, &cliExit) {
			os.Exit(cliExit.Code)
		}
		var cmdExit *command.ExitError
		if errors.As(err, &cmdExit) {
			os.Exit(cmdExit.Code)
		}
		os.Exit(1)
	}
}

// loadConfig loads configuration, honoring the --config flag.
func loadConfig(ctx context.Context) (*config.Config, error) {
	return config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
