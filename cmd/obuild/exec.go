// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ivg/ocamlbuild/internal/config"
	"github.com/ivg/ocamlbuild/internal/issue"
	"github.com/ivg/ocamlbuild/internal/toolfile"
	"github.com/ivg/ocamlbuild/pkg/command"
	"github.com/ivg/ocamlbuild/pkg/tags"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	execTags    []string
	execJobs    int
	execQuiet   bool
	execPretend bool
	execRunner  string

	execCmd = &cobra.Command{
		Use:   "exec [flags] -- <word>... [; <word>...]...",
		Short: "Assemble and run command lines",
		Long: `Assemble command lines from the given words and run them.

Each word becomes a command argument. A word of the form @name is a
virtual command, resolved through the [virtual] table of the tool file.
A tag placeholder carrying the active tags is inserted after the first
word, so [[flag]] fragments whose tags are all active get spliced in.

A literal ';' word separates independent commands; two or more commands
run in parallel, bounded by --jobs.

Examples:
  obuild exec --tag compile --tag debug -- ocamlfind main.ml
  obuild exec -- @cc -o main main.c
  obuild exec --jobs 2 -- ocamlfind a.ml \; ocamlfind b.ml`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExec,
	}
)

func init() {
	execCmd.Flags().StringArrayVarP(&execTags, "tag", "t", nil, "activate a tag (repeatable)")
	execCmd.Flags().IntVarP(&execJobs, "jobs", "j", 0, "max parallel commands (0 = one per CPU)")
	execCmd.Flags().BoolVarP(&execQuiet, "quiet", "q", false, "do not echo command lines before running them")
	execCmd.Flags().BoolVarP(&execPretend, "pretend", "n", false, "print command lines without executing them")
	execCmd.Flags().StringVar(&execRunner, "runner", "", "execution backend: native or virtual")
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		cfg = config.DefaultConfig()
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	active := tags.New(execTags...)
	cmds, err := parseCommandWords(args, active)
	if err != nil {
		return err
	}

	runner, err := selectRunner(cfg)
	if err != nil {
		return err
	}

	jobs := cfg.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs = execJobs
	}
	quiet := cfg.UI.Quiet || execQuiet

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	exec := command.NewExecutor(reg,
		command.WithActiveTags(active),
		command.WithRunner(runner),
		command.WithJobs(jobs),
		command.WithQuiet(quiet),
		command.WithPretend(execPretend),
		command.WithIO(os.Stdin, os.Stdout, os.Stderr),
		command.WithLogger(logger),
	)

	if len(cmds) == 1 {
		return execError(exec.Execute(cmd.Context(), cmds[0]))
	}

	result := exec.ExecuteMany(cmd.Context(), cmds)
	if !result.Succeeded() {
		return execError(result.FirstErr)
	}
	return nil
}

// buildRegistry loads the tool file into a fresh registry. A missing
// default tool file yields an empty registry; a missing explicit one is
// an error.
func buildRegistry(cfg *config.Config) (*command.Registry, error) {
	reg := command.NewRegistry()

	path := toolfilePath
	explicit := path != ""
	if path == "" {
		path = string(cfg.Toolfile)
		explicit = path != ""
	}
	if path == "" {
		path = toolfile.DefaultFileName
	}

	tf, err := toolfile.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return reg, nil
		}
		return nil, err
	}

	tf.Apply(reg, nil)
	return reg, nil
}

// parseCommandWords splits args on literal ";" separators and builds one
// command per group: the first word, then a tag placeholder, then the rest.
// Words of the form @name become virtual commands.
func parseCommandWords(args []string, active tags.Set) ([]command.Command, error) {
	var cmds []command.Command
	var group []string

	flush := func() {
		if len(group) == 0 {
			return
		}
		specs := make([]command.Spec, 0, len(group)+1)
		for i, word := range group {
			var spec command.Spec
			if strings.HasPrefix(word, "@") && len(word) > 1 {
				spec = command.V(word[1:])
			} else {
				spec = command.A(word)
			}
			specs = append(specs, spec)
			if i == 0 {
				specs = append(specs, command.T(active))
			}
		}
		cmds = append(cmds, command.Cmd(command.S(specs...)))
		group = group[:0]
	}

	for _, arg := range args {
		if arg == ";" {
			flush()
			continue
		}
		group = append(group, arg)
	}
	flush()

	if len(cmds) == 0 {
		return nil, fmt.Errorf("no command words given")
	}
	return cmds, nil
}

// selectRunner picks the execution backend from flag and config.
func selectRunner(cfg *config.Config) (command.Runner, error) {
	mode := cfg.Runner
	if execRunner != "" {
		mode = config.RunnerMode(execRunner)
	}

	switch mode {
	case config.RunnerVirtual:
		return command.NewVirtualRunner(), nil
	case config.RunnerNative, "":
		r := command.NewNativeRunner()
		r.Shell = string(cfg.Shell)
		if !r.Available() {
			rendered, _ := issue.Get(issue.ShellNotFoundId).Render("dark")
			fmt.Fprint(os.Stderr, rendered)
			return nil, fmt.Errorf("no usable shell found for the native runner")
		}
		return r, nil
	default:
		return nil, &config.InvalidRunnerModeError{Value: mode}
	}
}

// execError maps execution failures to CLI exit errors, rendering the
// matching issue page for known failure classes.
func execError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *command.ExitError
	if errors.As(err, &exitErr) {
		if verbose {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("command failed: ")+exitErr.Line)
		}
		return &ExitError{Code: exitErr.Code, Err: err}
	}

	var unresolved *command.UnresolvedVirtualError
	if errors.As(err, &unresolved) {
		rendered, _ := issue.Get(issue.VirtualUnresolvedId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
	}

	return err
}
