// SPDX-License-Identifier: MPL-2.0

package command

import (
	"context"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/ivg/ocamlbuild/pkg/tags"
)

// Executor reduces, renders, and launches commands. Construct one with
// NewExecutor; the zero value is not usable.
type Executor struct {
	reg    *Registry
	active tags.Set
	runner Runner
	jobs   int
	quiet  bool
	pretend bool
	dir    string
	env    []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithActiveTags sets the ambient active tag set consulted when T
// placeholders are reduced.
func WithActiveTags(active tags.Set) Option {
	return func(e *Executor) { e.active = active }
}

// WithRunner selects the launch backend. The default is the native system
// shell.
func WithRunner(r Runner) Option {
	return func(e *Executor) { e.runner = r }
}

// WithJobs bounds the parallelism of ExecuteMany. Values below one select
// the default (GOMAXPROCS).
func WithJobs(jobs int) Option {
	return func(e *Executor) { e.jobs = jobs }
}

// WithQuiet suppresses the default pre-execution echo of rendered lines.
func WithQuiet(quiet bool) Option {
	return func(e *Executor) { e.quiet = quiet }
}

// WithPretend prints would-be invocations without launching anything.
func WithPretend(pretend bool) Option {
	return func(e *Executor) { e.pretend = pretend }
}

// WithDir sets the working directory of launched commands.
func WithDir(dir string) Option {
	return func(e *Executor) { e.dir = dir }
}

// WithEnv sets the process environment (KEY=VALUE form) of launched
// commands. Nil inherits the parent environment.
func WithEnv(env []string) Option {
	return func(e *Executor) { e.env = env }
}

// WithIO redirects the standard streams of launched commands.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// WithLogger replaces the logger used for command echo and diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(e *Executor) { e.logger = logger }
}

// NewExecutor creates an executor bound to the given registry.
func NewExecutor(reg *Registry, opts ...Option) *Executor {
	e := &Executor{
		reg:    reg,
		runner: NewNativeRunner(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: log.New(os.Stderr),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the executor reduces against.
func (e *Executor) Registry() *Registry {
	return e.reg
}

// Execute reduces the command (a no-op when it is already reduced),
// renders it, and launches it synchronously. Sequences run one command at
// a time, stopping at the first failure. Under pretend the would-be
// invocations are printed and nothing is launched; quiet suppresses the
// default pre-execution echo.
func (e *Executor) Execute(ctx context.Context, c Command) error {
	reduced, err := Reduce(e.reg, e.active, c)
	if err != nil {
		return err
	}

	switch n := reduced.(type) {
	case seqCmd:
		for _, sub := range n.cmds {
			if err := e.executeOne(ctx, sub); err != nil {
				return err
			}
		}
		return nil
	default:
		return e.executeOne(ctx, reduced)
	}
}

func (e *Executor) executeOne(ctx context.Context, c Command) error {
	line, err := e.reg.StringOfCommand(c)
	if err != nil {
		return err
	}
	if line == "" {
		return nil
	}

	if !e.quiet {
		e.logger.Print(line)
	}
	if e.pretend {
		return nil
	}

	return e.runner.Run(ctx, line, RunEnv{
		Dir:    e.dir,
		Env:    e.env,
		Stdin:  e.stdin,
		Stdout: e.stdout,
		Stderr: e.stderr,
	})
}

// BatchResult reports the outcome of ExecuteMany. OK is aligned with the
// input command order. FirstErr is the failure of the earliest command (by
// input order, not completion order) that failed, nil when every command
// succeeded; FirstFailed is its index, -1 on uniform success.
type BatchResult struct {
	OK          []bool
	FirstErr    error
	FirstFailed int
}

// Succeeded reports whether every command in the batch succeeded.
func (r BatchResult) Succeeded() bool {
	return r.FirstErr == nil
}

// ExecuteMany executes the commands with bounded parallelism. Every
// command is attempted and waited for regardless of its siblings'
// outcomes, so side effects are preserved even under partial failure.
// There is no cancellation beyond what ctx imposes on the individual
// launches; the call returns only after all commands have finished.
func (e *Executor) ExecuteMany(ctx context.Context, cmds []Command) BatchResult {
	errs := make([]error, len(cmds))

	jobs := e.jobs
	if jobs < 1 {
		jobs = runtime.GOMAXPROCS(0)
	}
	sem := make(chan struct{}, jobs)

	var wg sync.WaitGroup
	for i, c := range cmds {
		wg.Add(1)
		go func(i int, c Command) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			errs[i] = e.Execute(ctx, c)
		}(i, c)
	}
	wg.Wait()

	result := BatchResult{OK: make([]bool, len(cmds)), FirstFailed: -1}
	for i, err := range errs {
		result.OK[i] = err == nil
		if err != nil && result.FirstErr == nil {
			result.FirstErr = err
			result.FirstFailed = i
		}
	}
	return result
}
