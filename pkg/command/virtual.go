// SPDX-License-Identifier: MPL-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRunner executes rendered command lines with the embedded mvdan/sh
// interpreter. No external shell binary is needed, which also makes it the
// runner of choice for hermetic tests.
type VirtualRunner struct{}

// NewVirtualRunner creates a new virtual runner.
func NewVirtualRunner() *VirtualRunner {
	return &VirtualRunner{}
}

// Name returns the runner name.
func (r *VirtualRunner) Name() string {
	return "virtual"
}

// Available always reports true: the interpreter is built in.
func (r *VirtualRunner) Available() bool {
	return true
}

// Run parses line as a shell program and executes it in-process.
func (r *VirtualRunner) Run(ctx context.Context, line string, env RunEnv) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(line), "command")
	if err != nil {
		return fmt.Errorf("failed to parse command line: %w", err)
	}

	opts := []interp.RunnerOption{
		interp.StdIO(env.Stdin, env.Stdout, env.Stderr),
	}
	if env.Dir != "" {
		opts = append(opts, interp.Dir(env.Dir))
	}
	if env.Env != nil {
		opts = append(opts, interp.Env(expand.ListEnviron(env.Env...)))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &ExitError{Line: line, Code: int(exitStatus)}
		}
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}
