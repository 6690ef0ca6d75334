// SPDX-License-Identifier: MPL-2.0

package command

import (
	"context"
	"io"
)

// RunEnv carries the process environment of a single launch.
type RunEnv struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env is the process environment in KEY=VALUE form. Nil inherits the
	// parent environment.
	Env []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner launches one rendered command line and waits for it. A non-zero
// exit surfaces as *ExitError; failure to launch at all surfaces as a
// wrapped error.
type Runner interface {
	// Name identifies the runner ("native" or "virtual").
	Name() string

	// Available reports whether this runner can work in the current
	// environment.
	Available() bool

	// Run executes line synchronously.
	Run(ctx context.Context, line string, env RunEnv) error
}
