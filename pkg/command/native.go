// SPDX-License-Identifier: MPL-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/ivg/ocamlbuild/pkg/platform"
)

// NativeRunner executes rendered command lines through the system's default
// shell.
type NativeRunner struct {
	// Shell overrides the default shell.
	Shell string
	// ShellArgs are arguments passed to the shell before the command line.
	ShellArgs []string
}

// NewNativeRunner creates a native runner using the platform default shell.
func NewNativeRunner() *NativeRunner {
	return &NativeRunner{}
}

// Name returns the runner name.
func (r *NativeRunner) Name() string {
	return "native"
}

// Available reports whether a usable shell exists on this system.
func (r *NativeRunner) Available() bool {
	_, err := r.getShell()
	return err == nil
}

// Run executes line through the shell and waits for completion.
func (r *NativeRunner) Run(ctx context.Context, line string, env RunEnv) error {
	shell, err := r.getShell()
	if err != nil {
		return err
	}

	args := append(r.getShellArgs(shell), line)
	cmd := exec.CommandContext(ctx, shell, args...)
	cmd.Dir = env.Dir
	cmd.Env = env.Env
	cmd.Stdin = env.Stdin
	cmd.Stdout = env.Stdout
	cmd.Stderr = env.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &ExitError{Line: line, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to launch command: %w", err)
	}
	return nil
}

// getShell determines which shell to use.
func (r *NativeRunner) getShell() (string, error) {
	if r.Shell != "" {
		return r.Shell, nil
	}

	switch runtime.GOOS {
	case platform.Windows:
		if pwsh, err := exec.LookPath("pwsh"); err == nil {
			return pwsh, nil
		}
		if ps, err := exec.LookPath("powershell"); err == nil {
			return ps, nil
		}
		return exec.LookPath("cmd")
	default:
		if shell := os.Getenv("SHELL"); shell != "" {
			return shell, nil
		}
		if bash, err := exec.LookPath("bash"); err == nil {
			return bash, nil
		}
		if sh, err := exec.LookPath("sh"); err == nil {
			return sh, nil
		}
		return "", fmt.Errorf("no shell found")
	}
}

// getShellArgs returns the arguments that make the shell run one command
// line and exit.
func (r *NativeRunner) getShellArgs(shell string) []string {
	if len(r.ShellArgs) > 0 {
		return r.ShellArgs
	}

	base := platform.ExeBase(shell)
	switch base {
	case "cmd":
		return []string{"/C"}
	case "powershell", "pwsh":
		return []string{"-NoProfile", "-Command"}
	default:
		// Assume POSIX shell
		return []string{"-c"}
	}
}
