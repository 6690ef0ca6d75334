// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// RunnerNative executes command lines through the host system shell.
	RunnerNative RunnerMode = "native"
	// RunnerVirtual executes command lines in the embedded mvdan/sh interpreter.
	RunnerVirtual RunnerMode = "virtual"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidRunnerMode is returned when a RunnerMode value is not recognized.
	ErrInvalidRunnerMode = errors.New("invalid runner mode")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidJobs is returned when the jobs value is negative.
	ErrInvalidJobs = errors.New("invalid jobs value")
	// ErrInvalidToolfilePath is returned when a ToolfilePath value is whitespace-only.
	ErrInvalidToolfilePath = errors.New("invalid tool file path")
	// ErrInvalidShellPath is returned when a ShellPath value is whitespace-only.
	ErrInvalidShellPath = errors.New("invalid shell path")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// RunnerMode specifies which runner executes rendered command lines.
	RunnerMode string

	// InvalidRunnerModeError is returned when a RunnerMode value is not
	// recognized. It wraps ErrInvalidRunnerMode for errors.Is() compatibility.
	InvalidRunnerModeError struct {
		Value RunnerMode
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidJobsError is returned when the jobs value is negative.
	// It wraps ErrInvalidJobs for errors.Is() compatibility.
	InvalidJobsError struct {
		Value int
	}

	// ToolfilePath represents a filesystem path to a tool file.
	// The zero value ("") is valid and means "look for obuild.toml in the
	// working directory". Non-zero values must not be whitespace-only.
	ToolfilePath string

	// InvalidToolfilePathError is returned when a ToolfilePath value is
	// non-empty but whitespace-only.
	InvalidToolfilePathError struct {
		Value ToolfilePath
	}

	// ShellPath represents a filesystem path to a shell executable.
	// The zero value ("") is valid and means "auto-detect the system shell".
	// Non-zero values must not be whitespace-only.
	ShellPath string

	// InvalidShellPathError is returned when a ShellPath value is
	// non-empty but whitespace-only.
	InvalidShellPathError struct {
		Value ShellPath
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Jobs bounds parallel command execution; 0 means one worker per CPU.
		Jobs int `json:"jobs" mapstructure:"jobs"`
		// Runner selects the execution backend for rendered command lines.
		Runner RunnerMode `json:"runner" mapstructure:"runner"`
		// Shell overrides the shell used by the native runner.
		Shell ShellPath `json:"shell" mapstructure:"shell"`
		// Toolfile overrides the path to the tool file.
		Toolfile ToolfilePath `json:"toolfile" mapstructure:"toolfile"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Quiet suppresses command echoing before execution
		Quiet bool `json:"quiet" mapstructure:"quiet"`
	}
)

// Error implements the error interface for InvalidRunnerModeError.
func (e *InvalidRunnerModeError) Error() string {
	return fmt.Sprintf("invalid runner mode %q (valid: native, virtual)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidRunnerModeError) Unwrap() error { return ErrInvalidRunnerMode }

// String returns the string representation of the RunnerMode.
func (m RunnerMode) String() string { return string(m) }

// IsValid returns whether the RunnerMode is one of the defined runner modes,
// and a list of validation errors if it is not.
func (m RunnerMode) IsValid() (bool, []error) {
	switch m {
	case RunnerNative, RunnerVirtual:
		return true, nil
	default:
		return false, []error{&InvalidRunnerModeError{Value: m}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidJobsError.
func (e *InvalidJobsError) Error() string {
	return fmt.Sprintf("invalid jobs value %d: must be >= 0", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidJobsError) Unwrap() error { return ErrInvalidJobs }

// String returns the string representation of the ToolfilePath.
func (p ToolfilePath) String() string { return string(p) }

// IsValid returns whether the ToolfilePath is valid.
// The zero value ("") is valid (means "use the default tool file lookup").
// Non-zero values must not be whitespace-only.
func (p ToolfilePath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidToolfilePathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidToolfilePathError.
func (e *InvalidToolfilePathError) Error() string {
	return fmt.Sprintf("invalid tool file path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidToolfilePathError) Unwrap() error { return ErrInvalidToolfilePath }

// String returns the string representation of the ShellPath.
func (p ShellPath) String() string { return string(p) }

// IsValid returns whether the ShellPath is valid.
// The zero value ("") is valid (means "auto-detect the system shell").
// Non-zero values must not be whitespace-only.
func (p ShellPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidShellPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidShellPathError.
func (e *InvalidShellPathError) Error() string {
	return fmt.Sprintf("invalid shell path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidShellPathError) Unwrap() error { return ErrInvalidShellPath }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to Runner.IsValid(), Shell.IsValid(), Toolfile.IsValid(),
// and UI.IsValid(), and checks that Jobs is non-negative.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if c.Jobs < 0 {
		errs = append(errs, &InvalidJobsError{Value: c.Jobs})
	}
	if valid, fieldErrs := c.Runner.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Shell.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Toolfile.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Jobs:     0, // one worker per CPU
		Runner:   RunnerNative,
		Shell:    "",
		Toolfile: "",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
			Quiet:       false,
		},
	}
}
