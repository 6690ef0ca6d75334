// SPDX-License-Identifier: MPL-2.0

package command

import "fmt"

// UnresolvedVirtualError reports a V placeholder whose resolver is missing
// or failed. It aborts the reduction that encountered it and leaves the
// registry untouched.
type UnresolvedVirtualError struct {
	// Name is the virtual command that could not be solved.
	Name string

	// Cause is the resolver failure, nil when no resolver was registered.
	Cause error
}

// Error implements the error interface.
func (e *UnresolvedVirtualError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("virtual command %q unresolved: %v", e.Name, e.Cause)
	}
	return fmt.Sprintf("virtual command %q unresolved: no solver registered", e.Name)
}

// Unwrap returns the resolver failure, if any.
func (e *UnresolvedVirtualError) Unwrap() error {
	return e.Cause
}

// ContractViolationError reports a programming error: rendering a spec that
// still contains placeholders, or quoting something that is not a
// plain-string leaf. These fail loudly instead of being coerced.
type ContractViolationError struct {
	Msg string
}

// Error implements the error interface.
func (e *ContractViolationError) Error() string {
	return "command contract violation: " + e.Msg
}

// ExitError reports a launched process that terminated with a non-zero
// exit status.
type ExitError struct {
	// Line is the rendered command line that was executed.
	Line string

	// Code is the process exit status.
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d: %s", e.Code, e.Line)
}

// NotFoundError reports an executable name that matched nothing in any
// searched directory of the environment's search path.
type NotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("executable %q not found in PATH", e.Name)
}
