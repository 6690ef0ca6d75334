// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes platform-specific concerns: OS name
// constants for runtime.GOOS comparisons and small helpers around
// executable naming conventions.
package platform

import (
	"runtime"
	"strings"
)

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// IsWindows reports whether the current process runs on Windows.
func IsWindows() bool {
	return runtime.GOOS == Windows
}

// ExeBase returns the base name of an executable path with any Windows
// ".exe" suffix removed, so callers can compare shell names uniformly
// across platforms.
func ExeBase(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	return strings.TrimSuffix(base, ".exe")
}
