// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for obuild.
//
// This package implements the Cobra command hierarchy for the obuild CLI:
// the root command, pattern matching, command execution, tool file
// scaffolding, and configuration management.
package cmd
