// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates obuild configuration.
//
// Configuration lives in a CUE file resolved from the platform config
// directory (or the working directory as a fallback), validated against
// an embedded schema, and merged over defaults via Viper. Everything is
// optional; a missing config file yields the defaults.
package config
