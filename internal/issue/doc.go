// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error presentation: a catalog of
// known failure modes rendered as markdown help pages, and an
// ActionableError type that carries operation context and fix
// suggestions alongside the underlying error.
package issue
