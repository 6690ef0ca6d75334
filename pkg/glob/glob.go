// SPDX-License-Identifier: MPL-2.0

// Package glob compiles boolean combinations of shell-like glob patterns
// into fast path matchers.
//
// The pattern language combines basic matchers with boolean operators,
// lowest to highest precedence: `|` (or), `&` (and), `~` (not), then
// grouping with parentheses. A basic matcher is either a double-quoted
// literal string (backslash escapes `"` and `\`) or a glob pattern between
// `<` and `>`:
//
//	<*.ml> & ~<*_test.ml> | "dune-project"
//
// Inside a glob pattern, `*` matches any byte sequence including the empty
// one, `?` matches exactly one byte, `{a,b}` is alternation, `[a-z0-9-]`
// matches one byte in the given ranges (a trailing `-` is a literal dash),
// and every other byte matches itself. Patterns are anchored at both ends.
//
// Matching is byte-wise over the whole path string: `*` and `?` cross path
// separators, so `<*.ml>` matches both "foo.ml" and "a/b.ml". Callers who
// want per-component matching should anchor components explicitly.
//
// A Globber starts out interpreting its pattern tree on every Eval call.
// Once an instance has been evaluated often enough it promotes itself, once
// and irreversibly, to a compiled form in which every glob leaf runs as a
// DFA over the byte alphabet. Promotion never changes results and is
// skipped for patterns too complex to determinize. The compiled-form swap
// uses an atomic pointer, but the evaluation counter is plain state: do not
// share one Globber across goroutines without external synchronization.
// Globber values have no meaningful equality or ordering.
package glob

import "sync/atomic"

// promoteAfter is the number of interpreted evaluations after which a
// Globber builds its compiled form. The value trades the one-time
// construction cost against the per-call win on hot patterns.
const promoteAfter = 32

// Globber is a compiled pattern handle. Obtain one with Parse or
// ParseInDir and reuse it; reparsing the same text discards the adaptive
// state accumulated by the instance.
type Globber struct {
	source string
	tree   exprNode

	evals            uint64
	promoteAttempted bool
	compiled         atomic.Pointer[compiledExpr]
}

// Parse builds a Globber from the pattern text. It returns a *ParseError
// describing the offending position on malformed input.
func Parse(pattern string) (*Globber, error) {
	return ParseInDir(pattern, "")
}

// ParseInDir builds a Globber whose basic patterns all require dir as a
// literal path prefix: with dir "src", `<*.ml>` matches "src/a.ml" but not
// "a.ml". An empty dir namespaces nothing.
func ParseInDir(pattern, dir string) (*Globber, error) {
	p := &parser{src: pattern, dir: dir}
	tree, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Globber{source: pattern, tree: tree}, nil
}

// Eval reports whether the pattern matches path.
func (g *Globber) Eval(path string) bool {
	if c := g.compiled.Load(); c != nil {
		return (*c).eval(path)
	}

	g.evals++
	if g.evals > promoteAfter && !g.promoteAttempted {
		g.promote()
		if c := g.compiled.Load(); c != nil {
			return (*c).eval(path)
		}
	}
	return evalInterpreted(g.tree, path)
}

// String returns the original pattern text.
func (g *Globber) String() string {
	return g.source
}

// promote builds the compiled form. On failure the instance simply keeps
// interpreting; the two forms agree on every input, so skipping promotion
// is always safe.
func (g *Globber) promote() {
	g.promoteAttempted = true
	c, err := compile(g.tree)
	if err != nil {
		return
	}
	g.compiled.Store(&c)
}
