// SPDX-License-Identifier: MPL-2.0

package glob

// The pattern AST has two layers: boolean expression nodes combining basic
// matchers, and glob atom sequences inside each <...> basic matcher. Both
// layers are built once by the parser and never mutated afterwards.

// exprNode is a node of the boolean pattern expression.
type exprNode interface {
	isExpr()
}

type (
	// litExpr matches exactly one string.
	litExpr struct {
		value string
	}

	// globExpr matches a glob atom sequence, anchored at both ends.
	globExpr struct {
		atoms []atom
		// source is the original <...> text, kept for String rendering.
		source string
	}

	andExpr struct {
		lhs, rhs exprNode
	}

	orExpr struct {
		lhs, rhs exprNode
	}

	notExpr struct {
		sub exprNode
	}

	trueExpr  struct{}
	falseExpr struct{}
)

func (*litExpr) isExpr() {}
func (*globExpr) isExpr() {}
func (*andExpr) isExpr() {}
func (*orExpr) isExpr() {}
func (*notExpr) isExpr() {}
func (*trueExpr) isExpr() {}
func (*falseExpr) isExpr() {}

// atom is one element of a glob sequence.
type atom interface {
	isAtom()
}

type (
	// charAtom matches a single literal byte.
	charAtom struct {
		c byte
	}

	// oneAtom is `?`: matches exactly one byte.
	oneAtom struct{}

	// starAtom is `*`: matches any sequence of bytes, including the
	// empty one. Matching is byte-wise over the whole path string, so a
	// star crosses path separators (see the package doc).
	starAtom struct{}

	// classAtom is `[...]`: matches one byte inside any of the ranges.
	// A trailing unescaped `-` in the source becomes the degenerate
	// range '-'..'-'.
	classAtom struct {
		ranges []byteRange
	}

	// altAtom is `{a,b,...}`: matches any one of the branch sequences.
	altAtom struct {
		branches [][]atom
	}
)

type byteRange struct {
	lo, hi byte
}

func (charAtom) isAtom() {}
func (oneAtom) isAtom() {}
func (starAtom) isAtom() {}
func (classAtom) isAtom() {}
func (altAtom) isAtom() {}

func (r byteRange) contains(c byte) bool {
	return r.lo <= c && c <= r.hi
}

// literalAtoms converts a literal string into a sequence of charAtoms.
// Used to prepend a directory prefix to a basic pattern.
func literalAtoms(s string) []atom {
	atoms := make([]atom, len(s))
	for i := 0; i < len(s); i++ {
		atoms[i] = charAtom{c: s[i]}
	}
	return atoms
}
