// SPDX-License-Identifier: MPL-2.0

package glob

// Interpreted evaluation: a recursive walk over the expression tree with a
// backtracking matcher for glob sequences. Costs O(pattern size) state and
// no precomputation, which is why a fresh Globber starts here.

// evalInterpreted evaluates the boolean expression against path.
func evalInterpreted(node exprNode, path string) bool {
	switch n := node.(type) {
	case *litExpr:
		return n.value == path
	case *globExpr:
		return matchSequence(n.atoms, path)
	case *andExpr:
		return evalInterpreted(n.lhs, path) && evalInterpreted(n.rhs, path)
	case *orExpr:
		return evalInterpreted(n.lhs, path) || evalInterpreted(n.rhs, path)
	case *notExpr:
		return !evalInterpreted(n.sub, path)
	case *trueExpr:
		return true
	case *falseExpr:
		return false
	default:
		panic("glob: unknown expression node")
	}
}

// matchSequence reports whether the atom sequence matches all of s.
// Alternation branches are matched by splicing the branch in front of the
// remaining atoms, so nested alternations and stars compose without any
// special casing.
func matchSequence(atoms []atom, s string) bool {
	if len(atoms) == 0 {
		return s == ""
	}
	rest := atoms[1:]
	switch a := atoms[0].(type) {
	case charAtom:
		return s != "" && s[0] == a.c && matchSequence(rest, s[1:])
	case oneAtom:
		return s != "" && matchSequence(rest, s[1:])
	case starAtom:
		for i := 0; i <= len(s); i++ {
			if matchSequence(rest, s[i:]) {
				return true
			}
		}
		return false
	case classAtom:
		if s == "" {
			return false
		}
		for _, r := range a.ranges {
			if r.contains(s[0]) {
				return matchSequence(rest, s[1:])
			}
		}
		return false
	case altAtom:
		for _, branch := range a.branches {
			spliced := make([]atom, 0, len(branch)+len(rest))
			spliced = append(spliced, branch...)
			spliced = append(spliced, rest...)
			if matchSequence(spliced, s) {
				return true
			}
		}
		return false
	default:
		panic("glob: unknown atom")
	}
}
