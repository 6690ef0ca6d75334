// SPDX-License-Identifier: MPL-2.0

package glob

// compiledExpr mirrors the expression tree with every glob leaf replaced by
// its DFA. It is built once at promotion time and read-only afterwards.
type compiledExpr interface {
	eval(path string) bool
}

type (
	compiledLit struct {
		value string
	}

	compiledGlob struct {
		machine *dfa
	}

	compiledAnd struct {
		lhs, rhs compiledExpr
	}

	compiledOr struct {
		lhs, rhs compiledExpr
	}

	compiledNot struct {
		sub compiledExpr
	}

	compiledConst struct {
		value bool
	}
)

func (c *compiledLit) eval(path string) bool { return c.value == path }

func (c *compiledGlob) eval(path string) bool { return c.machine.run(path) }

func (c *compiledAnd) eval(path string) bool { return c.lhs.eval(path) && c.rhs.eval(path) }

func (c *compiledOr) eval(path string) bool { return c.lhs.eval(path) || c.rhs.eval(path) }

func (c *compiledNot) eval(path string) bool { return !c.sub.eval(path) }

func (c *compiledConst) eval(path string) bool { return c.value }

// compile translates the expression tree into its compiled form. It fails
// when any leaf is too complex to determinize; the caller then keeps the
// interpreted form, which is always correct.
func compile(node exprNode) (compiledExpr, error) {
	switch n := node.(type) {
	case *litExpr:
		return &compiledLit{value: n.value}, nil
	case *globExpr:
		machine, err := determinize(buildNFA(n.atoms))
		if err != nil {
			return nil, err
		}
		return &compiledGlob{machine: machine}, nil
	case *andExpr:
		lhs, err := compile(n.lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := compile(n.rhs)
		if err != nil {
			return nil, err
		}
		return &compiledAnd{lhs: lhs, rhs: rhs}, nil
	case *orExpr:
		lhs, err := compile(n.lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := compile(n.rhs)
		if err != nil {
			return nil, err
		}
		return &compiledOr{lhs: lhs, rhs: rhs}, nil
	case *notExpr:
		sub, err := compile(n.sub)
		if err != nil {
			return nil, err
		}
		return &compiledNot{sub: sub}, nil
	case *trueExpr:
		return &compiledConst{value: true}, nil
	case *falseExpr:
		return &compiledConst{value: false}, nil
	default:
		panic("glob: unknown expression node")
	}
}
