// SPDX-License-Identifier: MPL-2.0

package command

import (
	"github.com/ivg/ocamlbuild/pkg/tags"
)

// Reduce rewrites a command into its tag-free, virtual-free form: nested
// sequences are flattened, Nop and N identity nodes dropped, every T
// placeholder replaced by the active flag fragments in registration order,
// and every V placeholder solved through its registered resolver (whose
// result is itself reduced, so resolvers may return further placeholders).
//
// Reduce is idempotent and, for a fixed registry state, deterministic:
// reducing an unchanged command always yields an identical result.
func Reduce(reg *Registry, active tags.Set, c Command) (Command, error) {
	cmds, err := reduceCommand(reg, active, c)
	if err != nil {
		return nil, err
	}
	switch len(cmds) {
	case 0:
		return Nop(), nil
	case 1:
		return cmds[0], nil
	default:
		return seqCmd{cmds: cmds}, nil
	}
}

// reduceCommand flattens the top-level Seq/Nop structure into a list of
// single reduced commands.
func reduceCommand(reg *Registry, active tags.Set, c Command) ([]Command, error) {
	switch n := c.(type) {
	case nopCmd:
		return nil, nil
	case seqCmd:
		var out []Command
		for _, sub := range n.cmds {
			reduced, err := reduceCommand(reg, active, sub)
			if err != nil {
				return nil, err
			}
			out = append(out, reduced...)
		}
		return out, nil
	case cmdCmd:
		items, err := reduceSpec(reg, active, n.spec)
		if err != nil {
			return nil, err
		}
		return []Command{cmdCmd{spec: seqSpec{items: items}}}, nil
	default:
		return nil, &ContractViolationError{Msg: "unknown command variant"}
	}
}

// reduceSpec flattens a spec tree into a single-level list of leaves.
func reduceSpec(reg *Registry, active tags.Set, s Spec) ([]Spec, error) {
	switch n := s.(type) {
	case emptySpec:
		return nil, nil
	case seqSpec:
		var out []Spec
		for _, sub := range n.items {
			reduced, err := reduceSpec(reg, active, sub)
			if err != nil {
				return nil, err
			}
			out = append(out, reduced...)
		}
		return out, nil
	case atomSpec, pathSpec, shSpec:
		return []Spec{s}, nil
	case tagsSpec:
		var out []Spec
		for _, fragment := range reg.activeFragments(n.set, active) {
			for _, sub := range fragment {
				reduced, err := reduceSpec(reg, active, sub)
				if err != nil {
					return nil, err
				}
				out = append(out, reduced...)
			}
		}
		return out, nil
	case virtualSpec:
		resolver := reg.virtual(n.name)
		if resolver == nil {
			return nil, &UnresolvedVirtualError{Name: n.name}
		}
		solved, err := resolver()
		if err != nil {
			return nil, &UnresolvedVirtualError{Name: n.name, Cause: err}
		}
		return reduceSpec(reg, active, solved)
	case quoteSpec:
		inner, err := reduceSpec(reg, active, n.sub)
		if err != nil {
			return nil, err
		}
		if len(inner) != 1 {
			return nil, &ContractViolationError{Msg: "Quote must wrap a single plain-string leaf"}
		}
		switch inner[0].(type) {
		case atomSpec, pathSpec, shSpec:
			return []Spec{quoteSpec{sub: inner[0]}}, nil
		default:
			return nil, &ContractViolationError{Msg: "Quote must wrap a plain-string leaf, not a sequence"}
		}
	default:
		return nil, &ContractViolationError{Msg: "unknown spec variant"}
	}
}
