// SPDX-License-Identifier: MPL-2.0

package command

import "github.com/ivg/ocamlbuild/pkg/tags"

// Command is a top-level command value: nothing at all, a single command,
// or an ordered sequence of commands. The variant set is closed; every
// consumer switches exhaustively over the concrete node types.
type Command interface {
	isCommand()
}

// Spec is one node of a command tree. Specs are transient values: built per
// build action, consumed once by Reduce and rendering, then discarded.
type Spec interface {
	isSpec()
}

type (
	nopCmd struct{}

	seqCmd struct {
		cmds []Command
	}

	cmdCmd struct {
		spec Spec
	}
)

func (nopCmd) isCommand() {}
func (seqCmd) isCommand() {}
func (cmdCmd) isCommand() {}

type (
	// emptySpec is the identity fragment, dropped during reduction.
	emptySpec struct{}

	// seqSpec is a sub-sequence, flattened during reduction.
	seqSpec struct {
		items []Spec
	}

	// atomSpec is a literal argument, escaped at render time.
	atomSpec struct {
		val string
	}

	// pathSpec is a path argument. With hook set, rendering additionally
	// fires the registered per-target hook with the literal path text.
	pathSpec struct {
		path string
		hook bool
	}

	// shSpec is raw shell text inserted verbatim at render time. The
	// caller is responsible for its correctness.
	shSpec struct {
		text string
	}

	// tagsSpec is a placeholder expanded from the flag registry.
	tagsSpec struct {
		set tags.Set
	}

	// virtualSpec is a named placeholder solved by a registered resolver.
	virtualSpec struct {
		name string
	}

	// quoteSpec forces filename-style quoting on a non-path atom.
	quoteSpec struct {
		sub Spec
	}
)

func (emptySpec) isSpec() {}
func (seqSpec) isSpec() {}
func (atomSpec) isSpec() {}
func (pathSpec) isSpec() {}
func (shSpec) isSpec() {}
func (tagsSpec) isSpec() {}
func (virtualSpec) isSpec() {}
func (quoteSpec) isSpec() {}

// Nop is the command that does nothing. It is the identity element of Seq.
func Nop() Command {
	return nopCmd{}
}

// Seq combines commands into an ordered sequence. Nested sequences and
// Nops are flattened away by Reduce.
func Seq(cmds ...Command) Command {
	return seqCmd{cmds: cmds}
}

// Cmd builds a single command from a spec tree.
func Cmd(spec Spec) Command {
	return cmdCmd{spec: spec}
}

// N is the empty fragment.
func N() Spec {
	return emptySpec{}
}

// S groups specs into a sub-sequence.
func S(items ...Spec) Spec {
	return seqSpec{items: items}
}

// A is a literal argument.
func A(val string) Spec {
	return atomSpec{val: val}
}

// P is a path argument.
func P(path string) Spec {
	return pathSpec{path: path}
}

// Px is a path argument that additionally triggers the registered
// per-target hook when rendered.
func Px(path string) Spec {
	return pathSpec{path: path, hook: true}
}

// Sh is raw shell text, inserted verbatim.
func Sh(text string) Spec {
	return shSpec{text: text}
}

// T is a placeholder replaced by every active flag fragment of the
// registry, in registration order.
func T(set tags.Set) Spec {
	return tagsSpec{set: set}
}

// V is a named virtual-command placeholder.
func V(name string) Spec {
	return virtualSpec{name: name}
}

// Quote forces filename-style quoting on the wrapped spec, which must
// reduce to a single plain-string leaf.
func Quote(sub Spec) Spec {
	return quoteSpec{sub: sub}
}
