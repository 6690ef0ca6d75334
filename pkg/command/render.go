// SPDX-License-Identifier: MPL-2.0

package command

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// StringOfCommand renders a fully reduced command as a POSIX shell line.
// A and P atoms are quoted per shell literal-argument rules, Sh fragments
// are inserted verbatim, Quote forces filename-style quoting even on
// non-path atoms, and Px renders exactly like P but additionally fires the
// registered per-target hook with the literal path text. Sequences render
// as ";"-joined lines and Nop renders as the empty string.
//
// Quoting through the shell syntax layer is what preserves argument
// boundaries when structured fragments sit next to verbatim Sh text.
//
// Passing a command that still contains T or V placeholders is a
// programming error and yields a *ContractViolationError; reduce first.
func (r *Registry) StringOfCommand(c Command) (string, error) {
	switch n := c.(type) {
	case nopCmd:
		return "", nil
	case seqCmd:
		var lines []string
		for _, sub := range n.cmds {
			line, err := r.StringOfCommand(sub)
			if err != nil {
				return "", err
			}
			if line != "" {
				lines = append(lines, line)
			}
		}
		return strings.Join(lines, "; "), nil
	case cmdCmd:
		return r.renderSpec(n.spec)
	default:
		return "", &ContractViolationError{Msg: "unknown command variant"}
	}
}

// renderSpec renders a spec tree as space-joined words. Reduction has
// usually flattened the tree already; nested sequences are tolerated here
// so callers can render hand-built leaf specs directly.
func (r *Registry) renderSpec(s Spec) (string, error) {
	var words []string
	if err := r.renderInto(&words, s); err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

func (r *Registry) renderInto(words *[]string, s Spec) error {
	switch n := s.(type) {
	case emptySpec:
		return nil
	case seqSpec:
		for _, sub := range n.items {
			if err := r.renderInto(words, sub); err != nil {
				return err
			}
		}
		return nil
	case atomSpec:
		word, err := quoteWord(n.val)
		if err != nil {
			return err
		}
		*words = append(*words, word)
		return nil
	case pathSpec:
		if n.hook {
			if hook := r.hook(); hook != nil {
				hook(n.path)
			}
		}
		word, err := quoteWord(n.path)
		if err != nil {
			return err
		}
		*words = append(*words, word)
		return nil
	case shSpec:
		if n.text != "" {
			*words = append(*words, n.text)
		}
		return nil
	case quoteSpec:
		raw, err := rawString(n.sub)
		if err != nil {
			return err
		}
		word, err := quoteWord(raw)
		if err != nil {
			return err
		}
		*words = append(*words, word)
		return nil
	case tagsSpec:
		return &ContractViolationError{Msg: "unreduced T placeholder in rendered command"}
	case virtualSpec:
		return &ContractViolationError{Msg: fmt.Sprintf("unreduced V placeholder %q in rendered command", n.name)}
	default:
		return &ContractViolationError{Msg: "unknown spec variant"}
	}
}

// rawString extracts the plain string value of a leaf wrapped by Quote.
func rawString(s Spec) (string, error) {
	switch n := s.(type) {
	case atomSpec:
		return n.val, nil
	case pathSpec:
		return n.path, nil
	case shSpec:
		return n.text, nil
	default:
		return "", &ContractViolationError{Msg: "Quote must wrap a plain-string leaf, not a sequence"}
	}
}

// quoteWord escapes a single argument for the destination shell.
func quoteWord(word string) (string, error) {
	quoted, err := syntax.Quote(word, syntax.LangPOSIX)
	if err != nil {
		return "", fmt.Errorf("cannot quote argument %q: %w", word, err)
	}
	return quoted, nil
}
