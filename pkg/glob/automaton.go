// SPDX-License-Identifier: MPL-2.0

package glob

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Compiled evaluation: each glob leaf is translated to a Thompson NFA and
// determinized into a DFA over the byte alphabet. A promoted Globber then
// answers each glob leaf in O(len(path)) regardless of pattern shape; the
// boolean combinators on top stay a plain tree walk over leaf verdicts.

// maxDFAStates bounds subset construction. Pathological alternation-heavy
// patterns that would blow past it stay interpreted instead.
const maxDFAStates = 2048

type nfaEdge struct {
	lo, hi byte
	to     int
}

type nfaState struct {
	eps   []int
	edges []nfaEdge
}

type nfa struct {
	states []nfaState
	start  int
	accept int
}

func buildNFA(atoms []atom) *nfa {
	b := &nfaBuilder{}
	start := b.newState()
	accept := b.compileSeq(atoms, start)
	return &nfa{states: b.states, start: start, accept: accept}
}

type nfaBuilder struct {
	states []nfaState
}

func (b *nfaBuilder) newState() int {
	b.states = append(b.states, nfaState{})
	return len(b.states) - 1
}

func (b *nfaBuilder) addEps(from, to int) {
	b.states[from].eps = append(b.states[from].eps, to)
}

func (b *nfaBuilder) addEdge(from int, lo, hi byte, to int) {
	b.states[from].edges = append(b.states[from].edges, nfaEdge{lo: lo, hi: hi, to: to})
}

// compileSeq threads the atom sequence from the given state and returns the
// exit state reached after the whole sequence.
func (b *nfaBuilder) compileSeq(atoms []atom, from int) int {
	cur := from
	for _, a := range atoms {
		cur = b.compileAtom(a, cur)
	}
	return cur
}

func (b *nfaBuilder) compileAtom(a atom, from int) int {
	switch at := a.(type) {
	case charAtom:
		next := b.newState()
		b.addEdge(from, at.c, at.c, next)
		return next
	case oneAtom:
		next := b.newState()
		b.addEdge(from, 0, 0xff, next)
		return next
	case starAtom:
		loop := b.newState()
		b.addEps(from, loop)
		b.addEdge(loop, 0, 0xff, loop)
		return loop
	case classAtom:
		next := b.newState()
		for _, r := range at.ranges {
			b.addEdge(from, r.lo, r.hi, next)
		}
		return next
	case altAtom:
		out := b.newState()
		for _, branch := range at.branches {
			end := b.compileSeq(branch, from)
			b.addEps(end, out)
		}
		return out
	default:
		panic("glob: unknown atom")
	}
}

// dfa is the determinized form of a single glob leaf. trans[state][b] is the
// next state or -1 when the byte is rejected.
type dfa struct {
	trans  [][256]int16
	accept []bool
}

func (d *dfa) run(s string) bool {
	state := int16(0)
	for i := 0; i < len(s); i++ {
		state = d.trans[state][s[i]]
		if state < 0 {
			return false
		}
	}
	return d.accept[state]
}

// determinize performs subset construction over the NFA. It fails when the
// state count crosses maxDFAStates; callers fall back to interpretation.
func determinize(n *nfa) (*dfa, error) {
	start := n.closure([]int{n.start})

	index := map[string]int16{setKey(start): 0}
	sets := [][]int{start}
	d := &dfa{
		trans:  make([][256]int16, 1),
		accept: []bool{containsState(start, n.accept)},
	}

	for si := 0; si < len(sets); si++ {
		set := sets[si]
		for b := 0; b < 256; b++ {
			next := n.move(set, byte(b))
			if len(next) == 0 {
				d.trans[si][b] = -1
				continue
			}
			key := setKey(next)
			id, ok := index[key]
			if !ok {
				if len(sets) >= maxDFAStates {
					return nil, fmt.Errorf("pattern too complex to determinize (over %d states)", maxDFAStates)
				}
				id = int16(len(sets))
				index[key] = id
				sets = append(sets, next)
				d.trans = append(d.trans, [256]int16{})
				d.accept = append(d.accept, containsState(next, n.accept))
			}
			d.trans[si][b] = id
		}
	}
	return d, nil
}

// closure returns the epsilon closure of the given state set, sorted.
func (n *nfa) closure(states []int) []int {
	seen := make(map[int]bool, len(states))
	stack := append([]int(nil), states...)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[s] {
			continue
		}
		seen[s] = true
		stack = append(stack, n.states[s].eps...)
	}
	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// move returns the epsilon closure of every state reachable from the set on
// byte b.
func (n *nfa) move(states []int, b byte) []int {
	var targets []int
	for _, s := range states {
		for _, e := range n.states[s].edges {
			if e.lo <= b && b <= e.hi {
				targets = append(targets, e.to)
			}
		}
	}
	if len(targets) == 0 {
		return nil
	}
	return n.closure(targets)
}

func containsState(sorted []int, s int) bool {
	i := sort.SearchInts(sorted, s)
	return i < len(sorted) && sorted[i] == s
}

func setKey(sorted []int) string {
	var sb strings.Builder
	for _, s := range sorted {
		sb.WriteString(strconv.Itoa(s))
		sb.WriteByte(',')
	}
	return sb.String()
}
