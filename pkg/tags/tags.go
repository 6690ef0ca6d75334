// SPDX-License-Identifier: MPL-2.0

// Package tags implements the ordered tag sets used to classify build
// actions and filesystem paths. A Set is an immutable, duplicate-free
// collection of opaque string tags with canonical (lexicographic) element
// order, so two sets built from the same elements in any insertion order
// compare equal.
//
// The single predicate gating all tag-guarded behavior is DoesMatch: a
// required set matches an active set iff every required tag is present.
// The empty required set matches everything.
package tags

import (
	"sort"
	"strings"
)

// Set is an immutable ordered set of tags. The zero value is the empty set
// and is ready to use.
type Set struct {
	elems []string
}

// New builds a Set from the given tags, deduplicating and ordering them.
func New(elems ...string) Set {
	return Of(elems)
}

// Of builds a Set from a slice of tags, deduplicating and ordering them.
func Of(elems []string) Set {
	if len(elems) == 0 {
		return Set{}
	}
	sorted := make([]string, len(elems))
	copy(sorted, elems)
	sort.Strings(sorted)

	out := sorted[:0]
	for i, e := range sorted {
		if i == 0 || sorted[i-1] != e {
			out = append(out, e)
		}
	}
	return Set{elems: out}
}

// Union returns the set containing every tag of a and b.
func Union(a, b Set) Set {
	if a.Len() == 0 {
		return b
	}
	if b.Len() == 0 {
		return a
	}
	merged := make([]string, 0, len(a.elems)+len(b.elems))
	merged = append(merged, a.elems...)
	merged = append(merged, b.elems...)
	return Of(merged)
}

// Plus returns a copy of the set with tag added.
func (s Set) Plus(tag string) Set {
	if s.Contains(tag) {
		return s
	}
	return Of(append(s.Elements(), tag))
}

// Minus returns a copy of the set with tag removed. Removing an absent tag
// is a no-op.
func (s Set) Minus(tag string) Set {
	i := sort.SearchStrings(s.elems, tag)
	if i >= len(s.elems) || s.elems[i] != tag {
		return s
	}
	out := make([]string, 0, len(s.elems)-1)
	out = append(out, s.elems[:i]...)
	out = append(out, s.elems[i+1:]...)
	return Set{elems: out}
}

// PlusOpt returns a copy of the set with the optional tag added, or the set
// unchanged when tag is nil.
func (s Set) PlusOpt(tag *string) Set {
	if tag == nil {
		return s
	}
	return s.Plus(*tag)
}

// MinusOpt returns a copy of the set with the optional tag removed, or the
// set unchanged when tag is nil.
func (s Set) MinusOpt(tag *string) Set {
	if tag == nil {
		return s
	}
	return s.Minus(*tag)
}

// Contains reports whether tag is an element of the set.
func (s Set) Contains(tag string) bool {
	i := sort.SearchStrings(s.elems, tag)
	return i < len(s.elems) && s.elems[i] == tag
}

// Len returns the number of tags in the set.
func (s Set) Len() int {
	return len(s.elems)
}

// Elements returns the tags in canonical order. The returned slice is a
// copy; mutating it does not affect the set.
func (s Set) Elements() []string {
	if len(s.elems) == 0 {
		return nil
	}
	out := make([]string, len(s.elems))
	copy(out, s.elems)
	return out
}

// Equal reports whether both sets contain exactly the same tags.
func (s Set) Equal(other Set) bool {
	if len(s.elems) != len(other.elems) {
		return false
	}
	for i, e := range s.elems {
		if other.elems[i] != e {
			return false
		}
	}
	return true
}

// String renders the set as a comma-separated list in canonical order.
func (s Set) String() string {
	return strings.Join(s.elems, ",")
}

// DoesMatch reports whether every tag in required is present in active.
// An empty required set matches any active set, including the empty one.
func DoesMatch(required, active Set) bool {
	if len(required.elems) > len(active.elems) {
		return false
	}
	for _, tag := range required.elems {
		if !active.Contains(tag) {
			return false
		}
	}
	return true
}
