// SPDX-License-Identifier: MPL-2.0

package command

import (
	"sync"

	"github.com/ivg/ocamlbuild/pkg/tags"
)

// Resolver produces the spec a virtual command stands for. It may fail when
// no concrete tool can be found in the current environment.
type Resolver func() (Spec, error)

// flagBinding pairs a tag guard with the fragment it contributes. The
// binding is active under a given tag set iff the guard is subsumed by it;
// an empty guard is always active.
type flagBinding struct {
	guard    tags.Set
	fragment []Spec
}

// Registry holds the process-wide flag bindings, virtual-command resolvers,
// and the per-target path hook. It is populated during a setup phase and
// read thereafter; the mutex keeps stray late writers from corrupting
// concurrent reductions, but interleaving writes with reductions is not a
// supported mode of operation.
type Registry struct {
	mu       sync.RWMutex
	bindings []flagBinding
	virtuals map[string]Resolver
	pathHook func(path string)
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{virtuals: make(map[string]Resolver)}
}

// Flag appends a binding: whenever guard is subsumed by the active tag set,
// the fragment is spliced into every T placeholder. Bindings are replayed
// in registration order, which makes reduction deterministic for a fixed
// registry state.
func (r *Registry) Flag(guard tags.Set, fragment ...Spec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings = append(r.bindings, flagBinding{guard: guard, fragment: fragment})
}

// SetVirtual registers the resolver for name, overwriting any previous one.
func (r *Registry) SetVirtual(name string, resolver Resolver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.virtuals[name] = resolver
}

// SetPathHook registers the callback fired with the literal path text of
// every Px atom as it is rendered. A nil hook disables the callback;
// rendering Px without a hook is a no-op, not an error.
func (r *Registry) SetPathHook(hook func(path string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pathHook = hook
}

// activeFragments returns, in registration order, the fragments of every
// binding whose guard is subsumed both by the tag set carried on the T node
// and by the ambient active set. The node set scopes which flags the
// placeholder can pull in; the ambient set gates them globally.
func (r *Registry) activeFragments(node, active tags.Set) [][]Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out [][]Spec
	for _, b := range r.bindings {
		if tags.DoesMatch(b.guard, node) && tags.DoesMatch(b.guard, active) {
			out = append(out, b.fragment)
		}
	}
	return out
}

// virtual returns the resolver registered for name, or nil.
func (r *Registry) virtual(name string) Resolver {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.virtuals[name]
}

// hook returns the registered path hook, or nil.
func (r *Registry) hook() func(path string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pathHook
}
