// Copyright 2026 The jnotate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package priomap implements PriorityMap<K,V>: a map whose values are
// ordered stacks per key, so a nested scope can shadow an outer binding and
// have it restored automatically on pop.
//
// Grounded on cuelang.org/go/cue/ast/astutil/resolve.go's scope type (a
// chained map-with-outer-link used to shadow identifiers while walking
// nested blocks), adapted from a linked scope chain to an explicit
// per-key value stack: unlike a scope chain, PriorityMap additionally
// needs ContainsValue over tops only and RemoveValue (strip every
// occurrence of a value from one key's stack), neither of which a pure
// outer-link chain exposes without a full walk.
package priomap

// Map is a stack-per-key map. The zero value is not usable; construct one
// with New.
type Map[K comparable, V comparable] struct {
	stacks map[K][]V
}

// New returns an empty Map.
func New[K comparable, V comparable]() *Map[K, V] {
	return &Map[K, V]{stacks: make(map[K][]V)}
}

// Get returns the top of k's stack, if any.
func (m *Map[K, V]) Get(k K) (V, bool) {
	s := m.stacks[k]
	if len(s) == 0 {
		var zero V
		return zero, false
	}
	return s[len(s)-1], true
}

// Put pushes v onto k's stack and returns it (the new top).
func (m *Map[K, V]) Put(k K, v V) V {
	m.stacks[k] = append(m.stacks[k], v)
	return v
}

// Remove pops the top of k's stack, restoring whatever was shadowed
// beneath it. Reports the popped value, if there was one.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	s := m.stacks[k]
	if len(s) == 0 {
		var zero V
		return zero, false
	}
	top := s[len(s)-1]
	s = s[:len(s)-1]
	if len(s) == 0 {
		delete(m.stacks, k)
	} else {
		m.stacks[k] = s
	}
	return top, true
}

// RemoveValue removes every occurrence of v from k's stack, at any depth,
// and reports how many were removed.
func (m *Map[K, V]) RemoveValue(k K, v V) int {
	s := m.stacks[k]
	if len(s) == 0 {
		return 0
	}
	kept := s[:0:0]
	removed := 0
	for _, x := range s {
		if x == v {
			removed++
			continue
		}
		kept = append(kept, x)
	}
	if len(kept) == 0 {
		delete(m.stacks, k)
	} else {
		m.stacks[k] = kept
	}
	return removed
}

// RemoveAllWithValue removes every occurrence of v across every key's
// stack, at any depth. Used by the context-resolution protocol (spec step
// 4) which must un-bind a superseded value wherever it appears, not just
// at one key.
func (m *Map[K, V]) RemoveAllWithValue(v V) int {
	removed := 0
	for k := range m.stacks {
		removed += m.RemoveValue(k, v)
	}
	return removed
}

// ContainsValue reports whether any key's top-of-stack equals v. This is
// the membership test backing collision detection: only the currently
// visible (top) binding counts, per the printed-name uniqueness
// requirement.
func (m *Map[K, V]) ContainsValue(v V) bool {
	for _, s := range m.stacks {
		if len(s) > 0 && s[len(s)-1] == v {
			return true
		}
	}
	return false
}

// Keys returns the set of keys with at least one bound value, in
// unspecified order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.stacks))
	for k, s := range m.stacks {
		if len(s) > 0 {
			keys = append(keys, k)
		}
	}
	return keys
}

// Entries returns the by-key top-of-stack view as key/value pairs.
func (m *Map[K, V]) Entries() map[K]V {
	out := make(map[K]V, len(m.stacks))
	for k, s := range m.stacks {
		if len(s) > 0 {
			out[k] = s[len(s)-1]
		}
	}
	return out
}

// Values returns the by-key top-of-stack values, in unspecified order.
func (m *Map[K, V]) Values() []V {
	vals := make([]V, 0, len(m.stacks))
	for _, s := range m.stacks {
		if len(s) > 0 {
			vals = append(vals, s[len(s)-1])
		}
	}
	return vals
}

// ImmutableCopy returns a deep snapshot: mutating the returned Map never
// affects m, and vice versa.
func (m *Map[K, V]) ImmutableCopy() *Map[K, V] {
	cp := New[K, V]()
	for k, s := range m.stacks {
		if len(s) == 0 {
			continue
		}
		dup := make([]V, len(s))
		copy(dup, s)
		cp.stacks[k] = dup
	}
	return cp
}
