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

// Package chunk implements the Chunk/Scope work-item model and the
// context-resolution protocol (spec §4.2): the one place Name/TypeRef
// tags ever get bound to printed strings. It is deliberately not split
// further from the printer's concerns that touch it (spec §1: "these
// three parts cannot be separated") even though it lives in its own
// package for readability.
//
// Grounded on cuelang.org/go/cue/ast/astutil/resolve.go's scope walk
// (push a scope before visiting a block, look up through outer links,
// pop after) — adapted from resolving CUE identifiers against lexical
// ast.Node bindings to resolving class-name/type-variable scopes against
// priomap-backed printed-string bindings.
package chunk

import (
	"sort"

	"github.com/cuelang-notation/jnotate/doc"
	"github.com/cuelang-notation/jnotate/naming"
	"github.com/cuelang-notation/jnotate/priomap"
	"github.com/mpvl/unique"
)

// Scope is a (context, className) pair stacked during emission.
type Scope struct {
	Context   doc.Document
	ClassName naming.ClassName
}

// Chunk is an immutable work item: a document plus its ambient emission
// state. Every "with"-style method below returns a new Chunk; none
// mutates the receiver, so independent branches (the printer's main stack
// vs. a flat-fit lookahead snapshot of it) never alias each other's
// scopes or suppression sets.
type Chunk struct {
	Document doc.Document
	Indent   string
	IndentBy string
	Flat     bool
	Names    *priomap.Map[doc.Tag, string]
	Scopes   []Scope
	Package  string
	// Suppressed accumulates NoImport's suppressed canonical names as
	// TypeRef-resolution consults it; see DESIGN.md's Open Question #1
	// decision (lazy, chunk-level NoImport rather than a precomputed
	// rewritten subtree).
	Suppressed map[string]bool
}

// With returns a copy of c scheduled to process d instead.
func (c Chunk) With(d doc.Document) Chunk {
	c.Document = d
	return c
}

// Indented returns a copy of c with prefix appended to the current
// indent.
func (c Chunk) Indented(prefix string) Chunk {
	c.Indent = c.Indent + prefix
	return c
}

// AsFlat returns a copy of c with Flat forced true. Flat is hereditary:
// once forced, nothing un-forces it for the chunks derived from this one.
func (c Chunk) AsFlat() Chunk {
	c.Flat = true
	return c
}

// WithNames returns a copy of c with a different ambient name map.
func (c Chunk) WithNames(names *priomap.Map[doc.Tag, string]) Chunk {
	c.Names = names
	return c
}

// WithScope returns a copy of c with s pushed onto the scope stack.
func (c Chunk) WithScope(s Scope) Chunk {
	next := make([]Scope, len(c.Scopes), len(c.Scopes)+1)
	copy(next, c.Scopes)
	c.Scopes = append(next, s)
	return c
}

// WithSuppressed returns a copy of c with extra canonical names added to
// the suppressed (force-qualify) set.
func (c Chunk) WithSuppressed(extra map[string]bool) Chunk {
	if len(extra) == 0 {
		return c
	}
	merged := make(map[string]bool, len(c.Suppressed)+len(extra))
	for k := range c.Suppressed {
		merged[k] = true
	}
	for k := range extra {
		merged[k] = true
	}
	c.Suppressed = merged
	return c
}

// TopScope returns the innermost active scope, if any.
func (c Chunk) TopScope() (Scope, bool) {
	if len(c.Scopes) == 0 {
		return Scope{}, false
	}
	return c.Scopes[len(c.Scopes)-1], true
}

// UsableRef implements the TypeRef resolution shim (spec §4.4): the key
// to actually look up in names for ref. For a type-variable reference it
// searches for another type-variable key already bound whose printable
// name matches ref's, so two syntactically distinct type-variable
// objects sharing a bound name resolve to the same printed string. Any
// other reference is returned unchanged. NoImport suppression is not
// applied here; ResolveTypeRef handles it.
func UsableRef(names *priomap.Map[doc.Tag, string], ref doc.TypeRef) doc.Tag {
	if !ref.TypeVariable {
		return ref
	}
	for _, k := range names.Keys() {
		other, ok := k.(doc.TypeRef)
		if !ok || !other.TypeVariable || other == ref {
			continue
		}
		if other.Name == ref.Name {
			return other
		}
	}
	return ref
}

// ResolveTypeRef is what the printer and its flat-fit lookahead actually
// call to emit a TypeRef: it applies NoImport suppression first (emit the
// fully qualified form, bypassing the name map entirely, per DESIGN.md's
// Open Question #1 decision), then falls back to UsableRef's
// type-variable equivalence shim and a plain map lookup.
func ResolveTypeRef(names *priomap.Map[doc.Tag, string], suppressed map[string]bool, ref doc.TypeRef) (string, bool) {
	if !ref.TypeVariable && suppressed[ref.Class.Qualified()] {
		return ref.Class.Qualified(), true
	}
	return names.Get(UsableRef(names, ref))
}

// ResolveContext runs the §4.2 protocol that augments c's name map and
// scope stack before the Context's child document is scheduled. ctxDoc
// must be a Context document; the caller (the printer, or this function's
// own flat-fit lookahead twin) is expected to have dispatched on that
// already.
func ResolveContext(c Chunk, ctxDoc doc.Document) (Chunk, error) {
	var (
		name     string
		hasName  bool
		inner    doc.Document
		typeVars map[string]bool
	)
	ctxDoc.Visit(doc.FuncVisitor{
		OnContext: func(n string, has bool, d doc.Document, tv map[string]bool) {
			name, hasName, inner, typeVars = n, has, d, tv
		},
	})

	// Step 1: compute className.
	var className naming.ClassName
	top, hasTop := c.TopScope()
	switch {
	case !hasTop:
		simple := name
		if !hasName {
			simple = "Object"
		}
		className = naming.Package(c.Package, simple)
	case hasName:
		className = top.ClassName.Nested(name)
	default:
		className = top.ClassName
	}

	// Step 2: namesInScope, the simple names that must not be captured —
	// the full scope stack including the scope this call is establishing,
	// each contributing its own immediate child-context names and
	// type-variable names.
	var rawNames []string
	for _, s := range c.Scopes {
		rawNames = append(rawNames, immediateChildContextNames(s.Context)...)
		for tv := range contextTypeVars(s.Context) {
			rawNames = append(rawNames, tv)
		}
	}
	rawNames = append(rawNames, immediateChildContextNames(ctxDoc)...)
	for tv := range typeVars {
		rawNames = append(rawNames, tv)
	}
	namesInScope := dedupedSimpleNames(rawNames)

	newNames := c.Names.ImmutableCopy()
	top0 := className.TopLevel()

	// Step 3: shorten existing entries nested under the new top-level
	// class, relative to the new scope.
	for _, k := range newNames.Keys() {
		ref, ok := k.(doc.TypeRef)
		if !ok || ref.TypeVariable {
			continue
		}
		if !ref.Class.IsStrictlyNestedUnder(top0) {
			continue
		}
		shortened := ref.Class.ShortenRelativeTo(className, func(s string) bool { return namesInScope[s] })
		for _, k2 := range newNames.Keys() {
			if k2 == k {
				continue
			}
			if v2, ok := newNames.Get(k2); ok && v2 == shortened {
				newNames.Remove(k2)
			}
		}
		newNames.Remove(k)
		newNames.Put(k, shortened)
	}

	// Step 4: bind this context's type variables, superseding any other
	// entry currently holding that printed name.
	for tv := range typeVars {
		newNames.RemoveAllWithValue(tv)
		newNames.Put(doc.NewTypeVar(tv), tv)
	}

	// Step 5: insert the child's intrinsic names, promoting collisions
	// with a trailing "_" until unique.
	for tag, suggestion := range inner.Names() {
		if _, exists := newNames.Get(tag); exists {
			continue
		}
		final := suggestion
		for newNames.ContainsValue(final) {
			final += "_"
		}
		newNames.Put(tag, final)
	}

	// Step 6: push the new scope and schedule the child.
	next := c.WithNames(newNames).WithScope(Scope{Context: ctxDoc, ClassName: className})
	next.Document = inner
	return next, nil
}

func immediateChildContextNames(scopeCtx doc.Document) []string {
	var names []string
	var inner doc.Document
	scopeCtx.Visit(doc.FuncVisitor{
		OnContext: func(_ string, _ bool, d doc.Document, _ map[string]bool) { inner = d },
	})
	var walk func(doc.Document)
	walk = func(d doc.Document) {
		d.Visit(doc.FuncVisitor{
			OnConcat: func(children []doc.Document) {
				for _, c := range children {
					walk(c)
				}
			},
			OnChoice:  func(a, b doc.Document) { walk(a); walk(b) },
			OnFlat:    func(d doc.Document) { walk(d) },
			OnIndent:  func(_ string, _ bool, d doc.Document) { walk(d) },
			OnLiteral: func(d doc.Document) { walk(d) },
			OnStatement: func(d doc.Document) { walk(d) },
			OnContext: func(n string, has bool, _ doc.Document, _ map[string]bool) {
				if has {
					names = append(names, n)
				}
				// immediate only: do not descend into the nested context.
			},
			OnNoImport: func(d doc.Document, _ map[string]bool) { walk(d) },
		})
	}
	walk(inner)
	return names
}

func contextTypeVars(scopeCtx doc.Document) map[string]bool {
	var tv map[string]bool
	scopeCtx.Visit(doc.FuncVisitor{
		OnContext: func(_ string, _ bool, _ doc.Document, t map[string]bool) { tv = t },
	})
	return tv
}

// dedupedSimpleNames sorts and dedupes the simple names collected while
// walking the scope stack (one or more sibling scopes can both declare a
// child with the same name, and a type variable can shadow one) via
// mpvl/unique, then turns the result into a membership set.
func dedupedSimpleNames(names []string) map[string]bool {
	names = append([]string(nil), names...)
	sort.Strings(names)
	unique.Strings(&names)
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out
}
