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

// Package naming implements ClassName: a package-qualified, dotted nesting
// path used by the context-resolution protocol to compute simple-vs-
// qualified printed forms for nested classes (spec §4.2).
//
// Grounded on cuelang.org/go/cue/ast/importpath.go's dotted-path splitting
// and joining for import paths, adapted from import-path segments to
// class-nesting segments: the operation the resolver actually needs is
// Nested (push one more simple name) and ShortenRelativeTo (find the
// shortest unambiguous suffix relative to another scope), neither of
// which an import path needs.
package naming

import "strings"

// ClassName identifies a (possibly nested) class within a package. Both
// fields are plain strings so ClassName stays comparable and usable as a
// map key or struct field directly — a slice-based representation would
// not be.
type ClassName struct {
	pkg string
	rel string // dot-joined path of simple names, e.g. "Outer.Inner.Deep"
}

// Package constructs a top-level class name: the given package plus one
// simple name.
func Package(pkg, simple string) ClassName {
	return ClassName{pkg: pkg, rel: simple}
}

// Nested derives the class name for a class lexically nested directly
// inside c, with the given simple name.
func (c ClassName) Nested(simple string) ClassName {
	return ClassName{pkg: c.pkg, rel: c.rel + "." + simple}
}

// PackageName returns the enclosing package, or "" if none.
func (c ClassName) PackageName() string { return c.pkg }

// Simple returns the class's own simple (innermost) name.
func (c ClassName) Simple() string {
	if i := strings.LastIndexByte(c.rel, '.'); i >= 0 {
		return c.rel[i+1:]
	}
	return c.rel
}

// Segments returns the dotted nesting path as simple names, outermost
// first, excluding the package.
func (c ClassName) Segments() []string {
	if c.rel == "" {
		return nil
	}
	return strings.Split(c.rel, ".")
}

// TopLevel returns the outermost enclosing class name: for a top-level
// class this is c itself.
func (c ClassName) TopLevel() ClassName {
	if i := strings.IndexByte(c.rel, '.'); i >= 0 {
		return ClassName{pkg: c.pkg, rel: c.rel[:i]}
	}
	return c
}

// Qualified returns the fully package-qualified form, e.g.
// "p.Outer.Inner.Deep".
func (c ClassName) Qualified() string {
	if c.pkg == "" {
		return c.rel
	}
	return c.pkg + "." + c.rel
}

func (c ClassName) String() string { return c.Qualified() }

// IsStrictlyNestedUnder reports whether c is lexically nested somewhere
// inside top (which must itself be a top-level class name): same package,
// and top's path a strict, dot-bounded prefix of c's path.
func (c ClassName) IsStrictlyNestedUnder(top ClassName) bool {
	if c.pkg != top.pkg {
		return false
	}
	return strings.HasPrefix(c.rel, top.rel+".")
}

// ShortenRelativeTo computes the shortest dotted suffix of c's nesting
// path that is unambiguous when printed from within scope: it strips the
// longest common nesting prefix shared with scope, then backs off (taking
// more trailing segments, i.e. a longer but still relative name) for as
// long as avoid reports that the candidate's leading segment would
// capture a name already meaningful in scope. Falls back to the fully
// package-qualified form if every candidate is blocked.
func (c ClassName) ShortenRelativeTo(scope ClassName, avoid func(simple string) bool) string {
	cs, ss := c.Segments(), scope.Segments()
	common := 0
	for common < len(cs) && common < len(ss) && cs[common] == ss[common] {
		common++
	}
	for start := common; start >= 1 && start <= len(cs); start-- {
		cand := cs[start:]
		if len(cand) == 0 {
			continue
		}
		if avoid == nil || !avoid(cand[0]) {
			return strings.Join(cand, ".")
		}
	}
	return c.Qualified()
}
