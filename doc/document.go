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

// Package doc implements the notation document algebra: an immutable tree
// of layout operators (text, newline, concat, choice, flat, indent,
// statement, name, typeRef, context, suppressImports/noImport) together
// with the smart constructors that normalize it and the three derived
// summaries (names, imports, childContexts) every node carries.
//
// Grounded on cuelang.org/go/cue/ast.go's tagged-interface node hierarchy
// (a Node interface with exprNode/declNode marker methods distinguishing
// variants, plus a comments-carrying embedding for cross-cutting payload):
// adapted from a multi-interface AST (Expr/Decl/Clause/Label) describing
// parsed CUE syntax with source positions to a single closed Document sum
// type describing emission layout, carrying names/imports/childContexts
// computed once at construction the same way the teacher computes
// Pos()/End() once at parse time. Document itself is a concrete struct
// (not a bare interface) specifically so it can carry fluent builder
// methods (Then, Or, Flat, Indent, IndentWith) alongside the
// free-function combinators, per the corpus's "expose both" convention.
package doc

import "fmt"

// node is the sealed variant payload. Only this package may implement it;
// Document.Visit is the double-dispatch boundary everything outside this
// package uses to inspect a node's shape (the printer's emit pass and its
// flat-fit lookahead, and the chunk package's context resolver, are both
// built on Visit).
type node interface {
	isNode()
}

// Document is an immutable layout-operator tree node plus its three
// derived summaries. The zero Document is not a valid document; use Empty
// or one of the constructors.
type Document struct {
	n       node
	names   map[Tag]string
	imports map[TypeRef]bool
	// ctxs holds every Context document enclosed in this subtree,
	// including this node itself when it is a Context. Membership here
	// is informational: it is exposed through ChildContexts, and neither
	// the printer nor chunk's context resolution reads it; duplicates are
	// harmless.
	ctxs []Document
}

func (emptyNode) isNode()           {}
func (textNode) isNode()            {}
func (newlineNode) isNode()         {}
func (concatNode) isNode()          {}
func (choiceNode) isNode()          {}
func (flatNode) isNode()            {}
func (indentNode) isNode()          {}
func (nameNode) isNode()            {}
func (typeRefNode) isNode()         {}
func (staticImportRefNode) isNode() {}
func (literalNode) isNode()         {}
func (statementNode) isNode()       {}
func (contextNode) isNode()         {}
func (noImportNode) isNode()        {}

type emptyNode struct{}
type textNode struct{ s string }
type newlineNode struct{}
type concatNode struct{ children []Document }
type choiceNode struct{ a, b Document }
type flatNode struct{ d Document }
type indentNode struct {
	prefix  string
	explicit bool
	d       Document
}
type nameNode struct {
	tag  Tag
	hint string
}
type typeRefNode struct{ ref TypeRef }
type staticImportRefNode struct {
	owner  TypeRef
	member string
}
type literalNode struct{ d Document }
type statementNode struct{ d Document }
type contextNode struct {
	name     string
	hasName  bool
	d        Document
	typeVars map[string]bool
}
type noImportNode struct {
	d          Document
	suppressed map[string]bool
}

// IsValid reports whether d was built through a constructor (as opposed to
// being a zero Document{}). print rejects an invalid document as a Usage
// error (spec §7 kind 4).
func (d Document) IsValid() bool { return d.n != nil }

// IsEmpty reports whether d is the Empty document.
func (d Document) IsEmpty() bool {
	_, ok := d.n.(emptyNode)
	return ok
}

// Names returns the tag -> suggested-name summary for this subtree.
func (d Document) Names() map[Tag]string { return d.names }

// Imports returns the set of non-type-variable TypeRefs referenced
// anywhere in this subtree.
func (d Document) Imports() map[TypeRef]bool { return d.imports }

// ChildContexts returns every Context document enclosed in this subtree
// (including d itself, if d is a Context).
func (d Document) ChildContexts() []Document { return d.ctxs }

// Visitor receives exactly one callback per Document variant. Use
// FuncVisitor to implement only the callbacks a given traversal cares
// about.
type Visitor interface {
	Empty()
	Text(s string)
	NewLine()
	Concat(children []Document)
	Choice(a, b Document)
	Flat(d Document)
	Indent(prefix string, explicit bool, d Document)
	Name(tag Tag, hint string)
	TypeRef(ref TypeRef)
	StaticImportRef(owner TypeRef, member string)
	Literal(d Document)
	Statement(d Document)
	Context(name string, hasName bool, d Document, typeVars map[string]bool)
	NoImport(d Document, suppressed map[string]bool)
}

// Visit dispatches to the single Visitor callback matching d's variant.
func (d Document) Visit(v Visitor) {
	switch n := d.n.(type) {
	case emptyNode:
		v.Empty()
	case textNode:
		v.Text(n.s)
	case newlineNode:
		v.NewLine()
	case concatNode:
		v.Concat(n.children)
	case choiceNode:
		v.Choice(n.a, n.b)
	case flatNode:
		v.Flat(n.d)
	case indentNode:
		v.Indent(n.prefix, n.explicit, n.d)
	case nameNode:
		v.Name(n.tag, n.hint)
	case typeRefNode:
		v.TypeRef(n.ref)
	case staticImportRefNode:
		v.StaticImportRef(n.owner, n.member)
	case literalNode:
		v.Literal(n.d)
	case statementNode:
		v.Statement(n.d)
	case contextNode:
		v.Context(n.name, n.hasName, n.d, n.typeVars)
	case noImportNode:
		v.NoImport(n.d, n.suppressed)
	default:
		panic(fmt.Sprintf("doc: unreachable node type %T", d.n))
	}
}

// FuncVisitor implements Visitor with optional callbacks; an unset
// callback is a no-op. This is the usual way external packages (printer,
// chunk) consume Visit without implementing all fourteen methods.
type FuncVisitor struct {
	OnEmpty           func()
	OnText            func(s string)
	OnNewLine         func()
	OnConcat          func(children []Document)
	OnChoice          func(a, b Document)
	OnFlat            func(d Document)
	OnIndent          func(prefix string, explicit bool, d Document)
	OnName            func(tag Tag, hint string)
	OnTypeRef         func(ref TypeRef)
	OnStaticImportRef func(owner TypeRef, member string)
	OnLiteral         func(d Document)
	OnStatement       func(d Document)
	OnContext         func(name string, hasName bool, d Document, typeVars map[string]bool)
	OnNoImport        func(d Document, suppressed map[string]bool)
}

func (f FuncVisitor) Empty() {
	if f.OnEmpty != nil {
		f.OnEmpty()
	}
}
func (f FuncVisitor) Text(s string) {
	if f.OnText != nil {
		f.OnText(s)
	}
}
func (f FuncVisitor) NewLine() {
	if f.OnNewLine != nil {
		f.OnNewLine()
	}
}
func (f FuncVisitor) Concat(children []Document) {
	if f.OnConcat != nil {
		f.OnConcat(children)
	}
}
func (f FuncVisitor) Choice(a, b Document) {
	if f.OnChoice != nil {
		f.OnChoice(a, b)
	}
}
func (f FuncVisitor) Flat(d Document) {
	if f.OnFlat != nil {
		f.OnFlat(d)
	}
}
func (f FuncVisitor) Indent(prefix string, explicit bool, d Document) {
	if f.OnIndent != nil {
		f.OnIndent(prefix, explicit, d)
	}
}
func (f FuncVisitor) Name(tag Tag, hint string) {
	if f.OnName != nil {
		f.OnName(tag, hint)
	}
}
func (f FuncVisitor) TypeRef(ref TypeRef) {
	if f.OnTypeRef != nil {
		f.OnTypeRef(ref)
	}
}
func (f FuncVisitor) StaticImportRef(owner TypeRef, member string) {
	if f.OnStaticImportRef != nil {
		f.OnStaticImportRef(owner, member)
	}
}
func (f FuncVisitor) Literal(d Document) {
	if f.OnLiteral != nil {
		f.OnLiteral(d)
	}
}
func (f FuncVisitor) Statement(d Document) {
	if f.OnStatement != nil {
		f.OnStatement(d)
	}
}
func (f FuncVisitor) Context(name string, hasName bool, d Document, typeVars map[string]bool) {
	if f.OnContext != nil {
		f.OnContext(name, hasName, d, typeVars)
	}
}
func (f FuncVisitor) NoImport(d Document, suppressed map[string]bool) {
	if f.OnNoImport != nil {
		f.OnNoImport(d, suppressed)
	}
}
