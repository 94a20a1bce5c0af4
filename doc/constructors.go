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

package doc

import (
	"strings"
	"sync"

	"github.com/cuelang-notation/jnotate/jerrors"
)

// Empty produces no output.
var Empty = Document{n: emptyNode{}, imports: nil}

// NewLine is a line break followed by the current indent.
var NewLine = Document{n: newlineNode{}}

// textCache is the process-wide memoization of Txt(s): since Document
// values are immutable and value-equal by content, repeated input strings
// may safely share one Document value. Per spec §5/§9 this is an
// optimization only; correctness never depends on two equal Txt calls
// returning the identical value, only an equal one (see Equal).
var textCache sync.Map // string -> Document

// Txt builds a Text document, or — if s contains embedded newlines — the
// Concat of interleaved Text/NewLine documents that produces the same
// output. The empty string and "\n" collapse to Empty and NewLine
// respectively.
func Txt(s string) Document {
	if s == "" {
		return Empty
	}
	if s == "\n" {
		return NewLine
	}
	if !strings.Contains(s, "\n") {
		return internedText(s)
	}
	parts := strings.Split(s, "\n")
	docs := make([]Document, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			docs = append(docs, NewLine)
		}
		if p != "" {
			docs = append(docs, internedText(p))
		}
	}
	return Concat(docs...)
}

func internedText(s string) Document {
	if v, ok := textCache.Load(s); ok {
		return v.(Document)
	}
	d := Document{n: textNode{s: s}}
	actual, _ := textCache.LoadOrStore(s, d)
	return actual.(Document)
}

// Then composes d followed by other. Adjacent Concat children are
// spliced, Empty operands drop out, and adjacent Text is fused, matching
// Concat's normalization.
func (d Document) Then(other Document) Document {
	return Concat(d, other)
}

// Concat composes docs in order, flattening nested Concat children,
// dropping Empty operands, and fusing adjacent Text — so
// Empty.Then(x) == x, x.Then(Empty) == x, and
// Txt(s).Then(Txt(t)) == Txt(s+t) when neither contains a newline.
func Concat(docs ...Document) Document {
	flat := make([]Document, 0, len(docs))
	for _, x := range docs {
		if x.IsEmpty() {
			continue
		}
		if c, ok := x.n.(concatNode); ok {
			flat = append(flat, c.children...)
			continue
		}
		flat = append(flat, x)
	}
	fused := fuseText(flat)
	switch len(fused) {
	case 0:
		return Empty
	case 1:
		return fused[0]
	}
	return Document{
		n:       concatNode{children: fused},
		names:   mergeNamesAll("Concat", fused),
		imports: mergeImportsAll(fused),
		ctxs:    mergeCtxsAll(fused),
	}
}

func fuseText(docs []Document) []Document {
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if t, ok := d.n.(textNode); ok && len(out) > 0 {
			if pt, ok := out[len(out)-1].n.(textNode); ok {
				out[len(out)-1] = internedText(pt.s + t.s)
				continue
			}
		}
		out = append(out, d)
	}
	return out
}

// Or builds Choice(d, other): prefer d when it fits flat, else other.
// Associativity is left implicit, matching spec §4.1 ("not normalized").
func (d Document) Or(other Document) Document {
	return Document{
		n:       choiceNode{a: d, b: other},
		names:   mergeNames("Choice", d.names, other.names),
		imports: mergeImports(d.imports, other.imports),
		ctxs:    mergeCtxs(d.ctxs, other.ctxs),
	}
}

// Or is the free-function form of Document.Or.
func Or(a, b Document) Document { return a.Or(b) }

// Flat forces d into single-line mode: any NewLine beneath it signals
// "too long" to the flat-fit lookahead (spec §4.3) rather than ever being
// emitted. flat(flat(d)) == flat(d); flat(Empty) and flat(Text) are
// themselves, since neither can ever contain a NewLine.
func (d Document) Flat() Document {
	switch d.n.(type) {
	case emptyNode, textNode, flatNode:
		return d
	}
	return Document{n: flatNode{d: d}, names: d.names, imports: d.imports, ctxs: d.ctxs}
}

// Flat is the free-function form of Document.Flat.
func Flat(d Document) Document { return d.Flat() }

// Indent adds the ambient indentBy (resolved at print time) to subsequent
// newlines within d.
func (d Document) Indent() Document {
	return Document{n: indentNode{d: d}, names: d.names, imports: d.imports, ctxs: d.ctxs}
}

// IndentWith adds the given literal prefix (instead of the ambient
// indentBy) to subsequent newlines within d.
func (d Document) IndentWith(prefix string) Document {
	return Document{n: indentNode{prefix: prefix, explicit: true, d: d}, names: d.names, imports: d.imports, ctxs: d.ctxs}
}

// Name resolves tag through the ambient name map and emits the result;
// hint is the suggested printed name a Context binds if tag is otherwise
// unbound when one is first encountered (spec §4.2 step 5).
func Name(tag Tag, hint string) Document {
	return Document{n: nameNode{tag: tag, hint: hint}, names: map[Tag]string{tag: hint}}
}

// Ref resolves a type reference through the ambient name map (possibly
// via an import scheme) and emits it.
func Ref(ref TypeRef) Document {
	var imports map[TypeRef]bool
	if !ref.TypeVariable {
		imports = map[TypeRef]bool{ref: true}
	}
	return Document{n: typeRefNode{ref: ref}, imports: imports}
}

// StaticImportRef always emits member's simple name, regardless of owner's
// resolution; owner only contributes to the imports summary.
func StaticImportRef(owner TypeRef, member string) Document {
	return Document{
		n:       staticImportRefNode{owner: owner, member: member},
		imports: map[TypeRef]bool{owner: true},
	}
}

// Literal wraps d as a marker for an embedded emitable; it is transparent
// to both emission and the derived summaries.
func Literal(d Document) Document {
	return Document{n: literalNode{d: d}, names: d.names, imports: d.imports, ctxs: d.ctxs}
}

// Statement marks d as a statement unit. Construction fails (panics with a
// *jerrors.Error of kind Structural) if d contains a nested Statement
// anywhere within it — use Build to recover that panic as a plain error.
func Statement(d Document) Document {
	if containsStatement(d) {
		panic(jerrors.NewStructural("Statement", "statement enter followed by statement enter"))
	}
	return Document{n: statementNode{d: d}, names: d.names, imports: d.imports, ctxs: d.ctxs}
}

func containsStatement(d Document) bool {
	found := false
	var walk func(Document)
	walk = func(x Document) {
		if found {
			return
		}
		x.Visit(FuncVisitor{
			OnConcat: func(children []Document) {
				for _, c := range children {
					walk(c)
				}
			},
			OnChoice: func(a, b Document) { walk(a); walk(b) },
			OnFlat:   func(d Document) { walk(d) },
			OnIndent: func(_ string, _ bool, d Document) { walk(d) },
			OnLiteral: func(d Document) { walk(d) },
			OnStatement: func(d Document) { found = true },
			OnContext: func(_ string, _ bool, d Document, _ map[string]bool) { walk(d) },
			OnNoImport: func(d Document, _ map[string]bool) { walk(d) },
		})
	}
	walk(d)
	return found
}

// Context establishes a new nested name-resolution scope. name is the
// simple class name this context introduces, or "" for an anonymous
// (same-scope) context. typeVars are the type-variable names this context
// binds. A Context node's own Names() is always empty — it introduces a
// scope, it does not leak names upward (spec §3) — its derived imports
// are d's, and its childContexts is d's plus itself.
func Context(name string, d Document, typeVars ...string) Document {
	tv := make(map[string]bool, len(typeVars))
	for _, t := range typeVars {
		tv[t] = true
	}
	n := contextNode{name: name, hasName: name != "", d: d, typeVars: tv}
	result := Document{n: n, imports: d.imports}
	ctxs := make([]Document, 0, len(d.ctxs)+1)
	ctxs = append(ctxs, d.ctxs...)
	ctxs = append(ctxs, result)
	result.ctxs = ctxs
	return result
}

// NoImport rewrites import-eligible references within d to their fully
// qualified form, for every canonical name in suppressed.
func NoImport(d Document, suppressed ...string) Document {
	sup := make(map[string]bool, len(suppressed))
	for _, s := range suppressed {
		sup[s] = true
	}
	return Document{n: noImportNode{d: d, suppressed: sup}, names: d.names, imports: d.imports, ctxs: d.ctxs}
}

// Build runs fn, recovering a *jerrors.Error panic raised by a smart
// constructor (Statement, Join, a tag-conflicting Concat/Or) and
// returning it as a plain error instead. Any other panic propagates
// unchanged. This lets callers that assemble a document from
// caller-controlled pieces (as opposed to a fixed literal tree) validate
// it without the fluent Then/Or/Statement chain itself returning an error
// at every step.
func Build(fn func() Document) (d Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			if je, ok := r.(*jerrors.Error); ok {
				err = je
				return
			}
			panic(r)
		}
	}()
	return fn(), nil
}

func mergeNames(op string, a, b map[Tag]string) map[Tag]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[Tag]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if existing, ok := out[k]; ok && existing != v {
			panic(jerrors.NewStructural(op, "tag bound to two different suggested names: "+existing+" vs "+v))
		}
		out[k] = v
	}
	return out
}

func mergeNamesAll(op string, docs []Document) map[Tag]string {
	var out map[Tag]string
	for _, d := range docs {
		out = mergeNames(op, out, d.names)
	}
	return out
}

func mergeImports(a, b map[TypeRef]bool) map[TypeRef]bool {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[TypeRef]bool, len(a)+len(b))
	for k := range a {
		out[k] = true
	}
	for k := range b {
		out[k] = true
	}
	return out
}

func mergeImportsAll(docs []Document) map[TypeRef]bool {
	var out map[TypeRef]bool
	for _, d := range docs {
		out = mergeImports(out, d.imports)
	}
	return out
}

func mergeCtxs(a, b []Document) []Document {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]Document, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func mergeCtxsAll(docs []Document) []Document {
	var out []Document
	for _, d := range docs {
		out = mergeCtxs(out, d.ctxs)
	}
	return out
}
