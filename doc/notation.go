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
	"fmt"
	"sort"
	"strings"
)

// Notation builds a document describing d's own shape: the "toNotation"
// diagnostic rendering from spec §4.1, used for error messages and
// debugging, never during ordinary emission. Printing the result (see the
// printer package's String/Code) gives a readable dump of the tree.
func (d Document) Notation() Document {
	return notationOf(d)
}

func notationOf(d Document) (out Document) {
	d.Visit(FuncVisitor{
		OnEmpty: func() { out = Txt("Empty") },
		OnText:  func(s string) { out = Txt(fmt.Sprintf("Text(%q)", s)) },
		OnNewLine: func() { out = Txt("NewLine") },
		OnConcat: func(children []Document) {
			parts := make([]Document, len(children))
			for i, c := range children {
				parts[i] = notationOf(c)
			}
			out = wrap("Concat", Join(Txt(",").Then(NewLine), parts...))
		},
		OnChoice: func(a, b Document) {
			out = wrap("Choice", Join(Txt(",").Then(NewLine), notationOf(a), notationOf(b)))
		},
		OnFlat: func(inner Document) {
			out = Txt("Flat(").Then(notationOf(inner)).Then(Txt(")"))
		},
		OnIndent: func(prefix string, explicit bool, inner Document) {
			if explicit {
				out = Txt(fmt.Sprintf("Indent(%q, ", prefix)).Then(notationOf(inner)).Then(Txt(")"))
				return
			}
			out = Txt("Indent(").Then(notationOf(inner)).Then(Txt(")"))
		},
		OnName: func(tag Tag, hint string) {
			out = Txt(fmt.Sprintf("Name(%v, %q)", tag, hint))
		},
		OnTypeRef: func(ref TypeRef) {
			out = Txt(fmt.Sprintf("TypeRef(%s)", ref.String()))
		},
		OnStaticImportRef: func(owner TypeRef, member string) {
			out = Txt(fmt.Sprintf("StaticImportRef(%s, %s)", owner.String(), member))
		},
		OnLiteral: func(inner Document) {
			out = Txt("Literal(").Then(notationOf(inner)).Then(Txt(")"))
		},
		OnStatement: func(inner Document) {
			out = Txt("Statement(").Then(notationOf(inner)).Then(Txt(")"))
		},
		OnContext: func(name string, hasName bool, inner Document, typeVars map[string]bool) {
			label := "<anon>"
			if hasName {
				label = name
			}
			out = Txt(fmt.Sprintf("Context(%s, typeVars=%v, ", label, sortedKeys(typeVars))).
				Then(notationOf(inner)).Then(Txt(")"))
		},
		OnNoImport: func(inner Document, suppressed map[string]bool) {
			out = Txt(fmt.Sprintf("NoImport(%v, ", sortedKeys(suppressed))).
				Then(notationOf(inner)).Then(Txt(")"))
		},
	})
	return out
}

func wrap(label string, body Document) Document {
	return Txt(label + "(").Then(NewLine).Then(body.IndentWith("  ")).Then(NewLine).Then(Txt(")"))
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DebugString renders d with a self-contained, width-unaware dump — no
// flat-fit lookahead, no name resolution required. Choice always takes
// its expanded (right) alternative, since that is the more descriptive
// one for debugging. This exists so jerrors and doc's own tests can show
// a document's shape without depending on the printer package (which
// depends on doc; doc cannot depend back on printer without a cycle). The
// printer package's String/Code functions are the faithful, spec-exact
// toString()/toCode() — this is only ever used for diagnostics.
func (d Document) DebugString() string {
	var b strings.Builder
	debugWrite(&b, d, "")
	return b.String()
}

func debugWrite(b *strings.Builder, d Document, indent string) {
	d.Visit(FuncVisitor{
		OnEmpty: func() {},
		OnText:  func(s string) { b.WriteString(s) },
		OnNewLine: func() {
			b.WriteByte('\n')
			b.WriteString(indent)
		},
		OnConcat: func(children []Document) {
			for _, c := range children {
				debugWrite(b, c, indent)
			}
		},
		OnChoice: func(_, right Document) { debugWrite(b, right, indent) },
		OnFlat:   func(inner Document) { debugWrite(b, inner, indent) },
		OnIndent: func(prefix string, explicit bool, inner Document) {
			next := indent + "  "
			if explicit {
				next = indent + prefix
			}
			debugWrite(b, inner, next)
		},
		OnName: func(_ Tag, hint string) { b.WriteString(hint) },
		OnTypeRef: func(ref TypeRef) { b.WriteString(ref.String()) },
		OnStaticImportRef: func(_ TypeRef, member string) { b.WriteString(member) },
		OnLiteral:   func(inner Document) { debugWrite(b, inner, indent) },
		OnStatement: func(inner Document) { debugWrite(b, inner, indent) },
		OnContext: func(_ string, _ bool, inner Document, _ map[string]bool) {
			debugWrite(b, inner, indent)
		},
		OnNoImport: func(inner Document, _ map[string]bool) { debugWrite(b, inner, indent) },
	})
}
