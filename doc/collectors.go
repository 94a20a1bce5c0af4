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

// Join folds docs into d1, sep, d2, sep, .... When sep is itself a
// Choice(left, right), the choice is hoisted: Join returns
// Choice(fold-with-left, fold-with-right), so a single layout decision
// flips every separator uniformly — e.g. all commas on one line, or all
// commas each followed by a newline, never a mix.
//
// Grounded on cuelang.org/go/cue/format/node.go's walkExprList/
// walkDeclList, which thread a fixed "comma [blank]" separator through a
// list while printing; generalized here from that one fixed separator
// shape to an arbitrary (optionally choice-valued) separator document.
func Join(sep Document, docs ...Document) Document {
	switch len(docs) {
	case 0:
		return Empty
	case 1:
		return docs[0]
	}
	if cn, ok := sep.n.(choiceNode); ok {
		left := joinWith(cn.a, docs)
		right := joinWith(cn.b, docs)
		return left.Or(right)
	}
	return joinWith(sep, docs)
}

func joinWith(sep Document, docs []Document) Document {
	parts := make([]Document, 0, len(docs)*2-1)
	for i, d := range docs {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, d)
	}
	return Concat(parts...)
}

// HoistChoice lifts every Choice reachable by unwrapping only Indent and
// Statement wrappers from each element of docs into a single outer
// Choice: its left branch substitutes every hoisted choice's left
// (flat-preferred) alternative, its right branch every hoisted choice's
// right (expanded) alternative, and unwrapped Indent/Statement wrappers
// are re-applied around each alternative before the final Concat.
//
// Per spec §9's open question, the rewrap list is deliberately exactly
// {Indent, Statement} — not Flat or any other wrapper — matching the one
// shape the teacher's list-printing helpers actually produce (an indented
// or statement-wrapped choice of layouts for one list element). Extending
// it to cover a Flat-wrapped element is a answerable but distinct design
// question the source leaves open; jnotate never constructs one, so
// HoistChoice doesn't either.
func HoistChoice(docs ...Document) Document {
	flatParts := make([]Document, len(docs))
	fullParts := make([]Document, len(docs))
	hoisted := false
	for i, d := range docs {
		if a, b, rebuild, ok := peelChoice(d); ok {
			flatParts[i] = rebuild(a)
			fullParts[i] = rebuild(b)
			hoisted = true
			continue
		}
		flatParts[i] = d
		fullParts[i] = d
	}
	if !hoisted {
		return Concat(docs...)
	}
	return Concat(flatParts...).Or(Concat(fullParts...))
}

func peelChoice(d Document) (a, b Document, rebuild func(Document) Document, ok bool) {
	switch n := d.n.(type) {
	case choiceNode:
		return n.a, n.b, identityRebuild, true
	case indentNode:
		ia, ib, rb, found := peelChoice(n.d)
		if !found {
			return Document{}, Document{}, nil, false
		}
		prefix, explicit := n.prefix, n.explicit
		return ia, ib, func(x Document) Document {
			y := rb(x)
			if explicit {
				return y.IndentWith(prefix)
			}
			return y.Indent()
		}, true
	case statementNode:
		ia, ib, rb, found := peelChoice(n.d)
		if !found {
			return Document{}, Document{}, nil, false
		}
		return ia, ib, func(x Document) Document { return Statement(rb(x)) }, true
	}
	return Document{}, Document{}, nil, false
}

func identityRebuild(x Document) Document { return x }
