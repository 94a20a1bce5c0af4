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

// Equal reports structural equality: two documents are equal when their
// node payloads match, ignoring the derived names/imports/childContexts
// summaries (which are redundant given the payload, per spec §3).
func (d Document) Equal(o Document) bool {
	return nodeEqual(d.n, o.n)
}

func nodeEqual(a, b node) bool {
	switch x := a.(type) {
	case emptyNode:
		_, ok := b.(emptyNode)
		return ok
	case textNode:
		y, ok := b.(textNode)
		return ok && x.s == y.s
	case newlineNode:
		_, ok := b.(newlineNode)
		return ok
	case concatNode:
		y, ok := b.(concatNode)
		if !ok || len(x.children) != len(y.children) {
			return false
		}
		for i := range x.children {
			if !x.children[i].Equal(y.children[i]) {
				return false
			}
		}
		return true
	case choiceNode:
		y, ok := b.(choiceNode)
		return ok && x.a.Equal(y.a) && x.b.Equal(y.b)
	case flatNode:
		y, ok := b.(flatNode)
		return ok && x.d.Equal(y.d)
	case indentNode:
		y, ok := b.(indentNode)
		return ok && x.explicit == y.explicit && x.prefix == y.prefix && x.d.Equal(y.d)
	case nameNode:
		y, ok := b.(nameNode)
		return ok && x.tag == y.tag && x.hint == y.hint
	case typeRefNode:
		y, ok := b.(typeRefNode)
		return ok && x.ref == y.ref
	case staticImportRefNode:
		y, ok := b.(staticImportRefNode)
		return ok && x.owner == y.owner && x.member == y.member
	case literalNode:
		y, ok := b.(literalNode)
		return ok && x.d.Equal(y.d)
	case statementNode:
		y, ok := b.(statementNode)
		return ok && x.d.Equal(y.d)
	case contextNode:
		y, ok := b.(contextNode)
		if !ok || x.hasName != y.hasName || x.name != y.name || len(x.typeVars) != len(y.typeVars) {
			return false
		}
		for k := range x.typeVars {
			if !y.typeVars[k] {
				return false
			}
		}
		return x.d.Equal(y.d)
	case noImportNode:
		y, ok := b.(noImportNode)
		if !ok || len(x.suppressed) != len(y.suppressed) {
			return false
		}
		for k := range x.suppressed {
			if !y.suppressed[k] {
				return false
			}
		}
		return x.d.Equal(y.d)
	default:
		return false
	}
}
