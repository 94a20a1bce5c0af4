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

package printer

import (
	"github.com/cuelang-notation/jnotate/chunk"
	"github.com/cuelang-notation/jnotate/doc"
)

// verdict is the flat-fit lookahead's per-chunk result (spec §4.3): FITS
// and TOO_LONG are terminal, INCONCLUSIVE means "push more sub-chunks and
// continue".
type verdict int

const (
	inconclusive verdict = iota
	fitsVerdict
	tooLong
)

// fits decides whether candidate, rendered flat, plus everything still
// pending on rest, keeps the current line within width. c supplies the
// ambient indent/names/scopes candidate inherits; c.Flat is forced true for
// the purposes of this check regardless of c's actual flat-ness, since the
// whole point is asking "if I rendered this flat, would it fit" (§4.3's
// "render a/d flat" framing). When this returns true, the Choice caller
// commits the unflattened candidate, letting any nested Choice make its own
// (now-easy) decision, while the Statement caller commits its flattened form.
func fits(c chunk.Chunk, candidate doc.Document, rest []chunk.Chunk, col, width int) bool {
	if col > width {
		return false
	}
	budget := width - col

	la := make([]chunk.Chunk, 0, len(rest)+1)
	la = append(la, rest...)
	la = append(la, c.AsFlat().With(candidate))

	for len(la) > 0 {
		top := la[len(la)-1]
		la = la[:len(la)-1]

		v, pushed := measure(top, &budget)
		switch v {
		case fitsVerdict:
			return true
		case tooLong:
			return false
		default:
			la = append(la, pushed...)
		}
	}
	return true
}

func measure(c chunk.Chunk, budget *int) (verdict, []chunk.Chunk) {
	v := inconclusive
	var pushed []chunk.Chunk

	consume := func(s string) {
		*budget -= displayWidth(s)
		if *budget < 0 {
			v = tooLong
		}
	}

	c.Document.Visit(doc.FuncVisitor{
		OnEmpty:           func() { v = fitsVerdict },
		OnStaticImportRef: func(_ doc.TypeRef, _ string) { v = fitsVerdict },
		OnText:            func(s string) { consume(s) },
		OnName: func(tag doc.Tag, _ string) {
			s, _ := c.Names.Get(tag)
			consume(s)
		},
		OnTypeRef: func(ref doc.TypeRef) {
			s, _ := chunk.ResolveTypeRef(c.Names, c.Suppressed, ref)
			consume(s)
		},
		OnNewLine: func() {
			if c.Flat {
				v = tooLong
				return
			}
			v = fitsVerdict
		},
		OnConcat: func(children []doc.Document) {
			pushed = make([]chunk.Chunk, len(children))
			for i, child := range children {
				pushed[len(children)-1-i] = c.With(child)
			}
		},
		OnChoice: func(a, _ doc.Document) {
			pushed = []chunk.Chunk{c.With(a)}
		},
		OnFlat: func(d doc.Document) {
			pushed = []chunk.Chunk{c.AsFlat().With(d)}
		},
		OnIndent: func(prefix string, explicit bool, d doc.Document) {
			p := c.IndentBy
			if explicit {
				p = prefix
			}
			pushed = []chunk.Chunk{c.Indented(p).With(d)}
		},
		OnLiteral: func(d doc.Document) {
			pushed = []chunk.Chunk{c.With(d)}
		},
		OnStatement: func(d doc.Document) {
			pushed = []chunk.Chunk{c.With(d)}
		},
		OnNoImport: func(d doc.Document, suppressed map[string]bool) {
			pushed = []chunk.Chunk{c.WithSuppressed(suppressed).With(d)}
		},
		OnContext: func(_ string, _ bool, _ doc.Document, _ map[string]bool) {
			nc, err := chunk.ResolveContext(c, c.Document)
			if err != nil {
				v = fitsVerdict
				return
			}
			pushed = []chunk.Chunk{nc}
		},
	})
	return v, pushed
}
