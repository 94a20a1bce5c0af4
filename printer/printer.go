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

// Package printer implements the measure-and-fit emitter (spec §4.3): the
// LIFO work-stack driver that turns a doc.Document plus an initial name map
// into bytes, consulting a flat-fit lookahead (§4.3) before committing to
// either side of a Choice or a Statement's forced-flat attempt, and the
// name-resolution context protocol (chunk.ResolveContext) whenever it meets
// a Context node.
//
// Grounded on cuelang.org/go/internal/core/format/printer.go's own
// stack-of-pending-work printer (a pendingClauses/indentation state
// threaded through a recursive visit, with a column cursor used to decide
// wrap points) — adapted from formatting a fixed CUE AST to driving an
// open document algebra whose wrap points are themselves data (Choice)
// rather than syntax-directed.
//
// doc.Document.Notation/DebugString stay in the doc package to avoid an
// import cycle (printer already imports doc); the spec's width-aware
// toString()/toCode() diagnostics live here instead, as String and Code.
package printer

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/cuelang-notation/jnotate/chunk"
	"github.com/cuelang-notation/jnotate/doc"
	"github.com/cuelang-notation/jnotate/jerrors"
	"github.com/cuelang-notation/jnotate/priomap"
)

// Sink is the minimal output surface the whitespace filter writes through.
// *bufio.Writer satisfies it, which is what Print wraps any io.Writer in.
type Sink interface {
	WriteString(s string) (int, error)
}

// Print renders d to w: widths are measured in display columns (runeWidth),
// not bytes, wrapping at width, indenting nested material by indentBy (or an
// explicit Indent's own prefix), resolving Name/TypeRef tags against
// initialNames seeded under packageName, and honoring ctx cancellation
// between work-stack pops (spec §5's "may expose a check between chunk
// pops").
func Print(ctx context.Context, d doc.Document, width int, initialNames *priomap.Map[doc.Tag, string], indentBy, packageName string, w io.Writer) error {
	if width <= 0 {
		return jerrors.NewUsage("width must be positive")
	}
	if !d.IsValid() {
		return jerrors.NewUsage("cannot print a zero-value Document")
	}
	if initialNames == nil {
		initialNames = priomap.New[doc.Tag, string]()
	}

	bw := bufio.NewWriter(w)
	wf := newWhitespaceFilter(bw)

	stack := []chunk.Chunk{{
		Document: d,
		IndentBy: indentBy,
		Names:    initialNames,
		Package:  packageName,
	}}
	col := 0

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return jerrors.NewOutput(ctx.Err())
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		pushed, err := step(top, stack, &col, width, wf)
		if err != nil {
			return err
		}
		stack = append(stack, pushed...)
	}

	if err := wf.flush(); err != nil {
		return jerrors.NewOutput(err)
	}
	if err := bw.Flush(); err != nil {
		return jerrors.NewOutput(err)
	}
	return nil
}

// step processes one chunk, writing through wf and advancing col as needed,
// and returns the chunks (if any) it schedules in turn — already in
// stack-push order (last element is processed first).
func step(c chunk.Chunk, rest []chunk.Chunk, col *int, width int, wf *whitespaceFilter) ([]chunk.Chunk, error) {
	var (
		pushed []chunk.Chunk
		err    error
	)
	c.Document.Visit(doc.FuncVisitor{
		OnEmpty: func() {},
		OnText: func(s string) {
			if werr := wf.write(s); werr != nil {
				err = jerrors.NewOutput(werr)
				return
			}
			*col += displayWidth(s)
		},
		OnNewLine: func() {
			if werr := wf.write("\n"); werr != nil {
				err = jerrors.NewOutput(werr)
				return
			}
			if werr := wf.write(c.Indent); werr != nil {
				err = jerrors.NewOutput(werr)
				return
			}
			*col = displayWidth(c.Indent)
		},
		OnConcat: func(children []doc.Document) {
			pushed = make([]chunk.Chunk, len(children))
			for i, child := range children {
				pushed[len(children)-1-i] = c.With(child)
			}
		},
		OnChoice: func(a, b doc.Document) {
			if c.Flat {
				pushed = []chunk.Chunk{c.With(a.Flat())}
				return
			}
			if fits(c, a, rest, *col, width) {
				pushed = []chunk.Chunk{c.With(a)}
				return
			}
			pushed = []chunk.Chunk{c.With(b)}
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
		OnName: func(tag doc.Tag, _ string) {
			s, ok := c.Names.Get(tag)
			if !ok {
				err = jerrors.NewResolution(tag, scopePath(c))
				return
			}
			if werr := wf.write(s); werr != nil {
				err = jerrors.NewOutput(werr)
				return
			}
			*col += displayWidth(s)
		},
		OnTypeRef: func(ref doc.TypeRef) {
			s, ok := chunk.ResolveTypeRef(c.Names, c.Suppressed, ref)
			if !ok {
				err = jerrors.NewResolution(ref, scopePath(c))
				return
			}
			if werr := wf.write(s); werr != nil {
				err = jerrors.NewOutput(werr)
				return
			}
			*col += displayWidth(s)
		},
		OnStaticImportRef: func(_ doc.TypeRef, member string) {
			if werr := wf.write(member); werr != nil {
				err = jerrors.NewOutput(werr)
				return
			}
			*col += displayWidth(member)
		},
		OnLiteral: func(d doc.Document) {
			pushed = []chunk.Chunk{c.With(d)}
		},
		OnStatement: func(d doc.Document) {
			if c.Flat {
				pushed = []chunk.Chunk{c.With(d.Flat())}
				return
			}
			if fits(c, d, rest, *col, width) {
				pushed = []chunk.Chunk{c.With(d.Flat())}
				return
			}
			pushed = []chunk.Chunk{c.With(d)}
		},
		OnContext: func(_ string, _ bool, _ doc.Document, _ map[string]bool) {
			nc, rerr := chunk.ResolveContext(c, c.Document)
			if rerr != nil {
				err = rerr
				return
			}
			pushed = []chunk.Chunk{nc}
		},
		OnNoImport: func(d doc.Document, suppressed map[string]bool) {
			pushed = []chunk.Chunk{c.WithSuppressed(suppressed).With(d)}
		},
	})
	return pushed, err
}

func scopePath(c chunk.Chunk) []string {
	path := make([]string, len(c.Scopes))
	for i, s := range c.Scopes {
		path[i] = s.ClassName.String()
	}
	return path
}

// String renders d for diagnostics at an 80-column width with a "| "
// indent unit, discarding any Resolution/Output/Usage error in favor of a
// best-effort dump — mirrors spec §6's toString(), an infallible debugging
// aid distinct from Print's strict contract.
func String(d doc.Document) string {
	return renderBestEffort(d, 80, "| ")
}

// Code renders d for diagnostics at a 100-column width with a two-space
// indent unit — spec §6's toCode(), tuned for pasting into a source file
// rather than a terminal.
func Code(d doc.Document) string {
	return renderBestEffort(d, 100, "  ")
}

func renderBestEffort(d doc.Document, width int, indentBy string) string {
	if !d.IsValid() {
		return ""
	}
	var b strings.Builder
	_ = Print(context.Background(), d, width, nil, indentBy, "", &b)
	return b.String()
}
