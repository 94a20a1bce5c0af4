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
	"context"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/cuelang-notation/jnotate/doc"
	"github.com/cuelang-notation/jnotate/jerrors"
	"github.com/cuelang-notation/jnotate/naming"
	"github.com/cuelang-notation/jnotate/priomap"
)

func mustPrint(t *testing.T, d doc.Document, width int, names *priomap.Map[doc.Tag, string]) string {
	t.Helper()
	return mustPrintIn(t, d, width, names, "")
}

func mustPrintIn(t *testing.T, d doc.Document, width int, names *priomap.Map[doc.Tag, string], packageName string) string {
	t.Helper()
	var b strings.Builder
	err := Print(context.Background(), d, width, names, "", packageName, &b)
	qt.Assert(t, qt.IsNil(err))
	return b.String()
}

func TestPrintPlainText(t *testing.T) {
	got := mustPrint(t, doc.Txt("hello"), 80, nil)
	qt.Assert(t, qt.Equals(got, "hello"))
}

func TestPrintChoicePicksFlatWhenItFits(t *testing.T) {
	d := doc.Txt("abcdef").Or(doc.NewLine.Then(doc.Txt("wrapped")))
	got := mustPrint(t, d, 80, nil)
	qt.Assert(t, qt.Equals(got, "abcdef"))
}

func TestPrintChoiceWrapsWhenFlatTooLong(t *testing.T) {
	d := doc.Txt("abcdef").Or(doc.NewLine.Then(doc.Txt("wrapped")))
	got := mustPrint(t, d, 5, nil)
	qt.Assert(t, qt.Equals(got, "\nwrapped"))
}

func TestPrintChoiceConsidersRestOfWorkStack(t *testing.T) {
	// The flat alternative alone ("xxxx") would fit in the 4 remaining
	// columns, but the ")" still pending on the work stack after it must
	// also be accounted for by the flat-fit lookahead.
	d := doc.Txt("foo(").
		Then(doc.Txt("xxxx").Or(doc.NewLine.Then(doc.Txt("x")))).
		Then(doc.Txt(")"))
	got := mustPrint(t, d, 8, nil)
	qt.Assert(t, qt.Equals(got, "foo(\nx)"))
}

func TestPrintStatementStaysFlatWhenWholeStatementFits(t *testing.T) {
	d := doc.Statement(
		doc.Txt("foo(").
			Then(doc.Txt("x").Or(doc.NewLine.Then(doc.Txt("x")))).
			Then(doc.Txt(")")),
	)
	got := mustPrint(t, d, 80, nil)
	qt.Assert(t, qt.Equals(got, "foo(x)"))
}

func TestPrintStatementWrapsWhenWholeStatementTooLong(t *testing.T) {
	d := doc.Statement(
		doc.Txt("foo(").
			Then(doc.Txt("x").Or(doc.NewLine.Then(doc.Txt("x")))).
			Then(doc.Txt(")")),
	)
	got := mustPrint(t, d, 4, nil)
	qt.Assert(t, qt.Equals(got, "foo(\nx)"))
}

func TestPrintJoinHoistsSeparatorChoiceUniformly(t *testing.T) {
	sep := doc.Txt(", ").Or(doc.Txt(",").Then(doc.NewLine))
	d := doc.Join(sep, doc.Txt("aaaa"), doc.Txt("bbbb"), doc.Txt("cccc"))

	qt.Assert(t, qt.Equals(mustPrint(t, d, 80, nil), "aaaa, bbbb, cccc"))
	qt.Assert(t, qt.Equals(mustPrint(t, d, 6, nil), "aaaa,\nbbbb,\ncccc"))
}

func TestPrintIndentPrefixesOnlyNewlinesInsideIndentedDocument(t *testing.T) {
	d := doc.Txt("a").Then(doc.NewLine).Then(
		doc.Txt("b").Then(doc.NewLine).Then(doc.Txt("c")).IndentWith("--"),
	)
	got := mustPrint(t, d, 80, nil)
	qt.Assert(t, qt.Equals(got, "a\nb\n--c"))
}

func TestPrintTrailingWhitespaceIsDroppedBeforeNewlineAndAtEOF(t *testing.T) {
	d := doc.Txt("a").Then(doc.Txt("   ")).Then(doc.NewLine).Then(doc.Txt("b")).Then(doc.Txt("  "))
	got := mustPrint(t, d, 80, nil)
	qt.Assert(t, qt.Equals(got, "a\nb"))
}

func TestPrintNameResolvesThroughInitialNames(t *testing.T) {
	tag := "greeting"
	names := priomap.New[doc.Tag, string]()
	names.Put(tag, "hi")
	got := mustPrint(t, doc.Name(tag, "unused-hint"), 80, names)
	qt.Assert(t, qt.Equals(got, "hi"))
}

func TestPrintUnresolvedNameIsResolutionError(t *testing.T) {
	var b strings.Builder
	err := Print(context.Background(), doc.Name("unbound", "hint"), 80, nil, "", "", &b)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.IsTrue(jerrors.Is(err, jerrors.Resolution)))
}

func TestPrintRejectsNonPositiveWidth(t *testing.T) {
	var b strings.Builder
	err := Print(context.Background(), doc.Txt("x"), 0, nil, "", "", &b)
	qt.Assert(t, qt.IsTrue(jerrors.Is(err, jerrors.Usage)))
}

func TestPrintRejectsZeroValueDocument(t *testing.T) {
	var b strings.Builder
	err := Print(context.Background(), doc.Document{}, 80, nil, "", "", &b)
	qt.Assert(t, qt.IsTrue(jerrors.Is(err, jerrors.Usage)))
}

func TestPrintHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var b strings.Builder
	err := Print(ctx, doc.Txt("x"), 80, nil, "", "", &b)
	qt.Assert(t, qt.ErrorIs(err, context.Canceled))
}

// TestPrintResolvesContextsEndToEnd mirrors the nested-context scenario
// also covered at the chunk package level, but drives it through the
// public Print entry point: a TypeRef printed once outside any scope (its
// initial fully-qualified binding) and once nested two contexts deep
// (shortened all the way to its simple name).
func TestPrintResolvesContextsEndToEnd(t *testing.T) {
	deepClass := naming.Package("p", "Outer").Nested("Inner").Nested("Deep")
	deepRef := doc.NewTypeRef(deepClass)

	names := priomap.New[doc.Tag, string]()
	names.Put(deepRef, deepClass.Qualified())

	d := doc.Ref(deepRef).Then(doc.Txt(" ")).Then(
		doc.Context("Outer", doc.Context("Inner", doc.Ref(deepRef))),
	)

	got := mustPrintIn(t, d, 80, names, "p")
	qt.Assert(t, qt.Equals(got, "p.Outer.Inner.Deep Deep"))
}

func TestStringWrapsAt80ButCodeFitsAt100(t *testing.T) {
	content := strings.Repeat("a", 90)
	d := doc.Txt(content).Or(doc.NewLine.Then(doc.Txt("short")))

	qt.Assert(t, qt.Equals(String(d), "\nshort"))
	qt.Assert(t, qt.Equals(Code(d), content))
}

func TestStringAndCodeAreInfallible(t *testing.T) {
	qt.Assert(t, qt.Equals(String(doc.Document{}), ""))
	qt.Assert(t, qt.Equals(Code(doc.Document{}), ""))
}
