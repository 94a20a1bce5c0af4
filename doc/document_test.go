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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-quicktest/qt"

	"github.com/cuelang-notation/jnotate/naming"
)

func TestTxtCollapsesEmptyAndNewline(t *testing.T) {
	qt.Assert(t, qt.IsTrue(Txt("").Equal(Empty)))
	qt.Assert(t, qt.IsTrue(Txt("\n").Equal(NewLine)))
}

func TestTxtSplitsEmbeddedNewlines(t *testing.T) {
	got := Txt("a\nb")
	want := Txt("a").Then(NewLine).Then(Txt("b"))
	qt.Assert(t, qt.IsTrue(got.Equal(want)))
}

func TestConcatDropsEmptyAndFusesText(t *testing.T) {
	got := Concat(Empty, Txt("a"), Txt("b"), Empty)
	qt.Assert(t, qt.IsTrue(got.Equal(Txt("ab"))))
}

func TestThenIsAssociativeInEffect(t *testing.T) {
	left := Txt("a").Then(Txt("b")).Then(Txt("c"))
	right := Txt("a").Then(Txt("b").Then(Txt("c")))
	qt.Assert(t, qt.IsTrue(left.Equal(right)))
}

func TestFlatIsIdempotentAndInertOnLeaves(t *testing.T) {
	qt.Assert(t, qt.IsTrue(Empty.Flat().Equal(Empty)))
	qt.Assert(t, qt.IsTrue(Txt("x").Flat().Equal(Txt("x"))))

	d := Txt("a").Then(NewLine).Then(Txt("b"))
	qt.Assert(t, qt.IsTrue(d.Flat().Flat().Equal(d.Flat())))
}

func TestNamesMergeAcrossConcat(t *testing.T) {
	tagA, tagB := "A", "B"
	d := Name(tagA, "Alpha").Then(Name(tagB, "Beta"))
	qt.Assert(t, qt.DeepEquals(d.Names(), map[Tag]string{tagA: "Alpha", tagB: "Beta"}))
}

func TestNamesConflictPanics(t *testing.T) {
	tag := "A"
	defer func() {
		r := recover()
		qt.Assert(t, qt.IsNotNil(r))
	}()
	_ = Name(tag, "Alpha").Then(Name(tag, "Zulu"))
}

func TestBuildRecoversStructuralPanic(t *testing.T) {
	_, err := Build(func() Document {
		return Statement(Statement(Txt("x")))
	})
	qt.Assert(t, qt.IsNotNil(err))
}

func TestStatementRejectsNesting(t *testing.T) {
	defer func() {
		r := recover()
		qt.Assert(t, qt.IsNotNil(r))
	}()
	_ = Statement(Txt("a").Then(Statement(Txt("b"))))
}

func TestRefTracksImportsExceptTypeVariables(t *testing.T) {
	class := naming.Package("p", "List")
	ref := NewTypeRef(class)
	d := Ref(ref)
	qt.Assert(t, qt.DeepEquals(d.Imports(), map[TypeRef]bool{ref: true}))

	tv := NewTypeVar("T")
	d2 := Ref(tv)
	qt.Assert(t, qt.HasLen(d2.Imports(), 0))
}

func TestStaticImportRefEmitsMemberOnly(t *testing.T) {
	owner := NewTypeRef(naming.Package("p", "Collections"))
	d := StaticImportRef(owner, "emptyList")
	got := d.DebugString()
	qt.Assert(t, qt.Equals(got, "emptyList"))
	qt.Assert(t, qt.DeepEquals(d.Imports(), map[TypeRef]bool{owner: true}))
}

func TestContextHasNoOwnNamesButCollectsChildContexts(t *testing.T) {
	tag := "T"
	inner := Name(tag, "hint")
	ctx := Context("Outer", inner)
	qt.Assert(t, qt.HasLen(ctx.Names(), 0))
	qt.Assert(t, qt.HasLen(ctx.ChildContexts(), 1))
}

func TestNestedContextsAccumulateChildContexts(t *testing.T) {
	innerCtx := Context("Inner", Txt("x"))
	outerCtx := Context("Outer", innerCtx)
	qt.Assert(t, qt.HasLen(outerCtx.ChildContexts(), 2))
}

func TestEqualIgnoresDerivedSummaries(t *testing.T) {
	tag := "A"
	a := Name(tag, "Alpha")
	b := Document{n: a.n}
	qt.Assert(t, qt.IsTrue(a.Equal(b)))
}

func TestJoinHoistsChoiceSeparator(t *testing.T) {
	sep := Txt(",").Or(Txt(",").Then(NewLine))
	got := Join(sep, Txt("a"), Txt("b"), Txt("c"))

	wantFlat := Txt("a,b,c")
	wantExpanded := Txt("a,").Then(NewLine).Then(Txt("b,")).Then(NewLine).Then(Txt("c"))
	want := wantFlat.Or(wantExpanded)
	qt.Assert(t, qt.IsTrue(got.Equal(want)))
}

func TestJoinSingleElementSkipsSeparator(t *testing.T) {
	sep := Txt(", ")
	got := Join(sep, Txt("solo"))
	qt.Assert(t, qt.IsTrue(got.Equal(Txt("solo"))))
}

func TestHoistChoiceLiftsIndentedChoice(t *testing.T) {
	elem := Txt("x").Or(NewLine.Then(Txt("x"))).Indent()
	got := HoistChoice(elem)

	want := Txt("x").Indent().Or(NewLine.Then(Txt("x")).Indent())
	qt.Assert(t, qt.IsTrue(got.Equal(want)))
}

func TestHoistChoiceWithNoChoiceIsPlainConcat(t *testing.T) {
	got := HoistChoice(Txt("a"), Txt("b"))
	qt.Assert(t, qt.IsTrue(got.Equal(Txt("ab"))))
}

func TestNotationDescribesShape(t *testing.T) {
	d := Txt("hi").Then(NewLine)
	got := d.Notation().DebugString()
	qt.Assert(t, qt.StringContains(got, "Concat("))
	qt.Assert(t, qt.StringContains(got, `Text("hi")`))
	qt.Assert(t, qt.StringContains(got, "NewLine"))
}

func TestDiffIsEmptyForStructurallyEqualDocuments(t *testing.T) {
	a := Txt("x").Then(Txt("y"))
	b := Txt("xy")
	qt.Assert(t, qt.IsTrue(a.Equal(b)))
	// Diff renders empty when the two sides are structurally equal.
	qt.Assert(t, qt.Equals(Diff(a, b), ""))
}

func TestDiffReportsStructuralMismatch(t *testing.T) {
	a := Txt("x")
	b := Txt("y")
	qt.Assert(t, qt.Not(qt.Equals(Diff(a, b), "")))
}

// TestNewTagMintsDistinctOpaqueTagsForSameHint covers the case NewTag
// exists for: a caller with no natural comparable key of its own (spec.md
// §3's Tag is "opaque" — any comparable value qualifies, but not every
// caller has one lying around). Two tags minted with the same hint must
// still be usable as distinct Name keys.
func TestNewTagMintsDistinctOpaqueTagsForSameHint(t *testing.T) {
	a, b := NewTag("x"), NewTag("x")
	qt.Assert(t, qt.IsFalse(a == b))

	d := Name(a, "Alpha").Then(Name(b, "Beta"))
	qt.Assert(t, qt.DeepEquals(d.Names(), map[Tag]string{a: "Alpha", b: "Beta"}))
}

func TestEquateDocumentsLetsCmpSeeThroughWrappingStructs(t *testing.T) {
	type holder struct{ D Document }
	a := holder{D: Txt("x").Then(Txt("y"))}
	b := holder{D: Txt("xy")}
	qt.Assert(t, qt.Equals(cmp.Diff(a, b, EquateDocuments()), ""))
}
