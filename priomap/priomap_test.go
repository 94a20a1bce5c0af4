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

package priomap_test

import (
	"sort"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/cuelang-notation/jnotate/priomap"
)

func TestGetPutShadowing(t *testing.T) {
	m := priomap.New[string, string]()
	_, ok := m.Get("x")
	qt.Assert(t, qt.IsFalse(ok))

	m.Put("x", "outer")
	v, ok := m.Get("x")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, "outer"))

	m.Put("x", "inner")
	v, ok = m.Get("x")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, "inner"))

	popped, ok := m.Remove("x")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(popped, "inner"))

	v, ok = m.Get("x")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, "outer"))

	_, ok = m.Remove("x")
	qt.Assert(t, qt.IsTrue(ok))
	_, ok = m.Remove("x")
	qt.Assert(t, qt.IsFalse(ok))
}

func TestRemoveValueRemovesAtAnyDepth(t *testing.T) {
	m := priomap.New[string, string]()
	m.Put("x", "a")
	m.Put("x", "a")
	m.Put("x", "b")

	n := m.RemoveValue("x", "a")
	qt.Assert(t, qt.Equals(n, 2))

	v, ok := m.Get("x")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, "b"))
}

func TestRemoveAllWithValueCrossesKeys(t *testing.T) {
	m := priomap.New[string, string]()
	m.Put("x", "shared")
	m.Put("y", "shared")
	m.Put("z", "other")

	n := m.RemoveAllWithValue("shared")
	qt.Assert(t, qt.Equals(n, 2))

	_, ok := m.Get("x")
	qt.Assert(t, qt.IsFalse(ok))
	_, ok = m.Get("y")
	qt.Assert(t, qt.IsFalse(ok))
	v, ok := m.Get("z")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, "other"))
}

func TestContainsValueOnlyTopOfStack(t *testing.T) {
	m := priomap.New[string, string]()
	m.Put("x", "shadowed")
	m.Put("x", "visible")

	qt.Assert(t, qt.IsTrue(m.ContainsValue("visible")))
	qt.Assert(t, qt.IsFalse(m.ContainsValue("shadowed")))
}

func TestImmutableCopyDoesNotAlias(t *testing.T) {
	m := priomap.New[string, string]()
	m.Put("x", "a")

	cp := m.ImmutableCopy()
	cp.Put("x", "b")
	cp.Put("y", "new")

	v, ok := m.Get("x")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, "a"))
	_, ok = m.Get("y")
	qt.Assert(t, qt.IsFalse(ok))

	v, ok = cp.Get("x")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, "b"))
}

func TestKeysAndEntriesReflectTopOfStack(t *testing.T) {
	m := priomap.New[string, string]()
	m.Put("x", "1")
	m.Put("x", "2")
	m.Put("y", "3")

	keys := m.Keys()
	sort.Strings(keys)
	qt.Assert(t, qt.DeepEquals(keys, []string{"x", "y"}))

	entries := m.Entries()
	qt.Assert(t, qt.DeepEquals(entries, map[string]string{"x": "2", "y": "3"}))

	values := m.Values()
	sort.Strings(values)
	qt.Assert(t, qt.DeepEquals(values, []string{"2", "3"}))
}
