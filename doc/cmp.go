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

import "github.com/google/go-cmp/cmp"

// EquateDocuments returns a cmp.Option that compares Document values with
// Equal instead of field-by-field, so a go-cmp diff of two structures
// containing Documents (a Chunk, a test fixture, ...) doesn't trip over
// the unexported node payload or the derived summaries.
//
// Grounded on the teacher's own test suites (cue/ast/ast_test.go,
// mod/module/module_test.go), which register custom go-cmp Options for
// their AST/path types rather than relying on cmp's default struct
// comparison.
func EquateDocuments() cmp.Option {
	return cmp.Comparer(func(a, b Document) bool { return a.Equal(b) })
}

// Diff renders a human-readable structural diff between a and b's
// notation trees, for diagnostics and tests. The Structural error raised
// by a Choice or Concat tag conflict does not use it; that message names
// the two conflicting suggestions directly.
func Diff(a, b Document) string {
	return cmp.Diff(a.Notation().DebugString(), b.Notation().DebugString())
}
