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

import "github.com/google/uuid"

// Tag is an opaque symbolic reference used by Name nodes: any comparable
// caller-supplied value works (an enum, a pointer, a small struct). The
// core never inspects a Tag beyond using it as a map key.
type Tag = any

// tagID is the concrete Tag NewTag hands back.
type tagID struct {
	id   uuid.UUID
	hint string
}

func (t tagID) String() string { return t.hint }

// NewTag mints a process-unique opaque tag, for callers (tests, for
// instance) that have no natural comparable key of their own
// to hand to Name. hint is carried only for readability in diagnostics; it
// plays no part in equality — two tags minted with the same hint are
// still distinct tags.
func NewTag(hint string) Tag {
	return tagID{id: uuid.New(), hint: hint}
}
