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
	"sync/atomic"

	"github.com/cuelang-notation/jnotate/naming"
)

// TypeRef is a reference to a Java type, either a concrete class (Class
// set, TypeVariable false) or a type-variable occurrence (TypeVariable
// true). Two TypeRef values referring to the same concrete class always
// compare equal regardless of how many times the caller constructed them
// — that is what lets a single chunk.names entry resolve every occurrence
// of "java.util.List" in a document. Two type-variable occurrences are
// deliberately never equal to each other even when they share a printable
// Name: spec §4.4 requires a context to bind two syntactically distinct
// type-variable objects (e.g. a class's <T> and one of its method's <T>)
// to the same printed name without collapsing them into one key up front;
// id exists solely to keep them distinct until that binding happens.
type TypeRef struct {
	Class        naming.ClassName
	Name         string
	TypeVariable bool
	id           int64
}

var typeRefSeq int64

func nextTypeRefID() int64 {
	return atomic.AddInt64(&typeRefSeq, 1)
}

// NewTypeRef constructs a reference to a concrete class.
func NewTypeRef(class naming.ClassName) TypeRef {
	return TypeRef{Class: class, Name: class.Simple()}
}

// NewTypeVar constructs a reference to a type-variable occurrence with the
// given printable name (e.g. "T"). Each call produces a distinct TypeRef.
func NewTypeVar(printableName string) TypeRef {
	return TypeRef{Name: printableName, TypeVariable: true, id: nextTypeRefID()}
}

func (r TypeRef) String() string {
	if r.TypeVariable {
		return r.Name
	}
	return r.Class.Qualified()
}
