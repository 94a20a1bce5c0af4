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

// Package jerrors defines the four error kinds raised by the document
// algebra, the chunk/scope resolver and the printer: structural violations
// caught at construction time, unresolved names caught at emission time,
// sink failures, and programmer misuse of the print entry point.
//
// Grounded on cuelang.org/go/cue/errors: wrap rather than re-stringify the
// underlying cause, support errors.Is/As via Unwrap, and keep the zoo of
// constructors small (New*-style helpers, not bare fmt.Errorf scattered
// through callers).
package jerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an Error per the taxonomy in the core's error handling
// design: Structural and Usage halt construction, Resolution and Output
// halt emission. Nothing is retried.
type Kind int

const (
	// Structural marks a document that violates a construction-time
	// invariant: a Choice/Concat tag conflict, a nested Statement, or a
	// Statement exit with no matching enter.
	Structural Kind = iota + 1
	// Resolution marks a Name or TypeRef tag absent from the chunk's name
	// map at emission time.
	Resolution
	// Output marks a failure from the underlying sink.
	Output
	// Usage marks an out-of-range call at the print boundary: width <= 0,
	// a zero-value document, and so on.
	Usage
)

func (k Kind) String() string {
	switch k {
	case Structural:
		return "structural"
	case Resolution:
		return "resolution"
	case Output:
		return "output"
	case Usage:
		return "usage"
	default:
		return "unknown"
	}
}

// Error is the concrete error value raised by every constructor and
// printer failure in this module.
type Error struct {
	Kind Kind
	// Op names the offending operator or call site, e.g. "Statement",
	// "Choice", "print".
	Op string
	// Path records the qualified class names of the active context
	// scopes (outermost first) at the point an error was raised, when one
	// is available. This plays the role the teacher's token.Pos path
	// plays for CUE values: the core has no source positions of its own,
	// so the scope path is the closest available diagnostic trail.
	Path []string
	Msg  string
	// Err is the wrapped cause, used for Output errors to preserve the
	// sink's original error via Unwrap.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if len(e.Path) > 0 {
		b.WriteString(" (at ")
		b.WriteString(strings.Join(e.Path, " > "))
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// NewStructural reports a document construction invariant violation.
func NewStructural(op, msg string) *Error {
	return &Error{Kind: Structural, Op: op, Msg: msg}
}

// NewResolution reports a Name/TypeRef tag with no binding in the ambient
// name map at the point it was about to be emitted.
func NewResolution(tag any, path []string) *Error {
	return &Error{
		Kind: Resolution,
		Op:   "resolve",
		Path: path,
		Msg:  fmt.Sprintf("no binding for tag %v", tag),
	}
}

// NewOutput wraps a failure from the output sink.
func NewOutput(cause error) *Error {
	return &Error{Kind: Output, Op: "sink", Msg: "write failed", Err: cause}
}

// NewUsage reports a programmer-usage error rejected eagerly at the print
// boundary.
func NewUsage(msg string) *Error {
	return &Error{Kind: Usage, Op: "print", Msg: msg}
}

// Is reports whether err carries the given Kind.
func Is(err error, k Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == k
}
