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
	"unicode"
	"unicode/utf8"
)

// whitespaceFilter is the sole mechanism suppressing spaces left dangling
// by choice reselection (spec §4.5): it buffers whitespace runes and only
// ever flushes them immediately before a non-whitespace rune, so trailing
// whitespace before a newline — or at the very end of the document — is
// silently dropped.
type whitespaceFilter struct {
	w   Sink
	buf []byte
}

func newWhitespaceFilter(w Sink) *whitespaceFilter {
	return &whitespaceFilter{w: w}
}

// flush discards any buffered trailing whitespace: reaching true
// end-of-output with spaces still buffered means they were trailing and
// are dropped, never written.
func (f *whitespaceFilter) flush() error {
	f.buf = f.buf[:0]
	return nil
}

// write feeds s through the filter. Go strings are never nil, so the
// teacher specification's "null input writes the literal four characters
// n u l l" (mirroring java.lang.Appendable.append(null)) has no
// counterpart here: there is no null string to special-case.
func (f *whitespaceFilter) write(s string) error {
	for _, r := range s {
		switch {
		case r == '\n':
			if _, err := f.w.WriteString("\n"); err != nil {
				return err
			}
			f.buf = f.buf[:0]
		case unicode.IsSpace(r):
			f.buf = utf8.AppendRune(f.buf, r)
		default:
			if len(f.buf) > 0 {
				if _, err := f.w.WriteString(string(f.buf)); err != nil {
					return err
				}
				f.buf = f.buf[:0]
			}
			if _, err := f.w.WriteString(string(r)); err != nil {
				return err
			}
		}
	}
	return nil
}
