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

import "golang.org/x/text/width"

// runeWidth returns r's contribution to the column cursor: 2 for East
// Asian wide/fullwidth runes, 1 otherwise. print's contract only promises
// UTF-8 safety (spec §6), not ASCII input, so the column budget that
// decides whether a Choice fits must account for display width, not byte
// count — the one place jnotate reaches into the pack's shared
// golang.org/x/text dependency (see DESIGN.md).
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// displayWidth returns the total column width of s.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}
