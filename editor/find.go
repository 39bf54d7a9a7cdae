//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"unicode"
)

// FindOptions control how Find matches text.
// The zero value matches substrings without regard to case.
type FindOptions struct {
	CaseSensitive bool
	WholeWords    bool
}

func sameRune(a, b rune, caseSensitive bool) bool {
	if a == b {
		return true
	}
	if caseSensitive {
		return false
	}
	return unicode.ToLower(a) == unicode.ToLower(b)
}

func isWordRune(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

// checkalphanum reports whether the span [start,end) touches a word character.
func checkalphanum(text []rune, start, end int) bool {
	if start > 0 && isWordRune(text[start-1]) {
		return true
	}
	if end < len(text) && isWordRune(text[end]) {
		return true
	}
	return false
}

func matchAt(text, term []rune, i int, options FindOptions) bool {
	if i < 0 || i+len(term) > len(text) {
		return false
	}
	for j, c := range term {
		if !sameRune(text[i+j], c, options.CaseSensitive) {
			return false
		}
	}
	if options.WholeWords && checkalphanum(text, i, i+len(term)) {
		return false
	}
	return true
}

// findForward returns the index of the first match starting at or after from, or -1.
func findForward(text, term []rune, from int, options FindOptions) int {
	if len(term) == 0 {
		return -1
	}
	if from < 0 {
		from = 0
	}
	for i := from; i+len(term) <= len(text); i++ {
		if matchAt(text, term, i, options) {
			return i
		}
	}
	return -1
}

// findBackward returns the index of the last match starting before before, or -1.
func findBackward(text, term []rune, before int, options FindOptions) int {
	if len(term) == 0 {
		return -1
	}
	i := before - 1
	if i > len(text)-len(term) {
		i = len(text) - len(term)
	}
	for ; i >= 0; i-- {
		if matchAt(text, term, i, options) {
			return i
		}
	}
	return -1
}
