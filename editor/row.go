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
	"github.com/mattn/go-runewidth"
)

// A row of text in the editor
type Row struct {
	Text []rune
}

// Tabs are kept as they are so that files round-trip unchanged;
// they are expanded only when the row is drawn.
func NewRow(text string) *Row {
	r := &Row{}
	r.setText([]rune(text))
	return r
}

func (r *Row) setText(text []rune) {
	r.Text = text
}

func (r *Row) Length() int {
	return len(r.Text)
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	if col < len(r.Text) {
		after := r.Text[col:]
		r.setText(r.Text[0:col:col])
		return NewRow(string(after))
	} else {
		return NewRow("")
	}
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	r.setText(append(r.Text, other.Text...))
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < len(r.Text) {
		return string(r.Text[col:])
	} else {
		return ""
	}
}

// cellWidth is the number of screen cells c occupies when drawn at display column x.
func cellWidth(c rune, x int, tabWidth int) int {
	switch {
	case c == '\t':
		return tabWidth - x%tabWidth
	case c < ' ':
		return 1
	}
	w := runewidth.RuneWidth(c)
	if w == 0 {
		// combining marks still get a cell of their own
		return 1
	}
	return w
}

// DisplayColumn returns the screen column of the character at col.
func (r *Row) DisplayColumn(col int, tabWidth int) int {
	x := 0
	for i := 0; i < col && i < len(r.Text); i++ {
		x += cellWidth(r.Text[i], x, tabWidth)
	}
	return x
}
