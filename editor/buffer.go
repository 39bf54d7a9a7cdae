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
	"strings"

	gott "github.com/timburks/jot/types"
)

// A Buffer holds the text of the document being edited as a list of rows.
// A buffer always has at least one row; rows are separated by newlines,
// so Bytes() reproduces exactly what LoadBytes() was given.
type Buffer struct {
	rows     []*Row
	fileName string
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = []*Row{NewRow("")}
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) LoadBytes(bytes []byte) {
	lines := strings.Split(string(bytes), "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

func (b *Buffer) Bytes() []byte {
	return []byte(b.Text())
}

func (b *Buffer) Text() string {
	var s strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			s.WriteByte('\n')
		}
		s.WriteString(string(row.Text))
	}
	return s.String()
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	} else {
		return 0
	}
}

func (b *Buffer) TextAfter(row, col int) string {
	if row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	} else {
		return ""
	}
}

// Len returns the number of characters in the buffer, counting newlines.
func (b *Buffer) Len() int {
	n := len(b.rows) - 1
	for _, row := range b.rows {
		n += row.Length()
	}
	return n
}

// Offset converts a row/column position into a character offset.
func (b *Buffer) Offset(p gott.Point) int {
	offset := 0
	for i := 0; i < p.Row && i < len(b.rows); i++ {
		offset += b.rows[i].Length() + 1
	}
	return offset + p.Col
}

// PointAt converts a character offset into a row/column position,
// clipping offsets that are outside the buffer.
func (b *Buffer) PointAt(offset int) gott.Point {
	if offset < 0 {
		offset = 0
	}
	for i, row := range b.rows {
		if offset <= row.Length() {
			return gott.Point{Row: i, Col: offset}
		}
		offset -= row.Length() + 1
	}
	last := len(b.rows) - 1
	return gott.Point{Row: last, Col: b.rows[last].Length()}
}

// TextBetween returns the text between two positions, start first.
func (b *Buffer) TextBetween(start, end gott.Point) string {
	if start.Row == end.Row {
		return string(b.rows[start.Row].Text[start.Col:end.Col])
	}
	var s strings.Builder
	s.WriteString(string(b.rows[start.Row].Text[start.Col:]))
	for i := start.Row + 1; i < end.Row; i++ {
		s.WriteByte('\n')
		s.WriteString(string(b.rows[i].Text))
	}
	s.WriteByte('\n')
	s.WriteString(string(b.rows[end.Row].Text[:end.Col]))
	return s.String()
}

// Insert adds text at p and returns the position just after the inserted text.
func (b *Buffer) Insert(p gott.Point, text string) gott.Point {
	lines := strings.Split(text, "\n")
	row := b.rows[p.Row]
	tail := row.Split(p.Col)
	row.Join(NewRow(lines[0]))
	if len(lines) == 1 {
		end := gott.Point{Row: p.Row, Col: row.Length()}
		row.Join(tail)
		return end
	}
	added := make([]*Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		added = append(added, NewRow(line))
	}
	last := added[len(added)-1]
	end := gott.Point{Row: p.Row + len(added), Col: last.Length()}
	last.Join(tail)

	rows := make([]*Row, 0, len(b.rows)+len(added))
	rows = append(rows, b.rows[:p.Row+1]...)
	rows = append(rows, added...)
	rows = append(rows, b.rows[p.Row+1:]...)
	b.rows = rows
	return end
}

// Delete removes the text between two positions, start first, and returns it.
func (b *Buffer) Delete(start, end gott.Point) string {
	deletedText := b.TextBetween(start, end)
	first := b.rows[start.Row]
	last := b.rows[end.Row]
	text := make([]rune, 0, start.Col+last.Length()-end.Col)
	text = append(text, first.Text[:start.Col]...)
	text = append(text, last.Text[end.Col:]...)
	first.setText(text)
	if end.Row > start.Row {
		b.rows = append(b.rows[:start.Row+1], b.rows[end.Row+1:]...)
	}
	return deletedText
}
