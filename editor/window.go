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

	gott "github.com/timburks/jot/types"
)

// draw text in an area defined by origin and size, scrolled to keep the cursor visible
func (e *Editor) Render(display gott.Display, origin gott.Point, size gott.Size) {
	e.size = size
	e.adjustDisplayOffsetForScrolling()

	b := e.Buffer
	selStart, selEnd, selected := e.Selection()

	rowStart := b.Offset(gott.Point{Row: e.offset.Rows})
	for i := 0; i < size.Rows; i++ {
		y := origin.Row + i
		r := i + e.offset.Rows
		if r >= b.GetRowCount() {
			display.SetCell(origin.Col, y, '~', gott.StyleTilde)
			continue
		}
		row := b.rows[r]
		if i > 0 {
			rowStart += b.rows[r-1].Length() + 1
		}
		x := 0
		for col, c := range row.Text {
			w := cellWidth(c, x, e.tabWidth)
			style := gott.StyleText
			if selected && rowStart+col >= selStart && rowStart+col < selEnd {
				style = gott.StyleSelection
			}
			glyph := c
			if c == '\t' {
				glyph = ' '
			} else if c < ' ' || runewidth.RuneWidth(c) == 0 {
				glyph = '^'
			}
			for k := 0; k < w; k++ {
				screenX := x + k - e.offset.Cols
				if screenX < 0 || screenX >= size.Cols {
					continue
				}
				if k == 0 || c == '\t' {
					display.SetCell(origin.Col+screenX, y, glyph, style)
				}
			}
			x += w
			if x-e.offset.Cols >= size.Cols {
				break
			}
		}
	}
}

// Recompute the display offset to keep the cursor onscreen.
func (e *Editor) adjustDisplayOffsetForScrolling() {
	if e.cursor.Row < e.offset.Rows {
		// scroll up
		e.offset.Rows = e.cursor.Row
	}
	if e.cursor.Row-e.offset.Rows >= e.size.Rows {
		// scroll down
		e.offset.Rows = e.cursor.Row - e.size.Rows + 1
	}
	col := e.Buffer.rows[e.cursor.Row].DisplayColumn(e.cursor.Col, e.tabWidth)
	if col < e.offset.Cols {
		// scroll left
		e.offset.Cols = col
	}
	if col-e.offset.Cols >= e.size.Cols {
		// scroll right
		e.offset.Cols = col - e.size.Cols + 1
	}
}

// ScreenCursor returns the cursor position relative to the text area.
func (e *Editor) ScreenCursor() gott.Point {
	col := e.Buffer.rows[e.cursor.Row].DisplayColumn(e.cursor.Col, e.tabWidth)
	return gott.Point{
		Col: col - e.offset.Cols,
		Row: e.cursor.Row - e.offset.Rows,
	}
}
