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
	"fmt"
	"os"
	"unicode/utf8"

	gott "github.com/timburks/jot/types"
)

const defaultTabWidth = 8

// The Editor manages the editing of text in a Buffer.
// The selection runs from the anchor to the cursor; when a search
// succeeds the anchor is at the start of the match and the cursor at its end.
type Editor struct {
	Buffer    *Buffer     // active buffer being edited
	cursor    gott.Point  // cursor position
	anchor    gott.Point  // other end of the selection
	selecting bool        // true when anchor is meaningful
	offset    gott.Size   // display offset
	size      gott.Size   // size of editing area
	tabWidth  int         // columns between tab stops
	options   FindOptions // matching policy for Find
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	e.tabWidth = defaultTabWidth
	return e
}

func (e *Editor) SetTabWidth(width int) {
	if width > 0 {
		e.tabWidth = width
	}
}

func (e *Editor) SetFindOptions(options FindOptions) {
	e.options = options
}

// ReadFile replaces the buffer with the contents of path and records path
// as the buffer's file. If the file can't be read or isn't UTF-8, nothing changes.
func (e *Editor) ReadFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !utf8.Valid(b) {
		return fmt.Errorf("%s is not UTF-8 text", path)
	}
	e.Buffer.LoadBytes(b)
	e.Buffer.SetFileName(path)
	e.cursor = gott.Point{}
	e.offset = gott.Size{}
	e.selecting = false
	return nil
}

// WriteFile writes the buffer to path. The buffer's file name is unchanged.
func (e *Editor) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = f.Write(e.Bytes()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (e *Editor) GetFileName() string {
	return e.Buffer.GetFileName()
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

func (e *Editor) Text() string {
	return e.Buffer.Text()
}

// SetText replaces the whole buffer and moves the cursor to the start.
func (e *Editor) SetText(text string) {
	e.Buffer.LoadBytes([]byte(text))
	e.cursor = gott.Point{}
	e.offset = gott.Size{}
	e.selecting = false
}

func (e *Editor) GetCursor() gott.Point {
	return e.cursor
}

func (e *Editor) GetRowCount() int {
	return e.Buffer.GetRowCount()
}

// Cursor returns the cursor as a character offset.
func (e *Editor) Cursor() int {
	return e.Buffer.Offset(e.cursor)
}

// SetCursor moves the cursor to a character offset and clears the selection.
func (e *Editor) SetCursor(offset int) {
	e.cursor = e.Buffer.PointAt(offset)
	e.selecting = false
}

func (e *Editor) MoveToStart() {
	e.SetCursor(0)
}

func (e *Editor) MoveToEnd() {
	e.SetCursor(e.Buffer.Len())
}

// Selection returns the selected range as character offsets.
func (e *Editor) Selection() (start int, end int, ok bool) {
	cursor := e.Buffer.Offset(e.cursor)
	if !e.selecting {
		return cursor, cursor, false
	}
	anchor := e.Buffer.Offset(e.anchor)
	if anchor == cursor {
		return cursor, cursor, false
	}
	if anchor < cursor {
		return anchor, cursor, true
	}
	return cursor, anchor, true
}

// Select selects the text between two offsets, leaving the cursor at end.
func (e *Editor) Select(start, end int) {
	e.anchor = e.Buffer.PointAt(start)
	e.cursor = e.Buffer.PointAt(end)
	e.selecting = true
}

func (e *Editor) SelectAll() {
	e.Select(0, e.Buffer.Len())
}

func (e *Editor) SelectedText() string {
	start, end, ok := e.Selection()
	if !ok {
		return ""
	}
	return e.Buffer.TextBetween(e.Buffer.PointAt(start), e.Buffer.PointAt(end))
}

// Find moves the selection to the next (or previous) occurrence of term
// and reports whether there was one. A forward search starts at the end
// of the selection, a backward search at its start. Find never wraps;
// when nothing matches the cursor and selection are left alone.
func (e *Editor) Find(term string, backward bool) bool {
	pattern := []rune(term)
	if len(pattern) == 0 {
		return false
	}
	text := []rune(e.Buffer.Text())
	start, end, _ := e.Selection()
	var i int
	if backward {
		i = findBackward(text, pattern, start, e.options)
	} else {
		i = findForward(text, pattern, end, e.options)
	}
	if i < 0 {
		return false
	}
	e.Select(i, i+len(pattern))
	return true
}

// deleteSelection removes selected text and reports whether there was any.
func (e *Editor) deleteSelection() bool {
	start, end, ok := e.Selection()
	e.selecting = false
	if !ok {
		return false
	}
	from := e.Buffer.PointAt(start)
	e.Buffer.Delete(from, e.Buffer.PointAt(end))
	e.cursor = from
	return true
}

// InsertText replaces the selection (if any) with text and leaves the
// cursor after the inserted text.
func (e *Editor) InsertText(text string) {
	e.deleteSelection()
	e.cursor = e.Buffer.Insert(e.cursor, text)
}

func (e *Editor) InsertChar(c rune) {
	e.InsertText(string(c))
}

func (e *Editor) BackspaceChar() {
	if e.deleteSelection() {
		return
	}
	offset := e.Buffer.Offset(e.cursor)
	if offset == 0 {
		return
	}
	from := e.Buffer.PointAt(offset - 1)
	e.Buffer.Delete(from, e.cursor)
	e.cursor = from
}

func (e *Editor) DeleteChar() {
	if e.deleteSelection() {
		return
	}
	offset := e.Buffer.Offset(e.cursor)
	if offset >= e.Buffer.Len() {
		return
	}
	e.Buffer.Delete(e.cursor, e.Buffer.PointAt(offset+1))
}

// beginMotion prepares the selection for a cursor movement.
// Extending motions keep (or start) a selection, others drop it.
func (e *Editor) beginMotion(extend bool) {
	if extend {
		if !e.selecting {
			e.anchor = e.cursor
			e.selecting = true
		}
	} else {
		e.selecting = false
	}
}

func (e *Editor) MoveCursor(direction int, extend bool) {
	e.beginMotion(extend)
	switch direction {
	case gott.MoveLeft:
		if e.cursor.Col > 0 {
			e.cursor.Col--
		} else if e.cursor.Row > 0 {
			e.cursor.Row--
			e.cursor.Col = e.Buffer.GetRowLength(e.cursor.Row)
		}
		return
	case gott.MoveRight:
		if e.cursor.Col < e.Buffer.GetRowLength(e.cursor.Row) {
			e.cursor.Col++
		} else if e.cursor.Row < e.Buffer.GetRowCount()-1 {
			e.cursor.Row++
			e.cursor.Col = 0
		}
		return
	case gott.MoveUp:
		if e.cursor.Row > 0 {
			e.cursor.Row--
		}
	case gott.MoveDown:
		if e.cursor.Row < e.Buffer.GetRowCount()-1 {
			e.cursor.Row++
		}
	}
	e.keepCursorInRow()
}

func (e *Editor) keepCursorInRow() {
	e.cursor.Row = clipToRange(e.cursor.Row, 0, e.Buffer.GetRowCount()-1)
	e.cursor.Col = clipToRange(e.cursor.Col, 0, e.Buffer.GetRowLength(e.cursor.Row))
}

func (e *Editor) MoveToBeginningOfLine(extend bool) {
	e.beginMotion(extend)
	e.cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine(extend bool) {
	e.beginMotion(extend)
	e.cursor.Col = e.Buffer.GetRowLength(e.cursor.Row)
}

func (e *Editor) PageUp(extend bool) {
	e.beginMotion(extend)
	e.cursor.Row -= e.pageSize()
	e.keepCursorInRow()
}

func (e *Editor) PageDown(extend bool) {
	e.beginMotion(extend)
	e.cursor.Row += e.pageSize()
	e.keepCursorInRow()
}

func (e *Editor) pageSize() int {
	if e.size.Rows > 1 {
		return e.size.Rows - 1
	}
	return 1
}

func clipToRange(v, min, max int) int {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}
