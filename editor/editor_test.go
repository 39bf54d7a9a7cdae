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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gott "github.com/timburks/jot/types"
)

const source = "testdata/gettysburg-address.txt"

func setup(t *testing.T) *Editor {
	editor := NewEditor()
	err := editor.ReadFile(source)
	require.NoError(t, err, "Read failed")
	return editor
}

// final writes the editor's buffer out and checks that it matches the source file.
func final(t *testing.T, editor *Editor) {
	path := filepath.Join(t.TempDir(), "test-final.txt")
	require.NoError(t, editor.WriteFile(path))
	expected, err := os.ReadFile(source)
	require.NoError(t, err)
	actual, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(actual))
}

func selection(e *Editor) []int {
	start, end, ok := e.Selection()
	if !ok {
		return nil
	}
	return []int{start, end}
}

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	editor := setup(t)
	assert.Equal(t, source, editor.GetFileName())
	assert.Equal(t, 0, editor.Cursor())
	final(t, editor)
}

func TestReadWriteInvarianceWithTabsAndCarriageReturns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.txt")
	content := "a\tb\r\n\tindented\r\nno newline at end"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	editor := NewEditor()
	require.NoError(t, editor.ReadFile(path))
	require.NoError(t, editor.WriteFile(path))

	actual, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(actual))
}

func TestReadFileRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	content := []byte("caf\xe9\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	editor := NewEditor()
	editor.SetText("keep me")
	assert.Error(t, editor.ReadFile(path))
	assert.Equal(t, "keep me", editor.Text())
	assert.Equal(t, "", editor.GetFileName())

	actual, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, actual)
}

func TestReadFileFailureLeavesBufferAlone(t *testing.T) {
	editor := NewEditor()
	editor.SetText("keep me")
	editor.SetCursor(4)

	err := editor.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	assert.Equal(t, "keep me", editor.Text())
	assert.Equal(t, "", editor.GetFileName())
	assert.Equal(t, 4, editor.Cursor())

	err = editor.ReadFile(t.TempDir())
	assert.Error(t, err)
	assert.Equal(t, "keep me", editor.Text())
	assert.Equal(t, "", editor.GetFileName())
}

func TestWriteFileKeepsFileName(t *testing.T) {
	editor := setup(t)
	other := filepath.Join(t.TempDir(), "copy.txt")
	require.NoError(t, editor.WriteFile(other))
	assert.Equal(t, source, editor.GetFileName())
}

func TestWriteFileFailure(t *testing.T) {
	editor := NewEditor()
	editor.SetText("x")
	err := editor.WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir.txt"))
	assert.Error(t, err)
}

func TestInsert(t *testing.T) {
	editor := setup(t)
	editor.SetCursor(editor.Buffer.Offset(gott.Point{Row: 1, Col: 0}))
	editor.InsertText("hello, world!")
	assert.Equal(t, "hello, world!", editor.Buffer.TextAfter(1, 0))

	editor.SetCursor(editor.Buffer.Offset(gott.Point{Row: 0, Col: 4}))
	editor.InsertText("BIG LEAGUE ")
	assert.Equal(t, "THE BIG LEAGUE GETTYSBURG ADDRESS:", editor.Buffer.TextAfter(0, 0))
	assert.Equal(t, gott.Point{Row: 0, Col: 15}, editor.GetCursor())

	editor.SetCursor(editor.Buffer.Offset(gott.Point{Row: 0, Col: 3}))
	editor.InsertText("\nsplit\n")
	assert.Equal(t, "THE", editor.Buffer.TextAfter(0, 0))
	assert.Equal(t, "split", editor.Buffer.TextAfter(1, 0))
	assert.Equal(t, " BIG LEAGUE GETTYSBURG ADDRESS:", editor.Buffer.TextAfter(2, 0))
	assert.Equal(t, gott.Point{Row: 2, Col: 0}, editor.GetCursor())
}

func TestBackspaceAndDelete(t *testing.T) {
	editor := NewEditor()
	editor.SetText("ab\ncd")
	editor.SetCursor(3)
	editor.BackspaceChar()
	assert.Equal(t, "abcd", editor.Text())
	assert.Equal(t, 2, editor.Cursor())

	editor.DeleteChar()
	assert.Equal(t, "abd", editor.Text())

	editor.MoveToStart()
	editor.BackspaceChar()
	assert.Equal(t, "abd", editor.Text())

	editor.MoveToEnd()
	editor.DeleteChar()
	assert.Equal(t, "abd", editor.Text())
}

func TestTypingReplacesSelection(t *testing.T) {
	editor := NewEditor()
	editor.SetText("hello world")
	editor.Select(0, 5)
	editor.InsertChar('J')
	assert.Equal(t, "J world", editor.Text())
	assert.Equal(t, 1, editor.Cursor())

	editor.SelectAll()
	assert.Equal(t, "J world", editor.SelectedText())
	editor.BackspaceChar()
	assert.Equal(t, "", editor.Text())
}

func TestShiftMotionExtendsSelection(t *testing.T) {
	editor := NewEditor()
	editor.SetText("one\ntwo")
	editor.MoveCursor(gott.MoveRight, true)
	editor.MoveCursor(gott.MoveRight, true)
	assert.Equal(t, "on", editor.SelectedText())
	editor.MoveCursor(gott.MoveDown, true)
	assert.Equal(t, "one\ntw", editor.SelectedText())
	editor.MoveCursor(gott.MoveLeft, false)
	assert.Nil(t, selection(editor))
	editor.MoveToEndOfLine(true)
	assert.Equal(t, "wo", editor.SelectedText())
}

func TestCursorMotionWrapsBetweenRows(t *testing.T) {
	editor := NewEditor()
	editor.SetText("ab\nc")
	editor.MoveToEndOfLine(false)
	editor.MoveCursor(gott.MoveRight, false)
	assert.Equal(t, gott.Point{Row: 1, Col: 0}, editor.GetCursor())
	editor.MoveCursor(gott.MoveLeft, false)
	assert.Equal(t, gott.Point{Row: 0, Col: 2}, editor.GetCursor())
	editor.MoveCursor(gott.MoveDown, false)
	assert.Equal(t, gott.Point{Row: 1, Col: 1}, editor.GetCursor())
}

func TestFindForwardAndBackward(t *testing.T) {
	editor := NewEditor()
	editor.SetText("hello world hello")

	assert.True(t, editor.Find("hello", false))
	assert.Equal(t, []int{0, 5}, selection(editor))
	assert.Equal(t, 5, editor.Cursor())

	assert.True(t, editor.Find("hello", false))
	assert.Equal(t, []int{12, 17}, selection(editor))

	// no wrapping; the selection stays where it was
	assert.False(t, editor.Find("hello", false))
	assert.Equal(t, []int{12, 17}, selection(editor))

	assert.True(t, editor.Find("hello", true))
	assert.Equal(t, []int{0, 5}, selection(editor))
	assert.False(t, editor.Find("hello", true))
	assert.Equal(t, []int{0, 5}, selection(editor))
}

func TestFindFromCursorWithoutSelection(t *testing.T) {
	editor := NewEditor()
	editor.SetText("abcabc")
	editor.SetCursor(1)
	assert.True(t, editor.Find("abc", false))
	assert.Equal(t, []int{3, 6}, selection(editor))

	editor.SetCursor(3)
	assert.True(t, editor.Find("abc", true))
	assert.Equal(t, []int{0, 3}, selection(editor))

	editor.MoveToEnd()
	assert.True(t, editor.Find("abc", true))
	assert.Equal(t, []int{3, 6}, selection(editor))
}

func TestFindOptions(t *testing.T) {
	tests := []struct {
		name     string
		options  FindOptions
		text     string
		term     string
		expected []int
	}{
		{"case insensitive by default", FindOptions{}, "say HELLO", "hello", []int{4, 9}},
		{"case sensitive", FindOptions{CaseSensitive: true}, "Hello hello", "hello", []int{6, 11}},
		{"case sensitive miss", FindOptions{CaseSensitive: true}, "HELLO", "hello", nil},
		{"substring", FindOptions{}, "concat cat", "cat", []int{3, 6}},
		{"whole words", FindOptions{WholeWords: true}, "concat cat", "cat", []int{7, 10}},
		{"whole words miss", FindOptions{WholeWords: true}, "concatenate", "cat", nil},
		{"non-ascii", FindOptions{}, "Größe ÜBER", "über", []int{6, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editor := NewEditor()
			editor.SetFindOptions(tt.options)
			editor.SetText(tt.text)
			found := editor.Find(tt.term, false)
			assert.Equal(t, tt.expected != nil, found)
			assert.Equal(t, tt.expected, selection(editor))
		})
	}
}

func TestFindAcrossRows(t *testing.T) {
	editor := setup(t)
	require.True(t, editor.Find("nation", false))
	assert.Equal(t, gott.Point{Row: 3, Col: 22}, editor.GetCursor())
	assert.Equal(t, "nation", editor.SelectedText())

	editor.MoveToEnd()
	require.True(t, editor.Find("nation", true))
	assert.Equal(t, 23, editor.GetCursor().Row)
}

func TestFindEmptyTerm(t *testing.T) {
	editor := NewEditor()
	editor.SetText("abc")
	assert.False(t, editor.Find("", false))
	assert.False(t, editor.Find("", true))
}

func TestOffsetConversions(t *testing.T) {
	b := NewBuffer()
	b.LoadBytes([]byte("ab\n\ncde"))
	assert.Equal(t, 7, b.Len())
	for offset := 0; offset <= b.Len(); offset++ {
		assert.Equal(t, offset, b.Offset(b.PointAt(offset)))
	}
	assert.Equal(t, gott.Point{Row: 1, Col: 0}, b.PointAt(3))
	assert.Equal(t, gott.Point{Row: 2, Col: 3}, b.PointAt(100))
	assert.Equal(t, gott.Point{Row: 0, Col: 0}, b.PointAt(-1))
}

type cellDisplay map[gott.Point]cell

type cell struct {
	c     rune
	style gott.Style
}

func (d cellDisplay) SetCell(x int, y int, c rune, style gott.Style) {
	d[gott.Point{Row: y, Col: x}] = cell{c, style}
}

func TestRender(t *testing.T) {
	editor := NewEditor()
	editor.SetTabWidth(4)
	editor.SetText("a\tb\nfind me")
	editor.Find("me", false)

	display := cellDisplay{}
	editor.Render(display, gott.Point{Row: 1, Col: 0}, gott.Size{Rows: 3, Cols: 20})

	assert.Equal(t, cell{'a', gott.StyleText}, display[gott.Point{Row: 1, Col: 0}])
	assert.Equal(t, cell{' ', gott.StyleText}, display[gott.Point{Row: 1, Col: 3}])
	assert.Equal(t, cell{'b', gott.StyleText}, display[gott.Point{Row: 1, Col: 4}])
	assert.Equal(t, cell{'f', gott.StyleText}, display[gott.Point{Row: 2, Col: 0}])
	assert.Equal(t, cell{'m', gott.StyleSelection}, display[gott.Point{Row: 2, Col: 5}])
	assert.Equal(t, cell{'e', gott.StyleSelection}, display[gott.Point{Row: 2, Col: 6}])
	assert.Equal(t, cell{'~', gott.StyleTilde}, display[gott.Point{Row: 3, Col: 0}])
	assert.Equal(t, gott.Point{Row: 1, Col: 7}, editor.ScreenCursor())
}

func TestRenderScrollsToCursor(t *testing.T) {
	editor := setup(t)
	editor.MoveToEnd()
	display := cellDisplay{}
	editor.Render(display, gott.Point{}, gott.Size{Rows: 5, Cols: 10})

	cursor := editor.ScreenCursor()
	assert.Equal(t, 4, cursor.Row)
	assert.True(t, cursor.Col >= 0 && cursor.Col < 10)
	// the file ends with a newline, so the last row is empty
	assert.Equal(t, cell{'N', gott.StyleText}, display[gott.Point{Row: 3, Col: 0}])
	_, drawn := display[gott.Point{Row: 4, Col: 0}]
	assert.False(t, drawn)
}

func TestRenderSelectionAfterScrolling(t *testing.T) {
	editor := NewEditor()
	editor.SetText("one\ntwo\nthree\nfour")
	require.True(t, editor.Find("four", false))

	display := cellDisplay{}
	editor.Render(display, gott.Point{}, gott.Size{Rows: 2, Cols: 20})

	assert.Equal(t, cell{'t', gott.StyleText}, display[gott.Point{Row: 0, Col: 0}])
	assert.Equal(t, cell{'e', gott.StyleText}, display[gott.Point{Row: 0, Col: 4}])
	assert.Equal(t, cell{'f', gott.StyleSelection}, display[gott.Point{Row: 1, Col: 0}])
	assert.Equal(t, cell{'r', gott.StyleSelection}, display[gott.Point{Row: 1, Col: 3}])
}
