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
package types

// Editor modes
const (
	ModeEdit   = 0
	ModePrompt = 1
	ModeQuit   = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Style names the way a cell is drawn; backends map styles to attributes.
type Style int

const (
	StyleText Style = iota
	StyleSelection
	StyleBar
	StyleTilde
)

// Event types
const (
	EventKey       = 0
	EventResize    = 1
	EventPaste     = 2
	EventInterrupt = 3
)

// Key identifies a non-character key. Printable input arrives in Event.Ch
// with Key set to KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyUnsupported
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
	KeyF1
	KeyF3
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// Modifier is a bit set of modifier keys held during a key event.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
	Mod  Modifier
	Text string // pasted text, for EventPaste
}

// A Display is a grid of cells that text can be drawn on.
type Display interface {
	SetCell(x int, y int, c rune, style Style)
}

// Editor is the text buffer as seen by the commander and the screen.
type Editor interface {
	ReadFile(path string) error
	WriteFile(path string) error
	GetFileName() string
	Bytes() []byte
	Text() string
	SetText(text string)

	GetCursor() Point
	GetRowCount() int
	Cursor() int
	SetCursor(offset int)
	MoveToStart()
	MoveToEnd()
	Selection() (start int, end int, ok bool)
	SelectAll()
	SelectedText() string
	Find(term string, backward bool) bool

	InsertText(text string)
	InsertChar(c rune)
	BackspaceChar()
	DeleteChar()
	MoveCursor(direction int, extend bool)
	MoveToBeginningOfLine(extend bool)
	MoveToEndOfLine(extend bool)
	PageUp(extend bool)
	PageDown(extend bool)

	Render(display Display, origin Point, size Size)
	ScreenCursor() Point
}

// Commander is the input state as seen by the screen.
type Commander interface {
	GetMode() int
	GetPrompt() string
	GetMessage() string
	GetHints() string
}
