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
package screen

import (
	"github.com/nsf/termbox-go"

	gott "github.com/timburks/jot/types"
)

// TermboxBackend draws with termbox. Termbox has no bracketed paste, so
// pasted text arrives as keystrokes and drops are typed into the buffer.
type TermboxBackend struct{}

func NewTermboxBackend() (*TermboxBackend, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	return &TermboxBackend{}, nil
}

func (t *TermboxBackend) Size() (int, int) {
	return termbox.Size()
}

func (t *TermboxBackend) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (t *TermboxBackend) SetCell(x, y int, c rune, style gott.Style) {
	fg, bg := termboxColors(style)
	termbox.SetCell(x, y, c, fg, bg)
}

func (t *TermboxBackend) ShowCursor(x, y int) {
	termbox.SetCursor(x, y)
}

func (t *TermboxBackend) HideCursor() {
	termbox.HideCursor()
}

func (t *TermboxBackend) Show() {
	termbox.Flush()
}

func (t *TermboxBackend) Interrupt() {
	termbox.Interrupt()
}

func (t *TermboxBackend) Close() {
	termbox.Close()
}

func (t *TermboxBackend) PollEvent() *gott.Event {
	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventKey:
			return termboxKeyEvent(event)
		case termbox.EventResize:
			termbox.Flush()
			return &gott.Event{Type: gott.EventResize}
		case termbox.EventInterrupt:
			return &gott.Event{Type: gott.EventInterrupt}
		}
	}
}

func termboxKeyEvent(event termbox.Event) *gott.Event {
	e := &gott.Event{Type: gott.EventKey, Key: key(event.Key)}
	if event.Mod&termbox.ModAlt != 0 {
		e.Mod |= gott.ModAlt
	}
	if event.Key == 0 && event.Ch != 0 {
		e.Key = gott.KeyNone
		e.Ch = event.Ch
	}
	return e
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace
	case termbox.KeyDelete:
		return gott.KeyDelete
	case termbox.KeyEnd:
		return gott.KeyEnd
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyHome:
		return gott.KeyHome
	case termbox.KeyPgdn:
		return gott.KeyPgdn
	case termbox.KeyPgup:
		return gott.KeyPgup
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	case termbox.KeyF1:
		return gott.KeyF1
	case termbox.KeyF3:
		return gott.KeyF3
	}
	if k >= termbox.KeyCtrlA && k <= termbox.KeyCtrlZ {
		return gott.KeyCtrlA + gott.Key(k-termbox.KeyCtrlA)
	}
	return gott.KeyUnsupported
}

func termboxColors(style gott.Style) (termbox.Attribute, termbox.Attribute) {
	switch style {
	case gott.StyleSelection:
		return termbox.ColorDefault | termbox.AttrReverse, termbox.ColorDefault
	case gott.StyleBar:
		return termbox.ColorDefault | termbox.AttrReverse | termbox.AttrBold, termbox.ColorDefault
	case gott.StyleTilde:
		return termbox.ColorBlue, termbox.ColorDefault
	default:
		return termbox.ColorDefault, termbox.ColorDefault
	}
}
