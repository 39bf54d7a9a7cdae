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
	"strings"

	"github.com/gdamore/tcell/v2"

	gott "github.com/timburks/jot/types"
)

// TcellBackend draws with tcell. Bracketed paste is enabled, so dropped
// files arrive as a single paste event.
type TcellBackend struct {
	screen tcell.Screen
	paste  *strings.Builder // non-nil while a paste is being received
}

// NewTcellBackend initializes screen, or the terminal if screen is nil.
func NewTcellBackend(screen tcell.Screen) (*TcellBackend, error) {
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.EnablePaste()
	return &TcellBackend{screen: screen}, nil
}

func (t *TcellBackend) Size() (int, int) {
	return t.screen.Size()
}

func (t *TcellBackend) Clear() {
	t.screen.Clear()
}

func (t *TcellBackend) SetCell(x, y int, c rune, style gott.Style) {
	t.screen.SetContent(x, y, c, nil, tcellStyle(style))
}

func (t *TcellBackend) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *TcellBackend) HideCursor() {
	t.screen.HideCursor()
}

func (t *TcellBackend) Show() {
	t.screen.Show()
}

func (t *TcellBackend) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (t *TcellBackend) Close() {
	t.screen.Fini()
}

// PollEvent waits for the next event. Keys received between the start
// and end of a paste are collected into one paste event.
func (t *TcellBackend) PollEvent() *gott.Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// the screen has been closed
			return &gott.Event{Type: gott.EventInterrupt}
		case *tcell.EventPaste:
			if ev.Start() {
				t.paste = &strings.Builder{}
				continue
			}
			if t.paste == nil {
				continue
			}
			text := t.paste.String()
			t.paste = nil
			return &gott.Event{Type: gott.EventPaste, Text: text}
		case *tcell.EventKey:
			if t.paste != nil {
				t.collect(ev)
				continue
			}
			return tcellKeyEvent(ev)
		case *tcell.EventResize:
			t.screen.Sync()
			return &gott.Event{Type: gott.EventResize}
		case *tcell.EventInterrupt:
			return &gott.Event{Type: gott.EventInterrupt}
		}
	}
}

func (t *TcellBackend) collect(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		t.paste.WriteRune(ev.Rune())
	case tcell.KeyEnter, tcell.KeyLF:
		t.paste.WriteRune('\n')
	case tcell.KeyTab:
		t.paste.WriteRune('\t')
	}
}

var tcellKeys = map[tcell.Key]gott.Key{
	tcell.KeyUp:         gott.KeyArrowUp,
	tcell.KeyDown:       gott.KeyArrowDown,
	tcell.KeyLeft:       gott.KeyArrowLeft,
	tcell.KeyRight:      gott.KeyArrowRight,
	tcell.KeyBackspace:  gott.KeyBackspace,
	tcell.KeyBackspace2: gott.KeyBackspace,
	tcell.KeyDelete:     gott.KeyDelete,
	tcell.KeyEnd:        gott.KeyEnd,
	tcell.KeyEnter:      gott.KeyEnter,
	tcell.KeyEscape:     gott.KeyEsc,
	tcell.KeyHome:       gott.KeyHome,
	tcell.KeyPgDn:       gott.KeyPgdn,
	tcell.KeyPgUp:       gott.KeyPgup,
	tcell.KeyTab:        gott.KeyTab,
	tcell.KeyF1:         gott.KeyF1,
	tcell.KeyF3:         gott.KeyF3,
}

func tcellKeyEvent(ev *tcell.EventKey) *gott.Event {
	event := &gott.Event{Type: gott.EventKey, Mod: tcellModifiers(ev.Modifiers())}
	k := ev.Key()
	if key, ok := tcellKeys[k]; ok {
		event.Key = key
		return event
	}
	switch {
	case k == tcell.KeyRune:
		if ev.Rune() == ' ' {
			event.Key = gott.KeySpace
		} else {
			event.Ch = ev.Rune()
		}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		event.Key = gott.KeyCtrlA + gott.Key(k-tcell.KeyCtrlA)
	default:
		event.Key = gott.KeyUnsupported
	}
	return event
}

func tcellModifiers(m tcell.ModMask) gott.Modifier {
	var mod gott.Modifier
	if m&tcell.ModShift != 0 {
		mod |= gott.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= gott.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= gott.ModAlt
	}
	return mod
}

func tcellStyle(style gott.Style) tcell.Style {
	switch style {
	case gott.StyleSelection:
		return tcell.StyleDefault.Reverse(true)
	case gott.StyleBar:
		return tcell.StyleDefault.Reverse(true).Bold(true)
	case gott.StyleTilde:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	default:
		return tcell.StyleDefault
	}
}
