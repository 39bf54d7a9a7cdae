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
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/jot/config"
	gott "github.com/timburks/jot/types"
)

// A Backend is a terminal library.
type Backend interface {
	Size() (cols, rows int)
	Clear()
	SetCell(x, y int, c rune, style gott.Style)
	ShowCursor(x, y int)
	HideCursor()
	Show()
	PollEvent() *gott.Event
	Interrupt()
	Close()
}

// The Screen draws the state of an Editor.
type Screen struct {
	backend Backend
	size    gott.Size // screen size
}

// NewScreen opens the terminal with the named backend.
func NewScreen(backend string) (*Screen, error) {
	var b Backend
	var err error
	switch backend {
	case config.BackendTcell:
		b, err = NewTcellBackend(nil)
	case config.BackendTermbox:
		b, err = NewTermboxBackend()
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return NewScreenWithBackend(b), nil
}

func NewScreenWithBackend(b Backend) *Screen {
	return &Screen{backend: b}
}

func (s *Screen) Close() {
	s.backend.Close()
}

// Wake makes GetNextEvent return after a delay, so that expired messages are redrawn.
func (s *Screen) Wake(after time.Duration) {
	time.AfterFunc(after, s.backend.Interrupt)
}

// Render draws a hint line, the text, an info bar and the message bar.
func (s *Screen) Render(e gott.Editor, c gott.Commander) {
	s.backend.Clear()
	s.size.Cols, s.size.Rows = s.backend.Size()
	if s.size.Rows < 4 || s.size.Cols < 1 {
		s.backend.HideCursor()
		s.backend.Show()
		return
	}

	s.RenderHintBar(c)
	textOrigin := gott.Point{Row: 1, Col: 0}
	textSize := gott.Size{Rows: s.size.Rows - 3, Cols: s.size.Cols}
	e.Render(s, textOrigin, textSize)
	s.RenderInfoBar(e)
	s.RenderMessageBar(c)

	if c.GetMode() == gott.ModePrompt {
		x := runewidth.StringWidth(c.GetPrompt())
		if x >= s.size.Cols {
			x = s.size.Cols - 1
		}
		s.backend.ShowCursor(x, s.size.Rows-1)
	} else {
		cursor := e.ScreenCursor()
		s.backend.ShowCursor(textOrigin.Col+cursor.Col, textOrigin.Row+cursor.Row)
	}
	s.backend.Show()
}

func (s *Screen) SetCell(x int, y int, c rune, style gott.Style) {
	s.backend.SetCell(x, y, c, style)
}

func (s *Screen) RenderHintBar(c gott.Commander) {
	s.drawLine(0, c.GetHints(), gott.StyleBar)
}

func (s *Screen) RenderInfoBar(e gott.Editor) {
	name := e.GetFileName()
	if name == "" {
		name = "[untitled]"
	}
	cursor := e.GetCursor()
	finalText := fmt.Sprintf(" %d:%d/%d ", cursor.Row+1, cursor.Col+1, e.GetRowCount())
	text := " jot - " + name + " "
	padding := s.size.Cols - runewidth.StringWidth(text) - runewidth.StringWidth(finalText)
	for i := 0; i < padding; i++ {
		text += " "
	}
	text += finalText
	s.drawLine(s.size.Rows-2, text, gott.StyleBar)
}

func (s *Screen) RenderMessageBar(c gott.Commander) {
	line := c.GetMessage()
	if c.GetMode() == gott.ModePrompt {
		line = c.GetPrompt()
	}
	s.drawLine(s.size.Rows-1, line, gott.StyleText)
}

// drawLine writes text on row y, clipped to the screen. Bars are padded to full width.
func (s *Screen) drawLine(y int, text string, style gott.Style) {
	x := 0
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > s.size.Cols {
			break
		}
		s.backend.SetCell(x, y, ch, style)
		x += w
	}
	if style == gott.StyleBar {
		for ; x < s.size.Cols; x++ {
			s.backend.SetCell(x, y, ' ', style)
		}
	}
}

func (s *Screen) GetNextEvent() *gott.Event {
	return s.backend.PollEvent()
}
