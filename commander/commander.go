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
package commander

import (
	"fmt"

	"github.com/timburks/jot/config"
	"github.com/timburks/jot/search"
	"github.com/timburks/jot/status"
	gott "github.com/timburks/jot/types"
)

const Version = "1.0.0"

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor    gott.Editor
	search    *search.Controller
	status    *status.Bar
	clipboard Clipboard
	messages  config.Messages
	mode      int     // editor mode
	prompt    *prompt // prompt being answered in ModePrompt
	debug     bool    // debug mode shows each event in the message bar
}

func NewCommander(e gott.Editor, cfg *config.Config) *Commander {
	if cfg == nil {
		cfg = config.Default()
	}
	c := &Commander{
		editor:    e,
		status:    status.NewBar(),
		clipboard: systemClipboard{},
		messages:  cfg.Messages,
		mode:      gott.ModeEdit,
	}
	c.search = search.NewController(e, c, c.status)
	c.search.SetDurations(search.Durations{
		Found:    cfg.Messages.Found,
		NotFound: cfg.Messages.NotFound,
	})
	return c
}

// Status returns the bar that holds the commander's messages.
func (c *Commander) Status() *status.Bar {
	return c.status
}

func (c *Commander) Search() *search.Controller {
	return c.search
}

// SetClipboard replaces the system clipboard.
func (c *Commander) SetClipboard(clipboard Clipboard) {
	c.clipboard = clipboard
}

// SetDebug turns on showing each event in the message bar.
func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

// Exit asks the main loop to stop.
func (c *Commander) Exit() {
	c.mode = gott.ModeQuit
}

func (c *Commander) GetMessage() string {
	return c.status.Message()
}

func (c *Commander) GetHints() string {
	return hints
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if c.debug {
		c.status.Show(fmt.Sprintf("event=%+v", event), 0)
	}
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	case gott.EventPaste:
		return c.ProcessPaste(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	switch c.mode {
	case gott.ModeEdit:
		return c.ProcessKeyEditMode(event)
	case gott.ModePrompt:
		return c.ProcessKeyPromptMode(event)
	}
	return nil
}

// ProcessPaste handles pasted text. Pasted file references load the
// file; anything else is typed into the buffer or the prompt.
func (c *Commander) ProcessPaste(event *gott.Event) error {
	if c.mode == gott.ModePrompt {
		c.prompt.insert(event.Text)
		return nil
	}
	c.Drop(event.Text)
	return nil
}

func (c *Commander) ProcessKeyEditMode(event *gott.Event) error {
	if action := lookup(event); action != ActionNone {
		return c.Perform(action)
	}

	e := c.editor
	extend := event.Mod&gott.ModShift != 0
	switch event.Key {
	case gott.KeyNone:
		if event.Ch != 0 {
			e.InsertChar(event.Ch)
		}
	case gott.KeyArrowUp:
		e.MoveCursor(gott.MoveUp, extend)
	case gott.KeyArrowDown:
		e.MoveCursor(gott.MoveDown, extend)
	case gott.KeyArrowLeft:
		e.MoveCursor(gott.MoveLeft, extend)
	case gott.KeyArrowRight:
		e.MoveCursor(gott.MoveRight, extend)
	case gott.KeyHome, gott.KeyCtrlB:
		e.MoveToBeginningOfLine(extend)
	case gott.KeyEnd, gott.KeyCtrlE:
		e.MoveToEndOfLine(extend)
	case gott.KeyPgup:
		e.PageUp(extend)
	case gott.KeyPgdn:
		e.PageDown(extend)
	case gott.KeyBackspace:
		e.BackspaceChar()
	case gott.KeyDelete, gott.KeyCtrlD:
		e.DeleteChar()
	case gott.KeyEnter:
		e.InsertChar('\n')
	case gott.KeyTab:
		e.InsertChar('\t')
	case gott.KeySpace:
		e.InsertChar(' ')
	}
	return nil
}

// Perform runs a bound action.
func (c *Commander) Perform(action Action) error {
	switch action {
	case ActionOpen:
		c.Open()
	case ActionSave:
		c.Save()
	case ActionFind:
		c.search.Find()
	case ActionFindNext:
		c.search.FindNext()
	case ActionFindPrevious:
		c.search.FindPrevious()
	case ActionExit:
		c.Exit()
	case ActionAbout:
		c.About()
	case ActionSelectAll:
		c.editor.SelectAll()
	case ActionCopy:
		return c.Copy()
	case ActionCut:
		return c.Cut()
	case ActionPaste:
		return c.Paste()
	case ActionEval:
		c.Eval()
	}
	return nil
}
