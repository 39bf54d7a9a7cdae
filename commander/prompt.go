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
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	gott "github.com/timburks/jot/types"
)

// A prompt is a question asked in the message bar.
type prompt struct {
	title    string
	label    string
	text     []rune
	complete func(text string) string // nil if the prompt has no completion
	done     func(text string, ok bool)
}

// insert adds pasted text to the answer. Only the first line is kept.
func (p *prompt) insert(text string) {
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	p.text = append(p.text, []rune(text)...)
}

// AskText shows a prompt in the message bar and calls done with the answer
// when the user presses Enter (ok is true) or Esc (ok is false).
func (c *Commander) AskText(title, label, initial string, done func(text string, ok bool)) {
	c.ask(&prompt{title: title, label: label, text: []rune(initial), done: done})
}

// AskPath is AskText with file name completion on Tab.
func (c *Commander) AskPath(title, label, initial string, done func(text string, ok bool)) {
	c.ask(&prompt{title: title, label: label, text: []rune(initial), complete: completePath, done: done})
}

func (c *Commander) ask(p *prompt) {
	c.prompt = p
	c.mode = gott.ModePrompt
}

// GetPrompt returns the prompt line, or "" when no prompt is showing.
func (c *Commander) GetPrompt() string {
	if c.prompt == nil {
		return ""
	}
	return c.prompt.label + " " + string(c.prompt.text)
}

// finishPrompt closes the prompt before answering it, so that done may ask again.
func (c *Commander) finishPrompt(ok bool) {
	p := c.prompt
	c.prompt = nil
	c.mode = gott.ModeEdit
	if p != nil && p.done != nil {
		p.done(string(p.text), ok)
	}
}

func (c *Commander) ProcessKeyPromptMode(event *gott.Event) error {
	p := c.prompt
	if p == nil {
		c.mode = gott.ModeEdit
		return nil
	}
	switch event.Key {
	case gott.KeyNone:
		if event.Ch != 0 {
			p.text = append(p.text, event.Ch)
		}
	case gott.KeyEsc, gott.KeyCtrlG:
		c.finishPrompt(false)
	case gott.KeyEnter:
		c.finishPrompt(true)
	case gott.KeyBackspace:
		if len(p.text) > 0 {
			p.text = p.text[0 : len(p.text)-1]
		}
	case gott.KeyCtrlU:
		p.text = nil
	case gott.KeySpace:
		p.text = append(p.text, ' ')
	case gott.KeyTab:
		if p.complete != nil {
			p.text = []rune(p.complete(string(p.text)))
		}
	case gott.KeyCtrlQ:
		c.finishPrompt(false)
		c.Exit()
	}
	return nil
}

// completePath extends a partial path to the longest prefix shared by the
// files it could name. A unique directory gets a trailing separator.
func completePath(text string) string {
	expanded := text
	if strings.HasPrefix(text, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			expanded = home + text[1:]
		}
	}
	dir, base := filepath.Split(expanded)
	entries, err := os.ReadDir(dirOrDot(dir))
	if err != nil {
		return text
	}
	var names []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), base) {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return text
	}
	completion := names[0]
	for _, name := range names[1:] {
		completion = commonPrefix(completion, name)
	}
	suffix := completion[len(base):]
	if len(names) == 1 {
		if info, err := os.Stat(filepath.Join(dirOrDot(dir), completion)); err == nil && info.IsDir() {
			suffix += string(filepath.Separator)
		}
	}
	return text + suffix
}

func dirOrDot(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

func commonPrefix(a, b string) string {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	for n > 0 && n < len(a) && !utf8.RuneStart(a[n]) {
		n--
	}
	return a[:n]
}
