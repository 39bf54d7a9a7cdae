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

// Package search remembers the last search term and repeats searches
// forwards and backwards, wrapping around the ends of the buffer.
package search

import (
	"fmt"
	"time"
)

// Buffer is the text being searched. Find moves the selection to the next
// (or previous) match and reports whether there was one; it never wraps.
type Buffer interface {
	MoveToStart()
	MoveToEnd()
	Find(term string, backward bool) bool
}

// A Prompter asks the user for a line of text. done is called with the
// text and true when the user confirms, or with false when they cancel.
type Prompter interface {
	AskText(title, label, initial string, done func(text string, ok bool))
}

// A Notifier shows a transient message.
type Notifier interface {
	Show(message string, d time.Duration)
}

// Durations are how long search results stay on screen.
type Durations struct {
	Found    time.Duration
	NotFound time.Duration
}

var DefaultDurations = Durations{
	Found:    2 * time.Second,
	NotFound: 3 * time.Second,
}

// The Controller owns the current search term.
type Controller struct {
	term      string
	buffer    Buffer
	prompter  Prompter
	notifier  Notifier
	durations Durations
}

func NewController(b Buffer, p Prompter, n Notifier) *Controller {
	return &Controller{
		buffer:    b,
		prompter:  p,
		notifier:  n,
		durations: DefaultDurations,
	}
}

func (c *Controller) SetDurations(d Durations) {
	c.durations = d
}

// Term returns the current search term, which is empty until the user confirms one.
func (c *Controller) Term() string {
	return c.term
}

// Find asks for a search term, offering the current one.
// Confirmed non-empty terms are searched for from the start of the buffer.
func (c *Controller) Find() {
	c.prompter.AskText("Find", "Find:", c.term, func(text string, ok bool) {
		if ok {
			c.FindTerm(text)
		}
	})
}

// FindTerm makes term current and searches for it from the start of the buffer.
// An empty term changes nothing.
func (c *Controller) FindTerm(term string) bool {
	if term == "" {
		return false
	}
	c.term = term
	c.buffer.MoveToStart()
	return c.FindNext()
}

// FindNext searches forward from the cursor, wrapping to the start once.
// Without a current term it asks for one instead.
func (c *Controller) FindNext() bool {
	return c.search(false)
}

// FindPrevious searches backward from the cursor, wrapping to the end once.
// Without a current term it asks for one instead.
func (c *Controller) FindPrevious() bool {
	return c.search(true)
}

func (c *Controller) search(backward bool) bool {
	if c.term == "" {
		c.Find()
		return false
	}
	if c.buffer.Find(c.term, backward) {
		c.notifier.Show(fmt.Sprintf("Found: %s", c.term), c.durations.Found)
		return true
	}
	if backward {
		c.buffer.MoveToEnd()
	} else {
		c.buffer.MoveToStart()
	}
	if c.buffer.Find(c.term, backward) {
		c.notifier.Show(fmt.Sprintf("Found: %s (wrapped)", c.term), c.durations.Found)
		return true
	}
	c.notifier.Show(fmt.Sprintf("Not found: %s", c.term), c.durations.NotFound)
	return false
}
