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

// Package status holds the transient message shown at the bottom of the screen.
package status

import (
	"time"
)

// A Bar shows one message at a time. Each call to Show replaces the
// previous message, which then disappears when its duration runs out.
type Bar struct {
	message string
	expires time.Time // zero if the message stays until replaced
	now     func() time.Time
	wake    func(after time.Duration)
}

func NewBar() *Bar {
	return &Bar{now: time.Now}
}

// SetClock replaces the bar's time source.
func (b *Bar) SetClock(now func() time.Time) {
	b.now = now
}

// OnShow registers a function that is told how long each new message will last,
// so that the display can be refreshed when it expires.
func (b *Bar) OnShow(wake func(after time.Duration)) {
	b.wake = wake
}

// Show displays message for duration d. A non-positive d keeps the message
// until the next call to Show or Clear.
func (b *Bar) Show(message string, d time.Duration) {
	b.message = message
	if d > 0 {
		b.expires = b.now().Add(d)
		if b.wake != nil {
			b.wake(d)
		}
	} else {
		b.expires = time.Time{}
	}
}

// Message returns the current message, or "" once it has expired.
func (b *Bar) Message() string {
	if !b.expires.IsZero() && !b.now().Before(b.expires) {
		b.message = ""
		b.expires = time.Time{}
	}
	return b.message
}

func (b *Bar) Clear() {
	b.message = ""
	b.expires = time.Time{}
}
