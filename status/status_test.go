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
package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

func newTestBar() (*Bar, *clock) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	b := NewBar()
	b.SetClock(c.now)
	return b, c
}

func TestMessageExpires(t *testing.T) {
	b, c := newTestBar()
	b.Show("Found: hello", 2*time.Second)
	assert.Equal(t, "Found: hello", b.Message())

	c.t = c.t.Add(1999 * time.Millisecond)
	assert.Equal(t, "Found: hello", b.Message())

	c.t = c.t.Add(time.Millisecond)
	assert.Equal(t, "", b.Message())
}

func TestMostRecentMessageWins(t *testing.T) {
	b, c := newTestBar()
	b.Show("Not found: x", 3*time.Second)
	c.t = c.t.Add(time.Second)
	b.Show("Found: y", 2*time.Second)
	assert.Equal(t, "Found: y", b.Message())

	// the first message's deadline no longer applies
	c.t = c.t.Add(1500 * time.Millisecond)
	assert.Equal(t, "Found: y", b.Message())
	c.t = c.t.Add(time.Second)
	assert.Equal(t, "", b.Message())
}

func TestPersistentMessage(t *testing.T) {
	b, c := newTestBar()
	b.Show("jot", 0)
	c.t = c.t.Add(time.Hour)
	assert.Equal(t, "jot", b.Message())
	b.Clear()
	assert.Equal(t, "", b.Message())
}

func TestOnShow(t *testing.T) {
	b, _ := newTestBar()
	var waits []time.Duration
	b.OnShow(func(after time.Duration) {
		waits = append(waits, after)
	})
	b.Show("a", 2*time.Second)
	b.Show("b", 0)
	b.Show("c", 3*time.Second)
	assert.Equal(t, []time.Duration{2 * time.Second, 3 * time.Second}, waits)
}
