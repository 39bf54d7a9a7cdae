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
	"log"

	"github.com/timburks/jot/drop"
)

// Open asks for a file name and loads the file.
func (c *Commander) Open() {
	c.AskPath("Open File", "Open:", "", func(path string, ok bool) {
		if ok && path != "" {
			c.Load(path)
		}
	})
}

// Load replaces the buffer with the contents of a file. On failure the
// buffer and its file name are left as they were.
func (c *Commander) Load(path string) bool {
	if err := c.editor.ReadFile(path); err != nil {
		log.Printf("%+v", err)
		c.status.Show(fmt.Sprintf("Cannot open file: %s", path), c.messages.File)
		return false
	}
	c.status.Show(fmt.Sprintf("Loaded file: %s", path), c.messages.File)
	return true
}

// Save writes the buffer back to the file it was loaded from.
func (c *Commander) Save() bool {
	path := c.editor.GetFileName()
	if path == "" {
		c.status.Show("No file open to save", c.messages.File)
		return false
	}
	if err := c.editor.WriteFile(path); err != nil {
		log.Printf("%+v", err)
		c.status.Show(fmt.Sprintf("Cannot save file: %s", path), c.messages.File)
		return false
	}
	c.status.Show(fmt.Sprintf("Saved file: %s", path), c.messages.File)
	return true
}

// Drop handles a paste that may name dropped files. The first file is
// loaded and any others are ignored. Other pastes are inserted as text.
func (c *Commander) Drop(payload string) {
	paths, ok := drop.Parse(payload, drop.IsFile)
	if !ok {
		c.editor.InsertText(payload)
		return
	}
	c.Load(paths[0])
}

func (c *Commander) About() {
	c.status.Show(fmt.Sprintf("jot %s", Version), c.messages.File)
}
