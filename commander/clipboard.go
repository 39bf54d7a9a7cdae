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

	"github.com/atotto/clipboard"
)

type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Copy puts the selection on the clipboard.
func (c *Commander) Copy() error {
	text := c.editor.SelectedText()
	if text == "" {
		return nil
	}
	if err := c.clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

// Cut moves the selection to the clipboard. The selection is kept if the
// clipboard cannot be written.
func (c *Commander) Cut() error {
	if err := c.Copy(); err != nil {
		return err
	}
	if c.editor.SelectedText() != "" {
		c.editor.InsertText("")
	}
	return nil
}

// Paste replaces the selection with the clipboard contents.
func (c *Commander) Paste() error {
	text, err := c.clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	c.editor.InsertText(text)
	return nil
}
