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
	"os"

	"github.com/steelseries/golisp"
)

// scripted is the commander that primitives act on while a script runs.
var scripted *Commander

func init() {
	golisp.MakePrimitiveFunction("open", "1", OpenImpl)
	golisp.MakePrimitiveFunction("save", "0", SaveImpl)
	golisp.MakePrimitiveFunction("find", "1", FindImpl)
	golisp.MakePrimitiveFunction("find-next", "0", FindNextImpl)
	golisp.MakePrimitiveFunction("find-previous", "0", FindPreviousImpl)
	golisp.MakePrimitiveFunction("text", "0", TextImpl)
	golisp.MakePrimitiveFunction("set-text", "1", SetTextImpl)
	golisp.MakePrimitiveFunction("cursor", "0", CursorImpl)
	golisp.MakePrimitiveFunction("selection", "0", SelectionImpl)
	golisp.MakePrimitiveFunction("message", "1", MessageImpl)
	golisp.MakePrimitiveFunction("file-name", "0", FileNameImpl)
}

func stringArgument(name string, args *golisp.Data) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

func OpenImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	path, err := stringArgument("open", args)
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(scripted.Load(path)), nil
}

func SaveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.BooleanWithValue(scripted.Save()), nil
}

func FindImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	term, err := stringArgument("find", args)
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(scripted.search.FindTerm(term)), nil
}

func FindNextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if scripted.search.Term() == "" {
		return nil, fmt.Errorf("find-next: no search term")
	}
	return golisp.BooleanWithValue(scripted.search.FindNext()), nil
}

func FindPreviousImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if scripted.search.Term() == "" {
		return nil, fmt.Errorf("find-previous: no search term")
	}
	return golisp.BooleanWithValue(scripted.search.FindPrevious()), nil
}

func TextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(scripted.editor.Text()), nil
}

func SetTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	text, err := stringArgument("set-text", args)
	if err != nil {
		return nil, err
	}
	scripted.editor.SetText(text)
	return golisp.Car(args), nil
}

func CursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(scripted.editor.Cursor())), nil
}

func SelectionImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(scripted.editor.SelectedText()), nil
}

func MessageImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	message, err := stringArgument("message", args)
	if err != nil {
		return nil, err
	}
	scripted.status.Show(message, scripted.messages.File)
	return golisp.Car(args), nil
}

func FileNameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(scripted.editor.GetFileName()), nil
}

// Eval asks for a lisp expression and shows its value.
func (c *Commander) Eval() {
	c.AskText("Eval", "Eval:", "", func(command string, ok bool) {
		if ok && command != "" {
			c.status.Show(c.ParseEval(command), c.messages.File)
		}
	})
}

// ParseEval evaluates a lisp expression against the commander's editor
// and returns the printed result or the error message.
func (c *Commander) ParseEval(command string) string {
	value, err := c.eval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	return golisp.String(value)
}

// ParseEvalFile evaluates every expression in a file and returns the
// printed value of the last one.
func (c *Commander) ParseEvalFile(filename string) (string, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	value, err := c.eval("(begin\n" + string(source) + "\n)")
	if err != nil {
		return "", fmt.Errorf("%s: %w", filename, err)
	}
	return golisp.String(value), nil
}

func (c *Commander) eval(command string) (*golisp.Data, error) {
	scripted = c
	return golisp.ParseAndEval(command)
}
