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
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/timburks/jot/commander"
	"github.com/timburks/jot/config"
	"github.com/timburks/jot/editor"
	"github.com/timburks/jot/screen"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jot [file]",
		Short: "jot is a small text editor",
		Long: `jot edits one text file at a time in the terminal. Files can be opened
by name, from the Open prompt, or by dropping them onto the terminal window.`,
		Version:      commander.Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runRoot,
	}
	cmd.Flags().String("config", "", "Config file (TOML)")
	cmd.Flags().String("backend", config.BackendTcell, "Terminal backend: tcell or termbox")
	cmd.Flags().String("log", "", "Log file (default ~/.jotlog)")
	cmd.Flags().String("eval", "", "Run a lisp script against the file and print its value")
	cmd.Flags().Bool("debug", false, "Show each input event in the message bar")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	e.SetTabWidth(cfg.TabWidth)
	e.SetFindOptions(editor.FindOptions{
		CaseSensitive: cfg.CaseSensitive,
		WholeWords:    cfg.WholeWords,
	})

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, cfg)
	debug, _ := cmd.Flags().GetBool("debug")
	c.SetDebug(debug)

	if len(args) > 0 {
		c.Load(args[0])
	}

	script, _ := cmd.Flags().GetString("eval")
	if script != "" {
		// Run a jot script and exit.
		value, err := c.ParseEvalFile(script)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}

	// Open a log file.
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()
	log.SetOutput(f)

	// Create a screen to manage display.
	s, err := screen.NewScreen(cfg.Backend)
	if err != nil {
		return err
	}
	defer s.Close()

	// Expired messages are cleared on the next render.
	c.Status().OnShow(s.Wake)

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
	return nil
}
