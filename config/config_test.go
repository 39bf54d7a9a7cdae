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
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "jot.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("jot", pflag.ContinueOnError)
	flags.String("backend", BackendTcell, "")
	flags.String("log", "", "")
	return flags
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, BackendTcell, cfg.Backend)
	assert.Equal(t, DefaultTabWidth, cfg.TabWidth)
	assert.False(t, cfg.CaseSensitive)
	assert.False(t, cfg.WholeWords)
	assert.Equal(t, 2*time.Second, cfg.Messages.Found)
	assert.Equal(t, 3*time.Second, cfg.Messages.NotFound)
	assert.Equal(t, 3*time.Second, cfg.Messages.File)
	assert.Equal(t, DefaultLogName, filepath.Base(cfg.LogFile))
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
backend = "termbox"
tab_width = 4

[find]
case_sensitive = true
whole_words = true

[messages]
found = "500ms"
not_found = "1s"
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, BackendTermbox, cfg.Backend)
	assert.Equal(t, 4, cfg.TabWidth)
	assert.True(t, cfg.CaseSensitive)
	assert.True(t, cfg.WholeWords)
	assert.Equal(t, 500*time.Millisecond, cfg.Messages.Found)
	assert.Equal(t, time.Second, cfg.Messages.NotFound)
	assert.Equal(t, DefaultFileDuration, cfg.Messages.File)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `backend = "termbox"`)
	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--backend", "tcell", "--log", "/tmp/jot.log"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, BackendTcell, cfg.Backend)
	assert.Equal(t, "/tmp/jot.log", cfg.LogFile)
}

func TestUnsetFlagsKeepFileValues(t *testing.T) {
	path := writeConfig(t, `backend = "termbox"`)
	flags := testFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, BackendTermbox, cfg.Backend)
	assert.Equal(t, DefaultLogFile(), cfg.LogFile)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"syntax", `backend = `},
		{"backend", `backend = "curses"`},
		{"tab width", `tab_width = 0`},
		{"duration", `[messages]
found = "-1s"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.text), nil)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), nil)
	assert.Error(t, err)
}
