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

// Package config reads jot's settings from an optional TOML file and the command line.
// Settings are never written back.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	BackendTcell   = "tcell"
	BackendTermbox = "termbox"

	DefaultTabWidth = 8
	DefaultLogName  = ".jotlog"

	DefaultFoundDuration    = 2 * time.Second
	DefaultNotFoundDuration = 3 * time.Second
	DefaultFileDuration     = 3 * time.Second
)

// Messages holds how long each kind of status message stays visible.
type Messages struct {
	Found    time.Duration
	NotFound time.Duration
	File     time.Duration
}

type Config struct {
	Backend       string
	LogFile       string
	TabWidth      int
	CaseSensitive bool
	WholeWords    bool
	Messages      Messages
}

// flagKeys maps command-line flags to the settings they override.
var flagKeys = map[string]string{
	"backend": "backend",
	"log":     "log_file",
}

// DefaultLogFile is ~/.jotlog, or .jotlog in the current directory when
// there is no home directory.
func DefaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultLogName
	}
	return filepath.Join(home, DefaultLogName)
}

// SetDefaults sets all default configuration values in v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendTcell)
	v.SetDefault("log_file", DefaultLogFile())
	v.SetDefault("tab_width", DefaultTabWidth)

	v.SetDefault("find.case_sensitive", false)
	v.SetDefault("find.whole_words", false)

	v.SetDefault("messages.found", DefaultFoundDuration)
	v.SetDefault("messages.not_found", DefaultNotFoundDuration)
	v.SetDefault("messages.file", DefaultFileDuration)
}

// Default returns the configuration used when there is no file and no flags.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	return build(v)
}

// Load reads the TOML file at path, if path is not empty, and then applies
// any flags in flags that were set on the command line.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}
	cfg := build(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func build(v *viper.Viper) *Config {
	return &Config{
		Backend:       v.GetString("backend"),
		LogFile:       v.GetString("log_file"),
		TabWidth:      v.GetInt("tab_width"),
		CaseSensitive: v.GetBool("find.case_sensitive"),
		WholeWords:    v.GetBool("find.whole_words"),
		Messages: Messages{
			Found:    v.GetDuration("messages.found"),
			NotFound: v.GetDuration("messages.not_found"),
			File:     v.GetDuration("messages.file"),
		},
	}
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendTcell, BackendTermbox:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendTcell, BackendTermbox)
	}
	if c.TabWidth < 1 {
		return fmt.Errorf("invalid tab_width %d", c.TabWidth)
	}
	if c.Messages.Found <= 0 || c.Messages.NotFound <= 0 || c.Messages.File <= 0 {
		return fmt.Errorf("message durations must be positive")
	}
	return nil
}
