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

// Package drop recognizes files dropped onto the terminal.
//
// Terminals deliver a dropped file as pasted text: either a list of
// file:// URLs (text/uri-list, one per line) or one or more paths quoted
// or escaped the way a shell would accept them.
package drop

import (
	"net/url"
	"os"
	"strings"

	"github.com/google/shlex"
)

// IsFile reports whether path names a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Parse returns the local paths named by a pasted payload and true if the
// payload is a drop, meaning every entry in it refers to a file. Other
// payloads are ordinary text and Parse returns false.
func Parse(payload string, isFile func(string) bool) ([]string, bool) {
	if isFile == nil {
		isFile = IsFile
	}
	if strings.TrimSpace(payload) == "" {
		return nil, false
	}
	if paths, ok := parseURIList(payload); ok {
		return paths, true
	}
	words, err := shlex.Split(payload)
	if err != nil || len(words) == 0 {
		return nil, false
	}
	paths := make([]string, 0, len(words))
	for _, word := range words {
		path := word
		if strings.HasPrefix(word, "file:") {
			var ok bool
			if path, ok = fileURLPath(word); !ok {
				return nil, false
			}
		}
		if !isFile(path) {
			return nil, false
		}
		paths = append(paths, path)
	}
	return paths, true
}

// parseURIList reads a text/uri-list payload. Lines starting with # are comments.
func parseURIList(payload string) ([]string, bool) {
	var paths []string
	for _, line := range strings.Split(payload, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		path, ok := fileURLPath(line)
		if !ok {
			return nil, false
		}
		paths = append(paths, path)
	}
	return paths, len(paths) > 0
}

// fileURLPath returns the local path of a file URL.
func fileURLPath(s string) (string, bool) {
	u, err := url.Parse(s)
	if err != nil || u.Scheme != "file" || u.Path == "" {
		return "", false
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", false
	}
	return u.Path, true
}
