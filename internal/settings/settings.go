// Package settings loads user preferences from a JSON file. Preferences
// are optional: a missing or broken file degrades to empty settings and
// the dashboard simply renders without rates and stocks.
package settings

import (
	"encoding/json"
	"os"
	"strings"
)

// Settings is the key-value mapping stored in the user settings file.
type Settings map[string]any

// Load reads the settings file at path. A missing file or malformed
// JSON yields empty settings, not an error. The file is read on every
// call; edits take effect without a restart.
func Load(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}
	}
	if s == nil {
		return Settings{}
	}
	return s
}

// Currencies returns the user_currencies list, empty when absent.
func (s Settings) Currencies() []string {
	return s.stringList("user_currencies")
}

// Stocks returns the user_stocks list, empty when absent.
func (s Settings) Stocks() []string {
	return s.stringList("user_stocks")
}

func (s Settings) stringList(key string) []string {
	raw, ok := s[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		str, ok := v.(string)
		if !ok {
			continue
		}
		if str = strings.TrimSpace(str); str != "" {
			out = append(out, str)
		}
	}
	return out
}

// Store reads Settings from a fixed path, one read per call.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load() Settings {
	return Load(s.path)
}
