// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

const (
	// GameSettingsKey is the top-level key of the simple game settings map.
	GameSettingsKey = "GameSettings"
	// CustomGameModeSettingsKey is the top-level key of the custom game mode
	// settings map.
	CustomGameModeSettingsKey = "CustomGameModeSettings"

	indent = "    "
)

// Entry is one key/value pair of a Settings map.
type Entry struct {
	Key   string
	Value any
}

// Settings is an insertion-ordered string-keyed map. It encodes to a JSON
// object whose keys appear in insertion order.
type Settings []Entry

// Set appends key, or replaces its value in place if already present.
func (s *Settings) Set(key string, value any) {
	for i := range *s {
		if (*s)[i].Key == key {
			(*s)[i].Value = value
			return
		}
	}
	*s = append(*s, Entry{Key: key, Value: value})
}

// Get returns the value stored under key.
func (s Settings) Get(key string) (any, bool) {
	for _, e := range s {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in insertion order.
func (s Settings) Keys() []string {
	keys := make([]string, 0, len(s))
	for _, e := range s {
		keys = append(keys, e.Key)
	}
	return keys
}

func (s Settings) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.encodeMembers(&buf); err != nil {
		return nil, err
	}
	return append(append([]byte{'{'}, buf.Bytes()...), '}'), nil
}

func (s Settings) encodeMembers(buf *bytes.Buffer) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(e.Key); err != nil {
			return err
		}
		trimNewline(buf)
		buf.WriteByte(':')
		if err := enc.Encode(e.Value); err != nil {
			return err
		}
		trimNewline(buf)
	}
	return nil
}

func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}

// Float is a float64 that always encodes with a fractional part, so 0
// becomes 0.0 and 60 becomes 60.0.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return []byte(s), nil
}

// Config is the assembled dedicated server configuration.
type Config struct {
	// Base holds the top-level settings; every base field is present.
	Base Settings
	// GameSettings holds only the simple game settings that were set.
	GameSettings Settings
	// CustomGameModeSettings holds only the custom game mode settings that
	// were set.
	CustomGameModeSettings Settings
}

func newConfig() *Config {
	return &Config{
		Base:                   make(Settings, 0, len(BaseFields)),
		GameSettings:           Settings{},
		CustomGameModeSettings: Settings{},
	}
}

func (c *Config) section(name string) *Settings {
	switch name {
	case GameSettingsKey:
		return &c.GameSettings
	case CustomGameModeSettingsKey:
		return &c.CustomGameModeSettings
	default:
		return &c.Base
	}
}

// MarshalJSON encodes the base settings followed by the two settings maps.
func (c *Config) MarshalJSON() ([]byte, error) {
	doc := make(Settings, 0, len(c.Base)+2)
	doc = append(doc, c.Base...)
	doc = append(doc,
		Entry{Key: GameSettingsKey, Value: c.GameSettings},
		Entry{Key: CustomGameModeSettingsKey, Value: c.CustomGameModeSettings},
	)
	return doc.MarshalJSON()
}

// Render encodes c as the server's config file: 4-space indentation, no
// HTML escaping, terminated by a newline.
func (c *Config) Render() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
