// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package prefs loads persisted UI preferences. Preferences live in a
// single JSONC document under one namespaced key ("venuedesk.ui");
// the file is read once at startup. A missing file or missing key is
// not an error — it just means defaults.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/jsonc"

	"github.com/venuedesk/venuedesk/lib/tui"
)

// Key is the namespaced key holding the UI preference blob. Other
// tools sharing the file ignore it.
const Key = "venuedesk.ui"

// Preferences are the user-tunable UI overrides. All fields are
// optional; zero values mean "keep the theme default".
type Preferences struct {
	// Variant selects the base palette: "dark", "light", or "auto"
	// (detect from the terminal background).
	Variant string `json:"variant,omitempty"`

	// Accent overrides the theme accent color (ANSI 256 code).
	Accent string `json:"accent,omitempty"`

	// CompactLabels starts search fields in compact mode (value only,
	// bold) instead of labeled mode (caption line + value line).
	CompactLabels bool `json:"compact_labels,omitempty"`

	// MarkerGlyph overrides the map marker character.
	MarkerGlyph string `json:"marker_glyph,omitempty"`
}

// DefaultPath returns the preference file location under the user
// config directory.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "venuedesk", "prefs.jsonc")
}

// Load reads preferences from the file at path. Returns zero-valued
// Preferences (no error) when the file or the namespaced key is
// absent. A present-but-malformed document is an error: silently
// ignoring a file the user hand-edited would be worse than failing.
func Load(path string) (Preferences, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Preferences{}, nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("read preferences: %w", err)
	}

	// The file is JSONC: strip comments and trailing commas, then
	// parse as plain JSON.
	var document map[string]json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(raw), &document); err != nil {
		return Preferences{}, fmt.Errorf("parse preferences %s: %w", path, err)
	}

	blob, exists := document[Key]
	if !exists {
		return Preferences{}, nil
	}

	var preferences Preferences
	if err := json.Unmarshal(blob, &preferences); err != nil {
		return Preferences{}, fmt.Errorf("parse preferences %s key %q: %w", path, Key, err)
	}
	return preferences, nil
}

// Apply overlays the preferences onto a theme and returns the result.
func (preferences Preferences) Apply(theme tui.Theme) tui.Theme {
	if preferences.Accent != "" {
		theme.Accent = lipgloss.Color(preferences.Accent)
	}
	return theme
}
