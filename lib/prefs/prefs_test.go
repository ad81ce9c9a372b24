// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/venuedesk/venuedesk/lib/tui"
)

func writePrefs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.jsonc")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	preferences, err := Load(filepath.Join(t.TempDir(), "absent.jsonc"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if preferences != (Preferences{}) {
		t.Errorf("missing file should yield defaults, got %+v", preferences)
	}
}

func TestLoadMissingKeyIsNotAnError(t *testing.T) {
	path := writePrefs(t, `{"some.other.tool": {"x": 1}}`)

	preferences, err := Load(path)
	if err != nil {
		t.Fatalf("missing key should not error: %v", err)
	}
	if preferences != (Preferences{}) {
		t.Errorf("missing key should yield defaults, got %+v", preferences)
	}
}

func TestLoadParsesJSONCWithComments(t *testing.T) {
	path := writePrefs(t, `{
		// user annotations survive parsing
		"venuedesk.ui": {
			"variant": "light",
			"accent": "99",
			"compact_labels": true, // trailing comma tolerated below
		},
	}`)

	preferences, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if preferences.Variant != "light" {
		t.Errorf("variant should be light, got %q", preferences.Variant)
	}
	if preferences.Accent != "99" {
		t.Errorf("accent should be 99, got %q", preferences.Accent)
	}
	if !preferences.CompactLabels {
		t.Error("compact_labels should be true")
	}
}

func TestLoadMalformedDocumentFails(t *testing.T) {
	path := writePrefs(t, `{"venuedesk.ui": not json`)

	if _, err := Load(path); err == nil {
		t.Fatal("malformed document should fail loudly")
	}
}

func TestApplyAccentOverride(t *testing.T) {
	theme := (Preferences{Accent: "99"}).Apply(tui.DefaultTheme)
	if theme.Accent != "99" {
		t.Errorf("accent override not applied, got %q", theme.Accent)
	}

	unchanged := (Preferences{}).Apply(tui.DefaultTheme)
	if unchanged.Accent != tui.DefaultTheme.Accent {
		t.Errorf("empty preferences should not change the accent")
	}
}
