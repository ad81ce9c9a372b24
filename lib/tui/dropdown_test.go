// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func testDropdown() DropdownOverlay {
	return DropdownOverlay{
		Options: []DropdownOption{
			{Label: "Conference", Value: "conference"},
			{Label: "Loft", Value: "loft"},
			{Label: "Rooftop", Value: "rooftop"},
		},
		AnchorX: 4,
		AnchorY: 5,
		FieldID: "venue-type",
	}
}

func TestDropdownCursorWraps(t *testing.T) {
	dropdown := testDropdown()

	dropdown.MoveUp()
	if dropdown.Cursor != 2 {
		t.Errorf("cursor after wrap up = %d, want 2", dropdown.Cursor)
	}
	dropdown.MoveDown()
	if dropdown.Cursor != 0 {
		t.Errorf("cursor after wrap down = %d, want 0", dropdown.Cursor)
	}

	option, ok := dropdown.Selected()
	if !ok || option.Value != "conference" {
		t.Errorf("Selected() = %+v, %v, want conference", option, ok)
	}
}

func TestDropdownOptionAtY(t *testing.T) {
	dropdown := testDropdown()

	tests := []struct {
		y    int
		want int
	}{
		{5, 0},
		{6, 1},
		{7, 2},
		{4, -1},
		{8, -1},
	}
	for _, test := range tests {
		if got := dropdown.OptionAtY(test.y); got != test.want {
			t.Errorf("OptionAtY(%d) = %d, want %d", test.y, got, test.want)
		}
	}
}

func TestDropdownRenderUniformWidth(t *testing.T) {
	dropdown := testDropdown()
	dropdown.Cursor = 1

	lines := dropdown.Render(DefaultTheme, false)
	if len(lines) != dropdown.Height() {
		t.Fatalf("rendered %d lines, want %d", len(lines), dropdown.Height())
	}
	for index, line := range lines {
		if width := ansi.StringWidth(line); width != dropdown.Width() {
			t.Errorf("line %d width = %d, want %d", index, width, dropdown.Width())
		}
	}
	if got := ansi.Strip(lines[1]); !strings.Contains(got, "> Loft") {
		t.Errorf("cursor line = %q, want marker on Loft", got)
	}
}

func TestDropdownEmptyRendersPlaceholder(t *testing.T) {
	dropdown := DropdownOverlay{FieldID: "location"}

	if dropdown.Height() != 1 {
		t.Errorf("empty Height() = %d, want 1", dropdown.Height())
	}
	if _, ok := dropdown.Selected(); ok {
		t.Error("Selected() reported an option for an empty dropdown")
	}
	if got := dropdown.OptionAtY(dropdown.AnchorY); got != -1 {
		t.Errorf("OptionAtY on placeholder = %d, want -1", got)
	}

	lines := dropdown.Render(DefaultTheme, false)
	if len(lines) != 1 {
		t.Fatalf("rendered %d lines, want 1", len(lines))
	}
	if got := ansi.Strip(lines[0]); !strings.Contains(got, "no results") {
		t.Errorf("placeholder line = %q, want %q", got, "no results")
	}
}

func TestRenderScrollbarFullThumbWhenContentFits(t *testing.T) {
	bar := RenderScrollbar(DefaultTheme, 4, 3, 5, 0, true)

	lines := strings.Split(bar, "\n")
	if len(lines) != 4 {
		t.Fatalf("scrollbar rows = %d, want 4", len(lines))
	}
	for index, line := range lines {
		if got := ansi.Strip(line); got != "┃" {
			t.Errorf("row %d = %q, want thumb", index, got)
		}
	}
}

func TestRenderScrollbarThumbTracksOffset(t *testing.T) {
	top := strings.Split(RenderScrollbar(DefaultTheme, 6, 12, 6, 0, false), "\n")
	bottom := strings.Split(RenderScrollbar(DefaultTheme, 6, 12, 6, 6, false), "\n")

	if got := ansi.Strip(top[0]); got != "┃" {
		t.Errorf("offset 0: top row = %q, want thumb", got)
	}
	if got := ansi.Strip(top[5]); got != "│" {
		t.Errorf("offset 0: bottom row = %q, want track", got)
	}
	if got := ansi.Strip(bottom[5]); got != "┃" {
		t.Errorf("max offset: bottom row = %q, want thumb", got)
	}
	if got := ansi.Strip(bottom[0]); got != "│" {
		t.Errorf("max offset: top row = %q, want track", got)
	}
}
