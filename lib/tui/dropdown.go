// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DropdownOption is a single selectable item in a dropdown overlay.
type DropdownOption struct {
	Label string // Display text shown in the dropdown.
	Value string // Value committed to the owning field on selection.
}

// DropdownOverlay renders a floating option menu anchored at a screen
// position. It captures all keyboard input when active (up/down to
// navigate, enter to select, escape to dismiss). The owning widget
// routes input to it while its field's overlay is open.
type DropdownOverlay struct {
	Options []DropdownOption
	Cursor  int
	AnchorX int    // Screen X coordinate of the dropdown's top-left corner.
	AnchorY int    // Screen Y coordinate of the dropdown's top-left corner.
	FieldID string // The search field this dropdown commits into.
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (dropdown *DropdownOverlay) MoveUp() {
	if len(dropdown.Options) == 0 {
		return
	}
	dropdown.Cursor--
	if dropdown.Cursor < 0 {
		dropdown.Cursor = len(dropdown.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (dropdown *DropdownOverlay) MoveDown() {
	if len(dropdown.Options) == 0 {
		return
	}
	dropdown.Cursor++
	if dropdown.Cursor >= len(dropdown.Options) {
		dropdown.Cursor = 0
	}
}

// Selected returns the currently highlighted option and true, or the
// zero option and false when the dropdown has no options (the
// autocomplete "no results" state).
func (dropdown *DropdownOverlay) Selected() (DropdownOption, bool) {
	if dropdown.Cursor < 0 || dropdown.Cursor >= len(dropdown.Options) {
		return DropdownOption{}, false
	}
	return dropdown.Options[dropdown.Cursor], true
}

// Width returns the total visible width of the rendered dropdown in
// columns. This matches the width used by Render and is needed for
// overlay region registration and mouse hit-testing.
func (dropdown *DropdownOverlay) Width() int {
	maxLabelWidth := ansi.StringWidth(dropdownEmptyLabel)
	for _, option := range dropdown.Options {
		labelWidth := ansi.StringWidth(option.Label)
		if labelWidth > maxLabelWidth {
			maxLabelWidth = labelWidth
		}
	}
	// Layout: " > LABEL  " — 3 chars prefix (space + marker + space),
	// then label, then 1 char padding on each side.
	return 3 + maxLabelWidth + 2
}

// Height returns the number of rendered lines. An empty option set
// still renders one line (the "no results" placeholder).
func (dropdown *DropdownOverlay) Height() int {
	if len(dropdown.Options) == 0 {
		return 1
	}
	return len(dropdown.Options)
}

// OptionAtY returns the option index corresponding to the given
// screen Y coordinate, or -1 if the Y coordinate is outside the
// dropdown's vertical range or lands on the "no results" placeholder.
func (dropdown *DropdownOverlay) OptionAtY(y int) int {
	index := y - dropdown.AnchorY
	if index < 0 || index >= len(dropdown.Options) {
		return -1
	}
	return index
}

// dropdownEmptyLabel is shown when the option set is empty. The
// autocomplete panel filters down to zero matches deliberately renders
// this explicit state rather than collapsing to nothing.
const dropdownEmptyLabel = "no results"

// Render produces the dropdown lines for overlay splicing. Each line
// has the same visible width (including left/right padding) and a
// solid background for visual separation from the underlying content.
// The currently highlighted option uses a contrasting background. An
// empty option set renders a single dimmed "no results" line. With
// dimmed set the panel renders in faint text and drops the cursor
// highlight: the closing fade-out of a dismissed panel.
func (dropdown *DropdownOverlay) Render(theme Theme, dimmed bool) []string {
	totalWidth := dropdown.Width()
	// Inner width is total minus 1 char padding on each side.
	innerWidth := totalWidth - 2

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.OverlayBackground)
	selectedBackground := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)
	if dimmed {
		backgroundStyle = backgroundStyle.Foreground(theme.FaintText)
		selectedBackground = backgroundStyle
	}

	if len(dropdown.Options) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(theme.FaintText).
			Background(theme.OverlayBackground)
		content := "  " + dropdownEmptyLabel
		rightPad := innerWidth - ansi.StringWidth(content)
		if rightPad < 0 {
			rightPad = 0
		}
		line := emptyStyle.Render(" " + content + strings.Repeat(" ", rightPad) + " ")
		return []string{line}
	}

	var lines []string
	for index, option := range dropdown.Options {
		marker := " "
		if index == dropdown.Cursor {
			marker = ">"
		}

		prefix := marker + " "
		content := prefix + option.Label
		contentWidth := ansi.StringWidth(content)
		rightPad := innerWidth - contentWidth
		if rightPad < 0 {
			rightPad = 0
		}
		paddedContent := content + strings.Repeat(" ", rightPad)

		var styledLine string
		if index == dropdown.Cursor {
			styledLine = selectedBackground.Render(" " + paddedContent + " ")
		} else {
			styledLine = backgroundStyle.Render(" " + paddedContent + " ")
		}

		// Ensure consistent visible width across all lines.
		lineWidth := ansi.StringWidth(styledLine)
		if lineWidth < totalWidth {
			if index == dropdown.Cursor {
				styledLine += selectedBackground.Render(strings.Repeat(" ", totalWidth-lineWidth))
			} else {
				styledLine += backgroundStyle.Render(strings.Repeat(" ", totalWidth-lineWidth))
			}
		}

		lines = append(lines, styledLine)
	}

	return lines
}
