// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package searchui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings the search widget responds to while
// it has focus.
type KeyMap struct {
	// Field-row navigation.
	NextField key.Binding
	PrevField key.Binding

	// Overlay / editing.
	Activate key.Binding // Open the focused field's overlay or begin editing.
	Cancel   key.Binding // Dismiss overlay / discard edit.

	// Overlay navigation (dropdown and date picker).
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Date picker month flip.
	PrevMonth key.Binding
	NextMonth key.Binding

	// Submit.
	Submit key.Binding
}

// DefaultKeyMap is the built-in binding set.
var DefaultKeyMap = KeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous field"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "open/commit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "dismiss"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "right"),
	),
	PrevMonth: key.NewBinding(
		key.WithKeys("pgup", "["),
		key.WithHelp("[", "previous month"),
	),
	NextMonth: key.NewBinding(
		key.WithKeys("pgdown", "]"),
		key.WithHelp("]", "next month"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "search"),
	),
}
