// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package resultsui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the root view's bindings. The search row has its own
// map in searchui; these apply once focus has left it.
type KeyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	FocusSearch key.Binding
	CycleFocus  key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Select      key.Binding
	Book        key.Binding
	Retry       key.Binding
	CloseDrawer key.Binding
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	LogPopup    key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	FocusSearch: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	CycleFocus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch pane"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "pan left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "pan right"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select venue"),
	),
	Book: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "request booking"),
	),
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retry"),
	),
	CloseDrawer: key.NewBinding(
		key.WithKeys("x", "esc"),
		key.WithHelp("x", "close details"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	LogPopup: key.NewBinding(
		key.WithKeys("!"),
		key.WithHelp("!", "log"),
	),
}
