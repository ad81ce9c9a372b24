// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and visual properties for venuedesk's
// terminal UIs. All colors use lipgloss ANSI 256-color codes for broad
// terminal compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and semantic categories (venue category, availability) that recur
// across views — the search bar, the results list, and the map pane
// all color venues the same way.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row / selected marker.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Hovered marker (transient, pointer-tracked; visually distinct
	// from selection).
	HoverBackground lipgloss.Color

	// Venue category colors.
	CategoryConference lipgloss.Color
	CategoryLoft       lipgloss.Color
	CategoryEstate     lipgloss.Color
	CategoryRooftop    lipgloss.Color

	// Availability colors.
	AvailabilityOpen    lipgloss.Color
	AvailabilityLimited lipgloss.Color
	AvailabilityBooked  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	Accent           lipgloss.Color

	// Overlay panels (dropdowns, autocomplete, date picker, modals).
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color

	// Map pane: marker glyphs and the background fill.
	MarkerForeground lipgloss.Color
	MapBackground    lipgloss.Color
}

// CategoryColor returns the color for a venue category string.
// Unknown categories return NormalText.
func (theme Theme) CategoryColor(category string) lipgloss.Color {
	switch category {
	case "conference":
		return theme.CategoryConference
	case "loft":
		return theme.CategoryLoft
	case "estate":
		return theme.CategoryEstate
	case "rooftop":
		return theme.CategoryRooftop
	default:
		return theme.NormalText
	}
}

// AvailabilityColor returns the color for an availability string
// ("open", "limited", "booked"). Unknown values return FaintText.
func (theme Theme) AvailabilityColor(availability string) lipgloss.Color {
	switch availability {
	case "open":
		return theme.AvailabilityOpen
	case "limited":
		return theme.AvailabilityLimited
	case "booked":
		return theme.AvailabilityBooked
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HoverBackground: lipgloss.Color("238"),

	CategoryConference: lipgloss.Color("75"),  // blue
	CategoryLoft:       lipgloss.Color("208"), // orange
	CategoryEstate:     lipgloss.Color("114"), // green
	CategoryRooftop:    lipgloss.Color("141"), // light purple

	AvailabilityOpen:    lipgloss.Color("114"), // green
	AvailabilityLimited: lipgloss.Color("220"), // amber
	AvailabilityBooked:  lipgloss.Color("196"), // red

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	Accent:           lipgloss.Color("220"),

	OverlayForeground: lipgloss.Color("252"),
	OverlayBackground: lipgloss.Color("237"),

	MarkerForeground: lipgloss.Color("203"),
	MapBackground:    lipgloss.Color("236"),
}

// LightTheme is an alternate palette for light-background terminals,
// selected at startup when the terminal does not report a dark
// background.
var LightTheme = Theme{
	NormalText: lipgloss.Color("235"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("253"),
	SelectedForeground: lipgloss.Color("232"),

	HoverBackground: lipgloss.Color("254"),

	CategoryConference: lipgloss.Color("26"),
	CategoryLoft:       lipgloss.Color("166"),
	CategoryEstate:     lipgloss.Color("28"),
	CategoryRooftop:    lipgloss.Color("92"),

	AvailabilityOpen:    lipgloss.Color("28"),
	AvailabilityLimited: lipgloss.Color("130"),
	AvailabilityBooked:  lipgloss.Color("124"),

	HeaderForeground: lipgloss.Color("232"),
	BorderColor:      lipgloss.Color("248"),
	HelpText:         lipgloss.Color("245"),
	Accent:           lipgloss.Color("130"),

	OverlayForeground: lipgloss.Color("235"),
	OverlayBackground: lipgloss.Color("254"),

	MarkerForeground: lipgloss.Color("124"),
	MapBackground:    lipgloss.Color("253"),
}
