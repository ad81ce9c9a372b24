// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// venuedesk's interactive views. Built on bubbletea (Elm architecture),
// these components handle common patterns like dropdown overlays,
// text editing modals, scrollbars, timed transitions, and ANSI-aware
// text manipulation.
//
// Overlay splicing is the terminal analogue of a portal-rendered
// popover: the overlay is drawn detached from the row that triggered
// it, directly into the composed frame. Hit-testing against the
// trigger's own region is therefore never sufficient to decide whether
// a click landed inside the overlay; callers must register overlay
// regions separately (see lib/searchui's field registry).
package tui
