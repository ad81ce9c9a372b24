// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package mapsync keeps the results list and the map panel agreed on
// which venue is hovered and which is selected.
//
// The [Controller] owns that shared state and drives both surfaces
// through narrow interfaces ([Renderer] for the map, [ListView] for
// the list), so neither surface reaches into the other. [GridMap] is
// the terminal renderer: a character grid with an equirectangular
// projection, markers, and a selection popup.
//
// Venues without coordinates stay fully selectable in the list; they
// simply have no marker, and map operations skip them.
package mapsync
