// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package mapsync

import "github.com/venuedesk/venuedesk/lib/venue"

// Renderer is the map surface as the controller sees it. GridMap is
// the production implementation; tests substitute a recording fake.
//
// Marker identity is the venue ID. The controller never hands the
// renderer a venue without coordinates.
type Renderer interface {
	// FitBounds frames the box in the viewport with proportional
	// padding on each side (0.1 = 10% of the span).
	FitBounds(bounds Bounds, padding float64)

	// FlyTo recenters on a single point at the given zoom level.
	FlyTo(point venue.Coordinates, zoom float64)

	// AddMarker places (or moves) the marker for a venue.
	AddMarker(id int, point venue.Coordinates)

	// ClearMarkers removes every marker and any popup.
	ClearMarkers()

	// EmphasizeMarker and RelaxMarker toggle a marker's highlight.
	EmphasizeMarker(id int)
	RelaxMarker(id int)

	// ShowPopup attaches a popup to a marker; the lines are prebuilt
	// by the controller. At most one popup is visible.
	ShowPopup(id int, lines []string)
	HidePopup()
}

// ListView is the results list as the controller sees it.
type ListView interface {
	// ScrollIntoView brings a venue's card into the visible window.
	ScrollIntoView(id int)

	// EmphasizeCard and RelaxCard toggle a card's highlight.
	EmphasizeCard(id int)
	RelaxCard(id int)
}
