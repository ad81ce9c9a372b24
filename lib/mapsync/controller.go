// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package mapsync

import (
	"fmt"

	"github.com/venuedesk/venuedesk/lib/tui"
	"github.com/venuedesk/venuedesk/lib/venue"
)

const (
	// singleVenueZoom is used when a result set has exactly one
	// coordinate-bearing venue: there is no box to fit, so the map
	// flies to the point at a fixed neighborhood-scale zoom.
	singleVenueZoom = 13

	// fitPadding keeps the outermost markers off the viewport edge.
	fitPadding = 0.15

	// Popup excerpt dimensions. The summary is teaser content; the
	// full description lives in the detail drawer.
	popupExcerptWidth = 30
	popupExcerptLines = 2
)

// Controller synchronizes hover and selection between the results list
// and the map. At most one venue is hovered and at most one selected
// at any time; the two are independent axes. The zero venue ID means
// none.
//
// The controller mutates the surfaces only through their interfaces
// and only in response to its own methods. Map panning and zooming
// never pass through here, so they can never disturb the selection.
type Controller struct {
	renderer Renderer
	list     ListView

	venues     map[int]venue.Venue
	hoveredID  int
	selectedID int
}

// NewController wires a controller to its two surfaces.
func NewController(renderer Renderer, list ListView) *Controller {
	return &Controller{
		renderer: renderer,
		list:     list,
		venues:   make(map[int]venue.Venue),
	}
}

// SelectedID returns the selected venue's ID, 0 when none.
func (controller *Controller) SelectedID() int {
	return controller.selectedID
}

// HoveredID returns the hovered venue's ID, 0 when none.
func (controller *Controller) HoveredID() int {
	return controller.hoveredID
}

// Populate installs a fresh result set: markers are rebuilt and the
// viewport is fitted exactly once per population. Hover and selection
// reset; a selection from the previous result set has no meaning in
// the new one. Venues without coordinates get no marker.
func (controller *Controller) Populate(venues []venue.Venue) {
	controller.hoveredID = 0
	controller.selectedID = 0

	controller.venues = make(map[int]venue.Venue, len(venues))
	controller.renderer.ClearMarkers()
	for _, item := range venues {
		controller.venues[item.ID] = item
		if item.HasCoordinates() {
			controller.renderer.AddMarker(item.ID, *item.Coordinates)
		}
	}

	bounds, count := BoundsOf(venues)
	switch {
	case count == 1:
		controller.renderer.FlyTo(bounds.Center(), singleVenueZoom)
	case count > 1:
		controller.renderer.FitBounds(bounds, fitPadding)
	}
}

// HoverMarker marks a venue's marker as hovered and highlights its
// card in the list.
func (controller *Controller) HoverMarker(id int) {
	if id == controller.hoveredID {
		return
	}
	if _, known := controller.venues[id]; !known {
		return
	}
	controller.unhover()
	controller.hoveredID = id
	if id != controller.selectedID {
		controller.list.EmphasizeCard(id)
	}
}

// UnhoverMarker clears the hover highlight.
func (controller *Controller) UnhoverMarker() {
	controller.unhover()
}

func (controller *Controller) unhover() {
	if controller.hoveredID == 0 {
		return
	}
	if controller.hoveredID != controller.selectedID {
		controller.list.RelaxCard(controller.hoveredID)
	}
	controller.hoveredID = 0
}

// HoverCard intentionally does nothing to the map. Scrolling the list
// sweeps the pointer across cards; reflecting that onto markers makes
// the map flicker, so card hover stays a list-local affordance.
func (controller *Controller) HoverCard(id int) {}

// ClickMarker toggles selection from the map side. Selecting scrolls
// the venue's card into view and opens its popup; re-clicking the
// selected marker deselects.
func (controller *Controller) ClickMarker(id int) {
	controller.toggleSelection(id)
}

// ClickCard toggles selection from the list side. Selecting a venue
// with coordinates highlights its marker and opens its popup;
// a venue without coordinates is selectable with no map effect.
func (controller *Controller) ClickCard(id int) {
	controller.toggleSelection(id)
}

// toggleSelection is the single selection transition for both
// surfaces: clicking the selected venue deselects, clicking another
// moves the selection.
func (controller *Controller) toggleSelection(id int) {
	item, known := controller.venues[id]
	if !known {
		return
	}

	if controller.selectedID == id {
		controller.deselect()
		return
	}
	controller.deselect()

	controller.selectedID = id
	controller.list.EmphasizeCard(id)
	controller.list.ScrollIntoView(id)
	if item.HasCoordinates() {
		controller.renderer.EmphasizeMarker(id)
		controller.renderer.ShowPopup(id, popupLines(item))
	}
}

func (controller *Controller) deselect() {
	if controller.selectedID == 0 {
		return
	}
	previous := controller.selectedID
	controller.selectedID = 0

	if controller.hoveredID != previous {
		controller.list.RelaxCard(previous)
	}
	if item, known := controller.venues[previous]; known && item.HasCoordinates() {
		controller.renderer.RelaxMarker(previous)
	}
	controller.renderer.HidePopup()
}

// popupLines builds the popup content for a selected venue: name,
// capacity, availability, and a short summary excerpt.
func popupLines(item venue.Venue) []string {
	lines := []string{item.Name}
	if item.Capacity > 0 {
		lines = append(lines, fmt.Sprintf("up to %d guests", item.Capacity))
	}
	if item.Availability != "" {
		lines = append(lines, item.Availability)
	}
	lines = append(lines, tui.ExtractExcerpt(item.Summary, popupExcerptWidth, popupExcerptLines)...)
	return lines
}
