// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package mapsync

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/venuedesk/venuedesk/lib/tui"
	"github.com/venuedesk/venuedesk/lib/venue"
)

func newTestGrid() *GridMap {
	grid := NewGridMap(tui.DefaultTheme, "")
	grid.Resize(60, 20)
	return grid
}

func TestFlyToCentersMarker(t *testing.T) {
	grid := newTestGrid()
	target := venue.Coordinates{Lon: 2.35, Lat: 48.85}
	grid.AddMarker(1, target)
	grid.FlyTo(target, 13)

	if got := grid.MarkerAt(30, 10); got != 1 {
		t.Errorf("MarkerAt(center) = %d, want 1", got)
	}
}

func TestFitBoundsKeepsAllMarkersVisible(t *testing.T) {
	grid := newTestGrid()
	venues := testVenues()
	for _, item := range venues {
		if item.HasCoordinates() {
			grid.AddMarker(item.ID, *item.Coordinates)
		}
	}
	bounds, _ := BoundsOf(venues)
	grid.FitBounds(bounds, 0.15)

	for _, id := range []int{1, 2} {
		_, _, visible := grid.cellOf(grid.markers[id])
		if !visible {
			t.Errorf("marker %d outside the fitted viewport", id)
		}
	}
}

// FitBounds before the first Resize defers until a viewport exists.
func TestFitBoundsDefersWithoutViewport(t *testing.T) {
	grid := NewGridMap(tui.DefaultTheme, "")
	grid.AddMarker(1, venue.Coordinates{Lon: 2.35, Lat: 48.85})
	grid.AddMarker(2, venue.Coordinates{Lon: 2.12, Lat: 48.80})
	bounds, _ := BoundsOf(testVenues())
	grid.FitBounds(bounds, 0.15)

	grid.Resize(60, 20)
	for _, id := range []int{1, 2} {
		_, _, visible := grid.cellOf(grid.markers[id])
		if !visible {
			t.Errorf("deferred fit lost marker %d", id)
		}
	}
}

func TestResizeTeardownSafe(t *testing.T) {
	grid := newTestGrid()
	grid.AddMarker(1, venue.Coordinates{Lon: 2.35, Lat: 48.85})

	grid.Resize(0, 0)
	if lines := grid.Render(); lines != nil {
		t.Errorf("torn-down grid rendered %d lines", len(lines))
	}
	if got := grid.MarkerAt(0, 0); got != 0 {
		t.Errorf("torn-down grid hit marker %d", got)
	}

	// Resizing back restores rendering.
	grid.Resize(60, 20)
	if lines := grid.Render(); len(lines) != 20 {
		t.Errorf("restored grid rendered %d lines, want 20", len(lines))
	}
}

func TestRenderLineWidths(t *testing.T) {
	grid := newTestGrid()
	grid.AddMarker(1, venue.Coordinates{Lon: 2.35, Lat: 48.85})
	grid.FlyTo(venue.Coordinates{Lon: 2.35, Lat: 48.85}, 13)

	for index, line := range grid.Render() {
		if width := ansi.StringWidth(line); width != 60 {
			t.Errorf("line %d width = %d, want 60", index, width)
		}
	}
}

func TestPopupRendersVenueName(t *testing.T) {
	grid := newTestGrid()
	target := venue.Coordinates{Lon: 2.35, Lat: 48.85}
	grid.AddMarker(1, target)
	grid.FlyTo(target, 13)
	grid.ShowPopup(1, []string{"Pavillon Lumière", "up to 320 guests"})

	rendered := strings.Join(grid.Render(), "\n")
	if !strings.Contains(ansi.Strip(rendered), "Pavillon Lumière") {
		t.Errorf("popup content missing from render")
	}

	grid.HidePopup()
	rendered = strings.Join(grid.Render(), "\n")
	if strings.Contains(ansi.Strip(rendered), "Pavillon Lumière") {
		t.Errorf("popup survived HidePopup")
	}
}

// The popup splice wraps its lines in SGR resets; the marker glyph on
// the popup's row must come out bold regardless.
func TestPopupMarkerGlyphStaysBold(t *testing.T) {
	grid := newTestGrid()
	target := venue.Coordinates{Lon: 2.35, Lat: 48.85}
	grid.AddMarker(1, target)
	grid.FlyTo(target, 13)
	grid.ShowPopup(1, []string{"Pavillon Lumière"})

	lines := grid.Render()
	_, markerY, visible := grid.cellOf(target)
	if !visible {
		t.Fatal("popup marker not visible")
	}
	row := lines[markerY]
	if !strings.Contains(row, "\x1b[1m") {
		t.Errorf("marker row carries no bold sequence: %q", row)
	}
	if got := ansi.Strip(row); !strings.Contains(got, grid.glyph) {
		t.Errorf("marker glyph missing from row %d: %q", markerY, got)
	}
}

func TestPanMovesCenter(t *testing.T) {
	grid := newTestGrid()
	target := venue.Coordinates{Lon: 2.35, Lat: 48.85}
	grid.AddMarker(1, target)
	grid.FlyTo(target, 13)

	grid.Pan(5, 0)
	if got := grid.MarkerAt(25, 10); got != 1 {
		t.Errorf("after panning right, MarkerAt(25,10) = %d, want 1", got)
	}
}
