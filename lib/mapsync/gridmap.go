// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package mapsync

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/venuedesk/venuedesk/lib/tui"
	"github.com/venuedesk/venuedesk/lib/venue"
)

const (
	minZoom = 1.0
	maxZoom = 18.0

	// cellAspect compensates for terminal cells being roughly twice
	// as tall as wide: one row covers twice the degrees of one
	// column.
	cellAspect = 2.0

	// minFitSpan guards FitBounds against a degenerate box where all
	// markers share one point.
	minFitSpan = 1e-6

	defaultMarkerGlyph = "●"
)

// fitRequest is a FitBounds call deferred because the grid had no
// viewport yet. Resize replays it.
type fitRequest struct {
	bounds  Bounds
	padding float64
}

// GridMap renders venue markers on a character grid with an
// equirectangular projection. It implements [Renderer].
//
// All coordinates passed to MarkerAt are grid-local; the embedding
// view translates screen positions before calling in.
type GridMap struct {
	theme tui.Theme
	glyph string

	width  int
	height int

	center venue.Coordinates
	zoom   float64

	markers    map[int]venue.Coordinates
	emphasized map[int]bool

	popupID    int
	popupLines []string

	pendingFit *fitRequest
}

// NewGridMap creates an empty map. The glyph draws each marker; an
// empty glyph falls back to the default.
func NewGridMap(theme tui.Theme, glyph string) *GridMap {
	if glyph == "" {
		glyph = defaultMarkerGlyph
	}
	return &GridMap{
		theme:      theme,
		glyph:      glyph,
		zoom:       singleVenueZoom,
		markers:    make(map[int]venue.Coordinates),
		emphasized: make(map[int]bool),
	}
}

// Resize sets the viewport dimensions. Idempotent: resizing to the
// current dimensions is free. Resizing to zero tears the viewport
// down; every query and Render is safe against a torn-down grid.
func (grid *GridMap) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == grid.width && height == grid.height {
		return
	}
	grid.width = width
	grid.height = height

	if grid.pendingFit != nil && width > 0 && height > 0 {
		pending := *grid.pendingFit
		grid.pendingFit = nil
		grid.FitBounds(pending.bounds, pending.padding)
	}
}

// lonPerCell returns the degrees of longitude covered by one column.
func (grid *GridMap) lonPerCell() float64 {
	if grid.width == 0 {
		return 0
	}
	span := 360 / math.Pow(2, grid.zoom)
	return span / float64(grid.width)
}

// cellOf projects a point into grid coordinates.
func (grid *GridMap) cellOf(point venue.Coordinates) (x, y int, visible bool) {
	perCell := grid.lonPerCell()
	if perCell == 0 {
		return 0, 0, false
	}
	x = int(math.Round((point.Lon-grid.center.Lon)/perCell)) + grid.width/2
	y = int(math.Round((grid.center.Lat-point.Lat)/(perCell*cellAspect))) + grid.height/2
	if x < 0 || x >= grid.width || y < 0 || y >= grid.height {
		return x, y, false
	}
	return x, y, true
}

// FitBounds frames the box, choosing the largest zoom at which both
// spans fit with padding. Called before the first Resize it defers
// until a viewport exists.
func (grid *GridMap) FitBounds(bounds Bounds, padding float64) {
	if grid.width == 0 || grid.height == 0 {
		grid.pendingFit = &fitRequest{bounds: bounds, padding: padding}
		return
	}

	grid.center = bounds.Center()

	lonSpan := bounds.SpanLon() * (1 + 2*padding)
	latSpan := bounds.SpanLat() * (1 + 2*padding)

	// Both spans must fit; express the lat requirement in terms of
	// the horizontal span and take whichever needs more room.
	needed := lonSpan
	latAsLon := latSpan / cellAspect * float64(grid.width) / float64(grid.height)
	if latAsLon > needed {
		needed = latAsLon
	}
	if needed < minFitSpan {
		needed = minFitSpan
	}
	grid.zoom = clampZoom(math.Log2(360 / needed))
}

// FlyTo recenters on a point at the given zoom.
func (grid *GridMap) FlyTo(point venue.Coordinates, zoom float64) {
	grid.center = point
	grid.zoom = clampZoom(zoom)
	grid.pendingFit = nil
}

// AddMarker places or moves a marker.
func (grid *GridMap) AddMarker(id int, point venue.Coordinates) {
	grid.markers[id] = point
}

// ClearMarkers removes every marker, highlight, and popup.
func (grid *GridMap) ClearMarkers() {
	grid.markers = make(map[int]venue.Coordinates)
	grid.emphasized = make(map[int]bool)
	grid.popupID = 0
	grid.popupLines = nil
}

// EmphasizeMarker highlights a marker.
func (grid *GridMap) EmphasizeMarker(id int) {
	if _, known := grid.markers[id]; known {
		grid.emphasized[id] = true
	}
}

// RelaxMarker removes a marker's highlight.
func (grid *GridMap) RelaxMarker(id int) {
	delete(grid.emphasized, id)
}

// ShowPopup attaches the popup to a marker. Only one popup exists; a
// second call replaces the first.
func (grid *GridMap) ShowPopup(id int, lines []string) {
	if _, known := grid.markers[id]; !known {
		return
	}
	grid.popupID = id
	grid.popupLines = lines
}

// HidePopup removes the popup.
func (grid *GridMap) HidePopup() {
	grid.popupID = 0
	grid.popupLines = nil
}

// Pan moves the center by whole cells.
func (grid *GridMap) Pan(dx, dy int) {
	perCell := grid.lonPerCell()
	grid.center.Lon += float64(dx) * perCell
	grid.center.Lat -= float64(dy) * perCell * cellAspect
}

// ZoomIn and ZoomOut step the zoom by one level around the current
// center.
func (grid *GridMap) ZoomIn()  { grid.zoom = clampZoom(grid.zoom + 1) }
func (grid *GridMap) ZoomOut() { grid.zoom = clampZoom(grid.zoom - 1) }

func clampZoom(zoom float64) float64 {
	if zoom < minZoom {
		return minZoom
	}
	if zoom > maxZoom {
		return maxZoom
	}
	return zoom
}

// MarkerAt returns the venue ID of the marker occupying a grid cell,
// or 0. When markers overlap in one cell the emphasized one wins, so a
// click always reaches the marker the user sees on top.
func (grid *GridMap) MarkerAt(x, y int) int {
	found := 0
	for id, point := range grid.markers {
		cellX, cellY, visible := grid.cellOf(point)
		if !visible || cellX != x || cellY != y {
			continue
		}
		if grid.emphasized[id] {
			return id
		}
		if found == 0 || id < found {
			found = id
		}
	}
	return found
}

// Render draws the grid: background, markers, then the popup spliced
// on top. A torn-down grid renders nothing.
func (grid *GridMap) Render() []string {
	if grid.width == 0 || grid.height == 0 {
		return nil
	}

	background := lipgloss.NewStyle().
		Foreground(grid.theme.FaintText).
		Background(grid.theme.MapBackground)
	marker := lipgloss.NewStyle().
		Foreground(grid.theme.MarkerForeground).
		Background(grid.theme.MapBackground)
	emphasizedMarker := lipgloss.NewStyle().
		Foreground(grid.theme.Accent).
		Background(grid.theme.MapBackground).
		Bold(true)

	// One glyph entry per cell; nil means background.
	type cell struct {
		glyph    string
		emphasis bool
	}
	cells := make(map[[2]int]cell)
	for id, point := range grid.markers {
		x, y, visible := grid.cellOf(point)
		if !visible {
			continue
		}
		key := [2]int{x, y}
		// An emphasized marker draws over a plain one in the same
		// cell.
		if existing, taken := cells[key]; taken && existing.emphasis {
			continue
		}
		cells[key] = cell{glyph: grid.glyph, emphasis: grid.emphasized[id]}
	}

	lines := make([]string, grid.height)
	for y := 0; y < grid.height; y++ {
		var row strings.Builder
		runStart := 0
		for x := 0; x < grid.width; x++ {
			content, occupied := cells[[2]int{x, y}]
			if !occupied {
				continue
			}
			if x > runStart {
				row.WriteString(background.Render(strings.Repeat(" ", x-runStart)))
			}
			if content.emphasis {
				row.WriteString(emphasizedMarker.Render(content.glyph))
			} else {
				row.WriteString(marker.Render(content.glyph))
			}
			runStart = x + 1
		}
		if runStart < grid.width {
			row.WriteString(background.Render(strings.Repeat(" ", grid.width-runStart)))
		}
		lines[y] = row.String()
	}

	return grid.splicePopup(lines)
}

// splicePopup draws the popup box next to its marker, flipping to the
// left side when the right edge would clip it.
func (grid *GridMap) splicePopup(lines []string) []string {
	if grid.popupID == 0 || len(grid.popupLines) == 0 {
		return lines
	}
	point, known := grid.markers[grid.popupID]
	if !known {
		return lines
	}
	markerX, markerY, visible := grid.cellOf(point)
	if !visible {
		return lines
	}

	popupStyle := lipgloss.NewStyle().
		Foreground(grid.theme.OverlayForeground).
		Background(grid.theme.OverlayBackground)
	titleStyle := popupStyle.Bold(true)

	innerWidth := 0
	for _, line := range grid.popupLines {
		if width := ansi.StringWidth(line); width > innerWidth {
			innerWidth = width
		}
	}
	totalWidth := innerWidth + 2

	styled := make([]string, 0, len(grid.popupLines))
	for index, line := range grid.popupLines {
		style := popupStyle
		if index == 0 {
			style = titleStyle
		}
		styled = append(styled, tui.PadOverlayLine(style.Render(line), innerWidth, totalWidth, popupStyle))
	}

	anchorX := markerX + 2
	if anchorX+totalWidth > grid.width {
		anchorX = markerX - 1 - totalWidth
	}
	if anchorX < 0 {
		anchorX = 0
	}
	anchorY := markerY - len(styled)/2
	if anchorY < 0 {
		anchorY = 0
	}
	if anchorY+len(styled) > grid.height {
		anchorY = grid.height - len(styled)
	}
	if anchorY < 0 {
		anchorY = 0
	}

	view := tui.SpliceOverlay(strings.Join(lines, "\n"), styled, anchorX, anchorY)
	// Re-assert bold on the popup marker's glyph: the splice wraps the
	// popup in SGR resets that can land on the marker's row.
	view = tui.OverlayBold(view, markerY, markerX, markerX+ansi.StringWidth(grid.glyph))
	return strings.Split(view, "\n")
}
