// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package resultsui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/venuedesk/venuedesk/lib/tui"
	"github.com/venuedesk/venuedesk/lib/venue"
)

// cardRows is the height of one result card including its separator
// row.
const cardRows = 4

// venueList is the left pane: one card per venue, scrollable, with a
// keyboard cursor. It implements mapsync.ListView so the controller
// can highlight and scroll cards without knowing the layout.
//
// Coordinates are pane-local; the model translates screen positions
// before calling in.
type venueList struct {
	theme  tui.Theme
	venues []venue.Venue

	cursor int // index into venues
	offset int // scroll offset in rows

	width  int
	height int

	emphasized map[int]bool
}

func newVenueList(theme tui.Theme) *venueList {
	return &venueList{theme: theme, emphasized: make(map[int]bool)}
}

// SetVenues installs a fresh result set and resets scroll and cursor.
func (list *venueList) SetVenues(venues []venue.Venue) {
	list.venues = venues
	list.cursor = 0
	list.offset = 0
	list.emphasized = make(map[int]bool)
}

// Resize sets the pane dimensions, clamping the scroll offset.
func (list *venueList) Resize(width, height int) {
	list.width = width
	list.height = height
	list.clampOffset()
}

func (list *venueList) totalRows() int {
	return len(list.venues) * cardRows
}

func (list *venueList) clampOffset() {
	max := list.totalRows() - list.height
	if max < 0 {
		max = 0
	}
	if list.offset > max {
		list.offset = max
	}
	if list.offset < 0 {
		list.offset = 0
	}
}

// Scroll moves the viewport by delta rows.
func (list *venueList) Scroll(delta int) {
	list.offset += delta
	list.clampOffset()
}

// MoveCursor moves the keyboard cursor and keeps it visible.
func (list *venueList) MoveCursor(delta int) {
	if len(list.venues) == 0 {
		return
	}
	list.cursor += delta
	if list.cursor < 0 {
		list.cursor = 0
	}
	if list.cursor >= len(list.venues) {
		list.cursor = len(list.venues) - 1
	}
	list.ScrollIntoView(list.venues[list.cursor].ID)
}

// CursorID returns the venue under the keyboard cursor, 0 when the
// list is empty.
func (list *venueList) CursorID() int {
	if list.cursor < 0 || list.cursor >= len(list.venues) {
		return 0
	}
	return list.venues[list.cursor].ID
}

// CardAt maps a pane-local row to the venue whose card covers it, 0
// when the row is past the last card or on a separator.
func (list *venueList) CardAt(y int) int {
	row := y + list.offset
	index := row / cardRows
	if index < 0 || index >= len(list.venues) {
		return 0
	}
	if row%cardRows == cardRows-1 {
		return 0 // separator row
	}
	return list.venues[index].ID
}

// ScrollIntoView implements mapsync.ListView.
func (list *venueList) ScrollIntoView(id int) {
	for index, item := range list.venues {
		if item.ID != id {
			continue
		}
		top := index * cardRows
		bottom := top + cardRows - 1
		if top < list.offset {
			list.offset = top
		} else if bottom >= list.offset+list.height {
			list.offset = bottom - list.height + 1
		}
		list.cursor = index
		return
	}
}

// EmphasizeCard implements mapsync.ListView.
func (list *venueList) EmphasizeCard(id int) {
	list.emphasized[id] = true
}

// RelaxCard implements mapsync.ListView.
func (list *venueList) RelaxCard(id int) {
	delete(list.emphasized, id)
}

// Render draws the visible window of cards.
func (list *venueList) Render(focused bool) []string {
	if list.width <= 0 || list.height <= 0 {
		return nil
	}
	if len(list.venues) == 0 {
		empty := lipgloss.NewStyle().Foreground(list.theme.FaintText).Render("no venues match")
		lines := make([]string, list.height)
		for index := range lines {
			lines[index] = strings.Repeat(" ", list.width)
		}
		lines[0] = padListLine(" "+empty, list.width)
		return lines
	}

	contentWidth := list.width - 1 // rightmost column is the scrollbar
	var rows []string
	for index, item := range list.venues {
		rows = append(rows, list.renderCard(item, index == list.cursor, contentWidth)...)
	}

	start := list.offset
	end := start + list.height
	if end > len(rows) {
		end = len(rows)
	}
	visible := make([]string, 0, list.height)
	visible = append(visible, rows[start:end]...)
	for len(visible) < list.height {
		visible = append(visible, strings.Repeat(" ", contentWidth))
	}

	scrollbar := tui.RenderScrollbar(list.theme, list.height, list.totalRows(), list.height, list.offset, focused)
	scrollbarLines := strings.Split(scrollbar, "\n")
	for index := range visible {
		bar := " "
		if index < len(scrollbarLines) {
			bar = scrollbarLines[index]
		}
		visible[index] = padListLine(visible[index], contentWidth) + bar
	}
	return visible
}

// renderCard draws one venue as cardRows lines.
func (list *venueList) renderCard(item venue.Venue, underCursor bool, width int) []string {
	highlighted := list.emphasized[item.ID]

	nameStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(list.theme.CategoryColor(item.Category))
	metaStyle := lipgloss.NewStyle().Foreground(list.theme.FaintText)
	availabilityStyle := lipgloss.NewStyle().
		Foreground(list.theme.AvailabilityColor(item.Availability))
	if highlighted {
		nameStyle = nameStyle.Background(list.theme.HoverBackground)
		metaStyle = metaStyle.Background(list.theme.HoverBackground)
		availabilityStyle = availabilityStyle.Background(list.theme.HoverBackground)
	}

	marker := "  "
	if underCursor {
		marker = lipgloss.NewStyle().Foreground(list.theme.Accent).Render("> ")
	}

	meta := fmt.Sprintf("%s in %s, up to %d guests", item.Category, item.Region, item.Capacity)
	extras := []string{}
	if item.PriceBand != "" {
		extras = append(extras, item.PriceBand)
	}
	if item.Rating > 0 {
		extras = append(extras, fmt.Sprintf("%.1f", item.Rating))
	}
	if len(extras) > 0 {
		meta += "  " + strings.Join(extras, "  ")
	}

	name := item.Name
	if !item.HasCoordinates() {
		name += " (no map location)"
	}

	return []string{
		padListLine(marker+nameStyle.Render(ansi.Truncate(name, width-2, "…")), width),
		padListLine("  "+metaStyle.Render(ansi.Truncate(meta, width-2, "…")), width),
		padListLine("  "+availabilityStyle.Render(item.Availability), width),
		strings.Repeat(" ", width),
	}
}

// padListLine pads a styled line to an exact display width.
func padListLine(line string, width int) string {
	printed := ansi.StringWidth(line)
	if printed > width {
		return ansi.Truncate(line, width, "…")
	}
	return line + strings.Repeat(" ", width-printed)
}
