// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package resultsui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/venuedesk/venuedesk/lib/tui"
)

// View implements tea.Model.
func (model Model) View() string {
	if model.width == 0 || model.height == 0 {
		return ""
	}

	var view strings.Builder
	view.WriteString(model.widget.View())
	view.WriteString("\n")

	separator := lipgloss.NewStyle().Foreground(model.theme.BorderColor)
	view.WriteString(separator.Render(strings.Repeat("─", model.width)))
	view.WriteString("\n")

	view.WriteString(strings.Join(model.bodyLines(), "\n"))
	view.WriteString("\n")
	view.WriteString(model.statusBar())

	rendered := view.String()

	// Floating layers, bottom to top: search overlay, booking modal,
	// log popup.
	if overlay, anchorX, anchorY, ok := model.widget.OverlayView(); ok {
		rendered = tui.SpliceOverlay(rendered, overlay, anchorX, anchorY)
	}
	if model.booking != nil {
		lines, anchorX, anchorY := model.booking.Render(model.width, model.height)
		rendered = tui.SpliceOverlay(rendered, lines, anchorX, anchorY)
	}
	if model.showLog {
		lines, anchorX, anchorY := model.logPopup()
		rendered = tui.SpliceOverlay(rendered, lines, anchorX, anchorY)
	}
	return rendered
}

// bodyLines assembles the split pane: list, divider, then the map with
// the drawer stacked under it.
func (model Model) bodyLines() []string {
	bodyHeight := model.bodyHeight()
	listLines := model.list.Render(model.focus == focusList)
	mapLines := model.grid.Render()
	drawerLines := model.drawer.Render()

	divider := lipgloss.NewStyle().Foreground(model.theme.BorderColor).Render("│")
	if model.draggingDivider {
		divider = lipgloss.NewStyle().Foreground(model.theme.Accent).Render("│")
	}

	mapWidth := model.width - model.dividerX - 1
	lines := make([]string, bodyHeight)
	for y := 0; y < bodyHeight; y++ {
		left := strings.Repeat(" ", model.dividerX)
		if y < len(listLines) {
			left = listLines[y]
		}

		right := strings.Repeat(" ", mapWidth)
		if y < len(mapLines) {
			right = mapLines[y]
		} else if drawerIndex := y - len(mapLines); drawerIndex >= 0 && drawerIndex < len(drawerLines) {
			right = drawerLines[drawerIndex]
		}

		lines[y] = left + divider + right
	}
	return lines
}

// statusBar renders the bottom row: result summary on the left, the
// latest log line and key hints on the right.
func (model Model) statusBar() string {
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	normal := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	hint := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	var left string
	switch {
	case model.widget.Busy():
		left = faint.Render("searching…")
	case model.searchErr != nil:
		errorStyle := lipgloss.NewStyle().Foreground(model.theme.AvailabilityBooked)
		left = errorStyle.Render(ansi.Truncate("search failed: "+model.searchErr.Error(), model.width/2, "…"))
	default:
		left = normal.Render(fmt.Sprintf("%d venues", len(model.results)))
		if id := model.controller.SelectedID(); id != 0 {
			if item, known := model.source.Get(id); known {
				left += faint.Render("  selected ") + normal.Render(item.Name)
			}
		}
	}

	hints := "/ search  tab pane  enter select  b book  ! log  q quit"
	if model.bookingBusy {
		hints = "sending booking request…"
	}
	right := hint.Render(hints)

	if status := model.status.Last(); status != "" && !model.bookingBusy {
		budget := model.width - ansi.StringWidth(left) - ansi.StringWidth(right) - 6
		if budget > 10 {
			right = faint.Render(ansi.Truncate(status, budget, "…")+"  ") + right
		}
	}

	gap := model.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return ansi.Truncate(left+strings.Repeat(" ", gap)+right, model.width, "")
}

// logPopup renders the recent log tail as a centered panel.
func (model Model) logPopup() (lines []string, anchorX, anchorY int) {
	width := model.width * 3 / 4
	height := model.height / 2
	if width < 30 {
		width = 30
	}
	if height < 6 {
		height = 6
	}

	background := lipgloss.NewStyle().
		Foreground(model.theme.OverlayForeground).
		Background(model.theme.OverlayBackground)
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground).
		Background(model.theme.OverlayBackground)

	innerWidth := width - 2
	lines = append(lines, tui.PadOverlayLine(title.Render("Recent activity"), innerWidth, width, background))
	for _, record := range model.status.Tail(height - 2) {
		truncated := ansi.Truncate(record, innerWidth, "…")
		lines = append(lines, tui.PadOverlayLine(background.Render(truncated), innerWidth, width, background))
	}
	footer := lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Background(model.theme.OverlayBackground)
	lines = append(lines, tui.PadOverlayLine(footer.Render("any key to close"), innerWidth, width, background))

	anchorX = (model.width - width) / 2
	anchorY = (model.height - len(lines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return lines, anchorX, anchorY
}
