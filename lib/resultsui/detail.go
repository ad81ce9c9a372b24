// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package resultsui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/venuedesk/venuedesk/lib/tui"
	"github.com/venuedesk/venuedesk/lib/venue"
)

// detailPhase is the drawer's fetch lifecycle.
type detailPhase int

const (
	detailClosed detailPhase = iota
	detailLoading
	detailReady
	detailError
)

// detailLoadedMsg delivers a detail fetch result. seq identifies the
// request; the drawer drops messages from superseded requests.
type detailLoadedMsg struct {
	seq     int
	venueID int
	details venue.Details
	err     error
}

// drawer is the venue detail pane. Every fetch carries a sequence
// number; the latest request wins and responses from earlier requests
// are discarded no matter the order they arrive in.
type drawer struct {
	theme tui.Theme

	phase   detailPhase
	venueID int
	name    string
	seq     int
	details venue.Details
	err     error

	viewport viewport.Model
	width    int
	height   int
}

func newDrawer(theme tui.Theme) *drawer {
	return &drawer{theme: theme}
}

// Open starts a detail fetch for a venue. Re-requesting the venue that
// is already loading or loaded is a no-op: the in-flight or shown
// content stands.
func (drawer *drawer) Open(source venue.Source, item venue.Venue) tea.Cmd {
	if drawer.venueID == item.ID && drawer.phase != detailClosed && drawer.phase != detailError {
		return nil
	}
	drawer.phase = detailLoading
	drawer.venueID = item.ID
	drawer.name = item.Name
	drawer.err = nil
	return drawer.fetch(source)
}

// Retry re-issues the failed fetch. Only meaningful in the error
// state.
func (drawer *drawer) Retry(source venue.Source) tea.Cmd {
	if drawer.phase != detailError {
		return nil
	}
	drawer.phase = detailLoading
	drawer.err = nil
	return drawer.fetch(source)
}

func (drawer *drawer) fetch(source venue.Source) tea.Cmd {
	drawer.seq++
	seq := drawer.seq
	id := drawer.venueID
	return func() tea.Msg {
		details, err := source.Details(context.Background(), id)
		return detailLoadedMsg{seq: seq, venueID: id, details: details, err: err}
	}
}

// Close empties the drawer. A response for an open request may still
// arrive later; the sequence guard drops it.
func (drawer *drawer) Close() {
	drawer.phase = detailClosed
	drawer.venueID = 0
	drawer.name = ""
	drawer.err = nil
}

// Apply settles a fetch result. Responses from any request but the
// latest are stale and ignored, so out-of-order completion can never
// show venue A's details under venue B's header.
func (drawer *drawer) Apply(message detailLoadedMsg) {
	if message.seq != drawer.seq || drawer.phase != detailLoading {
		return
	}
	if message.err != nil {
		drawer.phase = detailError
		drawer.err = message.err
		return
	}
	drawer.phase = detailReady
	drawer.details = message.details
	drawer.setContent()
}

// Resize sets the drawer pane dimensions.
func (drawer *drawer) Resize(width, height int) {
	drawer.width = width
	drawer.height = height
	contentHeight := height - 2 // header and footer rows
	if contentHeight < 1 {
		contentHeight = 1
	}
	drawer.viewport = viewport.New(width, contentHeight)
	if drawer.phase == detailReady {
		drawer.setContent()
	}
}

// Scroll moves the drawer content by delta lines.
func (drawer *drawer) Scroll(delta int) {
	if delta < 0 {
		drawer.viewport.LineUp(-delta)
	} else {
		drawer.viewport.LineDown(delta)
	}
}

// Shown reports whether the drawer occupies screen space.
func (drawer *drawer) Shown() bool {
	return drawer.phase != detailClosed
}

// setContent renders the loaded details into the viewport.
func (drawer *drawer) setContent() {
	width := drawer.width - 2
	if width < 10 {
		width = 10
	}

	var content strings.Builder
	content.WriteString(renderTerminalMarkdown(drawer.details.Description, drawer.theme, width))
	content.WriteString("\n")

	faint := lipgloss.NewStyle().Foreground(drawer.theme.FaintText)
	normal := lipgloss.NewStyle().Foreground(drawer.theme.NormalText)

	if len(drawer.details.Amenities) > 0 {
		content.WriteString("\n" + faint.Render("Amenities") + "\n")
		content.WriteString(normal.Render(strings.Join(drawer.details.Amenities, ", ")) + "\n")
	}
	if drawer.details.FloorArea > 0 {
		content.WriteString("\n" + faint.Render("Floor area") + "  " +
			normal.Render(fmt.Sprintf("%d m²", drawer.details.FloorArea)) + "\n")
	}
	if drawer.details.HostName != "" {
		host := drawer.details.HostName
		if drawer.details.HostContact != "" {
			host += "  " + drawer.details.HostContact
		}
		content.WriteString("\n" + faint.Render("Host") + "  " + normal.Render(host) + "\n")
	}
	drawer.viewport.SetContent(content.String())
}

// Render draws the drawer pane.
func (drawer *drawer) Render() []string {
	if drawer.width <= 0 || drawer.height <= 0 || !drawer.Shown() {
		return nil
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(drawer.theme.HeaderForeground).
		Render(ansi.Truncate(drawer.name, drawer.width-1, "…"))
	lines := []string{padListLine(header, drawer.width)}

	switch drawer.phase {
	case detailLoading:
		loading := lipgloss.NewStyle().Foreground(drawer.theme.FaintText).Render("loading…")
		lines = append(lines, padListLine(loading, drawer.width))

	case detailError:
		errorStyle := lipgloss.NewStyle().Foreground(drawer.theme.AvailabilityBooked)
		lines = append(lines, padListLine(errorStyle.Render(ansi.Truncate(drawer.err.Error(), drawer.width, "…")), drawer.width))
		hint := lipgloss.NewStyle().Foreground(drawer.theme.HelpText).Render("r retry  x close")
		lines = append(lines, padListLine(hint, drawer.width))

	case detailReady:
		for _, line := range strings.Split(drawer.viewport.View(), "\n") {
			lines = append(lines, padListLine(line, drawer.width))
		}
	}

	for len(lines) < drawer.height {
		lines = append(lines, strings.Repeat(" ", drawer.width))
	}
	if len(lines) > drawer.height {
		lines = lines[:drawer.height]
	}
	return lines
}
