// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package resultsui

import (
	"testing"

	"github.com/venuedesk/venuedesk/lib/tui"
	"github.com/venuedesk/venuedesk/lib/venue"
)

func newTestList() *venueList {
	list := newVenueList(tui.DefaultTheme)
	list.Resize(40, 8) // two cards fully visible
	list.SetVenues(venue.SampleCatalog().Venues())
	return list
}

func TestCardAtMapsRowsToVenues(t *testing.T) {
	list := newTestList()

	// First card occupies rows 0-2, row 3 is its separator.
	for row := 0; row < 3; row++ {
		if got := list.CardAt(row); got != 1 {
			t.Errorf("CardAt(%d) = %d, want 1", row, got)
		}
	}
	if got := list.CardAt(3); got != 0 {
		t.Errorf("CardAt(separator) = %d, want 0", got)
	}
	if got := list.CardAt(4); got != 2 {
		t.Errorf("CardAt(4) = %d, want 2", got)
	}
}

func TestCardAtPastEnd(t *testing.T) {
	list := newTestList()
	list.SetVenues(list.venues[:1])
	if got := list.CardAt(7); got != 0 {
		t.Errorf("CardAt past the last card = %d, want 0", got)
	}
}

func TestScrollIntoViewScrollsForward(t *testing.T) {
	list := newTestList()

	last := list.venues[len(list.venues)-1]
	list.ScrollIntoView(last.ID)
	if got := list.CardAt(list.height - 2); got != last.ID {
		t.Errorf("card %d not visible after ScrollIntoView, bottom shows %d", last.ID, got)
	}

	// And back again.
	list.ScrollIntoView(list.venues[0].ID)
	if list.offset != 0 {
		t.Errorf("offset = %d after scrolling first card into view, want 0", list.offset)
	}
}

func TestMoveCursorClampsAndFollows(t *testing.T) {
	list := newTestList()

	list.MoveCursor(-1)
	if list.CursorID() != list.venues[0].ID {
		t.Errorf("cursor moved before the first card")
	}

	for range list.venues {
		list.MoveCursor(1)
	}
	last := list.venues[len(list.venues)-1]
	if list.CursorID() != last.ID {
		t.Errorf("CursorID = %d, want clamped to last venue %d", list.CursorID(), last.ID)
	}
	if got := list.CardAt(list.height - 2); got != last.ID {
		t.Errorf("cursor card scrolled out of view")
	}
}

func TestRenderPadsToPaneSize(t *testing.T) {
	list := newTestList()
	lines := list.Render(false)
	if len(lines) != 8 {
		t.Fatalf("rendered %d lines, want 8", len(lines))
	}

	// Emphasis must not change the pane geometry.
	list.EmphasizeCard(1)
	if got := len(list.Render(true)); got != 8 {
		t.Errorf("emphasized render has %d lines, want 8", got)
	}
}

func TestEmptyListRendersPlaceholder(t *testing.T) {
	list := newTestList()
	list.SetVenues(nil)
	lines := list.Render(false)
	if len(lines) != 8 {
		t.Fatalf("empty list rendered %d lines, want 8", len(lines))
	}
	if list.CardAt(0) != 0 {
		t.Errorf("empty list reported a card hit")
	}
}
