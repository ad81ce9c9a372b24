// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package resultsui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/venuedesk/venuedesk/lib/tui"
	"github.com/venuedesk/venuedesk/lib/venue"
)

func testCatalog() *venue.Catalog {
	catalog := venue.SampleCatalog()
	catalog.SetLatency(0)
	return catalog
}

func mustVenue(t *testing.T, catalog *venue.Catalog, id int) venue.Venue {
	t.Helper()
	item, known := catalog.Get(id)
	if !known {
		t.Fatalf("sample catalog has no venue %d", id)
	}
	return item
}

func runFetch(t *testing.T, cmd tea.Cmd) detailLoadedMsg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a fetch command")
	}
	message, ok := cmd().(detailLoadedMsg)
	if !ok {
		t.Fatalf("fetch command returned %T, want detailLoadedMsg", cmd())
	}
	return message
}

// Two rapid selections race their fetches; the response for the first
// venue resolves after the second fetch was issued and must be
// dropped.
func TestStaleDetailResponseIgnored(t *testing.T) {
	catalog := testCatalog()
	drawer := newDrawer(tui.DefaultTheme)
	drawer.Resize(50, 20)

	first := runFetch(t, drawer.Open(catalog, mustVenue(t, catalog, 1)))
	second := runFetch(t, drawer.Open(catalog, mustVenue(t, catalog, 2)))

	// The older response arrives last.
	drawer.Apply(second)
	drawer.Apply(first)

	if drawer.phase != detailReady {
		t.Fatalf("drawer phase = %v, want ready", drawer.phase)
	}
	if drawer.details.VenueID != 2 {
		t.Errorf("drawer shows venue %d, want the latest request (2)", drawer.details.VenueID)
	}
}

func TestStaleResponseCannotResurrectClosedDrawer(t *testing.T) {
	catalog := testCatalog()
	drawer := newDrawer(tui.DefaultTheme)
	drawer.Resize(50, 20)

	pending := runFetch(t, drawer.Open(catalog, mustVenue(t, catalog, 1)))
	drawer.Close()
	drawer.Apply(pending)

	if drawer.Shown() {
		t.Errorf("a response for a closed drawer reopened it")
	}
}

func TestReopeningSameVenueIsNoOp(t *testing.T) {
	catalog := testCatalog()
	drawer := newDrawer(tui.DefaultTheme)
	drawer.Resize(50, 20)

	item := mustVenue(t, catalog, 1)
	first := drawer.Open(catalog, item)
	if first == nil {
		t.Fatalf("first open returned no fetch")
	}
	seqBefore := drawer.seq

	if cmd := drawer.Open(catalog, item); cmd != nil {
		t.Errorf("re-opening the loading venue issued a second fetch")
	}
	if drawer.seq != seqBefore {
		t.Errorf("re-open advanced the sequence: %d -> %d", seqBefore, drawer.seq)
	}

	// Same once loaded.
	drawer.Apply(runFetch(t, first))
	if cmd := drawer.Open(catalog, item); cmd != nil {
		t.Errorf("re-opening the shown venue issued a fetch")
	}
}

func TestDetailErrorAndRetry(t *testing.T) {
	catalog := testCatalog()
	drawer := newDrawer(tui.DefaultTheme)
	drawer.Resize(50, 20)

	// Venue 99 does not exist, so the fetch fails.
	missing := venue.Venue{ID: 99, Name: "Ghost"}
	failed := runFetch(t, drawer.Open(catalog, missing))
	drawer.Apply(failed)
	if drawer.phase != detailError {
		t.Fatalf("drawer phase = %v after failed fetch, want error", drawer.phase)
	}
	if drawer.err == nil {
		t.Fatalf("error state carries no error")
	}

	retry := drawer.Retry(catalog)
	if retry == nil {
		t.Fatalf("retry in the error state returned no fetch")
	}
	if drawer.phase != detailLoading {
		t.Errorf("retry did not return to loading")
	}

	// Retry outside the error state is inert.
	ready := runFetch(t, drawer.Open(catalog, mustVenue(t, catalog, 1)))
	drawer.Apply(ready)
	if drawer.phase != detailReady {
		t.Fatalf("drawer phase = %v, want ready", drawer.phase)
	}
	if cmd := drawer.Retry(catalog); cmd != nil {
		t.Errorf("retry outside the error state issued a fetch")
	}
}
