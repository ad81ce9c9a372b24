// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package resultsui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/venuedesk/venuedesk/lib/searchui"
	"github.com/venuedesk/venuedesk/lib/tui"
	"github.com/venuedesk/venuedesk/lib/venue"
)

func newTestModel(t *testing.T) (Model, *venue.Catalog) {
	t.Helper()
	catalog := testCatalog()
	model := New(catalog, Options{Theme: tui.DefaultTheme})

	next, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), catalog
}

func populated(t *testing.T, model Model, catalog *venue.Catalog) Model {
	t.Helper()
	next, _ := model.Update(searchui.ResultsMsg{Venues: catalog.Venues()})
	return next.(Model)
}

func pressKey(model Model, message tea.KeyMsg) Model {
	next, _ := model.Update(message)
	return next.(Model)
}

func TestResultsPopulateListAndMap(t *testing.T) {
	model, catalog := newTestModel(t)
	model = populated(t, model, catalog)

	if len(model.results) != len(catalog.Venues()) {
		t.Fatalf("model holds %d results, want %d", len(model.results), len(catalog.Venues()))
	}
	if got := len(model.list.venues); got != len(catalog.Venues()) {
		t.Errorf("list holds %d venues, want %d", got, len(catalog.Venues()))
	}
	if model.controller.SelectedID() != 0 {
		t.Errorf("fresh results carried a selection")
	}
}

func TestSearchErrorKeepsPreviousResults(t *testing.T) {
	model, catalog := newTestModel(t)
	model = populated(t, model, catalog)
	before := len(model.results)

	next, _ := model.Update(searchui.ResultsMsg{Err: errors.New("catalog unavailable")})
	model = next.(Model)

	if model.searchErr == nil {
		t.Errorf("search error not recorded")
	}
	if len(model.results) != before {
		t.Errorf("failed search discarded the previous results")
	}
}

func TestEscapeMovesFocusFromIdleSearchToList(t *testing.T) {
	model, _ := newTestModel(t)
	if model.focus != focusSearch {
		t.Fatalf("initial focus = %v, want search", model.focus)
	}

	model = pressKey(model, tea.KeyMsg{Type: tea.KeyEscape})
	if model.focus != focusList {
		t.Errorf("focus = %v after escape, want list", model.focus)
	}
}

func TestSelectOpensDrawerAndReselectCloses(t *testing.T) {
	model, _ := newTestModel(t)
	model = populated(t, model, testCatalog())
	model.focus = focusList

	next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = next.(Model)
	if model.controller.SelectedID() == 0 {
		t.Fatalf("enter did not select the cursor venue")
	}
	if cmd == nil {
		t.Fatalf("selection issued no detail fetch")
	}

	loaded := runFetch(t, cmd)
	next, _ = model.Update(loaded)
	model = next.(Model)
	if model.drawer.phase != detailReady {
		t.Fatalf("drawer phase = %v after fetch, want ready", model.drawer.phase)
	}
	if model.drawer.details.VenueID != model.controller.SelectedID() {
		t.Errorf("drawer shows venue %d, selection is %d",
			model.drawer.details.VenueID, model.controller.SelectedID())
	}

	// Re-selecting the same venue deselects and closes the drawer.
	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = next.(Model)
	if model.controller.SelectedID() != 0 {
		t.Errorf("reselect did not deselect")
	}
	if model.drawer.Shown() {
		t.Errorf("drawer still shown after deselect")
	}
}

// Overlay rendering is driven by the widget's injected clock and
// coordinator state; composing the view never reads the wall clock.
func TestViewRendersOverlayFromInjectedClock(t *testing.T) {
	model, catalog := newTestModel(t)
	model = populated(t, model, catalog)

	epoch := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	model.widget.SetClock(func() time.Time { return epoch })

	// Open the venue-type dropdown, then dismiss it. The close fade
	// started at the frozen epoch, so no amount of wall time may
	// remove the dimmed panel before a transition tick advances the
	// coordinator.
	model = pressKey(model, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(ansi.Strip(model.View()), "Conference") {
		t.Fatalf("open overlay missing from the view")
	}

	model = pressKey(model, tea.KeyMsg{Type: tea.KeyEscape})
	if !strings.Contains(ansi.Strip(model.View()), "Conference") {
		t.Errorf("closing overlay vanished before its transition tick")
	}
}

func TestBookingFlow(t *testing.T) {
	model, _ := newTestModel(t)
	model = populated(t, model, testCatalog())
	model.focus = focusList
	model = pressKey(model, tea.KeyMsg{Type: tea.KeyEnter}) // select venue 1

	model = pressKey(model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if model.booking == nil {
		t.Fatalf("booking modal did not open for the selected venue")
	}

	model = pressKey(model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("need AV setup")})
	next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	model = next.(Model)
	if !model.bookingBusy {
		t.Fatalf("submit did not enter the busy state")
	}
	if cmd == nil {
		t.Fatalf("submit issued no command")
	}

	// A second submit while busy is swallowed.
	next, cmd = model.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	model = next.(Model)
	if cmd != nil {
		t.Errorf("re-entrant booking submit issued a command")
	}

	next, _ = model.Update(bookingResultMsg{
		seq:          model.bookingSeq,
		venueID:      model.bookingVenueID,
		confirmation: venue.BookingConfirmation{Reference: "bk-0001", Status: "pending"},
	})
	model = next.(Model)
	if model.bookingBusy {
		t.Errorf("busy state survived the booking confirmation")
	}
	if model.booking != nil {
		t.Errorf("modal still open after a successful booking")
	}
}

func TestStaleBookingResultIgnored(t *testing.T) {
	model, _ := newTestModel(t)
	model = populated(t, model, testCatalog())
	model.focus = focusList
	model = pressKey(model, tea.KeyMsg{Type: tea.KeyEnter})
	model = pressKey(model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	model = pressKey(model, tea.KeyMsg{Type: tea.KeyCtrlD})

	next, _ := model.Update(bookingResultMsg{seq: model.bookingSeq - 1})
	model = next.(Model)
	if !model.bookingBusy {
		t.Errorf("a stale booking result cleared the busy state")
	}
}

func TestBookingTimeoutResets(t *testing.T) {
	model, _ := newTestModel(t)
	model = populated(t, model, testCatalog())
	model.focus = focusList
	model = pressKey(model, tea.KeyMsg{Type: tea.KeyEnter})
	model = pressKey(model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	model = pressKey(model, tea.KeyMsg{Type: tea.KeyCtrlD})

	next, _ := model.Update(bookingTimeoutMsg{seq: model.bookingSeq})
	model = next.(Model)
	if model.bookingBusy {
		t.Errorf("busy state survived the booking timeout")
	}
}

func TestQuitBindings(t *testing.T) {
	model, _ := newTestModel(t)
	model.focus = focusList

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("q issued no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q returned %T, want tea.QuitMsg", cmd())
	}

	// Ctrl+C quits regardless of focus.
	model.focus = focusSearch
	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c issued no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("ctrl+c returned %T, want tea.QuitMsg", cmd())
	}
}
