// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package searchui

import (
	"testing"
	"time"

	"github.com/venuedesk/venuedesk/lib/tui"
)

var testEpoch = time.Date(2026, time.October, 5, 12, 0, 0, 0, time.UTC)

// afterClose returns a time past the close transition's duration.
func afterClose(from time.Time) time.Time {
	return from.Add(tui.OverlayCloseDuration + 10*time.Millisecond)
}

func TestOpenFromClosed(t *testing.T) {
	coordinator := NewOverlayCoordinator()

	events := coordinator.Open(FieldVenueType, testEpoch)
	if len(events) != 1 || events[0].Kind != OverlayOpened || events[0].FieldID != FieldVenueType {
		t.Fatalf("Open from closed returned %v, want single Opened(%s)", events, FieldVenueType)
	}
	if !coordinator.IsOpen(FieldVenueType) {
		t.Errorf("overlay not reported open after Open")
	}
}

func TestOpenIsIdempotentForSameField(t *testing.T) {
	coordinator := NewOverlayCoordinator()
	coordinator.Open(FieldVenueType, testEpoch)

	events := coordinator.Open(FieldVenueType, testEpoch)
	if len(events) != 0 {
		t.Errorf("reopening the open field returned events %v, want none", events)
	}
	if !coordinator.IsOpen(FieldVenueType) {
		t.Errorf("overlay closed by an idempotent reopen")
	}
}

// Opening a second field must never show two overlays: the first
// closes, and the second opens only after the transition completes.
func TestSecondOpenDefersUntilCloseCompletes(t *testing.T) {
	coordinator := NewOverlayCoordinator()
	coordinator.Open(FieldVenueType, testEpoch)

	events := coordinator.Open(FieldDates, testEpoch)
	if len(events) != 1 || events[0].Kind != OverlayClosed || events[0].FieldID != FieldVenueType {
		t.Fatalf("second open returned %v, want single Closed(%s)", events, FieldVenueType)
	}
	if coordinator.IsOpen(FieldDates) {
		t.Fatalf("second overlay opened before the first finished closing")
	}
	if closing, ok := coordinator.ClosingField(); !ok || closing != FieldVenueType {
		t.Errorf("ClosingField = %q, %v, want %q, true", closing, ok, FieldVenueType)
	}

	// Mid-transition, nothing settles.
	mid := testEpoch.Add(tui.OverlayCloseDuration / 2)
	if events := coordinator.Advance(mid); len(events) != 0 {
		t.Errorf("Advance mid-transition returned %v, want none", events)
	}

	done := afterClose(testEpoch)
	events = coordinator.Advance(done)
	if len(events) != 1 || events[0].Kind != OverlayOpened || events[0].FieldID != FieldDates {
		t.Fatalf("Advance past transition returned %v, want single Opened(%s)", events, FieldDates)
	}
	if !coordinator.IsOpen(FieldDates) {
		t.Errorf("deferred overlay not open after transition settled")
	}
	if coordinator.InTransition() {
		t.Errorf("still in transition after deferred open fired")
	}
}

// An open request arriving during another field's close transition
// also defers; the latest request wins the pending slot.
func TestOpenDuringClosingDefers(t *testing.T) {
	coordinator := NewOverlayCoordinator()
	coordinator.Open(FieldVenueType, testEpoch)
	coordinator.CloseAll(testEpoch)

	if events := coordinator.Open(FieldDates, testEpoch); len(events) != 0 {
		t.Errorf("open during close returned %v, want none", events)
	}
	if events := coordinator.Open(FieldLocation, testEpoch); len(events) != 0 {
		t.Errorf("second open during close returned %v, want none", events)
	}

	events := coordinator.Advance(afterClose(testEpoch))
	if len(events) != 1 || events[0].FieldID != FieldLocation {
		t.Fatalf("Advance returned %v, want Opened(%s)", events, FieldLocation)
	}
}

func TestToggleClosesOwnOverlay(t *testing.T) {
	coordinator := NewOverlayCoordinator()
	coordinator.Toggle(FieldVenueType, testEpoch)

	events := coordinator.Toggle(FieldVenueType, testEpoch)
	if len(events) != 1 || events[0].Kind != OverlayClosed {
		t.Fatalf("toggle of open field returned %v, want single Closed", events)
	}
	if coordinator.IsOpen(FieldVenueType) {
		t.Errorf("overlay still open after toggle")
	}

	// The toggle must settle closed, not reopen.
	if events := coordinator.Advance(afterClose(testEpoch)); len(events) != 0 {
		t.Errorf("Advance after toggle-close returned %v, want none", events)
	}
	if coordinator.InTransition() {
		t.Errorf("transition still in flight after settling")
	}
}

// Toggling the field that is mid-close queues a reopen: the close
// animation finishes, then the same overlay comes back.
func TestToggleDuringOwnCloseQueuesReopen(t *testing.T) {
	coordinator := NewOverlayCoordinator()
	coordinator.Toggle(FieldVenueType, testEpoch)
	coordinator.Toggle(FieldVenueType, testEpoch)

	if events := coordinator.Toggle(FieldVenueType, testEpoch); len(events) != 0 {
		t.Errorf("toggle during own close returned %v, want none", events)
	}

	events := coordinator.Advance(afterClose(testEpoch))
	if len(events) != 1 || events[0].Kind != OverlayOpened || events[0].FieldID != FieldVenueType {
		t.Fatalf("Advance returned %v, want Opened(%s)", events, FieldVenueType)
	}
}

func TestCloseAllAbandonsPendingOpen(t *testing.T) {
	coordinator := NewOverlayCoordinator()
	coordinator.Open(FieldVenueType, testEpoch)
	coordinator.Open(FieldDates, testEpoch) // deferred behind the close

	coordinator.CloseAll(testEpoch)

	if events := coordinator.Advance(afterClose(testEpoch)); len(events) != 0 {
		t.Errorf("pending open survived CloseAll: Advance returned %v", events)
	}
	if _, ok := coordinator.ActiveField(); ok {
		t.Errorf("an overlay is open after CloseAll settled")
	}
}

func TestAdvanceIsIdempotentWhenClosed(t *testing.T) {
	coordinator := NewOverlayCoordinator()
	for i := 0; i < 3; i++ {
		if events := coordinator.Advance(testEpoch); len(events) != 0 {
			t.Fatalf("Advance on closed coordinator returned %v", events)
		}
	}
}
