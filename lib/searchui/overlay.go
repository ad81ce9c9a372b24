// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package searchui

import (
	"time"

	"github.com/venuedesk/venuedesk/lib/tui"
)

// overlayPhase is the coordinator's lifecycle position.
type overlayPhase int

const (
	// phaseClosed means no overlay is visible.
	phaseClosed overlayPhase = iota
	// phaseOpen means exactly one overlay is visible and interactive.
	phaseOpen
	// phaseClosing means the previously open overlay is animating
	// out. It still occupies its screen region; no other overlay may
	// open until the transition completes.
	phaseClosing
)

// OverlayEventKind classifies coordinator notifications.
type OverlayEventKind int

const (
	// OverlayOpened fires when a field's overlay becomes visible.
	OverlayOpened OverlayEventKind = iota
	// OverlayClosed fires when a field's overlay begins closing. The
	// owning widget uses it to tear down the overlay's input routing;
	// the panel itself stays on screen (dimmed) until the close
	// transition ends.
	OverlayClosed
)

// OverlayEvent is a coordinator notification. Events are returned from
// the mutating calls rather than delivered through callbacks so the
// owning widget applies them in message order, synchronously with the
// triggering user event.
type OverlayEvent struct {
	Kind    OverlayEventKind
	FieldID string
}

// OverlayCoordinator guarantees the single-active-overlay invariant
// for one widget instance. All methods take the current time from the
// caller; the coordinator embeds no clock, which keeps transition
// behavior deterministic under test.
//
// State machine: Closed -> Open -> Closing -> Closed. An open request
// that arrives while another overlay is open (or closing) is deferred:
// the previous overlay finishes its close transition first, then the
// deferred field opens. Two overlays visible at once is a defect, not
// a cosmetic glitch.
type OverlayCoordinator struct {
	phase   overlayPhase
	active  string         // Field whose overlay is open (phaseOpen).
	closing string         // Field whose overlay is animating out (phaseClosing).
	pending string         // Field waiting for the close transition to finish.
	fade    tui.Transition // The close transition timer.
}

// NewOverlayCoordinator creates a coordinator with no overlay open.
// One per widget instance: multiple widgets on one screen must not
// share a coordinator.
func NewOverlayCoordinator() *OverlayCoordinator {
	return &OverlayCoordinator{}
}

// Open requests the overlay for fieldID. Idempotent when that overlay
// is already open: no close-and-reopen, so picker scroll positions
// survive repeated focus. When another overlay is open it begins
// closing and the request is deferred until the transition completes.
func (coordinator *OverlayCoordinator) Open(fieldID string, now time.Time) []OverlayEvent {
	switch coordinator.phase {
	case phaseClosed:
		coordinator.phase = phaseOpen
		coordinator.active = fieldID
		return []OverlayEvent{{Kind: OverlayOpened, FieldID: fieldID}}

	case phaseOpen:
		if coordinator.active == fieldID {
			return nil
		}
		events := coordinator.beginClose(now)
		coordinator.pending = fieldID
		return events

	case phaseClosing:
		coordinator.pending = fieldID
		return nil
	}
	return nil
}

// Toggle is the primary entry point for field clicks: it closes the
// overlay if this exact field is the active one, and opens it
// otherwise.
func (coordinator *OverlayCoordinator) Toggle(fieldID string, now time.Time) []OverlayEvent {
	if coordinator.phase == phaseOpen && coordinator.active == fieldID {
		return coordinator.beginClose(now)
	}
	// Toggling the field that is mid-close cancels any pending
	// reopen of a different field but does not resurrect the panel:
	// the close continues and the toggled field opens after it.
	if coordinator.phase == phaseClosing && coordinator.closing == fieldID && coordinator.pending == "" {
		coordinator.pending = fieldID
		return nil
	}
	return coordinator.Open(fieldID, now)
}

// CloseAll dismisses whatever is open: outside pointer-down, a value
// committed inside the open overlay, or an explicit cancel key. Any
// deferred open is abandoned.
func (coordinator *OverlayCoordinator) CloseAll(now time.Time) []OverlayEvent {
	coordinator.pending = ""
	if coordinator.phase != phaseOpen {
		return nil
	}
	return coordinator.beginClose(now)
}

// beginClose moves the active overlay into the closing phase and
// starts the fade timer.
func (coordinator *OverlayCoordinator) beginClose(now time.Time) []OverlayEvent {
	closed := coordinator.active
	coordinator.phase = phaseClosing
	coordinator.closing = closed
	coordinator.active = ""
	coordinator.fade = tui.StartTransition(now, tui.OverlayCloseDuration)
	return []OverlayEvent{{Kind: OverlayClosed, FieldID: closed}}
}

// Advance settles the close transition. The owning widget calls it on
// every transition tick; it is idempotent and safe to call at any
// time, including after the widget has been torn down. When the
// transition has run its duration the closing overlay is released and
// any deferred open fires.
func (coordinator *OverlayCoordinator) Advance(now time.Time) []OverlayEvent {
	if coordinator.phase != phaseClosing || coordinator.fade.Active(now) {
		return nil
	}

	coordinator.phase = phaseClosed
	coordinator.closing = ""

	if coordinator.pending == "" {
		return nil
	}
	next := coordinator.pending
	coordinator.pending = ""
	return coordinator.Open(next, now)
}

// ActiveField returns the field whose overlay is open and interactive,
// if any. During a close transition there is no active field.
func (coordinator *OverlayCoordinator) ActiveField() (string, bool) {
	if coordinator.phase != phaseOpen {
		return "", false
	}
	return coordinator.active, true
}

// IsOpen reports whether fieldID's overlay is the open one.
func (coordinator *OverlayCoordinator) IsOpen(fieldID string) bool {
	return coordinator.phase == phaseOpen && coordinator.active == fieldID
}

// ClosingField returns the field whose overlay is animating out, if
// any. The widget renders it dimmed until Advance releases it.
func (coordinator *OverlayCoordinator) ClosingField() (string, bool) {
	if coordinator.phase != phaseClosing {
		return "", false
	}
	return coordinator.closing, true
}

// InTransition reports whether a close transition is in flight,
// meaning the widget should keep scheduling transition ticks.
func (coordinator *OverlayCoordinator) InTransition() bool {
	return coordinator.phase == phaseClosing
}

// FadeProgress returns the close transition's completion fraction,
// used to dim the outgoing panel.
func (coordinator *OverlayCoordinator) FadeProgress(now time.Time) float64 {
	return coordinator.fade.Progress(now)
}
