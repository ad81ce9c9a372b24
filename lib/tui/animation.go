// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// OverlayCloseDuration is how long an overlay spends in its closing
// phase before it is fully gone. During this window the overlay still
// occupies its screen region (rendered dimmed), so a freshly requested
// overlay must wait for it: two overlays visible at once is a defect.
//
// The duration is a choice of this implementation, short enough to be
// imperceptible as latency and long enough that the closing frame
// renders at typical refresh rates.
const OverlayCloseDuration = 120 * time.Millisecond

// TransitionTickInterval is the re-render interval while a transition
// is in flight.
const TransitionTickInterval = 40 * time.Millisecond

// Transition tracks a single timed visual phase: ignited at a start
// time, complete after a fixed duration. Zero value is an inactive
// transition that reports itself done.
type Transition struct {
	start    time.Time
	duration time.Duration
	active   bool
}

// StartTransition begins a transition at the given time.
func StartTransition(now time.Time, duration time.Duration) Transition {
	return Transition{start: now, duration: duration, active: true}
}

// Active reports whether the transition has started and not yet run
// its full duration.
func (transition Transition) Active(now time.Time) bool {
	if !transition.active {
		return false
	}
	return now.Sub(transition.start) < transition.duration
}

// Done reports whether the transition has completed (or never started).
func (transition Transition) Done(now time.Time) bool {
	return !transition.Active(now)
}

// Progress returns the transition's completion fraction: 0.0 at start,
// 1.0 once done. Drives the caption-collapse and overlay-fade shading.
func (transition Transition) Progress(now time.Time) float64 {
	if !transition.active {
		return 1.0
	}
	if transition.duration <= 0 {
		return 1.0
	}
	elapsed := now.Sub(transition.start)
	if elapsed >= transition.duration {
		return 1.0
	}
	return float64(elapsed) / float64(transition.duration)
}
