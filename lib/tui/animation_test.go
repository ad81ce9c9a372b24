// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"
	"time"
)

var transitionEpoch = time.Date(2026, 10, 5, 12, 0, 0, 0, time.UTC)

func TestZeroTransitionIsDone(t *testing.T) {
	var transition Transition

	if transition.Active(transitionEpoch) {
		t.Error("zero transition reported active")
	}
	if !transition.Done(transitionEpoch) {
		t.Error("zero transition not done")
	}
	if got := transition.Progress(transitionEpoch); got != 1.0 {
		t.Errorf("zero transition progress = %v, want 1.0", got)
	}
}

func TestTransitionProgress(t *testing.T) {
	transition := StartTransition(transitionEpoch, 100*time.Millisecond)

	if !transition.Active(transitionEpoch) {
		t.Error("fresh transition not active")
	}
	if got := transition.Progress(transitionEpoch); got != 0.0 {
		t.Errorf("progress at start = %v, want 0.0", got)
	}
	if got := transition.Progress(transitionEpoch.Add(50 * time.Millisecond)); got != 0.5 {
		t.Errorf("progress at midpoint = %v, want 0.5", got)
	}

	end := transitionEpoch.Add(100 * time.Millisecond)
	if transition.Active(end) {
		t.Error("transition still active at full duration")
	}
	if got := transition.Progress(end); got != 1.0 {
		t.Errorf("progress past end = %v, want 1.0", got)
	}
}
