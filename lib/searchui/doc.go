// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package searchui implements the composite venue-search widget: an
// ordered row of fields (venue type, location, dates, guest count)
// sharing one visual container, each with its own overlay or inline
// editing behavior, plus the submit control.
//
// Three cooperating pieces:
//
//   - OverlayCoordinator owns the "at most one overlay open" invariant
//     and the close-transition window. Every field's overlay lifecycle
//     goes through it; it is scoped to one widget instance, never
//     shared.
//   - FieldRegistry maps field and overlay screen regions so pointer
//     events can be classified as inside a field, inside an overlay
//     panel (which renders detached from its trigger row), or fully
//     outside. Outside closes everything and reverts in-progress
//     edits.
//   - Widget owns field values and the per-field state machines:
//     Closed/Open for the select and date fields, Idle/Editing for the
//     free-text and numeric fields. Field kinds never share flags; each
//     transition is a single function of the current tagged state.
//
// The widget is a bubbletea component, not a standalone program: the
// results view embeds it, routes messages to it, and splices its
// overlays onto the composed frame.
package searchui
