// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package resultsui is the venuedesk root view: the composite search
// row on top, a split pane below with the result list on the left and
// the map on the right, a detail drawer, the booking modal, and a
// status bar.
//
// The package composes the focused components rather than owning their
// logic: searchui runs the search row, mapsync keeps list and map
// selection agreed. What lives here is layout, input routing between
// the regions, and the fetch lifecycles (venue details, booking
// requests) with their stale-response guards.
package resultsui
