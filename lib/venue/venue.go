// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

// Package venue defines the event-venue domain model and the catalog
// data source consumed by the terminal UI. The catalog is mocked: an
// in-memory collection loaded from a YAML file (or the built-in sample
// set), with induced latency on detail fetches so the UI's loading and
// stale-response behavior is exercised the way it would be against a
// real backend.
package venue

import (
	"fmt"
	"time"
)

// Coordinates is a geographic position. Longitude first, matching the
// [lon, lat] pair order used by map renderers.
type Coordinates struct {
	Lon float64 `yaml:"lon"`
	Lat float64 `yaml:"lat"`
}

// Venue is a bookable event space. Venues without coordinates still
// appear in result lists but are never rendered on the map.
type Venue struct {
	ID           int          `yaml:"id"`
	Name         string       `yaml:"name"`
	Category     string       `yaml:"category"` // "conference", "loft", "estate", "rooftop"
	Region       string       `yaml:"region"`
	Capacity     int          `yaml:"capacity"`
	PriceBand    string       `yaml:"price_band"`   // "$", "$$", "$$$"
	Availability string       `yaml:"availability"` // "open", "limited", "booked"
	Rating       float64      `yaml:"rating"`
	Summary      string       `yaml:"summary"`
	Coordinates  *Coordinates `yaml:"coordinates,omitempty"`
}

// HasCoordinates reports whether the venue can be placed on a map.
func (v Venue) HasCoordinates() bool {
	return v.Coordinates != nil
}

// Details is the extended venue record returned by the asynchronous
// detail fetch. Description is markdown, rendered by the detail
// drawer.
type Details struct {
	VenueID     int      `yaml:"venue_id"`
	Description string   `yaml:"description"`
	Amenities   []string `yaml:"amenities"`
	HostName    string   `yaml:"host_name"`
	HostContact string   `yaml:"host_contact"`
	FloorArea   int      `yaml:"floor_area"` // square meters
}

// DateRange is a stay window. End may be zero for a single-day event.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Format renders the range for display in the search bar. Never free
// text: the display value is always derived from the picked dates.
func (r DateRange) Format() string {
	if r.Start.IsZero() {
		return ""
	}
	if r.End.IsZero() || r.End.Equal(r.Start) {
		return r.Start.Format("Jan 2, 2006")
	}
	return fmt.Sprintf("%s – %s", r.Start.Format("Jan 2"), r.End.Format("Jan 2, 2006"))
}

// Query is a search submission from the composite search widget.
// Zero-valued fields are unconstrained.
type Query struct {
	Category string
	Region   string
	Stay     DateRange
	Guests   int
}

// BookingRequest is a mock booking/approval submission for a venue.
type BookingRequest struct {
	VenueID int
	Stay    DateRange
	Guests  int
	Message string
}

// BookingConfirmation acknowledges a booking request. Status is always
// "pending" in the mock catalog: requests await host approval.
type BookingConfirmation struct {
	Reference string
	Status    string
}
