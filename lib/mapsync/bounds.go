// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package mapsync

import "github.com/venuedesk/venuedesk/lib/venue"

// Bounds is a geographic bounding box in degrees, longitude first to
// match the catalog's coordinate order.
type Bounds struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// Center returns the box's midpoint.
func (bounds Bounds) Center() venue.Coordinates {
	return venue.Coordinates{
		Lon: (bounds.MinLon + bounds.MaxLon) / 2,
		Lat: (bounds.MinLat + bounds.MaxLat) / 2,
	}
}

// SpanLon returns the box's longitudinal extent in degrees.
func (bounds Bounds) SpanLon() float64 {
	return bounds.MaxLon - bounds.MinLon
}

// SpanLat returns the box's latitudinal extent in degrees.
func (bounds Bounds) SpanLat() float64 {
	return bounds.MaxLat - bounds.MinLat
}

// BoundsOf computes the bounding box over every coordinate-bearing
// venue in the slice. The returned count is how many venues
// contributed; zero means no venue had coordinates and the box is
// meaningless.
func BoundsOf(venues []venue.Venue) (Bounds, int) {
	var bounds Bounds
	count := 0
	for _, item := range venues {
		if !item.HasCoordinates() {
			continue
		}
		point := *item.Coordinates
		if count == 0 {
			bounds = Bounds{
				MinLon: point.Lon, MaxLon: point.Lon,
				MinLat: point.Lat, MaxLat: point.Lat,
			}
		} else {
			if point.Lon < bounds.MinLon {
				bounds.MinLon = point.Lon
			}
			if point.Lon > bounds.MaxLon {
				bounds.MaxLon = point.Lon
			}
			if point.Lat < bounds.MinLat {
				bounds.MinLat = point.Lat
			}
			if point.Lat > bounds.MaxLat {
				bounds.MaxLat = point.Lat
			}
		}
		count++
	}
	return bounds, count
}
