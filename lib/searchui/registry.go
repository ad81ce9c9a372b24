// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package searchui

// Region is a rectangular screen area in character cells.
type Region struct {
	X      int // Leftmost column, inclusive.
	Y      int // Topmost row, inclusive.
	Width  int
	Height int
}

// Contains reports whether the screen coordinate falls inside the
// region.
func (region Region) Contains(x, y int) bool {
	return x >= region.X && x < region.X+region.Width &&
		y >= region.Y && y < region.Y+region.Height
}

// Classification is the pointer-event origin decided by the registry.
type Classification int

const (
	// ClassOutside: the event landed on neither a field nor an
	// overlay panel. Ambiguous events also classify as outside — the
	// conservative choice is to close overlays rather than risk one
	// sticking open.
	ClassOutside Classification = iota
	// ClassInsideField: the event landed on a field's trigger region.
	ClassInsideField
	// ClassInsideOverlay: the event landed on an overlay panel. The
	// panel renders detached from its trigger row, so this can never
	// be derived from the field region alone.
	ClassInsideOverlay
)

// HitResult is a classification plus the field it belongs to (empty
// for ClassOutside).
type HitResult struct {
	Class   Classification
	FieldID string
}

// FieldRegistry maps field identifiers to their rendered regions and,
// while an overlay is open, the overlay panel's region. One registry
// per widget instance, rebuilt on every layout change.
//
// Overlay regions are consulted before field regions: panels render on
// top of whatever is beneath them, so a coordinate inside both belongs
// to the panel.
type FieldRegistry struct {
	order    []string // Field registration order, for deterministic hits.
	fields   map[string]Region
	overlays map[string]Region
}

// NewFieldRegistry creates an empty registry.
func NewFieldRegistry() *FieldRegistry {
	return &FieldRegistry{
		fields:   make(map[string]Region),
		overlays: make(map[string]Region),
	}
}

// Register records (or replaces) a field's trigger region. Called on
// every layout pass; re-registering an existing field updates its
// region in place.
func (registry *FieldRegistry) Register(fieldID string, region Region) {
	if _, exists := registry.fields[fieldID]; !exists {
		registry.order = append(registry.order, fieldID)
	}
	registry.fields[fieldID] = region
}

// RegisterOverlay records the open overlay panel's region for a field.
// The panel may be anywhere on screen — it is not contained in the
// field's own region.
func (registry *FieldRegistry) RegisterOverlay(fieldID string, region Region) {
	registry.overlays[fieldID] = region
}

// ClearOverlay removes a field's overlay region once the panel is
// fully gone. Clearing an unregistered overlay is a no-op.
func (registry *FieldRegistry) ClearOverlay(fieldID string) {
	delete(registry.overlays, fieldID)
}

// Classify decides where a pointer event originated. Overlay panels
// win over field regions; among fields, the first registered match
// wins (fields never overlap in practice, but the tie-break keeps the
// answer deterministic).
func (registry *FieldRegistry) Classify(x, y int) HitResult {
	for _, fieldID := range registry.order {
		if overlayRegion, exists := registry.overlays[fieldID]; exists && overlayRegion.Contains(x, y) {
			return HitResult{Class: ClassInsideOverlay, FieldID: fieldID}
		}
	}
	for _, fieldID := range registry.order {
		if registry.fields[fieldID].Contains(x, y) {
			return HitResult{Class: ClassInsideField, FieldID: fieldID}
		}
	}
	return HitResult{Class: ClassOutside}
}
