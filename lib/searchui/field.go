// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package searchui

import (
	"strconv"
	"strings"

	"github.com/venuedesk/venuedesk/lib/venue"
)

// FieldKind selects a field's interaction pattern.
type FieldKind int

const (
	// KindSelect opens an option dropdown (venue type).
	KindSelect FieldKind = iota
	// KindFreeText edits inline with an autocomplete overlay
	// (location).
	KindFreeText
	// KindDateRange opens the date picker overlay.
	KindDateRange
	// KindInteger edits inline, committing only parseable integers
	// (guest count).
	KindInteger
)

// Option is an immutable choice supplied by the owning application.
// The widget filters and selects options; it never mutates them.
type Option struct {
	ID    string
	Label string
}

// FieldValue is the committed value of one field. Exactly one of the
// variants is meaningful, governed by the field's kind; the widget
// never stores a value of the wrong kind into a field.
type FieldValue struct {
	Text  string          // KindSelect, KindFreeText.
	Dates venue.DateRange // KindDateRange.
	Count int             // KindInteger.
}

// editPhase is the inline-editing state for free-text and integer
// fields. Select and date fields never enter it; their overlay
// open/closed state lives in the OverlayCoordinator.
type editPhase int

const (
	editIdle editPhase = iota
	editActive
)

// Field is one slot in the composite search row. Identity is ID,
// unique within a widget instance. Value, options, label, and kind are
// supplied at construction; only the value mutates afterwards.
type Field struct {
	ID      string
	Kind    FieldKind
	Label   string
	Options []Option // KindSelect choices; KindFreeText autocomplete seed.

	value FieldValue

	// Inline editing (KindFreeText, KindInteger only).
	phase  editPhase
	buffer []rune
}

// Value returns the committed value.
func (field *Field) Value() FieldValue {
	return field.value
}

// SetValue installs a committed value. Callers are responsible for
// populating the variant matching the field's kind.
func (field *Field) SetValue(value FieldValue) {
	field.value = value
}

// Display returns the committed value formatted for the value line.
// Date values are always derived from the picked dates, never typed.
func (field *Field) Display() string {
	switch field.Kind {
	case KindDateRange:
		return field.value.Dates.Format()
	case KindInteger:
		if field.value.Count <= 0 {
			return ""
		}
		return strconv.Itoa(field.value.Count)
	default:
		return field.value.Text
	}
}

// Editing reports whether the field is in its inline editing state.
func (field *Field) Editing() bool {
	return field.phase == editActive
}

// EditBuffer returns the in-progress edit text.
func (field *Field) EditBuffer() string {
	return string(field.buffer)
}

// BeginEdit enters the editing state. The visible text starts empty —
// not at the previous value — so the autocomplete seeds from the full
// option list and the user types fresh input. No-op for kinds that use
// overlays instead of inline editing.
func (field *Field) BeginEdit() {
	if field.Kind != KindFreeText && field.Kind != KindInteger {
		return
	}
	field.phase = editActive
	field.buffer = field.buffer[:0]
}

// Type appends a character to the edit buffer.
func (field *Field) Type(character rune) {
	if field.phase != editActive {
		return
	}
	field.buffer = append(field.buffer, character)
}

// Backspace removes the last character from the edit buffer.
func (field *Field) Backspace() {
	if field.phase != editActive || len(field.buffer) == 0 {
		return
	}
	field.buffer = field.buffer[:len(field.buffer)-1]
}

// CommitEdit leaves the editing state, committing the buffer:
//
//   - KindFreeText: a non-empty buffer is committed verbatim; an empty
//     buffer retains the previous value unchanged.
//   - KindInteger: the buffer must parse as a positive integer;
//     anything else is a recoverable input error and the field
//     silently reverts to its last valid value.
//
// Returns true when the committed value changed.
func (field *Field) CommitEdit() bool {
	if field.phase != editActive {
		return false
	}
	field.phase = editIdle
	typed := string(field.buffer)
	field.buffer = field.buffer[:0]

	switch field.Kind {
	case KindFreeText:
		if typed == "" {
			return false
		}
		changed := field.value.Text != typed
		field.value.Text = typed
		return changed

	case KindInteger:
		parsed, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil || parsed <= 0 {
			return false
		}
		changed := field.value.Count != parsed
		field.value.Count = parsed
		return changed
	}
	return false
}

// CancelEdit leaves the editing state discarding the buffer. The
// previous committed value is always retained: Escape and
// outside-click never commit.
func (field *Field) CancelEdit() {
	if field.phase != editActive {
		return
	}
	field.phase = editIdle
	field.buffer = field.buffer[:0]
}

// FilterOptions returns the options whose labels contain the edit
// buffer, case-insensitively. An empty buffer returns the full list
// (the autocomplete seeds from everything). A zero-match result is
// meaningful: the overlay renders an explicit "no results" state, not
// an empty panel.
func (field *Field) FilterOptions() []Option {
	query := strings.ToLower(string(field.buffer))
	if query == "" {
		return field.Options
	}
	var matches []Option
	for _, option := range field.Options {
		if strings.Contains(strings.ToLower(option.Label), query) {
			matches = append(matches, option)
		}
	}
	return matches
}
