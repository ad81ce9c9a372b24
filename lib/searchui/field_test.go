// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package searchui

import (
	"testing"
	"time"

	"github.com/venuedesk/venuedesk/lib/venue"
)

func typeString(field *Field, text string) {
	for _, character := range text {
		field.Type(character)
	}
}

// Committing a free-text edit stores the typed text verbatim. No
// canonicalization, no matching against the option list.
func TestFreeTextCommitStoresTypedTextVerbatim(t *testing.T) {
	field := Field{ID: FieldLocation, Kind: KindFreeText, Options: []Option{
		{ID: "Paris", Label: "Paris"},
	}}

	field.BeginEdit()
	typeString(&field, "paris suburbs")
	if !field.CommitEdit() {
		t.Fatalf("CommitEdit rejected a non-empty free-text buffer")
	}
	if got := field.Value().Text; got != "paris suburbs" {
		t.Errorf("committed value = %q, want the typed text verbatim", got)
	}
	if field.Editing() {
		t.Errorf("field still editing after commit")
	}
}

func TestFreeTextEmptyCommitRetainsPreviousValue(t *testing.T) {
	field := Field{ID: FieldLocation, Kind: KindFreeText}
	field.SetValue(FieldValue{Text: "Paris"})

	field.BeginEdit()
	field.CommitEdit()
	if got := field.Value().Text; got != "Paris" {
		t.Errorf("empty commit replaced value with %q, want previous %q", got, "Paris")
	}
}

func TestFreeTextCancelRestoresPreviousValue(t *testing.T) {
	field := Field{ID: FieldLocation, Kind: KindFreeText}
	field.SetValue(FieldValue{Text: "Paris"})

	field.BeginEdit()
	typeString(&field, "Lyon")
	field.CancelEdit()
	if got := field.Value().Text; got != "Paris" {
		t.Errorf("cancel left value %q, want previous %q", got, "Paris")
	}
	if field.Editing() {
		t.Errorf("field still editing after cancel")
	}
}

func TestIntegerCommit(t *testing.T) {
	tests := []struct {
		name   string
		typed  string
		before int
		want   int
	}{
		{"valid count", "120", 0, 120},
		{"trims whitespace", " 40 ", 0, 40},
		{"non-numeric reverts silently", "abc", 50, 50},
		{"zero reverts", "0", 50, 50},
		{"negative reverts", "-3", 50, 50},
		{"empty reverts", "", 50, 50},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			field := Field{ID: FieldGuests, Kind: KindInteger}
			field.SetValue(FieldValue{Count: test.before})

			field.BeginEdit()
			typeString(&field, test.typed)
			field.CommitEdit()
			if got := field.Value().Count; got != test.want {
				t.Errorf("typed %q: count = %d, want %d", test.typed, got, test.want)
			}
		})
	}
}

func TestBeginEditOnlyForEditableKinds(t *testing.T) {
	for _, kind := range []FieldKind{KindSelect, KindDateRange} {
		field := Field{ID: "f", Kind: kind}
		field.BeginEdit()
		if field.Editing() {
			t.Errorf("kind %v entered editing, want inert BeginEdit", kind)
		}
	}
}

func TestFilterOptions(t *testing.T) {
	field := Field{ID: FieldLocation, Kind: KindFreeText, Options: []Option{
		{ID: "Paris", Label: "Paris"},
		{ID: "Paris Suburbs", Label: "Paris Suburbs"},
		{ID: "Lyon", Label: "Lyon"},
	}}
	field.BeginEdit()

	// Empty buffer: the full list.
	if got := len(field.FilterOptions()); got != 3 {
		t.Errorf("empty buffer matched %d options, want 3", got)
	}

	typeString(&field, "pAr")
	matches := field.FilterOptions()
	if len(matches) != 2 {
		t.Fatalf("buffer %q matched %d options, want 2 case-insensitive matches", "pAr", len(matches))
	}

	typeString(&field, "zzz")
	if got := len(field.FilterOptions()); got != 0 {
		t.Errorf("unmatchable buffer matched %d options, want the meaningful zero state", got)
	}
}

func TestDisplayFormatsDates(t *testing.T) {
	field := Field{ID: FieldDates, Kind: KindDateRange}
	field.SetValue(FieldValue{Dates: venue.DateRange{
		Start: time.Date(2026, time.October, 5, 0, 0, 0, 0, time.UTC),
	}})
	if got := field.Display(); got != "Oct 5, 2026" {
		t.Errorf("Display = %q, want %q", got, "Oct 5, 2026")
	}
}
