// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package searchui

import (
	"context"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/venuedesk/venuedesk/lib/tui"
	"github.com/venuedesk/venuedesk/lib/venue"
)

// Standard field identifiers for the venue search row.
const (
	FieldVenueType = "venue-type"
	FieldLocation  = "location"
	FieldDates     = "dates"
	FieldGuests    = "guests"
)

// submitPhase is the submit control's state. Busy rejects re-entrant
// submits; it auto-resets on the collaborator's response or after
// [submitTimeout], whichever comes first.
type submitPhase int

const (
	submitIdle submitPhase = iota
	submitBusy
)

// submitTimeout is the client-side ceiling on the Busy state. A guard
// against duplicate submissions, not a retry policy: a late result is
// still delivered, the button just re-enables.
const submitTimeout = 5 * time.Second

// transitionTickMsg drives the overlay close transition while one is
// in flight.
type transitionTickMsg struct{}

// ResultsMsg is delivered when a search submission completes. The
// embedding view consumes the venues; the widget itself only uses it
// to leave the Busy state. Seq identifies the submission.
type ResultsMsg struct {
	Seq    int
	Venues []venue.Venue
	Err    error
}

// submitTimeoutMsg auto-resets the Busy state for a submission that
// has not come back yet.
type submitTimeoutMsg struct {
	seq int
}

// Widget is the composite search row: four fields sharing one visual
// container, an overlay coordinator, a field registry, and the submit
// control. It is a bubbletea component embedded by the results view.
type Widget struct {
	fields []Field
	theme  tui.Theme
	keys   KeyMap

	coordinator *OverlayCoordinator
	registry    *FieldRegistry
	source      venue.Source

	// clock supplies the current time for transition bookkeeping.
	// Tests substitute a fixed clock.
	clock func() time.Time

	focusIndex    int
	compactLabels bool

	// Layout, set by SetLayout on every resize.
	originX int
	originY int
	width   int

	// Overlay instances for the open (or closing, for the dim-out
	// render) field. At most one is non-nil at a time.
	dropdown   *tui.DropdownOverlay
	datePicker *DatePicker
	// navigated is set once the user moves the autocomplete cursor;
	// Enter then commits the highlighted option instead of the typed
	// text.
	navigated bool

	submitPhase submitPhase
	submitSeq   int
}

// New creates a Widget over the catalog source. The venue-type options
// are the fixed category set; the location autocomplete seeds from the
// regions present in the catalog.
func New(source venue.Source, theme tui.Theme, compactLabels bool) Widget {
	regionSet := make(map[string]bool)
	for _, item := range source.Venues() {
		if item.Region != "" {
			regionSet[item.Region] = true
		}
	}
	regions := make([]string, 0, len(regionSet))
	for region := range regionSet {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	locationOptions := make([]Option, len(regions))
	for index, region := range regions {
		locationOptions[index] = Option{ID: region, Label: region}
	}

	return Widget{
		fields: []Field{
			{
				ID:    FieldVenueType,
				Kind:  KindSelect,
				Label: "Venue type",
				Options: []Option{
					{ID: "conference", Label: "Conference"},
					{ID: "loft", Label: "Loft"},
					{ID: "estate", Label: "Estate"},
					{ID: "rooftop", Label: "Rooftop"},
				},
			},
			{
				ID:      FieldLocation,
				Kind:    KindFreeText,
				Label:   "Location",
				Options: locationOptions,
			},
			{
				ID:    FieldDates,
				Kind:  KindDateRange,
				Label: "Dates",
			},
			{
				ID:    FieldGuests,
				Kind:  KindInteger,
				Label: "Guests",
			},
		},
		theme:         theme,
		keys:          DefaultKeyMap,
		coordinator:   NewOverlayCoordinator(),
		registry:      NewFieldRegistry(),
		source:        source,
		clock:         time.Now,
		compactLabels: compactLabels,
	}
}

// SetClock substitutes the time source. Test hook.
func (widget *Widget) SetClock(clock func() time.Time) {
	widget.clock = clock
}

// field returns the field with the given ID, or nil.
func (widget *Widget) field(fieldID string) *Field {
	for index := range widget.fields {
		if widget.fields[index].ID == fieldID {
			return &widget.fields[index]
		}
	}
	return nil
}

// FieldValue returns the committed value of a field.
func (widget *Widget) FieldValue(fieldID string) FieldValue {
	if target := widget.field(fieldID); target != nil {
		return target.Value()
	}
	return FieldValue{}
}

// IsOpen reports whether a field's overlay is open. Free-text and
// integer fields additionally report their editing state through
// [Widget.Editing].
func (widget *Widget) IsOpen(fieldID string) bool {
	return widget.coordinator.IsOpen(fieldID)
}

// OpenCount returns how many fields currently report an open overlay.
// The single-overlay invariant keeps this at most 1; tests assert on
// it.
func (widget *Widget) OpenCount() int {
	count := 0
	for index := range widget.fields {
		if widget.coordinator.IsOpen(widget.fields[index].ID) {
			count++
		}
	}
	// A closing overlay still occupies screen space; it must never
	// coexist with an open one, so count it as visible.
	if _, closing := widget.coordinator.ClosingField(); closing {
		count++
	}
	return count
}

// Editing reports whether a field is in its inline editing state.
func (widget *Widget) Editing(fieldID string) bool {
	target := widget.field(fieldID)
	return target != nil && target.Editing()
}

// CaptionCollapsed reports whether a field's caption is collapsed:
// true exactly when the field is the currently open or editing one.
// The collapse animation is presentational, but its trigger condition
// is part of the widget's observable contract.
func (widget *Widget) CaptionCollapsed(fieldID string) bool {
	if widget.coordinator.IsOpen(fieldID) {
		return true
	}
	return widget.Editing(fieldID)
}

// Busy reports whether a search submission is in flight.
func (widget *Widget) Busy() bool {
	return widget.submitPhase == submitBusy
}

// Query assembles the search query from the committed field values.
// The venue-type field commits option labels; the query carries the
// option's ID (the category value).
func (widget *Widget) Query() venue.Query {
	query := venue.Query{}

	if target := widget.field(FieldVenueType); target != nil {
		label := target.Value().Text
		for _, option := range target.Options {
			if option.Label == label {
				query.Category = option.ID
				break
			}
		}
	}
	if target := widget.field(FieldLocation); target != nil {
		query.Region = target.Value().Text
	}
	if target := widget.field(FieldDates); target != nil {
		query.Stay = target.Value().Dates
	}
	if target := widget.field(FieldGuests); target != nil {
		query.Guests = target.Value().Count
	}
	return query
}

// Submit starts a search if none is in flight. Re-entrant submits are
// rejected while Busy — the caller gets no command and no state
// change.
func (widget *Widget) Submit() (Widget, tea.Cmd) {
	if widget.submitPhase == submitBusy {
		return *widget, nil
	}

	widget.submitPhase = submitBusy
	widget.submitSeq++
	seq := widget.submitSeq
	query := widget.Query()
	source := widget.source

	search := func() tea.Msg {
		venues, err := source.Search(context.Background(), query)
		return ResultsMsg{Seq: seq, Venues: venues, Err: err}
	}
	timeout := tea.Tick(submitTimeout, func(time.Time) tea.Msg {
		return submitTimeoutMsg{seq: seq}
	})
	return *widget, tea.Batch(search, timeout)
}

// Update routes a message through the widget. The embedding view
// forwards every message here; unrecognized messages fall through
// untouched.
func (widget Widget) Update(message tea.Msg) (Widget, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return widget.handleKey(message)

	case transitionTickMsg:
		return widget.handleTransitionTick()

	case ResultsMsg:
		if message.Seq == widget.submitSeq {
			widget.submitPhase = submitIdle
		}

	case submitTimeoutMsg:
		if message.seq == widget.submitSeq && widget.submitPhase == submitBusy {
			widget.submitPhase = submitIdle
		}
	}
	return widget, nil
}

// handleTransitionTick advances the close transition and keeps the
// tick timer alive while one is still in flight.
func (widget Widget) handleTransitionTick() (Widget, tea.Cmd) {
	now := widget.clock()
	widget.applyOverlayEvents(widget.coordinator.Advance(now))

	if widget.coordinator.InTransition() {
		return widget, transitionTick()
	}

	// Fully settled: if nothing opened from the pending slot, drop
	// the lingering overlay instance and its registered region.
	if _, open := widget.coordinator.ActiveField(); !open {
		widget.releaseOverlayInstances()
	}
	return widget, nil
}

// handleKey routes keyboard input by the current interaction state:
// open overlay first, then inline editing, then the field row.
func (widget Widget) handleKey(message tea.KeyMsg) (Widget, tea.Cmd) {
	now := widget.clock()

	if activeID, open := widget.coordinator.ActiveField(); open {
		if target := widget.field(activeID); target != nil {
			switch target.Kind {
			case KindSelect:
				return widget.handleSelectOverlayKey(message, target, now)
			case KindFreeText:
				return widget.handleAutocompleteKey(message, target, now)
			case KindDateRange:
				return widget.handleDatePickerKey(message, target, now)
			}
		}
	}

	if focused := widget.focusedField(); focused != nil && focused.Editing() {
		// Integer fields edit inline with no overlay.
		return widget.handleInlineEditKey(message, focused)
	}

	switch {
	case key.Matches(message, widget.keys.NextField):
		widget.moveFocus(1)

	case key.Matches(message, widget.keys.PrevField):
		widget.moveFocus(-1)

	case key.Matches(message, widget.keys.Activate):
		return widget.activateField(widget.focusIndex)

	case key.Matches(message, widget.keys.Submit):
		return widget.Submit()

	case key.Matches(message, widget.keys.Cancel):
		widget.applyOverlayEvents(widget.coordinator.CloseAll(now))
		return widget, widget.transitionCmd()
	}
	return widget, nil
}

// handleSelectOverlayKey routes input while the venue-type dropdown is
// open.
func (widget Widget) handleSelectOverlayKey(message tea.KeyMsg, target *Field, now time.Time) (Widget, tea.Cmd) {
	switch {
	case key.Matches(message, widget.keys.Up):
		widget.dropdown.MoveUp()

	case key.Matches(message, widget.keys.Down):
		widget.dropdown.MoveDown()

	case key.Matches(message, widget.keys.Activate):
		if option, ok := widget.dropdown.Selected(); ok {
			widget.commitSelect(target, option, now)
			return widget, widget.transitionCmd()
		}

	case key.Matches(message, widget.keys.Cancel):
		widget.applyOverlayEvents(widget.coordinator.CloseAll(now))
		return widget, widget.transitionCmd()
	}
	return widget, nil
}

// handleAutocompleteKey routes input while the location field is
// editing with its autocomplete overlay open. Keystrokes re-filter the
// option list; Enter commits the typed text verbatim unless the user
// navigated onto an option; Escape always restores the previous value.
func (widget Widget) handleAutocompleteKey(message tea.KeyMsg, target *Field, now time.Time) (Widget, tea.Cmd) {
	switch {
	case key.Matches(message, widget.keys.Up):
		widget.dropdown.MoveUp()
		widget.navigated = true

	case key.Matches(message, widget.keys.Down):
		widget.dropdown.MoveDown()
		widget.navigated = true

	case key.Matches(message, widget.keys.Activate):
		if widget.navigated {
			if option, ok := widget.dropdown.Selected(); ok {
				target.CancelEdit()
				target.SetValue(FieldValue{Text: option.Label})
				widget.applyOverlayEvents(widget.coordinator.CloseAll(now))
				return widget, widget.transitionCmd()
			}
		}
		target.CommitEdit()
		widget.applyOverlayEvents(widget.coordinator.CloseAll(now))
		return widget, widget.transitionCmd()

	case key.Matches(message, widget.keys.Cancel):
		target.CancelEdit()
		widget.applyOverlayEvents(widget.coordinator.CloseAll(now))
		return widget, widget.transitionCmd()

	case message.Type == tea.KeyBackspace:
		target.Backspace()
		widget.refreshAutocomplete(target)

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		for _, character := range message.Runes {
			target.Type(character)
		}
		if message.Type == tea.KeySpace {
			target.Type(' ')
		}
		widget.refreshAutocomplete(target)
	}
	return widget, nil
}

// handleDatePickerKey routes input while the date picker is open. A
// single pick commits immediately and closes — no confirm step.
func (widget Widget) handleDatePickerKey(message tea.KeyMsg, target *Field, now time.Time) (Widget, tea.Cmd) {
	switch {
	case key.Matches(message, widget.keys.Left):
		widget.datePicker.MoveDay(-1)

	case key.Matches(message, widget.keys.Right):
		widget.datePicker.MoveDay(1)

	case key.Matches(message, widget.keys.Up):
		widget.datePicker.MoveWeek(-1)

	case key.Matches(message, widget.keys.Down):
		widget.datePicker.MoveWeek(1)

	case key.Matches(message, widget.keys.PrevMonth):
		widget.datePicker.MoveMonth(-1)

	case key.Matches(message, widget.keys.NextMonth):
		widget.datePicker.MoveMonth(1)

	case key.Matches(message, widget.keys.Activate):
		widget.commitDate(target, widget.datePicker.Selected(), now)
		return widget, widget.transitionCmd()

	case key.Matches(message, widget.keys.Cancel):
		widget.applyOverlayEvents(widget.coordinator.CloseAll(now))
		return widget, widget.transitionCmd()
	}
	return widget, nil
}

// handleInlineEditKey routes input while the guest-count field edits
// inline (no overlay). Enter commits — a non-integer buffer silently
// reverts. Escape discards.
func (widget Widget) handleInlineEditKey(message tea.KeyMsg, target *Field) (Widget, tea.Cmd) {
	switch {
	case key.Matches(message, widget.keys.Activate):
		target.CommitEdit()

	case key.Matches(message, widget.keys.Cancel):
		target.CancelEdit()

	case key.Matches(message, widget.keys.NextField):
		// Moving focus is a blur: commit, then move.
		target.CommitEdit()
		widget.moveFocus(1)

	case message.Type == tea.KeyBackspace:
		target.Backspace()

	case message.Type == tea.KeyRunes:
		for _, character := range message.Runes {
			target.Type(character)
		}
	}
	return widget, nil
}

// focusedField returns the field with keyboard focus.
func (widget *Widget) focusedField() *Field {
	if widget.focusIndex < 0 || widget.focusIndex >= len(widget.fields) {
		return nil
	}
	return &widget.fields[widget.focusIndex]
}

// moveFocus shifts keyboard focus along the row, committing any
// in-progress inline edit on the field being left (focus loss is a
// blur, and blur commits).
func (widget *Widget) moveFocus(delta int) {
	if focused := widget.focusedField(); focused != nil && focused.Editing() {
		focused.CommitEdit()
	}
	widget.focusIndex += delta
	if widget.focusIndex < 0 {
		widget.focusIndex = len(widget.fields) - 1
	}
	if widget.focusIndex >= len(widget.fields) {
		widget.focusIndex = 0
	}
}

// activateField starts the focused field's interaction: overlay kinds
// toggle through the coordinator, editing kinds enter their editing
// state.
func (widget Widget) activateField(index int) (Widget, tea.Cmd) {
	if index < 0 || index >= len(widget.fields) {
		return widget, nil
	}
	widget.focusIndex = index
	target := &widget.fields[index]
	now := widget.clock()

	switch target.Kind {
	case KindSelect, KindDateRange:
		widget.applyOverlayEvents(widget.coordinator.Toggle(target.ID, now))

	case KindFreeText:
		if !target.Editing() {
			target.BeginEdit()
			widget.navigated = false
		}
		widget.applyOverlayEvents(widget.coordinator.Open(target.ID, now))

	case KindInteger:
		if !target.Editing() {
			target.BeginEdit()
		}
	}
	return widget, widget.transitionCmd()
}

// PointerDown classifies a pointer press and reacts:
//
//   - inside a field: activate it (toggling if it owns the open
//     overlay), committing any other field's in-progress edit first;
//   - inside an overlay panel: route the press into the panel;
//   - outside everything: close all overlays and revert any
//     in-progress edit to its last committed value.
//
// Returns the updated widget, a command, and whether the press was
// consumed (outside presses are not: the embedding view may still act
// on them).
func (widget Widget) PointerDown(x, y int) (Widget, tea.Cmd, bool) {
	now := widget.clock()
	hit := widget.registry.Classify(x, y)

	switch hit.Class {
	case ClassInsideField:
		// Leaving an editing field by clicking another field is a
		// blur: commit first.
		if focused := widget.focusedField(); focused != nil &&
			focused.Editing() && focused.ID != hit.FieldID {
			focused.CommitEdit()
		}
		for index := range widget.fields {
			if widget.fields[index].ID == hit.FieldID {
				next, cmd := widget.activateField(index)
				return next, cmd, true
			}
		}
		return widget, nil, true

	case ClassInsideOverlay:
		next, cmd := widget.overlayClick(hit.FieldID, x, y, now)
		return next, cmd, true

	default:
		// Outside: dismiss everything, revert in-progress edits. The
		// press is not consumed — whatever is under it still sees it.
		for index := range widget.fields {
			widget.fields[index].CancelEdit()
		}
		widget.applyOverlayEvents(widget.coordinator.CloseAll(now))
		return widget, widget.transitionCmd(), false
	}
}

// overlayClick routes a press that landed inside an overlay panel.
// Presses on a closing (dimmed) panel are swallowed: the panel is no
// longer interactive, but it is not "outside" either.
func (widget Widget) overlayClick(fieldID string, x, y int, now time.Time) (Widget, tea.Cmd) {
	if !widget.coordinator.IsOpen(fieldID) {
		return widget, nil
	}
	target := widget.field(fieldID)
	if target == nil {
		return widget, nil
	}

	switch target.Kind {
	case KindSelect:
		if index := widget.dropdown.OptionAtY(y); index >= 0 {
			widget.dropdown.Cursor = index
			if option, ok := widget.dropdown.Selected(); ok {
				widget.commitSelect(target, option, now)
				return widget, widget.transitionCmd()
			}
		}

	case KindFreeText:
		if index := widget.dropdown.OptionAtY(y); index >= 0 {
			widget.dropdown.Cursor = index
			if option, ok := widget.dropdown.Selected(); ok {
				target.CancelEdit()
				target.SetValue(FieldValue{Text: option.Label})
				widget.applyOverlayEvents(widget.coordinator.CloseAll(now))
				return widget, widget.transitionCmd()
			}
		}

	case KindDateRange:
		if day := widget.datePicker.DayAt(x, y); day > 0 {
			widget.datePicker.Cursor = day
			widget.commitDate(target, widget.datePicker.Selected(), now)
			return widget, widget.transitionCmd()
		}
	}
	return widget, nil
}

// commitSelect commits a picked option into a select field and closes
// its overlay. The committed value is the option's label.
func (widget *Widget) commitSelect(target *Field, option tui.DropdownOption, now time.Time) {
	target.SetValue(FieldValue{Text: option.Label})
	widget.applyOverlayEvents(widget.coordinator.CloseAll(now))
}

// commitDate commits a picked date and closes the picker. The range's
// end stays open; the mock booking flow treats a single day as a
// one-day event.
func (widget *Widget) commitDate(target *Field, picked time.Time, now time.Time) {
	target.SetValue(FieldValue{Dates: venue.DateRange{Start: picked}})
	widget.applyOverlayEvents(widget.coordinator.CloseAll(now))
}

// refreshAutocomplete rebuilds the autocomplete overlay's options from
// the current edit buffer, pinning the cursor back to the top. The
// navigated flag resets: fresh keystrokes mean Enter commits typed
// text again.
func (widget *Widget) refreshAutocomplete(target *Field) {
	if widget.dropdown == nil {
		return
	}
	matches := target.FilterOptions()
	options := make([]tui.DropdownOption, len(matches))
	for index, match := range matches {
		options[index] = tui.DropdownOption{Label: match.Label, Value: match.ID}
	}
	widget.dropdown.Options = options
	widget.dropdown.Cursor = 0
	widget.navigated = false
	widget.registerOverlayRegion(target.ID)
}

// applyOverlayEvents reacts to coordinator notifications: opened
// overlays get their panel instance and registered region; closed
// overlays keep their instance for the dim-out render until the
// transition releases them.
func (widget *Widget) applyOverlayEvents(events []OverlayEvent) {
	for _, event := range events {
		if event.Kind != OverlayOpened {
			continue
		}
		target := widget.field(event.FieldID)
		if target == nil {
			continue
		}

		switch target.Kind {
		case KindSelect:
			options := make([]tui.DropdownOption, len(target.Options))
			cursor := 0
			for index, option := range target.Options {
				options[index] = tui.DropdownOption{Label: option.Label, Value: option.ID}
				if option.Label == target.Value().Text {
					cursor = index
				}
			}
			widget.dropdown = &tui.DropdownOverlay{
				Options: options,
				Cursor:  cursor,
				FieldID: target.ID,
			}
			widget.datePicker = nil

		case KindFreeText:
			matches := target.FilterOptions()
			options := make([]tui.DropdownOption, len(matches))
			for index, match := range matches {
				options[index] = tui.DropdownOption{Label: match.Label, Value: match.ID}
			}
			widget.dropdown = &tui.DropdownOverlay{
				Options: options,
				FieldID: target.ID,
			}
			widget.datePicker = nil
			widget.navigated = false

		case KindDateRange:
			widget.datePicker = NewDatePicker(target.Value().Dates.Start, widget.clock())
			widget.dropdown = nil
		}
		widget.positionOverlay(target.ID)
		widget.registerOverlayRegion(target.ID)
	}
}

// releaseOverlayInstances drops overlay panels and their registered
// regions once no overlay is open or closing.
func (widget *Widget) releaseOverlayInstances() {
	widget.dropdown = nil
	widget.datePicker = nil
	for index := range widget.fields {
		widget.registry.ClearOverlay(widget.fields[index].ID)
	}
}

// transitionCmd returns a tick command while a close transition is in
// flight, and nil otherwise.
func (widget *Widget) transitionCmd() tea.Cmd {
	if !widget.coordinator.InTransition() {
		return nil
	}
	return transitionTick()
}

func transitionTick() tea.Cmd {
	return tea.Tick(tui.TransitionTickInterval, func(time.Time) tea.Msg {
		return transitionTickMsg{}
	})
}
