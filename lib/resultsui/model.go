// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package resultsui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/venuedesk/venuedesk/lib/mapsync"
	"github.com/venuedesk/venuedesk/lib/searchui"
	"github.com/venuedesk/venuedesk/lib/tui"
	"github.com/venuedesk/venuedesk/lib/venue"
)

// focusRegion identifies which pane receives keyboard input.
type focusRegion int

const (
	focusSearch focusRegion = iota
	focusList
	focusMap
)

// Layout constants. The body starts below the search strip and its
// separator; the last row is the status bar.
const (
	minListWidth = 24
	minMapWidth  = 30

	// drawerShare is the fraction of the right pane the detail drawer
	// takes when open.
	drawerShare = 0.45

	// bookingTimeout bounds the booking submit busy state, mirroring
	// the search submit guard.
	bookingTimeout = 5 * time.Second
)

// bookingResultMsg delivers a booking request outcome.
type bookingResultMsg struct {
	seq          int
	venueID      int
	confirmation venue.BookingConfirmation
	err          error
}

type bookingTimeoutMsg struct {
	seq int
}

// Model is the venuedesk root bubbletea model.
type Model struct {
	theme  tui.Theme
	keys   KeyMap
	logger *slog.Logger
	status *StatusHandler
	source venue.Source

	widget     searchui.Widget
	list       *venueList
	grid       *mapsync.GridMap
	controller *mapsync.Controller
	drawer     *drawer

	results   []venue.Venue
	searchErr error

	booking        *tui.TextModal
	bookingVenueID int
	bookingBusy    bool
	bookingSeq     int

	showLog bool

	focus           focusRegion
	width           int
	height          int
	dividerX        int
	draggingDivider bool
}

// Options configures the root model beyond its data source.
type Options struct {
	Theme         tui.Theme
	CompactLabels bool
	MarkerGlyph   string
	Logger        *slog.Logger
	Status        *StatusHandler
}

// New assembles the root model. A nil logger discards; a nil status
// handler gets created so the status bar always has a source.
func New(source venue.Source, options Options) Model {
	if options.Status == nil {
		options.Status = NewStatusHandler(slog.LevelInfo)
	}
	if options.Logger == nil {
		options.Logger = slog.New(options.Status)
	}

	grid := mapsync.NewGridMap(options.Theme, options.MarkerGlyph)
	list := newVenueList(options.Theme)

	return Model{
		theme:      options.Theme,
		keys:       DefaultKeyMap,
		logger:     options.Logger,
		status:     options.Status,
		source:     source,
		widget:     searchui.New(source, options.Theme, options.CompactLabels),
		list:       list,
		grid:       grid,
		controller: mapsync.NewController(grid, list),
		drawer:     newDrawer(options.Theme),
	}
}

// Init submits an unconstrained search so the landing screen shows the
// full catalog, the way the marketing site front page does.
func (model Model) Init() tea.Cmd {
	widget, cmd := model.widget.Submit()
	model.widget = widget
	return cmd
}

// layout recomputes pane geometry after a resize or divider drag.
func (model *Model) layout() {
	if model.width == 0 || model.height == 0 {
		return
	}
	if model.dividerX == 0 {
		model.dividerX = model.width * 45 / 100
	}
	if model.dividerX < minListWidth {
		model.dividerX = minListWidth
	}
	if model.dividerX > model.width-minMapWidth {
		model.dividerX = model.width - minMapWidth
	}

	model.widget.SetLayout(0, 0, model.width)

	bodyHeight := model.bodyHeight()
	mapWidth := model.width - model.dividerX - 1

	model.list.Resize(model.dividerX, bodyHeight)

	drawerHeight := 0
	if model.drawer.Shown() {
		drawerHeight = int(float64(bodyHeight) * drawerShare)
		if drawerHeight < 6 {
			drawerHeight = 6
		}
		if drawerHeight > bodyHeight-3 {
			drawerHeight = bodyHeight - 3
		}
		if drawerHeight < 0 {
			drawerHeight = 0
		}
	}
	model.grid.Resize(mapWidth, bodyHeight-drawerHeight)
	model.drawer.Resize(mapWidth, drawerHeight)
}

// bodyTop is the first body row: below the search strip and its
// separator line.
func (model *Model) bodyTop() int {
	return model.widget.Height() + 1
}

func (model *Model) bodyHeight() int {
	height := model.height - model.bodyTop() - 1
	if height < 1 {
		height = 1
	}
	return height
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.layout()
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.MouseMsg:
		return model.handleMouse(message)

	case searchui.ResultsMsg:
		return model.handleResults(message)

	case detailLoadedMsg:
		model.drawer.Apply(message)
		if message.err != nil && message.seq == model.drawer.seq {
			model.logger.Warn("detail fetch failed",
				"venue", message.venueID, "error", message.err)
		}
		model.layout()
		return model, nil

	case bookingResultMsg:
		return model.handleBookingResult(message)

	case bookingTimeoutMsg:
		if message.seq == model.bookingSeq && model.bookingBusy {
			model.bookingBusy = false
			model.logger.Warn("booking request timed out", "venue", model.bookingVenueID)
		}
		return model, nil
	}

	// Everything else (transition ticks, submit timeouts) belongs to
	// the search widget.
	var cmd tea.Cmd
	model.widget, cmd = model.widget.Update(message)
	return model, cmd
}

func (model Model) handleResults(message searchui.ResultsMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	model.widget, cmd = model.widget.Update(message)

	if message.Err != nil {
		model.searchErr = message.Err
		model.logger.Warn("search failed", "error", message.Err)
		return model, cmd
	}

	model.searchErr = nil
	model.results = message.Venues
	model.drawer.Close()
	model.list.SetVenues(message.Venues)
	model.controller.Populate(message.Venues)
	model.layout()
	model.logger.Info("search completed", "results", len(message.Venues))
	return model, cmd
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(message, model.keys.ForceQuit) {
		return model, tea.Quit
	}

	if model.showLog {
		model.showLog = false
		return model, nil
	}

	if model.booking != nil {
		return model.handleBookingKey(message)
	}

	if model.focus == focusSearch {
		// Escape with the search row idle hands focus to the list;
		// otherwise the widget consumes it to dismiss its own state.
		if message.Type == tea.KeyEscape && model.widget.OpenCount() == 0 && !model.searchRowEditing() {
			model.focus = focusList
			return model, nil
		}
		var cmd tea.Cmd
		model.widget, cmd = model.widget.Update(message)
		return model, cmd
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.FocusSearch):
		model.focus = focusSearch
		return model, nil

	case key.Matches(message, model.keys.CycleFocus):
		if model.focus == focusList {
			model.focus = focusMap
		} else {
			model.focus = focusList
		}
		return model, nil

	case key.Matches(message, model.keys.LogPopup):
		model.showLog = true
		return model, nil

	case key.Matches(message, model.keys.Book):
		return model.openBookingModal()

	case key.Matches(message, model.keys.Retry):
		return model, model.drawer.Retry(model.source)

	case key.Matches(message, model.keys.CloseDrawer):
		if model.drawer.Shown() {
			model.drawer.Close()
			model.layout()
		}
		return model, nil
	}

	if model.focus == focusList {
		return model.handleListKey(message)
	}
	return model.handleMapKey(message)
}

func (model *Model) searchRowEditing() bool {
	for _, fieldID := range []string{
		searchui.FieldVenueType, searchui.FieldLocation,
		searchui.FieldDates, searchui.FieldGuests,
	} {
		if model.widget.Editing(fieldID) {
			return true
		}
	}
	return false
}

func (model Model) handleListKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Up):
		model.list.MoveCursor(-1)

	case key.Matches(message, model.keys.Down):
		model.list.MoveCursor(1)

	case key.Matches(message, model.keys.Select):
		id := model.list.CursorID()
		if id == 0 {
			return model, nil
		}
		return model.selectVenue(id)
	}
	return model, nil
}

func (model Model) handleMapKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Left):
		model.grid.Pan(-4, 0)
	case key.Matches(message, model.keys.Right):
		model.grid.Pan(4, 0)
	case key.Matches(message, model.keys.Up):
		model.grid.Pan(0, -2)
	case key.Matches(message, model.keys.Down):
		model.grid.Pan(0, 2)
	case key.Matches(message, model.keys.ZoomIn):
		model.grid.ZoomIn()
	case key.Matches(message, model.keys.ZoomOut):
		model.grid.ZoomOut()
	}
	return model, nil
}

// selectVenue toggles selection through the controller and drives the
// detail drawer to follow it.
func (model Model) selectVenue(id int) (tea.Model, tea.Cmd) {
	model.controller.ClickCard(id)

	if model.controller.SelectedID() == 0 {
		model.drawer.Close()
		model.layout()
		return model, nil
	}
	item, known := model.source.Get(id)
	if !known {
		return model, nil
	}
	cmd := model.drawer.Open(model.source, item)
	model.layout()
	return model, cmd
}

func (model Model) handleMouse(message tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch message.Action {
	case tea.MouseActionPress:
		switch message.Button {
		case tea.MouseButtonWheelUp:
			return model.handleWheel(message.X, message.Y, -3)
		case tea.MouseButtonWheelDown:
			return model.handleWheel(message.X, message.Y, 3)
		case tea.MouseButtonLeft:
			return model.handlePress(message.X, message.Y)
		}

	case tea.MouseActionMotion:
		return model.handleMotion(message.X, message.Y)

	case tea.MouseActionRelease:
		model.draggingDivider = false
	}
	return model, nil
}

func (model Model) handleWheel(x, y, delta int) (tea.Model, tea.Cmd) {
	if y < model.bodyTop() {
		return model, nil
	}
	if x < model.dividerX {
		model.list.Scroll(delta)
		return model, nil
	}
	localY := y - model.bodyTop()
	if model.drawer.Shown() && localY >= model.bodyHeight()-model.drawer.height {
		model.drawer.Scroll(delta)
		return model, nil
	}
	if delta < 0 {
		model.grid.ZoomIn()
	} else {
		model.grid.ZoomOut()
	}
	return model, nil
}

func (model Model) handlePress(x, y int) (tea.Model, tea.Cmd) {
	// The search row sees every press first: its registry decides
	// whether the press belongs to a field or overlay, and an outside
	// press both dismisses overlays and falls through to the panes.
	widget, cmd, consumed := model.widget.PointerDown(x, y)
	model.widget = widget
	if consumed {
		model.focus = focusSearch
		return model, cmd
	}

	if y < model.bodyTop() {
		return model, cmd
	}

	if x == model.dividerX {
		model.draggingDivider = true
		return model, cmd
	}

	if x < model.dividerX {
		model.focus = focusList
		if id := model.list.CardAt(y - model.bodyTop()); id != 0 {
			next, selectCmd := model.selectVenue(id)
			return next, tea.Batch(cmd, selectCmd)
		}
		return model, cmd
	}

	model.focus = focusMap
	localX := x - model.dividerX - 1
	localY := y - model.bodyTop()
	if model.drawer.Shown() && localY >= model.bodyHeight()-model.drawer.height {
		return model, cmd
	}
	if id := model.grid.MarkerAt(localX, localY); id != 0 {
		model.controller.ClickMarker(id)
		if model.controller.SelectedID() == id {
			if item, known := model.source.Get(id); known {
				openCmd := model.drawer.Open(model.source, item)
				model.layout()
				return model, tea.Batch(cmd, openCmd)
			}
		} else {
			model.drawer.Close()
			model.layout()
		}
	}
	return model, cmd
}

func (model Model) handleMotion(x, y int) (tea.Model, tea.Cmd) {
	if model.draggingDivider {
		model.dividerX = x
		model.layout()
		return model, nil
	}

	if y >= model.bodyTop() && x > model.dividerX {
		localX := x - model.dividerX - 1
		localY := y - model.bodyTop()
		if id := model.grid.MarkerAt(localX, localY); id != 0 {
			model.controller.HoverMarker(id)
		} else {
			model.controller.UnhoverMarker()
		}
	} else {
		model.controller.UnhoverMarker()
	}
	return model, nil
}

// openBookingModal starts the booking flow for the selected venue.
func (model Model) openBookingModal() (tea.Model, tea.Cmd) {
	id := model.controller.SelectedID()
	if id == 0 || model.bookingBusy {
		return model, nil
	}
	item, known := model.source.Get(id)
	if !known {
		return model, nil
	}
	modal := tui.NewTextModal("Request booking: "+item.Name, model.theme)
	model.booking = &modal
	model.bookingVenueID = id
	return model, nil
}

func (model Model) handleBookingKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape:
		model.booking = nil
		return model, nil

	case tea.KeyCtrlD:
		return model.submitBooking()

	default:
		model.booking.Update(message)
		return model, nil
	}
}

// submitBooking sends the booking request. Busy until the catalog
// answers or the timeout fires; a second Ctrl+D while busy is
// ignored.
func (model Model) submitBooking() (tea.Model, tea.Cmd) {
	if model.bookingBusy || model.booking == nil {
		return model, nil
	}
	model.bookingBusy = true
	model.bookingSeq++
	seq := model.bookingSeq

	request := venue.BookingRequest{
		VenueID: model.bookingVenueID,
		Stay:    model.widget.FieldValue(searchui.FieldDates).Dates,
		Guests:  model.widget.FieldValue(searchui.FieldGuests).Count,
		Message: model.booking.Value(),
	}
	source := model.source

	submit := func() tea.Msg {
		confirmation, err := source.RequestBooking(context.Background(), request)
		return bookingResultMsg{seq: seq, venueID: request.VenueID, confirmation: confirmation, err: err}
	}
	timeout := tea.Tick(bookingTimeout, func(time.Time) tea.Msg {
		return bookingTimeoutMsg{seq: seq}
	})
	return model, tea.Batch(submit, timeout)
}

func (model Model) handleBookingResult(message bookingResultMsg) (tea.Model, tea.Cmd) {
	if message.seq != model.bookingSeq {
		return model, nil
	}
	model.bookingBusy = false

	if message.err != nil {
		model.logger.Warn("booking request rejected",
			"venue", message.venueID, "error", message.err)
		return model, nil
	}
	model.booking = nil
	model.logger.Info("booking request submitted",
		"venue", message.venueID,
		"reference", message.confirmation.Reference,
		"status", message.confirmation.Status)
	return model, nil
}
