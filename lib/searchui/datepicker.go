// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package searchui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/venuedesk/venuedesk/lib/tui"
)

// DatePicker is the month-grid overlay for the date field. A single
// pick commits immediately and closes the overlay — there is no
// separate confirm step.
type DatePicker struct {
	// Month is the first day of the displayed month.
	Month time.Time
	// Cursor is the highlighted day of month (1-based).
	Cursor  int
	AnchorX int
	AnchorY int
}

// NewDatePicker creates a picker showing the month containing start,
// with the cursor on it. A zero start shows the current month with the
// cursor on today.
func NewDatePicker(start, today time.Time) *DatePicker {
	reference := start
	if reference.IsZero() {
		reference = today
	}
	return &DatePicker{
		Month:  time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC),
		Cursor: reference.Day(),
	}
}

// daysInMonth returns the day count of the displayed month.
func (picker *DatePicker) daysInMonth() int {
	return picker.Month.AddDate(0, 1, -1).Day()
}

// clampCursor keeps the cursor within the displayed month.
func (picker *DatePicker) clampCursor() {
	if picker.Cursor < 1 {
		picker.Cursor = 1
	}
	if days := picker.daysInMonth(); picker.Cursor > days {
		picker.Cursor = days
	}
}

// MoveDay moves the cursor by delta days, rolling into the adjacent
// month at the edges.
func (picker *DatePicker) MoveDay(delta int) {
	target := picker.Month.AddDate(0, 0, picker.Cursor-1+delta)
	picker.Month = time.Date(target.Year(), target.Month(), 1, 0, 0, 0, 0, time.UTC)
	picker.Cursor = target.Day()
}

// MoveWeek moves the cursor by delta weeks.
func (picker *DatePicker) MoveWeek(delta int) {
	picker.MoveDay(delta * 7)
}

// MoveMonth flips the displayed month, keeping the cursor's day where
// possible.
func (picker *DatePicker) MoveMonth(delta int) {
	picker.Month = picker.Month.AddDate(0, delta, 0)
	picker.clampCursor()
}

// Selected returns the date under the cursor.
func (picker *DatePicker) Selected() time.Time {
	return picker.Month.AddDate(0, 0, picker.Cursor-1)
}

// Grid geometry: 7 day columns of 3 cells (" dd"), 1 header line, 1
// weekday line, up to 6 week rows, all inside 1 cell of padding per
// side.
const (
	datePickerDayWidth = 3
	datePickerColumns  = 7
)

// Width returns the rendered width in columns.
func (picker *DatePicker) Width() int {
	return datePickerColumns*datePickerDayWidth + 2
}

// Height returns the rendered height in lines.
func (picker *DatePicker) Height() int {
	firstWeekday := int(picker.Month.Weekday())
	weeks := (firstWeekday + picker.daysInMonth() + 6) / 7
	return weeks + 2 // Month header + weekday header.
}

// DayAt maps a screen coordinate to a day of month, or 0 when the
// coordinate is not on a day cell (header rows, padding, blank cells).
func (picker *DatePicker) DayAt(x, y int) int {
	row := y - picker.AnchorY - 2 // Skip month + weekday headers.
	column := (x - picker.AnchorX - 1) / datePickerDayWidth
	if row < 0 || column < 0 || column >= datePickerColumns {
		return 0
	}
	firstWeekday := int(picker.Month.Weekday())
	day := row*7 + column - firstWeekday + 1
	if day < 1 || day > picker.daysInMonth() {
		return 0
	}
	return day
}

// Render produces the picker lines for overlay splicing. With dimmed
// set the grid renders in faint text without a cursor highlight, for
// the closing fade-out.
func (picker *DatePicker) Render(theme tui.Theme, dimmed bool) []string {
	width := picker.Width()
	innerWidth := width - 2

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.OverlayBackground)
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.HeaderForeground).
		Background(theme.OverlayBackground)
	weekdayStyle := lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Background(theme.OverlayBackground)
	dayStyle := lipgloss.NewStyle().
		Foreground(theme.OverlayForeground).
		Background(theme.OverlayBackground)
	cursorStyle := lipgloss.NewStyle().
		Foreground(theme.SelectedForeground).
		Background(theme.SelectedBackground)
	if dimmed {
		headerStyle = weekdayStyle.Bold(true)
		dayStyle = weekdayStyle
		cursorStyle = weekdayStyle
	}

	pad := func(styled string) string {
		lineWidth := ansi.StringWidth(styled)
		if lineWidth < innerWidth {
			styled += backgroundStyle.Render(strings.Repeat(" ", innerWidth-lineWidth))
		}
		return backgroundStyle.Render(" ") + styled + backgroundStyle.Render(" ")
	}

	var lines []string

	// Month header, centered. ◂ ▸ hint the month-flip keys.
	monthLabel := picker.Month.Format("January 2006")
	leftPad := (innerWidth - ansi.StringWidth(monthLabel) - 4) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	header := weekdayStyle.Render("◂ ") +
		backgroundStyle.Render(strings.Repeat(" ", leftPad)) +
		headerStyle.Render(monthLabel) +
		backgroundStyle.Render(strings.Repeat(" ", leftPad)) +
		weekdayStyle.Render(" ▸")
	lines = append(lines, pad(header))

	lines = append(lines, pad(weekdayStyle.Render(" S  M  T  W  T  F  S")))

	firstWeekday := int(picker.Month.Weekday())
	days := picker.daysInMonth()
	weeks := (firstWeekday + days + 6) / 7

	for week := 0; week < weeks; week++ {
		var cells []string
		for column := 0; column < datePickerColumns; column++ {
			day := week*7 + column - firstWeekday + 1
			if day < 1 || day > days {
				cells = append(cells, backgroundStyle.Render(strings.Repeat(" ", datePickerDayWidth)))
				continue
			}
			cell := fmt.Sprintf("%3d", day)
			if day == picker.Cursor {
				cells = append(cells, cursorStyle.Render(cell))
			} else {
				cells = append(cells, dayStyle.Render(cell))
			}
		}
		lines = append(lines, pad(strings.Join(cells, "")))
	}

	return lines
}
