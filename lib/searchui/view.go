// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package searchui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// submitButtonWidth is the fixed width reserved for the submit control
// at the right edge of the row.
const submitButtonWidth = 12

// Height returns the widget strip's height in rows.
func (widget *Widget) Height() int {
	if widget.compactLabels {
		return 1
	}
	return 2
}

// SetLayout positions the widget at an absolute screen origin with the
// given width, registering each field's screen region. Called by the
// embedding view on every resize and before routing pointer events.
func (widget *Widget) SetLayout(originX, originY, width int) {
	widget.originX = originX
	widget.originY = originY
	widget.width = width

	x := originX
	for index := range widget.fields {
		fieldWidth := widget.fieldWidth(index)
		widget.registry.Register(widget.fields[index].ID, Region{
			X:      x,
			Y:      originY,
			Width:  fieldWidth,
			Height: widget.Height(),
		})
		x += fieldWidth
	}

	// Re-anchor any live overlay under its field's new position.
	if activeID, open := widget.coordinator.ActiveField(); open {
		widget.positionOverlay(activeID)
		widget.registerOverlayRegion(activeID)
	}
}

// fieldWidth returns the column width of the field at index. The row
// splits evenly, with the last field absorbing the remainder.
func (widget *Widget) fieldWidth(index int) int {
	usable := widget.width - submitButtonWidth
	if usable < len(widget.fields) {
		usable = len(widget.fields)
	}
	base := usable / len(widget.fields)
	if index == len(widget.fields)-1 {
		return usable - base*(len(widget.fields)-1)
	}
	return base
}

// fieldOriginX returns the absolute X of the field at index.
func (widget *Widget) fieldOriginX(index int) int {
	x := widget.originX
	for position := 0; position < index; position++ {
		x += widget.fieldWidth(position)
	}
	return x
}

// positionOverlay anchors the live overlay panel directly below its
// field.
func (widget *Widget) positionOverlay(fieldID string) {
	index := -1
	for position := range widget.fields {
		if widget.fields[position].ID == fieldID {
			index = position
			break
		}
	}
	if index < 0 {
		return
	}
	anchorX := widget.fieldOriginX(index)
	anchorY := widget.originY + widget.Height()

	if widget.dropdown != nil && widget.dropdown.FieldID == fieldID {
		widget.dropdown.AnchorX = anchorX
		widget.dropdown.AnchorY = anchorY
	}
	if widget.datePicker != nil && widget.fields[index].Kind == KindDateRange {
		widget.datePicker.AnchorX = anchorX
		widget.datePicker.AnchorY = anchorY
	}
}

// registerOverlayRegion records the live overlay panel's screen region
// so pointer classification can tell panel presses from outside
// presses.
func (widget *Widget) registerOverlayRegion(fieldID string) {
	if widget.dropdown != nil && widget.dropdown.FieldID == fieldID {
		widget.registry.RegisterOverlay(fieldID, Region{
			X:      widget.dropdown.AnchorX,
			Y:      widget.dropdown.AnchorY,
			Width:  widget.dropdown.Width(),
			Height: widget.dropdown.Height(),
		})
		return
	}
	if widget.datePicker != nil {
		widget.registry.RegisterOverlay(fieldID, Region{
			X:      widget.datePicker.AnchorX,
			Y:      widget.datePicker.AnchorY,
			Width:  widget.datePicker.Width(),
			Height: widget.datePicker.Height(),
		})
	}
}

// View renders the field row strip. Overlay panels render separately
// through OverlayView so the embedding view can splice them over
// whatever sits below the strip.
func (widget *Widget) View() string {
	captionStyle := lipgloss.NewStyle().Foreground(widget.theme.FaintText)
	focusCaption := lipgloss.NewStyle().Foreground(widget.theme.Accent)
	valueStyle := lipgloss.NewStyle().Foreground(widget.theme.NormalText)
	collapsedStyle := lipgloss.NewStyle().Foreground(widget.theme.NormalText).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(widget.theme.HelpText)

	var captionRow, valueRow strings.Builder
	for index := range widget.fields {
		field := &widget.fields[index]
		fieldWidth := widget.fieldWidth(index)
		focused := index == widget.focusIndex

		caption := field.Label
		value := field.Display()
		collapsed := widget.CaptionCollapsed(field.ID)

		// When the caption collapses, the committed value takes its
		// place and the value row shows the live interaction.
		captionCell := caption
		captionCellStyle := captionStyle
		if focused {
			captionCellStyle = focusCaption
		}
		valueCell := value
		valueCellStyle := valueStyle
		if valueCell == "" {
			valueCell = "any"
			valueCellStyle = hintStyle
		}
		if collapsed {
			if value != "" {
				captionCell = value
				captionCellStyle = collapsedStyle
			}
			if field.Editing() {
				valueCell = field.EditBuffer() + "▏"
				valueCellStyle = valueStyle
			}
		}

		captionRow.WriteString(padCell(captionCellStyle.Render(captionCell), fieldWidth))
		valueRow.WriteString(padCell(valueCellStyle.Render(valueCell), fieldWidth))
	}

	button := widget.submitButton()
	if widget.compactLabels {
		return valueRow.String() + button
	}
	captionRow.WriteString(strings.Repeat(" ", submitButtonWidth))
	return captionRow.String() + "\n" + valueRow.String() + button
}

// submitButton renders the submit control, swapping the label for a
// busy marker while a submission is in flight.
func (widget *Widget) submitButton() string {
	style := lipgloss.NewStyle().
		Foreground(widget.theme.SelectedForeground).
		Background(widget.theme.Accent).
		Bold(true)
	label := " Search "
	if widget.submitPhase == submitBusy {
		style = lipgloss.NewStyle().
			Foreground(widget.theme.FaintText).
			Background(widget.theme.HoverBackground)
		label = " ⋯      " // midline ellipsis, same cell budget
	}
	return padCell("  "+style.Render(label), submitButtonWidth)
}

// padCell pads a styled cell to an exact display width, truncating if
// the content overflows.
func padCell(cell string, width int) string {
	printed := ansi.StringWidth(cell)
	if printed > width {
		return ansi.Truncate(cell, width, "…")
	}
	return cell + strings.Repeat(" ", width-printed)
}

// OverlayView renders the live overlay panel, if any, returning its
// lines and splice anchor. A closing panel renders dimmed until the
// clock-driven transition tick releases it, so rendering itself never
// reads a clock.
func (widget *Widget) OverlayView() (lines []string, anchorX, anchorY int, ok bool) {
	dimmed := false
	fieldID, open := widget.coordinator.ActiveField()
	if !open {
		fieldID, open = widget.coordinator.ClosingField()
		if !open {
			return nil, 0, 0, false
		}
		dimmed = true
	}

	if widget.dropdown != nil && widget.dropdown.FieldID == fieldID {
		lines = widget.dropdown.Render(widget.theme, dimmed)
		return lines, widget.dropdown.AnchorX, widget.dropdown.AnchorY, true
	}
	if widget.datePicker != nil {
		lines = widget.datePicker.Render(widget.theme, dimmed)
		return lines, widget.datePicker.AnchorX, widget.datePicker.AnchorY, true
	}
	return nil, 0, 0, false
}
