// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TextModal is a centered modal overlay with a multi-line text editor.
// The results view uses it for booking-request messages: the modal
// captures all keyboard input while visible, Ctrl+D submits, Escape
// cancels.
type TextModal struct {
	// Title is shown in the modal header (e.g. "Booking request —
	// Harbor Loft").
	Title string

	lines   [][]rune // Editor content, one rune slice per line.
	cursorY int
	cursorX int
	theme   Theme
}

// NewTextModal creates an empty, focused TextModal with the given
// title.
func NewTextModal(title string, theme Theme) TextModal {
	return TextModal{
		Title: title,
		lines: [][]rune{{}},
		theme: theme,
	}
}

// Value returns the current text content.
func (modal TextModal) Value() string {
	parts := make([]string, len(modal.lines))
	for index, line := range modal.lines {
		parts[index] = string(line)
	}
	return strings.Join(parts, "\n")
}

// Update processes a key message for the modal's editor.
func (modal *TextModal) Update(message tea.KeyMsg) {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			modal.insertRune(character)
		}

	case tea.KeyEnter:
		// Split the current line at the cursor.
		line := modal.lines[modal.cursorY]
		before := append([]rune{}, line[:modal.cursorX]...)
		after := append([]rune{}, line[modal.cursorX:]...)
		modal.lines[modal.cursorY] = before
		modal.lines = append(modal.lines[:modal.cursorY+1],
			append([][]rune{after}, modal.lines[modal.cursorY+1:]...)...)
		modal.cursorY++
		modal.cursorX = 0

	case tea.KeyBackspace:
		if modal.cursorX > 0 {
			line := modal.lines[modal.cursorY]
			modal.lines[modal.cursorY] = append(line[:modal.cursorX-1], line[modal.cursorX:]...)
			modal.cursorX--
		} else if modal.cursorY > 0 {
			// Merge with the previous line.
			previous := modal.lines[modal.cursorY-1]
			modal.cursorX = len(previous)
			modal.lines[modal.cursorY-1] = append(previous, modal.lines[modal.cursorY]...)
			modal.lines = append(modal.lines[:modal.cursorY], modal.lines[modal.cursorY+1:]...)
			modal.cursorY--
		}

	case tea.KeyDelete:
		line := modal.lines[modal.cursorY]
		if modal.cursorX < len(line) {
			modal.lines[modal.cursorY] = append(line[:modal.cursorX], line[modal.cursorX+1:]...)
		} else if modal.cursorY < len(modal.lines)-1 {
			modal.lines[modal.cursorY] = append(line, modal.lines[modal.cursorY+1]...)
			modal.lines = append(modal.lines[:modal.cursorY+1], modal.lines[modal.cursorY+2:]...)
		}

	case tea.KeyLeft:
		if modal.cursorX > 0 {
			modal.cursorX--
		} else if modal.cursorY > 0 {
			modal.cursorY--
			modal.cursorX = len(modal.lines[modal.cursorY])
		}

	case tea.KeyRight:
		if modal.cursorX < len(modal.lines[modal.cursorY]) {
			modal.cursorX++
		} else if modal.cursorY < len(modal.lines)-1 {
			modal.cursorY++
			modal.cursorX = 0
		}

	case tea.KeyUp:
		if modal.cursorY > 0 {
			modal.cursorY--
			modal.clampCursorX()
		}

	case tea.KeyDown:
		if modal.cursorY < len(modal.lines)-1 {
			modal.cursorY++
			modal.clampCursorX()
		}

	case tea.KeyHome, tea.KeyCtrlA:
		modal.cursorX = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		modal.cursorX = len(modal.lines[modal.cursorY])
	}
}

func (modal *TextModal) insertRune(character rune) {
	line := modal.lines[modal.cursorY]
	newLine := make([]rune, 0, len(line)+1)
	newLine = append(newLine, line[:modal.cursorX]...)
	newLine = append(newLine, character)
	newLine = append(newLine, line[modal.cursorX:]...)
	modal.lines[modal.cursorY] = newLine
	modal.cursorX++
}

func (modal *TextModal) clampCursorX() {
	if modal.cursorX > len(modal.lines[modal.cursorY]) {
		modal.cursorX = len(modal.lines[modal.cursorY])
	}
}

// Modal chrome overhead: 2 columns border + 2 columns padding
// horizontal; 2 lines border + 1 title + 1 footer vertical. The inner
// text area gets the remainder.
const (
	modalChromeWidth  = 4
	modalChromeHeight = 4
	// Minimum inner text area. Below this the editor is too cramped
	// to be useful.
	modalMinInnerWidth  = 30
	modalMinInnerHeight = 5
	// Margin between the modal edge and the screen edge, so the user
	// can see the underlying view isn't gone.
	modalMargin = 4
)

// Render produces the modal overlay lines for splicing onto the view,
// plus the anchor position (top-left corner in screen coordinates)
// that centers it.
func (modal TextModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	modalWidth := screenWidth - modalMargin*2
	modalHeight := screenHeight - modalMargin*2

	if modalWidth < modalMinInnerWidth+modalChromeWidth {
		modalWidth = modalMinInnerWidth + modalChromeWidth
	}
	if modalHeight < modalMinInnerHeight+modalChromeHeight {
		modalHeight = modalMinInnerHeight + modalChromeHeight
	}
	// Clamp to screen bounds so the overlay doesn't extend past the
	// terminal edges even when the minimum exceeds the screen.
	if modalWidth > screenWidth {
		modalWidth = screenWidth
	}
	if modalHeight > screenHeight {
		modalHeight = screenHeight
	}

	innerWidth := modalWidth - modalChromeWidth
	innerHeight := modalHeight - modalChromeHeight

	backgroundStyle := lipgloss.NewStyle().
		Background(modal.theme.OverlayBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.OverlayBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.OverlayBackground)
	cursorStyle := lipgloss.NewStyle().Reverse(true)
	textStyle := lipgloss.NewStyle().
		Foreground(modal.theme.OverlayForeground).
		Background(modal.theme.OverlayBackground)

	padded := func(styled string) string {
		width := ansi.StringWidth(styled)
		if width < innerWidth {
			return styled + backgroundStyle.Render(strings.Repeat(" ", innerWidth-width))
		}
		return styled
	}

	title := padded(titleStyle.Render(modal.Title))
	footer := padded(footerStyle.Render("Ctrl+D submit  Esc cancel"))

	// Scroll the text area if the cursor is past the visible rows.
	scrollOffset := 0
	if modal.cursorY >= innerHeight {
		scrollOffset = modal.cursorY - innerHeight + 1
	}

	var textLines []string
	for lineIndex := scrollOffset; lineIndex < scrollOffset+innerHeight; lineIndex++ {
		var rendered string
		if lineIndex < len(modal.lines) {
			line := modal.lines[lineIndex]
			if lineIndex == modal.cursorY {
				if modal.cursorX >= len(line) {
					rendered = textStyle.Render(string(line)) + cursorStyle.Render(" ")
				} else {
					rendered = textStyle.Render(string(line[:modal.cursorX])) +
						cursorStyle.Render(string(line[modal.cursorX:modal.cursorX+1])) +
						textStyle.Render(string(line[modal.cursorX+1:]))
				}
			} else {
				rendered = textStyle.Render(string(line))
			}
		}
		textLines = append(textLines, padded(rendered))
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		Background(modal.theme.OverlayBackground)

	inner := title + "\n" + strings.Join(textLines, "\n") + "\n" + footer
	resultLines := strings.Split(borderStyle.Render(inner), "\n")

	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}
	anchorX := (screenWidth - renderedWidth) / 2
	anchorY := (screenHeight - len(resultLines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}

	return resultLines, anchorX, anchorY
}
