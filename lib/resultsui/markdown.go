// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package resultsui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/venuedesk/venuedesk/lib/tui"
)

// The parser configuration never changes and a goldmark parser is safe
// to share, so it is built once.
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownParserInstance
}

// renderTerminalMarkdown renders a venue description for the detail
// drawer. Soft line breaks inside paragraphs become spaces so
// hard-wrapped source reflows at the drawer's width.
//
// The color profile is forced to ANSI256: this output only ever goes
// to the TUI, and auto-detection produces uncolored output under test
// where there is no TTY.
func renderTerminalMarkdown(input string, theme tui.Theme, width int) string {
	if input == "" {
		return ""
	}
	source := []byte(input)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	lipRenderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	renderer := &markdownRenderer{
		source:      source,
		theme:       theme,
		width:       width,
		lipRenderer: lipRenderer,
	}
	ast.Walk(document, renderer.walk)
	return strings.TrimRight(renderer.output.String(), "\n")
}

// markdownRenderer walks the goldmark AST directly instead of using
// goldmark's renderer interface: terminal rendering wants
// accumulate-then-wrap semantics, collecting a paragraph's inline
// content and word-wrapping it as a unit when the paragraph closes.
type markdownRenderer struct {
	source []byte
	theme  tui.Theme
	width  int

	output strings.Builder
	inline strings.Builder

	// Pending bullet replaces the indent for the next emitted line.
	pendingBullet string
	listDepth     int
	listOrdered   []bool
	listCounter   []int

	boldCount   int
	italicCount int

	lipRenderer *lipgloss.Renderer
}

func (renderer *markdownRenderer) newStyle() lipgloss.Style {
	return renderer.lipRenderer.NewStyle()
}

func (renderer *markdownRenderer) indent() string {
	return strings.Repeat("  ", renderer.listDepth)
}

// flushBlock word-wraps the accumulated inline content and emits it
// with the current indent (or the pending bullet on the first line).
func (renderer *markdownRenderer) flushBlock() {
	content := renderer.inline.String()
	renderer.inline.Reset()
	if content == "" {
		return
	}

	wrapWidth := renderer.width - len(renderer.indent())
	if wrapWidth < 10 {
		wrapWidth = 10
	}
	wrapped := ansi.Wordwrap(content, wrapWidth, " ")

	for index, line := range strings.Split(wrapped, "\n") {
		prefix := renderer.indent()
		if index == 0 && renderer.pendingBullet != "" {
			prefix = renderer.pendingBullet
			renderer.pendingBullet = ""
		}
		renderer.output.WriteString(prefix + line + "\n")
	}
}

func (renderer *markdownRenderer) blankLine() {
	out := renderer.output.String()
	if out != "" && !strings.HasSuffix(out, "\n\n") {
		renderer.output.WriteString("\n")
	}
}

// styledText applies the active emphasis state to a text fragment.
func (renderer *markdownRenderer) styledText(content string) string {
	style := renderer.newStyle().Foreground(renderer.theme.NormalText)
	if renderer.boldCount > 0 {
		style = style.Bold(true)
	}
	if renderer.italicCount > 0 {
		style = style.Italic(true)
	}
	return style.Render(content)
}

func (renderer *markdownRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := node.(type) {
	case *ast.Heading:
		if entering {
			renderer.blankLine()
		} else {
			heading := renderer.inline.String()
			renderer.inline.Reset()
			style := renderer.newStyle().
				Bold(true).
				Foreground(renderer.theme.HeaderForeground)
			renderer.output.WriteString(style.Render(heading) + "\n")
			renderer.blankLine()
		}

	case *ast.Paragraph:
		if entering {
			if renderer.listDepth == 0 {
				renderer.blankLine()
			}
		} else {
			renderer.flushBlock()
		}

	case *ast.Text:
		if entering {
			renderer.inline.WriteString(renderer.styledText(string(node.Segment.Value(renderer.source))))
			if node.SoftLineBreak() {
				renderer.inline.WriteString(" ")
			}
			if node.HardLineBreak() {
				renderer.inline.WriteString("\n")
			}
		}

	case *ast.Emphasis:
		if node.Level >= 2 {
			if entering {
				renderer.boldCount++
			} else {
				renderer.boldCount--
			}
		} else {
			if entering {
				renderer.italicCount++
			} else {
				renderer.italicCount--
			}
		}

	case *ast.CodeSpan:
		if entering {
			var code strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				if textNode, ok := child.(*ast.Text); ok {
					code.Write(textNode.Segment.Value(renderer.source))
				}
			}
			style := renderer.newStyle().Foreground(renderer.theme.Accent)
			renderer.inline.WriteString(style.Render(code.String()))
			return ast.WalkSkipChildren, nil
		}

	case *ast.List:
		if entering {
			renderer.blankLine()
			renderer.listDepth++
			renderer.listOrdered = append(renderer.listOrdered, node.IsOrdered())
			renderer.listCounter = append(renderer.listCounter, node.Start)
		} else {
			renderer.listDepth--
			renderer.listOrdered = renderer.listOrdered[:len(renderer.listOrdered)-1]
			renderer.listCounter = renderer.listCounter[:len(renderer.listCounter)-1]
		}

	case *ast.ListItem:
		if entering {
			depth := len(renderer.listOrdered) - 1
			indent := strings.Repeat("  ", renderer.listDepth-1)
			if renderer.listOrdered[depth] {
				renderer.pendingBullet = fmt.Sprintf("%s%d. ", indent, renderer.listCounter[depth])
				renderer.listCounter[depth]++
			} else {
				bullet := renderer.newStyle().Foreground(renderer.theme.Accent).Render("•")
				renderer.pendingBullet = indent + bullet + " "
			}
		}

	case *ast.ThematicBreak:
		if entering {
			renderer.blankLine()
			rule := renderer.newStyle().Foreground(renderer.theme.FaintText)
			renderer.output.WriteString(rule.Render(strings.Repeat("─", renderer.width)) + "\n")
			renderer.blankLine()
		}
	}
	return ast.WalkContinue, nil
}
