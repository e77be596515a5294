package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/richspan/internal/renderer/decoration"
)

// prevBoundary returns the rune offset of the grapheme boundary before
// offset, so cursor motion and deletes never land inside a cluster.
func prevBoundary(text []rune, offset int) int {
	if offset <= 0 {
		return 0
	}
	prev := 0
	pos := 0
	gr := uniseg.NewGraphemes(string(text))
	for gr.Next() {
		next := pos + len(gr.Runes())
		if next >= offset {
			return prev
		}
		prev = next
		pos = next
	}
	return prev
}

// nextBoundary returns the rune offset of the grapheme boundary after
// offset.
func nextBoundary(text []rune, offset int) int {
	pos := 0
	gr := uniseg.NewGraphemes(string(text))
	for gr.Next() {
		next := pos + len(gr.Runes())
		if pos >= offset {
			return next
		}
		pos = next
	}
	return len(text)
}

// draw renders the buffer with its decorations, the cursor, and the
// status or prompt line.
func (e *editor) draw(screen tcell.Screen) {
	screen.Clear()
	width, height := screen.Size()

	linkColor := tcell.GetColor(decoration.DefaultLinkColor)
	hoverColor := tcell.GetColor(decoration.HoverColor(decoration.DefaultLinkColor))
	spans := e.binder.Engine().Spans()

	x, y := 0, 0
	pos := 0
	cursorX, cursorY := 0, 0
	gr := uniseg.NewGraphemes(string(e.text))
	for gr.Next() {
		runes := gr.Runes()
		if pos == e.cursor {
			cursorX, cursorY = x, y
		}

		if runes[0] == '\n' {
			x, y = 0, y+1
			pos += len(runes)
			continue
		}

		style := tcell.StyleDefault
		for _, s := range spans {
			if !s.Contains(pos) {
				continue
			}
			a := s.Attrs
			style = style.Bold(a.Bold).Italic(a.Italic).
				Underline(a.Underline).StrikeThrough(a.StrikeThrough)
			if hex, ok := decoration.NormalizeColor(a.TextColor); ok {
				style = style.Foreground(tcell.GetColor(hex))
			}
		}
		if d, ok := decorationAt(e.decos, pos); ok {
			// The link under the cursor gets the hover tint.
			color := linkColor
			if e.cursor >= d.StartOffset && e.cursor < d.EndOffset {
				color = hoverColor
			}
			style = style.Foreground(color).Underline(true)
		}

		if x < width && y < height-1 {
			comb := runes[1:]
			screen.SetContent(x, y, runes[0], comb, style)
		}
		x += gr.Width()
		pos += len(runes)
	}
	if pos == e.cursor {
		cursorX, cursorY = x, y
	}

	e.drawStatus(screen, width, height)
	if !e.prompting {
		screen.ShowCursor(cursorX, cursorY)
	}
	screen.Show()
}

func (e *editor) drawStatus(screen tcell.Screen, width, height int) {
	line := e.status
	if e.prompting {
		line = "link url: " + string(e.promptBuf)
	}
	if line == "" {
		line = "Ctrl-K link  Ctrl-O show link  Ctrl-Q quit"
	}

	style := tcell.StyleDefault.Reverse(true)
	x := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() && x < width {
		runes := gr.Runes()
		screen.SetContent(x, height-1, runes[0], runes[1:], style)
		x += gr.Width()
	}
	textEnd := x
	for ; x < width; x++ {
		screen.SetContent(x, height-1, ' ', nil, style)
	}
	if e.prompting {
		screen.ShowCursor(min(textEnd, width-1), height-1)
	}
}

func decorationAt(decos []decoration.Decoration, pos int) (decoration.Decoration, bool) {
	for _, d := range decos {
		if pos >= d.StartOffset && pos < d.EndOffset {
			return d, true
		}
	}
	return decoration.Decoration{}, false
}
