package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gaze/content"
	"github.com/lixenwraith/gaze/parameter"
)

// drawPanel draws a bordered box with a title in the top border
func drawPanel(s tcell.Screen, x, y, w, h int, title string) {
	border := Style(ColorMuted)
	fill(s, x, y, w, h, Style(ColorForeground))

	for col := x + 1; col < x+w-1; col++ {
		s.SetContent(col, y, '─', nil, border)
		s.SetContent(col, y+h-1, '─', nil, border)
	}
	for row := y + 1; row < y+h-1; row++ {
		s.SetContent(x, row, '│', nil, border)
		s.SetContent(x+w-1, row, '│', nil, border)
	}
	s.SetContent(x, y, '┌', nil, border)
	s.SetContent(x+w-1, y, '┐', nil, border)
	s.SetContent(x, y+h-1, '└', nil, border)
	s.SetContent(x+w-1, y+h-1, '┘', nil, border)

	if title != "" {
		drawText(s, x+2, y, w-4, " "+title+" ", Style(ColorAccent).Bold(true))
	}
}

// ThreadLines lays out the expanded content view of an item as styled lines
func ThreadLines(item content.Item, width int) []Line {
	muted := Style(ColorMuted)
	fg := Style(ColorForeground)
	accent := Style(ColorAccent)

	lines := []Line{
		{Text: "THREAD_ID: " + shortID(item.ID), Style: muted},
		{Text: fmt.Sprintf("Live Node • %s %c", item.Type.Label(), item.Type.Icon()), Style: accent},
		{},
	}
	for _, l := range Wrap(item.Title, width) {
		lines = append(lines, Line{Text: l, Style: fg.Bold(true)})
	}
	if item.Subtitle != "" {
		lines = append(lines, Line{Text: item.Subtitle, Style: muted.Italic(true)})
	}
	if stars := content.Stars(item.Rating); stars != "" {
		lines = append(lines, Line{Text: stars, Style: accent})
	}
	if item.HasImage() {
		lines = append(lines, Line{Text: "[image] " + item.Image, Style: muted})
	}
	lines = append(lines, Line{})
	for _, l := range Wrap(item.Content, width) {
		lines = append(lines, Line{Text: l, Style: fg})
	}
	if item.Link != "" {
		lines = append(lines, Line{}, Line{Text: "Source: " + item.Link, Style: accent.Underline(true)})
	}
	return lines
}

// Line is one row of laid-out text
type Line struct {
	Text  string
	Style tcell.Style
}

func shortID(id string) string {
	if runewidth.StringWidth(id) > 8 {
		return runewidth.Truncate(id, 8, "")
	}
	return id
}

// drawThread renders the thread overlay, scroll is clamped to the content
func drawThread(s tcell.Screen, vp Viewport, item content.Item, scroll int) {
	width := min(parameter.ThreadMaxWidth+4, vp.Cols-2)
	height := vp.Rows - 2
	if width < 12 || height < 5 {
		return
	}
	x := (vp.Cols - width) / 2
	y := 1
	drawPanel(s, x, y, width, height, "THREAD")

	inner := width - 4
	lines := ThreadLines(item, inner)
	visible := height - 2
	scroll = min(max(scroll, 0), max(len(lines)-visible, 0))

	for i := 0; i < visible && scroll+i < len(lines); i++ {
		l := lines[scroll+i]
		drawText(s, x+2, y+1+i, inner, l.Text, l.Style)
	}
}
