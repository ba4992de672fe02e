package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Output colors
var (
	brand  = color.New(color.FgYellow, color.Bold)
	subtle = color.New(color.FgHiBlack)
	bad    = color.New(color.FgRed)
)

// printTable prints an aligned table, widths account for wide runes
func printTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		subtle.Fprintln(w, "  (none)")
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}

	headerLine := "  "
	sepLine := "  "
	for i, h := range headers {
		headerLine += runewidth.FillRight(h, widths[i]) + "  "
		sepLine += strings.Repeat("─", widths[i]) + "  "
	}
	subtle.Fprintln(w, strings.TrimRight(headerLine, " "))
	subtle.Fprintln(w, strings.TrimRight(sepLine, " "))

	for _, row := range rows {
		line := "  "
		for i, cell := range row {
			if i < len(widths) {
				line += runewidth.FillRight(cell, widths[i]) + "  "
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// truncate shortens s to width cells
func truncate(s string, width int) string {
	return runewidth.Truncate(strings.ReplaceAll(s, "\n", " "), width, "…")
}
