package display

import "github.com/mattn/go-runewidth"

// widths measures cells with ambiguous-width glyphs (ω, ²) as narrow,
// matching how xterm-compatible terminals draw them outside CJK locales
var widths = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// TextWidth returns the number of terminal cells text occupies
func TextWidth(text string) int {
	return widths.StringWidth(text)
}

// Center returns the top-left cell that centers text on a width×height screen
// Text wider than the screen starts at column 0
func Center(width, height int, text string) (x, y int) {
	x = (width - TextWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	y = height / 2
	return x, y
}
