// Package tui provides the Bubble Tea game interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText breaks text into lines of at most width cells. Words wider than a
// line, including unspaced CJK sentences, are split between runes.
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var cur strings.Builder
	curWidth := 0
	flush := func() {
		if curWidth == 0 {
			return
		}
		lines = append(lines, cur.String())
		cur.Reset()
		curWidth = 0
	}

	for _, word := range strings.Fields(text) {
		wordWidth := runewidth.StringWidth(word)
		if wordWidth > width {
			if curWidth > 0 {
				if curWidth+1 < width {
					cur.WriteByte(' ')
					curWidth++
				} else {
					flush()
				}
			}
			for _, r := range word {
				rw := runewidth.RuneWidth(r)
				if curWidth > 0 && curWidth+rw > width {
					flush()
				}
				cur.WriteRune(r)
				curWidth += rw
			}
			continue
		}
		if curWidth > 0 && curWidth+1+wordWidth > width {
			flush()
		}
		if curWidth > 0 {
			cur.WriteByte(' ')
			curWidth++
		}
		cur.WriteString(word)
		curWidth += wordWidth
	}
	flush()
	return lines
}

func centerLine(line string, width int) string {
	w := runewidth.StringWidth(line)
	if w >= width {
		return line
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + line
}
