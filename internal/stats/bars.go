package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

// Bar is one column of an accuracy chart.
type Bar struct {
	Label  string
	Value  float64
	Passed bool
}

// BarChart renders vertical bars on a fixed 0-100 scale.
type BarChart struct {
	Bars      []Bar
	Height    int
	BarWidth  int
	Threshold float64
	// Paint styles a bar segment; nil leaves it plain.
	Paint     func(passed bool, s string) string
}

const (
	defaultChartHeight  = 8
	defaultBarWidth     = 5
	axisLabelTop        = "100%"
	axisLabelMid        = "50%"
	axisLabelBottom     = "0%"
	axisSeparator       = " │ "
	thresholdRune       = '╌'
	colorReset          = "\x1b[0m"
	colorPass           = "\x1b[32m"
	colorFail           = "\x1b[31m"
	terminalWidthBackup = 80
)

var barBlocks = []rune(" ▁▂▃▄▅▆▇█")

// Lines renders the chart, one string per terminal row.
func (c BarChart) Lines() []string {
	if len(c.Bars) == 0 {
		return nil
	}
	height := c.Height
	if height <= 0 {
		height = defaultChartHeight
	}
	barWidth := c.BarWidth
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}
	for _, bar := range c.Bars {
		if w := displayWidth(bar.Label); w > barWidth {
			barWidth = w
		}
	}

	axisLabels := makeAxisLabels(height)
	axisWidth := displayWidth(axisLabelTop)
	thresholdRow := -1
	if c.Threshold > 0 && c.Threshold <= 100 {
		thresholdRow = rowForValue(c.Threshold, height)
	}

	lines := make([]string, 0, height+2)
	for row := 0; row < height; row++ {
		var b strings.Builder
		fmt.Fprintf(&b, "%*s%s", axisWidth, axisLabels[row], axisSeparator)
		for i, bar := range c.Bars {
			if i > 0 {
				b.WriteByte(' ')
			}
			cell := barCell(bar.Value, row, height)
			if cell == ' ' && row == thresholdRow {
				b.WriteString(strings.Repeat(string(thresholdRune), barWidth))
				continue
			}
			b.WriteString(c.paint(bar.Passed, strings.Repeat(string(cell), barWidth)))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}

	values := make([]string, len(c.Bars))
	labels := make([]string, len(c.Bars))
	for i, bar := range c.Bars {
		values[i] = c.paint(bar.Passed, centerCell(fmt.Sprintf("%d%%", int(math.Round(clampPct(bar.Value)))), barWidth))
		labels[i] = centerCell(bar.Label, barWidth)
	}
	pad := strings.Repeat(" ", axisWidth+displayWidth(axisSeparator))
	lines = append(lines, strings.TrimRight(pad+strings.Join(values, " "), " "))
	lines = append(lines, strings.TrimRight(pad+strings.Join(labels, " "), " "))
	return lines
}

func (c BarChart) paint(passed bool, s string) string {
	if c.Paint == nil || strings.TrimSpace(s) == "" {
		return s
	}
	return c.Paint(passed, s)
}

// RenderBars writes an accuracy chart, colored when w is a terminal or forceColor is set.
func RenderBars(w io.Writer, chart BarChart, forceColor bool) error {
	if shouldUseColor(w, forceColor) {
		chart.Paint = ansiPaint
	}
	for _, line := range chart.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ChartWidthFor returns how many bars fit in the given terminal width.
func ChartWidthFor(totalWidth, barWidth int) int {
	if totalWidth <= 0 {
		totalWidth = terminalWidth()
	}
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}
	axisWidth := displayWidth(axisLabelTop) + displayWidth(axisSeparator)
	n := (totalWidth - axisWidth + 1) / (barWidth + 1)
	if n < 1 {
		n = 1
	}
	return n
}

func ansiPaint(passed bool, s string) string {
	if passed {
		return colorPass + s + colorReset
	}
	return colorFail + s + colorReset
}

func barCell(value float64, row, height int) rune {
	eighths := int(math.Round(clampPct(value) / 100 * float64(height*8)))
	level := height - 1 - row
	fill := eighths - level*8
	if fill <= 0 {
		return ' '
	}
	if fill >= 8 {
		return barBlocks[8]
	}
	return barBlocks[fill]
}

func rowForValue(value float64, height int) int {
	level := int(math.Ceil(clampPct(value)/100*float64(height))) - 1
	if level < 0 {
		level = 0
	}
	return height - 1 - level
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func centerCell(value string, width int) string {
	w := displayWidth(value)
	if w >= width {
		return value
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + value + strings.Repeat(" ", width-w-left)
}

func makeAxisLabels(height int) []string {
	labels := make([]string, height)
	if height <= 0 {
		return labels
	}
	labels[0] = axisLabelTop
	if height > 2 {
		labels[height/2] = axisLabelMid
	}
	if height > 1 {
		labels[height-1] = axisLabelBottom
	}
	return labels
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
