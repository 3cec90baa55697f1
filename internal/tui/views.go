package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/devilcalc/internal/commentary"
	"github.com/verte-zerg/devilcalc/internal/game"
	statsPkg "github.com/verte-zerg/devilcalc/internal/stats"
)

const (
	chartHeight   = 6
	chartBarWidth = 6
	panelWidth    = 44
)

var (
	numpadTop    = []int{1, 2, 3, 4, 5}
	numpadBottom = []int{6, 7, 8, 9, 0}
)

func (m *Model) renderMenu() string {
	title := titleStyle.Render("DEVIL ") + accentStyle.Render("CALC")
	subtitle := mutedStyle.Render("ENDLESS CHALLENGE")
	rules := []string{
		"Memorize the answers. They will be hidden.",
		"Enter the answer from " + lipgloss.NewStyle().Bold(true).Render("N steps back") + ".",
		fmt.Sprintf("Reach %s accuracy to advance.", goodStyle.Render(fmt.Sprintf("%.0f%%", m.session.Rules().PassAccuracy))),
	}
	lines := make([]string, 0, len(rules))
	for i, rule := range rules {
		lines = append(lines, stepStyle.Render(fmt.Sprintf("%02d", i+1))+"  "+textStyle.Render(rule))
	}
	panel := panelStyle.Render(strings.Join(lines, "\n\n"))
	start := memorizeStyle.Render("START TRAINING")
	return lipgloss.JoinVertical(lipgloss.Center, title, subtitle, "", panel, "", start)
}

func (m *Model) renderGame() string {
	level := m.session.Level()
	if level == nil {
		return ""
	}
	header := m.renderGameHeader(level)

	incomingLabel := " "
	if level.Phase() == game.PhaseMemorize {
		incomingLabel = accentStyle.Render("MEMORIZE")
	}
	var incoming string
	switch {
	case level.Incoming() != nil:
		incoming = cardStyle.Render(titleStyle.UnsetItalic().Render(level.Incoming().Expression))
	default:
		incoming = dimCardStyle.Render("---")
	}

	answerLabel := " "
	if level.Phase() != game.PhaseMemorize {
		answerLabel = infoStyle.Render("ANSWER")
	}
	answer := renderAnswerCard(level)

	progress := m.progress.ViewAs(levelProgress(level))

	return lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		incomingLabel,
		incoming,
		renderQueue(level.QueueLen(), level.Busy()),
		answerLabel,
		answer,
		"",
		renderInput(level),
		"",
		progress,
	)
}

func (m *Model) renderGameHeader(level *game.Level) string {
	left := badgeStyle.Render(fmt.Sprintf("LEVEL %d", level.N())) + " " + textStyle.Render(fmt.Sprintf("%d-back", level.N()))
	right := mutedStyle.Render("Remaining: ") + titleStyle.UnsetItalic().Render(fmt.Sprintf("%d", level.Remaining()))
	if combo := level.Combo(); combo >= 2 {
		right = goodStyle.Render(fmt.Sprintf("Combo x%d", combo)) + "  " + right
	}
	gap := panelWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

func renderAnswerCard(level *game.Level) string {
	if level.Phase() == game.PhaseMemorize {
		return lockedCardStyle.Render("[ locked ]")
	}
	if fb := level.Feedback(); fb != nil {
		if fb.Correct {
			return correctCardStyle.Render(fmt.Sprintf("%s = %s  %s", fb.Problem.Expression, goodStyle.Render(fmt.Sprintf("%d", fb.Input)), goodStyle.Render("✓")))
		}
		return wrongCardStyle.Render(fmt.Sprintf("%s = %s  %s", fb.Problem.Expression, badStyle.Render(fmt.Sprintf("%d", fb.Input)), badStyle.Render("✗")))
	}
	return cardStyle.Render(mutedStyle.Render("? + ? = _"))
}

func renderQueue(depth int, busy bool) string {
	arrow := mutedStyle.Render("↓")
	if busy {
		arrow = accentStyle.Render("↓")
	}
	if depth == 0 {
		return arrow + "\n" + queueStyle.Render("──")
	}
	parts := make([]string, 0, depth)
	for i := 0; i < depth; i++ {
		if i == 0 {
			parts = append(parts, queueHeadStyle.Render("━━━━"))
			continue
		}
		parts = append(parts, queueStyle.Render("──"))
	}
	return arrow + "\n" + strings.Join(parts, " ")
}

func renderInput(level *game.Level) string {
	if level.Phase() == game.PhaseMemorize {
		return memorizeStyle.Render("MEMORIZE  ·  press space to hide")
	}
	style := keyStyle
	if level.Busy() {
		style = keyDimStyle
	}
	row := func(keys []int) string {
		cells := make([]string, len(keys))
		for i, k := range keys {
			cells[i] = style.Render(fmt.Sprintf(" %d ", k))
		}
		return strings.Join(cells, " ")
	}
	return row(numpadTop) + "\n\n" + row(numpadBottom)
}

func levelProgress(level *game.Level) float64 {
	total := level.TotalSteps()
	if total <= 0 {
		return 0
	}
	return float64(total-level.Remaining()) / float64(total)
}

func (m *Model) renderTransition() string {
	n := m.session.LevelN()
	lines := []string{
		accentStyle.Render("▲"),
		"",
		titleStyle.Render("LEVEL PASSED!"),
		textStyle.Render("Accuracy reached. Leveling up..."),
		"",
		mutedStyle.Render(fmt.Sprintf("%d-back", n)) + textStyle.Render("  →  ") + goodStyle.Render(fmt.Sprintf("%d-back", n+1)),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderResults() string {
	st := m.session.Stats()
	threshold := m.session.Rules().PassAccuracy
	report := statsPkg.BuildReport(st, threshold)

	title := titleStyle.Render("GAME OVER")
	subtitle := accentStyle.Render("SESSION REPORT")

	overallStyle := badStyle
	if float64(report.Overall) >= threshold {
		overallStyle = goodStyle
	}
	score := []string{
		mutedStyle.Render("MAX LEVEL"),
		titleStyle.UnsetItalic().Render(fmt.Sprintf("Level %d", report.MaxLevel)) + accentStyle.Render(fmt.Sprintf(" %d-back", report.MaxLevel)),
		"",
		mutedStyle.Render("Overall accuracy ") + overallStyle.Render(fmt.Sprintf("%d%%", report.Overall)) +
			mutedStyle.Render("   Correct ") + infoStyle.Render(fmt.Sprintf("%d", report.TotalCorrect)) + mutedStyle.Render(fmt.Sprintf(" / %d", report.TotalProblems)),
	}
	scorePanel := panelStyle.Width(panelWidth).Render(strings.Join(score, "\n"))

	sections := []string{title, subtitle, "", scorePanel}

	if len(report.Levels) > 0 {
		maxBars := statsPkg.ChartWidthFor(panelWidth, chartBarWidth)
		chart := report.Chart(threshold, maxBars)
		chart.Height = chartHeight
		chart.BarWidth = chartBarWidth
		chart.Paint = func(passed bool, s string) string {
			if passed {
				return goodStyle.Render(s)
			}
			return badStyle.Render(s)
		}
		chartLines := append([]string{mutedStyle.Render("LEVEL PROGRESS (ACCURACY %)")}, chart.Lines()...)
		sections = append(sections, "", panelStyle.Width(panelWidth).Render(strings.Join(chartLines, "\n")))
	}

	if last, ok := m.session.LastLevel(); ok {
		if spark := statsPkg.Sparkline(statsPkg.AnswerTimes(last)); spark != "" {
			sections = append(sections, mutedStyle.Render("Response times ")+infoStyle.Render(spark))
		}
	}

	sections = append(sections, "", m.renderRemark())
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (m *Model) renderRemark() string {
	lang := commentary.LangEnglish
	if m.analyst != nil {
		lang = m.analyst.Lang()
	}
	header := accentStyle.Render("DR. DEVIL'S VERDICT")
	var body string
	if m.analysisReady {
		text := m.analysis
		if text == "" {
			text = "..."
		}
		body = textStyle.Italic(true).Render(strings.Join(wrapText("\""+text+"\"", panelWidth-2), "\n"))
	} else {
		body = m.spinner.View() + " " + mutedStyle.Render(commentary.Pending(lang))
	}
	return remarkPanelStyle.Width(panelWidth).Render(header + "\n" + body)
}
