package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/devilcalc/internal/model"
)

// LevelRow summarizes one played level.
type LevelRow struct {
	Level     int
	Accuracy  float64
	Correct   int
	Total     int
	MaxCombo  int
	AvgTimeMs float64
	Passed    bool
}

// Report contains precomputed data for results rendering.
type Report struct {
	Levels        []LevelRow
	MaxLevel      int
	HighestPassed int
	TotalCorrect  int
	TotalProblems int
	Overall       int
	Duration      time.Duration
}

// BuildReport derives per-level rows and totals from a session.
func BuildReport(s model.SessionStats, threshold float64) Report {
	r := Report{
		Levels:        make([]LevelRow, 0, len(s.LevelStats)),
		MaxLevel:      s.MaxLevel,
		TotalCorrect:  s.TotalCorrect,
		TotalProblems: s.TotalProblems,
		Overall:       OverallPercent(s),
	}
	if !s.StartedAt.IsZero() && s.EndedAt.After(s.StartedAt) {
		r.Duration = s.EndedAt.Sub(s.StartedAt)
	}
	for _, gs := range s.LevelStats {
		row := LevelRow{
			Level:     gs.Level,
			Accuracy:  LevelAccuracy(gs),
			Correct:   gs.Correct,
			Total:     gs.Total,
			MaxCombo:  gs.MaxCombo,
			AvgTimeMs: gs.AvgTimeMs,
			Passed:    Passed(gs, threshold),
		}
		if row.Passed && row.Level > r.HighestPassed {
			r.HighestPassed = row.Level
		}
		r.Levels = append(r.Levels, row)
	}
	return r
}

// Chart builds an accuracy bar chart for the last maxBars levels.
func (r Report) Chart(threshold float64, maxBars int) BarChart {
	rows := r.Levels
	if maxBars > 0 && len(rows) > maxBars {
		rows = rows[len(rows)-maxBars:]
	}
	bars := make([]Bar, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, Bar{
			Label:  fmt.Sprintf("%d-back", row.Level),
			Value:  row.Accuracy,
			Passed: row.Passed,
		})
	}
	return BarChart{Bars: bars, Threshold: threshold}
}

// RenderSummary prints the results of a session.
func RenderSummary(w io.Writer, s model.SessionStats, threshold float64, forceColor bool) error {
	if len(s.LevelStats) == 0 {
		_, err := fmt.Fprintln(w, "No levels played.")
		return err
	}
	r := BuildReport(s, threshold)
	if _, err := fmt.Fprintln(w, "Session Report"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Max level: %d-back\n", r.MaxLevel); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Highest passed: %d-back\n", r.HighestPassed); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Overall accuracy: %d%% (%d / %d)\n", r.Overall, r.TotalCorrect, r.TotalProblems); err != nil {
		return err
	}
	if r.Duration > 0 {
		if _, err := fmt.Fprintf(w, "Duration: %s\n", FormatDuration(r.Duration.Milliseconds())); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	headers := []string{"Level", "Accuracy", "Correct", "Max Combo", "Avg Time (ms)", "Result"}
	tableRows := make([][]string, 0, len(r.Levels))
	for _, row := range r.Levels {
		result := "fail"
		if row.Passed {
			result = "pass"
		}
		tableRows = append(tableRows, []string{
			fmt.Sprintf("%d-back", row.Level),
			fmt.Sprintf("%.1f%%", row.Accuracy),
			fmt.Sprintf("%d/%d", row.Correct, row.Total),
			fmt.Sprintf("%d", row.MaxCombo),
			fmt.Sprintf("%.0f", row.AvgTimeMs),
			result,
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "Accuracy per Level"); err != nil {
		return err
	}
	chart := r.Chart(threshold, ChartWidthFor(0, defaultBarWidth+2))
	chart.BarWidth = defaultBarWidth + 2
	if err := RenderBars(w, chart, forceColor); err != nil {
		return err
	}

	last := s.LevelStats[len(s.LevelStats)-1]
	if spark := Sparkline(AnswerTimes(last)); spark != "" {
		if _, err := fmt.Fprintf(w, "\nResponse times (%d-back): %s\n", last.Level, spark); err != nil {
			return err
		}
	}
	return nil
}
