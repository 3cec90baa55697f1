// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/verte-zerg/devilcalc/internal/model"
)

var sparkChars = []rune("▁▂▃▄▅▆▇█")

// Accuracy returns the correct ratio in [0, 1]; an empty level scores 0.
func Accuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// Percent returns the accuracy as a rounded percentage.
func Percent(correct, total int) int {
	return int(math.Round(Accuracy(correct, total) * 100))
}

// LevelAccuracy returns the accuracy percentage of a level, unrounded.
func LevelAccuracy(gs model.GameStats) float64 {
	return Accuracy(gs.Correct, gs.Total) * 100
}

// Passed reports whether a level reached the pass threshold (a percentage).
func Passed(gs model.GameStats, threshold float64) bool {
	return LevelAccuracy(gs) >= threshold
}

// OverallPercent returns the rounded accuracy across all levels of a session.
func OverallPercent(s model.SessionStats) int {
	return Percent(s.TotalCorrect, s.TotalProblems)
}

// AnswerTimes returns per-answer response times in milliseconds.
func AnswerTimes(gs model.GameStats) []float64 {
	out := make([]float64, len(gs.History))
	for i, a := range gs.History {
		out[i] = float64(a.TimeMs)
	}
	return out
}

// Sparkline renders a single-line block sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteRune(sparkChars[idx])
	}
	return b.String()
}

// FormatDuration renders milliseconds as m:ss.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	seconds := ms / 1000
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
