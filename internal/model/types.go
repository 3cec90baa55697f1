// Package model defines shared data structures.
package model

import "time"

// Config defines game settings.
type Config struct {
	StartLevel   int
	Problems     int
	PassAccuracy float64
	TransitionMs int
	FeedbackMs   int
	Lang         string
	Seed         int64
	ShowSummary  bool
	LogFile      string
	LogLevel     string
}

// MathProblem is a single-digit arithmetic fact.
type MathProblem struct {
	ID         string
	Expression string
	Answer     int
}

// Answer records one answered problem.
type Answer struct {
	Problem MathProblem
	Input   int
	Correct bool
	TimeMs  int64
}

// GameStats captures a completed level.
type GameStats struct {
	Level     int
	Correct   int
	Total     int
	MaxCombo  int
	AvgTimeMs float64
	History   []Answer
}

// SessionStats aggregates the levels played in one run.
type SessionStats struct {
	StartedAt     time.Time
	EndedAt       time.Time
	MaxLevel      int
	TotalCorrect  int
	TotalProblems int
	LevelStats    []GameStats
}
