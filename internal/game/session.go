package game

import (
	"time"

	"github.com/verte-zerg/devilcalc/internal/model"
	"github.com/verte-zerg/devilcalc/internal/stats"
)

// State is the screen-level state of a run.
type State int

// Screen states of a run.
const (
	StateMenu State = iota
	StatePlaying
	StateTransition
	StateResults
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateTransition:
		return "transition"
	case StateResults:
		return "results"
	default:
		return "unknown"
	}
}

// Defaults used when Rules fields are unset.
const (
	DefaultStartLevel   = 1
	DefaultProblems     = 15
	DefaultPassAccuracy = 65.0
)

// Rules holds the level progression settings.
type Rules struct {
	StartLevel   int
	Problems     int
	PassAccuracy float64
}

// DefaultRules returns the standard progression.
func DefaultRules() Rules {
	return Rules{
		StartLevel:   DefaultStartLevel,
		Problems:     DefaultProblems,
		PassAccuracy: DefaultPassAccuracy,
	}
}

// Session drives menu, level play, transitions and results for one player.
type Session struct {
	rules  Rules
	source ProblemSource
	now    func() time.Time

	state   State
	levelN  int
	current *Level
	stats   model.SessionStats
}

// NewSession returns a session waiting on the menu.
func NewSession(rules Rules, source ProblemSource, now func() time.Time) *Session {
	if rules.StartLevel < 1 {
		rules.StartLevel = DefaultStartLevel
	}
	if rules.Problems < 1 {
		rules.Problems = DefaultProblems
	}
	if now == nil {
		now = time.Now
	}
	return &Session{
		rules:  rules,
		source: source,
		now:    now,
		state:  StateMenu,
		levelN: rules.StartLevel,
	}
}

// State returns the current screen state.
func (s *Session) State() State { return s.state }

// Rules returns the progression settings.
func (s *Session) Rules() Rules { return s.rules }

// LevelN returns the N of the level being played or about to be played.
func (s *Session) LevelN() int { return s.levelN }

// Level returns the active level, or nil outside of play.
func (s *Session) Level() *Level {
	if s.state != StatePlaying {
		return nil
	}
	return s.current
}

// Stats returns a copy of the session stats.
func (s *Session) Stats() model.SessionStats {
	out := s.stats
	out.LevelStats = append([]model.GameStats(nil), s.stats.LevelStats...)
	return out
}

// LastLevel returns the stats of the most recently finished level.
func (s *Session) LastLevel() (model.GameStats, bool) {
	if len(s.stats.LevelStats) == 0 {
		return model.GameStats{}, false
	}
	return s.stats.LevelStats[len(s.stats.LevelStats)-1], true
}

// Start resets the session stats and begins the first level.
func (s *Session) Start() *Level {
	now := s.now()
	s.levelN = s.rules.StartLevel
	s.stats = model.SessionStats{
		StartedAt: now,
		MaxLevel:  s.rules.StartLevel,
	}
	return s.startLevel()
}

// Retry starts a fresh run from the results screen.
func (s *Session) Retry() *Level {
	return s.Start()
}

// FinishLevel folds the finished level into the session and reports whether it passed.
func (s *Session) FinishLevel() (bool, error) {
	if s.state != StatePlaying || s.current == nil || !s.current.Done() {
		return false, ErrNotAccepting
	}
	gs := s.current.Stats()
	s.stats.MaxLevel = s.levelN
	s.stats.TotalCorrect += gs.Correct
	s.stats.TotalProblems += gs.Total
	s.stats.LevelStats = append(s.stats.LevelStats, gs)
	s.stats.EndedAt = s.now()
	s.current = nil

	if stats.Passed(gs, s.rules.PassAccuracy) {
		s.state = StateTransition
		return true, nil
	}
	s.state = StateResults
	return false, nil
}

// NextLevel leaves the transition screen and starts level N+1.
func (s *Session) NextLevel() (*Level, error) {
	if s.state != StateTransition {
		return nil, ErrNotAccepting
	}
	s.levelN++
	return s.startLevel(), nil
}

// Abandon ends the current level early and shows the results of finished levels.
func (s *Session) Abandon() {
	s.current = nil
	if len(s.stats.LevelStats) == 0 {
		s.state = StateMenu
		return
	}
	s.stats.EndedAt = s.now()
	s.state = StateResults
}

// Home returns to the menu.
func (s *Session) Home() {
	s.current = nil
	s.state = StateMenu
}

func (s *Session) startLevel() *Level {
	s.current = NewLevel(s.levelN, s.rules.Problems, s.source, s.now)
	s.state = StatePlaying
	return s.current
}
