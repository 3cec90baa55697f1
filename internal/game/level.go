// Package game implements the N-back level and session state machines.
package game

import (
	"errors"
	"time"

	"github.com/verte-zerg/devilcalc/internal/model"
)

// Phase is the stage of a level.
type Phase int

const (
	// PhaseMemorize fills the queue with the first N problems.
	PhaseMemorize Phase = iota
	// PhasePlaying answers the queue head while new problems keep arriving.
	PhasePlaying
	// PhaseCooldown drains the queue once every problem has been shown.
	PhaseCooldown
)

func (p Phase) String() string {
	switch p {
	case PhaseMemorize:
		return "memorize"
	case PhasePlaying:
		return "playing"
	case PhaseCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

var (
	// ErrNotAccepting is returned when input arrives in the wrong phase or during feedback.
	ErrNotAccepting = errors.New("level is not accepting input")
	// ErrInvalidDigit is returned for answers outside 0-9.
	ErrInvalidDigit = errors.New("answer must be a single digit")
)

// ProblemSource supplies new problems.
type ProblemSource interface {
	Next() model.MathProblem
}

// Feedback describes an answered problem while it is revealed.
type Feedback struct {
	Problem model.MathProblem
	Input   int
	Correct bool
}

// Level runs a single N-back level.
type Level struct {
	n            int
	problemCount int
	source       ProblemSource
	now          func() time.Time

	phase     Phase
	queue     []model.MathProblem
	incoming  *model.MathProblem
	generated int
	answered  int
	memorized int
	combo     int
	feedback  *Feedback
	done      bool

	stats     model.GameStats
	startedAt time.Time
}

// NewLevel starts an N-back level in the memorize phase with the first problem shown.
func NewLevel(n, problemCount int, source ProblemSource, now func() time.Time) *Level {
	if n < 1 {
		n = 1
	}
	if problemCount < 1 {
		problemCount = 1
	}
	if now == nil {
		now = time.Now
	}
	l := &Level{
		n:            n,
		problemCount: problemCount,
		source:       source,
		now:          now,
		phase:        PhaseMemorize,
		stats:        model.GameStats{Level: n},
	}
	l.drawIncoming()
	l.startedAt = now()
	return l
}

// N returns the recall depth.
func (l *Level) N() int { return l.n }

// Phase returns the current phase.
func (l *Level) Phase() Phase { return l.phase }

// Incoming returns the newest problem on screen, or nil in cooldown.
func (l *Level) Incoming() *model.MathProblem { return l.incoming }

// QueueLen returns how many problems are waiting to be answered.
func (l *Level) QueueLen() int { return len(l.queue) }

// Feedback returns the answer being revealed, or nil.
func (l *Level) Feedback() *Feedback { return l.feedback }

// Busy reports whether an answer is being revealed and input is blocked.
func (l *Level) Busy() bool { return l.feedback != nil }

// Done reports whether every problem has been answered.
func (l *Level) Done() bool { return l.done }

// Combo returns the current streak of correct answers.
func (l *Level) Combo() int { return l.combo }

// TotalSteps returns the memorize taps plus the answers a level requires.
func (l *Level) TotalSteps() int {
	return l.n + l.answersOwed()
}

// Remaining returns how many memorize taps and answers are still ahead.
func (l *Level) Remaining() int {
	return l.TotalSteps() - l.memorized - l.answered
}

func (l *Level) answersOwed() int {
	if l.n > l.problemCount {
		return l.n
	}
	return l.problemCount
}

// Stats returns a copy of the level stats so far.
func (l *Level) Stats() model.GameStats {
	out := l.stats
	out.History = append([]model.Answer(nil), l.stats.History...)
	return out
}

// Memorize hides the incoming problem and moves it into the queue.
func (l *Level) Memorize() error {
	if l.phase != PhaseMemorize || l.incoming == nil {
		return ErrNotAccepting
	}
	l.queue = append(l.queue, *l.incoming)
	l.generated++
	l.memorized++
	switch {
	case l.generated < l.n:
		l.drawIncoming()
	case l.generated >= l.problemCount:
		l.phase = PhaseCooldown
		l.incoming = nil
	default:
		l.phase = PhasePlaying
		l.drawIncoming()
	}
	l.startedAt = l.now()
	return nil
}

// Answer checks digit d against the oldest queued problem and reveals the result.
// Call Advance once the feedback has been shown.
func (l *Level) Answer(d int) (Feedback, error) {
	if d < 0 || d > 9 {
		return Feedback{}, ErrInvalidDigit
	}
	if l.done || l.phase == PhaseMemorize || l.Busy() || len(l.queue) == 0 {
		return Feedback{}, ErrNotAccepting
	}
	target := l.queue[0]
	correct := d == target.Answer
	elapsed := l.now().Sub(l.startedAt).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	}

	prevTotal := float64(l.stats.Total)
	if correct {
		l.stats.Correct++
		l.combo++
	} else {
		l.combo = 0
	}
	if l.combo > l.stats.MaxCombo {
		l.stats.MaxCombo = l.combo
	}
	l.stats.AvgTimeMs = (l.stats.AvgTimeMs*prevTotal + float64(elapsed)) / (prevTotal + 1)
	l.stats.Total++
	l.stats.History = append(l.stats.History, model.Answer{
		Problem: target,
		Input:   d,
		Correct: correct,
		TimeMs:  elapsed,
	})

	fb := Feedback{Problem: target, Input: d, Correct: correct}
	l.feedback = &fb
	return fb, nil
}

// Advance rotates the queue after feedback and reports whether the level finished.
func (l *Level) Advance() (bool, error) {
	if !l.Busy() {
		return l.done, ErrNotAccepting
	}
	l.feedback = nil
	l.queue = l.queue[1:]
	l.answered++

	switch l.phase {
	case PhasePlaying:
		if l.incoming != nil {
			l.queue = append(l.queue, *l.incoming)
			l.generated++
		}
		if l.generated >= l.problemCount {
			l.phase = PhaseCooldown
			l.incoming = nil
		} else {
			l.drawIncoming()
		}
	case PhaseCooldown:
		if len(l.queue) == 0 {
			l.done = true
			return true, nil
		}
	}
	l.startedAt = l.now()
	return false, nil
}

func (l *Level) drawIncoming() {
	p := l.source.Next()
	l.incoming = &p
}
