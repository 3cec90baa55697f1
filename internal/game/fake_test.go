package game

import (
	"fmt"
	"time"

	"github.com/verte-zerg/devilcalc/internal/model"
)

// seqSource yields problems whose answers cycle through 0-9.
type seqSource struct {
	next int
}

func (s *seqSource) Next() model.MathProblem {
	answer := s.next % 10
	s.next++
	return model.MathProblem{
		ID:         fmt.Sprintf("p%d", s.next),
		Expression: fmt.Sprintf("%d + 0", answer),
		Answer:     answer,
	}
}

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
