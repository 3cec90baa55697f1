// Package generator builds single-digit arithmetic problems.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/devilcalc/internal/model"
)

// MaxAnswer is the largest answer a problem can have; answers fit a single keypad digit.
const MaxAnswer = 9

// Generator produces randomized arithmetic problems.
type Generator struct {
	rnd   *rand.Rand
	newID func() string
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a deterministic problem sequence.
func NewWithSeed(seed int64) *Generator {
	return &Generator{
		rnd:   rand.New(rand.NewSource(seed)),
		newID: uuid.NewString,
	}
}

// Next returns a new problem whose answer is in [0, MaxAnswer].
func (g *Generator) Next() model.MathProblem {
	answer := randomInt(g.rnd, 0, MaxAnswer)

	var a, b int
	op := '+'
	if g.rnd.Float64() > 0.5 {
		op = '-'
	}
	if op == '+' {
		a = randomInt(g.rnd, 0, answer)
		b = answer - a
	} else {
		// Subtrahend stays a single digit so the minuend never exceeds 18.
		b = randomInt(g.rnd, 0, MaxAnswer)
		a = answer + b
	}

	return model.MathProblem{
		ID:         g.newID(),
		Expression: fmt.Sprintf("%d %c %d", a, op, b),
		Answer:     answer,
	}
}

func randomInt(rnd *rand.Rand, minVal, maxVal int) int {
	return rnd.Intn(maxVal-minVal+1) + minVal
}
