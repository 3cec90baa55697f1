package generator

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextProducesConsistentProblems(t *testing.T) {
	gen := NewWithSeed(42)
	seenOps := map[string]bool{}
	for i := 0; i < 500; i++ {
		p := gen.Next()
		require.NotEmpty(t, p.ID)
		require.GreaterOrEqual(t, p.Answer, 0)
		require.LessOrEqual(t, p.Answer, MaxAnswer)

		parts := strings.Fields(p.Expression)
		require.Len(t, parts, 3, "expression %q", p.Expression)
		a, err := strconv.Atoi(parts[0])
		require.NoError(t, err)
		b, err := strconv.Atoi(parts[2])
		require.NoError(t, err)
		require.GreaterOrEqual(t, a, 0)
		require.GreaterOrEqual(t, b, 0)
		require.LessOrEqual(t, b, MaxAnswer)
		require.LessOrEqual(t, a, 2*MaxAnswer)

		seenOps[parts[1]] = true
		switch parts[1] {
		case "+":
			assert.Equal(t, p.Answer, a+b, "expression %q", p.Expression)
		case "-":
			assert.Equal(t, p.Answer, a-b, "expression %q", p.Expression)
		default:
			t.Fatalf("unexpected operator in %q", p.Expression)
		}
	}
	assert.True(t, seenOps["+"])
	assert.True(t, seenOps["-"])
}

func TestNextIsDeterministicForSeed(t *testing.T) {
	a := NewWithSeed(7)
	b := NewWithSeed(7)
	for i := 0; i < 20; i++ {
		pa, pb := a.Next(), b.Next()
		assert.Equal(t, pa.Expression, pb.Expression)
		assert.Equal(t, pa.Answer, pb.Answer)
		assert.NotEqual(t, pa.ID, pb.ID)
	}
}
