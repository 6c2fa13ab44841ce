package gamify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateThresholds(t *testing.T) {
	thresholds := map[string]int{
		"iniciante":     2,
		"intermediario": 4,
		"mestre":        6,
	}

	assert.Empty(t, Evaluate(0, thresholds, nil))
	assert.Empty(t, Evaluate(1, thresholds, nil))
	assert.ElementsMatch(t, []string{"iniciante"}, Evaluate(2, thresholds, nil))
	assert.ElementsMatch(t, []string{"iniciante"}, Evaluate(3, thresholds, nil))
	assert.ElementsMatch(t, []string{"iniciante", "intermediario"}, Evaluate(4, thresholds, nil))
	assert.ElementsMatch(t, []string{"iniciante", "intermediario", "mestre"}, Evaluate(7, thresholds, nil))
}

func TestEvaluateNeverRemoves(t *testing.T) {
	// A badge earned under an older threshold table sticks even when the
	// count no longer reaches it.
	got := Evaluate(1, map[string]int{"mestre": 6}, []string{"mestre"})
	assert.ElementsMatch(t, []string{"mestre"}, got)

	// Badges absent from the table stick too.
	got = Evaluate(0, map[string]int{}, []string{"aposentado"})
	assert.ElementsMatch(t, []string{"aposentado"}, got)
}

func TestEvaluateNoDuplicates(t *testing.T) {
	got := Evaluate(5, map[string]int{"iniciante": 2}, []string{"iniciante"})
	assert.Equal(t, []string{"iniciante"}, got)
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	current := []string{"iniciante"}
	Evaluate(10, map[string]int{"mestre": 3}, current)
	assert.Equal(t, []string{"iniciante"}, current)
}

func TestDerive(t *testing.T) {
	s := Derive(2, 50, 3)
	assert.Equal(t, 2, s.CompletedCount)
	assert.Equal(t, 100, s.Points)
	assert.Equal(t, 66, s.ProgressPercent)

	// Denominator missing: no percent, points still accrue.
	s = Derive(2, 10, 0)
	assert.Equal(t, 20, s.Points)
	assert.Equal(t, 0, s.ProgressPercent)

	// Count past the denominator clamps at 100.
	s = Derive(5, 10, 3)
	assert.Equal(t, 100, s.ProgressPercent)
}
