package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateExactMatch(t *testing.T) {
	var s ScoringEngine

	assert.True(t, s.Evaluate("casa", "drawer", "guesser", "casa"))
	assert.True(t, s.Evaluate("casa", "drawer", "guesser", "  CASA  "), "case and surrounding space are ignored")
	assert.True(t, s.Evaluate("Gatto", "drawer", "guesser", "gatto"))
}

func TestEvaluateRejectsNearMisses(t *testing.T) {
	var s ScoringEngine

	assert.False(t, s.Evaluate("casa", "drawer", "guesser", "casetta"))
	assert.False(t, s.Evaluate("casa", "drawer", "guesser", "cas"))
	assert.False(t, s.Evaluate("casa", "drawer", "guesser", "la casa"), "interior words do not count")
}

func TestEvaluateDrawerNeverGuesses(t *testing.T) {
	var s ScoringEngine
	assert.False(t, s.Evaluate("casa", "drawer", "drawer", "casa"))
}

func TestEvaluateNoWordSet(t *testing.T) {
	var s ScoringEngine
	assert.False(t, s.Evaluate("", "drawer", "guesser", ""))
	assert.False(t, s.Evaluate("", "drawer", "guesser", "anything"))
}
