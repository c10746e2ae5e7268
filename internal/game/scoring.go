package game

import "strings"

// Point awards for a correctly guessed word.
const (
	GuesserPoints = 100
	DrawerPoints  = 50
)

// ScoringEngine compares guesses against the secret word. It is stateless;
// the room applies the awards so that scoring and round-end stay inside one
// critical section.
type ScoringEngine struct{}

// Evaluate reports whether text is a correct guess. The drawer can never
// guess their own word, and nothing matches while no word is set. Both sides
// are case-folded and trimmed; only exact matches count, partial or fuzzy
// matches are not credited.
func (ScoringEngine) Evaluate(word, drawerID, guesserID, text string) bool {
	if word == "" || guesserID == drawerID {
		return false
	}
	return normalizeGuess(text) == normalizeGuess(word)
}

func normalizeGuess(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
