// Package cardgen derives question/answer flashcards from segmented text
// using rotating syntactic heuristics. No language understanding is
// involved; every strategy is a string-shape heuristic.
package cardgen

// Flashcard is a single question/answer pair. Immutable once created.
type Flashcard struct {
	Question string
	Answer   string
}

const (
	// MinDeckSize is the preferred lower bound for a generated deck.
	// Fewer cards are possible when the source material is thin.
	MinDeckSize = 8

	// MaxDeckSize is the hard upper bound for a generated deck.
	MaxDeckSize = 12
)
