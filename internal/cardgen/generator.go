package cardgen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/abhisek/flashdeck/internal/textseg"
)

// Generator builds decks from segmented text. The random source feeds only
// the top-up phase; inject a seeded source to make decks reproducible.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator. A nil rng gets a time-seeded source.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate produces an ordered deck of at most MaxDeckSize cards with no
// two cards sharing question text. It aims for at least MinDeckSize cards
// but returns fewer (possibly zero) when the material doesn't permit more.
func (g *Generator) Generate(seg textseg.Segmentation) []Flashcard {
	if seg.Mode == textseg.ModeParagraphs {
		return generateFromParagraphs(seg.Candidates)
	}
	return g.generateFromSentences(seg.Candidates)
}

// generateFromSentences cycles the four strategies round-robin against a
// shared used-index set, then tops up with random leftovers if the deck is
// still short.
func (g *Generator) generateFromSentences(sentences []string) []Flashcard {
	target := len(sentences) / 3
	if target < MinDeckSize {
		target = MinDeckSize
	}
	if target > MaxDeckSize {
		target = MaxDeckSize
	}

	strategies := []strategy{
		definitionStrategy,
		conceptStrategy,
		detailStrategy,
		summaryStrategy,
	}

	used := make(map[int]bool)
	seen := make(map[string]bool)
	var deck []Flashcard

	// Strategies that find nothing still count as attempts, so the guard
	// bounds the loop even when every sentence has been claimed.
	for attempts := 0; len(deck) < target; {
		card, ok := strategies[attempts%len(strategies)](sentences, used)
		attempts++
		if ok && !seen[card.Question] {
			deck = append(deck, card)
			seen[card.Question] = true
		}
		if attempts > 3*target {
			break
		}
	}

	// Top up from unused material, drawing randomly. Indexing the filtered
	// index slice directly keeps the used-set bookkeeping correct when the
	// source contains duplicate sentences.
	for len(deck) < MinDeckSize {
		var remaining []int
		for i, s := range sentences {
			if !used[i] && len(s) > 30 {
				remaining = append(remaining, i)
			}
		}
		if len(remaining) == 0 {
			break
		}

		idx := remaining[g.rng.Intn(len(remaining))]
		s := sentences[idx]
		used[idx] = true

		q := fmt.Sprintf(`What is the main point about: "%s..."?`, firstRunes(s, 100))
		if seen[q] {
			continue
		}
		deck = append(deck, Flashcard{Question: q, Answer: s})
		seen[q] = true
	}

	if len(deck) > MaxDeckSize {
		deck = deck[:MaxDeckSize]
	}
	return deck
}

// generateFromParagraphs emits one card per paragraph: a lead-sentence
// discussion prompt when the paragraph splits into multiple sentences,
// otherwise a generic summarize prompt over its opening text.
func generateFromParagraphs(paragraphs []string) []Flashcard {
	target := len(paragraphs)
	if target < MinDeckSize {
		target = MinDeckSize
	}
	if target > MaxDeckSize {
		target = MaxDeckSize
	}
	if target > len(paragraphs) {
		target = len(paragraphs)
	}

	seen := make(map[string]bool)
	var deck []Flashcard
	for _, para := range paragraphs[:target] {
		var card Flashcard
		if sentences := textseg.SplitSentences(para, 10); len(sentences) >= 2 {
			answer := sentences
			if len(answer) > 3 {
				answer = answer[:3]
			}
			card = Flashcard{
				Question: fmt.Sprintf(`What does the following text discuss: "%s..."?`, firstRunes(sentences[0], 150)),
				Answer:   strings.TrimSpace(strings.Join(answer, ". ")),
			}
		} else {
			card = Flashcard{
				Question: fmt.Sprintf(`Summarize the key information about: "%s..."?`, firstRunes(para, 100)),
				Answer:   firstRunes(para, 300),
			}
		}
		if seen[card.Question] {
			continue
		}
		deck = append(deck, card)
		seen[card.Question] = true
	}
	return deck
}
