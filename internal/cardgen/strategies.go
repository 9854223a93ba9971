package cardgen

import (
	"regexp"
	"strings"
)

// A strategy consumes not-yet-used sentences and emits one card, marking
// everything it claimed in the shared used-index set. Strategies scan from
// the start of the sentence list on every call; the used set is the only
// cross-call state. ok is false when no candidate qualifies.
type strategy func(sentences []string, used map[int]bool) (card Flashcard, ok bool)

var (
	// A single capitalized word: likely a proper noun or named concept.
	capitalizedWord = regexp.MustCompile(`\b[A-Z][a-z]+\b`)

	// One or two consecutive capitalized words, used as a topic label.
	capitalizedPhrase = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\b`)
)

// definitionStrategy asks "What is X?" about the first capitalized word in
// a sufficiently long unused sentence.
func definitionStrategy(sentences []string, used map[int]bool) (Flashcard, bool) {
	for i, s := range sentences {
		if used[i] || len(s) <= 40 {
			continue
		}
		subject := capitalizedWord.FindString(s)
		if subject == "" {
			continue
		}
		used[i] = true
		return Flashcard{
			Question: "What is " + subject + "?",
			Answer:   s,
		}, true
	}
	return Flashcard{}, false
}

// conceptStrategy asks for an explanation of the leading phrase of a
// medium-length unused sentence.
func conceptStrategy(sentences []string, used map[int]bool) (Flashcard, bool) {
	for i, s := range sentences {
		if used[i] || len(s) <= 60 || len(s) >= 200 {
			continue
		}
		used[i] = true
		return Flashcard{
			Question: "Explain: " + firstWords(s, 8),
			Answer:   s,
		}, true
	}
	return Flashcard{}, false
}

// detailStrategy turns the first half of an unused sentence into a
// fill-in-the-rest prompt.
func detailStrategy(sentences []string, used map[int]bool) (Flashcard, bool) {
	for i, s := range sentences {
		if used[i] || len(s) <= 50 {
			continue
		}
		used[i] = true
		runes := []rune(s)
		half := string(runes[:len(runes)/2])
		return Flashcard{
			Question: "Complete the following: " + half + "...?",
			Answer:   s,
		}, true
	}
	return Flashcard{}, false
}

// summaryStrategy finds the first run of 3 consecutive unused sentences of
// which at least 2 are substantial, and asks for the cluster's key points.
// All 3 indices are marked used even when one is filtered from the answer.
func summaryStrategy(sentences []string, used map[int]bool) (Flashcard, bool) {
	for i := 0; i+2 < len(sentences); i++ {
		if used[i] || used[i+1] || used[i+2] {
			continue
		}

		var cluster []string
		for _, s := range sentences[i : i+3] {
			if len(strings.TrimSpace(s)) > 30 {
				cluster = append(cluster, s)
			}
		}
		if len(cluster) < 2 {
			continue
		}

		topic := capitalizedPhrase.FindString(cluster[0])
		if topic == "" {
			topic = firstWords(cluster[0], 3)
		}

		used[i] = true
		used[i+1] = true
		used[i+2] = true
		return Flashcard{
			Question: "What are the key points about " + topic + "?",
			Answer:   strings.TrimSpace(strings.Join(cluster, ". ")),
		}, true
	}
	return Flashcard{}, false
}

// firstWords returns up to n leading whitespace-delimited words of s.
func firstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// firstRunes returns up to n leading runes of s.
func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
