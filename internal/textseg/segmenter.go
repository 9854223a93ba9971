// Package textseg splits raw extracted text into flashcard source material.
package textseg

import (
	"regexp"
	"strings"
)

// Mode indicates which segmentation strategy produced the candidates.
// Downstream card generation differs per mode.
type Mode int

const (
	// ModeSentences means candidates are individual sentences.
	ModeSentences Mode = iota
	// ModeParagraphs means candidates are whole paragraphs (sentence
	// segmentation found too little material).
	ModeParagraphs
)

const (
	// MinSentenceLen is the minimum trimmed length for a sentence candidate.
	MinSentenceLen = 20
	// MinParagraphLen is the minimum trimmed length for a paragraph candidate.
	MinParagraphLen = 50
	// SentenceModeThreshold is the sentence count below which segmentation
	// falls back to paragraphs.
	SentenceModeThreshold = 8
)

var (
	sentenceSplit  = regexp.MustCompile(`[.!?]+`)
	paragraphSplit = regexp.MustCompile(`\n\s*\n+`)
)

// Segmentation is the ordered candidate list plus the mode that produced it.
type Segmentation struct {
	Candidates []string
	Mode       Mode
}

// Segment splits text into sentence candidates, falling back to paragraphs
// when fewer than SentenceModeThreshold sentences qualify. Candidates are
// trimmed. Both modes may yield an empty list; the caller owns the
// resulting empty deck.
func Segment(text string) Segmentation {
	sentences := filterCandidates(sentenceSplit.Split(text, -1), MinSentenceLen)
	if len(sentences) >= SentenceModeThreshold {
		return Segmentation{Candidates: sentences, Mode: ModeSentences}
	}

	paragraphs := filterCandidates(paragraphSplit.Split(text, -1), MinParagraphLen)
	return Segmentation{Candidates: paragraphs, Mode: ModeParagraphs}
}

// SplitSentences splits a single paragraph into its internal sentences,
// keeping those whose trimmed length exceeds minLen.
func SplitSentences(paragraph string, minLen int) []string {
	return filterCandidates(sentenceSplit.Split(paragraph, -1), minLen)
}

func filterCandidates(parts []string, minLen int) []string {
	var out []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if len(trimmed) > minLen {
			out = append(out, trimmed)
		}
	}
	return out
}
