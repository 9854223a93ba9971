// Package session tracks one study pass over a deck: per-question timing
// and correctness, plus the state machine that drives card navigation.
package session

import "time"

// QuestionRecord is the per-card tracking entry. One is created per
// flashcard when a deck is built and mutated as the user responds; records
// are never removed from a session.
//
// JSON tags match the persisted record layout.
type QuestionRecord struct {
	Index          int    `json:"questionIndex"`
	QuestionText   string `json:"question"`
	ResponseTimeMs int    `json:"responseTime"`
	Answered       bool   `json:"answered"`

	// Correct is nil until the question receives a response.
	Correct *bool `json:"correct"`
}

// Session is one complete or partial study pass. It is owned by the
// Controller until Finish or Reset finalizes it, after which it is
// immutable and belongs to the analytics store.
type Session struct {
	ID                    string           `json:"sessionId"`
	SourceName            string           `json:"pdfName"`
	StartTime             time.Time        `json:"startTime"`
	EndTime               *time.Time       `json:"endTime"`
	TotalDurationMs       int64            `json:"totalDuration"`
	Questions             []QuestionRecord `json:"questions"`
	AverageResponseTimeMs int              `json:"averageResponseTime"`
	CorrectCount          int              `json:"correctAnswers"`
	IncorrectCount        int              `json:"incorrectAnswers"`
}

// AnsweredCount returns how many questions have received a response.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, q := range s.Questions {
		if q.Answered {
			n++
		}
	}
	return n
}
