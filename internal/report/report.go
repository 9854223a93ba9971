// Package report derives display values from stored sessions: duration and
// response-time formatting, accuracy tiers, per-question breakdowns, and
// the cross-session aggregate. Both the analytics screen and the stats
// command render from here.
package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/abhisek/flashdeck/internal/session"
)

// Tier is the qualitative accuracy band, used purely for display styling.
type Tier int

const (
	TierPoor    Tier = iota // below 50%
	TierNeutral             // 50-69%
	TierGood                // 70% and up
)

// Status is the tri-state outcome of a question record.
type Status int

const (
	StatusNotAnswered Status = iota
	StatusCorrect
	StatusIncorrect
)

// Label returns the display text for a status.
func (s Status) Label() string {
	switch s {
	case StatusCorrect:
		return "✓ Correct"
	case StatusIncorrect:
		return "✗ Incorrect"
	default:
		return "Not Answered"
	}
}

// QuestionStatus classifies a record.
func QuestionStatus(q session.QuestionRecord) Status {
	switch {
	case q.Correct == nil:
		return StatusNotAnswered
	case *q.Correct:
		return StatusCorrect
	default:
		return StatusIncorrect
	}
}

// Accuracy returns round(100*correct/answered), or 0 when nothing was
// answered. The result is always within [0, 100] for valid counters.
func Accuracy(correct, answered int) int {
	if answered == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(answered) * 100))
}

// AccuracyTier maps a percentage to its display band.
func AccuracyTier(pct int) Tier {
	switch {
	case pct >= 70:
		return TierGood
	case pct >= 50:
		return TierNeutral
	default:
		return TierPoor
	}
}

// FormatDuration renders a session-level duration:
// 0 → "0m", under a minute → "Ns", under an hour → "Mm Ss",
// an hour or more → "Hh Mm".
func FormatDuration(ms int64) string {
	if ms <= 0 {
		return "0m"
	}
	seconds := ms / 1000
	minutes := seconds / 60
	hours := minutes / 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds%60)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatResponseTime renders a per-question response time:
// 0 → "0s", under a minute → "Ns", otherwise "Mm Ss".
func FormatResponseTime(ms int) string {
	if ms <= 0 {
		return "0s"
	}
	seconds := ms / 1000
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

// TruncateQuestion shortens question text to at most max display cells,
// appending an ellipsis when anything was cut.
func TruncateQuestion(text string, max int) string {
	if runewidth.StringWidth(text) <= max {
		return text
	}
	return runewidth.Truncate(text, max, "") + "..."
}

// Metrics is the session-level display block.
type Metrics struct {
	Duration    string
	AvgResponse string
	Total       int
	Answered    int
	Correct     int
	Incorrect   int
	AccuracyPct int
	Tier        Tier
}

// SessionMetrics derives the metrics block for one session.
func SessionMetrics(s *session.Session) Metrics {
	answered := s.AnsweredCount()
	pct := Accuracy(s.CorrectCount, answered)
	return Metrics{
		Duration:    FormatDuration(s.TotalDurationMs),
		AvgResponse: FormatResponseTime(s.AverageResponseTimeMs),
		Total:       len(s.Questions),
		Answered:    answered,
		Correct:     s.CorrectCount,
		Incorrect:   s.IncorrectCount,
		AccuracyPct: pct,
		Tier:        AccuracyTier(pct),
	}
}

// SortSessions orders sessions by start time, newest first.
func SortSessions(sessions []session.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})
}

// ExcludeCurrent filters out the session matching the current-session id,
// so the history view never duplicates the current-session card.
func ExcludeCurrent(sessions []session.Session, currentID string) []session.Session {
	if currentID == "" {
		return sessions
	}
	var out []session.Session
	for _, s := range sessions {
		if s.ID != currentID {
			out = append(out, s)
		}
	}
	return out
}

// Summary aggregates across all stored sessions.
type Summary struct {
	Sessions     int
	TotalTimeMs  int64
	TotalCorrect int
	AccuracyPct  int
}

// Summarize computes the aggregate summary. Overall accuracy counts only
// answered questions and is 0 when none exist.
func Summarize(sessions []session.Session) Summary {
	var sum Summary
	sum.Sessions = len(sessions)

	totalIncorrect := 0
	for _, s := range sessions {
		sum.TotalTimeMs += s.TotalDurationMs
		sum.TotalCorrect += s.CorrectCount
		totalIncorrect += s.IncorrectCount
	}
	sum.AccuracyPct = Accuracy(sum.TotalCorrect, sum.TotalCorrect+totalIncorrect)
	return sum
}
