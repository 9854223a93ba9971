package report

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/flashdeck/internal/session"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0m"},
		{-5, "0m"},
		{999, "0s"},
		{45000, "45s"},
		{60000, "1m 0s"},
		{125000, "2m 5s"},
		{3600000, "1h 0m"},
		{3725000, "1h 2m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.ms); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestFormatResponseTime(t *testing.T) {
	tests := []struct {
		ms   int
		want string
	}{
		{0, "0s"},
		{1500, "1s"},
		{59999, "59s"},
		{60000, "1m 0s"},
		{83000, "1m 23s"},
	}
	for _, tt := range tests {
		if got := FormatResponseTime(tt.ms); got != tt.want {
			t.Errorf("FormatResponseTime(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		correct, answered, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 2, 50},
		{2, 3, 67},
		{1, 3, 33},
		{3, 3, 100},
	}
	for _, tt := range tests {
		if got := Accuracy(tt.correct, tt.answered); got != tt.want {
			t.Errorf("Accuracy(%d, %d) = %d, want %d", tt.correct, tt.answered, got, tt.want)
		}
	}
}

func TestAccuracyTier(t *testing.T) {
	tests := []struct {
		pct  int
		want Tier
	}{
		{0, TierPoor},
		{49, TierPoor},
		{50, TierNeutral},
		{69, TierNeutral},
		{70, TierGood},
		{100, TierGood},
	}
	for _, tt := range tests {
		if got := AccuracyTier(tt.pct); got != tt.want {
			t.Errorf("AccuracyTier(%d) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

func TestQuestionStatus(t *testing.T) {
	yes, no := true, false
	if got := QuestionStatus(session.QuestionRecord{}); got != StatusNotAnswered {
		t.Errorf("unanswered = %v", got)
	}
	if got := QuestionStatus(session.QuestionRecord{Answered: true, Correct: &yes}); got != StatusCorrect {
		t.Errorf("correct = %v", got)
	}
	if got := QuestionStatus(session.QuestionRecord{Answered: true, Correct: &no}); got != StatusIncorrect {
		t.Errorf("incorrect = %v", got)
	}
}

func TestTruncateQuestion(t *testing.T) {
	short := "What is Go?"
	if got := TruncateQuestion(short, 100); got != short {
		t.Errorf("short question modified: %q", got)
	}

	long := strings.Repeat("x", 150)
	got := TruncateQuestion(long, 100)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("missing ellipsis: %q", got)
	}
	if len(got) != 103 {
		t.Errorf("len = %d, want 103", len(got))
	}
}

func TestSessionMetrics(t *testing.T) {
	yes, no := true, false
	s := &session.Session{
		TotalDurationMs:       125000,
		AverageResponseTimeMs: 1500,
		CorrectCount:          2,
		IncorrectCount:        1,
		Questions: []session.QuestionRecord{
			{Answered: true, Correct: &yes},
			{Answered: true, Correct: &yes},
			{Answered: true, Correct: &no},
			{},
		},
	}

	m := SessionMetrics(s)

	if m.Duration != "2m 5s" {
		t.Errorf("Duration = %q", m.Duration)
	}
	if m.AvgResponse != "1s" {
		t.Errorf("AvgResponse = %q", m.AvgResponse)
	}
	if m.Total != 4 || m.Answered != 3 {
		t.Errorf("Total/Answered = %d/%d, want 4/3", m.Total, m.Answered)
	}
	if m.AccuracyPct != 67 {
		t.Errorf("AccuracyPct = %d, want 67", m.AccuracyPct)
	}
	if m.Tier != TierNeutral {
		t.Errorf("Tier = %v, want TierNeutral", m.Tier)
	}
}

func TestSortSessionsNewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sessions := []session.Session{
		{ID: "old", StartTime: base},
		{ID: "new", StartTime: base.Add(2 * time.Hour)},
		{ID: "mid", StartTime: base.Add(time.Hour)},
	}

	SortSessions(sessions)

	want := []string{"new", "mid", "old"}
	for i, w := range want {
		if sessions[i].ID != w {
			t.Errorf("sessions[%d].ID = %q, want %q", i, sessions[i].ID, w)
		}
	}
}

func TestExcludeCurrent(t *testing.T) {
	sessions := []session.Session{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	got := ExcludeCurrent(sessions, "b")

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, s := range got {
		if s.ID == "b" {
			t.Error("current session not excluded")
		}
	}

	if got := ExcludeCurrent(sessions, ""); len(got) != 3 {
		t.Errorf("empty id filtered sessions: len = %d", len(got))
	}
}

func TestSummarize(t *testing.T) {
	sessions := []session.Session{
		{TotalDurationMs: 60000, CorrectCount: 3, IncorrectCount: 1},
		{TotalDurationMs: 30000, CorrectCount: 1, IncorrectCount: 3},
	}

	sum := Summarize(sessions)

	if sum.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", sum.Sessions)
	}
	if sum.TotalTimeMs != 90000 {
		t.Errorf("TotalTimeMs = %d, want 90000", sum.TotalTimeMs)
	}
	if sum.TotalCorrect != 4 {
		t.Errorf("TotalCorrect = %d, want 4", sum.TotalCorrect)
	}
	if sum.AccuracyPct != 50 {
		t.Errorf("AccuracyPct = %d, want 50", sum.AccuracyPct)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum.Sessions != 0 || sum.AccuracyPct != 0 {
		t.Errorf("Summarize(nil) = %+v", sum)
	}
}
