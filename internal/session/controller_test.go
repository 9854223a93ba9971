package session

import (
	"testing"
	"time"

	"github.com/abhisek/flashdeck/internal/cardgen"
)

// fakeClock advances on demand so response times are deterministic.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testDeck(n int) []cardgen.Flashcard {
	deck := make([]cardgen.Flashcard, n)
	for i := range deck {
		deck[i] = cardgen.Flashcard{
			Question: "Q" + string(rune('A'+i)),
			Answer:   "A" + string(rune('A'+i)),
		}
	}
	return deck
}

func TestStartCreatesRecordPerCard(t *testing.T) {
	clock := newFakeClock()
	c := NewController(clock.now)

	c.Start(testDeck(5), "notes.pdf")

	if c.Phase() != PhaseInSession {
		t.Fatalf("Phase = %v, want PhaseInSession", c.Phase())
	}
	s := c.Session()
	if s.SourceName != "notes.pdf" {
		t.Errorf("SourceName = %q", s.SourceName)
	}
	if s.ID == "" {
		t.Error("session ID is empty")
	}
	if len(s.Questions) != 5 {
		t.Fatalf("len(Questions) = %d, want 5", len(s.Questions))
	}
	for i, q := range s.Questions {
		if q.Index != i {
			t.Errorf("Questions[%d].Index = %d", i, q.Index)
		}
		if q.Answered || q.Correct != nil {
			t.Errorf("Questions[%d] pre-answered", i)
		}
	}
}

func TestSessionIDsUnique(t *testing.T) {
	clock := newFakeClock()
	c := NewController(clock.now)

	c.Start(testDeck(1), "a.pdf")
	id1 := c.Session().ID
	c.Reset()
	c.Start(testDeck(1), "b.pdf")
	id2 := c.Session().ID

	if id1 == id2 {
		t.Errorf("two sessions share id %q", id1)
	}
}

func TestNavigateClamps(t *testing.T) {
	c := NewController(newFakeClock().now)
	c.Start(testDeck(3), "x.pdf")

	if c.Navigate(-1) {
		t.Error("Navigate(-1) succeeded at index 0")
	}
	if !c.Navigate(1) || c.CardIndex() != 1 {
		t.Errorf("after Navigate(1), index = %d, want 1", c.CardIndex())
	}
	c.Navigate(1)
	if c.Navigate(1) {
		t.Error("Navigate(1) succeeded at last card")
	}
	if c.CardIndex() != 2 {
		t.Errorf("index = %d, want 2", c.CardIndex())
	}
}

func TestNavigateResetsFlip(t *testing.T) {
	c := NewController(newFakeClock().now)
	c.Start(testDeck(3), "x.pdf")

	c.ToggleAnswer()
	if !c.Flipped() {
		t.Fatal("card not flipped")
	}
	c.Navigate(1)
	if c.Flipped() {
		t.Error("flip state survived navigation")
	}
}

func TestRecordResponseTiming(t *testing.T) {
	clock := newFakeClock()
	c := NewController(clock.now)
	c.Start(testDeck(2), "x.pdf")

	clock.advance(1500 * time.Millisecond)
	c.ToggleAnswer()
	clock.advance(700 * time.Millisecond)
	_, ok := c.RecordResponse(true)

	if !ok {
		t.Fatal("RecordResponse returned ok=false before last card")
	}
	rec := c.Session().Questions[0]
	// Timed from card display, not from the flip.
	if rec.ResponseTimeMs != 2200 {
		t.Errorf("ResponseTimeMs = %d, want 2200", rec.ResponseTimeMs)
	}
	if !rec.Answered || rec.Correct == nil || !*rec.Correct {
		t.Errorf("record not marked correct: %+v", rec)
	}
	if c.Session().CorrectCount != 1 || c.Session().IncorrectCount != 0 {
		t.Errorf("counters = %d/%d, want 1/0",
			c.Session().CorrectCount, c.Session().IncorrectCount)
	}
}

func TestRecordResponseReplacesPrior(t *testing.T) {
	c := NewController(newFakeClock().now)
	c.Start(testDeck(2), "x.pdf")

	c.RecordResponse(true)
	c.RecordResponse(false)
	c.RecordResponse(false)

	s := c.Session()
	if s.CorrectCount != 0 || s.IncorrectCount != 1 {
		t.Errorf("counters = %d/%d, want 0/1", s.CorrectCount, s.IncorrectCount)
	}
	if s.AnsweredCount() != 1 {
		t.Errorf("AnsweredCount = %d, want 1", s.AnsweredCount())
	}
}

func TestRecordResponseOnLastCard(t *testing.T) {
	c := NewController(newFakeClock().now)
	c.Start(testDeck(1), "x.pdf")

	if _, ok := c.RecordResponse(true); ok {
		t.Error("ok=true on last card, want false")
	}
}

func TestAutoAdvanceAppliesFreshToken(t *testing.T) {
	c := NewController(newFakeClock().now)
	c.Start(testDeck(3), "x.pdf")

	token, ok := c.RecordResponse(true)
	if !ok {
		t.Fatal("no token issued")
	}
	if !c.AutoAdvance(token) {
		t.Fatal("fresh token rejected")
	}
	if c.CardIndex() != 1 {
		t.Errorf("index = %d, want 1", c.CardIndex())
	}
}

func TestAutoAdvanceDropsStaleToken(t *testing.T) {
	c := NewController(newFakeClock().now)
	c.Start(testDeck(3), "x.pdf")

	token, _ := c.RecordResponse(true)
	c.Navigate(1) // user moved first

	if c.AutoAdvance(token) {
		t.Error("stale token applied")
	}
	if c.CardIndex() != 1 {
		t.Errorf("index = %d, want 1", c.CardIndex())
	}
}

func TestAutoAdvanceDroppedAfterFinish(t *testing.T) {
	c := NewController(newFakeClock().now)
	c.Start(testDeck(2), "x.pdf")

	c.Navigate(1)
	token, _ := c.RecordResponse(true) // last card: no token, ok=false
	_ = token
	done, err := c.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if done == nil {
		t.Fatal("Finish returned nil session")
	}
	if c.AutoAdvance(AdvanceToken(1)) {
		t.Error("AutoAdvance succeeded after finish")
	}
}

func TestFinishOnlyOnLastCard(t *testing.T) {
	c := NewController(newFakeClock().now)
	c.Start(testDeck(3), "x.pdf")

	if _, err := c.Finish(); err != ErrNotLastCard {
		t.Errorf("Finish err = %v, want ErrNotLastCard", err)
	}
	c.Navigate(1)
	c.Navigate(1)
	if _, err := c.Finish(); err != nil {
		t.Errorf("Finish on last card: %v", err)
	}
}

func TestFinishComputesAverages(t *testing.T) {
	clock := newFakeClock()
	c := NewController(clock.now)
	c.Start(testDeck(3), "x.pdf")

	clock.advance(1000 * time.Millisecond)
	c.RecordResponse(true)
	c.Navigate(1)
	clock.advance(2001 * time.Millisecond)
	c.RecordResponse(false)
	c.Navigate(1)
	// Third card left unanswered.
	clock.advance(500 * time.Millisecond)

	done, err := c.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if done.EndTime == nil {
		t.Fatal("EndTime not set")
	}
	if done.TotalDurationMs != 3501 {
		t.Errorf("TotalDurationMs = %d, want 3501", done.TotalDurationMs)
	}
	// (1000 + 2001) / 2 answered, rounded.
	if done.AverageResponseTimeMs != 1501 {
		t.Errorf("AverageResponseTimeMs = %d, want 1501", done.AverageResponseTimeMs)
	}
	if c.Phase() != PhaseFinished {
		t.Errorf("Phase = %v, want PhaseFinished", c.Phase())
	}
	if c.Session() != nil {
		t.Error("controller kept the session after finish")
	}
}

func TestFinishNoAnswersAverageZero(t *testing.T) {
	c := NewController(newFakeClock().now)
	c.Start(testDeck(1), "x.pdf")

	done, err := c.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if done.AverageResponseTimeMs != 0 {
		t.Errorf("AverageResponseTimeMs = %d, want 0", done.AverageResponseTimeMs)
	}
}

func TestResetMidSessionKeepsPartialScores(t *testing.T) {
	clock := newFakeClock()
	c := NewController(clock.now)
	c.Start(testDeck(10), "big.pdf")

	clock.advance(800 * time.Millisecond)
	c.RecordResponse(true)
	c.Navigate(1)
	clock.advance(1200 * time.Millisecond)
	c.RecordResponse(false)

	done := c.Reset()

	if done == nil {
		t.Fatal("Reset returned nil for an in-progress session")
	}
	if done.CorrectCount != 1 || done.IncorrectCount != 1 {
		t.Errorf("counters = %d/%d, want 1/1", done.CorrectCount, done.IncorrectCount)
	}
	if got := done.AnsweredCount(); got != 2 {
		t.Errorf("AnsweredCount = %d, want 2", got)
	}
	if done.EndTime == nil {
		t.Error("EndTime not set on reset")
	}
	if c.Phase() != PhaseIdle {
		t.Errorf("Phase = %v, want PhaseIdle", c.Phase())
	}
}

func TestResetWhenIdle(t *testing.T) {
	c := NewController(newFakeClock().now)

	if done := c.Reset(); done != nil {
		t.Errorf("Reset returned %v while idle, want nil", done)
	}
}

func TestNavigateRefreshesAnsweredTime(t *testing.T) {
	clock := newFakeClock()
	c := NewController(clock.now)
	c.Start(testDeck(3), "x.pdf")

	clock.advance(1000 * time.Millisecond)
	c.ToggleAnswer()
	c.RecordResponse(true)
	// Linger on the flipped, answered card, then move away.
	clock.advance(4000 * time.Millisecond)
	c.Navigate(1)

	if got := c.Session().Questions[0].ResponseTimeMs; got != 5000 {
		t.Errorf("ResponseTimeMs = %d, want 5000", got)
	}
}
