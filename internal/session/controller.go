package session

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/flashdeck/internal/cardgen"
)

// Phase is the controller's top-level state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInSession
	PhaseFinished
)

// AdvanceToken identifies a scheduled auto-advance. Every transition bumps
// the controller's sequence, so a token captured before a manual navigation
// (or finish/reset) no longer matches and the pending advance is dropped.
type AdvanceToken int

// ErrNotLastCard is returned by Finish when the session isn't on the final card.
var ErrNotLastCard = errors.New("finish is only available on the last card")

// ErrNoSession is returned by operations that need an active session.
var ErrNoSession = errors.New("no active session")

// Controller owns the deck and the live session, and applies the study
// state-machine transitions. It is not safe for concurrent use; all
// transitions happen on the single UI event loop.
type Controller struct {
	now func() time.Time

	phase   Phase
	deck    []cardgen.Flashcard
	sess    *Session
	index   int
	flipped bool

	sessionStart time.Time
	shownAt      time.Time
	seq          int
}

// NewController creates an idle controller. A nil clock uses time.Now.
func NewController(now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{now: now}
}

// Phase returns the current state-machine phase.
func (c *Controller) Phase() Phase { return c.phase }

// Deck returns the active deck (nil when idle).
func (c *Controller) Deck() []cardgen.Flashcard { return c.deck }

// Session returns the live session (nil when idle). Callers must treat it
// as read-only; all mutation goes through transitions.
func (c *Controller) Session() *Session { return c.sess }

// CardIndex returns the index of the displayed card.
func (c *Controller) CardIndex() int { return c.index }

// Flipped reports whether the answer side is showing.
func (c *Controller) Flipped() bool { return c.flipped }

// Current returns the displayed card, or ok=false when no session is active.
func (c *Controller) Current() (cardgen.Flashcard, bool) {
	if c.phase != PhaseInSession || len(c.deck) == 0 {
		return cardgen.Flashcard{}, false
	}
	return c.deck[c.index], true
}

// CanGoBack reports whether backward navigation is possible.
func (c *Controller) CanGoBack() bool {
	return c.phase == PhaseInSession && c.index > 0
}

// CanGoForward reports whether forward navigation is possible.
func (c *Controller) CanGoForward() bool {
	return c.phase == PhaseInSession && c.index < len(c.deck)-1
}

// CanFinish reports whether the finish transition is reachable: the last
// card must be the one displayed.
func (c *Controller) CanFinish() bool {
	return c.phase == PhaseInSession && len(c.deck) > 0 && c.index == len(c.deck)-1
}

// Start begins a session over deck. One QuestionRecord is created per card
// and the first card's response timer starts immediately.
func (c *Controller) Start(deck []cardgen.Flashcard, sourceName string) {
	now := c.now()

	records := make([]QuestionRecord, len(deck))
	for i, card := range deck {
		records[i] = QuestionRecord{Index: i, QuestionText: card.Question}
	}

	c.deck = deck
	c.sess = &Session{
		ID:         newSessionID(now),
		SourceName: sourceName,
		StartTime:  now,
		Questions:  records,
	}
	c.phase = PhaseInSession
	c.index = 0
	c.flipped = false
	c.sessionStart = now
	c.shownAt = now
	c.seq++
}

// Navigate moves the displayed card by delta, clamped to the deck bounds.
// Out-of-range targets are a no-op. Before moving, a flipped and already
// answered card gets its elapsed display time committed as its response
// time (this refreshes the earlier measurement when the user lingers).
func (c *Controller) Navigate(delta int) bool {
	if c.phase != PhaseInSession {
		return false
	}
	target := c.index + delta
	if target < 0 || target >= len(c.deck) {
		return false
	}

	if c.flipped {
		rec := &c.sess.Questions[c.index]
		if rec.Answered {
			rec.ResponseTimeMs = c.elapsedMs()
		}
	}

	c.index = target
	c.flipped = false
	c.shownAt = c.now()
	c.seq++
	return true
}

// ToggleAnswer flips the card. It never mutates records; un-flipping
// before responding has no scoring effect.
func (c *Controller) ToggleAnswer() {
	if c.phase == PhaseInSession {
		c.flipped = !c.flipped
	}
}

// RecordResponse stores a self-assessment for the displayed card. The
// response time runs from the instant the card became current, not from
// the reveal. A repeated response replaces the previous one so the
// correct/incorrect counters never exceed the question count. The returned
// token schedules an auto-advance; ok is false on the last card, which
// instead awaits Finish.
func (c *Controller) RecordResponse(knewIt bool) (token AdvanceToken, ok bool) {
	if c.phase != PhaseInSession || len(c.deck) == 0 {
		return 0, false
	}

	rec := &c.sess.Questions[c.index]
	if rec.Answered && rec.Correct != nil {
		if *rec.Correct {
			c.sess.CorrectCount--
		} else {
			c.sess.IncorrectCount--
		}
	}

	rec.Answered = true
	rec.Correct = &knewIt
	rec.ResponseTimeMs = c.elapsedMs()

	if knewIt {
		c.sess.CorrectCount++
	} else {
		c.sess.IncorrectCount++
	}

	c.seq++
	if c.index < len(c.deck)-1 {
		return AdvanceToken(c.seq), true
	}
	return 0, false
}

// AutoAdvance applies a scheduled advance. Stale tokens (any transition
// happened since RecordResponse issued them) are dropped.
func (c *Controller) AutoAdvance(token AdvanceToken) bool {
	if c.phase != PhaseInSession || token != AdvanceToken(c.seq) {
		return false
	}
	return c.Navigate(1)
}

// Finish finalizes the session and hands it over to the caller for
// persistence. It is only reachable while the last card is displayed.
func (c *Controller) Finish() (*Session, error) {
	if c.phase != PhaseInSession || c.sess == nil {
		return nil, ErrNoSession
	}
	if !c.CanFinish() {
		return nil, ErrNotLastCard
	}

	done := c.finalize()
	c.phase = PhaseFinished
	c.deck = nil
	c.sess = nil
	c.seq++
	return done, nil
}

// Reset finalizes any in-progress session exactly like Finish, partial
// sessions included, and returns to Idle. The finalized session is
// returned for persistence, or nil when there was nothing in progress.
func (c *Controller) Reset() *Session {
	var done *Session
	if c.phase == PhaseInSession && c.sess != nil {
		done = c.finalize()
	}
	c.phase = PhaseIdle
	c.deck = nil
	c.sess = nil
	c.index = 0
	c.flipped = false
	c.seq++
	return done
}

// finalize stamps end time, total duration, and the average response time
// over answered questions (0 when none were answered).
func (c *Controller) finalize() *Session {
	now := c.now()
	s := c.sess
	s.EndTime = &now
	s.TotalDurationMs = now.Sub(c.sessionStart).Milliseconds()

	sum, n := 0, 0
	for _, q := range s.Questions {
		if q.Answered {
			sum += q.ResponseTimeMs
			n++
		}
	}
	if n > 0 {
		s.AverageResponseTimeMs = int(math.Round(float64(sum) / float64(n)))
	}
	return s
}

func (c *Controller) elapsedMs() int {
	return int(c.now().Sub(c.shownAt).Milliseconds())
}

// newSessionID derives a unique id from the wall clock. The short random
// suffix keeps ids unique across instances started the same millisecond.
func newSessionID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
