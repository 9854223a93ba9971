package study

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/cardgen"
	"github.com/abhisek/flashdeck/internal/extract"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/screens/analytics"
	sess "github.com/abhisek/flashdeck/internal/session"
	"github.com/abhisek/flashdeck/internal/store"
	"github.com/abhisek/flashdeck/internal/textseg"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
)

type phase int

const (
	phasePicking phase = iota
	phaseLoading
	phaseSession
)

// StudyScreen drives the upload-to-study flow: pick a PDF, extract its
// text, generate a deck, then run the flip-card session.
type StudyScreen struct {
	repo         store.SessionRepo
	extractor    extract.Extractor
	generator    *cardgen.Generator
	autoAdvance  time.Duration
	historyLimit int

	phase   phase
	input   components.TextInput
	ctrl    *sess.Controller
	warning string
	errMsg  string

	confirmingReset bool
	loadingName     string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a new StudyScreen. startPath, when non-empty, skips the
// picker and begins extraction immediately.
func New(repo store.SessionRepo, extractor extract.Extractor, generator *cardgen.Generator, autoAdvance time.Duration, historyLimit int, startPath string) *StudyScreen {
	s := &StudyScreen{
		repo:         repo,
		extractor:    extractor,
		generator:    generator,
		autoAdvance:  autoAdvance,
		historyLimit: historyLimit,
		input:        components.NewTextInput("Path to a PDF file...", 0),
		ctrl:         sess.NewController(nil),
	}
	if startPath != "" {
		s.input.SetValue(startPath)
	}
	return s
}

func (s *StudyScreen) Init() tea.Cmd {
	if s.input.Value() != "" {
		return s.beginUpload(s.input.Value())
	}
	return s.input.Init()
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.confirmingReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "End deck"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phasePicking:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Load PDF"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseLoading:
		return nil
	default:
		hints := []layout.KeyHint{
			{Key: "Space", Description: "Flip"},
			{Key: "←/→", Description: "Navigate"},
		}
		if s.ctrl.Flipped() {
			hints = append(hints,
				layout.KeyHint{Key: "Y", Description: "Knew it"},
				layout.KeyHint{Key: "N", Description: "Didn't know"},
			)
		}
		if s.ctrl.CanFinish() {
			hints = append(hints, layout.KeyHint{Key: "F", Description: "Finish"})
		}
		hints = append(hints, layout.KeyHint{Key: "Esc/R", Description: "New deck"})
		return hints
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deckReadyMsg:
		return s.handleDeckReady(msg)

	case uploadFailedMsg:
		s.phase = phasePicking
		s.errMsg = msg.Err.Error()
		return s, s.input.Init()

	case autoAdvanceMsg:
		s.ctrl.AutoAdvance(msg.Token)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phasePicking {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirmingReset {
		switch msg.String() {
		case "y", "Y":
			s.confirmingReset = false
			return s.endDeck()
		case "n", "N", "esc":
			s.confirmingReset = false
		}
		return s, nil
	}

	switch s.phase {
	case phasePicking:
		switch msg.String() {
		case "enter":
			return s.submitPath()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case phaseLoading:
		return s, nil
	}

	// Active session keys.
	switch msg.String() {
	case "left", "h":
		s.ctrl.Navigate(-1)
	case "right", "l":
		s.ctrl.Navigate(1)
	case "space", "enter":
		s.ctrl.ToggleAnswer()
	case "y", "Y":
		if s.ctrl.Flipped() {
			return s.respond(true)
		}
	case "n", "N":
		if s.ctrl.Flipped() {
			return s.respond(false)
		}
	case "f", "F":
		if s.ctrl.CanFinish() {
			return s.finishSession()
		}
	case "esc", "r":
		s.confirmingReset = true
	}
	return s, nil
}

// submitPath validates the picked path before any extraction work. Wrong
// file types never leave the picker.
func (s *StudyScreen) submitPath() (screen.Screen, tea.Cmd) {
	path := strings.TrimSpace(s.input.Value())
	if path == "" {
		s.errMsg = "Enter the path to a PDF file."
		return s, nil
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		s.errMsg = "Please select a PDF file."
		return s, nil
	}
	return s, s.beginUpload(path)
}

func (s *StudyScreen) beginUpload(path string) tea.Cmd {
	s.phase = phaseLoading
	s.errMsg = ""
	s.warning = ""
	s.loadingName = filepath.Base(path)

	extractor := s.extractor
	generator := s.generator
	return func() tea.Msg {
		if err := extract.ValidatePDF(path); err != nil {
			return uploadFailedMsg{Err: err}
		}
		text, err := extractor.Extract(context.Background(), path)
		if err != nil {
			return uploadFailedMsg{Err: err}
		}
		deck := generator.Generate(textseg.Segment(text))
		return deckReadyMsg{Deck: deck, SourceName: filepath.Base(path)}
	}
}

func (s *StudyScreen) handleDeckReady(msg deckReadyMsg) (screen.Screen, tea.Cmd) {
	if len(msg.Deck) == 0 {
		s.phase = phasePicking
		s.errMsg = "No flashcards could be generated from this PDF."
		return s, s.input.Init()
	}
	if len(msg.Deck) < cardgen.MinDeckSize {
		s.warning = "This PDF had limited extractable text, so the deck is smaller than usual."
	}
	s.ctrl.Start(msg.Deck, msg.SourceName)
	s.phase = phaseSession
	return s, nil
}

func (s *StudyScreen) respond(knewIt bool) (screen.Screen, tea.Cmd) {
	token, ok := s.ctrl.RecordResponse(knewIt)
	if !ok {
		return s, nil
	}
	return s, tea.Tick(s.autoAdvance, func(time.Time) tea.Msg {
		return autoAdvanceMsg{Token: token}
	})
}

func (s *StudyScreen) finishSession() (screen.Screen, tea.Cmd) {
	done, err := s.ctrl.Finish()
	if err != nil {
		return s, nil
	}
	return s, s.persistAndShow(done)
}

// endDeck finalizes a session abandoned mid-deck. Partial progress is
// persisted the same way a finished session is, then the picker returns.
func (s *StudyScreen) endDeck() (screen.Screen, tea.Cmd) {
	done := s.ctrl.Reset()
	s.phase = phasePicking
	s.warning = ""
	s.errMsg = ""
	s.input.SetValue("")
	if done == nil {
		return s, s.input.Init()
	}
	repo := s.repo
	return s, tea.Batch(s.input.Init(), func() tea.Msg {
		_ = repo.Append(context.Background(), done)
		return nil
	})
}

func (s *StudyScreen) persistAndShow(done *sess.Session) tea.Cmd {
	repo := s.repo
	limit := s.historyLimit
	return func() tea.Msg {
		_ = repo.Append(context.Background(), done)
		return router.ReplaceScreenMsg{Screen: analytics.New(repo, limit)}
	}
}
