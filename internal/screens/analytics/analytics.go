package analytics

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/report"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	sess "github.com/abhisek/flashdeck/internal/session"
	"github.com/abhisek/flashdeck/internal/store"
	"github.com/abhisek/flashdeck/internal/ui/layout"
)

// AnalyticsScreen shows the current session in detail plus the stored
// history, newest first.
type AnalyticsScreen struct {
	repo         store.SessionRepo
	historyLimit int

	loaded  bool
	errMsg  string
	current *sess.Session
	history []sess.Session
	summary report.Summary

	selected int
	expanded map[int]bool

	confirmingClear bool
}

var _ screen.Screen = (*AnalyticsScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyticsScreen)(nil)

type loadedMsg struct {
	Current  *sess.Session
	Sessions []sess.Session
	Err      error
}

type clearedMsg struct {
	Err error
}

// New creates a new AnalyticsScreen backed by the given repository.
func New(repo store.SessionRepo, historyLimit int) *AnalyticsScreen {
	return &AnalyticsScreen{
		repo:         repo,
		historyLimit: historyLimit,
		expanded:     make(map[int]bool),
	}
}

func (a *AnalyticsScreen) Init() tea.Cmd {
	return a.loadCmd()
}

func (a *AnalyticsScreen) Title() string {
	return "Analytics"
}

func (a *AnalyticsScreen) KeyHints() []layout.KeyHint {
	if a.confirmingClear {
		return []layout.KeyHint{
			{Key: "Y", Description: "Clear everything"},
			{Key: "N", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: "Select"},
		{Key: "Enter", Description: "Expand"},
	}
	if a.summary.Sessions > 0 {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Clear data"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (a *AnalyticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return a.handleLoaded(msg)

	case clearedMsg:
		if msg.Err != nil {
			a.errMsg = msg.Err.Error()
			return a, nil
		}
		return a, a.loadCmd()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *AnalyticsScreen) loadCmd() tea.Cmd {
	repo := a.repo
	return func() tea.Msg {
		ctx := context.Background()
		current, err := repo.ReadCurrent(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}
		all, err := repo.ReadAll(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}
		return loadedMsg{Current: current, Sessions: all}
	}
}

func (a *AnalyticsScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	a.loaded = true
	if msg.Err != nil {
		a.errMsg = msg.Err.Error()
		return a, nil
	}

	a.errMsg = ""
	a.current = msg.Current
	a.summary = report.Summarize(msg.Sessions)

	var currentID string
	if msg.Current != nil {
		currentID = msg.Current.ID
	}
	history := report.ExcludeCurrent(msg.Sessions, currentID)
	report.SortSessions(history)
	if a.historyLimit > 0 && len(history) > a.historyLimit {
		history = history[:a.historyLimit]
	}
	a.history = history

	a.selected = 0
	a.expanded = make(map[int]bool)
	return a, nil
}

func (a *AnalyticsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if a.confirmingClear {
		switch msg.String() {
		case "y", "Y":
			a.confirmingClear = false
			return a, a.clearCmd()
		case "n", "N", "esc":
			a.confirmingClear = false
		}
		return a, nil
	}

	switch msg.String() {
	case "up", "k":
		if a.selected > 0 {
			a.selected--
		}
	case "down", "j":
		if a.selected < len(a.history)-1 {
			a.selected++
		}
	case "enter", "space":
		if len(a.history) > 0 {
			a.expanded[a.selected] = !a.expanded[a.selected]
		}
	case "c", "C":
		if a.summary.Sessions > 0 {
			a.confirmingClear = true
		}
	case "esc":
		return a, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return a, nil
}

func (a *AnalyticsScreen) clearCmd() tea.Cmd {
	repo := a.repo
	return func() tea.Msg {
		return clearedMsg{Err: repo.ClearAll(context.Background())}
	}
}
