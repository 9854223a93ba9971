package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/cardgen"
	"github.com/abhisek/flashdeck/internal/config"
	"github.com/abhisek/flashdeck/internal/extract"
	"github.com/abhisek/flashdeck/internal/report"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	"github.com/abhisek/flashdeck/internal/screens/analytics"
	"github.com/abhisek/flashdeck/internal/screens/study"
	"github.com/abhisek/flashdeck/internal/store"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu    components.Menu
	summary report.Summary
	loaded  bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen wired to the study and analytics screens.
func New(repo store.SessionRepo, extractor extract.Extractor, generator *cardgen.Generator, cfg config.Config) *HomeScreen {
	items := []components.MenuItem{
		{Label: "STUDY NEW DECK", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: study.New(repo, extractor, generator, cfg.AutoAdvance, cfg.HistoryLimit, ""),
				}
			}
		}},
		{Label: "ANALYTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: analytics.New(repo, cfg.HistoryLimit)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h := &HomeScreen{menu: components.NewMenu(items)}
	h.loadSummary(repo)
	return h
}

// loadSummary reads the stored history synchronously. The store is local
// and small, so blocking here keeps the menu simple.
func (h *HomeScreen) loadSummary(repo store.SessionRepo) {
	if repo == nil {
		return
	}
	sessions, err := repo.ReadAll(context.Background())
	if err != nil {
		return
	}
	h.summary = report.Summarize(sessions)
	h.loaded = true
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Select"},
		{Key: "Enter", Description: "Choose"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "q" {
			return h, tea.Quit
		}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("FLASHDECK"))
	sections = append(sections, theme.Subtitle.Render("PDF flashcards in your terminal"))
	sections = append(sections, "")

	if h.loaded && h.summary.Sessions > 0 {
		blurb := fmt.Sprintf("%d sessions  ·  %s studied  ·  %d%% accuracy",
			h.summary.Sessions,
			report.FormatDuration(h.summary.TotalTimeMs),
			h.summary.AccuracyPct,
		)
		sections = append(sections, theme.Hint.Render(blurb))
	} else {
		sections = append(sections, theme.Hint.Render("No sessions yet. Study your first deck!"))
	}
	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
