package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/report"
	sess "github.com/abhisek/flashdeck/internal/session"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	if s.confirmingReset {
		return renderResetConfirm(width)
	}
	switch s.phase {
	case phasePicking:
		return s.renderPicker(width)
	case phaseLoading:
		return renderLoading(width, s.loadingName)
	default:
		return s.renderCard(width)
	}
}

func (s *StudyScreen) renderPicker(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Render("  Study a new deck"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("  Point me at a PDF and I will turn it into flashcards."))
	b.WriteString("\n\n")
	b.WriteString("  " + s.input.View())
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func renderLoading(width int, name string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n  Reading %s and building your deck...", name))
}

func renderResetConfirm(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" +
			theme.Title.Render("End this deck?") + "\n\n" +
			theme.Body.Render("Your progress so far will be saved to analytics.") + "\n\n" +
			theme.Hint.Render("[Y] end deck    [N] keep studying"))
}

func (s *StudyScreen) renderCard(width int) string {
	card, ok := s.ctrl.Current()
	if !ok {
		return ""
	}
	deck := s.ctrl.Deck()
	index := s.ctrl.CardIndex()
	sessData := s.ctrl.Session()

	var b strings.Builder

	// Deck info line with progress.
	infoLeft := theme.Subtitle.Render(fmt.Sprintf("  Studying: %s", sessData.SourceName))
	infoRight := theme.Hint.Render(fmt.Sprintf("Card %d / %d", index+1, len(deck)))
	pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	b.WriteString(infoLeft)
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(infoRight)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(index+1)/float64(len(deck)), width-6)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	if s.warning != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.warning))
		b.WriteString("\n\n")
	}

	// The card itself: question face or answer face.
	face := "QUESTION"
	text := card.Question
	if s.ctrl.Flipped() {
		face = "ANSWER"
		text = card.Answer
	}

	cardWidth := width - 12
	if cardWidth > 76 {
		cardWidth = 76
	}
	body := theme.Hint.Render(face) + "\n\n" + lipgloss.NewStyle().Width(cardWidth-4).Render(text)
	rendered := theme.Card.Width(cardWidth).Render(body)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(rendered))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.responseLine(index, sessData)))

	return b.String()
}

// responseLine shows what was recorded for the current card, if anything.
func (s *StudyScreen) responseLine(index int, sessData *sess.Session) string {
	rec := sessData.Questions[index]
	switch report.QuestionStatus(rec) {
	case report.StatusCorrect:
		return theme.Correct.Render(report.StatusCorrect.Label())
	case report.StatusIncorrect:
		return theme.Incorrect.Render(report.StatusIncorrect.Label())
	}
	if s.ctrl.Flipped() {
		return theme.Hint.Render("Did you know it?  [Y] yes    [N] no")
	}
	return theme.Hint.Render("Press Space to reveal the answer")
}
