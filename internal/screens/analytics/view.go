package analytics

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/report"
	sess "github.com/abhisek/flashdeck/internal/session"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

const questionPreviewWidth = 100

func (a *AnalyticsScreen) View(width, height int) string {
	if a.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + a.errMsg)
	}
	if !a.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading analytics...")
	}
	if a.confirmingClear {
		return renderClearConfirm(width)
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(a.renderSummary(width))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render("  Current Session"))
	b.WriteString("\n")
	if a.current == nil {
		b.WriteString(theme.Hint.Render("  No session in progress. Finish a deck to see it here."))
		b.WriteString("\n")
	} else {
		b.WriteString(renderSessionCard(a.current, true, false, width))
	}

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("  Session History"))
	b.WriteString("\n")
	if len(a.history) == 0 {
		b.WriteString(theme.Hint.Render("  No past sessions yet."))
		b.WriteString("\n")
	}
	for i := range a.history {
		s := &a.history[i]
		b.WriteString(renderSessionCard(s, a.expanded[i], i == a.selected, width))
	}

	return b.String()
}

func (a *AnalyticsScreen) renderSummary(width int) string {
	sum := a.summary
	line := fmt.Sprintf("  %d sessions   %s studied   %d correct answers   %d%% overall accuracy",
		sum.Sessions,
		report.FormatDuration(sum.TotalTimeMs),
		sum.TotalCorrect,
		sum.AccuracyPct,
	)
	return theme.Title.Render("  Study Analytics") + "\n" + theme.Body.Render(line)
}

func renderClearConfirm(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" +
			theme.Title.Render("Clear all analytics data?") + "\n\n" +
			theme.Body.Render("Every stored session will be deleted. This cannot be undone.") + "\n\n" +
			theme.Hint.Render("[Y] clear    [N] cancel"))
}

// renderSessionCard renders one session entry. Expanded entries include
// the per-question breakdown.
func renderSessionCard(s *sess.Session, expanded, selected bool, width int) string {
	m := report.SessionMetrics(s)

	marker := "  "
	if selected {
		marker = theme.Selected.Render("▸ ")
	}

	head := fmt.Sprintf("%s%s  %s", marker,
		theme.Body.Bold(true).Render(s.SourceName),
		theme.Hint.Render(s.StartTime.Format("Jan 2, 2006 3:04 PM")),
	)

	stats := fmt.Sprintf("    %s  ·  avg %s  ·  %d/%d answered  ·  %s",
		m.Duration, m.AvgResponse, m.Answered, m.Total,
		renderAccuracy(m),
	)

	var b strings.Builder
	b.WriteString(head)
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(stats))
	b.WriteString("\n")

	if expanded {
		for _, q := range s.Questions {
			b.WriteString(renderQuestionLine(q, width))
		}
	}
	return b.String()
}

func renderQuestionLine(q sess.QuestionRecord, width int) string {
	status := report.QuestionStatus(q)

	var statusStr string
	switch status {
	case report.StatusCorrect:
		statusStr = theme.Correct.Render(status.Label())
	case report.StatusIncorrect:
		statusStr = theme.Incorrect.Render(status.Label())
	default:
		statusStr = theme.Hint.Render(status.Label())
	}

	line := fmt.Sprintf("      %2d. %s\n          %s  ·  %s\n",
		q.Index+1,
		theme.Body.Render(report.TruncateQuestion(q.QuestionText, questionPreviewWidth)),
		statusStr,
		theme.Hint.Render(report.FormatResponseTime(q.ResponseTimeMs)),
	)
	return line
}

func renderAccuracy(m report.Metrics) string {
	text := fmt.Sprintf("%d%% accuracy", m.AccuracyPct)
	switch m.Tier {
	case report.TierGood:
		return theme.Correct.Render(text)
	case report.TierNeutral:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render(text)
	default:
		return theme.Incorrect.Render(text)
	}
}
