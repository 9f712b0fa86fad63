package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rshetty/quizly/internal/quiz"
	"github.com/rshetty/quizly/internal/router"
	"github.com/rshetty/quizly/internal/screen"
	"github.com/rshetty/quizly/internal/ui/layout"
	"github.com/rshetty/quizly/internal/ui/theme"
)

// DashboardScreen lists completed quizzes, newest first, with ledger
// totals on top. It reads the ledger on every render so a quiz that
// just finished shows up without any refresh step.
type DashboardScreen struct {
	ledger   *quiz.Ledger
	selected int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(ledger *quiz.Ledger) *DashboardScreen {
	return &DashboardScreen{ledger: ledger}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < s.ledger.Len()-1 {
			s.selected++
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	results := s.ledger.Results()
	if len(results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Pick a topic on the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")

	totals := s.ledger.Totals()
	statsLine := fmt.Sprintf("%d quizzes    %d questions    %d correct    %.0f%% overall",
		totals.Sessions, totals.Questions, totals.Correct, totals.Accuracy()*100)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(statsLine)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 70)))))
	b.WriteString("\n\n")

	if s.selected >= len(results) {
		s.selected = len(results) - 1
	}

	for i, r := range results {
		dateStr := r.CompletedAt.Format("Jan 02, 2006 15:04")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  grade %s  %d/%d  %.0f%%  %s",
			prefix, dateStr, r.Grade, r.CorrectCount, r.TotalCount,
			r.Accuracy()*100, r.Topic)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
