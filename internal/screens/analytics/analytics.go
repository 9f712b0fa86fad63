package analytics

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rshetty/quizly/internal/quiz"
	"github.com/rshetty/quizly/internal/router"
	"github.com/rshetty/quizly/internal/screen"
	"github.com/rshetty/quizly/internal/ui/components"
	"github.com/rshetty/quizly/internal/ui/layout"
	"github.com/rshetty/quizly/internal/ui/theme"
)

// AnalyticsScreen aggregates the ledger by topic and by grade.
type AnalyticsScreen struct {
	ledger *quiz.Ledger
}

var _ screen.Screen = (*AnalyticsScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyticsScreen)(nil)

// New creates a new AnalyticsScreen.
func New(ledger *quiz.Ledger) *AnalyticsScreen {
	return &AnalyticsScreen{ledger: ledger}
}

func (s *AnalyticsScreen) Init() tea.Cmd {
	return nil
}

func (s *AnalyticsScreen) Title() string {
	return "Analytics"
}

func (s *AnalyticsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AnalyticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *AnalyticsScreen) View(width, height int) string {
	topics := s.ledger.ByTopic()
	if len(topics) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing to chart yet. Finish a quiz first!")
	}

	barWidth := min(width-8, 64)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Accuracy by topic")))
	b.WriteString("\n\n")

	// Topic labels are padded to a shared width so the bars align.
	labelWidth := 0
	for _, ts := range topics {
		if n := utf8.RuneCountInString(ts.Topic); n > labelWidth {
			labelWidth = n
		}
	}
	if labelWidth > 28 {
		labelWidth = 28
	}

	for _, ts := range topics {
		label := fmt.Sprintf("%-*s", labelWidth, truncate(ts.Topic, labelWidth))

		bar := components.NewProgressBar(label, ts.Accuracy(), true, barWidth)
		line := bar.View() +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  ×%d", ts.Sessions))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("By grade")))
	b.WriteString("\n\n")

	byGrade := s.ledger.ByGrade()
	for _, g := range []quiz.Grade{quiz.Grade11, quiz.Grade12} {
		stats, ok := byGrade[g]
		if !ok || stats.Sessions == 0 {
			continue
		}
		line := fmt.Sprintf("Grade %s    %d quizzes    %d/%d correct    %.0f%%",
			g, stats.Sessions, stats.Correct, stats.Questions, stats.Accuracy()*100)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
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

// truncate shortens s to at most w runes, replacing the tail with an
// ellipsis. Topics are free text, so slicing must not split a rune.
func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w-1]) + "…"
}
