package quizplay

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rshetty/quizly/internal/quiz"
	"github.com/rshetty/quizly/internal/ui/components"
	"github.com/rshetty/quizly/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	snap := s.session.Snapshot()

	switch {
	case s.review:
		return s.renderReview(snap, width, height)
	case snap.Loading:
		return s.renderLoading(snap, width, height)
	case snap.Finished:
		return s.renderFinished(snap, width, height)
	case snap.ErrMsg != "":
		return s.renderError(snap, width, height)
	case snap.Current() != nil:
		return s.renderQuestion(snap, width, height)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Hint.Render("Nothing to show yet."))
}

func (s *QuizScreen) renderLoading(snap quiz.Snapshot, width, height int) string {
	line := fmt.Sprintf("%s Writing your quiz on %q for grade %s...",
		s.spin.View(), snap.Topic, snap.Grade)
	hint := theme.Hint.Render("This usually takes a few seconds.")
	content := line + "\n\n" + hint
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderError(snap quiz.Snapshot, width, height int) string {
	title := theme.Incorrect.Render("Quiz generation failed")
	msg := lipgloss.NewStyle().Foreground(theme.Text).Render(snap.ErrMsg)
	hint := theme.Hint.Render("Press R to retry or Esc to go back.")
	content := title + "\n\n" + msg + "\n\n" + hint
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderQuestion(snap quiz.Snapshot, width, height int) string {
	q := snap.Current()

	var b strings.Builder

	// Progress line: question position and running score.
	posStr := fmt.Sprintf("Question %d of %d", snap.CurrentIndex+1, len(snap.Questions))
	scoreStr := fmt.Sprintf("Score %d", snap.Score)

	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  " + posStr)
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(scoreStr + "  ")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left + strings.Repeat(" ", gap) + right)
	b.WriteString("\n")

	percent := float64(snap.CurrentIndex) / float64(len(snap.Questions))
	bar := components.NewProgressBar("  ", percent, false, width-4)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))

	if snap.Answered() {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(q, width))
	} else {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Answer with 1-4, or arrows + Enter"))
	}

	return b.String()
}

func (s *QuizScreen) renderFeedback(q *quiz.Question, width int) string {
	var verdict string
	if s.options.IsCorrect() {
		verdict = theme.Correct.Render("Correct!")
	} else {
		verdict = theme.Incorrect.Render("Not quite.")
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
	b.WriteString("\n\n")

	if q.Explanation != "" {
		expl := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-8, 70)).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expl))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Press Enter to continue")))
	return b.String()
}

func (s *QuizScreen) renderFinished(snap quiz.Snapshot, width, height int) string {
	total := len(snap.Questions)

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Quiz complete!"))
	b.WriteString("\n\n")

	if total == 0 {
		b.WriteString(theme.Subtitle.Width(width).
			Render("The generator returned no usable questions for this topic."))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Press T to try another topic")))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}

	accuracy := float64(snap.Score) / float64(total)

	scoreLine := fmt.Sprintf("%d / %d correct  ·  %.0f%%", snap.Score, total, accuracy*100)
	b.WriteString(theme.Subtitle.Width(width).
		Render(fmt.Sprintf("%s  ·  grade %s", snap.Topic, snap.Grade)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(scoreLine)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", accuracy, true, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	var remark string
	switch {
	case accuracy >= 0.9:
		remark = "Outstanding. You own this topic."
	case accuracy >= 0.7:
		remark = "Solid work. A quick review would make it stick."
	case accuracy >= 0.5:
		remark = "A good start. Check the review for the tricky ones."
	default:
		remark = "Tough one. Walk through the review and try again."
	}
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(remark))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Enter: review answers   T: new topic   Esc: home")))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *QuizScreen) renderReview(snap quiz.Snapshot, width, height int) string {
	if s.revPos < 0 || s.revPos >= len(snap.Questions) {
		return ""
	}
	q := snap.Questions[s.revPos]

	chosen := quiz.NoSelection
	if s.revPos < len(s.answers) {
		chosen = s.answers[s.revPos]
	}

	var b strings.Builder

	head := fmt.Sprintf("Review %d / %d", s.revPos+1, len(snap.Questions))
	b.WriteString(theme.Title.Width(width).Render(head))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	list := components.NewOptionList(q.Options)
	list.MarkAnswered(chosen, q.CorrectIndex)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.View()))
	b.WriteString("\n")

	if q.Explanation != "" {
		expl := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-8, 70)).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expl))
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
