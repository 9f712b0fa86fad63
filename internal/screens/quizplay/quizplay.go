package quizplay

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/rshetty/quizly/internal/quiz"
	"github.com/rshetty/quizly/internal/quizgen"
	"github.com/rshetty/quizly/internal/router"
	"github.com/rshetty/quizly/internal/screen"
	"github.com/rshetty/quizly/internal/ui/components"
	"github.com/rshetty/quizly/internal/ui/layout"
	"github.com/rshetty/quizly/internal/ui/theme"
)

// QuizScreen walks the learner through one generated quiz: loading,
// answering, per-question feedback, and the final score with review.
type QuizScreen struct {
	session   *quiz.Session
	generator quizgen.Generator

	seq     uint64
	spin    spinner.Model
	options components.OptionList
	answers []int // chosen option per answered question, for review
	review  bool
	revPos  int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for a generation request already accepted
// by the session under the given sequence number.
func New(session *quiz.Session, generator quizgen.Generator, seq uint64) *QuizScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Selected

	return &QuizScreen{
		session:   session,
		generator: generator,
		seq:       seq,
		spin:      sp,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	snap := s.session.Snapshot()
	return tea.Batch(s.spin.Tick, s.generateCmd(s.seq, snap.Topic, snap.Grade))
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	snap := s.session.Snapshot()
	switch {
	case s.review:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Question"},
			{Key: "Esc", Description: "Score"},
		}
	case snap.Loading:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Home"},
		}
	case snap.Finished:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Review"},
			{Key: "T", Description: "New topic"},
			{Key: "Esc", Description: "Home"},
		}
	case snap.ErrMsg != "":
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Home"},
		}
	case snap.Answered():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓ Enter", Description: "Select"},
			{Key: "Esc", Description: "Home"},
		}
	}
}

// generateCmd runs the generation request off the UI loop.
func (s *QuizScreen) generateCmd(seq uint64, topic string, grade quiz.Grade) tea.Cmd {
	return func() tea.Msg {
		questions, err := s.generator.Generate(context.Background(), quizgen.Request{
			Topic: topic,
			Grade: grade,
		})
		return GenerationDoneMsg{Seq: seq, Questions: questions, Err: err}
	}
}

// syncOptions rebuilds the option list for the current question.
func (s *QuizScreen) syncOptions() {
	snap := s.session.Snapshot()
	if q := snap.Current(); q != nil {
		s.options = components.NewOptionList(q.Options)
	} else {
		s.options = components.OptionList{}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case GenerationDoneMsg:
		// Already applied to the session by the app model.
		s.answers = s.answers[:0]
		s.review = false
		s.revPos = 0
		s.syncOptions()
		return s, nil

	case spinner.TickMsg:
		if !s.session.Snapshot().Loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	snap := s.session.Snapshot()
	key := msg.String()

	if s.review {
		switch key {
		case "up", "k":
			if s.revPos > 0 {
				s.revPos--
			}
		case "down", "j":
			if s.revPos < len(snap.Questions)-1 {
				s.revPos++
			}
		case "esc", "enter", "q":
			s.review = false
		}
		return s, nil
	}

	switch {
	case snap.Loading:
		if key == "esc" {
			return s, popCmd()
		}
		return s, nil

	case snap.Finished:
		switch key {
		case "enter", "r":
			if len(snap.Questions) > 0 {
				s.review = true
				s.revPos = 0
			}
		case "t":
			s.session.Reset()
			return s, popCmd()
		case "esc":
			return s, popCmd()
		}
		return s, nil

	case snap.ErrMsg != "":
		switch key {
		case "r":
			seq, ok := s.session.StartGeneration(snap.Topic, snap.Grade)
			if !ok {
				return s, nil
			}
			s.seq = seq
			return s, tea.Batch(s.spin.Tick, s.generateCmd(seq, snap.Topic, snap.Grade))
		case "esc":
			return s, popCmd()
		}
		return s, nil
	}

	// Active question.
	switch key {
	case "up", "k":
		s.options.MoveUp()
	case "down", "j":
		s.options.MoveDown()
	case "1", "2", "3", "4":
		if !snap.Answered() {
			s.choose(int(key[0] - '1'))
		}
	case "enter":
		if snap.Answered() {
			s.advance()
		} else {
			s.choose(s.options.Cursor)
		}
	case "esc":
		return s, popCmd()
	}
	return s, nil
}

// choose records the learner's pick. The session enforces that the
// first selection sticks.
func (s *QuizScreen) choose(index int) {
	if !s.session.SelectAnswer(index) {
		return
	}
	snap := s.session.Snapshot()
	if q := snap.Current(); q != nil {
		s.answers = append(s.answers, index)
		s.options.MarkAnswered(index, q.CorrectIndex)
	}
}

// advance moves to the next question or the final score.
func (s *QuizScreen) advance() {
	if !s.session.Advance() {
		return
	}
	if !s.session.Snapshot().Finished {
		s.syncOptions()
	}
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}
