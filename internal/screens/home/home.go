package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rshetty/quizly/internal/quiz"
	"github.com/rshetty/quizly/internal/quizgen"
	"github.com/rshetty/quizly/internal/router"
	"github.com/rshetty/quizly/internal/screen"
	"github.com/rshetty/quizly/internal/screens/analytics"
	"github.com/rshetty/quizly/internal/screens/dashboard"
	"github.com/rshetty/quizly/internal/screens/pages"
	"github.com/rshetty/quizly/internal/screens/quizplay"
	"github.com/rshetty/quizly/internal/ui/components"
	"github.com/rshetty/quizly/internal/ui/layout"
	"github.com/rshetty/quizly/internal/ui/theme"
)

// focus zones on the home screen
const (
	focusTopic = iota
	focusMenu
)

// HomeScreen is the main screen: a topic prompt, suggested topics,
// and navigation to the dashboard and static pages.
type HomeScreen struct {
	session   *quiz.Session
	generator quizgen.Generator
	ledger    *quiz.Ledger

	input components.TextInput
	menu  components.Menu
	grade quiz.Grade
	focus int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// suggested topics shown as quick-start menu entries
var suggestedTopics = []string{
	"Electromagnetic induction",
	"Chemical equilibrium",
	"Genetics and inheritance",
	"Differential calculus",
}

// New creates a new HomeScreen.
func New(session *quiz.Session, generator quizgen.Generator, ledger *quiz.Ledger) *HomeScreen {
	h := &HomeScreen{
		session:   session,
		generator: generator,
		ledger:    ledger,
		input:     components.NewTextInput("Type any topic, e.g. photosynthesis...", 80),
		grade:     session.Snapshot().Grade,
	}
	if !h.grade.Valid() {
		h.grade = quiz.DefaultGrade
	}

	items := make([]components.MenuItem, 0, len(suggestedTopics)+4)
	for _, topic := range suggestedTopics {
		topic := topic
		items = append(items, components.MenuItem{
			Label: topic,
			Action: func() tea.Cmd {
				return h.startQuiz(topic)
			},
		})
	}
	items = append(items,
		components.MenuItem{Label: "DASHBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(h.ledger)}
			}
		}},
		components.MenuItem{Label: "ANALYTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: analytics.New(h.ledger)}
			}
		}},
		components.MenuItem{Label: "ABOUT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: pages.About()}
			}
		}},
		components.MenuItem{Label: "PRIVACY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: pages.Privacy()}
			}
		}},
		components.MenuItem{Label: "TERMS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: pages.Terms()}
			}
		}},
		components.MenuItem{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	h.menu = components.NewMenu(items)

	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.input.Init()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch focus"},
		{Key: "Ctrl+G", Description: "Grade"},
		{Key: "Enter", Description: "Start quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// startQuiz asks the session to begin generating and, if accepted,
// pushes the quiz screen which owns the in-flight request.
func (h *HomeScreen) startQuiz(topic string) tea.Cmd {
	seq, ok := h.session.StartGeneration(topic, h.grade)
	if !ok {
		h.input.Submit(false)
		return nil
	}
	h.input.Reset()
	play := quizplay.New(h.session, h.generator, seq)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: play}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "tab":
			if h.focus == focusTopic {
				h.focus = focusMenu
				h.input.Model.Blur()
			} else {
				h.focus = focusTopic
				return h, h.input.Model.Focus()
			}
			return h, nil
		case "ctrl+g":
			if h.grade == quiz.Grade11 {
				h.grade = quiz.Grade12
			} else {
				h.grade = quiz.Grade11
			}
			return h, nil
		}
	}

	if h.focus == focusTopic {
		if isKey && kmsg.String() == "enter" {
			return h, h.startQuiz(h.input.Value())
		}
		var cmd tea.Cmd
		h.input, cmd = h.input.Update(msg)
		return h, cmd
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := width - 8
	if cw > 72 {
		cw = 72
	}
	if cw < 30 {
		cw = 30
	}

	var sections []string

	sections = append(sections, theme.Title.Width(cw).Render("What do you want to be quizzed on?"))

	gradeStr := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("Grade %s", h.grade))
	sections = append(sections, theme.Subtitle.Width(cw).
		Render(gradeStr+lipgloss.NewStyle().Foreground(theme.TextDim).Render("  (Ctrl+G to switch)")))

	inputBox := theme.Card.Width(cw).Render(h.input.View())
	if h.focus == focusTopic {
		inputBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2).
			Width(cw).
			Render(h.input.View())
	}
	sections = append(sections, inputBox)

	menuTitle := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Or pick a topic:")
	sections = append(sections, menuTitle+"\n"+h.menu.View())

	totals := h.ledger.Totals()
	if totals.Sessions > 0 {
		statLine := fmt.Sprintf("%d quizzes taken  ·  %d/%d correct  ·  %.0f%% accuracy",
			totals.Sessions, totals.Correct, totals.Questions, totals.Accuracy()*100)
		sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).Render(statLine))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
