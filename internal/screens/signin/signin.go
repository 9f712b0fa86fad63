package signin

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rshetty/quizly/internal/router"
	"github.com/rshetty/quizly/internal/screen"
	"github.com/rshetty/quizly/internal/ui/components"
	"github.com/rshetty/quizly/internal/ui/layout"
	"github.com/rshetty/quizly/internal/ui/theme"
)

// SignInScreen is the entry gate. There is no real authentication
// behind it: both actions succeed and land on the home screen.
type SignInScreen struct {
	homeFactory func() screen.Screen
	buttons     []components.Button
	cursor      int
}

var _ screen.Screen = (*SignInScreen)(nil)
var _ screen.KeyHintProvider = (*SignInScreen)(nil)

// New creates a SignInScreen that transitions to the screen produced
// by homeFactory.
func New(homeFactory func() screen.Screen) *SignInScreen {
	s := &SignInScreen{homeFactory: homeFactory}

	enter := func() tea.Cmd {
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.homeFactory()}
		}
	}

	s.buttons = []components.Button{
		components.NewButton("SIGN IN", true, enter),
		components.NewButton("CONTINUE AS GUEST", false, enter),
	}
	return s
}

func (s *SignInScreen) Init() tea.Cmd {
	return nil
}

func (s *SignInScreen) Title() string {
	return ""
}

func (s *SignInScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SignInScreen) moveCursor(delta int) {
	s.buttons[s.cursor].Active = false
	s.cursor = (s.cursor + delta + len(s.buttons)) % len(s.buttons)
	s.buttons[s.cursor].Active = true
}

func (s *SignInScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "up", "shift+tab":
			s.moveCursor(-1)
			return s, nil
		case "right", "down", "tab":
			s.moveCursor(1)
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.buttons[s.cursor], cmd = s.buttons[s.cursor].Update(msg)
	return s, cmd
}

func (s *SignInScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Render(RenderBanner(width)))
	sections = append(sections, "")
	sections = append(sections, theme.Subtitle.Render("Twenty questions on any topic, grades 11 and 12"))
	sections = append(sections, "")

	views := make([]string, len(s.buttons))
	for i, b := range s.buttons {
		views[i] = b.View()
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, views[0], "   ", views[1]))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(content))
}
