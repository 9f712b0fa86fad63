package pages

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rshetty/quizly/internal/router"
	"github.com/rshetty/quizly/internal/screen"
	"github.com/rshetty/quizly/internal/ui/layout"
	"github.com/rshetty/quizly/internal/ui/theme"
)

// PageScreen renders a static informational page.
type PageScreen struct {
	title string
	body  string
}

var _ screen.Screen = (*PageScreen)(nil)
var _ screen.KeyHintProvider = (*PageScreen)(nil)

// New creates a static page with the given title and body text.
func New(title, body string) *PageScreen {
	return &PageScreen{title: title, body: body}
}

func (p *PageScreen) Init() tea.Cmd {
	return nil
}

func (p *PageScreen) Title() string {
	return p.title
}

func (p *PageScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return p, nil
}

func (p *PageScreen) View(width, height int) string {
	bodyWidth := width - 12
	if bodyWidth > 68 {
		bodyWidth = 68
	}
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	content := theme.Title.Width(bodyWidth).Render(p.title) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Width(bodyWidth).Render(p.body)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
