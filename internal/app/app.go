package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/rshetty/quizly/internal/quiz"
	"github.com/rshetty/quizly/internal/quizgen"
	"github.com/rshetty/quizly/internal/router"
	"github.com/rshetty/quizly/internal/screen"
	"github.com/rshetty/quizly/internal/screens/home"
	"github.com/rshetty/quizly/internal/screens/quizplay"
	"github.com/rshetty/quizly/internal/screens/signin"
	"github.com/rshetty/quizly/internal/ui/layout"
)

// Options carries the dependencies injected into the root model.
type Options struct {
	Session   *quiz.Session
	Ledger    *quiz.Ledger
	Generator quizgen.Generator
	Logger    *zap.Logger

	// SkipSignIn starts directly on the home screen.
	SkipSignIn bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the sign-in gate.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Ledger == nil {
		opts.Ledger = quiz.NewLedger()
	}
	if opts.Session == nil {
		opts.Session = quiz.NewSession(opts.Ledger)
	}

	homeFactory := func() screen.Screen {
		return home.New(opts.Session, opts.Generator, opts.Ledger)
	}

	var first screen.Screen
	if opts.SkipSignIn {
		first = homeFactory()
	} else {
		first = signin.New(homeFactory)
	}

	return AppModel{
		opts:   opts,
		router: router.New(first),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case quizplay.GenerationDoneMsg:
		// Apply the result at the top level so it cannot be lost if
		// the quiz screen was left before the provider responded. The
		// session drops the message itself when the sequence is stale.
		m.opts.Session.ApplyResult(msg.Seq, msg.Questions, msg.Err)
		if msg.Err != nil {
			m.opts.Logger.Warn("quiz generation failed", zap.Error(msg.Err))
		} else {
			m.opts.Logger.Info("quiz ready",
				zap.Int("questions", len(msg.Questions)))
		}

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	totals := m.opts.Ledger.Totals()
	header := layout.RenderHeader(title, layout.HeaderStats{
		Quizzes: totals.Sessions,
		Correct: totals.Correct,
	}, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
