package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rshetty/quizly/internal/quiz"
	"github.com/rshetty/quizly/internal/quizgen"
	"github.com/rshetty/quizly/internal/router"
	"github.com/rshetty/quizly/internal/screen"
)

type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, quizgen.Request) ([]quiz.Question, error) {
	return nil, nil
}

func newTestHome() (*HomeScreen, *quiz.Session) {
	ledger := quiz.NewLedger()
	session := quiz.NewSession(ledger)
	return New(session, stubGenerator{}, ledger), session
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestTypedTopicStartsGeneration(t *testing.T) {
	h, session := newTestHome()

	var s screen.Screen = h
	for _, r := range "osmosis" {
		s, _ = s.Update(keyPress(r))
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatal("expected PushScreenMsg")
	}

	snap := session.Snapshot()
	if !snap.Loading || snap.Topic != "osmosis" {
		t.Errorf("unexpected session state: loading=%v topic=%q", snap.Loading, snap.Topic)
	}
}

func TestEmptyTopicIsIgnored(t *testing.T) {
	h, session := newTestHome()

	var s screen.Screen = h
	s, _ = s.Update(keyPress(' '))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("blank topic should not push a screen")
	}
	if session.Snapshot().Loading {
		t.Error("blank topic should not start generation")
	}
}

func TestGradeToggle(t *testing.T) {
	h, _ := newTestHome()

	if h.grade != quiz.Grade11 {
		t.Fatalf("expected default grade 11, got %v", h.grade)
	}

	var s screen.Screen = h
	s, _ = s.Update(tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl})
	if h.grade != quiz.Grade12 {
		t.Errorf("expected grade 12 after toggle, got %v", h.grade)
	}
	s, _ = s.Update(tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl})
	if h.grade != quiz.Grade11 {
		t.Errorf("expected grade 11 after second toggle, got %v", h.grade)
	}
	_ = s
}

func TestSuggestedTopicStartsGeneration(t *testing.T) {
	h, session := newTestHome()

	var s screen.Screen = h
	// Move focus to the menu and pick the first suggested topic.
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}

	snap := session.Snapshot()
	if !snap.Loading {
		t.Fatal("expected generation to start")
	}
	if !strings.EqualFold(snap.Topic, suggestedTopics[0]) {
		t.Errorf("expected topic %q, got %q", suggestedTopics[0], snap.Topic)
	}
}
