package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rshetty/quizly/internal/llm"
	"github.com/rshetty/quizly/internal/quiz"
)

func quizJSON(entries ...string) json.RawMessage {
	return json.RawMessage(`{"questions":[` + strings.Join(entries, ",") + `]}`)
}

func goodEntry(text string) string {
	return `{"question":"` + text + `","options":["a","b","c","d"],"correctAnswer":1,"explanation":"b is right"}`
}

func testRequest() Request {
	return Request{Topic: "cell division", Grade: quiz.Grade11, Count: 2}
}

func TestGenerate_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: quizJSON(goodEntry("Q1"), goodEntry("Q2"))},
	)
	g := New(mock, DefaultConfig())

	qs, err := g.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	q := qs[0]
	if q.Text != "Q1" || q.CorrectIndex != 1 || len(q.Options) != quiz.OptionCount {
		t.Errorf("unexpected question: %+v", q)
	}
	if q.Explanation == "" {
		t.Error("explanation not carried through")
	}
}

func TestGenerate_RequestCarriesTopicAndGrade(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: quizJSON(goodEntry("Q1"))},
	)
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(mock.Calls))
	}
	sent := mock.Calls[0]
	if sent.Schema != QuizSchema {
		t.Error("request did not carry the quiz schema")
	}
	body := sent.Messages[0].Content
	if !strings.Contains(body, "cell division") || !strings.Contains(body, "11") {
		t.Errorf("prompt missing topic or grade: %q", body)
	}
}

func TestGenerate_DropsMalformedEntries(t *testing.T) {
	entries := []string{
		goodEntry("ok-1"),
		`{"question":"three options","options":["a","b","c"],"correctAnswer":0,"explanation":"x"}`,
		`{"question":"bad index","options":["a","b","c","d"],"correctAnswer":4,"explanation":"x"}`,
		`{"question":"","options":["a","b","c","d"],"correctAnswer":0,"explanation":"x"}`,
		`{"question":"empty option","options":["a","","c","d"],"correctAnswer":0,"explanation":"x"}`,
		goodEntry("ok-2"),
	}
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: quizJSON(entries...)},
	)
	g := New(mock, DefaultConfig())

	qs, err := g.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2 survivors", len(qs))
	}
	if qs[0].Text != "ok-1" || qs[1].Text != "ok-2" {
		t.Errorf("wrong survivors: %q, %q", qs[0].Text, qs[1].Text)
	}
}

func TestGenerate_CountMismatchTolerated(t *testing.T) {
	// Asked for 2, model returned 3. Not an error.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: quizJSON(goodEntry("a"), goodEntry("b"), goodEntry("c"))},
	)
	g := New(mock, DefaultConfig())

	qs, err := g.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 3 {
		t.Errorf("got %d questions, want all 3 returned", len(qs))
	}
}

func TestGenerate_EmptyQuizIsNotAnError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)},
	)
	g := New(mock, DefaultConfig())

	qs, err := g.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 0 {
		t.Errorf("got %d questions, want 0", len(qs))
	}
}

func TestGenerate_TransportFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got %T", err)
	}
}

func TestGenerate_UnparseableContent(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json at all`)},
	)
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testRequest()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGenerate_ZeroCountUsesConfigDefault(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: quizJSON(goodEntry("a"))},
	)
	cfg := DefaultConfig()
	cfg.QuestionCount = 7
	g := New(mock, cfg)

	req := testRequest()
	req.Count = 0
	if _, err := g.Generate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := mock.Calls[0].Messages[0].Content; !strings.Contains(body, "7") {
		t.Errorf("prompt did not use config default count: %q", body)
	}
}
