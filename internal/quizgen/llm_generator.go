package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rshetty/quizly/internal/llm"
	"github.com/rshetty/quizly/internal/quiz"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw model response before validation.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Generate produces the quiz for the given request. Transport and parse
// failures fail the call; malformed entries are dropped individually so one
// bad question does not cost the learner the whole quiz.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	count := req.Count
	if count <= 0 {
		count = g.config.QuestionCount
	}
	req.Count = count

	llmReq := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}

	questions := make([]quiz.Question, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		if err := checkEntry(q); err != nil {
			continue
		}
		questions = append(questions, quiz.Question{
			Text:         q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectAnswer,
			Explanation:  q.Explanation,
		})
	}

	return questions, nil
}

// checkEntry enforces the per-question invariants: non-empty prompt, exactly
// 4 distinct-slot options, and an in-range correct index.
func checkEntry(q questionOutput) error {
	if q.Question == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Options) != quiz.OptionCount {
		return fmt.Errorf("got %d options, want %d", len(q.Options), quiz.OptionCount)
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("option %d is empty", i)
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= quiz.OptionCount {
		return fmt.Errorf("correctAnswer %d out of range", q.CorrectAnswer)
	}
	return nil
}
