package quizgen

import (
	"context"

	"github.com/rshetty/quizly/internal/quiz"
)

// Request holds everything needed to generate one quiz.
type Request struct {
	// Topic is the learner's free-text subject, already trimmed.
	Topic string

	// Grade parameterizes difficulty and curriculum framing.
	Grade quiz.Grade

	// Count is the number of questions to ask for. The generator tolerates
	// the model returning fewer or more; callers get what survived
	// validation.
	Count int
}

// Generator produces a quiz for a topic using an LLM provider.
type Generator interface {
	// Generate returns the validated questions for the request. A transport
	// or schema failure fails the whole call; individually malformed
	// entries are dropped, so the returned slice can be shorter than
	// requested, including empty.
	Generate(ctx context.Context, req Request) ([]quiz.Question, error)
}
