package quizgen

// DefaultQuestionCount is how many questions a standard quiz requests.
const DefaultQuestionCount = 20

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// QuestionCount is the number of questions requested per quiz.
	QuestionCount int

	// MaxTokens is the token budget for the model response. A 20-question
	// quiz with explanations needs a generous budget.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		QuestionCount: DefaultQuestionCount,
		MaxTokens:     8192,
		Temperature:   0.7,
	}
}
