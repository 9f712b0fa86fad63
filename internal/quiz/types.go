package quiz

import (
	"fmt"
	"time"
)

// OptionCount is the number of choices every question carries.
const OptionCount = 4

// NoSelection marks a question with no answer chosen yet.
const NoSelection = -1

// Grade is the curriculum tier a quiz is generated for.
type Grade int

const (
	Grade11 Grade = 11
	Grade12 Grade = 12
)

// DefaultGrade is used when the learner has never picked a grade.
const DefaultGrade = Grade11

// Valid reports whether g is one of the supported grades.
func (g Grade) Valid() bool {
	return g == Grade11 || g == Grade12
}

func (g Grade) String() string {
	switch g {
	case Grade11:
		return "11"
	case Grade12:
		return "12"
	}
	return "unknown"
}

// ParseGrade converts a string grade ("11" or "12") to a Grade.
func ParseGrade(s string) (Grade, error) {
	switch s {
	case "11":
		return Grade11, nil
	case "12":
		return Grade12, nil
	}
	return 0, fmt.Errorf("unsupported grade %q: want 11 or 12", s)
}

// Question is one generated multiple-choice item. Immutable once received
// from the generator; owned by the active session.
type Question struct {
	// Text is the question prompt shown to the learner.
	Text string

	// Options holds exactly OptionCount choices. Order is meaningful:
	// the option index is the identity used for answer comparison.
	Options []string

	// CorrectIndex identifies the correct option, in [0, OptionCount).
	CorrectIndex int

	// Explanation is shown after the learner answers.
	Explanation string
}

// Result is a completed quiz attempt, retained in the history ledger.
type Result struct {
	Topic        string
	Grade        Grade
	CorrectCount int
	TotalCount   int
	CompletedAt  time.Time
}

// Accuracy returns the fraction of correct answers in [0, 1].
func (r Result) Accuracy() float64 {
	if r.TotalCount == 0 {
		return 0
	}
	return float64(r.CorrectCount) / float64(r.TotalCount)
}
