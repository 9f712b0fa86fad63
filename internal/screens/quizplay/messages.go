package quizplay

import (
	"github.com/rshetty/quizly/internal/quiz"
)

// GenerationDoneMsg is sent when a quiz generation request finishes.
// The app model applies it to the session before it reaches this
// screen, so a stale or popped screen cannot lose the result.
type GenerationDoneMsg struct {
	Seq       uint64
	Questions []quiz.Question
	Err       error
}
