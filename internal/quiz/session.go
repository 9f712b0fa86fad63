package quiz

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one quiz attempt, from topic entry to finish or reset.
//
// All mutation goes through the exported methods; fields are private so the
// invariants (single scoring point, append-once history, first-answer-wins)
// hold no matter how the UI drives it. Methods are safe for concurrent use:
// generation completes on a background callback whose ordering relative to
// new user actions is not fixed.
type Session struct {
	mu sync.Mutex

	id       string
	topic    string
	grade    Grade
	gradeSet bool

	questions []Question
	current   int
	score     int
	selected  int

	loading  bool
	finished bool
	errMsg   string

	// seq is the latest issued generation request. Completions carrying an
	// older sequence number are discarded, so a superseded in-flight request
	// can never overwrite the session.
	seq uint64

	ledger *Ledger
	now    func() time.Time
}

// NewSession creates an idle session that appends completed attempts to ledger.
func NewSession(ledger *Ledger) *Session {
	return &Session{
		selected: NoSelection,
		ledger:   ledger,
		now:      time.Now,
	}
}

// NewSessionWithGrade creates an idle session whose grade is already
// chosen, typically from configuration.
func NewSessionWithGrade(ledger *Ledger, grade Grade) *Session {
	s := NewSession(ledger)
	if grade.Valid() {
		s.grade = grade
		s.gradeSet = true
	}
	return s
}

// StartGeneration records the topic and grade and moves the session into the
// loading state. It returns the sequence number the caller must pass back to
// ApplyResult, and whether the request was accepted.
//
// A blank (after trimming) topic is silently ignored. A call while a request
// is already in flight is rejected. A zero grade keeps the previously chosen
// grade, or DefaultGrade if none was ever chosen.
//
// Stale questions from a prior attempt stay visible while loading; the
// question list, index, and score are only replaced when the result arrives.
func (s *Session) StartGeneration(topic string, grade Grade) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return 0, false
	}
	if s.loading {
		return 0, false
	}

	if grade.Valid() {
		s.grade = grade
		s.gradeSet = true
	} else if !s.gradeSet {
		s.grade = DefaultGrade
	}

	s.id = uuid.New().String()
	s.topic = topic
	s.loading = true
	s.finished = false
	s.selected = NoSelection
	s.errMsg = ""
	s.seq++
	return s.seq, true
}

// ApplyResult completes the generation request identified by seq.
//
// Results for any sequence number other than the latest issued are discarded;
// a late-arriving response from a superseded request never wins. On success
// the question list is replaced and traversal state resets. On failure the
// prior questions and score are left untouched and the error is surfaced as
// session state for the views to render.
//
// An empty question list is a success: the session finishes immediately with
// nothing to traverse and nothing appended to the ledger.
func (s *Session) ApplyResult(seq uint64, questions []Question, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq || !s.loading {
		return
	}
	s.loading = false

	if err != nil {
		s.errMsg = err.Error()
		return
	}

	s.questions = questions
	s.current = 0
	s.score = 0
	s.selected = NoSelection
	s.errMsg = ""
	s.finished = len(questions) == 0
}

// SelectAnswer fixes the learner's choice for the current question.
// The first selection wins: once set, later calls are no-ops until the
// session advances. Returns whether the selection was applied.
func (s *Session) SelectAnswer(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading || s.finished || len(s.questions) == 0 {
		return false
	}
	if s.selected != NoSelection {
		return false
	}
	if index < 0 || index >= len(s.questions[s.current].Options) {
		return false
	}
	s.selected = index
	return true
}

// Advance scores the current question and moves to the next one, or finishes
// the session. Scoring, advancement, and the history append are coupled here
// so they cannot desynchronize under rapid repeated calls: this is the only
// code path that appends to the ledger, and it requires a selection, so a
// second Advance without an intervening SelectAnswer is a no-op.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading || s.finished || len(s.questions) == 0 {
		return false
	}
	if s.selected == NoSelection {
		return false
	}

	if s.selected == s.questions[s.current].CorrectIndex {
		s.score++
	}
	s.selected = NoSelection

	if s.current == len(s.questions)-1 {
		s.finished = true
		if s.ledger != nil {
			s.ledger.Append(Result{
				Topic:        s.topic,
				Grade:        s.grade,
				CorrectCount: s.score,
				TotalCount:   len(s.questions),
				CompletedAt:  s.now(),
			})
		}
		return true
	}

	s.current++
	return true
}

// Reset returns the session to idle. The ledger is untouched; the chosen
// grade is forgotten along with everything else.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = ""
	s.topic = ""
	s.grade = 0
	s.gradeSet = false
	s.questions = nil
	s.current = 0
	s.score = 0
	s.selected = NoSelection
	s.loading = false
	s.finished = false
	s.errMsg = ""
}

// Snapshot is a consistent read-only copy of the session for rendering.
type Snapshot struct {
	ID           string
	Topic        string
	Grade        Grade
	Questions    []Question
	CurrentIndex int
	Score        int
	Selected     int
	Loading      bool
	Finished     bool
	ErrMsg       string
}

// Current returns the active question, or nil if there is none.
func (sn Snapshot) Current() *Question {
	if sn.Finished || len(sn.Questions) == 0 {
		return nil
	}
	if sn.CurrentIndex < 0 || sn.CurrentIndex >= len(sn.Questions) {
		return nil
	}
	return &sn.Questions[sn.CurrentIndex]
}

// Answered reports whether the current question already has a fixed choice.
func (sn Snapshot) Answered() bool {
	return sn.Selected != NoSelection
}

// Snapshot returns a copy of the current session state. Views render from
// snapshots so a mid-render mutation can never tear the display.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	qs := make([]Question, len(s.questions))
	copy(qs, s.questions)

	grade := s.grade
	if !s.gradeSet {
		grade = DefaultGrade
	}

	return Snapshot{
		ID:           s.id,
		Topic:        s.topic,
		Grade:        grade,
		Questions:    qs,
		CurrentIndex: s.current,
		Score:        s.score,
		Selected:     s.selected,
		Loading:      s.loading,
		Finished:     s.finished,
		ErrMsg:       s.errMsg,
	}
}
