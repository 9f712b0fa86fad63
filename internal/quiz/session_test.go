package quiz

import (
	"errors"
	"testing"
	"time"
)

func testQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			Text:         "Q",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % OptionCount,
			Explanation:  "because",
		}
	}
	return qs
}

// startActive drives a session into the active state with n questions.
func startActive(t *testing.T, s *Session, n int) {
	t.Helper()
	seq, ok := s.StartGeneration("photosynthesis", Grade11)
	if !ok {
		t.Fatal("StartGeneration rejected a valid topic")
	}
	s.ApplyResult(seq, testQuestions(n), nil)
	snap := s.Snapshot()
	if snap.Loading {
		t.Fatal("still loading after ApplyResult")
	}
}

func TestStartGeneration_EmptyTopicIgnored(t *testing.T) {
	s := NewSession(NewLedger())
	before := s.Snapshot()

	for _, topic := range []string{"", "   ", "\t\n"} {
		if _, ok := s.StartGeneration(topic, Grade11); ok {
			t.Errorf("StartGeneration(%q) accepted, want rejected", topic)
		}
	}

	after := s.Snapshot()
	if after.Loading {
		t.Error("blank topic set loading")
	}
	if after.Topic != before.Topic || after.ID != before.ID {
		t.Error("blank topic mutated session state")
	}
}

func TestStartGeneration_RejectsWhileLoading(t *testing.T) {
	s := NewSession(NewLedger())
	seq1, ok := s.StartGeneration("algebra", Grade11)
	if !ok {
		t.Fatal("first StartGeneration rejected")
	}
	if _, ok := s.StartGeneration("geometry", Grade11); ok {
		t.Error("re-entrant StartGeneration accepted while loading")
	}
	// The original request still completes normally.
	s.ApplyResult(seq1, testQuestions(2), nil)
	if got := s.Snapshot().Topic; got != "algebra" {
		t.Errorf("Topic = %q, want algebra", got)
	}
}

func TestStartGeneration_GradeDefaultsAndSticks(t *testing.T) {
	s := NewSession(NewLedger())

	seq, _ := s.StartGeneration("history", 0)
	if got := s.Snapshot().Grade; got != DefaultGrade {
		t.Errorf("Grade = %v, want default %v", got, DefaultGrade)
	}
	s.ApplyResult(seq, testQuestions(1), nil)

	// Explicit grade is remembered across the next start.
	seq, _ = s.StartGeneration("history", Grade12)
	s.ApplyResult(seq, testQuestions(1), nil)
	seq, _ = s.StartGeneration("civics", 0)
	s.ApplyResult(seq, testQuestions(1), nil)
	if got := s.Snapshot().Grade; got != Grade12 {
		t.Errorf("Grade = %v, want sticky Grade12", got)
	}
}

func TestApplyResult_FailureKeepsPriorState(t *testing.T) {
	s := NewSession(NewLedger())
	startActive(t, s, 3)
	s.SelectAnswer(0)
	s.Advance()

	seq, ok := s.StartGeneration("a new topic", Grade11)
	if !ok {
		t.Fatal("StartGeneration rejected")
	}
	s.ApplyResult(seq, nil, errors.New("model unavailable"))

	snap := s.Snapshot()
	if snap.Loading {
		t.Error("loading not cleared on failure")
	}
	if snap.ErrMsg == "" {
		t.Error("failure did not surface an error message")
	}
	if len(snap.Questions) != 3 {
		t.Errorf("questions len = %d, want prior 3 untouched", len(snap.Questions))
	}
	if snap.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want prior 1 untouched", snap.CurrentIndex)
	}
}

func TestApplyResult_StaleSequenceDiscarded(t *testing.T) {
	s := NewSession(NewLedger())
	seq1, _ := s.StartGeneration("first", Grade11)
	s.ApplyResult(seq1, nil, errors.New("timeout"))

	seq2, _ := s.StartGeneration("second", Grade11)

	// The first request's response arrives late. It must not win.
	s.ApplyResult(seq1, testQuestions(5), nil)
	if snap := s.Snapshot(); !snap.Loading {
		t.Fatal("stale result was applied")
	}

	s.ApplyResult(seq2, testQuestions(2), nil)
	snap := s.Snapshot()
	if len(snap.Questions) != 2 {
		t.Errorf("questions len = %d, want 2 from latest request", len(snap.Questions))
	}
}

func TestApplyResult_EmptyQuizFinishesImmediately(t *testing.T) {
	ledger := NewLedger()
	s := NewSession(ledger)
	seq, _ := s.StartGeneration("obscure topic", Grade11)
	s.ApplyResult(seq, nil, nil)

	snap := s.Snapshot()
	if !snap.Finished {
		t.Error("empty quiz should finish immediately")
	}
	if snap.Current() != nil {
		t.Error("Current() must be nil for an empty quiz")
	}
	if ledger.Len() != 0 {
		t.Errorf("ledger len = %d, want 0 for an empty quiz", ledger.Len())
	}
	if s.Advance() {
		t.Error("Advance succeeded on an empty finished quiz")
	}
}

func TestSelectAnswer_FirstWriteWins(t *testing.T) {
	s := NewSession(NewLedger())
	startActive(t, s, 1)

	if !s.SelectAnswer(2) {
		t.Fatal("first SelectAnswer rejected")
	}
	if got := s.Snapshot().Selected; got != 2 {
		t.Errorf("Selected = %d, want 2", got)
	}
	if s.SelectAnswer(3) {
		t.Error("second SelectAnswer applied, want ignored")
	}
	if got := s.Snapshot().Selected; got != 2 {
		t.Errorf("Selected = %d after second click, want 2", got)
	}
}

func TestSelectAnswer_OutOfRange(t *testing.T) {
	s := NewSession(NewLedger())
	startActive(t, s, 1)

	if s.SelectAnswer(-1) || s.SelectAnswer(OptionCount) {
		t.Error("out-of-range selection accepted")
	}
	if s.Snapshot().Answered() {
		t.Error("session marked answered after rejected selections")
	}
}

func TestAdvance_RequiresSelection(t *testing.T) {
	s := NewSession(NewLedger())
	startActive(t, s, 2)

	if s.Advance() {
		t.Error("Advance succeeded without a selection")
	}
	s.SelectAnswer(0)
	if !s.Advance() {
		t.Error("Advance failed with a selection")
	}
	// Selection is cleared on advance; an immediate second Advance must not
	// score or move again.
	if s.Advance() {
		t.Error("double Advance succeeded without re-selecting")
	}
	if got := s.Snapshot().CurrentIndex; got != 1 {
		t.Errorf("CurrentIndex = %d, want 1", got)
	}
}

func TestAdvance_ScoringScenario(t *testing.T) {
	// 3 questions, correct answers at [0, 1, 2]; learner picks [0, 2, 2]:
	// right, wrong, right. Exactly one ledger entry with 2/3.
	ledger := NewLedger()
	s := NewSession(ledger)
	seq, _ := s.StartGeneration("trig identities", Grade12)
	qs := testQuestions(3) // correct indices 0, 1, 2
	s.ApplyResult(seq, qs, nil)

	picks := []int{0, 2, 2}
	for _, p := range picks {
		if !s.SelectAnswer(p) {
			t.Fatalf("SelectAnswer(%d) rejected", p)
		}
		if !s.Advance() {
			t.Fatal("Advance rejected")
		}
	}

	snap := s.Snapshot()
	if !snap.Finished {
		t.Fatal("session not finished after traversing all questions")
	}
	if snap.Score != 2 {
		t.Errorf("score = %d, want 2", snap.Score)
	}

	results := ledger.Results()
	if len(results) != 1 {
		t.Fatalf("ledger len = %d, want exactly 1", len(results))
	}
	r := results[0]
	if r.CorrectCount != 2 || r.TotalCount != 3 {
		t.Errorf("result = %d/%d, want 2/3", r.CorrectCount, r.TotalCount)
	}
	if r.Topic != "trig identities" || r.Grade != Grade12 {
		t.Errorf("result topic/grade = %q/%v", r.Topic, r.Grade)
	}
	if r.CompletedAt.IsZero() {
		t.Error("CompletedAt not stamped")
	}
}

func TestAdvance_AllWrong(t *testing.T) {
	ledger := NewLedger()
	s := NewSession(ledger)
	startActive(t, s, 3)

	for i := 0; i < 3; i++ {
		snap := s.Snapshot()
		wrong := (snap.Current().CorrectIndex + 1) % OptionCount
		s.SelectAnswer(wrong)
		s.Advance()
	}

	if got := s.Snapshot().Score; got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
	if ledger.Len() != 1 {
		t.Errorf("ledger len = %d, want 1", ledger.Len())
	}
}

func TestScoreBoundedByProgress(t *testing.T) {
	// runningScore never exceeds currentIndex (+1 once finished): at most one
	// point per question, awarded at most once.
	s := NewSession(NewLedger())
	startActive(t, s, 5)

	for {
		snap := s.Snapshot()
		if snap.Finished {
			break
		}
		limit := snap.CurrentIndex
		if snap.Score > limit {
			t.Fatalf("score %d exceeds currentIndex %d", snap.Score, limit)
		}
		s.SelectAnswer(snap.Current().CorrectIndex)
		s.Advance()
	}

	snap := s.Snapshot()
	if snap.Score > len(snap.Questions) {
		t.Errorf("final score %d exceeds question count %d", snap.Score, len(snap.Questions))
	}
}

func TestLedgerGrowsByExactlyOnePerTraversal(t *testing.T) {
	ledger := NewLedger()
	s := NewSession(ledger)

	for _, n := range []int{1, 4, 20} {
		before := ledger.Len()
		seq, _ := s.StartGeneration("topic", Grade11)
		s.ApplyResult(seq, testQuestions(n), nil)
		for i := 0; i < n; i++ {
			s.SelectAnswer(0)
			s.Advance()
		}
		if got := ledger.Len() - before; got != 1 {
			t.Errorf("n=%d: ledger grew by %d, want 1", n, got)
		}
		// Poking the finished session must not append again.
		s.SelectAnswer(0)
		s.Advance()
		if got := ledger.Len() - before; got != 1 {
			t.Errorf("n=%d: ledger grew by %d after finish, want 1", n, got)
		}
	}
}

func TestFinishedSessionIsTerminal(t *testing.T) {
	s := NewSession(NewLedger())
	startActive(t, s, 1)
	s.SelectAnswer(0)
	s.Advance()

	snap := s.Snapshot()
	if !snap.Finished {
		t.Fatal("not finished")
	}
	if snap.Answered() {
		t.Error("selection not cleared at finish")
	}
	if s.SelectAnswer(1) {
		t.Error("SelectAnswer accepted after finish")
	}
	if s.Advance() {
		t.Error("Advance accepted after finish")
	}
}

func TestReset_ThenStartGeneration(t *testing.T) {
	ledger := NewLedger()
	s := NewSession(ledger)
	startActive(t, s, 2)
	s.SelectAnswer(1)
	s.Advance()

	s.Reset()
	snap := s.Snapshot()
	if snap.Topic != "" || len(snap.Questions) != 0 || snap.Finished || snap.Loading {
		t.Error("Reset left residual state")
	}
	if snap.Answered() {
		t.Error("Reset left a selection")
	}

	seq, ok := s.StartGeneration("fresh topic", Grade12)
	if !ok {
		t.Fatal("StartGeneration rejected after Reset")
	}
	s.ApplyResult(seq, testQuestions(2), nil)

	snap = s.Snapshot()
	if snap.CurrentIndex != 0 || snap.Score != 0 || snap.Finished {
		t.Errorf("post-reset session = index %d score %d finished %v, want 0/0/false",
			snap.CurrentIndex, snap.Score, snap.Finished)
	}
}

func TestReset_PreservesLedger(t *testing.T) {
	ledger := NewLedger()
	s := NewSession(ledger)
	startActive(t, s, 1)
	s.SelectAnswer(0)
	s.Advance()

	s.Reset()
	if ledger.Len() != 1 {
		t.Errorf("ledger len = %d after Reset, want 1", ledger.Len())
	}
}

func TestStaleQuestionsVisibleWhileLoading(t *testing.T) {
	s := NewSession(NewLedger())
	startActive(t, s, 3)

	if _, ok := s.StartGeneration("next topic", Grade11); !ok {
		t.Fatal("StartGeneration rejected")
	}
	snap := s.Snapshot()
	if !snap.Loading {
		t.Fatal("not loading")
	}
	if len(snap.Questions) != 3 {
		t.Errorf("questions cleared during loading, want stale list kept")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewSession(NewLedger())
	startActive(t, s, 2)

	snap := s.Snapshot()
	snap.Questions[0].Text = "tampered"

	if got := s.Snapshot().Questions[0].Text; got == "tampered" {
		t.Error("mutating a snapshot leaked into the session")
	}
}

func TestResultCompletedAtUsesClock(t *testing.T) {
	ledger := NewLedger()
	s := NewSession(ledger)
	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	startActive(t, s, 1)
	s.SelectAnswer(0)
	s.Advance()

	if got := ledger.Results()[0].CompletedAt; !got.Equal(fixed) {
		t.Errorf("CompletedAt = %v, want %v", got, fixed)
	}
}
