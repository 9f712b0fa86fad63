package quiz

import (
	"sort"
	"sync"
)

// Ledger is the append-only record of completed quiz attempts, newest first.
// It lives for the process lifetime only; nothing is persisted.
type Ledger struct {
	mu      sync.RWMutex
	results []Result
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append adds a completed result at the front.
func (l *Ledger) Append(r Result) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.results = append([]Result{r}, l.results...)
}

// Results returns a copy of all results, newest first.
func (l *Ledger) Results() []Result {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Result, len(l.results))
	copy(out, l.results)
	return out
}

// Len returns the number of completed attempts recorded.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.results)
}

// Stats aggregates a set of results for the dashboard.
type Stats struct {
	Sessions  int
	Questions int
	Correct   int
}

// Accuracy returns overall accuracy in [0, 1].
func (s Stats) Accuracy() float64 {
	if s.Questions == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Questions)
}

// Totals folds every recorded result into one Stats.
func (l *Ledger) Totals() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var st Stats
	for _, r := range l.results {
		st.Sessions++
		st.Questions += r.TotalCount
		st.Correct += r.CorrectCount
	}
	return st
}

// TopicStats aggregates results for one topic.
type TopicStats struct {
	Topic string
	Stats
}

// ByTopic groups results by topic, sorted by session count descending and
// then alphabetically, for the analytics view.
func (l *Ledger) ByTopic() []TopicStats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	byTopic := make(map[string]*TopicStats)
	for _, r := range l.results {
		ts := byTopic[r.Topic]
		if ts == nil {
			ts = &TopicStats{Topic: r.Topic}
			byTopic[r.Topic] = ts
		}
		ts.Sessions++
		ts.Questions += r.TotalCount
		ts.Correct += r.CorrectCount
	}

	out := make([]TopicStats, 0, len(byTopic))
	for _, ts := range byTopic {
		out = append(out, *ts)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sessions != out[j].Sessions {
			return out[i].Sessions > out[j].Sessions
		}
		return out[i].Topic < out[j].Topic
	})
	return out
}

// ByGrade aggregates results per grade for the analytics view.
func (l *Ledger) ByGrade() map[Grade]Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[Grade]Stats)
	for _, r := range l.results {
		st := out[r.Grade]
		st.Sessions++
		st.Questions += r.TotalCount
		st.Correct += r.CorrectCount
		out[r.Grade] = st
	}
	return out
}
