// Package tracker folds guess events into per-participant state.
package tracker

import "github.com/okian/guessboard/internal/domain/model"

// Stats counts what the tracker saw while replaying the log.
type Stats struct {
	FirstGuesses int
	Changes      int
	Repeats      int
	Reveals      int
}

// Outcome is the final state after all events were applied.
type Outcome struct {
	States    map[string]model.ParticipantState
	Answer    string
	HasAnswer bool
}

// Tracker owns the comment counter and the participant map for one run.
// It is not safe for concurrent use.
type Tracker struct {
	policy RevealPolicy

	states    map[string]*model.ParticipantState
	counter   int
	answer    string
	hasAnswer bool
	stats     Stats
}

// New creates an empty tracker.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		policy: RevealLast,
		states: make(map[string]*model.ParticipantState),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Apply folds one event into the tracker.
func (t *Tracker) Apply(ev model.Event) {
	if ev.Kind == model.KindReveal {
		t.reveal(ev.Token)
		return
	}

	st, ok := t.states[ev.Participant]
	if !ok {
		t.counter++
		t.states[ev.Participant] = &model.ParticipantState{
			CurrentGuess:    ev.Token,
			Rank:            t.counter,
			SubmissionCount: 1,
		}
		t.stats.FirstGuesses++
		return
	}

	st.SubmissionCount++
	if st.CurrentGuess == ev.Token {
		t.stats.Repeats++
		return
	}
	t.counter++
	st.CurrentGuess = ev.Token
	st.Rank = t.counter
	t.stats.Changes++
}

func (t *Tracker) reveal(answer string) {
	t.stats.Reveals++
	if t.hasAnswer && t.policy == RevealFirst {
		return
	}
	t.answer = answer
	t.hasAnswer = true
}

// State returns the current state of a participant.
func (t *Tracker) State(participant string) (model.ParticipantState, bool) {
	st, ok := t.states[participant]
	if !ok {
		return model.ParticipantState{}, false
	}
	return *st, true
}

// Answer returns the revealed answer, if any.
func (t *Tracker) Answer() (string, bool) { return t.answer, t.hasAnswer }

// Counter returns the last comment number handed out.
func (t *Tracker) Counter() int { return t.counter }

// Len returns the number of distinct participants.
func (t *Tracker) Len() int { return len(t.states) }

// Stats returns the replay counters.
func (t *Tracker) Stats() Stats { return t.stats }

// Outcome returns a copy of the final state.
func (t *Tracker) Outcome() Outcome {
	states := make(map[string]model.ParticipantState, len(t.states))
	for name, st := range t.states {
		states[name] = *st
	}
	return Outcome{States: states, Answer: t.answer, HasAnswer: t.hasAnswer}
}
