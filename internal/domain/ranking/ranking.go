// Package ranking orders participants into guess groups.
//
// Ordering: guess text ASC, then rank ASC. When the answer is known the
// matching group is moved to the front; every other relative position is
// preserved.
package ranking

import (
	"cmp"
	"slices"

	"github.com/okian/guessboard/internal/domain/model"
	"github.com/okian/guessboard/internal/domain/tracker"
)

// Order returns one standing per participant, grouped by guess.
func Order(states map[string]model.ParticipantState, answer string, hasAnswer bool) []model.Standing {
	standings := make([]model.Standing, 0, len(states))
	for name, st := range states {
		standings = append(standings, model.Standing{
			Guess:           st.CurrentGuess,
			Rank:            st.Rank,
			Participant:     name,
			SubmissionCount: st.SubmissionCount,
		})
	}

	// Ranks are unique, so the participant tie-break only matters for
	// hand-built state maps.
	slices.SortStableFunc(standings, func(a, b model.Standing) int {
		return cmp.Or(
			cmp.Compare(a.Guess, b.Guess),
			cmp.Compare(a.Rank, b.Rank),
			cmp.Compare(a.Participant, b.Participant),
		)
	})

	if hasAnswer {
		PromoteAnswer(standings, answer)
	}
	return standings
}

// FromOutcome orders the final tracker outcome.
func FromOutcome(out tracker.Outcome) []model.Standing {
	return Order(out.States, out.Answer, out.HasAnswer)
}

// PromoteAnswer stably moves standings guessing answer to the front, in place.
func PromoteAnswer(standings []model.Standing, answer string) {
	slices.SortStableFunc(standings, func(a, b model.Standing) int {
		return cmp.Compare(rankKey(a, answer), rankKey(b, answer))
	})
}

func rankKey(s model.Standing, answer string) int {
	if s.Guess == answer {
		return 0
	}
	return 1
}

// Groups splits ordered standings into contiguous runs of equal guesses.
func Groups(standings []model.Standing) [][]model.Standing {
	var groups [][]model.Standing
	start := 0
	for i := 1; i <= len(standings); i++ {
		if i == len(standings) || standings[i].Guess != standings[start].Guess {
			groups = append(groups, standings[start:i])
			start = i
		}
	}
	return groups
}
