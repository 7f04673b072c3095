// Package scoring computes Suraj and Umesh points for ordered standings.
package scoring

import "github.com/okian/guessboard/internal/domain/model"

// Default scoring configuration constants.
const (
	DefaultFirstPoints = 5
	DefaultLaterPoints = 2
	DefaultDecayBase   = 11
	DefaultBonusPoints = 1
)

// Scorer turns ordered standings into result rows.
type Scorer struct {
	firstPoints int
	laterPoints int
	decayBase   int
	bonusPoints int
}

// New creates a Scorer with the game's standard point values.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		firstPoints: DefaultFirstPoints,
		laterPoints: DefaultLaterPoints,
		decayBase:   DefaultDecayBase,
		bonusPoints: DefaultBonusPoints,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Suraj returns the flat reward for position p (1-based).
func (s *Scorer) Suraj(p int) int {
	if p == 1 {
		return s.firstPoints
	}
	return s.laterPoints
}

// Umesh returns the decaying reward for position p, floored at zero.
func (s *Scorer) Umesh(p int) int {
	return max(0, s.decayBase-p)
}

// Score assigns group positions and points. standings must already be grouped
// (see ranking.Order).
func (s *Scorer) Score(standings []model.Standing, answer string, hasAnswer bool) []model.ResultRow {
	rows := make([]model.ResultRow, 0, len(standings))

	position := 0
	prev := ""
	for i, st := range standings {
		start := i == 0 || st.Guess != prev
		if start {
			position = 1
			prev = st.Guess
		} else {
			position++
		}

		row := model.ResultRow{
			Guess:           st.Guess,
			Position:        position,
			Participant:     st.Participant,
			Rank:            st.Rank,
			SubmissionCount: st.SubmissionCount,
			GroupStart:      start,
			Correct:         hasAnswer && st.Guess == answer,
		}

		suraj, umesh := s.Suraj(position), s.Umesh(position)
		switch {
		case !hasAnswer:
			row.SurajPoints, row.UmeshPoints = suraj, umesh
		case row.Correct:
			row.SurajPoints, row.UmeshPoints = suraj, umesh
			if st.SubmissionCount == 1 && umesh > 0 {
				original := umesh
				row.UmeshPoints = umesh + s.bonusPoints
				row.BonusOriginal = &original
			}
		default:
			// wrong guesses earn nothing once the answer is out
		}

		rows = append(rows, row)
	}
	return rows
}

// Bonuses counts rows where the never-changed bonus fired.
func Bonuses(rows []model.ResultRow) int {
	n := 0
	for _, r := range rows {
		if r.HasBonus() {
			n++
		}
	}
	return n
}
