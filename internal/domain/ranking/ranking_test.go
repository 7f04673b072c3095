package ranking_test

import (
	"testing"

	"github.com/okian/guessboard/internal/domain/model"
	"github.com/okian/guessboard/internal/domain/ranking"
	"github.com/okian/guessboard/internal/domain/tracker"
	. "github.com/smartystreets/goconvey/convey"
)

func names(standings []model.Standing) []string {
	out := make([]string, len(standings))
	for i, s := range standings {
		out[i] = s.Participant
	}
	return out
}

func TestOrder(t *testing.T) {
	Convey("Given final participant states", t, func() {
		states := map[string]model.ParticipantState{
			"alice": {CurrentGuess: "dog", Rank: 3, SubmissionCount: 2},
			"bob":   {CurrentGuess: "dog", Rank: 2, SubmissionCount: 1},
			"carol": {CurrentGuess: "cat", Rank: 4, SubmissionCount: 1},
			"dave":  {CurrentGuess: "eel", Rank: 1, SubmissionCount: 1},
			"erin":  {CurrentGuess: "cat", Rank: 5, SubmissionCount: 1},
		}

		Convey("When no answer is known", func() {
			got := ranking.Order(states, "", false)

			Convey("Then groups are alphabetical and members follow rank", func() {
				So(names(got), ShouldResemble, []string{"carol", "erin", "bob", "alice", "dave"})
				So(got[0].Guess, ShouldEqual, "cat")
				So(got[3].SubmissionCount, ShouldEqual, 2)
			})
		})

		Convey("When the answer is known", func() {
			got := ranking.Order(states, "dog", true)

			Convey("Then the answer group moves first and the rest keep their order", func() {
				So(names(got), ShouldResemble, []string{"bob", "alice", "carol", "erin", "dave"})
			})
		})

		Convey("When nobody guessed the answer", func() {
			got := ranking.Order(states, "fox", true)

			Convey("Then the alphabetical order is unchanged", func() {
				So(names(got), ShouldResemble, []string{"carol", "erin", "bob", "alice", "dave"})
			})
		})

		Convey("When the answer sorts last alphabetically", func() {
			got := ranking.Order(states, "eel", true)

			Convey("Then it still comes first", func() {
				So(names(got), ShouldResemble, []string{"dave", "carol", "erin", "bob", "alice"})
			})
		})
	})

	Convey("Given an empty state map", t, func() {
		got := ranking.Order(nil, "cat", true)

		Convey("Then there are no standings and no groups", func() {
			So(got, ShouldBeEmpty)
			So(ranking.Groups(got), ShouldBeEmpty)
		})
	})
}

func TestFromOutcome(t *testing.T) {
	Convey("Given a replayed tracker", t, func() {
		tr := tracker.New()
		for _, ev := range []model.Event{
			{Participant: "alice", Token: "cat"},
			{Participant: "bob", Token: "dog"},
			{Participant: "alice", Token: "dog"},
			{Participant: "carol", Token: "cat"},
		} {
			tr.Apply(ev)
		}

		got := ranking.FromOutcome(tr.Outcome())

		Convey("Then alice leaves the cat group for the dog group", func() {
			So(names(got), ShouldResemble, []string{"carol", "bob", "alice"})
			groups := ranking.Groups(got)
			So(len(groups), ShouldEqual, 2)
			So(names(groups[0]), ShouldResemble, []string{"carol"})
			So(names(groups[1]), ShouldResemble, []string{"bob", "alice"})
		})
	})
}
