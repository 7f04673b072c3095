package testlog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/guessboard/internal/domain/model"
)

// Expectation is the replayed final state of one participant.
type Expectation struct {
	Guess       string
	Submissions int
}

// Replay walks raw lines without the production parser or tracker and
// returns each participant's final guess and submission count.
func Replay(lines []string, keyword string) (map[string]Expectation, string, bool) {
	want := make(map[string]Expectation)
	answer, hasAnswer := "", false
	for _, line := range lines {
		who, what, ok := split(line)
		if !ok {
			continue
		}
		if who == keyword {
			answer, hasAnswer = what, true
			continue
		}
		e := want[who]
		e.Guess = what
		e.Submissions++
		want[who] = e
	}
	return want, answer, hasAnswer
}

func split(line string) (string, string, bool) {
	i := 0
	for i < len(line) && isLetter(line[i]) {
		i++
	}
	if i == 0 {
		return "", "", false
	}
	j := i
	for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
		j++
	}
	if j == i {
		return "", "", false
	}
	k := j
	for k < len(line) && isLetter(line[k]) {
		k++
	}
	if k == j {
		return "", "", false
	}
	return line[:i], line[j:k], true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Point values the default scorer awards.
const (
	firstPoints = 5
	laterPoints = 2
	decayBase   = 11
	bonusPoints = 1
)

// Verify checks scored rows against a replay of lines. It returns the first
// violation found.
func Verify(lines []string, keyword string, rows []model.ResultRow) error {
	want, answer, hasAnswer := Replay(lines, keyword)

	if len(rows) != len(want) {
		return fmt.Errorf("got %d rows, want one per participant (%d)", len(rows), len(want))
	}

	seen := make(map[string]bool, len(rows))
	pos := 0
	for i, r := range rows {
		if i == 0 || rows[i-1].Guess != r.Guess {
			pos = 0
		}
		pos++
		if r.Position != pos {
			return fmt.Errorf("%s: position %d, want %d inside group %s", r.Participant, r.Position, pos, r.Guess)
		}

		if seen[r.Participant] {
			return fmt.Errorf("participant %s listed twice", r.Participant)
		}
		seen[r.Participant] = true

		e, ok := want[r.Participant]
		if !ok {
			return fmt.Errorf("unexpected participant %s", r.Participant)
		}
		if r.Guess != e.Guess || r.SubmissionCount != e.Submissions {
			return fmt.Errorf("%s: got (%s, %d), want (%s, %d)", r.Participant, r.Guess, r.SubmissionCount, e.Guess, e.Submissions)
		}

		if i > 0 && rows[i-1].Guess == r.Guess && rows[i-1].Rank >= r.Rank {
			return fmt.Errorf("%s: rank %d not after %d inside group %s", r.Participant, r.Rank, rows[i-1].Rank, r.Guess)
		}

		if err := verifyPoints(r, pos, answer, hasAnswer); err != nil {
			return fmt.Errorf("%s: %w", r.Participant, err)
		}
	}

	return verifyGroupOrder(rows, answer, hasAnswer)
}

func verifyPoints(r model.ResultRow, pos int, answer string, hasAnswer bool) error {
	suraj, umesh := laterPoints, max(0, decayBase-pos)
	if pos == 1 {
		suraj = firstPoints
	}

	if hasAnswer && r.Guess != answer {
		if r.SurajPoints != 0 || r.UmeshPoints != 0 || r.HasBonus() {
			return fmt.Errorf("wrong guess scored (%d, %d)", r.SurajPoints, r.UmeshPoints)
		}
		return nil
	}

	if r.SurajPoints != suraj {
		return fmt.Errorf("suraj points %d at position %d, want %d", r.SurajPoints, pos, suraj)
	}
	bonus := hasAnswer && r.SubmissionCount == 1 && umesh > 0
	if r.HasBonus() != bonus {
		return fmt.Errorf("bonus mismatch for %d submissions at position %d", r.SubmissionCount, pos)
	}
	want := umesh
	if bonus {
		if *r.BonusOriginal != umesh {
			return fmt.Errorf("bonus base %d at position %d, want %d", *r.BonusOriginal, pos, umesh)
		}
		want = umesh + bonusPoints
	}
	if r.UmeshPoints != want {
		return fmt.Errorf("umesh points %d at position %d, want %d", r.UmeshPoints, pos, want)
	}
	return nil
}

func verifyGroupOrder(rows []model.ResultRow, answer string, hasAnswer bool) error {
	var groups []string
	for i, r := range rows {
		if i == 0 || rows[i-1].Guess != r.Guess {
			groups = append(groups, r.Guess)
		}
	}

	rest := groups
	if hasAnswer && len(groups) > 0 && groups[0] == answer {
		rest = groups[1:]
	}
	for _, g := range rest {
		if hasAnswer && g == answer {
			return fmt.Errorf("answer group %s not first", answer)
		}
	}
	if !sort.StringsAreSorted(rest) {
		return fmt.Errorf("groups not alphabetical: %s", strings.Join(rest, ","))
	}
	seen := make(map[string]bool, len(groups))
	for _, g := range groups {
		if seen[g] {
			return fmt.Errorf("group %s split", g)
		}
		seen[g] = true
	}
	return nil
}
