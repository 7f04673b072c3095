// Package model contains domain models passed between layers.
package model

// Kind distinguishes an ordinary guess from the answer reveal.
type Kind int

const (
	// KindGuess is a "<participant> <guess>" line.
	KindGuess Kind = iota
	// KindReveal is a "<keyword> <answer>" line.
	KindReveal
)

// String returns a log-friendly name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGuess:
		return "guess"
	case KindReveal:
		return "reveal"
	default:
		return "unknown"
	}
}

// Event is one matching line of the guess log, in file order.
type Event struct {
	Kind        Kind
	Participant string // empty for reveals
	Token       string // the guess, or the revealed answer
	Line        int    // 1-based source line
}

// ParticipantState is the tracker's view of one guesser.
type ParticipantState struct {
	CurrentGuess    string
	Rank            int // comment number of the latest distinct guess
	SubmissionCount int // every guess counts, repeats included
}

// Standing is one participant placed in the ordered report.
type Standing struct {
	Guess           string
	Rank            int
	Participant     string
	SubmissionCount int
}

// ResultRow is a scored standing ready for rendering.
type ResultRow struct {
	Guess           string
	Position        int // 1-based position inside the guess group
	Participant     string
	Rank            int
	SubmissionCount int
	SurajPoints     int
	UmeshPoints     int  // displayed value, bonus included
	BonusOriginal   *int // pre-bonus umesh points when the bonus fired
	GroupStart      bool
	Correct         bool // guess equals the revealed answer
}

// HasBonus reports whether the never-changed bonus was applied.
func (r ResultRow) HasBonus() bool { return r.BonusOriginal != nil }
