// Package testlog generates synthetic guess logs and checks reports built
// from them against an independent replay.
package testlog

// Config holds configuration for log generation.
type Config struct {
	Participants int      // distinct guessers
	Lines        int      // guess lines to emit
	Vocabulary   []string // candidate guesses
	Answer       string   // revealed at the end when non-empty
	NoiseLines   int      // non-matching lines sprinkled in
	Seed         uint64   // same seed, same log
}

// Stats describes a generated log.
type Stats struct {
	GuessLines   int
	NoiseLines   int
	Participants int
	Revealed     bool
}
