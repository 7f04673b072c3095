package testlog

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
)

// Default generation constants.
const (
	defaultParticipants = 8
	defaultLines        = 40
	namePrefix          = "guesser"
)

// defaultVocabulary is small on purpose so guess groups collide.
var defaultVocabulary = []string{"cat", "dog", "eel", "fox", "owl"}

// noise contains lines the parser must skip.
var noise = []string{
	"",
	"# comment",
	"lonely",
	"42 cat",
	"  indented dog",
	"name1 owl",
}

// Generate returns the lines of a synthetic guess log.
func Generate(cfg Config) ([]string, Stats) {
	participants := cfg.Participants
	if participants <= 0 {
		participants = defaultParticipants
	}
	total := cfg.Lines
	if total <= 0 {
		total = defaultLines
	}
	vocab := cfg.Vocabulary
	if len(vocab) == 0 {
		vocab = defaultVocabulary
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	names := make([]string, participants)
	for i := range names {
		names[i] = participantName(i)
	}

	lines := make([]string, 0, total+cfg.NoiseLines+1)
	seen := make(map[string]bool, participants)
	for i := 0; i < total; i++ {
		who := names[rng.IntN(participants)]
		what := vocab[rng.IntN(len(vocab))]
		lines = append(lines, who+" "+what)
		seen[who] = true
	}

	for i := 0; i < cfg.NoiseLines; i++ {
		at := rng.IntN(len(lines) + 1)
		lines = append(lines[:at], append([]string{noise[rng.IntN(len(noise))]}, lines[at:]...)...)
	}

	stats := Stats{GuessLines: total, NoiseLines: cfg.NoiseLines, Participants: len(seen)}
	if cfg.Answer != "" {
		lines = append(lines, "Answer "+cfg.Answer)
		stats.Revealed = true
	}
	return lines, stats
}

// Write emits lines to w, one per line.
func Write(w io.Writer, lines []string) error {
	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// participantName maps i to an alphabetic name (guesser a, b, ..., z, ba, ...).
func participantName(i int) string {
	var b []byte
	for {
		b = append([]byte{byte('a' + i%26)}, b...)
		i /= 26
		if i == 0 {
			break
		}
	}
	return namePrefix + string(b)
}
