package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okian/guessboard/internal/testlog"
)

// Default generation constants.
const (
	defaultParticipants = 8
	defaultLines        = 40
)

func main() {
	if err := newCmd().Execute(); err != nil {
		os.Stderr.WriteString("gen-log: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var (
		cfg   testlog.Config
		vocab string
	)

	cmd := &cobra.Command{
		Use:           "gen-log",
		Short:         "Print a synthetic guess log for trying out guessboard.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if vocab != "" {
				cfg.Vocabulary = strings.Split(vocab, ",")
			}
			lines, _ := testlog.Generate(cfg)
			return testlog.Write(cmd.OutOrStdout(), lines)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Participants, "participants", defaultParticipants, "number of distinct guessers")
	flags.IntVar(&cfg.Lines, "lines", defaultLines, "number of guess lines")
	flags.IntVar(&cfg.NoiseLines, "noise", 0, "number of non-matching lines to mix in")
	flags.StringVar(&cfg.Answer, "answer", "", "append an answer line with this guess")
	flags.StringVar(&vocab, "vocabulary", "", "comma separated guesses to draw from")
	flags.Uint64Var(&cfg.Seed, "seed", 1, "random seed")

	return cmd
}
