package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	app "github.com/okian/guessboard/internal/app"
	"github.com/okian/guessboard/internal/config"
	"github.com/okian/guessboard/internal/domain/scoring"
	"github.com/okian/guessboard/internal/domain/tracker"
	"github.com/okian/guessboard/pkg/logger"
	"github.com/okian/guessboard/pkg/metrics"
)

const releaseVersion = "1.0.0"

func main() {
	os.Exit(execute())
}

func execute() int {
	if err := logger.Init(); err != nil {
		// logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logging: " + err.Error() + "\n")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newCmd().ExecuteContext(ctx); err != nil {
		os.Stderr.WriteString("guessboard: " + err.Error() + "\n")
		return 1
	}
	return 0
}

func newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guessboard <input> <output>",
		Short: "Score a guessing game log into a LaTeX results table.",
		Long: "Reads \"<guesser> <guess>\" lines from <input> and writes a LaTeX tabular to <output>.\n" +
			"A line \"Answer <guess>\" reveals the answer and switches to resolved scoring.\n\n" +
			"Configuration is read from $GUESSBOARD_CONFIG (YAML) and GUESSBOARD_* variables.",
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], args[1])
		},
	}
}

// run loads configuration and scores one log.
func run(ctx context.Context, inPath, outPath string) (err error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	policy, err := tracker.ParseRevealPolicy(cfg.RevealPolicy)
	if err != nil {
		return errors.Join(config.ErrInvalidConfig, err)
	}

	svc := app.New(
		app.WithLogger(log.Named("scorer")),
		app.WithMetrics(metrics.NewManager(metrics.WithConstLabels(map[string]string{
			"log": filepath.Base(inPath),
		}))),
		app.WithRevealKeyword(cfg.RevealKeyword),
		app.WithRevealPolicy(policy),
		app.WithScoringOptions(
			scoring.WithFirstPoints(cfg.FirstPoints),
			scoring.WithLaterPoints(cfg.LaterPoints),
			scoring.WithDecayBase(cfg.DecayBase),
			scoring.WithBonusPoints(cfg.BonusPoints),
		),
	)
	if cfg.MetricsFile != "" {
		defer func() {
			if werr := svc.Metrics().WriteTextfile(cfg.MetricsFile); werr != nil {
				log.Error(ctx, "write metrics failed", logger.String("path", cfg.MetricsFile), logger.Error(werr))
			}
		}()
	}

	_, err = svc.RunFiles(ctx, inPath, outPath)
	return err
}
