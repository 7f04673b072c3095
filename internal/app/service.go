// Package service runs the scoring pipeline:
// parser -> tracker -> ranking -> scoring -> report.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/okian/guessboard/internal/adapters/report"
	"github.com/okian/guessboard/internal/domain/model"
	"github.com/okian/guessboard/internal/domain/parser"
	"github.com/okian/guessboard/internal/domain/ranking"
	"github.com/okian/guessboard/internal/domain/scoring"
	"github.com/okian/guessboard/internal/domain/tracker"
	"github.com/okian/guessboard/pkg/logger"
	"github.com/okian/guessboard/pkg/metrics"
)

// outputFilePermission is used when creating the report file.
const outputFilePermission = 0o644

// Summary describes a finished run.
type Summary struct {
	RunID        string
	Lines        int
	Skipped      int
	Events       int
	Participants int
	Groups       int
	Rows         int
	Bonuses      int
	Answer       string
	HasAnswer    bool
	Duration     time.Duration
}

// Service wires the pipeline stages. A Service may run many times; each run
// gets fresh tracker state.
type Service struct {
	logger        logger.Logger
	metrics       *metrics.Manager
	revealKeyword string
	revealPolicy  tracker.RevealPolicy
	scoringOpts   []scoring.Option
	runID         string

	renderer *report.Renderer
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		revealKeyword: parser.DefaultRevealKeyword,
		revealPolicy:  tracker.RevealLast,
		renderer:      report.NewRenderer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	if s.metrics == nil {
		s.metrics = metrics.NewManager()
	}
	return s
}

// Metrics returns the manager the service reports to.
func (s *Service) Metrics() *metrics.Manager { return s.metrics }

// scored is the result of the compute half of a run.
type scored struct {
	log     logger.Logger
	rows    []model.ResultRow
	summary Summary
	started time.Time
}

// RunFiles reads the guess log at inPath and writes the report to outPath.
// The output is created only after the whole log has been scored, so a
// failed run leaves an existing report untouched. Both files are closed on
// every return path.
func (s *Service) RunFiles(ctx context.Context, inPath, outPath string) (summary Summary, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		s.metrics.RecordError("input")
		return Summary{}, fmt.Errorf("%w: %w", ErrOpenInput, err)
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			s.logger.Warn(ctx, "close input failed", logger.String("path", inPath), logger.Error(cerr))
		}
	}()

	res, err := s.score(ctx, in)
	if err != nil {
		return Summary{}, err
	}

	out, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
	if err != nil {
		s.metrics.RecordError("output")
		return Summary{}, fmt.Errorf("%w: %w", ErrCreateOutput, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			s.metrics.RecordError("output")
			err = errors.Join(err, fmt.Errorf("%w: %w", ErrCloseOutput, cerr))
		}
	}()

	if err := s.render(out, res); err != nil {
		return Summary{}, err
	}
	return s.complete(ctx, res), nil
}

// Run executes the pipeline over r and writes the report to w.
func (s *Service) Run(ctx context.Context, r io.Reader, w io.Writer) (Summary, error) {
	res, err := s.score(ctx, r)
	if err != nil {
		return Summary{}, err
	}
	if err := s.render(w, res); err != nil {
		return Summary{}, err
	}
	return s.complete(ctx, res), nil
}

// score parses r to the end and returns the scored rows. Nothing is written.
func (s *Service) score(ctx context.Context, r io.Reader) (scored, error) {
	started := time.Now()
	runID := s.runID
	if runID == "" {
		runID = uuid.NewString()
	}
	log := s.logger.With(logger.String("run_id", runID))

	p := parser.New(r, parser.WithRevealKeyword(s.revealKeyword))
	tr := tracker.New(tracker.WithRevealPolicy(s.revealPolicy))

	events := 0
	for p.Next() {
		if err := ctx.Err(); err != nil {
			return scored{}, err
		}
		ev := p.Event()
		events++
		s.metrics.RecordEvent(ev.Kind.String())
		if ev.Kind == model.KindReveal {
			if prev, ok := tr.Answer(); ok {
				log.Debug(ctx, "answer revealed again",
					logger.String("previous", prev),
					logger.String("answer", ev.Token),
					logger.String("policy", s.revealPolicy.String()),
					logger.Int("line", ev.Line))
			}
		}
		tr.Apply(ev)
	}
	s.metrics.RecordLines(p.Lines(), p.Skipped())
	if err := p.Err(); err != nil {
		s.metrics.RecordError("parse")
		return scored{}, err
	}

	out := tr.Outcome()
	stats := tr.Stats()
	s.metrics.RecordTracker(stats.FirstGuesses, stats.Changes, stats.Repeats, len(out.States), out.HasAnswer)
	if log.Enabled(ctx, slog.LevelDebug) {
		logStates(ctx, log, out)
	}

	standings := ranking.FromOutcome(out)
	rows := scoring.New(s.scoringOpts...).Score(standings, out.Answer, out.HasAnswer)

	return scored{
		log:  log,
		rows: rows,
		summary: Summary{
			RunID:        runID,
			Lines:        p.Lines(),
			Skipped:      p.Skipped(),
			Events:       events,
			Participants: len(out.States),
			Groups:       len(ranking.Groups(standings)),
			Rows:         len(rows),
			Bonuses:      scoring.Bonuses(rows),
			Answer:       out.Answer,
			HasAnswer:    out.HasAnswer,
		},
		started: started,
	}, nil
}

func (s *Service) render(w io.Writer, res scored) error {
	if err := s.renderer.Render(w, res.rows); err != nil {
		s.metrics.RecordError("render")
		return err
	}
	return nil
}

// complete records the finished run and returns its summary.
func (s *Service) complete(ctx context.Context, res scored) Summary {
	summary := res.summary
	summary.Duration = time.Since(res.started)
	s.metrics.RecordReport(summary.Rows, summary.Groups, summary.Bonuses)
	s.metrics.RecordRun(summary.Duration, time.Now())

	res.log.Info(ctx, "report written",
		logger.Int("lines", summary.Lines),
		logger.Int("skipped", summary.Skipped),
		logger.Int("participants", summary.Participants),
		logger.Int("groups", summary.Groups),
		logger.Int("bonuses", summary.Bonuses),
		logger.Bool("answer_revealed", summary.HasAnswer),
	)
	return summary
}

// logStates dumps the final tracker state, one record per participant.
func logStates(ctx context.Context, log logger.Logger, out tracker.Outcome) {
	for _, st := range ranking.Order(out.States, "", false) {
		log.Debug(ctx, "participant state",
			logger.String("participant", st.Participant),
			logger.String("guess", st.Guess),
			logger.Int("rank", st.Rank),
			logger.Int("submissions", st.SubmissionCount),
		)
	}
}
