package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "guessboard"
	subsystem = "run"
)

// Manager holds the metrics of one scoring run on its own registry, so a
// batch run can export them as a node_exporter textfile.
type Manager struct {
	constLabels map[string]string
	registry    *prometheus.Registry

	// Input
	linesRead    prometheus.Counter
	linesSkipped prometheus.Counter
	eventsParsed *prometheus.CounterVec

	// Tracker
	firstGuesses prometheus.Counter
	guessChanges prometheus.Counter
	guessRepeats prometheus.Counter
	participants prometheus.Gauge
	answerKnown  prometheus.Gauge

	// Report
	reportRows     prometheus.Gauge
	guessGroups    prometheus.Gauge
	bonusesAwarded prometheus.Counter

	// Run
	runDuration prometheus.Gauge
	runLastUnix prometheus.Gauge
	runErrors   *prometheus.CounterVec
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		constLabels: map[string]string{},
		registry:    prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	opts := func(name, help string) prometheus.Opts {
		return prometheus.Opts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: m.constLabels,
		}
	}

	m.linesRead = auto.NewCounter(prometheus.CounterOpts(opts("lines_read_total", "Input lines consumed")))
	m.linesSkipped = auto.NewCounter(prometheus.CounterOpts(opts("lines_skipped_total", "Input lines not matching the guess pattern")))
	m.eventsParsed = auto.NewCounterVec(prometheus.CounterOpts(opts("events_parsed_total", "Events parsed by kind")), []string{"kind"})

	m.firstGuesses = auto.NewCounter(prometheus.CounterOpts(opts("first_guesses_total", "Guesses from participants seen for the first time")))
	m.guessChanges = auto.NewCounter(prometheus.CounterOpts(opts("guess_changes_total", "Guesses that replaced a different current guess")))
	m.guessRepeats = auto.NewCounter(prometheus.CounterOpts(opts("guess_repeats_total", "Guesses identical to the current guess")))
	m.participants = auto.NewGauge(prometheus.GaugeOpts(opts("participants", "Distinct participants in the log")))
	m.answerKnown = auto.NewGauge(prometheus.GaugeOpts(opts("answer_revealed", "1 when the log revealed the answer")))

	m.reportRows = auto.NewGauge(prometheus.GaugeOpts(opts("report_rows", "Rows written to the report")))
	m.guessGroups = auto.NewGauge(prometheus.GaugeOpts(opts("guess_groups", "Distinct final guesses")))
	m.bonusesAwarded = auto.NewCounter(prometheus.CounterOpts(opts("bonuses_awarded_total", "Never-changed bonuses awarded")))

	m.runDuration = auto.NewGauge(prometheus.GaugeOpts(opts("duration_seconds", "Wall time of the last run")))
	m.runLastUnix = auto.NewGauge(prometheus.GaugeOpts(opts("last_completion_timestamp_seconds", "Unix time the last run finished")))
	m.runErrors = auto.NewCounterVec(prometheus.CounterOpts(opts("errors_total", "Run failures by stage")), []string{"stage"})
}

// RecordLines adds consumed and skipped input line counts.
func (m *Manager) RecordLines(read, skipped int) {
	m.linesRead.Add(float64(read))
	m.linesSkipped.Add(float64(skipped))
}

// RecordEvent counts one parsed event of the given kind.
func (m *Manager) RecordEvent(kind string) {
	m.eventsParsed.WithLabelValues(kind).Inc()
}

// RecordTracker publishes the tracker counters.
func (m *Manager) RecordTracker(first, changes, repeats, participants int, answerKnown bool) {
	m.firstGuesses.Add(float64(first))
	m.guessChanges.Add(float64(changes))
	m.guessRepeats.Add(float64(repeats))
	m.participants.Set(float64(participants))
	if answerKnown {
		m.answerKnown.Set(1)
	} else {
		m.answerKnown.Set(0)
	}
}

// RecordReport publishes the shape of the written report.
func (m *Manager) RecordReport(rows, groups, bonuses int) {
	m.reportRows.Set(float64(rows))
	m.guessGroups.Set(float64(groups))
	m.bonusesAwarded.Add(float64(bonuses))
}

// RecordRun marks a run as finished after d.
func (m *Manager) RecordRun(d time.Duration, finished time.Time) {
	m.runDuration.Set(d.Seconds())
	m.runLastUnix.Set(float64(finished.Unix()))
}

// RecordError counts a failure in stage (input, parse, render, output).
func (m *Manager) RecordError(stage string) {
	m.runErrors.WithLabelValues(stage).Inc()
}

// Registry returns the registry the manager registers on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is written atomically.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}
