package service

import (
	"github.com/okian/guessboard/internal/domain/scoring"
	"github.com/okian/guessboard/internal/domain/tracker"
	"github.com/okian/guessboard/pkg/logger"
	"github.com/okian/guessboard/pkg/metrics"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager runs report to.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithRevealKeyword sets the first token of the answer line.
func WithRevealKeyword(keyword string) Option {
	return func(s *Service) {
		if keyword != "" {
			s.revealKeyword = keyword
		}
	}
}

// WithRevealPolicy sets how repeated answer lines are resolved.
func WithRevealPolicy(policy tracker.RevealPolicy) Option {
	return func(s *Service) {
		s.revealPolicy = policy
	}
}

// WithScoringOptions sets options passed to the scorer.
func WithScoringOptions(opts ...scoring.Option) Option {
	return func(s *Service) {
		s.scoringOpts = append(s.scoringOpts, opts...)
	}
}

// WithRunID fixes the run id instead of generating one.
func WithRunID(id string) Option {
	return func(s *Service) {
		if id != "" {
			s.runID = id
		}
	}
}
