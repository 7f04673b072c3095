// Package config defines process configuration and how it is loaded.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// RevealKeyword is the first token of the answer line.
	RevealKeyword string `koanf:"reveal_keyword" validate:"required,alpha"`

	// RevealPolicy decides which of several answer lines wins: first or last.
	RevealPolicy string `koanf:"reveal_policy" validate:"oneof=first last"`

	// FirstPoints and LaterPoints are the Suraj points for the first and
	// every later member of a guess group.
	FirstPoints int `koanf:"first_points" validate:"gte=0"`
	LaterPoints int `koanf:"later_points" validate:"gte=0"`

	// DecayBase is the Umesh base: position p earns max(0, DecayBase-p).
	DecayBase int `koanf:"decay_base" validate:"gt=0"`

	// BonusPoints is added to the Umesh points of a correct guesser who
	// never changed their guess.
	BonusPoints int `koanf:"bonus_points" validate:"gte=0"`

	// MetricsFile, when set, receives run metrics in Prometheus text format.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config holding the defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:      "info",
		RevealKeyword: "Answer",
		RevealPolicy:  "last",
		FirstPoints:   5,
		LaterPoints:   2,
		DecayBase:     11,
		BonusPoints:   1,
	}
}

var validate = validator.New()

// Validate checks the struct tags of c.
func (c *Config) Validate(_ context.Context) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
