package scoring

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithFirstPoints sets the Suraj points for the first member of a group.
func WithFirstPoints(points int) Option {
	return func(s *Scorer) {
		if points >= 0 {
			s.firstPoints = points
		}
	}
}

// WithLaterPoints sets the Suraj points for every later member of a group.
func WithLaterPoints(points int) Option {
	return func(s *Scorer) {
		if points >= 0 {
			s.laterPoints = points
		}
	}
}

// WithDecayBase sets the Umesh base; position p earns max(0, base-p).
func WithDecayBase(base int) Option {
	return func(s *Scorer) {
		if base > 0 {
			s.decayBase = base
		}
	}
}

// WithBonusPoints sets the extra Umesh points for a correct guesser who never
// changed their mind.
func WithBonusPoints(points int) Option {
	return func(s *Scorer) {
		if points >= 0 {
			s.bonusPoints = points
		}
	}
}
