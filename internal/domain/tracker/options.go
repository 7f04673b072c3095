package tracker

import (
	"fmt"
	"strings"
)

// RevealPolicy decides which answer wins when the log reveals more than once.
type RevealPolicy int

const (
	// RevealLast keeps the most recent reveal.
	RevealLast RevealPolicy = iota
	// RevealFirst keeps the first reveal and ignores the rest.
	RevealFirst
)

// String returns the configuration name of the policy.
func (p RevealPolicy) String() string {
	if p == RevealFirst {
		return "first"
	}
	return "last"
}

// ParseRevealPolicy accepts "first" or "last" (case-insensitive). Empty means last.
func ParseRevealPolicy(s string) (RevealPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last":
		return RevealLast, nil
	case "first":
		return RevealFirst, nil
	default:
		return RevealLast, fmt.Errorf("unknown reveal policy: %s", s)
	}
}

// Option applies a configuration option to the Tracker.
type Option func(*Tracker)

// WithRevealPolicy sets how repeated reveals are resolved.
func WithRevealPolicy(policy RevealPolicy) Option {
	return func(t *Tracker) {
		t.policy = policy
	}
}
