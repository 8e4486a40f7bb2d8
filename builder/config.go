// File: config.go
// Role: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn       = DefaultIDFn   ("0","1","2",...)
//   - rng        = nil           (stochastic constructors refuse to run)
//   - left/right = "L" / "R"
//   - centerID   = "Center"

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Vertex ID strategy: index → ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Bipartite ID prefixes.
	leftPrefix  string
	rightPrefix string

	// Hub label of Star, Wheel and centered PlatonicSolid.
	centerID string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
	defaultCenterID    = "Center"
)

// newBuilderConfig applies options in order (last wins) over the defaults.
// Empty string fields fall back to their defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		centerID:    defaultCenterID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}
	if cfg.centerID == "" {
		cfg.centerID = defaultCenterID
	}

	return cfg
}
