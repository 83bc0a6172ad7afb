// SPDX-License-Identifier: MIT
// Package: zhmistake/pipeline
//
// options.go — functional options for New, NewDefault and FromGroups.
//
// Contract:
//   - Option constructors panic on meaningless inputs (nil logger, nil rng,
//     retries < 1). Data-dependent checks (weights vs makers) happen in New
//     and return corpus.ErrPrecondition.
//   - Determinism is explicit: WithSeed or WithRand; otherwise seed 1.

package pipeline

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/zhmistake/maker"
)

// DefaultRetries is the per-maker invocation cap of one attempt.
const DefaultRetries = 5

// defaultSeed is used when neither WithSeed nor WithRand is given.
const defaultSeed int64 = 1

// Option customizes a Pipeline before construction.
type Option func(*pipelineConfig)

type pipelineConfig struct {
	weights    []float64
	hasWeights bool
	rng        *rand.Rand
	retries    int
	logger     *slog.Logger
	guard      maker.Guard
}

func newPipelineConfig(opts ...Option) pipelineConfig {
	cfg := pipelineConfig{retries: DefaultRetries}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(defaultSeed)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}

// WithWeights sets one selection weight per maker, in maker order. Weights
// are only used by WeightedAttempt and by Generate.
func WithWeights(weights ...float64) Option {
	w := append([]float64(nil), weights...)
	return func(c *pipelineConfig) {
		c.weights = w
		c.hasWeights = true
	}
}

// WithSeed seeds the pipeline random source.
func WithSeed(seed int64) Option {
	return func(c *pipelineConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand installs an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pipeline: WithRand(nil)")
	}
	return func(c *pipelineConfig) {
		c.rng = r
	}
}

// WithRetries sets how many times each candidate maker may be invoked per
// attempt. Panics if n < 1.
func WithRetries(n int) Option {
	if n < 1 {
		panic("pipeline: WithRetries(n<1)")
	}
	return func(c *pipelineConfig) {
		c.retries = n
	}
}

// WithLogger sets the logger used for verbose requests. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(c *pipelineConfig) {
		c.logger = l
	}
}

// WithGuard replaces the default guard (identity normalizer, no exclusions).
func WithGuard(g maker.Guard) Option {
	return func(c *pipelineConfig) {
		c.guard = g
	}
}
