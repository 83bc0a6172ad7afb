// SPDX-License-Identifier: MIT
// Package: zhmistake/pipeline
//
// pipeline.go — Pipeline type and constructors.

package pipeline

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/zhmistake/corpus"
	"github.com/katalvlaran/zhmistake/maker"
)

// Pipeline orchestrates makers. See the package documentation.
type Pipeline struct {
	makers  []maker.Maker
	weights []float64 // nil when unweighted
	cum     []float64 // cumulative weights, nil when unweighted
	rng     *rand.Rand
	retries int
	logger  *slog.Logger
	guard   maker.Guard
}

// New builds a Pipeline over makers, in order.
//
// Errors (corpus.ErrPrecondition):
//   - makers is empty or holds a nil maker.
//   - weights were given but their count differs from len(makers).
//   - a weight is negative, NaN or infinite, or all weights are zero.
func New(makers []maker.Maker, opts ...Option) (*Pipeline, error) {
	cfg := newPipelineConfig(opts...)

	if len(makers) == 0 {
		return nil, fmt.Errorf("pipeline.New: no makers: %w", corpus.ErrPrecondition)
	}
	for i, m := range makers {
		if m == nil {
			return nil, fmt.Errorf("pipeline.New: makers[%d] is nil: %w", i, corpus.ErrPrecondition)
		}
	}

	p := &Pipeline{
		makers:  append([]maker.Maker(nil), makers...),
		rng:     cfg.rng,
		retries: cfg.retries,
		logger:  cfg.logger,
		guard:   cfg.guard,
	}

	if cfg.hasWeights {
		if err := validateWeights(cfg.weights, len(makers)); err != nil {
			return nil, err
		}
		p.weights = append([]float64(nil), cfg.weights...)
		p.cum = cumulative(p.weights)
	}

	return p, nil
}

// NewDefault builds a Pipeline over every registered strategy except
// NoChange, in registration order.
func NewDefault(deps maker.Deps, opts ...Option) (*Pipeline, error) {
	makers, err := maker.Defaults(deps)
	if err != nil {
		return nil, fmt.Errorf("pipeline.NewDefault: %w", err)
	}
	return New(makers, opts...)
}

func validateWeights(weights []float64, n int) error {
	if len(weights) != n {
		return fmt.Errorf("pipeline.New: %d weights for %d makers: %w", len(weights), n, corpus.ErrPrecondition)
	}
	var total float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("pipeline.New: weights[%d]=%v: %w", i, w, corpus.ErrPrecondition)
		}
		total += w
	}
	if total <= 0 || math.IsInf(total, 0) {
		return fmt.Errorf("pipeline.New: weights sum to %v: %w", total, corpus.ErrPrecondition)
	}
	return nil
}

// Makers returns a copy of the configured makers.
func (p *Pipeline) Makers() []maker.Maker {
	return append([]maker.Maker(nil), p.makers...)
}

// Weights returns a copy of the selection weights, or nil when the pipeline
// is unweighted.
func (p *Pipeline) Weights() []float64 {
	if p.weights == nil {
		return nil
	}
	return append([]float64(nil), p.weights...)
}

// Weighted reports whether selection weights were configured.
func (p *Pipeline) Weighted() bool { return p.weights != nil }
