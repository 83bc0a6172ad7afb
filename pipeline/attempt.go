// SPDX-License-Identifier: MIT
// Package: zhmistake/pipeline
//
// attempt.go — the selection and retry protocol.
//
// For each candidate maker (in order):
//
//	retry := 0
//	while retry < retries:
//	    rec, err := guard.Invoke(maker, text, rng)
//	    success  -> keep rec, next maker
//	    local    -> retry++ (logged when verbose)
//	    otherwise-> return err
//
// Then: zero successes -> NoChange record or ErrZeroSearchResults;
// else shuffle successes and keep the first k.

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/zhmistake/corpus"
	"github.com/katalvlaran/zhmistake/maker"
)

// Attempt runs every configured maker once (with retries) on text and
// returns up to k shuffled successes.
func (p *Pipeline) Attempt(text string, k int, req Request) ([]corpus.NoiseCorpus, error) {
	return p.AttemptWith(text, k, req, p.makers)
}

// AttemptWith is Attempt over an explicit candidate list. Candidates may
// repeat; each occurrence is tried independently. An empty list yields zero
// successes.
func (p *Pipeline) AttemptWith(text string, k int, req Request, candidates []maker.Maker) ([]corpus.NoiseCorpus, error) {
	const method = "pipeline.Attempt"
	if k < 1 {
		return nil, fmt.Errorf("%s: k=%d < 1: %w", method, k, corpus.ErrPrecondition)
	}

	out := make([]corpus.NoiseCorpus, 0, len(candidates))
	for _, m := range candidates {
		rec, ok, err := p.try(m, text, req)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, rec)
		}
	}

	if len(out) == 0 {
		if req.AllowNoChange {
			return []corpus.NoiseCorpus{corpus.NoChange(text)}, nil
		}
		return nil, fmt.Errorf("%s: %d candidates: %w", method, len(candidates), corpus.ErrZeroSearchResults)
	}

	shuffleRecords(out, p.rng)
	if len(out) > k {
		out = out[:k]
	}
	return out, nil
}

// WeightedAttempt draws k makers with replacement, proportionally to the
// configured weights (uniformly when unweighted), and delegates to
// AttemptWith in drawn order.
func (p *Pipeline) WeightedAttempt(text string, k int, req Request) ([]corpus.NoiseCorpus, error) {
	if k < 1 {
		return nil, fmt.Errorf("pipeline.WeightedAttempt: k=%d < 1: %w", k, corpus.ErrPrecondition)
	}
	cum := p.cum
	if cum == nil {
		cum = uniformCumulative(len(p.makers))
	}
	drawn := drawWeighted(p.makers, cum, k, p.rng)
	return p.AttemptWith(text, k, req, drawn)
}

// try invokes m up to p.retries times. It reports a success, a swallowed
// exhaustion (ok=false, err=nil) or a propagated error.
func (p *Pipeline) try(m maker.Maker, text string, req Request) (corpus.NoiseCorpus, bool, error) {
	for retry := 1; retry <= p.retries; retry++ {
		rec, err := p.guard.Invoke(m, text, p.rng)
		if err == nil {
			return rec, true, nil
		}
		kind := corpus.KindOf(err)
		if !kind.Retryable() {
			return corpus.NoiseCorpus{}, false, err
		}
		if req.Verbose {
			p.logger.Warn("maker failed",
				"input", text,
				"err", err,
				"kind", kind.String(),
				"maker", m.Name(),
				"retry", retry,
			)
		}
	}
	return corpus.NoiseCorpus{}, false, nil
}

func uniformCumulative(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return cumulative(w)
}
