// SPDX-License-Identifier: MIT
// Package: zhmistake/maker
//
// guard.go — the invocation wrapper around Maker.Make.
//
// Steps (in order, first failure wins):
//  1. raw := m.Make(text, rng)
//  2. raw.Type = m.Name()
//  3. Normalize both sides; equal -> corpus.ErrTraditionalSimplifiedSame.
//  4. Exclusion validator flags the pair -> corpus.ErrDisallowedSpan.
//
// The NoChange sentinel skips steps 3–4: for a no-op both checks are vacuous.

package maker

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/zhmistake/convert"
	"github.com/katalvlaran/zhmistake/corpus"
	"github.com/katalvlaran/zhmistake/exclude"
)

// Guard validates maker output. The zero value uses the identity normalizer
// and an empty exclusion set.
type Guard struct {
	normalizer convert.Normalizer
	validator  *exclude.Validator
}

// NewGuard returns a Guard; a nil normalizer means convert.Identity and a nil
// validator excludes nothing.
func NewGuard(n convert.Normalizer, v *exclude.Validator) Guard {
	return Guard{normalizer: n, validator: v}
}

// Invoke runs m once on text and validates the result.
func (g Guard) Invoke(m Maker, text string, rng *rand.Rand) (corpus.NoiseCorpus, error) {
	if m == nil {
		return corpus.NoiseCorpus{}, fmt.Errorf("Guard: nil maker: %w", corpus.ErrPrecondition)
	}
	name := m.Name()

	data, err := m.Make(text, rng)
	if err != nil {
		return corpus.NoiseCorpus{}, err
	}
	data.Type = name

	if name == NameNoChange {
		return data, nil
	}

	n := g.normalizer
	if n == nil {
		n = convert.Identity{}
	}
	nc, err := n.Normalize(data.Correct)
	if err != nil {
		return corpus.NoiseCorpus{}, lookupErr(name, "normalize correct", err)
	}
	ni, err := n.Normalize(data.Incorrect)
	if err != nil {
		return corpus.NoiseCorpus{}, lookupErr(name, "normalize incorrect", err)
	}
	if nc == ni {
		return corpus.NoiseCorpus{}, fmt.Errorf("%s: %q vs %q: %w", name, data.Correct, data.Incorrect, corpus.ErrTraditionalSimplifiedSame)
	}

	if g.validator.Touches(data.Correct, data.Incorrect) {
		return corpus.NoiseCorpus{}, fmt.Errorf("%s: %q vs %q: %w", name, data.Correct, data.Incorrect, corpus.ErrDisallowedSpan)
	}

	return data, nil
}
