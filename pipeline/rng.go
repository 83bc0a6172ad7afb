// SPDX-License-Identifier: MIT
// Package: zhmistake/pipeline
//
// rng.go — deterministic randomness helpers.
//
// math/rand.Rand is not goroutine-safe; every helper takes the pipeline's
// own source.

package pipeline

import (
	"math/rand"

	"github.com/katalvlaran/zhmistake/corpus"
	"github.com/katalvlaran/zhmistake/maker"
)

// rngFromSeed returns a deterministic source; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// shuffleRecords performs an in-place Fisher–Yates shuffle.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleRecords(a []corpus.NoiseCorpus, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// cumulative returns running sums of weights; the last entry is the total.
func cumulative(weights []float64) []float64 {
	cum := make([]float64, len(weights))
	var sum float64
	for i, w := range weights {
		sum += w
		cum[i] = sum
	}
	return cum
}

// drawWeighted draws k makers with replacement. cum must come from
// cumulative over weights parallel to makers, with a positive total.
// Makers with zero weight occupy an empty interval and are never drawn.
//
// Complexity: O(k·n) time.
func drawWeighted(makers []maker.Maker, cum []float64, k int, rng *rand.Rand) []maker.Maker {
	total := cum[len(cum)-1]
	out := make([]maker.Maker, 0, k)
	for n := 0; n < k; n++ {
		r := rng.Float64() * total
		idx := len(cum) - 1
		for i, c := range cum {
			if r < c {
				idx = i
				break
			}
		}
		// r can round up to total; fall back to the last positive weight.
		for idx > 0 && cum[idx] == cum[idx-1] {
			idx--
		}
		out = append(out, makers[idx])
	}
	return out
}
