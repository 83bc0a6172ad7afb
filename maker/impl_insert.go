// SPDX-License-Identifier: MIT
// Package: zhmistake/maker
//
// impl_insert.go — insertion strategies.

package maker

import (
	"math/rand"

	"github.com/katalvlaran/zhmistake/resource"
)

// RedundantWord draws a position i and inserts, at i, a copy of the
// character before it. At i == 0 the "character before" wraps around to the
// last one.
func RedundantWord() Maker {
	return Func(NameRedundantWord, func(text string, rng *rand.Rand) (string, error) {
		cs := chars(text)
		n := len(cs)
		i := rng.Intn(n)
		return insertAt(cs, i, cs[(i-1+n)%n]), nil
	})
}

// RandomInsertVocab inserts a random vocabulary word at a random position in
// [0, len(text)].
func RandomInsertVocab(vocab resource.Vocabulary) Maker {
	return Func(NameRandomInsertVocab, func(text string, rng *rand.Rand) (string, error) {
		if len(vocab) == 0 {
			return "", noCandidate(NameRandomInsertVocab, "empty vocabulary")
		}
		word := pick(rng, vocab)
		cs := chars(text)
		return insertAt(cs, rng.Intn(len(cs)+1), word), nil
	})
}
