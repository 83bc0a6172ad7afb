// SPDX-License-Identifier: MIT
// Package: zhmistake/maker
//
// impl_missing.go — deletion strategies.
//
//   - MissingWord:         delete one random character.
//   - MissingVocab:        delete one random token of the segmented text.
//   - MissingWordHighFreq: delete the first occurrence of a random
//     high-frequency character present in the text.

package maker

import (
	"math/rand"

	"github.com/katalvlaran/zhmistake/resource"
	"github.com/katalvlaran/zhmistake/segment"
)

// MissingWord deletes one random character.
func MissingWord() Maker {
	return Func(NameMissingWord, func(text string, rng *rand.Rand) (string, error) {
		cs := chars(text)
		return removeAt(cs, rng.Intn(len(cs))), nil
	})
}

// MissingVocab deletes one random token produced by tok.
func MissingVocab(tok segment.Tokenizer) Maker {
	return Func(NameMissingVocab, func(text string, rng *rand.Rand) (string, error) {
		if tok == nil {
			return "", missing(NameMissingVocab, "tokenizer")
		}
		spans := tok.Segment(text)
		if len(spans) == 0 {
			return "", noCandidate(NameMissingVocab, "no token")
		}
		return removeAt(spans, rng.Intn(len(spans))), nil
	})
}

// MissingWordHighFreq deletes a high-frequency character. Each occurrence
// counts once in the draw, so repeated characters are proportionally more
// likely; the first occurrence of the drawn character is removed.
func MissingWordHighFreq(highFreq resource.CharSet) Maker {
	return Func(NameMissingWordHighFreq, func(text string, rng *rand.Rand) (string, error) {
		cs := chars(text)
		var present []string
		for _, c := range cs {
			if highFreq.Contains(c) {
				present = append(present, c)
			}
		}
		if len(present) == 0 {
			return "", noCandidate(NameMissingWordHighFreq, "no high-frequency char in text")
		}
		target := pick(rng, present)
		for i, c := range cs {
			if c == target {
				return removeAt(cs, i), nil
			}
		}
		return "", noCandidate(NameMissingWordHighFreq, "char vanished") // unreachable
	})
}
