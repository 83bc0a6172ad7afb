// SPDX-License-Identifier: MIT
// Package: zhmistake/maker
//
// impl_mistake.go — random substitution strategies (no phonetic relation).

package maker

import (
	"math/rand"

	"github.com/katalvlaran/zhmistake/resource"
)

// MistakeWord replaces one character by a random character of u.
func MistakeWord(u Universe) Maker {
	return Func(NameMistakeWord, func(text string, rng *rand.Rand) (string, error) {
		if u == nil {
			return "", missing(NameMistakeWord, "character universe")
		}
		if u.NumChars() == 0 {
			return "", noCandidate(NameMistakeWord, "empty character universe")
		}
		ch := u.CharAt(rng.Intn(u.NumChars()))
		cs := chars(text)
		return replaceAt(cs, rng.Intn(len(cs)), ch), nil
	})
}

// MistakeWordHighFreq replaces one character by a random high-frequency
// character.
func MistakeWordHighFreq(highFreq resource.CharSet) Maker {
	return Func(NameMistakeWordHighFreq, func(text string, rng *rand.Rand) (string, error) {
		if highFreq.Len() == 0 {
			return "", noCandidate(NameMistakeWordHighFreq, "empty high-frequency list")
		}
		ch := highFreq.At(rng.Intn(highFreq.Len()))
		cs := chars(text)
		return replaceAt(cs, rng.Intn(len(cs)), ch), nil
	})
}
