// SPDX-License-Identifier: MIT
// Package: zhmistake/maker
//
// impl_pronounce.go — phonetic substitution strategies.
//
// Contract shared by every strategy in this file:
//   - The phonetic collaborator is required (else corpus.ErrPrecondition).
//   - Lookup failures wrap corpus.ErrLookup; empty candidate sets wrap
//     corpus.ErrNoCandidate. Both are retried by the pipeline.
//   - Character strategies draw the position first, then the candidate;
//     vocabulary strategies draw the token first, then the candidate.

package maker

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/zhmistake/resource"
	"github.com/katalvlaran/zhmistake/segment"
)

// charLookup is one of Phonetic.FindSame / Phonetic.FindSimilar.
type charLookup func(p Phonetic, ch string) ([]string, error)

// spanLookup is one of Phonetic.FindSameVocab / Phonetic.FindSimilarVocab.
type spanLookup func(p Phonetic, span string) ([]string, error)

// PronounceSimilarWord replaces one character by a character with the same
// reading once tones are ignored.
func PronounceSimilarWord(p Phonetic) Maker {
	return charSubstitution(NamePronounceSimilarWord, "FindSimilar", p, Phonetic.FindSimilar)
}

// PronounceSameWord replaces one character by an exact homophone.
func PronounceSameWord(p Phonetic) Maker {
	return charSubstitution(NamePronounceSameWord, "FindSame", p, Phonetic.FindSame)
}

// PronounceSimilarVocab replaces one token by a vocabulary word with the same
// toneless reading sequence.
func PronounceSimilarVocab(p Phonetic, tok segment.Tokenizer) Maker {
	return spanSubstitution(NamePronounceSimilarVocab, "FindSimilarVocab", p, tok, Phonetic.FindSimilarVocab)
}

// PronounceSameVocab replaces one token by a vocabulary word with the same
// toned reading sequence.
func PronounceSameVocab(p Phonetic, tok segment.Tokenizer) Maker {
	return spanSubstitution(NamePronounceSameVocab, "FindSameVocab", p, tok, Phonetic.FindSameVocab)
}

// PronounceSimilarWordPlus replaces one character by a high-frequency
// character whose reading lies within level edits of the original reading:
// draw a similar reading, keep its high-frequency characters, draw one.
func PronounceSimilarWordPlus(p Phonetic, highFreq resource.CharSet, level int) Maker {
	if level == 0 {
		level = DefaultLevel
	}
	return Func(NamePronounceSimilarWordPlus, func(text string, rng *rand.Rand) (string, error) {
		if p == nil {
			return "", missing(NamePronounceSimilarWordPlus, "phonetic index")
		}
		cs := chars(text)
		i := rng.Intn(len(cs))
		orig := cs[i]

		readings, err := p.SimilarReadings(orig, level)
		if err != nil {
			return "", lookupErr(NamePronounceSimilarWordPlus, fmt.Sprintf("SimilarReadings(%q, %d)", orig, level), err)
		}
		if len(readings) == 0 {
			return "", noCandidate(NamePronounceSimilarWordPlus, "no similar reading")
		}
		reading := pick(rng, readings)

		var frequent []string
		for _, c := range p.CharsOf(reading) {
			if highFreq.Contains(c) {
				frequent = append(frequent, c)
			}
		}
		if len(frequent) == 0 {
			return "", noCandidate(NamePronounceSimilarWordPlus, "no high-frequency char for "+reading)
		}
		repl := pick(rng, frequent)
		if repl == orig {
			return "", noCandidate(NamePronounceSimilarWordPlus, "same char")
		}
		return replaceAt(cs, i, repl), nil
	})
}

func charSubstitution(name, call string, p Phonetic, find charLookup) Maker {
	return Func(name, func(text string, rng *rand.Rand) (string, error) {
		if p == nil {
			return "", missing(name, "phonetic index")
		}
		cs := chars(text)
		i := rng.Intn(len(cs))

		cands, err := find(p, cs[i])
		if err != nil {
			return "", lookupErr(name, fmt.Sprintf("%s(%q)", call, cs[i]), err)
		}
		if len(cands) == 0 {
			return "", noCandidate(name, fmt.Sprintf("%s(%q) is empty", call, cs[i]))
		}
		return replaceAt(cs, i, pick(rng, cands)), nil
	})
}

func spanSubstitution(name, call string, p Phonetic, tok segment.Tokenizer, find spanLookup) Maker {
	return Func(name, func(text string, rng *rand.Rand) (string, error) {
		if p == nil {
			return "", missing(name, "phonetic index")
		}
		if tok == nil {
			return "", missing(name, "tokenizer")
		}
		spans := tok.Segment(text)
		if len(spans) == 0 {
			return "", noCandidate(name, "no token")
		}
		i := rng.Intn(len(spans))

		cands, err := find(p, spans[i])
		if err != nil {
			return "", lookupErr(name, fmt.Sprintf("%s(%q)", call, spans[i]), err)
		}
		if len(cands) == 0 {
			return "", noCandidate(name, fmt.Sprintf("%s(%q) is empty", call, spans[i]))
		}
		return replaceAt(spans, i, pick(rng, cands)), nil
	})
}
