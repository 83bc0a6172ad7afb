// SPDX-License-Identifier: MIT
// Package: zhmistake/maker
//
// maker.go — the Maker contract and the collaborator interfaces strategies
// consume.

package maker

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/zhmistake/corpus"
	"github.com/katalvlaran/zhmistake/resource"
	"github.com/katalvlaran/zhmistake/segment"
)

// Maker is a single perturbation strategy.
//
// Make must either return a record with Correct == text and a transformed
// Incorrect, or fail with an error classified by corpus.KindOf. It must not
// keep state between calls and must draw randomness only from rng.
type Maker interface {
	Name() string
	Make(text string, rng *rand.Rand) (corpus.NoiseCorpus, error)
}

// Phonetic is the pronunciation lookup used by the Pronounce* strategies.
// *phonetic.Index implements it. Lookups return non-nil slices and fail with
// corpus.ErrLookup on malformed input.
type Phonetic interface {
	FindSame(ch string) ([]string, error)
	FindSimilar(ch string) ([]string, error)
	FindSameVocab(span string) ([]string, error)
	FindSimilarVocab(span string) ([]string, error)
	SimilarReadings(ch string, level int) ([]string, error)
	CharsOf(reading string) []string
}

// Universe is a sampleable character set (the phonetic index universe).
type Universe interface {
	NumChars() int
	CharAt(i int) string
}

// DefaultLevel is the edit-distance level of PronounceSimilarWordPlusMaker
// when Deps.Level is zero.
const DefaultLevel = 1

// Deps carries the shared, read-only collaborators handed to factories.
type Deps struct {
	Tokenizer  segment.Tokenizer
	Phonetic   Phonetic
	Universe   Universe
	HighFreq   resource.CharSet
	Vocabulary resource.Vocabulary
	// Level bounds the reading edit distance of PronounceSimilarWordPlusMaker.
	Level int
}

// TransformFunc is the raw body of a strategy: it returns the incorrect text.
type TransformFunc func(text string, rng *rand.Rand) (string, error)

// funcMaker adapts a TransformFunc to Maker.
type funcMaker struct {
	name       string
	allowEmpty bool
	fn         TransformFunc
}

// Func wraps fn as a Maker named name. The wrapper rejects empty text and a
// nil rng with corpus.ErrPrecondition and fills Correct with text.
func Func(name string, fn TransformFunc) Maker {
	return &funcMaker{name: name, fn: fn}
}

func (m *funcMaker) Name() string { return m.name }

func (m *funcMaker) Make(text string, rng *rand.Rand) (corpus.NoiseCorpus, error) {
	if text == "" && !m.allowEmpty {
		return corpus.NoiseCorpus{}, fmt.Errorf("%s: empty text: %w", m.name, corpus.ErrPrecondition)
	}
	if rng == nil {
		return corpus.NoiseCorpus{}, fmt.Errorf("%s: rng is required: %w", m.name, corpus.ErrPrecondition)
	}
	if m.fn == nil {
		return corpus.NoiseCorpus{}, fmt.Errorf("%s: nil transform: %w", m.name, corpus.ErrPrecondition)
	}
	incorrect, err := m.fn(text, rng)
	if err != nil {
		return corpus.NoiseCorpus{}, err
	}
	return corpus.NoiseCorpus{Correct: text, Incorrect: incorrect}, nil
}

// String lets makers print by name in logs.
func (m *funcMaker) String() string { return m.name }
