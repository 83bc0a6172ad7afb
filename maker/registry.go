// SPDX-License-Identifier: MIT
// Package: zhmistake/maker
//
// registry.go — static registry: identifier -> Factory.
//
// The registry is a literal map filled at package initialization; nothing is
// discovered at run time. registrationOrder fixes the order Defaults uses so
// that seeded pipelines built from the registry are reproducible.

package maker

import (
	"fmt"

	"github.com/katalvlaran/zhmistake/corpus"
)

// Factory builds a strategy from shared collaborators. It fails with
// corpus.ErrPrecondition when a required collaborator is missing.
type Factory func(deps Deps) (Maker, error)

var registry = map[string]Factory{
	NameNoChange:    func(Deps) (Maker, error) { return NoChange(), nil },
	NameMissingWord: func(Deps) (Maker, error) { return MissingWord(), nil },
	NameMissingVocab: func(d Deps) (Maker, error) {
		if d.Tokenizer == nil {
			return nil, missing(NameMissingVocab, "Deps.Tokenizer")
		}
		return MissingVocab(d.Tokenizer), nil
	},
	NamePronounceSimilarWord: func(d Deps) (Maker, error) {
		if d.Phonetic == nil {
			return nil, missing(NamePronounceSimilarWord, "Deps.Phonetic")
		}
		return PronounceSimilarWord(d.Phonetic), nil
	},
	NamePronounceSimilarWordPlus: func(d Deps) (Maker, error) {
		if d.Phonetic == nil {
			return nil, missing(NamePronounceSimilarWordPlus, "Deps.Phonetic")
		}
		if d.HighFreq.Len() == 0 {
			return nil, missing(NamePronounceSimilarWordPlus, "Deps.HighFreq")
		}
		if d.Level < 0 {
			return nil, fmt.Errorf("%s: level=%d < 0: %w", NamePronounceSimilarWordPlus, d.Level, corpus.ErrPrecondition)
		}
		return PronounceSimilarWordPlus(d.Phonetic, d.HighFreq, d.Level), nil
	},
	NamePronounceSameWord: func(d Deps) (Maker, error) {
		if d.Phonetic == nil {
			return nil, missing(NamePronounceSameWord, "Deps.Phonetic")
		}
		return PronounceSameWord(d.Phonetic), nil
	},
	NamePronounceSimilarVocab: func(d Deps) (Maker, error) {
		if d.Phonetic == nil || d.Tokenizer == nil {
			return nil, missing(NamePronounceSimilarVocab, "Deps.Phonetic and Deps.Tokenizer")
		}
		return PronounceSimilarVocab(d.Phonetic, d.Tokenizer), nil
	},
	NamePronounceSameVocab: func(d Deps) (Maker, error) {
		if d.Phonetic == nil || d.Tokenizer == nil {
			return nil, missing(NamePronounceSameVocab, "Deps.Phonetic and Deps.Tokenizer")
		}
		return PronounceSameVocab(d.Phonetic, d.Tokenizer), nil
	},
	NameRedundantWord: func(Deps) (Maker, error) { return RedundantWord(), nil },
	NameMistakeWord: func(d Deps) (Maker, error) {
		if d.Universe == nil {
			return nil, missing(NameMistakeWord, "Deps.Universe")
		}
		return MistakeWord(d.Universe), nil
	},
	NameMistakeWordHighFreq: func(d Deps) (Maker, error) {
		if d.HighFreq.Len() == 0 {
			return nil, missing(NameMistakeWordHighFreq, "Deps.HighFreq")
		}
		return MistakeWordHighFreq(d.HighFreq), nil
	},
	NameMissingWordHighFreq: func(d Deps) (Maker, error) {
		if d.HighFreq.Len() == 0 {
			return nil, missing(NameMissingWordHighFreq, "Deps.HighFreq")
		}
		return MissingWordHighFreq(d.HighFreq), nil
	},
	NameRandomInsertVocab: func(d Deps) (Maker, error) {
		if len(d.Vocabulary) == 0 {
			return nil, missing(NameRandomInsertVocab, "Deps.Vocabulary")
		}
		return RandomInsertVocab(d.Vocabulary), nil
	},
}

var registrationOrder = []string{
	NameMissingWord,
	NameMissingVocab,
	NamePronounceSimilarWord,
	NamePronounceSimilarWordPlus,
	NamePronounceSameWord,
	NamePronounceSimilarVocab,
	NamePronounceSameVocab,
	NameRedundantWord,
	NameMistakeWord,
	NameMistakeWordHighFreq,
	NameMissingWordHighFreq,
	NameRandomInsertVocab,
}

// Names returns every registered identifier except NoChange, in registration
// order.
func Names() []string {
	return append([]string(nil), registrationOrder...)
}

// Registered reports whether name is a registry key (NoChange included).
func Registered(name string) bool {
	_, ok := registry[name]
	return ok
}

// New builds the strategy registered under name.
func New(name string, deps Deps) (Maker, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("maker.New: unknown maker %q: %w", name, corpus.ErrPrecondition)
	}
	return f(deps)
}

// NewAll builds the strategies named in names, in order.
func NewAll(names []string, deps Deps) ([]Maker, error) {
	out := make([]Maker, 0, len(names))
	for _, name := range names {
		m, err := New(name, deps)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Defaults builds every registered strategy except NoChange.
func Defaults(deps Deps) ([]Maker, error) {
	return NewAll(registrationOrder, deps)
}
