// SPDX-License-Identifier: MIT
// Package: zhmistake/corpus
//
// types.go — the NoiseCorpus record.

package corpus

// NoChangeType is the label carried by records that leave the input untouched.
const NoChangeType = "NoChange"

// TypeSeparator joins per-step labels of a multi-error record, in order of
// application ("MissingWordMaker_NoChange_RedundantWordMaker").
const TypeSeparator = "_"

// NoiseCorpus pairs a correct sentence with a perturbed ("incorrect") one.
//
// Type is stamped after the perturbation succeeds: the originating maker's
// identifier, or an underscore-joined chain after multi-error composition.
// An empty Type means the record was never stamped.
type NoiseCorpus struct {
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	Correct   string `json:"correct" yaml:"correct"`
	Incorrect string `json:"incorrect" yaml:"incorrect"`
}

// NoChange returns the sentinel record for text: Correct == Incorrect == text.
func NoChange(text string) NoiseCorpus {
	return NoiseCorpus{Type: NoChangeType, Correct: text, Incorrect: text}
}

// Changed reports whether the record carries a raw (un-normalized) difference.
func (c NoiseCorpus) Changed() bool {
	return c.Correct != c.Incorrect
}
