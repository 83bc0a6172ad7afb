// SPDX-License-Identifier: MIT
// Package: zhmistake/pipeline
//
// generate.go — multi-error generation.

package pipeline

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/zhmistake/corpus"
)

// Request carries the per-call knobs of Generate and Attempt.
type Request struct {
	// ErrorsPerSentence is the number of sequential perturbations (>= 1).
	ErrorsPerSentence int
	// AllowNoChange turns total failure into a NoChange record.
	AllowNoChange bool
	// Verbose logs every swallowed maker failure at WARN.
	Verbose bool
}

// DefaultRequest returns one error per sentence, strict, quiet.
func DefaultRequest() Request {
	return Request{ErrorsPerSentence: 1}
}

// Generate applies req.ErrorsPerSentence perturbations to text. Step i works
// on the incorrect text of step i-1 and is validated against it. The result
// has Correct == text, the final incorrect text and Type == the step labels
// joined with "_".
//
// Each step uses WeightedAttempt when weights are configured and Attempt
// otherwise, with k = 1. Any error aborts the whole call. A step that finds
// the intermediate text empty counts as a failed step: NoChange when
// req.AllowNoChange is set, else corpus.ErrZeroSearchResults.
func (p *Pipeline) Generate(text string, req Request) (corpus.NoiseCorpus, error) {
	const method = "pipeline.Generate"
	if req.ErrorsPerSentence < 1 {
		return corpus.NoiseCorpus{}, fmt.Errorf("%s: errors per sentence=%d < 1: %w", method, req.ErrorsPerSentence, corpus.ErrPrecondition)
	}
	if text == "" {
		return corpus.NoiseCorpus{}, fmt.Errorf("%s: empty text: %w", method, corpus.ErrPrecondition)
	}

	working := text
	labels := make([]string, 0, req.ErrorsPerSentence)
	for i := 0; i < req.ErrorsPerSentence; i++ {
		if working == "" {
			// A previous step deleted the last character.
			if !req.AllowNoChange {
				return corpus.NoiseCorpus{}, fmt.Errorf("%s: step %d: empty intermediate text: %w", method, i+1, corpus.ErrZeroSearchResults)
			}
			labels = append(labels, corpus.NoChangeType)
			continue
		}

		var (
			out []corpus.NoiseCorpus
			err error
		)
		if p.Weighted() {
			out, err = p.WeightedAttempt(working, 1, req)
		} else {
			out, err = p.Attempt(working, 1, req)
		}
		if err != nil {
			return corpus.NoiseCorpus{}, fmt.Errorf("%s: step %d: %w", method, i+1, err)
		}
		working = out[0].Incorrect
		labels = append(labels, out[0].Type)
	}

	return corpus.NoiseCorpus{
		Type:      strings.Join(labels, corpus.TypeSeparator),
		Correct:   text,
		Incorrect: working,
	}, nil
}
