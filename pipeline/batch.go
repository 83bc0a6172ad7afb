// SPDX-License-Identifier: MIT
// Package: zhmistake/pipeline
//
// batch.go — sequential Generate over many texts.

package pipeline

import "github.com/katalvlaran/zhmistake/corpus"

// Result is the outcome of one Batch item.
type Result struct {
	Index  int
	Corpus corpus.NoiseCorpus
	Err    error
}

// Batch runs Generate on each text in order. Failures are reported per item
// and do not stop the batch.
func (p *Pipeline) Batch(texts []string, req Request) []Result {
	out := make([]Result, len(texts))
	for i, text := range texts {
		rec, err := p.Generate(text, req)
		out[i] = Result{Index: i, Corpus: rec, Err: err}
	}
	return out
}
