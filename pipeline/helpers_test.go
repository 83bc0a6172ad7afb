package pipeline_test

import (
	"math/rand"

	"github.com/katalvlaran/zhmistake/corpus"
	"github.com/katalvlaran/zhmistake/maker"
)

// appendMaker appends suffix to its input.
func appendMaker(name, suffix string) maker.Maker {
	return maker.Func(name, func(text string, _ *rand.Rand) (string, error) {
		return text + suffix, nil
	})
}

// countingMaker returns out (or err) and counts invocations.
type countingMaker struct {
	name  string
	calls int
	err   error
	out   string
}

func (c *countingMaker) Name() string { return c.name }

func (c *countingMaker) Make(text string, _ *rand.Rand) (corpus.NoiseCorpus, error) {
	c.calls++
	if c.err != nil {
		return corpus.NoiseCorpus{}, c.err
	}
	return corpus.NoiseCorpus{Correct: text, Incorrect: c.out}, nil
}
