// Package segment splits text into ordered word spans.
//
// Tokenizer is the boundary the makers consume; Gse is the production
// implementation (github.com/go-ego/gse with its embedded dictionary), Runes
// is a dictionary-free fallback and Func adapts any function.
//
// Invariant shared by every implementation: concatenating the spans of
// Segment(s) yields s again.
package segment

import (
	"fmt"
	"strings"

	"github.com/go-ego/gse"
)

// Tokenizer produces an ordered sequence of spans whose concatenation is the
// input. Implementations are deterministic for a fixed dictionary.
type Tokenizer interface {
	Segment(text string) []string
}

// Func adapts a plain function to Tokenizer.
type Func func(text string) []string

// Segment calls f.
func (f Func) Segment(text string) []string { return f(text) }

// Runes splits text into single characters.
type Runes struct{}

// Segment returns one span per rune; empty text yields an empty slice.
func (Runes) Segment(text string) []string {
	out := make([]string, 0, len(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}

// Gse segments with the gse dictionary segmenter (HMM enabled for
// out-of-vocabulary runs).
type Gse struct {
	seg gse.Segmenter
}

// NewGse loads the embedded gse dictionary. Loading is slow and should happen
// once per process.
func NewGse() (*Gse, error) {
	g := &Gse{}
	if err := g.seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("segment: load gse dictionary: %w", err)
	}
	return g, nil
}

// Segment cuts text into words. Spans that the segmenter trims are restored
// so that the concatenation invariant holds.
func (g *Gse) Segment(text string) []string {
	if text == "" {
		return []string{}
	}
	spans := g.seg.Cut(text, true)
	if strings.Join(spans, "") != text {
		// Fall back rather than break the invariant the makers rely on.
		return Runes{}.Segment(text)
	}
	return spans
}
