package maker

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/zhmistake/corpus"
)

// chars splits text into one string per rune.
func chars(text string) []string {
	out := make([]string, 0, len(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}

// replaceAt returns parts with parts[i] replaced by s, joined.
func replaceAt(parts []string, i int, s string) string {
	out := make([]string, len(parts))
	copy(out, parts)
	out[i] = s
	return strings.Join(out, "")
}

// removeAt returns parts without parts[i], joined.
func removeAt(parts []string, i int) string {
	out := make([]string, 0, len(parts)-1)
	out = append(out, parts[:i]...)
	out = append(out, parts[i+1:]...)
	return strings.Join(out, "")
}

// insertAt returns parts with s inserted before index i (i may be len(parts)).
func insertAt(parts []string, i int, s string) string {
	out := make([]string, 0, len(parts)+1)
	out = append(out, parts[:i]...)
	out = append(out, s)
	out = append(out, parts[i:]...)
	return strings.Join(out, "")
}

// pick returns a uniformly random element of xs; xs must be non-empty.
func pick(rng *rand.Rand, xs []string) string {
	return xs[rng.Intn(len(xs))]
}

// lookupErr attaches method context to a collaborator failure and makes
// sure it classifies as corpus.ErrLookup when the collaborator used its own
// error values.
func lookupErr(method, call string, err error) error {
	if corpus.KindOf(err) == corpus.KindUnknown {
		return fmt.Errorf("%s: %s: %w: %w", method, call, corpus.ErrLookup, err)
	}
	return fmt.Errorf("%s: %s: %w", method, call, err)
}

// noCandidate reports an empty usable candidate set.
func noCandidate(method, what string) error {
	return fmt.Errorf("%s: %s: %w", method, what, corpus.ErrNoCandidate)
}

// missing reports an absent collaborator.
func missing(method, what string) error {
	return fmt.Errorf("%s: %s is required: %w", method, what, corpus.ErrPrecondition)
}
