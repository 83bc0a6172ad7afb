// SPDX-License-Identifier: MIT
// Package: zhmistake/corpus
//
// errors.go — sentinel errors and their classification.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is or KindOf.
//   - Producers attach context with %w: fmt.Errorf("%s: ...: %w", method, ErrX).
//   - Lookup, NoCandidate, TraditionalSimplifiedSame and DisallowedSpan are
//     local: the pipeline swallows them inside its retry loop.
//   - ZeroSearchResults and Precondition reach the caller.

package corpus

import "errors"

// ErrLookup indicates that a phonetic/dictionary lookup or a script
// conversion failed or returned unusable data.
var ErrLookup = errors.New("corpus: lookup failed")

// ErrNoCandidate indicates that a lookup succeeded but left no usable
// candidate (e.g. no high-frequency homophone exists).
var ErrNoCandidate = errors.New("corpus: no candidate found")

// ErrTraditionalSimplifiedSame indicates that correct and incorrect are equal
// once both are normalized to the canonical script.
var ErrTraditionalSimplifiedSame = errors.New("corpus: same after script normalization")

// ErrDisallowedSpan indicates that the perturbation changed an excluded token.
var ErrDisallowedSpan = errors.New("corpus: perturbation touches a disallowed span")

// ErrZeroSearchResults indicates that a whole attempt exhausted every maker
// and every retry without producing a valid perturbation.
var ErrZeroSearchResults = errors.New("corpus: generation exhausted: no maker produced a valid perturbation")

// ErrPrecondition indicates invalid input or configuration. Never retried.
var ErrPrecondition = errors.New("corpus: precondition violated")

// Kind is the closed classification of pipeline failures.
type Kind int

const (
	// KindNone classifies a nil error.
	KindNone Kind = iota
	// KindLookup classifies ErrLookup.
	KindLookup
	// KindNoCandidate classifies ErrNoCandidate.
	KindNoCandidate
	// KindNormalizationCollapse classifies ErrTraditionalSimplifiedSame.
	KindNormalizationCollapse
	// KindDisallowedSpan classifies ErrDisallowedSpan.
	KindDisallowedSpan
	// KindZeroSearchResults classifies ErrZeroSearchResults.
	KindZeroSearchResults
	// KindPrecondition classifies ErrPrecondition.
	KindPrecondition
	// KindUnknown classifies any error outside the taxonomy.
	KindUnknown
)

var kindNames = [...]string{
	KindNone:                  "none",
	KindLookup:                "lookup_failure",
	KindNoCandidate:           "no_candidate_found",
	KindNormalizationCollapse: "normalization_collapse",
	KindDisallowedSpan:        "disallowed_span",
	KindZeroSearchResults:     "zero_search_results",
	KindPrecondition:          "precondition",
	KindUnknown:               "unknown",
}

// String returns the snake_case name used in logs.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Retryable reports whether a fresh make() may succeed where this one failed.
// Unknown errors are retryable: a custom maker may fail for its own reasons.
func (k Kind) Retryable() bool {
	switch k {
	case KindLookup, KindNoCandidate, KindNormalizationCollapse, KindDisallowedSpan, KindUnknown:
		return true
	default:
		return false
	}
}

// KindOf classifies err. Precondition wins over every other sentinel found in
// the same chain.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrPrecondition):
		return KindPrecondition
	case errors.Is(err, ErrZeroSearchResults):
		return KindZeroSearchResults
	case errors.Is(err, ErrDisallowedSpan):
		return KindDisallowedSpan
	case errors.Is(err, ErrTraditionalSimplifiedSame):
		return KindNormalizationCollapse
	case errors.Is(err, ErrNoCandidate):
		return KindNoCandidate
	case errors.Is(err, ErrLookup):
		return KindLookup
	default:
		return KindUnknown
	}
}
