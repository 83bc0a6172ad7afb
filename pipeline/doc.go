// Package pipeline orchestrates perturbation strategies into noisy training
// pairs.
//
// A Pipeline holds an ordered list of makers, optional parallel selection
// weights, one seeded random source and a maker.Guard. Its operations are:
//
//   - Attempt:         run every candidate maker (with retries), shuffle the
//     successes and return up to k of them.
//   - WeightedAttempt: draw k makers with replacement, proportional to
//     weight, and Attempt with that multiset.
//   - Generate:        apply ErrorsPerSentence perturbations in sequence,
//     each step working on the previous step's incorrect text, and fold the
//     result into one record labeled "A_B_C".
//   - Batch:           Generate over a slice of texts, keeping input order.
//
// Failures inside the retry loop (lookup, no candidate, normalization
// collapse, disallowed span and unclassified maker errors) are swallowed.
// Precondition violations stop immediately. When nothing succeeds the caller
// gets corpus.ErrZeroSearchResults, or a NoChange record if the request
// allows it.
//
// Concurrency: a Pipeline owns a *rand.Rand and is therefore confined to one
// goroutine. Build one Pipeline per worker.
package pipeline
