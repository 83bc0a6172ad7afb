// Package editdist computes Levenshtein distances between rune sequences,
// with an optional edit script and a memory/speed trade-off.
//
// What is it for?
//
//	The phonetic index compares romanized readings ("zhong1" vs "zong1") to
//	find similar-sounding characters within a bounded number of edits.
//
// Key features:
//   - full-matrix mode: O(N·M) memory, supports the edit script
//   - two-row mode: O(M) memory, distance only
//   - optional Sakoe–Chiba style band (|i−j| ≤ Window) for bounded searches
//
// Usage:
//
//	opts := editdist.DefaultOptions()
//	opts.ReturnScript = true
//	d, script, err := editdist.Distance([]rune("kitten"), []rune("sitting"), &opts)
//
// Complexity:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package editdist
