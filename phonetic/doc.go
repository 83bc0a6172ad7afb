// Package phonetic indexes Chinese characters and words by pronunciation.
//
// The index is built once from the pinyin tables of
// github.com/mozillazg/go-pinyin (tone-numbered "Tone3" readings, all
// heteronyms) and is immutable afterwards, so one *Index can be shared by
// every maker of a pipeline.
//
// Lookups:
//   - FindSame / FindSimilar         — characters with an identical reading,
//     or an identical reading once tones are dropped.
//   - FindSameVocab / FindSimilarVocab — vocabulary words with the same
//     per-character reading sequence (toned / toneless).
//   - SimilarReadings + CharsOf      — readings within an edit-distance level,
//     and the characters carrying a reading.
//
// Every lookup returns a non-nil slice; malformed or unknown input fails with
// an error wrapping corpus.ErrLookup.
package phonetic
