// Package maker provides the perturbation strategies ("makers") that turn a
// correct Chinese sentence into a plausible mistake, the wrapper that
// validates every perturbation, and a static registry of all strategies.
//
// Components:
//
//   - Maker:    one randomized strategy, Make(text, rng) -> NoiseCorpus.
//   - Guard:    stamps the maker identifier, rejects perturbations that vanish
//     after script normalization (corpus.ErrTraditionalSimplifiedSame) and
//     perturbations that touch an excluded token (corpus.ErrDisallowedSpan).
//   - Registry: identifier -> Factory, populated at package initialization;
//     Defaults(deps) builds every strategy except the NoChange sentinel.
//
// Strategies never draw from a global random source: the caller passes the
// *rand.Rand, usually the one owned by a pipeline. Strategies index text by
// rune and reject empty text with corpus.ErrPrecondition.
//
// Shared resources (phonetic index, tokenizer, high-frequency list,
// vocabulary) are constructed once by the caller and injected through Deps;
// makers keep them read-only.
package maker
