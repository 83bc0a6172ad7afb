// Package zhmistake generates noisy Chinese sentences: pairs of a correct
// sentence and a plausibly misspelled twin, for training and evaluating
// Chinese spelling/grammar error correction.
//
// 🚀 What is zhmistake?
//
//	A deterministic, seedable library that brings together:
//		• Makers: thirteen perturbation strategies (deletion, insertion,
//		  random and phonetic substitution at character and word level)
//		• Guard: rejects script-only changes (traditional vs simplified)
//		  and changes that touch particles, pronouns or punctuation
//		• Pipeline: retry protocol, weighted and group-weighted selection,
//		  multi-error generation with chained validation
//		• CLI: one sentence per line in, JSON lines out
//
// Under the hood, everything is organized by concern:
//
//	corpus/    — NoiseCorpus record and the closed failure taxonomy
//	resource/  — embedded high-frequency chars, vocabulary, exclusion list
//	editdist/  — Levenshtein distance with optional edit script
//	phonetic/  — pinyin index: homophones, near-homophones, word readings
//	segment/   — word segmentation (gse)
//	convert/   — script normalization (OpenCC)
//	exclude/   — diff-based exclusion validator (go-difflib)
//	maker/     — Maker contract, Guard, registry and strategies
//	pipeline/  — orchestration
//	config/    — YAML configuration of the CLI
//
// Quick example:
//
//	正: 維基的基本設計理念是
//	誤: 維基的基本設計理念市   (PronounceSameWordMaker)
//
//	go install github.com/katalvlaran/zhmistake/cmd/zhmistake@latest
package zhmistake
