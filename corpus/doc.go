// Package corpus defines the record produced by every maker and the closed
// set of failure kinds that the maker wrapper and the pipeline branch on.
//
// A NoiseCorpus pairs a correct sentence with its perturbed counterpart:
//
//	{Type: "MissingWordMaker", Correct: "中文語料生成", Incorrect: "中語料生成"}
//
// Failures are package-level sentinels. Callers classify them with errors.Is
// or with KindOf, never by comparing strings:
//
//	switch corpus.KindOf(err) {
//	case corpus.KindZeroSearchResults:
//		// every maker exhausted its retries
//	case corpus.KindPrecondition:
//		// bad input or bad configuration; do not retry
//	}
package corpus
