package maker

// Strategy identifiers. They are the registry keys and the Type labels
// stamped on records.
const (
	NameNoChange                 = "NoChange"
	NameMissingWord              = "MissingWordMaker"
	NameMissingVocab             = "MissingVocabMaker"
	NamePronounceSimilarWord     = "PronounceSimilarWordMaker"
	NamePronounceSimilarWordPlus = "PronounceSimilarWordPlusMaker"
	NamePronounceSameWord        = "PronounceSameWordMaker"
	NamePronounceSimilarVocab    = "PronounceSimilarVocabMaker"
	NamePronounceSameVocab       = "PronounceSameVocabMaker"
	NameRedundantWord            = "RedundantWordMaker"
	NameMistakeWord              = "MistakeWordMaker"
	NameMistakeWordHighFreq      = "MistakeWordHighFreqMaker"
	NameMissingWordHighFreq      = "MissingWordHighFreqMaker"
	NameRandomInsertVocab        = "RandomInsertVocabMaker"
)
