package phonetic

// Option customizes index construction.
type Option func(*indexConfig)

type indexConfig struct {
	charset    []string
	vocabulary []string
}

// WithCharset restricts the character universe to chars (single runes;
// longer entries are ignored). Without it every character known to the
// pinyin tables is indexed.
func WithCharset(chars []string) Option {
	return func(c *indexConfig) {
		c.charset = chars
	}
}

// WithVocabulary sets the word list used by the vocabulary lookups.
func WithVocabulary(words []string) Option {
	return func(c *indexConfig) {
		c.vocabulary = words
	}
}
