package maker_test

import (
	"fmt"

	"github.com/katalvlaran/zhmistake/corpus"
)

// fakePhonetic answers lookups from fixed tables. Characters absent from
// every table are "unknown" and fail with corpus.ErrLookup.
type fakePhonetic struct {
	same, similar           map[string][]string
	sameVocab, similarVocab map[string][]string
	readings                map[string][]string // char -> similar readings
	charsOf                 map[string][]string // reading -> chars
	failWith                error               // returned by every lookup when set
}

func (f *fakePhonetic) lookup(table map[string][]string, key string) ([]string, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	v, ok := table[key]
	if !ok {
		return nil, fmt.Errorf("fake: unknown %q: %w", key, corpus.ErrLookup)
	}
	return append([]string{}, v...), nil
}

func (f *fakePhonetic) FindSame(ch string) ([]string, error)       { return f.lookup(f.same, ch) }
func (f *fakePhonetic) FindSimilar(ch string) ([]string, error)    { return f.lookup(f.similar, ch) }
func (f *fakePhonetic) FindSameVocab(s string) ([]string, error)   { return f.lookup(f.sameVocab, s) }
func (f *fakePhonetic) FindSimilarVocab(s string) ([]string, error) { return f.lookup(f.similarVocab, s) }

func (f *fakePhonetic) SimilarReadings(ch string, _ int) ([]string, error) {
	return f.lookup(f.readings, ch)
}

func (f *fakePhonetic) CharsOf(reading string) []string {
	return append([]string{}, f.charsOf[reading]...)
}

// fakeUniverse is a fixed character list.
type fakeUniverse []string

func (u fakeUniverse) NumChars() int       { return len(u) }
func (u fakeUniverse) CharAt(i int) string { return u[i] }
