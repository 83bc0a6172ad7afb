// SPDX-License-Identifier: MIT
// Package: zhmistake/phonetic
//
// index.go — pronunciation index over go-pinyin tables.
//
// Contract:
//   - Readings are Tone3 strings ("zhong1"); a neutral tone has no digit.
//   - The base of a reading is the reading without its tone digit.
//   - Result slices are sorted (characters by code point, words and readings
//     lexically) so that seeded callers stay deterministic.
//   - The index is read-only after New; it is safe for concurrent readers.

package phonetic

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mozillazg/go-pinyin"

	"github.com/katalvlaran/zhmistake/corpus"
	"github.com/katalvlaran/zhmistake/editdist"
)

const (
	methodNew              = "phonetic.New"
	methodFindSame         = "FindSame"
	methodFindSimilar      = "FindSimilar"
	methodFindSameVocab    = "FindSameVocab"
	methodFindSimilarVocab = "FindSimilarVocab"
	methodSimilarReadings  = "SimilarReadings"
	methodReadings         = "Readings"

	vocabKeySep = " "
)

// Index maps characters and words to readings and back.
type Index struct {
	chars     []string            // universe, sorted by code point
	readings  map[string][]string // char -> readings, go-pinyin order
	byReading map[string][]string // reading -> chars
	byBase    map[string][]string // toneless reading -> chars
	allRead   []string            // distinct readings, sorted

	vocabByReading map[string][]string // "yu3 yan2" -> words
	vocabByBase    map[string][]string // "yu yan" -> words
}

// New builds an index. It fails with corpus.ErrPrecondition when the
// resulting universe is empty.
func New(opts ...Option) (*Index, error) {
	var cfg indexConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	idx := &Index{
		readings:       make(map[string][]string),
		byReading:      make(map[string][]string),
		byBase:         make(map[string][]string),
		vocabByReading: make(map[string][]string),
		vocabByBase:    make(map[string][]string),
	}

	heteronym := pinyin.NewArgs()
	heteronym.Style = pinyin.Tone3
	heteronym.Heteronym = true

	for _, r := range universe(cfg.charset) {
		ch := string(r)
		got := pinyin.Pinyin(ch, heteronym)
		if len(got) == 0 || len(got[0]) == 0 {
			continue
		}
		rs := dedupe(got[0])
		idx.chars = append(idx.chars, ch)
		idx.readings[ch] = rs
		seenBase := make(map[string]struct{}, len(rs))
		for _, reading := range rs {
			idx.byReading[reading] = append(idx.byReading[reading], ch)
			b := base(reading)
			if _, dup := seenBase[b]; dup {
				continue
			}
			seenBase[b] = struct{}{}
			idx.byBase[b] = append(idx.byBase[b], ch)
		}
	}
	if len(idx.chars) == 0 {
		return nil, fmt.Errorf("%s: empty character universe: %w", methodNew, corpus.ErrPrecondition)
	}

	idx.allRead = make([]string, 0, len(idx.byReading))
	for reading := range idx.byReading {
		idx.allRead = append(idx.allRead, reading)
	}
	sort.Strings(idx.allRead)

	for _, w := range dedupe(cfg.vocabulary) {
		toned, ok := wordReadings(w)
		if !ok {
			continue
		}
		key := strings.Join(toned, vocabKeySep)
		idx.vocabByReading[key] = append(idx.vocabByReading[key], w)
		bkey := baseKey(toned)
		idx.vocabByBase[bkey] = append(idx.vocabByBase[bkey], w)
	}
	for _, words := range idx.vocabByReading {
		sort.Strings(words)
	}
	for _, words := range idx.vocabByBase {
		sort.Strings(words)
	}

	return idx, nil
}

// Readings returns the readings of a single character.
func (x *Index) Readings(ch string) ([]string, error) {
	rs, err := x.lookupChar(methodReadings, ch)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), rs...), nil
}

// FindSame returns characters sharing at least one exact reading with ch.
func (x *Index) FindSame(ch string) ([]string, error) {
	rs, err := x.lookupChar(methodFindSame, ch)
	if err != nil {
		return nil, err
	}
	var groups [][]string
	for _, reading := range rs {
		groups = append(groups, x.byReading[reading])
	}
	return mergeExcept(ch, groups...), nil
}

// FindSimilar returns characters sharing a reading with ch once tones are
// ignored.
func (x *Index) FindSimilar(ch string) ([]string, error) {
	rs, err := x.lookupChar(methodFindSimilar, ch)
	if err != nil {
		return nil, err
	}
	var groups [][]string
	for _, reading := range rs {
		groups = append(groups, x.byBase[base(reading)])
	}
	return mergeExcept(ch, groups...), nil
}

// FindSameVocab returns vocabulary words whose toned reading sequence equals
// span's.
func (x *Index) FindSameVocab(span string) ([]string, error) {
	toned, ok := wordReadings(span)
	if !ok {
		return nil, fmt.Errorf("%s(%q): no reading: %w", methodFindSameVocab, span, corpus.ErrLookup)
	}
	return mergeExcept(span, x.vocabByReading[strings.Join(toned, vocabKeySep)]), nil
}

// FindSimilarVocab returns vocabulary words whose toneless reading sequence
// equals span's.
func (x *Index) FindSimilarVocab(span string) ([]string, error) {
	toned, ok := wordReadings(span)
	if !ok {
		return nil, fmt.Errorf("%s(%q): no reading: %w", methodFindSimilarVocab, span, corpus.ErrLookup)
	}
	return mergeExcept(span, x.vocabByBase[baseKey(toned)]), nil
}

// SimilarReadings returns the distinct readings at edit distance 1..level
// from any reading of ch. It is the leveled variant of FindSimilar.
func (x *Index) SimilarReadings(ch string, level int) ([]string, error) {
	if level < 1 {
		return nil, fmt.Errorf("%s: level=%d < 1: %w", methodSimilarReadings, level, corpus.ErrPrecondition)
	}
	rs, err := x.lookupChar(methodSimilarReadings, ch)
	if err != nil {
		return nil, err
	}

	opts := editdist.Options{Window: level, MemoryMode: editdist.TwoRows}
	out := []string{}
	seen := make(map[string]struct{})
	for _, own := range rs {
		src := []rune(own)
		for _, cand := range x.allRead {
			if _, dup := seen[cand]; dup {
				continue
			}
			d, _, derr := editdist.Distance(src, []rune(cand), &opts)
			if derr != nil || d == 0 || d > level {
				// ErrOutsideWindow: lengths differ by more than level.
				continue
			}
			seen[cand] = struct{}{}
			out = append(out, cand)
		}
	}
	// own readings are distance 0 from themselves but may be within level of
	// each other (heteronyms); drop them so only new sounds remain.
	out = filterOut(out, rs)
	sort.Strings(out)
	return out, nil
}

// CharsOf returns the characters carrying reading, never nil.
func (x *Index) CharsOf(reading string) []string {
	return append([]string{}, x.byReading[reading]...)
}

// NumChars returns the size of the character universe.
func (x *Index) NumChars() int { return len(x.chars) }

// CharAt returns the i-th character of the universe (code-point order).
func (x *Index) CharAt(i int) string { return x.chars[i] }

// Chars returns a copy of the character universe.
func (x *Index) Chars() []string {
	return append([]string(nil), x.chars...)
}

func (x *Index) lookupChar(method, ch string) ([]string, error) {
	if utf8.RuneCountInString(ch) != 1 {
		return nil, fmt.Errorf("%s(%q): want a single character: %w", method, ch, corpus.ErrLookup)
	}
	rs, ok := x.readings[ch]
	if !ok {
		return nil, fmt.Errorf("%s(%q): unknown character: %w", method, ch, corpus.ErrLookup)
	}
	return rs, nil
}

// wordReadings returns the first (most common) reading of every rune of w,
// or false when any rune has none.
func wordReadings(w string) ([]string, bool) {
	n := utf8.RuneCountInString(w)
	if n == 0 {
		return nil, false
	}
	got := pinyin.Pinyin(w, pinyinArgs())
	if len(got) != n {
		return nil, false
	}
	out := make([]string, n)
	for i, rs := range got {
		if len(rs) == 0 {
			return nil, false
		}
		out[i] = rs[0]
	}
	return out, true
}

func pinyinArgs() pinyin.Args {
	a := pinyin.NewArgs()
	a.Style = pinyin.Tone3
	return a
}

// universe returns the candidate runes sorted by code point.
func universe(charset []string) []rune {
	var out []rune
	if len(charset) > 0 {
		seen := make(map[rune]struct{}, len(charset))
		for _, s := range charset {
			if utf8.RuneCountInString(s) != 1 {
				continue
			}
			r, _ := utf8.DecodeRuneInString(s)
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
			out = append(out, r)
		}
	} else {
		out = make([]rune, 0, len(pinyin.PinyinDict))
		for cp := range pinyin.PinyinDict {
			out = append(out, rune(cp))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// base strips a trailing tone digit.
func base(reading string) string {
	if n := len(reading); n > 0 && reading[n-1] >= '0' && reading[n-1] <= '9' {
		return reading[:n-1]
	}
	return reading
}

func baseKey(toned []string) string {
	bs := make([]string, len(toned))
	for i, r := range toned {
		bs[i] = base(r)
	}
	return strings.Join(bs, vocabKeySep)
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// mergeExcept unions groups, drops self and sorts.
func mergeExcept(self string, groups ...[]string) []string {
	out := []string{}
	seen := map[string]struct{}{self: {}}
	for _, g := range groups {
		for _, s := range g {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func filterOut(in, drop []string) []string {
	out := in[:0]
next:
	for _, s := range in {
		for _, d := range drop {
			if s == d {
				continue next
			}
		}
		out = append(out, s)
	}
	return out
}
