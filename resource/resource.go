// SPDX-License-Identifier: MIT
// Package: zhmistake/resource
//
// resource.go — bundled static assets: high-frequency characters, the
// vocabulary dictionary and the disable-word (exclusion) list.
//
// Contract:
//   - Assets are embedded; Load never touches the file system.
//   - Parsing is line based: surrounding whitespace is trimmed, blank lines
//     and '#' comments are skipped, duplicates keep their first position.
//   - A load failure is fatal at startup; nothing here is retried.
//   - Returned values are read-only after construction.

package resource

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// Embedded asset names, relative to data/.
const (
	HighFreqFile     = "high_freq_zh_char.txt"
	VocabularyFile   = "vocab.txt"
	DisableWordsFile = "disable_words.txt"
)

//go:embed data/*.txt
var assets embed.FS

// Resources groups every static asset a maker set may need.
type Resources struct {
	HighFreq     CharSet
	Vocabulary   Vocabulary
	DisableWords []string
}

// Load parses all embedded assets.
func Load() (Resources, error) {
	var (
		res Resources
		err error
	)
	if res.HighFreq, err = LoadHighFreq(); err != nil {
		return Resources{}, err
	}
	if res.Vocabulary, err = LoadVocabulary(); err != nil {
		return Resources{}, err
	}
	if res.DisableWords, err = LoadDisableWords(); err != nil {
		return Resources{}, err
	}
	return res, nil
}

// LoadHighFreq parses the embedded high-frequency character list.
func LoadHighFreq() (CharSet, error) {
	lines, err := readAsset(HighFreqFile)
	if err != nil {
		return CharSet{}, err
	}
	return NewCharSet(lines), nil
}

// LoadVocabulary parses the embedded vocabulary dictionary.
func LoadVocabulary() (Vocabulary, error) {
	lines, err := readAsset(VocabularyFile)
	if err != nil {
		return nil, err
	}
	return Vocabulary(lines), nil
}

// LoadDisableWords parses the embedded exclusion list.
func LoadDisableWords() ([]string, error) {
	return readAsset(DisableWordsFile)
}

// LoadFile parses an on-disk list in the same format as the embedded assets.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("resource: open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("resource: read %s: %w", path, err)
	}
	return lines, nil
}

// ReadLines parses r: one entry per line, trimmed, '#' comments and blanks
// skipped, duplicates dropped (first occurrence wins).
func ReadLines(r io.Reader) ([]string, error) {
	var (
		out  []string
		seen = make(map[string]struct{})
		sc   = bufio.NewScanner(r)
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func readAsset(name string) ([]string, error) {
	f, err := assets.Open("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("resource: open embedded %s: %w", name, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("resource: read embedded %s: %w", name, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("resource: embedded %s is empty", name)
	}
	return lines, nil
}
