// SPDX-License-Identifier: MIT
// Package: zhmistake/exclude
//
// exclude.go — rejects perturbations that alter disallowed tokens.
//
// Contract:
//   - Alignment is rune level, computed by difflib's SequenceMatcher with
//     autojunk disabled (long sentences keep their frequent characters).
//   - Every non-equal opcode is checked on its own; adjacent opcodes are not
//     merged.
//   - A span matches only as a whole token; an empty span never matches.
//   - Pure and deterministic for a fixed exclusion set.

// Package exclude implements the exclusion validator: given an original and a
// perturbed sentence it reports whether any changed span is a disallowed token.
package exclude

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Span is one mutation between a and b: the a-side and b-side substrings of
// a replace/insert/delete opcode.
type Span struct {
	Tag byte // 'r', 'i' or 'd' (difflib opcode tags)
	A   string
	B   string
}

// Validator holds a read-only exclusion set.
type Validator struct {
	words map[string]struct{}
}

// New builds a validator from words. Blank entries are ignored so that an
// empty span can never match.
func New(words []string) *Validator {
	v := &Validator{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		v.words[w] = struct{}{}
	}
	return v
}

// Len returns the size of the exclusion set.
func (v *Validator) Len() int {
	if v == nil {
		return 0
	}
	return len(v.words)
}

// Excluded reports whether token is in the set.
func (v *Validator) Excluded(token string) bool {
	if v == nil || token == "" {
		return false
	}
	_, ok := v.words[token]
	return ok
}

// Touches reports whether turning a into b changes a disallowed token.
func (v *Validator) Touches(a, b string) bool {
	if v.Len() == 0 {
		return false
	}
	for _, sp := range Spans(a, b) {
		if v.Excluded(sp.A) || v.Excluded(sp.B) {
			return true
		}
	}
	return false
}

// Spans aligns a and b rune by rune and returns their non-equal opcodes in
// order.
func Spans(a, b string) []Span {
	ar, br := runeTokens(a), runeTokens(b)
	m := difflib.NewMatcherWithJunk(ar, br, false, nil)

	var out []Span
	for _, op := range m.GetOpCodes() {
		if op.Tag == 'e' {
			continue
		}
		out = append(out, Span{
			Tag: op.Tag,
			A:   strings.Join(ar[op.I1:op.I2], ""),
			B:   strings.Join(br[op.J1:op.J2], ""),
		})
	}
	return out
}

func runeTokens(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
