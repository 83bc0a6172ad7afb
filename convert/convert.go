// Package convert normalizes Chinese text to one canonical script so that a
// perturbation which only swaps a traditional character for its simplified
// twin (or back) can be recognized as a no-op.
package convert

import (
	"fmt"

	"github.com/longbridgeapp/opencc"
)

// DefaultConversion is the OpenCC profile used by NewOpenCC callers that do
// not care: traditional to simplified.
const DefaultConversion = "t2s"

// Normalizer maps text to its canonical script form. Implementations must be
// deterministic and idempotent: Normalize(Normalize(s)) == Normalize(s).
type Normalizer interface {
	Normalize(text string) (string, error)
}

// Func adapts a plain function to Normalizer.
type Func func(text string) (string, error)

// Normalize calls f.
func (f Func) Normalize(text string) (string, error) { return f(text) }

// Identity leaves text untouched.
type Identity struct{}

// Normalize returns text.
func (Identity) Normalize(text string) (string, error) { return text, nil }

// OpenCC converts with an OpenCC profile (github.com/longbridgeapp/opencc,
// dictionaries embedded in the library).
type OpenCC struct {
	conversion string
	cc         *opencc.OpenCC
}

// NewOpenCC loads the given profile ("t2s", "tw2s", "hk2s", ...).
func NewOpenCC(conversion string) (*OpenCC, error) {
	cc, err := opencc.New(conversion)
	if err != nil {
		return nil, fmt.Errorf("convert: load opencc profile %q: %w", conversion, err)
	}
	return &OpenCC{conversion: conversion, cc: cc}, nil
}

// Normalize converts text.
func (o *OpenCC) Normalize(text string) (string, error) {
	out, err := o.cc.Convert(text)
	if err != nil {
		return "", fmt.Errorf("convert: %s(%q): %w", o.conversion, text, err)
	}
	return out, nil
}

// Conversion returns the profile name.
func (o *OpenCC) Conversion() string { return o.conversion }
