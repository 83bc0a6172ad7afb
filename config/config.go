// SPDX-License-Identifier: MIT
// Package: zhmistake/config
//
// config.go — YAML configuration of the zhmistake CLI.
//
// A file is decoded over Default(), so omitted keys keep their defaults, and
// is then validated. Validation errors name the file and the offending key
// and wrap ErrInvalid.

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/zhmistake/convert"
	"github.com/katalvlaran/zhmistake/maker"
	"github.com/katalvlaran/zhmistake/pipeline"
)

// ErrInvalid marks a configuration that failed validation or decoding.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the decoded configuration file.
type Config struct {
	// Seed fixes the pipeline random source. Nil means "pick one per run".
	Seed *int64 `yaml:"seed,omitempty"`

	ErrorsPerSentence int  `yaml:"errors_per_sentence"`
	AllowNoChange     bool `yaml:"allow_no_change"`
	Verbose           bool `yaml:"verbose"`
	Retries           int  `yaml:"retries"`

	// Level bounds the reading edit distance of PronounceSimilarWordPlusMaker.
	Level int `yaml:"level"`

	// Makers lists registry identifiers; empty means every default strategy.
	Makers  []string  `yaml:"makers,omitempty"`
	Weights []float64 `yaml:"weights,omitempty"`
	// Groups replaces Makers/Weights with group-weighted selection.
	Groups []Group `yaml:"groups,omitempty"`

	Conversion string    `yaml:"conversion"`
	Resources  Resources `yaml:"resources"`
	Log        Log       `yaml:"log"`
}

// Group is one weighted group of registry identifiers.
type Group struct {
	Name   string   `yaml:"name"`
	Weight float64  `yaml:"weight"`
	Makers []string `yaml:"makers"`
}

// Resources overrides the embedded word lists with files on disk.
type Resources struct {
	HighFreq     string `yaml:"high_freq,omitempty"`
	Vocab        string `yaml:"vocab,omitempty"`
	DisableWords string `yaml:"disable_words,omitempty"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ErrorsPerSentence: 1,
		Retries:           pipeline.DefaultRetries,
		Level:             maker.DefaultLevel,
		Conversion:        convert.DefaultConversion,
		Log:               Log{Level: "info", Format: "text"},
	}
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	return Parse(path, b)
}

// Parse decodes b over Default and validates the result. name is used in
// error messages only.
func Parse(name string, b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %v: %w", name, err, ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

// Marshal encodes c as YAML.
func Marshal(c Config) ([]byte, error) {
	return yaml.Marshal(c)
}

func invalidField(field, msg string) error {
	return fmt.Errorf("%s: %s: %w", field, msg, ErrInvalid)
}

// Validate checks value ranges, registry identifiers and the consistency of
// makers, weights and groups.
func (c Config) Validate() error {
	if c.ErrorsPerSentence < 1 {
		return invalidField("errors_per_sentence", "must be >= 1")
	}
	if c.Retries < 1 {
		return invalidField("retries", "must be >= 1")
	}
	if c.Level < 0 {
		return invalidField("level", "must be >= 0")
	}

	for i, name := range c.Makers {
		if !maker.Registered(name) {
			return invalidField(fmt.Sprintf("makers[%d]", i), fmt.Sprintf("unknown maker %q", name))
		}
	}
	if len(c.Weights) > 0 {
		want := len(c.Makers)
		if want == 0 {
			want = len(maker.Names())
		}
		if len(c.Weights) != want {
			return invalidField("weights", fmt.Sprintf("%d weights for %d makers", len(c.Weights), want))
		}
		if err := checkWeights("weights", c.Weights); err != nil {
			return err
		}
	}

	if len(c.Groups) > 0 {
		if len(c.Makers) > 0 || len(c.Weights) > 0 {
			return invalidField("groups", "cannot be combined with makers or weights")
		}
		weights := make([]float64, 0, len(c.Groups))
		for i, g := range c.Groups {
			field := fmt.Sprintf("groups[%d]", i)
			if strings.TrimSpace(g.Name) == "" {
				return invalidField(field+".name", "is required")
			}
			if len(g.Makers) == 0 {
				return invalidField(field+".makers", "is empty")
			}
			for j, name := range g.Makers {
				if !maker.Registered(name) {
					return invalidField(fmt.Sprintf("%s.makers[%d]", field, j), fmt.Sprintf("unknown maker %q", name))
				}
			}
			weights = append(weights, g.Weight)
		}
		if err := checkWeights("groups[].weight", weights); err != nil {
			return err
		}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalidField("log.level", fmt.Sprintf("unknown level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return invalidField("log.format", fmt.Sprintf("unknown format %q", c.Log.Format))
	}
	return nil
}

func checkWeights(field string, weights []float64) error {
	var total float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return invalidField(fmt.Sprintf("%s[%d]", field, i), "must be finite and >= 0")
		}
		total += w
	}
	if total <= 0 {
		return invalidField(field, "must not all be zero")
	}
	return nil
}

// Request returns the per-call knobs for pipeline.Generate.
func (c Config) Request() pipeline.Request {
	return pipeline.Request{
		ErrorsPerSentence: c.ErrorsPerSentence,
		AllowNoChange:     c.AllowNoChange,
		Verbose:           c.Verbose,
	}
}

// PipelineGroups converts Groups for pipeline.FromGroups.
func (c Config) PipelineGroups() []pipeline.Group {
	if len(c.Groups) == 0 {
		return nil
	}
	out := make([]pipeline.Group, len(c.Groups))
	for i, g := range c.Groups {
		out[i] = pipeline.Group{
			Name:   g.Name,
			Weight: g.Weight,
			Makers: append([]string(nil), g.Makers...),
		}
	}
	return out
}
