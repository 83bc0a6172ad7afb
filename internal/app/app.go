// Package app wires the production collaborators (embedded resources, gse,
// OpenCC, go-pinyin) into a configured pipeline.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/zhmistake/config"
	"github.com/katalvlaran/zhmistake/convert"
	"github.com/katalvlaran/zhmistake/exclude"
	"github.com/katalvlaran/zhmistake/maker"
	"github.com/katalvlaran/zhmistake/phonetic"
	"github.com/katalvlaran/zhmistake/pipeline"
	"github.com/katalvlaran/zhmistake/resource"
	"github.com/katalvlaran/zhmistake/segment"
)

// PhoneticIndex is what the makers need from the pronunciation index.
type PhoneticIndex interface {
	maker.Phonetic
	maker.Universe
}

// Collaborators are the shared read-only dependencies of a pipeline.
type Collaborators struct {
	Resources  resource.Resources
	Tokenizer  segment.Tokenizer
	Normalizer convert.Normalizer
	Phonetic   PhoneticIndex
	Validator  *exclude.Validator
}

// Builder creates Collaborators for a configuration.
type Builder func(cfg config.Config, logger *slog.Logger) (*Collaborators, error)

// LoadResources parses the embedded assets and replaces each one for which
// rc names a file.
func LoadResources(rc config.Resources) (resource.Resources, error) {
	res, err := resource.Load()
	if err != nil {
		return resource.Resources{}, err
	}
	if rc.HighFreq != "" {
		lines, err := resource.LoadFile(rc.HighFreq)
		if err != nil {
			return resource.Resources{}, err
		}
		res.HighFreq = resource.NewCharSet(lines)
	}
	if rc.Vocab != "" {
		lines, err := resource.LoadFile(rc.Vocab)
		if err != nil {
			return resource.Resources{}, err
		}
		res.Vocabulary = resource.Vocabulary(lines)
	}
	if rc.DisableWords != "" {
		lines, err := resource.LoadFile(rc.DisableWords)
		if err != nil {
			return resource.Resources{}, err
		}
		res.DisableWords = lines
	}
	return res, nil
}

// NewCollaborators builds the production collaborators. Dictionary loading
// dominates startup time; call it once per process.
func NewCollaborators(cfg config.Config, logger *slog.Logger) (*Collaborators, error) {
	start := time.Now()
	res, err := LoadResources(cfg.Resources)
	if err != nil {
		return nil, fmt.Errorf("app: resources: %w", err)
	}
	tok, err := segment.NewGse()
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	norm, err := convert.NewOpenCC(cfg.Conversion)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	idx, err := phonetic.New(phonetic.WithVocabulary(res.Vocabulary))
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	c := &Collaborators{
		Resources:  res,
		Tokenizer:  tok,
		Normalizer: norm,
		Phonetic:   idx,
		Validator:  exclude.New(res.DisableWords),
	}
	logger.Debug("collaborators ready",
		"high_freq", res.HighFreq.Len(),
		"vocab", len(res.Vocabulary),
		"disable_words", c.Validator.Len(),
		"chars", idx.NumChars(),
		"elapsed", time.Since(start),
	)
	return c, nil
}

// Deps returns the maker dependencies backed by c.
func (c *Collaborators) Deps(level int) maker.Deps {
	d := maker.Deps{
		Tokenizer:  c.Tokenizer,
		HighFreq:   c.Resources.HighFreq,
		Vocabulary: c.Resources.Vocabulary,
		Level:      level,
	}
	// A nil PhoneticIndex must stay a nil interface in Deps.
	if c.Phonetic != nil {
		d.Phonetic = c.Phonetic
		d.Universe = c.Phonetic
	}
	return d
}

// Guard returns the invocation guard backed by c.
func (c *Collaborators) Guard() maker.Guard {
	return maker.NewGuard(c.Normalizer, c.Validator)
}

// ResolveSeed returns the configured seed, or a clock-derived one.
func ResolveSeed(cfg config.Config) int64 {
	if cfg.Seed != nil {
		return *cfg.Seed
	}
	return time.Now().UnixNano()
}

// NewPipeline builds the pipeline described by cfg on top of c.
//
// Selection, in priority order: cfg.Groups; cfg.Makers (+ cfg.Weights);
// every registered strategy (+ cfg.Weights).
func NewPipeline(cfg config.Config, c *Collaborators, seed int64, logger *slog.Logger) (*pipeline.Pipeline, error) {
	deps := c.Deps(cfg.Level)
	opts := []pipeline.Option{
		pipeline.WithSeed(seed),
		pipeline.WithRetries(cfg.Retries),
		pipeline.WithLogger(logger),
		pipeline.WithGuard(c.Guard()),
	}

	if groups := cfg.PipelineGroups(); len(groups) > 0 {
		return pipeline.FromGroups(groups, deps, opts...)
	}

	names := cfg.Makers
	if len(names) == 0 {
		names = maker.Names()
	}
	makers, err := maker.NewAll(names, deps)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	if len(cfg.Weights) > 0 {
		opts = append(opts, pipeline.WithWeights(cfg.Weights...))
	}
	return pipeline.New(makers, opts...)
}
