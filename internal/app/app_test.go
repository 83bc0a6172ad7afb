package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zhmistake/config"
	"github.com/katalvlaran/zhmistake/convert"
	"github.com/katalvlaran/zhmistake/exclude"
	"github.com/katalvlaran/zhmistake/internal/app"
	"github.com/katalvlaran/zhmistake/internal/logging"
	"github.com/katalvlaran/zhmistake/maker"
	"github.com/katalvlaran/zhmistake/phonetic"
	"github.com/katalvlaran/zhmistake/pipeline"
	"github.com/katalvlaran/zhmistake/resource"
	"github.com/katalvlaran/zhmistake/segment"
)

// lite builds collaborators without the gse dictionary and OpenCC.
func lite(t *testing.T) *app.Collaborators {
	t.Helper()
	res, err := resource.Load()
	require.NoError(t, err)
	idx, err := phonetic.New(
		phonetic.WithCharset(res.HighFreq.List()),
		phonetic.WithVocabulary(res.Vocabulary),
	)
	require.NoError(t, err)
	return &app.Collaborators{
		Resources:  res,
		Tokenizer:  segment.Runes{},
		Normalizer: convert.Identity{},
		Phonetic:   idx,
		Validator:  exclude.New(res.DisableWords),
	}
}

func TestNewPipeline_Default(t *testing.T) {
	cfg := config.Default()
	p, err := app.NewPipeline(cfg, lite(t), 1, logging.Discard())
	require.NoError(t, err)
	assert.Len(t, p.Makers(), len(maker.Names()))
	assert.False(t, p.Weighted())

	rec, err := p.Generate("維基的基本設計理念是", pipeline.Request{ErrorsPerSentence: 2, AllowNoChange: true})
	require.NoError(t, err)
	assert.Equal(t, "維基的基本設計理念是", rec.Correct)
}

func TestNewPipeline_MakersAndWeights(t *testing.T) {
	cfg := config.Default()
	cfg.Makers = []string{maker.NameMissingWord, maker.NameRedundantWord}
	cfg.Weights = []float64{1, 0}
	p, err := app.NewPipeline(cfg, lite(t), 5, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, p.Weights())

	rec, err := p.Generate("今天天氣很好", pipeline.Request{ErrorsPerSentence: 3})
	require.NoError(t, err)
	assert.Equal(t, "MissingWordMaker_MissingWordMaker_MissingWordMaker", rec.Type)
}

func TestNewPipeline_Groups(t *testing.T) {
	cfg := config.Default()
	cfg.Groups = []config.Group{
		{Name: "del", Weight: 0.6, Makers: []string{maker.NameMissingWord, maker.NameMissingVocab}},
		{Name: "rep", Weight: 0.4, Makers: []string{maker.NamePronounceSameWord}},
	}
	p, err := app.NewPipeline(cfg, lite(t), 5, logging.Discard())
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.3, 0.3, 0.4}, p.Weights(), 1e-12)
}

func TestNewPipeline_MissingPhonetic(t *testing.T) {
	c := lite(t)
	c.Phonetic = nil
	cfg := config.Default()
	_, err := app.NewPipeline(cfg, c, 1, logging.Discard())
	assert.Error(t, err)

	cfg.Makers = []string{maker.NameMissingWord}
	_, err = app.NewPipeline(cfg, c, 1, logging.Discard())
	assert.NoError(t, err, "strategies without a phonetic index still build")
}

func TestLoadResources_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.txt")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n聽見\n看見\n"), 0o600))

	res, err := app.LoadResources(config.Resources{Vocab: path})
	require.NoError(t, err)
	assert.Equal(t, resource.Vocabulary{"聽見", "看見"}, res.Vocabulary)
	assert.Positive(t, res.HighFreq.Len(), "other assets stay embedded")

	_, err = app.LoadResources(config.Resources{HighFreq: filepath.Join(dir, "none.txt")})
	assert.Error(t, err)
}

func TestResolveSeed(t *testing.T) {
	seed := int64(77)
	cfg := config.Default()
	cfg.Seed = &seed
	assert.Equal(t, int64(77), app.ResolveSeed(cfg))
}
