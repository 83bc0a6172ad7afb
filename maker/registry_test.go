package maker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zhmistake/corpus"
	"github.com/katalvlaran/zhmistake/maker"
	"github.com/katalvlaran/zhmistake/resource"
	"github.com/katalvlaran/zhmistake/segment"
)

func fullDeps() maker.Deps {
	return maker.Deps{
		Tokenizer: segment.Runes{},
		Phonetic: &fakePhonetic{
			same:    map[string][]string{"基": {"機"}},
			similar: map[string][]string{"基": {"及"}},
		},
		Universe:   fakeUniverse{"錯", "誤"},
		HighFreq:   resource.NewCharSet([]string{"的", "是"}),
		Vocabulary: resource.Vocabulary{"聽見"},
	}
}

func TestNames(t *testing.T) {
	names := maker.Names()
	require.Len(t, names, 12)
	assert.Equal(t, maker.NameMissingWord, names[0])
	assert.Equal(t, maker.NameRandomInsertVocab, names[11])
	assert.NotContains(t, names, maker.NameNoChange)

	names[0] = "mutated"
	assert.Equal(t, maker.NameMissingWord, maker.Names()[0], "Names returns a copy")

	assert.True(t, maker.Registered(maker.NameNoChange))
	assert.False(t, maker.Registered("NoSuchMaker"))
}

func TestDefaults(t *testing.T) {
	makers, err := maker.Defaults(fullDeps())
	require.NoError(t, err)
	require.Len(t, makers, 12)
	for i, name := range maker.Names() {
		assert.Equal(t, name, makers[i].Name())
	}
}

func TestNew(t *testing.T) {
	m, err := maker.New(maker.NameNoChange, maker.Deps{})
	require.NoError(t, err)
	assert.Equal(t, maker.NameNoChange, m.Name())

	_, err = maker.New("NoSuchMaker", fullDeps())
	assert.ErrorIs(t, err, corpus.ErrPrecondition)
}

func TestNew_MissingDeps(t *testing.T) {
	cases := map[string]func(d *maker.Deps){
		maker.NameMissingVocab:             func(d *maker.Deps) { d.Tokenizer = nil },
		maker.NamePronounceSameWord:        func(d *maker.Deps) { d.Phonetic = nil },
		maker.NamePronounceSimilarVocab:    func(d *maker.Deps) { d.Tokenizer = nil },
		maker.NamePronounceSimilarWordPlus: func(d *maker.Deps) { d.HighFreq = resource.CharSet{} },
		maker.NameMistakeWord:              func(d *maker.Deps) { d.Universe = nil },
		maker.NameMistakeWordHighFreq:      func(d *maker.Deps) { d.HighFreq = resource.CharSet{} },
		maker.NameRandomInsertVocab:        func(d *maker.Deps) { d.Vocabulary = nil },
	}
	for name, strip := range cases {
		t.Run(name, func(t *testing.T) {
			d := fullDeps()
			strip(&d)
			_, err := maker.New(name, d)
			assert.ErrorIs(t, err, corpus.ErrPrecondition)
		})
	}

	d := fullDeps()
	d.Level = -1
	_, err := maker.New(maker.NamePronounceSimilarWordPlus, d)
	assert.ErrorIs(t, err, corpus.ErrPrecondition)

	_, err = maker.NewAll([]string{maker.NameMissingWord, "Nope"}, fullDeps())
	assert.ErrorIs(t, err, corpus.ErrPrecondition)
}
