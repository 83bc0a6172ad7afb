package phonetic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/zhmistake/corpus"
	"github.com/katalvlaran/zhmistake/phonetic"
)

// IndexSuite runs lookups against a small, fixed universe.
type IndexSuite struct {
	suite.Suite
	idx *phonetic.Index
}

func (s *IndexSuite) SetupSuite() {
	idx, err := phonetic.New(
		phonetic.WithCharset([]string{"中", "鐘", "忠", "種", "眾", "宗", "蹤", "總", "中文"}),
		phonetic.WithVocabulary([]string{"公式", "公事", "攻勢", "語言", "寓言", "預言", "abc"}),
	)
	require.NoError(s.T(), err)
	s.idx = idx
}

func (s *IndexSuite) TestUniverse() {
	// "中文" is not a single character and is ignored.
	require.Equal(s.T(), 8, s.idx.NumChars())
	chars := s.idx.Chars()
	require.Len(s.T(), chars, 8)
	for i := 1; i < len(chars); i++ {
		require.Less(s.T(), []rune(chars[i-1])[0], []rune(chars[i])[0], "code-point order")
	}
	require.Equal(s.T(), chars[0], s.idx.CharAt(0))
}

func (s *IndexSuite) TestFindSame() {
	got, err := s.idx.FindSame("忠")
	require.NoError(s.T(), err)
	require.Contains(s.T(), got, "中")
	require.Contains(s.T(), got, "鐘")
	require.NotContains(s.T(), got, "忠")
	require.NotContains(s.T(), got, "宗")
}

func (s *IndexSuite) TestFindSimilar() {
	got, err := s.idx.FindSimilar("忠")
	require.NoError(s.T(), err)
	require.Contains(s.T(), got, "種")
	require.Contains(s.T(), got, "眾")
	require.NotContains(s.T(), got, "忠")
}

func (s *IndexSuite) TestSimilarReadings() {
	got, err := s.idx.SimilarReadings("宗", 1)
	require.NoError(s.T(), err)
	require.Contains(s.T(), got, "zhong1")
	require.Contains(s.T(), got, "zong3")
	require.NotContains(s.T(), got, "zong1")

	require.Contains(s.T(), s.idx.CharsOf("zhong1"), "忠")
	require.NotNil(s.T(), s.idx.CharsOf("nope9"))
	require.Empty(s.T(), s.idx.CharsOf("nope9"))

	_, err = s.idx.SimilarReadings("宗", 0)
	require.ErrorIs(s.T(), err, corpus.ErrPrecondition)
}

func (s *IndexSuite) TestVocab() {
	same, err := s.idx.FindSameVocab("公式")
	require.NoError(s.T(), err)
	require.Contains(s.T(), same, "公事")
	require.Contains(s.T(), same, "攻勢")
	require.NotContains(s.T(), same, "公式")

	same, err = s.idx.FindSameVocab("寓言")
	require.NoError(s.T(), err)
	require.Contains(s.T(), same, "預言")

	similar, err := s.idx.FindSimilarVocab("語言")
	require.NoError(s.T(), err)
	require.Contains(s.T(), similar, "寓言")
	require.Contains(s.T(), similar, "預言")

	// a known word with no partner yields an empty, non-nil set
	none, err := s.idx.FindSameVocab("中文")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), none)
	require.Empty(s.T(), none)
}

func (s *IndexSuite) TestLookupErrors() {
	for _, in := range []string{"", "中文", "a", "魑"} {
		_, err := s.idx.FindSame(in)
		require.ErrorIs(s.T(), err, corpus.ErrLookup, "input %q", in)
	}
	_, err := s.idx.FindSameVocab("abc")
	require.ErrorIs(s.T(), err, corpus.ErrLookup)
	_, err = s.idx.Readings("")
	require.ErrorIs(s.T(), err, corpus.ErrLookup)
}

func TestIndexSuite(t *testing.T) {
	suite.Run(t, new(IndexSuite))
}

func TestNew_EmptyUniverse(t *testing.T) {
	_, err := phonetic.New(phonetic.WithCharset([]string{"a", "b"}))
	assert.ErrorIs(t, err, corpus.ErrPrecondition)
}

func TestNew_FullTables(t *testing.T) {
	if testing.Short() {
		t.Skip("indexes every character of the pinyin tables")
	}
	idx, err := phonetic.New()
	require.NoError(t, err)
	assert.Greater(t, idx.NumChars(), 20000)

	rs, err := idx.Readings("中")
	require.NoError(t, err)
	assert.Contains(t, rs, "zhong1")
}
