package resource_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zhmistake/resource"
)

func TestLoad_EmbeddedAssets(t *testing.T) {
	res, err := resource.Load()
	require.NoError(t, err)

	assert.Greater(t, res.HighFreq.Len(), 100, "high-frequency list should be populated")
	assert.True(t, res.HighFreq.Contains("的"))
	assert.False(t, res.HighFreq.Contains("魑"))

	assert.Contains(t, res.Vocabulary, "中文")
	assert.Contains(t, res.DisableWords, "的")
	assert.Contains(t, res.DisableWords, "嗎")
	for _, w := range res.DisableWords {
		assert.False(t, strings.HasPrefix(w, "#"), "comments must be stripped: %q", w)
	}
}

func TestReadLines(t *testing.T) {
	in := "  的 \n\n# comment\n是\n的\n一\n"
	lines, err := resource.ReadLines(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"的", "是", "一"}, lines)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(p, []byte("你\n我\n"), 0o600))

	lines, err := resource.LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"你", "我"}, lines)

	_, err = resource.LoadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestCharSet(t *testing.T) {
	cs := resource.NewCharSet([]string{"中", "", "文", "中"})
	assert.Equal(t, 2, cs.Len())
	assert.Equal(t, "中", cs.At(0))
	assert.Equal(t, []string{"中", "文"}, cs.List())
	assert.True(t, cs.Contains("文"))
	assert.False(t, cs.Contains(""))

	var zero resource.CharSet
	assert.Equal(t, 0, zero.Len())
	assert.False(t, zero.Contains("中"))
}
