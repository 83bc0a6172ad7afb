package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zhmistake/config"
	"github.com/katalvlaran/zhmistake/convert"
	"github.com/katalvlaran/zhmistake/corpus"
	"github.com/katalvlaran/zhmistake/exclude"
	"github.com/katalvlaran/zhmistake/internal/app"
	"github.com/katalvlaran/zhmistake/internal/cli"
	"github.com/katalvlaran/zhmistake/maker"
	"github.com/katalvlaran/zhmistake/phonetic"
	"github.com/katalvlaran/zhmistake/resource"
	"github.com/katalvlaran/zhmistake/segment"
)

// liteBuild avoids the gse dictionary and OpenCC tables.
func liteBuild(_ config.Config, _ *slog.Logger) (*app.Collaborators, error) {
	res, err := resource.Load()
	if err != nil {
		return nil, err
	}
	idx, err := phonetic.New(phonetic.WithCharset(res.HighFreq.List()), phonetic.WithVocabulary(res.Vocabulary))
	if err != nil {
		return nil, err
	}
	return &app.Collaborators{
		Resources:  res,
		Tokenizer:  segment.Runes{},
		Normalizer: convert.Identity{},
		Phonetic:   idx,
		Validator:  exclude.New(res.DisableWords),
	}, nil
}

type output struct {
	ID   string `json:"id"`
	Line int    `json:"line"`
	corpus.NoiseCorpus
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	n := 0
	cmd := cli.NewRootCmd(cli.Options{
		Build:  liteBuild,
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func decode(t *testing.T, out string) []output {
	t.Helper()
	var recs []output
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var r output
		require.NoError(t, json.Unmarshal([]byte(line), &r), line)
		recs = append(recs, r)
	}
	return recs
}

func TestMakers(t *testing.T) {
	out, _, err := run(t, "", "makers")
	require.NoError(t, err)
	assert.Equal(t, maker.Names(), strings.Fields(out))

	out, _, err = run(t, "", "makers", "--all")
	require.NoError(t, err)
	assert.Equal(t, maker.NameNoChange, strings.Fields(out)[0])
}

func TestGenerate_Stdin(t *testing.T) {
	in := "今天天氣很好\n\n維基的基本設計理念是\n"
	out, _, err := run(t, in, "generate", "--seed", "3", "-n", "2", "-m", "MissingWordMaker,RedundantWordMaker")
	require.NoError(t, err)

	recs := decode(t, out)
	require.Len(t, recs, 2)
	assert.Equal(t, "id-1", recs[0].ID)
	assert.Equal(t, 1, recs[0].Line)
	assert.Equal(t, 3, recs[1].Line, "blank lines keep numbering")
	assert.Equal(t, "今天天氣很好", recs[0].Correct)
	for _, r := range recs {
		assert.Len(t, strings.Split(r.Type, corpus.TypeSeparator), 2)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	in := "今天天氣很好\n我們去公園散步\n"
	a, _, err := run(t, in, "generate", "--seed", "9")
	require.NoError(t, err)
	b, _, err := run(t, in, "generate", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_ConfigFileAndInputFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "zhmistake.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"seed: 5\nmakers: [MissingWordMaker]\nlog: {level: debug, format: json}\n"), 0o600))
	inPath := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(inPath, []byte("今天天氣很好\n"), 0o600))

	out, logs, err := run(t, "", "generate", "-c", cfgPath, "-i", inPath)
	require.NoError(t, err)
	recs := decode(t, out)
	require.Len(t, recs, 1)
	assert.Equal(t, maker.NameMissingWord, recs[0].Type)
	assert.Contains(t, logs, `"msg":"pipeline ready"`)
}

func TestGenerate_Failures(t *testing.T) {
	// A high-frequency deletion cannot apply to a sentence without such chars.
	in := "魑魅魍魎\n今天天氣很好\n"
	out, logs, err := run(t, in, "generate", "--seed", "1", "-m", "MissingWordHighFreqMaker")
	require.NoError(t, err)
	recs := decode(t, out)
	require.Len(t, recs, 1)
	assert.Equal(t, 2, recs[0].Line)
	assert.Contains(t, logs, "zero_search_results")

	_, _, err = run(t, in, "generate", "--seed", "1", "-m", "MissingWordHighFreqMaker", "--strict")
	assert.ErrorIs(t, err, corpus.ErrZeroSearchResults)

	out, _, err = run(t, in, "generate", "--seed", "1", "-m", "MissingWordHighFreqMaker", "--allow-no-change")
	require.NoError(t, err)
	recs = decode(t, out)
	require.Len(t, recs, 2)
	assert.Equal(t, corpus.NoChangeType, recs[0].Type)
}

func TestGenerate_BadArguments(t *testing.T) {
	_, _, err := run(t, "x\n", "generate", "-m", "NoSuchMaker")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "x\n", "generate", "-n", "0")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "x\n", "generate", "-i", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, _, err = run(t, "x\n", "generate", "--log-format", "xml")
	assert.Error(t, err)
}
