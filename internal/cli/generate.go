package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zhmistake/config"
	"github.com/katalvlaran/zhmistake/corpus"
	"github.com/katalvlaran/zhmistake/internal/app"
)

// maxLineBytes bounds one input sentence.
const maxLineBytes = 1 << 20

// record is one JSONL output line.
type record struct {
	ID   string `json:"id"`
	Line int    `json:"line"`
	corpus.NoiseCorpus
}

type generateFlags struct {
	input         string
	errors        int
	allowNoChange bool
	verbose       bool
	seed          int64
	retries       int
	level         int
	makers        []string
	strict        bool
}

func generateCmd(opts Options, g *globalFlags) *cobra.Command {
	var f generateFlags

	c := &cobra.Command{
		Use:   "generate",
		Short: "Read one sentence per line and write noisy pairs as JSON lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			applyGenerateFlags(cmd, &cfg, f)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := g.logger(cfg, opts.Stderr)
			if err != nil {
				return err
			}

			collab, err := opts.Build(cfg, logger)
			if err != nil {
				return err
			}
			seed := app.ResolveSeed(cfg)
			p, err := app.NewPipeline(cfg, collab, seed, logger)
			if err != nil {
				return err
			}
			logger.Info("pipeline ready", "makers", len(p.Makers()), "weighted", p.Weighted(), "seed", seed)

			in, closeIn, err := openInput(f.input, opts.Stdin)
			if err != nil {
				return err
			}
			defer closeIn()

			enc := json.NewEncoder(opts.Stdout)
			enc.SetEscapeHTML(false)
			req := cfg.Request()

			var lines, written, failed int
			sc := bufio.NewScanner(in)
			sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
			for sc.Scan() {
				lines++
				text := strings.TrimSpace(sc.Text())
				if text == "" {
					continue
				}
				rec, err := p.Generate(text, req)
				if err != nil {
					failed++
					logger.Error("generate failed", "line", lines, "kind", corpus.KindOf(err).String(), "err", err)
					if f.strict {
						return fmt.Errorf("line %d: %w", lines, err)
					}
					continue
				}
				if err := enc.Encode(record{ID: opts.NewID(), Line: lines, NoiseCorpus: rec}); err != nil {
					return err
				}
				written++
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			logger.Info("done", "lines", lines, "written", written, "failed", failed)
			return nil
		},
	}

	fl := c.Flags()
	fl.StringVarP(&f.input, "input", "i", "-", "input file, one sentence per line (- for stdin)")
	fl.IntVarP(&f.errors, "errors", "n", 1, "errors per sentence")
	fl.BoolVar(&f.allowNoChange, "allow-no-change", false, "emit the unchanged sentence when generation fails")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log every failed maker invocation")
	fl.Int64Var(&f.seed, "seed", 0, "random seed (default: config seed, else clock)")
	fl.IntVar(&f.retries, "retries", 0, "invocations per maker per step")
	fl.IntVar(&f.level, "level", 0, "reading edit distance for PronounceSimilarWordPlusMaker")
	fl.StringSliceVarP(&f.makers, "makers", "m", nil, "comma-separated strategy names (default: all)")
	fl.BoolVar(&f.strict, "strict", false, "stop at the first sentence that cannot be perturbed")
	return c
}

// applyGenerateFlags copies explicitly set flags over cfg.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config, f generateFlags) {
	fl := cmd.Flags()
	if fl.Changed("errors") {
		cfg.ErrorsPerSentence = f.errors
	}
	if fl.Changed("allow-no-change") {
		cfg.AllowNoChange = f.allowNoChange
	}
	if fl.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if fl.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if fl.Changed("retries") {
		cfg.Retries = f.retries
	}
	if fl.Changed("level") {
		cfg.Level = f.level
	}
	if fl.Changed("makers") {
		cfg.Makers = f.makers
		cfg.Weights = nil
		cfg.Groups = nil
	}
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return fh, func() { _ = fh.Close() }, nil
}
