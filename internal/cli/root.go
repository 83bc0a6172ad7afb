// Package cli implements the zhmistake command line.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/zhmistake/config"
	"github.com/katalvlaran/zhmistake/internal/app"
	"github.com/katalvlaran/zhmistake/internal/logging"
)

// Options injects the process environment into the command tree.
type Options struct {
	Build  app.Builder
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	NewID  func() string
}

func (o Options) withDefaults() Options {
	if o.Build == nil {
		o.Build = app.NewCollaborators
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.NewID == nil {
		o.NewID = func() string { return uuid.NewString() }
	}
	return o
}

// Execute runs the CLI with the process environment.
func Execute() {
	cmd := NewRootCmd(Options{})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCmd builds the command tree.
func NewRootCmd(opts Options) *cobra.Command {
	opts = opts.withDefaults()
	var g globalFlags

	cmd := &cobra.Command{
		Use:          "zhmistake",
		Short:        "Generate noisy Chinese sentences for error-correction training",
		SilenceUsage: true,
	}
	cmd.SetIn(opts.Stdin)
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "log format: text|json (overrides config)")

	cmd.AddCommand(generateCmd(opts, &g))
	cmd.AddCommand(makersCmd(opts))
	return cmd
}

// loadConfig reads the configuration file when one is given.
func (g *globalFlags) loadConfig() (config.Config, error) {
	if g.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(g.configPath)
}

// logger builds the process logger; flags win over the configuration.
func (g *globalFlags) logger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	lc := logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Writer: w}
	if g.logLevel != "" {
		lc.Level = g.logLevel
	}
	if g.logFormat != "" {
		lc.Format = g.logFormat
	}
	return logging.New(lc)
}
