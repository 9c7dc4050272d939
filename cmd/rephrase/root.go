package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rephrase/cmd/rephrase/commands"
	"github.com/walteh/rephrase/cmd/rephrase/opts"
	"github.com/walteh/rephrase/pkg/config"
	"github.com/walteh/rephrase/pkg/log"
	"github.com/walteh/rephrase/pkg/pipeline"
	"github.com/walteh/rephrase/pkg/quality"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
	intensity  float64
	formality  string
	seed       int64
	openaiKey  string
)

// newRootOpts creates a new rootOpts with initialized dependencies
func newRootOpts(ctx context.Context, cmd *cobra.Command) (*opts.RootOpts, error) {
	// Create user logger
	// Console output goes to stderr so final text on stdout stays pipeable
	userLogger := log.New(os.Stderr, zerolog.InfoLevel)

	// Load config, falling back to defaults when no file is present
	cfg := config.Default()
	if _, err := os.Stat(configFile); err == nil {
		loaded, err := config.Load(ctx, configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = *loaded
	} else if cmd.Flags().Changed("config") {
		return nil, errors.Errorf("config file not found: %s", configFile)
	}

	// Flags override file values
	if cmd.Flags().Changed("intensity") {
		cfg.Intensity = intensity
	}
	if cmd.Flags().Changed("formality") {
		cfg.Formality = config.Formality(formality)
	}
	if cmd.Flags().Changed("seed") {
		s := seed
		cfg.Seed = &s
	}

	// Create quality analyzer, with embeddings when a key is available
	var analyzerOpts []quality.Option
	if key := resolveOpenAIKey(); key != "" {
		analyzerOpts = append(analyzerOpts, quality.WithSimilarityScorer(quality.NewEmbeddingScorer(key)))
	}

	humanizer, err := pipeline.New(pipeline.Options{
		Analyzer: quality.NewAnalyzer(analyzerOpts...),
	})
	if err != nil {
		return nil, errors.Errorf("creating pipeline: %w", err)
	}

	return &opts.RootOpts{
		Config:     &cfg,
		Humanizer:  humanizer,
		UserLogger: userLogger,
	}, nil
}

// resolveOpenAIKey prefers the flag over the environment
func resolveOpenAIKey() string {
	if openaiKey != "" {
		return openaiKey
	}
	return os.Getenv("OPENAI_API_KEY")
}

// newRootCmd creates the root command with all subcommands
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rephrase",
		Short:        "Quality-gated text humanization",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	addRootFlags(cmd)

	cmd.AddCommand(commands.NewHumanizeCmd(newRootOpts))
	cmd.AddCommand(commands.NewBatchCmd(newRootOpts))
	cmd.AddCommand(commands.NewAnalyzeCmd(newRootOpts))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(FormatVersion())
		},
	})

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".rephrase.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().Float64VarP(&intensity, "intensity", "i", 0.5, "transformation intensity [0,1]")
	cmd.PersistentFlags().StringVarP(&formality, "formality", "f", "formal", "formality register (formal, technical, casual)")
	cmd.PersistentFlags().Int64VarP(&seed, "seed", "s", 0, "random seed for reproducible runs")
	cmd.PersistentFlags().StringVar(&openaiKey, "openai-key", "", "OpenAI API key for embedding similarity (default $OPENAI_API_KEY)")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
