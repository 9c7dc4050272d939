package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rephrase/cmd/rephrase/opts"
	"github.com/walteh/rephrase/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// OptsFactory builds the shared command dependencies after flag parsing.
type OptsFactory func(ctx context.Context, cmd *cobra.Command) (*opts.RootOpts, error)

// NewHumanizeCmd creates a new humanize command
func NewHumanizeCmd(newOpts OptsFactory) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "humanize [text]",
		Short: "Transform a text through the humanization pipeline",
		Long: `Humanize transforms a single text and prints the result to stdout.
It will:
1. Restructure syntax (passive voice, clause order, nominalizations)
2. Replace discourse markers, phrases and synonyms
3. Substitute Unicode space variants
4. Verify semantic similarity and readability against the original`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "humanize").Logger().WithContext(ctx)

			o, err := newOpts(ctx, cmd)
			if err != nil {
				return err
			}

			text, err := readInput(args, inputFile, cmd.InOrStdin())
			if err != nil {
				return errors.Errorf("reading input: %w", err)
			}

			outcome, err := o.Humanizer.Humanize(ctx, text, *o.Config)
			if err != nil {
				return errors.Errorf("humanizing text: %w", err)
			}

			o.UserLogger.StartRun(ctx, log.RunOperation{
				RunID:     outcome.RunID,
				Formality: string(o.Config.Formality),
				Intensity: o.Config.Intensity,
			})
			for _, id := range outcome.TransformationsApplied {
				o.UserLogger.LogStageOperation(ctx, log.StageOperation{
					Stage:  id,
					Status: "applied",
				})
			}
			o.UserLogger.EndRun(ctx)

			if outcome.PassedQualityCheck {
				o.UserLogger.Success(fmt.Sprintf("quality check passed (similarity %.3f)", outcome.Quality.SemanticSimilarity))
			} else {
				o.UserLogger.Warning("quality check failed, returning original text")
			}

			fmt.Fprintln(cmd.OutOrStdout(), outcome.FinalText)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputFile, "file", "", "read input text from a file instead of the argument")

	return cmd
}

// readInput resolves the text source: argument, file, or stdin.
func readInput(args []string, inputFile string, stdin io.Reader) (string, error) {
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", errors.Errorf("reading file %s: %w", inputFile, err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
