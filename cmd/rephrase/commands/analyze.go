package commands

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rephrase/pkg/quality"
	"github.com/walteh/rephrase/pkg/spaces"
	"gitlab.com/tozd/go/errors"
)

// NewAnalyzeCmd creates a new analyze command
func NewAnalyzeCmd(newOpts OptsFactory) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Report readability, AI-risk and space statistics for a text",
		Long: `Analyze inspects a text without transforming it. It reports
readability scores, lexical metrics, an AI-detection risk estimate and the
distribution of Unicode space variants.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "analyze").Logger().WithContext(ctx)

			o, err := newOpts(ctx, cmd)
			if err != nil {
				return err
			}

			text, err := readInput(args, inputFile, cmd.InOrStdin())
			if err != nil {
				return errors.Errorf("reading input: %w", err)
			}

			readability := quality.AnalyzeReadability(text)
			metrics := quality.AnalyzeText(text)
			risk := quality.EstimateRisk(text)
			distribution := spaces.Distribution(text)

			o.UserLogger.Header("text analysis")

			rows := pterm.TableData{
				{"Metric", "Value"},
				{"Characters", fmt.Sprintf("%d", metrics.CharacterCount)},
				{"Words", fmt.Sprintf("%d", metrics.WordCount)},
				{"Sentences", fmt.Sprintf("%d", metrics.SentenceCount)},
				{"Avg word length", fmt.Sprintf("%.2f", metrics.AvgWordLength)},
				{"Avg sentence length", fmt.Sprintf("%.2f", metrics.AvgSentenceLength)},
				{"Unique words", fmt.Sprintf("%d", metrics.UniqueWords)},
				{"Lexical diversity", fmt.Sprintf("%.3f", metrics.LexicalDiversity)},
				{"Flesch-Kincaid grade", fmt.Sprintf("%.2f", readability.FleschKincaidGrade)},
				{"Flesch reading ease", fmt.Sprintf("%.2f", readability.FleschReadingEase)},
				{"Automated readability", fmt.Sprintf("%.2f", readability.AutomatedReadabilityIndex)},
				{"AI risk score", fmt.Sprintf("%.1f (%s)", risk.Score, risk.Assessment)},
				{"AI pattern count", fmt.Sprintf("%d", risk.PatternCount)},
				{"Sentence length variation", fmt.Sprintf("%.3f", risk.LengthVariation)},
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
				return errors.Errorf("rendering table: %w", err)
			}

			if len(distribution) > 0 {
				names := make([]string, 0, len(distribution))
				for name := range distribution {
					names = append(names, name)
				}
				sort.Strings(names)

				spaceRows := pterm.TableData{{"Space variant", "Count"}}
				for _, name := range names {
					spaceRows = append(spaceRows, []string{name, fmt.Sprintf("%d", distribution[name])})
				}
				if err := pterm.DefaultTable.WithHasHeader().WithData(spaceRows).Render(); err != nil {
					return errors.Errorf("rendering space table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&inputFile, "file", "", "read input text from a file instead of the argument")

	return cmd
}
