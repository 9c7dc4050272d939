package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rephrase/pkg/batch"
	"github.com/walteh/rephrase/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// NewBatchCmd creates a new batch command
func NewBatchCmd(newOpts OptsFactory) *cobra.Command {
	var (
		ignore    []string
		outputDir string
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "batch <glob>...",
		Short: "Humanize every file matched by the given globs",
		Long: `Batch runs the humanization pipeline over all files matched by the
glob patterns (doublestar syntax, e.g. 'docs/**/*.md'). Each output is
written atomically as <name>.humanized.<ext>, next to the input or under
--output-dir.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "batch").Logger().WithContext(ctx)

			o, err := newOpts(ctx, cmd)
			if err != nil {
				return err
			}

			cfg := *o.Config
			if len(args) > 0 {
				cfg.Batch = &config.BatchArgs{Inputs: args}
			}
			if cfg.Batch == nil {
				return errors.Errorf("no input globs given and none configured")
			}
			if len(ignore) > 0 {
				cfg.Batch.Ignore = ignore
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.Batch.OutputDir = outputDir
			}
			if cmd.Flags().Changed("workers") {
				cfg.Batch.Workers = workers
			}

			processor := batch.NewProcessor(o.Humanizer, batch.WithProgress(true))
			summary, err := processor.Run(ctx, cfg)
			if err != nil {
				return errors.Errorf("running batch: %w", err)
			}

			for _, res := range summary.Results {
				if res.Status == batch.StatusFailed {
					o.UserLogger.Error(fmt.Sprintf("%s: %v", res.Input, res.Err))
				}
			}
			o.UserLogger.Success(fmt.Sprintf("%d humanized, %d fallback, %d skipped, %d failed",
				summary.Humanized, summary.Fallback, summary.Skipped, summary.Failed))

			if summary.Failed > 0 {
				return errors.Errorf("%d files failed", summary.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "glob patterns to exclude")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for humanized outputs")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent workers (0 = number of CPUs)")

	return cmd
}
