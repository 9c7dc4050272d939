// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package batch runs the humanization pipeline over a set of files selected
// by glob patterns, with bounded concurrency and atomic output writes.
package batch

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/rephrase/pkg/config"
	"github.com/walteh/rephrase/pkg/pipeline"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 📊 FileStatus represents the outcome for one input file
type FileStatus string

const (
	StatusHumanized FileStatus = "humanized" // Output written, quality check passed
	StatusFallback  FileStatus = "fallback"  // Output written, original text kept
	StatusSkipped   FileStatus = "skipped"   // Excluded by ignore pattern
	StatusFailed    FileStatus = "failed"    // Read or write error
)

// 📄 FileResult is one file's batch outcome
type FileResult struct {
	Input  string     // Input path as matched
	Output string     // Output path, empty for skipped/failed files
	Status FileStatus
	RunID  string // Pipeline run identifier, empty when no run happened
	Err    error  // Populated for StatusFailed
}

// 📊 Summary aggregates a whole batch run
type Summary struct {
	Results   []FileResult
	Humanized int
	Fallback  int
	Skipped   int
	Failed    int
}

// 🎮 Processor runs the pipeline over files
type Processor struct {
	humanizer pipeline.Humanizer
	progress  bool
}

// Option configures a Processor.
type Option func(*Processor)

// WithProgress enables the terminal progress bar.
func WithProgress(enabled bool) Option {
	return func(p *Processor) {
		p.progress = enabled
	}
}

// 🏭 NewProcessor creates a batch processor
func NewProcessor(humanizer pipeline.Humanizer, opts ...Option) *Processor {
	p := &Processor{humanizer: humanizer}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// 🏃 Run resolves the batch globs and processes every matched file. Per-file
// failures are recorded in the summary, not returned: only context
// cancellation or an empty selection ends the batch early.
func (p *Processor) Run(ctx context.Context, cfg config.Config) (Summary, error) {
	if cfg.Batch == nil || len(cfg.Batch.Inputs) == 0 {
		return Summary{}, errors.Errorf("no batch inputs configured")
	}
	if err := cfg.Validate(); err != nil {
		return Summary{}, errors.Errorf("validating batch config: %w", err)
	}

	files, err := resolveInputs(cfg.Batch.Inputs)
	if err != nil {
		return Summary{}, errors.Errorf("resolving input globs: %w", err)
	}
	if len(files) == 0 {
		return Summary{}, errors.Errorf("no files matched input patterns %v", cfg.Batch.Inputs)
	}

	logger := zerolog.Ctx(ctx)
	logger.Info().Int("files", len(files)).Msg("starting batch run")

	workers := cfg.Batch.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	var bar *pterm.ProgressbarPrinter
	if p.progress {
		bar, _ = pterm.DefaultProgressbar.WithTotal(len(files)).WithTitle("humanizing").Start()
	}

	results := make([]FileResult, len(files))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			res := p.processFile(gctx, file, cfg)

			mu.Lock()
			results[i] = res
			if bar != nil {
				bar.Increment()
			}
			mu.Unlock()

			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, errors.Errorf("batch interrupted: %w", err)
	}
	if bar != nil {
		_, _ = bar.Stop()
	}

	summary := Summary{Results: results}
	for _, res := range results {
		switch res.Status {
		case StatusHumanized:
			summary.Humanized++
		case StatusFallback:
			summary.Fallback++
		case StatusSkipped:
			summary.Skipped++
		case StatusFailed:
			summary.Failed++
		}
	}

	logger.Info().
		Int("humanized", summary.Humanized).
		Int("fallback", summary.Fallback).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("batch run complete")

	return summary, nil
}

// 📄 processFile runs the pipeline over one file
func (p *Processor) processFile(ctx context.Context, file string, cfg config.Config) FileResult {
	logger := zerolog.Ctx(ctx).With().Str("file", file).Logger()

	if ignored(file, cfg.Batch.Ignore) {
		logger.Debug().Msg("skipping ignored file")
		return FileResult{Input: file, Status: StatusSkipped}
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return FileResult{Input: file, Status: StatusFailed, Err: errors.Errorf("reading %s: %w", file, err)}
	}

	outcome, err := p.humanizer.Humanize(ctx, string(data), cfg)
	if err != nil {
		return FileResult{Input: file, Status: StatusFailed, Err: errors.Errorf("humanizing %s: %w", file, err)}
	}

	outPath := outputPath(file, cfg.Batch.OutputDir)
	if err := writeAtomic(outPath, []byte(outcome.FinalText)); err != nil {
		return FileResult{Input: file, Status: StatusFailed, Err: errors.Errorf("writing %s: %w", outPath, err)}
	}

	status := StatusHumanized
	if !outcome.PassedQualityCheck {
		status = StatusFallback
	}
	logger.Debug().
		Str("output", outPath).
		Str("status", string(status)).
		Msg("processed file")

	return FileResult{Input: file, Output: outPath, Status: status, RunID: outcome.RunID}
}

// 🔍 resolveInputs expands the input globs into a sorted, de-duplicated file
// list
func resolveInputs(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.Errorf("expanding pattern %s: %w", pattern, err)
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// 🔍 ignored checks a path against the ignore patterns
func ignored(file string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, filepath.ToSlash(file)); err == nil && ok {
			return true
		}
	}
	return false
}

// 📝 outputPath derives where a file's humanized text is written. With no
// output directory the result sits next to the input as
// name.humanized.ext.
func outputPath(file, outputDir string) string {
	base := filepath.Base(file)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	name := stem + ".humanized" + ext

	if outputDir == "" {
		return filepath.Join(filepath.Dir(file), name)
	}
	return filepath.Join(outputDir, name)
}

// 💾 writeAtomic writes via a temp file and rename so a crash never leaves a
// half-written output
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Errorf("creating output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".rephrase-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Errorf("renaming temp file: %w", err)
	}
	return nil
}
