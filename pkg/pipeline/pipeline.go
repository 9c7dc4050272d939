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

// Package pipeline sequences the transformation stages, gates each
// content-altering stage on quality, and rolls back to the last known-good
// snapshot when a stage degrades quality past the configured thresholds.
package pipeline

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/rephrase/pkg/config"
	"github.com/walteh/rephrase/pkg/metrics"
	"github.com/walteh/rephrase/pkg/nlp"
	"github.com/walteh/rephrase/pkg/quality"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Humanizer is the main interface for pipeline runs
type Humanizer interface {
	// Humanize transforms text under the given configuration, returning a
	// valid outcome even when quality gates reject every candidate
	Humanize(ctx context.Context, text string, cfg config.Config) (Outcome, error)
}

// 🔧 Options contains dependencies for the pipeline
type Options struct {
	// Parser is the linguistic analysis provider (default: heuristic)
	Parser nlp.Parser
	// Analyzer composes the quality scorers (default: lexical similarity)
	Analyzer *quality.Analyzer
}

// 🏭 New creates a pipeline with the given options
func New(opts Options) (*Pipeline, error) {
	if opts.Parser == nil {
		opts.Parser = nlp.NewHeuristicParser()
	}
	if opts.Analyzer == nil {
		opts.Analyzer = quality.NewAnalyzer()
	}
	return &Pipeline{
		parser:   opts.Parser,
		analyzer: opts.Analyzer,
	}, nil
}

// 🎮 Pipeline implements the Humanizer interface
type Pipeline struct {
	parser   nlp.Parser
	analyzer *quality.Analyzer
}

// stageEntry is one row of the fixed stage order. Adding a stage means
// appending an entry, not branching logic.
type stageEntry struct {
	name    string
	enabled bool
	gated   bool
	run     func(ctx context.Context, state TextState) (StageResult, error)
}

// Humanize implements Humanizer.Humanize.
//
// Data flows strictly forward: baseline → syntax → semantics → spaces →
// final check. Gated stages are compared against the original baseline (not
// the previous intermediate) so per-stage drift cannot compound invisibly; a
// failed gate reverts only that stage's candidate. A failed final check
// reverts everything, so the caller always gets either a fully-qualified
// transformed text or the untouched original.
func (p *Pipeline) Humanize(ctx context.Context, text string, cfg config.Config) (Outcome, error) {
	if strings.TrimSpace(text) == "" {
		return Outcome{}, errors.Errorf("%w: text is empty or whitespace-only", ErrInvalidInput)
	}
	if err := cfg.Validate(); err != nil {
		return Outcome{}, errors.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}

	runID := uuid.NewString()
	logger := zerolog.Ctx(ctx).With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	baseline := NewTextState(text)
	current := baseline

	for _, entry := range p.buildStages(cfg, rng) {
		if !entry.enabled {
			metrics.StageResults.WithLabelValues(entry.name, "skipped").Inc()
			continue
		}

		start := time.Now()
		res, err := entry.run(ctx, current)
		metrics.StageDuration.WithLabelValues(entry.name).Observe(time.Since(start).Seconds())

		if err != nil {
			return p.abort(ctx, runID, baseline, entry.name, err), nil
		}
		if !res.Applied {
			logger.Debug().Str("stage", entry.name).Msg("stage declined, no eligible construction")
			metrics.StageResults.WithLabelValues(entry.name, "declined").Inc()
			continue
		}

		if entry.gated {
			report, err := p.analyzer.Compare(ctx, baseline.Text(), res.Candidate.Text())
			if err != nil {
				return p.abort(ctx, runID, baseline, entry.name, err), nil
			}
			if !withinThresholds(report, cfg) {
				logger.Warn().
					Str("stage", entry.name).
					Float64("similarity", report.SemanticSimilarity).
					Float64("readability_delta_pct", report.ReadabilityDeltaPct).
					Msg("stage rejected by quality gate, rolling back")
				metrics.StageResults.WithLabelValues(entry.name, "rolled_back").Inc()
				continue
			}
		}

		current = res.Candidate
		metrics.StageResults.WithLabelValues(entry.name, "applied").Inc()
	}

	report, err := p.analyzer.Compare(ctx, baseline.Text(), current.Text())
	if err != nil {
		return p.abort(ctx, runID, baseline, "final_check", err), nil
	}

	passed := withinThresholds(report, cfg)
	if !passed {
		// Global rollback: the ungated space stage is discarded along with
		// everything else
		logger.Warn().
			Float64("similarity", report.SemanticSimilarity).
			Float64("readability_delta_pct", report.ReadabilityDeltaPct).
			Msg("final quality check failed, returning original text")
		current = baseline
	}

	metrics.RunsTotal.WithLabelValues(strconv.FormatBool(passed)).Inc()

	return Outcome{
		RunID:                  runID,
		FinalText:              current.Text(),
		Quality:                report,
		TransformationsApplied: current.Transformations(),
		PassedQualityCheck:     passed,
	}, nil
}

// abort recovers a collaborator failure: the run ends normally with the
// untouched baseline and a failed quality flag. No stage error escapes the
// pipeline boundary.
func (p *Pipeline) abort(ctx context.Context, runID string, baseline TextState, stage string, cause error) Outcome {
	err := errors.Errorf("%w: %s: %s", ErrStageUnavailable, stage, cause.Error())
	zerolog.Ctx(ctx).Warn().Err(err).Msg("stage failed, aborting to baseline text")
	metrics.StageResults.WithLabelValues(stage, "failed").Inc()
	metrics.RunsTotal.WithLabelValues("false").Inc()

	return Outcome{
		RunID:              runID,
		FinalText:          baseline.Text(),
		PassedQualityCheck: false,
	}
}

func withinThresholds(report quality.Report, cfg config.Config) bool {
	return report.SemanticSimilarity >= cfg.SimilarityThreshold &&
		math.Abs(report.ReadabilityDeltaPct) <= cfg.ReadabilityTolerancePct
}
