package pipeline

import (
	"context"
	"math/rand"

	"github.com/walteh/rephrase/pkg/config"
	"github.com/walteh/rephrase/pkg/semantics"
	"github.com/walteh/rephrase/pkg/spaces"
	"github.com/walteh/rephrase/pkg/syntax"
	"gitlab.com/tozd/go/errors"
)

// Stage names as used in logs and metrics labels.
const (
	StageSyntax    = "syntax"
	StageSemantics = "semantics"
	StageUnicode   = "unicode"
)

// TransformSpaces identifies the space substitution in outcome histories.
const TransformSpaces = "unicode.spaces"

// buildStages assembles the fixed stage order for one run. All stages share
// the per-run rand source, so a fixed seed reproduces the whole run.
func (p *Pipeline) buildStages(cfg config.Config, rng *rand.Rand) []stageEntry {
	restructurer := syntax.NewRestructurer(p.parser, rng)
	replacer := semantics.NewReplacer(p.parser, cfg.Formality, cfg.Intensity, rng)

	return []stageEntry{
		{
			name:    StageSyntax,
			enabled: cfg.EnableSyntax,
			gated:   true,
			run: func(ctx context.Context, state TextState) (StageResult, error) {
				res, err := restructurer.Restructure(ctx, state.Text())
				if err != nil {
					return StageResult{}, errors.Errorf("restructuring: %w", err)
				}
				return StageResult{
					Candidate:         state.With(res.Text, res.Transformations...),
					Applied:           res.Applied,
					TransformationIDs: res.Transformations,
				}, nil
			},
		},
		{
			name:    StageSemantics,
			enabled: cfg.EnableSemantics,
			gated:   true,
			run: func(ctx context.Context, state TextState) (StageResult, error) {
				res, err := replacer.Replace(ctx, state.Text())
				if err != nil {
					return StageResult{}, errors.Errorf("replacing semantics: %w", err)
				}
				return StageResult{
					Candidate:         state.With(res.Text, res.Transformations...),
					Applied:           res.Applied,
					TransformationIDs: res.Transformations,
				}, nil
			},
		},
		{
			// Space substitution is meaning- and readability-invariant by
			// construction, so it carries no per-stage gate. The final
			// check still covers it.
			name:    StageUnicode,
			enabled: cfg.EnableUnicode,
			gated:   false,
			run: func(ctx context.Context, state TextState) (StageResult, error) {
				res, err := spaces.Replace(state.Text(), cfg.Intensity, rng)
				if err != nil {
					return StageResult{}, errors.Errorf("replacing spaces: %w", err)
				}
				return StageResult{
					Candidate:         state.With(res.Text, TransformSpaces),
					Applied:           res.Replaced > 0,
					TransformationIDs: []string{TransformSpaces},
				}, nil
			},
		},
	}
}
