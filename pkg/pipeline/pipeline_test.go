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

package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rephrase/pkg/config"
	"github.com/walteh/rephrase/pkg/nlp"
	"github.com/walteh/rephrase/pkg/quality"
	"gitlab.com/tozd/go/errors"
)

// failingParser simulates an unavailable analysis provider.
type failingParser struct{}

func (failingParser) Parse(text string) (*nlp.Doc, error) {
	return nil, errors.New("provider unavailable")
}

func (failingParser) Synonyms(word string) []string { return nil }

// pinnedScorer returns a fixed similarity for every comparison.
type pinnedScorer struct {
	score float64
}

func (s pinnedScorer) Similarity(ctx context.Context, a, b string) (float64, error) {
	return s.score, nil
}

func seededConfig(seed int64) config.Config {
	cfg := config.Default()
	cfg.Seed = &seed
	return cfg
}

func TestHumanize_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace_only", text: "   \n\t  "},
	}

	p, err := New(Options{})
	require.NoError(t, err, "pipeline construction should not fail")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Humanize(context.Background(), tt.text, config.Default())
			require.Error(t, err, "empty input should be rejected")
			assert.True(t, errors.Is(err, ErrInvalidInput), "error should be ErrInvalidInput")
		})
	}
}

func TestHumanize_InvalidConfig(t *testing.T) {
	p, err := New(Options{})
	require.NoError(t, err, "pipeline construction should not fail")

	cfg := config.Default()
	cfg.Intensity = 2.0

	_, err = p.Humanize(context.Background(), "Some perfectly fine text.", cfg)
	require.Error(t, err, "out-of-range config should be rejected")
	assert.True(t, errors.Is(err, ErrInvalidConfig), "error should be ErrInvalidConfig")
}

func TestHumanize_AllStagesDisabled(t *testing.T) {
	p, err := New(Options{})
	require.NoError(t, err, "pipeline construction should not fail")

	cfg := seededConfig(1)
	cfg.EnableUnicode = false
	cfg.EnableSyntax = false
	cfg.EnableSemantics = false

	text := "The report was completed by the team."
	outcome, err := p.Humanize(context.Background(), text, cfg)
	require.NoError(t, err, "humanize should not fail")

	assert.Equal(t, text, outcome.FinalText, "disabled stages must not touch the text")
	assert.Empty(t, outcome.TransformationsApplied, "no transformations should be recorded")
	assert.True(t, outcome.PassedQualityCheck, "identity transform passes trivially")
	assert.InDelta(t, 1.0, outcome.Quality.SemanticSimilarity, 0.0001, "identical text is fully similar")
	assert.NotEmpty(t, outcome.RunID, "every run gets an identifier")
}

func TestHumanize_SpaceStageOnly(t *testing.T) {
	p, err := New(Options{})
	require.NoError(t, err, "pipeline construction should not fail")

	cfg := seededConfig(42)
	cfg.EnableSyntax = false
	cfg.EnableSemantics = false
	cfg.Intensity = 1.0

	text := "The quick brown fox jumps over the lazy dog."
	outcome, err := p.Humanize(context.Background(), text, cfg)
	require.NoError(t, err, "humanize should not fail")

	assert.True(t, outcome.PassedQualityCheck, "space substitution is similarity-invariant")
	assert.NotEqual(t, text, outcome.FinalText, "spaces should have been substituted")
	assert.Contains(t, outcome.TransformationsApplied, TransformSpaces, "space transform should be recorded")
	assert.Zero(t, strings.Count(outcome.FinalText, " "), "full intensity leaves no interior ASCII space")
}

func TestHumanize_PassiveConversionEndToEnd(t *testing.T) {
	p, err := New(Options{})
	require.NoError(t, err, "pipeline construction should not fail")

	cfg := seededConfig(7)
	cfg.EnableUnicode = false
	cfg.EnableSemantics = false

	// Long enough that one rewritten sentence stays inside the readability
	// tolerance; percent deltas on a lone short sentence swing too hard.
	text := "The report was completed by the team. " +
		"The findings describe the rollout in detail and the schedule remains unchanged for now."
	want := "The team completed the report. " +
		"The findings describe the rollout in detail and the schedule remains unchanged for now."

	outcome, err := p.Humanize(context.Background(), text, cfg)
	require.NoError(t, err, "humanize should not fail")

	assert.True(t, outcome.PassedQualityCheck, "faithful rewrite should pass the gates")
	assert.Equal(t, want, outcome.FinalText, "voice should flip")
	assert.Contains(t, outcome.TransformationsApplied, "syntax.passive_to_active", "conversion should be recorded")
}

func TestHumanize_GateRollsBackDegradedStage(t *testing.T) {
	// A scorer that fails any changed candidate forces every gated stage to
	// roll back; only the ungated space stage may survive.
	strict := pinnedScorer{score: 0}
	p, err := New(Options{
		Analyzer: quality.NewAnalyzer(quality.WithSimilarityScorer(identityScorer{inner: strict})),
	})
	require.NoError(t, err, "pipeline construction should not fail")

	cfg := seededConfig(3)
	cfg.EnableUnicode = false

	text := "The report was completed by the team."
	outcome, err := p.Humanize(context.Background(), text, cfg)
	require.NoError(t, err, "humanize should not fail")

	assert.Equal(t, text, outcome.FinalText, "all candidates were rejected, baseline survives")
	assert.Empty(t, outcome.TransformationsApplied, "rolled-back stages leave no trace")
	assert.True(t, outcome.PassedQualityCheck, "the untouched baseline passes the final check")
}

// identityScorer scores 1 for byte-identical texts and defers otherwise.
type identityScorer struct {
	inner quality.SimilarityScorer
}

func (s identityScorer) Similarity(ctx context.Context, a, b string) (float64, error) {
	if a == b {
		return 1, nil
	}
	return s.inner.Similarity(ctx, a, b)
}

func TestHumanize_FinalCheckFallsBackToOriginal(t *testing.T) {
	// Similarity is pinned below any sane threshold, so the final check fails
	// and the pipeline must return the untouched original.
	p, err := New(Options{
		Analyzer: quality.NewAnalyzer(quality.WithSimilarityScorer(pinnedScorer{score: 0.1})),
	})
	require.NoError(t, err, "pipeline construction should not fail")

	text := "The report was completed by the team."
	outcome, err := p.Humanize(context.Background(), text, seededConfig(5))
	require.NoError(t, err, "quality failure is not an error")

	assert.False(t, outcome.PassedQualityCheck, "the run should be marked failed")
	assert.Equal(t, text, outcome.FinalText, "the original text must come back unchanged")
}

func TestHumanize_StageFailureAbortsToBaseline(t *testing.T) {
	p, err := New(Options{Parser: failingParser{}})
	require.NoError(t, err, "pipeline construction should not fail")

	text := "Some text that will never be transformed."
	outcome, err := p.Humanize(context.Background(), text, seededConfig(9))
	require.NoError(t, err, "collaborator failures must not escape")

	assert.Equal(t, text, outcome.FinalText, "baseline text must come back")
	assert.False(t, outcome.PassedQualityCheck, "an aborted run cannot pass")
	assert.NotEmpty(t, outcome.RunID, "aborted runs still carry their identifier")
}

func TestHumanize_Deterministic(t *testing.T) {
	p, err := New(Options{})
	require.NoError(t, err, "pipeline construction should not fail")

	text := "However, the important results were reviewed by the committee. " +
		"We met in order to discuss them further."

	run := func() Outcome {
		outcome, err := p.Humanize(context.Background(), text, seededConfig(1234))
		require.NoError(t, err, "humanize should not fail")
		return outcome
	}

	a, b := run(), run()
	assert.Equal(t, a.FinalText, b.FinalText, "same seed must reproduce the final text")
	assert.Equal(t, a.TransformationsApplied, b.TransformationsApplied, "same seed must reproduce the history")
	assert.NotEqual(t, a.RunID, b.RunID, "run identifiers stay unique")
}

func TestHumanize_DisabledStageLeavesNoTrace(t *testing.T) {
	p, err := New(Options{})
	require.NoError(t, err, "pipeline construction should not fail")

	cfg := seededConfig(21)
	cfg.EnableSyntax = false
	cfg.Intensity = 1.0

	outcome, err := p.Humanize(context.Background(), "The report was completed by the team.", cfg)
	require.NoError(t, err, "humanize should not fail")

	for _, id := range outcome.TransformationsApplied {
		assert.False(t, strings.HasPrefix(id, "syntax."), "disabled stage must not contribute %q", id)
	}
}

func TestTextState_Immutability(t *testing.T) {
	base := NewTextState("original")
	next := base.With("changed", "stage.first")

	assert.Equal(t, "original", base.Text(), "base snapshot must not change")
	assert.Empty(t, base.Transformations(), "base snapshot has no history")
	assert.Equal(t, "changed", next.Text(), "derived snapshot carries the new text")
	assert.Equal(t, []string{"stage.first"}, next.Transformations(), "derived snapshot extends the history")

	// Mutating the returned slice must not leak into the snapshot
	history := next.Transformations()
	history[0] = "tampered"
	assert.Equal(t, []string{"stage.first"}, next.Transformations(), "history must be defensively copied")
}
