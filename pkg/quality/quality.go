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

// Package quality composes independent text scorers into a single report
// comparing two versions of a text.
package quality

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 Report compares a modified text against its original
type Report struct {
	SemanticSimilarity  float64 // [0,1], 1 means semantically identical
	ReadabilityDeltaPct float64 // Percent change in grade level, signed
	AIRiskOriginal      float64 // [0,100]
	AIRiskModified      float64 // [0,100]
}

// RiskReduction returns how much detection risk dropped (positive is better).
func (r Report) RiskReduction() float64 {
	return r.AIRiskOriginal - r.AIRiskModified
}

// 🔌 SimilarityScorer scores semantic closeness of two texts. Scores are in
// [0,1], symmetric, and 1 for identical inputs.
type SimilarityScorer interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// 🔬 Analyzer runs all scorers over an (original, modified) pair
type Analyzer struct {
	similarity SimilarityScorer
}

// 🔧 Option configures an Analyzer
type Option func(*Analyzer)

// WithSimilarityScorer overrides the default lexical similarity scorer.
func WithSimilarityScorer(s SimilarityScorer) Option {
	return func(a *Analyzer) {
		a.similarity = s
	}
}

// 🏭 NewAnalyzer creates an analyzer with the lexical scorer by default
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		similarity: NewLexicalScorer(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Compare builds a quality report for modified against original.
func (a *Analyzer) Compare(ctx context.Context, original, modified string) (Report, error) {
	logger := zerolog.Ctx(ctx)

	sim, err := a.similarity.Similarity(ctx, original, modified)
	if err != nil {
		return Report{}, errors.Errorf("scoring similarity: %w", err)
	}

	origGrade := FleschKincaidGrade(original)
	modGrade := FleschKincaidGrade(modified)
	deltaPct := 0.0
	if origGrade != 0 {
		deltaPct = (modGrade - origGrade) / origGrade * 100
	}

	report := Report{
		SemanticSimilarity:  sim,
		ReadabilityDeltaPct: deltaPct,
		AIRiskOriginal:      EstimateRisk(original).Score,
		AIRiskModified:      EstimateRisk(modified).Score,
	}

	logger.Debug().
		Float64("similarity", report.SemanticSimilarity).
		Float64("readability_delta_pct", report.ReadabilityDeltaPct).
		Float64("ai_risk_original", report.AIRiskOriginal).
		Float64("ai_risk_modified", report.AIRiskModified).
		Msg("quality comparison")

	return report, nil
}
