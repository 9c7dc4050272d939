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

package syntax

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rephrase/pkg/nlp"
)

func newTestRestructurer(t *testing.T) *Restructurer {
	t.Helper()
	return NewRestructurer(nlp.NewHeuristicParser(), rand.New(rand.NewSource(42)))
}

func TestRestructure_PassiveToActive(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "simple_passive",
			text: "The report was completed by the team.",
			want: "The team completed the report.",
		},
		{
			name: "leading_adverbial_preserved",
			text: "However, the report was completed by the team.",
			want: "However, the team completed the report.",
		},
		{
			name: "irregular_participle",
			text: "The letter was written by the manager.",
			want: "The manager wrote the letter.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRestructurer(t)
			res, err := r.Restructure(context.Background(), tt.text)
			require.NoError(t, err, "restructure should not fail")

			assert.True(t, res.Applied, "conversion should apply")
			assert.Equal(t, tt.want, res.Text, "active rewrite should match")
			assert.Contains(t, res.Transformations, TransformPassiveToActive, "should record the transformation")
		})
	}
}

func TestRestructure_DeclinesWhenNothingEligible(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "two_words", text: "Hello world."},
		{name: "simple_active", text: "Cats chase mice."},
		{name: "passive_without_agent", text: "The window was broken."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRestructurer(t)
			res, err := r.Restructure(context.Background(), tt.text)
			require.NoError(t, err, "restructure should not fail")

			assert.False(t, res.Applied, "nothing should apply")
			assert.Equal(t, tt.text, res.Text, "text should be unchanged")
			assert.Empty(t, res.Transformations, "no transformations should be recorded")
		})
	}
}

func TestRestructure_ClauseReorder(t *testing.T) {
	r := newTestRestructurer(t)
	res, err := r.Restructure(context.Background(), "Because the tests passed, the build went green.")
	require.NoError(t, err, "restructure should not fail")

	assert.True(t, res.Applied, "reorder should apply")
	assert.Equal(t, "The build went green because the tests passed.", res.Text, "clause order should flip")
	assert.Contains(t, res.Transformations, TransformClauseReorder, "should record the transformation")
}

func TestRestructure_NominalizationReversal(t *testing.T) {
	r := newTestRestructurer(t)
	res, err := r.Restructure(context.Background(), "The implementation of the feature required two sprints.")
	require.NoError(t, err, "restructure should not fail")

	assert.True(t, res.Applied, "reversal should apply")
	assert.Equal(t, "Implementing the feature required two sprints.", res.Text, "verbal form should replace the nominal")
	assert.Contains(t, res.Transformations, TransformNominalization, "should record the transformation")
}

func TestRestructure_QuotedSentencePreserved(t *testing.T) {
	r := newTestRestructurer(t)
	text := `The witness stated "the car was driven by a stranger" under oath.`
	res, err := r.Restructure(context.Background(), text)
	require.NoError(t, err, "restructure should not fail")

	assert.Equal(t, text, res.Text, "quoted material must stay verbatim")
	assert.NotContains(t, res.Transformations, TransformPassiveToActive, "quoted passive must not convert")
}

func TestRestructure_MergesShortSentences(t *testing.T) {
	r := newTestRestructurer(t)
	res, err := r.Restructure(context.Background(), "The cache warmed up. Latency dropped fast.")
	require.NoError(t, err, "restructure should not fail")

	assert.True(t, res.Applied, "variance should apply")
	assert.Contains(t, res.Transformations, TransformSentenceVariance, "should record the transformation")
	assert.NotContains(t, res.Text[:len(res.Text)-1], ".", "merged output should be a single sentence")

	merged := false
	for _, c := range connectors {
		if strings.Contains(res.Text, " "+c+" ") {
			merged = true
		}
	}
	assert.True(t, merged, "a connector should join the sentences")
}

func TestRestructure_SplitsLongSentence(t *testing.T) {
	long := "The distributed scheduler allocates incoming jobs to available worker nodes based on current load measurements, " +
		"and the resulting placement decisions are logged for the capacity planning team to review at the end of every single week."

	r := newTestRestructurer(t)
	res, err := r.Restructure(context.Background(), long)
	require.NoError(t, err, "restructure should not fail")

	assert.True(t, res.Applied, "variance should apply")
	assert.Contains(t, res.Transformations, TransformSentenceVariance, "should record the transformation")
	assert.Equal(t, 2, strings.Count(res.Text, "."), "the sentence should split in two")
}

func TestRestructure_EmptyText(t *testing.T) {
	r := newTestRestructurer(t)
	res, err := r.Restructure(context.Background(), "")
	require.NoError(t, err, "restructure should not fail")
	assert.False(t, res.Applied, "nothing to do")
	assert.Empty(t, res.Text, "text should stay empty")
}

func TestReorderLeadingClause(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     string
		wantOK   bool
	}{
		{
			name:     "because_clause",
			sentence: "Because it rained, the match was postponed.",
			want:     "The match was postponed because it rained.",
			wantOK:   true,
		},
		{
			name:     "although_clause",
			sentence: "Although the budget shrank, the project shipped on time!",
			want:     "The project shipped on time although the budget shrank!",
			wantOK:   true,
		},
		{
			name:     "no_subordinator",
			sentence: "The match was postponed, sadly.",
			wantOK:   false,
		},
		{
			name:     "no_comma",
			sentence: "Because it rained the match was postponed.",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := reorderLeadingClause(tt.sentence)
			assert.Equal(t, tt.wantOK, ok, "ok flag should match")
			if tt.wantOK {
				assert.Equal(t, tt.want, got, "reordered sentence should match")
			}
		})
	}
}

func TestReverseNominalization_MidSentence(t *testing.T) {
	got, ok := reverseNominalization("We discussed the evaluation of the results.")
	require.True(t, ok, "reversal should apply")
	assert.Equal(t, "We discussed evaluating the results.", got, "article should be dropped with the nominal")
}

func TestRestructure_Deterministic(t *testing.T) {
	text := "The cache warmed up. Latency dropped fast. The report was completed by the team."

	run := func(seed int64) string {
		r := NewRestructurer(nlp.NewHeuristicParser(), rand.New(rand.NewSource(seed)))
		res, err := r.Restructure(context.Background(), text)
		require.NoError(t, err, "restructure should not fail")
		return res.Text
	}

	assert.Equal(t, run(7), run(7), "same seed should produce identical output")
}
