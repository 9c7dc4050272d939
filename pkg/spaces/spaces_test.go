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

package spaces

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplace(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		intensity    float64
		wantErr      bool
		wantReplaced int
		wantSame     bool
	}{
		{
			name:         "zero_intensity_changes_nothing",
			text:         "alpha beta gamma",
			intensity:    0,
			wantReplaced: 0,
			wantSame:     true,
		},
		{
			name:         "full_intensity_replaces_all_interior",
			text:         "alpha beta gamma delta.",
			intensity:    1,
			wantReplaced: 3,
		},
		{
			name:         "newline_adjacent_spaces_preserved",
			text:         "a \n b",
			intensity:    1,
			wantReplaced: 0,
			wantSame:     true,
		},
		{
			name:         "empty_text",
			text:         "",
			intensity:    1,
			wantReplaced: 0,
			wantSame:     true,
		},
		{
			name:      "negative_intensity",
			text:      "a b",
			intensity: -0.1,
			wantErr:   true,
		},
		{
			name:      "intensity_above_one",
			text:      "a b",
			intensity: 1.5,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			res, err := Replace(tt.text, tt.intensity, rng)

			if tt.wantErr {
				require.Error(t, err, "should reject intensity out of range")
				return
			}
			require.NoError(t, err, "replace should not fail")

			assert.Equal(t, tt.wantReplaced, res.Replaced, "replaced count should match")
			if tt.wantSame {
				assert.Equal(t, tt.text, res.Text, "text should be unchanged")
			} else {
				assert.NotEqual(t, tt.text, res.Text, "text should differ")
			}
		})
	}
}

func TestReplace_FullIntensityRate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	res, err := Replace("one two three four.", 1, rng)
	require.NoError(t, err, "replace should not fail")

	assert.Equal(t, 3, res.TotalSpaces, "should count all spaces")
	assert.Equal(t, 3, res.Replaced, "should replace all interior spaces")
	assert.InDelta(t, 100.0, res.Rate, 0.001, "rate should be 100 percent")
	assert.Zero(t, strings.Count(res.Text, " "), "no ASCII spaces should remain")
}

func TestReplace_BoundarySpacesPreserved(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	res, err := Replace(" padded text ", 1, rng)
	require.NoError(t, err, "replace should not fail")

	assert.True(t, strings.HasPrefix(res.Text, " "), "leading space should survive")
	assert.True(t, strings.HasSuffix(res.Text, " "), "trailing space should survive")
	assert.Equal(t, 1, res.Replaced, "only the interior space should change")
}

func TestReplace_TokenCountInvariant(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog near the river bank."
	before := Fields(text)

	rng := rand.New(rand.NewSource(99))
	res, err := Replace(text, 1, rng)
	require.NoError(t, err, "replace should not fail")

	after := Fields(res.Text)
	assert.Equal(t, before, after, "token stream should be unchanged by substitution")
}

func TestReplace_Deterministic(t *testing.T) {
	text := strings.Repeat("word ", 100) + "end."

	a, err := Replace(text, 0.5, rand.New(rand.NewSource(1234)))
	require.NoError(t, err, "first pass should not fail")
	b, err := Replace(text, 0.5, rand.New(rand.NewSource(1234)))
	require.NoError(t, err, "second pass should not fail")

	assert.Equal(t, a.Text, b.Text, "same seed should produce identical output")
	assert.Equal(t, a.Replaced, b.Replaced, "same seed should produce identical counts")

	// Half intensity over 100 spaces should land well away from the extremes
	assert.Greater(t, a.Replaced, 25, "should replace a meaningful share")
	assert.Less(t, a.Replaced, 75, "should leave a meaningful share")
}

func TestDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	res, err := Replace("alpha beta gamma delta epsilon zeta.", 1, rng)
	require.NoError(t, err, "replace should not fail")

	dist := Distribution(res.Text)
	total := 0
	for name, n := range dist {
		if name != "standard" {
			total += n
		}
	}
	assert.Equal(t, res.Replaced, total, "variant counts should add up to the replacements")
	assert.Zero(t, dist["standard"], "full intensity should leave no standard spaces")
}

func TestCompareStats(t *testing.T) {
	original := "a b c d"
	rng := rand.New(rand.NewSource(11))
	res, err := Replace(original, 1, rng)
	require.NoError(t, err, "replace should not fail")

	stats := CompareStats(original, res.Text)
	assert.Equal(t, 3, stats.TotalSpaces, "should count original spaces")
	assert.Equal(t, res.Replaced, stats.Replaced, "should recover the replacement count")
	assert.InDelta(t, res.Rate, stats.Rate, 0.001, "rates should agree")
}

func TestFields_SplitsOnAllVariants(t *testing.T) {
	text := "a\u00A0b\u200bc\u202Fd e"
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, Fields(text), "every variant should separate tokens")
}
