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

// Package spaces substitutes ASCII spaces with visually equivalent Unicode
// space variants. It is stateless and has no quality dependency: the
// substitution is meaning- and readability-invariant by construction.
package spaces

import (
	"math/rand"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔣 Variant names and their code points
var variantNames = map[rune]string{
	'\u0020': "standard",
	'\u00A0': "non_breaking",
	'\u2002': "en_space",
	'\u2003': "em_space",
	'\u2007': "figure_space",
	'\u2009': "thin_space",
	'\u200A': "hair_space",
	'\u200B': "zero_width",
	'\u202F': "narrow_no_break",
}

// variants holds the substitution candidates (standard space excluded).
var variants = []rune{
	'\u00A0', '\u2002', '\u2003', '\u2007',
	'\u2009', '\u200A', '\u200B', '\u202F',
}

// 📊 Result describes one substitution pass
type Result struct {
	Text        string  // Output text
	TotalSpaces int     // ASCII spaces in the input
	Replaced    int     // Spaces substituted
	Rate        float64 // Replaced / TotalSpaces × 100, 0 when no spaces
}

// Replace substitutes each interior ASCII space independently with
// probability intensity, choosing a variant uniformly. Spaces at the text
// boundaries and adjacent to newlines stay untouched so line structure
// survives round-trips through line-oriented tools.
func Replace(text string, intensity float64, rng *rand.Rand) (Result, error) {
	if intensity < 0 || intensity > 1 {
		return Result{}, errors.Errorf("intensity %v out of range [0,1]", intensity)
	}

	res := Result{Text: text}
	if text == "" {
		return res, nil
	}

	var b strings.Builder
	b.Grow(len(text) * 2)
	runes := []rune(text)

	for i, r := range runes {
		if r != ' ' {
			b.WriteRune(r)
			continue
		}
		res.TotalSpaces++

		boundary := i == 0 || i == len(runes)-1 ||
			runes[i-1] == '\n' || runes[i+1] == '\n'
		if boundary || intensity == 0 || rng.Float64() >= intensity {
			b.WriteRune(r)
			continue
		}

		b.WriteRune(variants[rng.Intn(len(variants))])
		res.Replaced++
	}

	res.Text = b.String()
	if res.TotalSpaces > 0 {
		res.Rate = float64(res.Replaced) / float64(res.TotalSpaces) * 100
	}
	return res, nil
}

// Distribution counts space variants present in a text, keyed by name.
func Distribution(text string) map[string]int {
	dist := map[string]int{}
	for _, r := range text {
		if name, ok := variantNames[r]; ok {
			dist[name]++
		}
	}
	return dist
}

// 📈 Stats compares original and modified text space populations
type Stats struct {
	TotalSpaces int
	Replaced    int
	Rate        float64
}

// CompareStats derives replacement statistics from an (original, modified)
// pair without needing the Result of the pass that produced it.
func CompareStats(original, modified string) Stats {
	origTotal := 0
	for _, r := range original {
		if _, ok := variantNames[r]; ok {
			origTotal++
		}
	}
	standard := strings.Count(modified, " ")

	s := Stats{
		TotalSpaces: origTotal,
		Replaced:    origTotal - standard,
	}
	if s.Replaced < 0 {
		s.Replaced = 0
	}
	if origTotal > 0 {
		s.Rate = float64(s.Replaced) / float64(origTotal) * 100
	}
	return s
}

// Fields splits a text into tokens separated by any space variant,
// zero-width included. Token counts are invariant under Replace.
func Fields(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		_, ok := variantNames[r]
		return ok || r == '\n' || r == '\t' || r == '\r'
	})
}
