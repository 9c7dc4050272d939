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

// Package semantics produces lexically altered candidate texts from curated
// formality-scoped tables, falling back to the analysis provider's synonym
// source. Tokens inside quoted spans and recognized technical terms are
// never substituted, and the substitution rate is bounded by intensity.
package semantics

import (
	"context"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/walteh/rephrase/pkg/config"
	"github.com/walteh/rephrase/pkg/nlp"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ Transformation identifiers reported in stage results
const (
	TransformDiscourseMarker = "semantic.discourse_marker"
	TransformPhrase          = "semantic.phrase_substitution"
	TransformSynonym         = "semantic.synonym"
)

// synonymEligibleMinLen keeps short function-like words out of synonym
// replacement.
const synonymEligibleMinLen = 5

// 📏 rule is one compiled table entry
type rule struct {
	key  string
	re   *regexp.Regexp
	alts []string
}

var (
	markerRules []rule
	phraseRules []rule
)

func init() {
	markerRules = compileRules(discourseMarkers)
	phraseRules = compileRules(phraseSubstitutions)
}

// compileRules builds word-boundary matchers in a deterministic order
// (longest key first) so the per-run random stream is reproducible.
func compileRules(table map[string][]string) []rule {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	rules := make([]rule, 0, len(keys))
	for _, k := range keys {
		rules = append(rules, rule{
			key:  k,
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(k) + `\b`),
			alts: table[k],
		})
	}
	return rules
}

// 📊 Result is the replacer's outcome
type Result struct {
	Text            string   // Candidate text (equals input when !Applied)
	Applied         bool     // Whether any substitution happened
	Transformations []string // Ordered transformation identifiers
	Replacements    int      // Total substitutions made
}

// ✏️ Replacer substitutes discourse markers, phrases and content words
type Replacer struct {
	parser    nlp.Parser
	formality config.Formality
	intensity float64
	rng       *rand.Rand
}

// 🏭 NewReplacer creates a replacer. The rand source must not be shared with
// concurrent runs.
func NewReplacer(parser nlp.Parser, formality config.Formality, intensity float64, rng *rand.Rand) *Replacer {
	return &Replacer{
		parser:    parser,
		formality: formality,
		intensity: intensity,
		rng:       rng,
	}
}

// Replace applies all lexical substitutions to the text.
func (r *Replacer) Replace(ctx context.Context, text string) (Result, error) {
	logger := zerolog.Ctx(ctx)

	result := Result{Text: text}
	note := func(id string) {
		for _, seen := range result.Transformations {
			if seen == id {
				return
			}
		}
		result.Transformations = append(result.Transformations, id)
	}

	current, n, err := r.applyRules(text, markerRules)
	if err != nil {
		return Result{}, err
	}
	if n > 0 {
		note(TransformDiscourseMarker)
		result.Replacements += n
	}

	current, n, err = r.applyRules(current, phraseRules)
	if err != nil {
		return Result{}, err
	}
	if n > 0 {
		note(TransformPhrase)
		result.Replacements += n
	}

	// Word-level synonyms only kick in above a floor intensity; below it the
	// curated marker/phrase tables are change enough.
	if r.intensity > 0.3 {
		current, n, err = r.replaceSynonyms(current)
		if err != nil {
			return Result{}, err
		}
		if n > 0 {
			note(TransformSynonym)
			result.Replacements += n
		}
	}

	if result.Replacements > 0 {
		result.Text = current
		result.Applied = true
	}

	logger.Debug().
		Bool("applied", result.Applied).
		Int("replacements", result.Replacements).
		Strs("transformations", result.Transformations).
		Msg("semantic replacement")

	return result, nil
}

// applyRules rewrites table matches outside quoted spans, each independently
// with probability bounded by intensity.
func (r *Replacer) applyRules(text string, rules []rule) (string, int, error) {
	doc, err := r.parser.Parse(text)
	if err != nil {
		return "", 0, errors.Errorf("parsing text: %w", err)
	}

	count := 0
	current := text
	for _, rl := range rules {
		matches := rl.re.FindAllStringIndex(current, -1)
		if matches == nil {
			continue
		}

		var b strings.Builder
		cursor := 0
		changed := false
		for _, m := range matches {
			if doc.IsQuoted(m[0], m[1]) || r.rng.Float64() >= r.intensity {
				continue
			}
			alt := rl.alts[r.rng.Intn(len(rl.alts))]
			b.WriteString(current[cursor:m[0]])
			b.WriteString(matchCase(current[m[0]:m[1]], alt))
			cursor = m[1]
			count++
			changed = true
		}
		if changed {
			b.WriteString(current[cursor:])
			current = b.String()
			// Offsets moved; re-derive quoted spans for later rules
			doc, err = r.parser.Parse(current)
			if err != nil {
				return "", 0, errors.Errorf("reparsing text: %w", err)
			}
		}
	}
	return current, count, nil
}

// replaceSynonyms substitutes eligible content words using curated
// formality-scoped groups first and the provider's synonym source second.
func (r *Replacer) replaceSynonyms(text string) (string, int, error) {
	doc, err := r.parser.Parse(text)
	if err != nil {
		return "", 0, errors.Errorf("parsing text: %w", err)
	}

	type edit struct {
		start, end int
		repl       string
	}
	var edits []edit

	for _, sent := range doc.Sentences {
		for _, tok := range sent.Tokens {
			absStart := sent.Start + tok.Start
			absEnd := sent.Start + tok.End

			if !eligiblePOS(tok.POS) || len(tok.Text) < synonymEligibleMinLen {
				continue
			}
			if doc.IsQuoted(absStart, absEnd) || isTechnicalTerm(tok.Text) {
				continue
			}
			if r.rng.Float64() >= r.intensity {
				continue
			}

			repl, ok := r.pickSynonym(tok.Lower)
			if !ok {
				continue
			}
			edits = append(edits, edit{
				start: absStart,
				end:   absEnd,
				repl:  matchCase(tok.Text, repl),
			})
		}
	}

	if len(edits) == 0 {
		return text, 0, nil
	}

	var b strings.Builder
	cursor := 0
	for _, e := range edits {
		b.WriteString(text[cursor:e.start])
		b.WriteString(e.repl)
		cursor = e.end
	}
	b.WriteString(text[cursor:])
	return b.String(), len(edits), nil
}

// pickSynonym consults curated groups first, then the provider fallback.
func (r *Replacer) pickSynonym(word string) (string, bool) {
	if group, ok := synonymGroups[word]; ok {
		if alts := group[r.formality]; len(alts) > 0 {
			return alts[r.rng.Intn(len(alts))], true
		}
	}
	if alts := r.parser.Synonyms(word); len(alts) > 0 {
		return alts[r.rng.Intn(len(alts))], true
	}
	return "", false
}

func eligiblePOS(pos nlp.POS) bool {
	switch pos {
	case nlp.POSVerb, nlp.POSAdjective, nlp.POSAdverb:
		return true
	}
	return false
}

// isTechnicalTerm recognizes identifiers and acronyms: digits, internal
// capitals, underscores or all-caps.
func isTechnicalTerm(word string) bool {
	if strings.ContainsAny(word, "0123456789_") {
		return true
	}
	upper := 0
	for i, r := range word {
		if unicode.IsUpper(r) {
			if i > 0 {
				return true
			}
			upper++
		}
	}
	return upper > 0 && len(word) <= 5 && strings.ToUpper(word) == word
}

// matchCase carries the original token's leading capitalization onto the
// replacement.
func matchCase(original, replacement string) string {
	if original == "" || replacement == "" {
		return replacement
	}
	if unicode.IsUpper(rune(original[0])) {
		return strings.ToUpper(replacement[:1]) + replacement[1:]
	}
	return replacement
}
