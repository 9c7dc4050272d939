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

// Package syntax produces structurally altered candidate texts: voice
// conversion, clause reordering, nominalization reversal and sentence length
// variance. It declines rather than forcing a change when nothing is
// eligible, and never touches proper nouns, numerals or quoted spans.
package syntax

import (
	"context"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/rephrase/pkg/nlp"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ Transformation identifiers reported in stage results
const (
	TransformPassiveToActive  = "syntax.passive_to_active"
	TransformClauseReorder    = "syntax.clause_reorder"
	TransformNominalization   = "syntax.nominalization_reversal"
	TransformSentenceVariance = "syntax.sentence_variance"
)

// nominalizations maps noun-form phrases back to direct verb forms.
var nominalizations = map[string]string{
	"implementation of": "implementing",
	"completion of":     "completing",
	"development of":    "developing",
	"creation of":       "creating",
	"analysis of":       "analyzing",
	"evaluation of":     "evaluating",
	"examination of":    "examining",
}

// connectors join short adjacent sentences.
var connectors = []string{"and", "while", "as"}

const (
	longSentenceWords  = 30
	shortSentenceWords = 8
)

// 📊 Result is the restructurer's outcome
type Result struct {
	Text            string   // Candidate text (equals input when !Applied)
	Applied         bool     // Whether any construction was rewritten
	Transformations []string // Ordered transformation identifiers
}

// 🔨 Restructurer rewrites sentence structure using the analysis provider
type Restructurer struct {
	parser nlp.Parser
	rng    *rand.Rand
}

// 🏭 NewRestructurer creates a restructurer. The rand source must not be
// shared with concurrent runs.
func NewRestructurer(parser nlp.Parser, rng *rand.Rand) *Restructurer {
	return &Restructurer{
		parser: parser,
		rng:    rng,
	}
}

// Restructure applies all structural transformations to the text.
func (r *Restructurer) Restructure(ctx context.Context, text string) (Result, error) {
	logger := zerolog.Ctx(ctx)

	doc, err := r.parser.Parse(text)
	if err != nil {
		return Result{}, errors.Errorf("parsing text: %w", err)
	}
	if len(doc.Sentences) == 0 {
		return Result{Text: text}, nil
	}

	applied := map[string]bool{}
	var order []string
	note := func(id string) {
		if !applied[id] {
			applied[id] = true
			order = append(order, id)
		}
	}

	sentences := make([]string, 0, len(doc.Sentences))
	for _, sent := range doc.Sentences {
		current := sent.Text

		// Quoted spans are preserved verbatim, so any sentence overlapping
		// one is carried through unchanged.
		if doc.IsQuoted(sent.Start, sent.End) {
			sentences = append(sentences, current)
			continue
		}

		if doc.IsPassive(sent.Span) {
			if active, ok := passiveToActive(sent); ok {
				current = active
				note(TransformPassiveToActive)
			}
		}

		if reordered, ok := reorderLeadingClause(current); ok {
			current = reordered
			note(TransformClauseReorder)
		}

		if reversed, ok := reverseNominalization(current); ok {
			current = reversed
			note(TransformNominalization)
		}

		sentences = append(sentences, current)
	}

	varied, changed := r.varySentenceLength(sentences)
	if changed {
		note(TransformSentenceVariance)
	}

	result := Result{
		Text:            strings.Join(varied, " "),
		Applied:         len(order) > 0,
		Transformations: order,
	}
	if !result.Applied {
		result.Text = text
	}

	logger.Debug().
		Bool("applied", result.Applied).
		Strs("transformations", result.Transformations).
		Msg("syntax restructuring")

	return result, nil
}

// passiveToActive rewrites "subject AUX participle by agent" as
// "agent verb subject", keeping any leading adverbial and trailing material.
func passiveToActive(sent nlp.Sentence) (string, bool) {
	toks := sent.Tokens

	auxIdx, partIdx, advIdx := findPassiveCore(toks)
	if auxIdx < 0 {
		return "", false
	}

	// Agent: "by <phrase>" after the participle, up to punctuation
	byIdx := -1
	for j := partIdx + 1; j < len(toks) && j <= partIdx+3; j++ {
		if toks[j].Lower == "by" {
			byIdx = j
			break
		}
		if toks[j].POS == nlp.POSPunct {
			break
		}
	}
	if byIdx < 0 {
		return "", false
	}

	agentEnd := len(toks)
	for j := byIdx + 1; j < len(toks); j++ {
		if toks[j].POS == nlp.POSPunct {
			agentEnd = j
			break
		}
	}
	if agentEnd == byIdx+1 {
		return "", false
	}

	// Subject: everything before the auxiliary, past a leading adverbial
	// like "However,"
	subjStart := 0
	if len(toks) > 1 && toks[1].Text == "," &&
		(toks[0].POS == nlp.POSAdverb || toks[0].POS == nlp.POSConjunction) {
		subjStart = 2
	}
	if subjStart >= auxIdx {
		return "", false
	}

	verb, ok := nlp.ActivePast(toks[partIdx].Lower)
	if !ok {
		return "", false
	}

	prefix := joinTokens(toks[:subjStart])
	subject := joinTokens(toks[subjStart:auxIdx])
	agent := joinTokens(toks[byIdx+1 : agentEnd])
	tail := joinTokens(toks[agentEnd:])

	// The old subject moves out of sentence-initial position
	if subjStart == 0 || prefix != "" {
		subject = lowerFirstIfCommon(subject)
	}
	if prefix == "" {
		agent = upperFirst(agent)
	}

	var parts []string
	if prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, agent)
	if advIdx >= 0 {
		parts = append(parts, toks[advIdx].Lower)
	}
	parts = append(parts, verb, subject)

	out := strings.Join(parts, " ")
	if tail != "" {
		if strings.HasPrefix(tail, ",") || strings.HasPrefix(tail, ".") ||
			strings.HasPrefix(tail, ";") || strings.HasPrefix(tail, "!") ||
			strings.HasPrefix(tail, "?") {
			out += tail
		} else {
			out += " " + tail
		}
	}
	if !strings.ContainsAny(out[len(out)-1:], ".!?") {
		out += "."
	}
	return out, true
}

// findPassiveCore locates the auxiliary and participle of a passive
// construction, with at most one adverb between them.
func findPassiveCore(toks []nlp.Token) (auxIdx, partIdx, advIdx int) {
	passiveAux := map[string]bool{
		"is": true, "are": true, "was": true, "were": true,
		"be": true, "been": true, "being": true,
	}
	for i, tok := range toks {
		if !passiveAux[tok.Lower] {
			continue
		}
		j := i + 1
		adv := -1
		if j < len(toks) && toks[j].POS == nlp.POSAdverb {
			adv = j
			j++
		}
		if j < len(toks) {
			if _, ok := nlp.ActivePast(toks[j].Lower); ok {
				return i, j, adv
			}
		}
	}
	return -1, -1, -1
}

// reorderLeadingClause moves "Because X, Y." to "Y because X."
func reorderLeadingClause(sentence string) (string, bool) {
	fields := strings.Fields(sentence)
	if len(fields) == 0 || !nlp.IsSubordinator(strings.TrimRight(fields[0], ",")) {
		return "", false
	}

	comma := strings.Index(sentence, ",")
	if comma < 0 {
		return "", false
	}

	dependent := strings.TrimSpace(sentence[:comma])
	main := strings.TrimSpace(sentence[comma+1:])
	if dependent == "" || main == "" {
		return "", false
	}

	terminal := "."
	if last := main[len(main)-1]; last == '.' || last == '!' || last == '?' {
		terminal = string(last)
		main = strings.TrimSpace(main[:len(main)-1])
	}

	return upperFirst(main) + " " + lowerFirst(dependent) + terminal, true
}

// reverseNominalization swaps "implementation of X" style phrases for their
// verbal forms.
func reverseNominalization(sentence string) (string, bool) {
	lower := strings.ToLower(sentence)
	for nominal, verbal := range nominalizations {
		idx := strings.Index(lower, nominal)
		if idx < 0 {
			continue
		}
		// Drop a preceding article ("the implementation of" → "implementing")
		start := idx
		for _, art := range []string{"the ", "a ", "an "} {
			if idx >= len(art) && strings.EqualFold(sentence[idx-len(art):idx], art) {
				start = idx - len(art)
				break
			}
		}
		replaced := verbal
		if start == 0 {
			replaced = upperFirst(verbal)
		}
		return sentence[:start] + replaced + sentence[idx+len(nominal):], true
	}
	return "", false
}

// varySentenceLength splits overlong sentences at a comma and merges
// adjacent short ones with a connector.
func (r *Restructurer) varySentenceLength(sentences []string) ([]string, bool) {
	var out []string
	changed := false

	for i := 0; i < len(sentences); i++ {
		sent := sentences[i]
		words := strings.Fields(sent)

		if len(words) > longSentenceWords && strings.Contains(sent, ",") {
			parts := strings.SplitN(sent, ",", 2)
			out = append(out, strings.TrimSpace(parts[0])+".")
			out = append(out, upperFirst(strings.TrimSpace(parts[1])))
			changed = true
			continue
		}

		if len(words) < shortSentenceWords && i+1 < len(sentences) {
			next := sentences[i+1]
			if len(strings.Fields(next)) < shortSentenceWords {
				connector := connectors[r.rng.Intn(len(connectors))]
				merged := strings.TrimRight(sent, ".") + " " + connector + " " + lowerFirst(next)
				out = append(out, merged)
				changed = true
				i++
				continue
			}
		}

		out = append(out, sent)
	}

	return out, changed
}

func joinTokens(toks []nlp.Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 && tok.POS != nlp.POSPunct {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// lowerFirstIfCommon lowercases the leading word only when it is a common
// word whose capitalization came from sentence position, never a proper noun.
func lowerFirstIfCommon(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	switch strings.ToLower(fields[0]) {
	case "the", "a", "an", "this", "that", "these", "those", "it", "its":
		return lowerFirst(s)
	}
	return s
}
