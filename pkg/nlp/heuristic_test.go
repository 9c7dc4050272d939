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

package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SentenceSplitting(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantSent []string
	}{
		{
			name:     "two_sentences",
			text:     "The fox ran quickly. It jumped over the log.",
			wantSent: []string{"The fox ran quickly.", "It jumped over the log."},
		},
		{
			name:     "abbreviation_does_not_split",
			text:     "Dr. Smith arrived early. He left late.",
			wantSent: []string{"Dr. Smith arrived early.", "He left late."},
		},
		{
			name:     "initial_does_not_split",
			text:     "J. Smith wrote the paper. Nobody read it.",
			wantSent: []string{"J. Smith wrote the paper.", "Nobody read it."},
		},
		{
			name:     "question_and_exclamation",
			text:     "Did it work? It did! Everyone cheered.",
			wantSent: []string{"Did it work?", "It did!", "Everyone cheered."},
		},
		{
			name:     "no_terminal_punctuation",
			text:     "a trailing fragment without punctuation",
			wantSent: []string{"a trailing fragment without punctuation"},
		},
	}

	parser := NewHeuristicParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parser.Parse(tt.text)
			require.NoError(t, err, "parse should not fail")

			var got []string
			for _, s := range doc.Sentences {
				got = append(got, s.Text)
			}
			assert.Equal(t, tt.wantSent, got, "sentence texts should match")

			// Spans must index back into the source text
			for _, s := range doc.Sentences {
				assert.Equal(t, tt.text[s.Start:s.End], s.Text, "span should slice source text")
			}
		})
	}
}

func TestParse_PassiveDetection(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantPassive bool
	}{
		{
			name:        "simple_passive",
			text:        "The report was completed by the team.",
			wantPassive: true,
		},
		{
			name:        "passive_with_adverb",
			text:        "The fix was quickly deployed by the operator.",
			wantPassive: true,
		},
		{
			name:        "irregular_participle",
			text:        "The novel was written by a stranger.",
			wantPassive: true,
		},
		{
			name:        "active_voice",
			text:        "The team completed the report.",
			wantPassive: false,
		},
		{
			name:        "copula_with_adjective",
			text:        "The weather was cold.",
			wantPassive: false,
		},
	}

	parser := NewHeuristicParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parser.Parse(tt.text)
			require.NoError(t, err, "parse should not fail")
			require.Len(t, doc.Sentences, 1, "should be one sentence")

			assert.Equal(t, tt.wantPassive, doc.IsPassive(doc.Sentences[0].Span), "passive detection should match")
		})
	}
}

func TestParse_QuotedSpans(t *testing.T) {
	parser := NewHeuristicParser()

	doc, err := parser.Parse(`She said "the data was lost" yesterday.`)
	require.NoError(t, err, "parse should not fail")
	require.Len(t, doc.QuotedSpans, 1, "should find one quoted span")

	q := doc.QuotedSpans[0]
	assert.Equal(t, `"the data was lost"`, q.Text, "quoted span text should match")
	assert.True(t, doc.IsQuoted(q.Start+1, q.End-1), "interior range should be quoted")
	assert.True(t, doc.IsQuoted(q.Start+3, q.Start+5), "partial overlap should count as quoted")
	assert.False(t, doc.IsQuoted(0, 3), "prefix before the quote should not be quoted")
}

func TestParse_LeadingClause(t *testing.T) {
	parser := NewHeuristicParser()

	doc, err := parser.Parse("Because the tests passed, the build went green.")
	require.NoError(t, err, "parse should not fail")
	require.Len(t, doc.ClauseSpans, 1, "should find one leading clause")
	assert.Equal(t, "Because the tests passed", doc.ClauseSpans[0].Text, "clause should stop before the comma")
}

func TestParse_Tagging(t *testing.T) {
	parser := NewHeuristicParser()

	doc, err := parser.Parse("It jumped over the log.")
	require.NoError(t, err, "parse should not fail")
	require.Len(t, doc.Sentences, 1, "should be one sentence")

	toks := doc.Sentences[0].Tokens
	require.Len(t, toks, 6, "should tokenize into five words and a period")

	assert.Equal(t, POSPronoun, toks[0].POS, "It should be a pronoun")
	assert.Equal(t, POSVerb, toks[1].POS, "jumped should be a verb")
	assert.Equal(t, POSPreposition, toks[2].POS, "over should be a preposition")
	assert.Equal(t, POSDeterminer, toks[3].POS, "the should be a determiner")
	assert.Equal(t, POSNoun, toks[4].POS, "log should be a noun")
	assert.Equal(t, POSPunct, toks[5].POS, "period should be punctuation")
}

func TestParse_ProperNounAndConnective(t *testing.T) {
	parser := NewHeuristicParser()

	doc, err := parser.Parse("However, Smith agreed with the plan.")
	require.NoError(t, err, "parse should not fail")

	toks := doc.Sentences[0].Tokens
	assert.Equal(t, POSAdverb, toks[0].POS, "However should be an adverb")
	assert.Equal(t, POSPunct, toks[1].POS, "comma should be punctuation")
	assert.Equal(t, POSProperNoun, toks[2].POS, "Smith should be a proper noun")
}

func TestParse_TokenOffsets(t *testing.T) {
	parser := NewHeuristicParser()

	text := "We don't give up."
	doc, err := parser.Parse(text)
	require.NoError(t, err, "parse should not fail")

	sent := doc.Sentences[0]
	for _, tok := range sent.Tokens {
		assert.Equal(t, sent.Text[tok.Start:tok.End], tok.Text, "token offsets should slice the sentence")
	}
	assert.Equal(t, "don't", sent.Tokens[1].Text, "apostrophe should stay in-word")
}

func TestActivePast(t *testing.T) {
	tests := []struct {
		name       string
		participle string
		want       string
		wantOK     bool
	}{
		{name: "regular_ed", participle: "completed", want: "completed", wantOK: true},
		{name: "irregular", participle: "written", want: "wrote", wantOK: true},
		{name: "irregular_capitalized", participle: "Taken", want: "took", wantOK: true},
		{name: "too_short", participle: "red", wantOK: false},
		{name: "not_a_participle", participle: "table", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ActivePast(tt.participle)
			assert.Equal(t, tt.wantOK, ok, "ok flag should match")
			if tt.wantOK {
				assert.Equal(t, tt.want, got, "active form should match")
			}
		})
	}
}

func TestSynonyms(t *testing.T) {
	parser := NewHeuristicParser()

	assert.NotEmpty(t, parser.Synonyms("significant"), "known word should have synonyms")
	assert.NotEmpty(t, parser.Synonyms("Significant"), "lookup should be case-insensitive")
	assert.Empty(t, parser.Synonyms("zyzzyva"), "unknown word should have none")
}
