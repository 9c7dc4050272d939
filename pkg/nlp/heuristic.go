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
	"strings"
	"unicode"
)

// 🧠 HeuristicParser is a pure-Go analysis provider. It is deterministic for
// a given text and immutable after construction, so a single instance may be
// shared across concurrent pipeline runs.
type HeuristicParser struct{}

// 🏭 NewHeuristicParser creates a new heuristic parser
func NewHeuristicParser() *HeuristicParser {
	return &HeuristicParser{}
}

// Parse implements Parser.Parse
func (p *HeuristicParser) Parse(text string) (*Doc, error) {
	doc := &Doc{
		Text:        text,
		QuotedSpans: findQuotedSpans(text),
	}

	for _, span := range splitSentences(text) {
		sent := Sentence{
			Span:   span,
			Tokens: tokenize(span.Text),
		}
		doc.Sentences = append(doc.Sentences, sent)

		if isPassive(sent.Tokens) {
			doc.PassiveSpans = append(doc.PassiveSpans, span)
		}
		if cs, ok := leadingClause(sent); ok {
			doc.ClauseSpans = append(doc.ClauseSpans, cs)
		}
	}

	return doc, nil
}

// Synonyms implements Parser.Synonyms
func (p *HeuristicParser) Synonyms(word string) []string {
	return synonymFallback[strings.ToLower(word)]
}

// IsAuxiliary reports whether the word is a closed-class auxiliary verb.
func IsAuxiliary(word string) bool {
	return auxiliaries[strings.ToLower(word)]
}

// IsSubordinator reports whether the word introduces a dependent clause.
func IsSubordinator(word string) bool {
	return subordinators[strings.ToLower(word)]
}

// ActivePast maps a past participle to a simple-past form usable in an
// active-voice rewrite. Regular "-ed" participles map to themselves.
func ActivePast(participle string) (string, bool) {
	lower := strings.ToLower(participle)
	if past, ok := irregularParticiples[lower]; ok {
		return past, true
	}
	if strings.HasSuffix(lower, "ed") && len(lower) > 3 {
		return lower, true
	}
	return "", false
}

// splitSentences segments text into sentence spans. Boundaries are terminal
// punctuation followed by whitespace and an uppercase letter, a digit or an
// opening quote. A short abbreviation list suppresses false boundaries.
func splitSentences(text string) []Span {
	var spans []Span
	runes := []rune(text)
	start := 0
	bytePos := 0
	byteStart := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		size := len(string(r))

		if r == '.' || r == '!' || r == '?' {
			if r == '.' && isAbbreviation(runes, i) {
				bytePos += size
				continue
			}
			// Consume trailing closing quotes attached to the terminator
			end := i + 1
			endBytes := bytePos + size
			for end < len(runes) && (runes[end] == '"' || runes[end] == '”' || runes[end] == '\'') {
				endBytes += len(string(runes[end]))
				end++
			}
			if end >= len(runes) || startsNewSentence(runes, end) {
				if s := trimSpan(text, byteStart, endBytes); s != nil {
					spans = append(spans, *s)
				}
				// Skip whitespace to the next sentence start
				for end < len(runes) && unicode.IsSpace(runes[end]) {
					endBytes += len(string(runes[end]))
					end++
				}
				i = end - 1
				bytePos = endBytes
				start = end
				byteStart = endBytes
				continue
			}
		}
		bytePos += size
	}

	if start < len(runes) {
		if s := trimSpan(text, byteStart, len(text)); s != nil {
			spans = append(spans, *s)
		}
	}
	return spans
}

// startsNewSentence checks whether the rune at idx (after skipping spaces)
// plausibly begins a new sentence.
func startsNewSentence(runes []rune, idx int) bool {
	i := idx
	if i >= len(runes) || !unicode.IsSpace(runes[i]) {
		return false
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i >= len(runes) {
		return true
	}
	r := runes[i]
	return unicode.IsUpper(r) || unicode.IsDigit(r) || r == '"' || r == '“' || r == '\''
}

// isAbbreviation checks whether the period at runes[i] terminates a known
// abbreviation rather than a sentence.
func isAbbreviation(runes []rune, i int) bool {
	start := i
	for start > 0 && (unicode.IsLetter(runes[start-1]) || runes[start-1] == '.') {
		start--
	}
	word := strings.ToLower(strings.TrimSuffix(string(runes[start:i]), "."))
	if abbreviations[word] {
		return true
	}
	// Single letters ("J. Smith") are initials
	if i-start == 1 && unicode.IsLetter(runes[start]) {
		return true
	}
	return false
}

// trimSpan trims surrounding whitespace from [start, end) and returns the
// span, or nil if nothing remains.
func trimSpan(text string, start, end int) *Span {
	raw := text[start:end]
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	lead := strings.Index(raw, trimmed)
	return &Span{
		Start: start + lead,
		End:   start + lead + len(trimmed),
		Text:  trimmed,
	}
}

// tokenize splits a sentence into word and punctuation tokens with
// sentence-relative byte offsets.
func tokenize(sentence string) []Token {
	var tokens []Token
	i := 0
	for i < len(sentence) {
		r := rune(sentence[i])
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			i++
		case isWordByte(sentence, i):
			start := i
			for i < len(sentence) && isWordByte(sentence, i) {
				i++
			}
			text := sentence[start:i]
			tokens = append(tokens, Token{
				Text:  text,
				Lower: strings.ToLower(text),
				POS:   tagWord(text, len(tokens) == 0),
				Start: start,
				End:   i,
			})
		default:
			tokens = append(tokens, Token{
				Text:  string(sentence[i]),
				Lower: string(sentence[i]),
				POS:   POSPunct,
				Start: i,
				End:   i + 1,
			})
			i++
		}
	}
	return tokens
}

func isWordByte(s string, i int) bool {
	c := s[i]
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
		return true
	}
	// Keep in-word apostrophes and hyphens together ("don't", "well-known")
	if (c == '\'' || c == '-') && i > 0 && i+1 < len(s) {
		prev, next := s[i-1], s[i+1]
		return isAlnum(prev) && isAlnum(next)
	}
	return false
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// tagWord assigns a coarse tag from closed-class lexicons and suffix cues.
func tagWord(text string, sentenceInitial bool) POS {
	lower := strings.ToLower(text)

	if isNumeric(lower) {
		return POSNumber
	}
	switch {
	case auxiliaries[lower]:
		return POSAux
	case determiners[lower]:
		return POSDeterminer
	case pronouns[lower]:
		return POSPronoun
	case prepositions[lower]:
		return POSPreposition
	case conjunctions[lower] || subordinators[lower]:
		return POSConjunction
	case adverbs[lower]:
		return POSAdverb
	}
	if !sentenceInitial && unicode.IsUpper(rune(text[0])) {
		return POSProperNoun
	}
	if _, ok := irregularParticiples[lower]; ok {
		return POSVerb
	}
	switch {
	case strings.HasSuffix(lower, "ly") && len(lower) > 3:
		return POSAdverb
	case (strings.HasSuffix(lower, "ed") || strings.HasSuffix(lower, "ing")) && len(lower) > 4:
		return POSVerb
	case hasAnySuffix(lower, "ize", "ise", "ate", "ify"):
		return POSVerb
	case hasAnySuffix(lower, "ous", "ful", "ive", "able", "ible", "ical", "al", "ic", "ant", "ent"):
		return POSAdjective
	case hasAnySuffix(lower, "tion", "sion", "ment", "ness", "ity", "ance", "ence", "ship"):
		return POSNoun
	}
	return POSNoun
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) && len(s) > len(suf)+2 {
			return true
		}
	}
	return false
}

func isNumeric(s string) bool {
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits > 0 && digits >= len(s)/2
}

// isPassive detects an auxiliary "be" followed by a past participle, with at
// most one intervening adverb ("was quickly completed").
func isPassive(tokens []Token) bool {
	passiveAux := map[string]bool{
		"is": true, "are": true, "was": true, "were": true,
		"be": true, "been": true, "being": true,
	}
	for i, tok := range tokens {
		if !passiveAux[tok.Lower] {
			continue
		}
		for j := i + 1; j <= i+2 && j < len(tokens); j++ {
			next := tokens[j]
			if next.POS == POSAdverb {
				continue
			}
			if _, ok := ActivePast(next.Lower); ok {
				return true
			}
			break
		}
	}
	return false
}

// leadingClause returns the absolute span of a sentence-initial dependent
// clause up to (but excluding) its comma.
func leadingClause(sent Sentence) (Span, bool) {
	if len(sent.Tokens) == 0 || !subordinators[sent.Tokens[0].Lower] {
		return Span{}, false
	}
	comma := strings.Index(sent.Text, ",")
	if comma < 0 {
		return Span{}, false
	}
	return Span{
		Start: sent.Start,
		End:   sent.Start + comma,
		Text:  sent.Text[:comma],
	}, true
}

// findQuotedSpans locates double-quoted regions (ASCII and typographic).
func findQuotedSpans(text string) []Span {
	var spans []Span
	openAt := -1
	i := 0
	for i < len(text) {
		r, size := rune(text[i]), 1
		if text[i] >= 0x80 {
			for _, rr := range text[i:] {
				r = rr
				size = len(string(rr))
				break
			}
		}
		switch {
		case r == '"':
			if openAt < 0 {
				openAt = i
			} else {
				spans = append(spans, Span{Start: openAt, End: i + size, Text: text[openAt : i+size]})
				openAt = -1
			}
		case r == '“':
			openAt = i
		case r == '”':
			if openAt >= 0 {
				spans = append(spans, Span{Start: openAt, End: i + size, Text: text[openAt : i+size]})
				openAt = -1
			}
		}
		i += size
	}
	return spans
}
