package quality

import (
	"context"
	"math"
	"strings"
	"unicode"
)

// 🧮 LexicalScorer scores similarity by cosine over token frequency vectors.
// It is the default scorer: deterministic, dependency-free, and symmetric.
// Unicode space variants are folded to ASCII space before tokenizing so the
// (meaning-invariant) space stage cannot move the score.
type LexicalScorer struct{}

// 🏭 NewLexicalScorer creates a new lexical similarity scorer
func NewLexicalScorer() *LexicalScorer {
	return &LexicalScorer{}
}

// Similarity implements SimilarityScorer.Similarity
func (s *LexicalScorer) Similarity(ctx context.Context, a, b string) (float64, error) {
	va := termFrequencies(a)
	vb := termFrequencies(b)

	if len(va) == 0 && len(vb) == 0 {
		return 1, nil
	}
	if len(va) == 0 || len(vb) == 0 {
		return 0, nil
	}
	return cosine(va, vb), nil
}

func termFrequencies(text string) map[string]float64 {
	freq := map[string]float64{}
	for _, tok := range similarityTokens(text) {
		freq[tok]++
	}
	return freq
}

// similarityTokens lowercases, folds exotic whitespace (including the
// zero-width space, which unicode.IsSpace does not cover) and strips
// punctuation.
func similarityTokens(text string) []string {
	text = strings.ReplaceAll(text, "\u200b", " ")
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for term, wa := range a {
		normA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
