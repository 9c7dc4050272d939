package quality

import (
	"strings"
	"unicode"
)

// Readability formulas over plain text. The grade-level number is
// model-specific but monotonic under added complexity, which is all the
// pipeline's gate relies on.

// 📖 Readability bundles the scores surfaced by the analyze command
type Readability struct {
	FleschKincaidGrade        float64
	FleschReadingEase         float64
	AutomatedReadabilityIndex float64
}

// AnalyzeReadability computes all readability scores for a text.
func AnalyzeReadability(text string) Readability {
	return Readability{
		FleschKincaidGrade:        FleschKincaidGrade(text),
		FleschReadingEase:         FleschReadingEase(text),
		AutomatedReadabilityIndex: AutomatedReadabilityIndex(text),
	}
}

// FleschKincaidGrade returns the Flesch-Kincaid grade level.
func FleschKincaidGrade(text string) float64 {
	words, sentences, syllables := textCounts(text)
	if words == 0 || sentences == 0 {
		return 0
	}
	return 0.39*(float64(words)/float64(sentences)) +
		11.8*(float64(syllables)/float64(words)) - 15.59
}

// FleschReadingEase returns the Flesch reading-ease score (higher is easier).
func FleschReadingEase(text string) float64 {
	words, sentences, syllables := textCounts(text)
	if words == 0 || sentences == 0 {
		return 0
	}
	return 206.835 - 1.015*(float64(words)/float64(sentences)) -
		84.6*(float64(syllables)/float64(words))
}

// AutomatedReadabilityIndex returns the ARI grade estimate.
func AutomatedReadabilityIndex(text string) float64 {
	words, sentences, _ := textCounts(text)
	if words == 0 || sentences == 0 {
		return 0
	}
	chars := 0
	for _, w := range splitWords(text) {
		chars += len(w)
	}
	return 4.71*(float64(chars)/float64(words)) +
		0.5*(float64(words)/float64(sentences)) - 21.43
}

func textCounts(text string) (words, sentences, syllables int) {
	ws := splitWords(text)
	words = len(ws)
	for _, w := range ws {
		syllables += countSyllables(w)
	}
	sentences = countSentences(text)
	return words, sentences, syllables
}

func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-'
	})
}

func countSentences(text string) int {
	n := 0
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			n++
		}
	}
	if n == 0 && strings.TrimSpace(text) != "" {
		n = 1
	}
	return n
}

// countSyllables estimates syllables by vowel-group counting with a silent-e
// adjustment. Every word counts at least one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
