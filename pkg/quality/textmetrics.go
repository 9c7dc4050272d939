package quality

import "strings"

// 📐 TextMetrics are general statistics about one text
type TextMetrics struct {
	CharacterCount     int
	WordCount          int
	SentenceCount      int
	AvgWordLength      float64
	AvgSentenceLength  float64
	UniqueWords        int
	LexicalDiversity   float64 // unique words / total words
}

// AnalyzeText computes general statistics for a text.
func AnalyzeText(text string) TextMetrics {
	words := strings.Fields(text)
	m := TextMetrics{
		CharacterCount: len([]rune(text)),
		WordCount:      len(words),
		SentenceCount:  countSentences(text),
	}

	if m.WordCount > 0 {
		total := 0
		unique := map[string]bool{}
		for _, w := range words {
			total += len([]rune(w))
			unique[strings.ToLower(strings.Trim(w, ".,;:!?\"'"))] = true
		}
		m.AvgWordLength = float64(total) / float64(m.WordCount)
		m.UniqueWords = len(unique)
		m.LexicalDiversity = float64(m.UniqueWords) / float64(m.WordCount)
	}
	if m.SentenceCount > 0 {
		m.AvgSentenceLength = float64(m.WordCount) / float64(m.SentenceCount)
	}
	return m
}
