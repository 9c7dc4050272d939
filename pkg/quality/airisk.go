package quality

import (
	"math"
	"strings"
)

// aiPatterns are discourse habits over-represented in generated prose.
var aiPatterns = []string{
	"however", "therefore", "additionally", "furthermore", "moreover",
	"in conclusion", "it is important to note", "it should be noted",
	"significantly", "notably", "essentially", "particularly",
}

// ⚠️ Risk is a heuristic AI-detection risk assessment
type Risk struct {
	Score           float64 // [0,100], higher = more detectable
	PatternCount    int     // Matched AI-typical patterns
	PatternDensity  float64 // Patterns per word
	LengthVariation float64 // Coefficient of variation of sentence lengths
	Assessment      string  // "Low", "Medium" or "High"
}

// EstimateRisk scores a text for AI-detection risk. Two signals: density of
// AI-typical discourse patterns, and uniformity of sentence lengths (machine
// prose tends to have low variance). Each signal caps at 50 points.
func EstimateRisk(text string) Risk {
	lower := strings.ToLower(text)

	patternCount := 0
	for _, p := range aiPatterns {
		if strings.Contains(lower, p) {
			patternCount++
		}
	}

	wordCount := len(strings.Fields(text))
	density := 0.0
	if wordCount > 0 {
		density = float64(patternCount) / float64(wordCount)
	}

	cv := sentenceLengthVariation(text)

	patternRisk := math.Min(density*1000, 50)
	uniformityRisk := math.Max(0, 50-cv*100)
	score := math.Min(patternRisk+uniformityRisk, 100)

	assessment := "Low"
	switch {
	case score > 70:
		assessment = "High"
	case score > 40:
		assessment = "Medium"
	}

	return Risk{
		Score:           score,
		PatternCount:    patternCount,
		PatternDensity:  density,
		LengthVariation: cv,
		Assessment:      assessment,
	}
}

// sentenceLengthVariation returns the coefficient of variation of word
// counts per sentence, 0 when there are fewer than two sentences.
func sentenceLengthVariation(text string) float64 {
	var lengths []float64
	for _, s := range strings.Split(text, ".") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		lengths = append(lengths, float64(len(strings.Fields(s))))
	}
	if len(lengths) < 2 {
		return 0
	}

	mean := 0.0
	for _, l := range lengths {
		mean += l
	}
	mean /= float64(len(lengths))
	if mean == 0 {
		return 0
	}

	variance := 0.0
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	variance /= float64(len(lengths))

	return math.Sqrt(variance) / mean
}
