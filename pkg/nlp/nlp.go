// Package nlp defines the linguistic analysis provider boundary used by the
// transformation stages. The production provider is an external model; this
// package ships a deterministic heuristic implementation good enough for
// structural detection and for tests.
package nlp

// 🏷️ POS is a coarse part-of-speech tag
type POS int

const (
	POSOther POS = iota
	POSNoun
	POSProperNoun
	POSVerb
	POSAux
	POSAdjective
	POSAdverb
	POSDeterminer
	POSPronoun
	POSPreposition
	POSConjunction
	POSNumber
	POSPunct
)

// String returns a string representation of POS
func (p POS) String() string {
	switch p {
	case POSNoun:
		return "noun"
	case POSProperNoun:
		return "propn"
	case POSVerb:
		return "verb"
	case POSAux:
		return "aux"
	case POSAdjective:
		return "adj"
	case POSAdverb:
		return "adv"
	case POSDeterminer:
		return "det"
	case POSPronoun:
		return "pron"
	case POSPreposition:
		return "prep"
	case POSConjunction:
		return "conj"
	case POSNumber:
		return "num"
	case POSPunct:
		return "punct"
	default:
		return "other"
	}
}

// 📍 Span marks a half-open [Start, End) byte range in the source text
type Span struct {
	Start int
	End   int
	Text  string
}

// 🔤 Token is a single token with its coarse tag
type Token struct {
	Text  string // Token text as written
	Lower string // Lowercased form
	POS   POS    // Coarse part-of-speech tag
	Start int    // Byte offset in the sentence
	End   int    // Byte offset in the sentence
}

// 📝 Sentence is one sentence with its token stream
type Sentence struct {
	Span
	Tokens []Token
}

// 📚 Doc is the full analysis of one text
type Doc struct {
	Text         string
	Sentences    []Sentence
	PassiveSpans []Span // Sentences detected as passive-voice constructions
	ClauseSpans  []Span // Leading dependent clauses ("Because X," ...)
	QuotedSpans  []Span // Verbatim quoted regions, never to be rewritten
}

// 🔌 Parser is the analysis provider contract. Implementations must be
// deterministic for a given text and safe for concurrent use.
type Parser interface {
	// Parse analyzes text into sentences, tags and structural spans
	Parse(text string) (*Doc, error)

	// Synonyms returns the provider's broader synonym candidates for a word,
	// used when no curated table entry exists
	Synonyms(word string) []string
}

// IsQuoted reports whether the byte range [start, end) overlaps a quoted span.
func (d *Doc) IsQuoted(start, end int) bool {
	for _, q := range d.QuotedSpans {
		if start < q.End && end > q.Start {
			return true
		}
	}
	return false
}

// IsPassive reports whether the sentence at the given span is a passive
// construction.
func (d *Doc) IsPassive(s Span) bool {
	for _, p := range d.PassiveSpans {
		if p.Start == s.Start && p.End == s.End {
			return true
		}
	}
	return false
}
