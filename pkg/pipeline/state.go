package pipeline

import "github.com/walteh/rephrase/pkg/quality"

// 📄 TextState is an immutable snapshot of a text plus the ordered
// transformation identifiers that produced it. Stages consume one TextState
// and produce a new one; nothing mutates a snapshot in place.
type TextState struct {
	text            string
	transformations []string
}

// 🏭 NewTextState creates a baseline snapshot with no transformations
func NewTextState(text string) TextState {
	return TextState{text: text}
}

// Text returns the snapshot's text.
func (s TextState) Text() string {
	return s.text
}

// Transformations returns a copy of the applied transformation identifiers.
func (s TextState) Transformations() []string {
	out := make([]string, len(s.transformations))
	copy(out, s.transformations)
	return out
}

// With derives a new snapshot with the given text and additional
// transformation identifiers appended.
func (s TextState) With(text string, ids ...string) TextState {
	next := TextState{
		text:            text,
		transformations: make([]string, 0, len(s.transformations)+len(ids)),
	}
	next.transformations = append(next.transformations, s.transformations...)
	next.transformations = append(next.transformations, ids...)
	return next
}

// 📊 StageResult is one stage's outcome. Applied=false means the stage
// declined to alter the text, which is distinct from a rollback.
type StageResult struct {
	Candidate         TextState
	Applied           bool
	TransformationIDs []string
}

// 🎁 Outcome is the result of one Humanize call. It is constructed once per
// call and not retained by the pipeline.
type Outcome struct {
	RunID                  string
	FinalText              string
	Quality                quality.Report
	TransformationsApplied []string
	PassedQualityCheck     bool
}
