package semantics

import "github.com/walteh/rephrase/pkg/config"

// Curated substitution tables. Pure data: the replacer owns all logic.

// discourseMarkers maps a marker to its accepted variations.
var discourseMarkers = map[string][]string{
	"however":        {"nevertheless", "nonetheless", "that said", "on the other hand", "conversely", "yet"},
	"therefore":      {"thus", "hence", "consequently", "as a result", "accordingly", "for this reason"},
	"additionally":   {"furthermore", "moreover", "what's more", "beyond that", "in addition", "also"},
	"in conclusion":  {"ultimately", "in summary", "to sum up", "all things considered", "in the end"},
	"for example":    {"for instance", "such as", "namely", "to illustrate"},
	"in other words": {"that is to say", "put differently", "to put it another way"},
	"first":          {"firstly", "to begin with", "initially", "first of all"},
	"finally":        {"lastly", "in the end", "ultimately", "to conclude"},
}

// phraseSubstitutions maps wordy phrases to tighter alternatives.
var phraseSubstitutions = map[string][]string{
	"in order to":           {"to", "so as to"},
	"due to the fact that":  {"because", "since", "given that"},
	"at this point in time": {"now", "currently", "at present"},
	"in the event that":     {"if", "should", "in case"},
	"with regard to":        {"regarding", "concerning", "about"},
	"a number of":           {"several", "many", "some"},
	"in spite of":           {"despite", "notwithstanding"},
	"prior to":              {"before"},
	"subsequent to":         {"after", "following"},
	"in the process of":     {"currently", "while"},
}

// synonymGroups holds formality-scoped synonyms for common content words.
var synonymGroups = map[string]map[config.Formality][]string{
	"important": {
		config.FormalityFormal:    {"paramount", "crucial", "vital", "essential"},
		config.FormalityTechnical: {"critical", "significant", "key"},
		config.FormalityCasual:    {"big", "major", "main"},
	},
	"show": {
		config.FormalityFormal:    {"demonstrate", "illustrate", "exhibit"},
		config.FormalityTechnical: {"indicate", "reveal", "display"},
		config.FormalityCasual:    {"prove", "point out"},
	},
	"improve": {
		config.FormalityFormal:    {"enhance", "augment", "optimize"},
		config.FormalityTechnical: {"refine", "advance", "upgrade"},
		config.FormalityCasual:    {"boost", "better", "fix up"},
	},
	"use": {
		config.FormalityFormal:    {"utilize", "employ", "apply"},
		config.FormalityTechnical: {"implement", "deploy", "leverage"},
		config.FormalityCasual:    {"try", "work with"},
	},
	"make": {
		config.FormalityFormal:    {"produce", "construct", "fashion"},
		config.FormalityTechnical: {"generate", "build", "assemble"},
		config.FormalityCasual:    {"put together", "whip up"},
	},
	"help": {
		config.FormalityFormal:    {"assist", "facilitate", "aid"},
		config.FormalityTechnical: {"support", "enable"},
		config.FormalityCasual:    {"give a hand", "pitch in"},
	},
}
