package nlp

// Closed-class lexicons for the heuristic tagger. These are intentionally
// small: the stages only need to find auxiliaries, subordinators and a
// handful of open-class cues, not produce a full parse.

var auxiliaries = map[string]bool{
	"is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true,
	"has": true, "have": true, "had": true,
	"will": true, "would": true, "can": true, "could": true,
	"shall": true, "should": true, "may": true, "might": true, "must": true,
	"do": true, "does": true, "did": true,
}

var determiners = map[string]bool{
	"the": true, "a": true, "an": true,
	"this": true, "that": true, "these": true, "those": true,
	"each": true, "every": true, "some": true, "any": true, "no": true,
}

var pronouns = map[string]bool{
	"i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true, "them": true, "him": true, "her": true,
	"us": true, "me": true, "its": true, "their": true, "our": true,
	"his": true, "your": true, "my": true, "who": true, "which": true,
}

var prepositions = map[string]bool{
	"in": true, "on": true, "at": true, "by": true, "for": true,
	"with": true, "about": true, "against": true, "between": true,
	"into": true, "through": true, "during": true, "before": true,
	"after": true, "above": true, "below": true, "to": true, "from": true,
	"of": true, "over": true, "under": true, "within": true, "without": true,
}

var conjunctions = map[string]bool{
	"and": true, "but": true, "or": true, "nor": true, "so": true, "yet": true,
}

// adverbs not covered by the "-ly" suffix rule, mostly discourse connectives
var adverbs = map[string]bool{
	"however": true, "therefore": true, "moreover": true,
	"furthermore": true, "nevertheless": true, "nonetheless": true,
	"thus": true, "hence": true, "consequently": true, "meanwhile": true,
	"instead": true, "otherwise": true, "also": true, "indeed": true,
	"often": true, "always": true, "never": true, "sometimes": true,
	"again": true, "soon": true, "still": true, "yet": true, "then": true,
	"here": true, "there": true, "now": true, "very": true, "too": true,
	"well": true, "almost": true, "quite": true, "rather": true,
}

// subordinators introduce dependent clauses
var subordinators = map[string]bool{
	"because": true, "although": true, "though": true, "while": true,
	"since": true, "when": true, "whenever": true, "if": true,
	"unless": true, "until": true, "whereas": true, "after": true,
	"before": true, "once": true,
}

// irregularParticiples maps past participles to their simple-past form for
// voice conversion. Regular "-ed" participles convert in place.
var irregularParticiples = map[string]string{
	"done":       "did",
	"made":       "made",
	"taken":      "took",
	"given":      "gave",
	"written":    "wrote",
	"seen":       "saw",
	"shown":      "showed",
	"known":      "knew",
	"found":      "found",
	"built":      "built",
	"sent":       "sent",
	"held":       "held",
	"kept":       "kept",
	"led":        "led",
	"left":       "left",
	"lost":       "lost",
	"paid":       "paid",
	"read":       "read",
	"run":        "ran",
	"set":        "set",
	"told":       "told",
	"understood": "understood",
	"chosen":     "chose",
	"brought":    "brought",
	"bought":     "bought",
	"caught":     "caught",
	"taught":     "taught",
	"thought":    "thought",
	"put":        "put",
	"driven":     "drove",
	"broken":     "broke",
}

// abbreviations that end with a period but do not end a sentence
var abbreviations = map[string]bool{
	"e.g": true, "i.e": true, "etc": true, "vs": true, "cf": true,
	"dr": true, "mr": true, "mrs": true, "ms": true, "prof": true,
	"fig": true, "no": true, "vol": true, "approx": true,
}

// synonymFallback is the provider's broader synonym source. A model-backed
// provider would consult its own lexical database here.
var synonymFallback = map[string][]string{
	"significant":   {"substantial", "considerable", "notable"},
	"demonstrates":  {"shows", "reveals", "exhibits"},
	"demonstrate":   {"show", "reveal", "exhibit"},
	"consider":      {"weigh", "examine", "assess"},
	"various":       {"diverse", "numerous", "several"},
	"enhanced":      {"improved", "strengthened", "refined"},
	"substantially": {"considerably", "markedly", "noticeably"},
	"performance":   {"throughput", "efficiency"},
	"results":       {"findings", "outcomes"},
	"approach":      {"method", "strategy", "technique"},
	"provide":       {"supply", "offer", "deliver"},
	"provides":      {"supplies", "offers", "delivers"},
	"require":       {"need", "demand", "call for"},
	"requires":      {"needs", "demands"},
	"obtain":        {"acquire", "secure", "get"},
	"ensure":        {"guarantee", "make sure of", "secure"},
	"numerous":      {"many", "countless", "various"},
	"rapidly":       {"quickly", "swiftly", "speedily"},
	"carefully":     {"cautiously", "meticulously", "thoroughly"},
	"effective":     {"productive", "potent", "successful"},
	"additional":    {"extra", "further", "supplementary"},
	"primary":       {"main", "chief", "principal"},
	"method":        {"approach", "technique", "procedure"},
	"increase":      {"raise", "boost", "grow"},
	"decrease":      {"reduce", "lower", "shrink"},
}
