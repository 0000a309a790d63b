//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package nrm

import "strings"

// rule-based noun lemmatization: enough to collapse the plural/singular split
// that otherwise doubles the vocabulary ("networks"/"network", "queries"/"query")

var irregulars = map[string]string{
	"men":      "man",
	"women":    "woman",
	"children": "child",
	"feet":     "foot",
	"teeth":    "tooth",
	"mice":     "mouse",
	"geese":    "goose",
	"people":   "person",
	"data":     "data",
	"media":    "media",
	"analyses": "analysis",
	"criteria": "criterion",
	"indices":  "index",
	"matrices": "matrix",
	"vertices": "vertex",
	"corpora":  "corpus",
	"schemata": "schema",
}

// words that end in "s" but are not plurals; stripping would mangle them
var notplural = map[string]struct{}{
	"always": {}, "analysis": {}, "bias": {}, "basis": {}, "bus": {}, "canvas": {},
	"census": {}, "chaos": {}, "class": {}, "consensus": {}, "corpus": {}, "crisis": {},
	"css": {}, "focus": {}, "gas": {}, "its": {}, "lens": {}, "loss": {}, "physics": {},
	"process": {}, "semantics": {}, "series": {}, "species": {}, "status": {},
	"synthesis": {}, "thesis": {}, "this": {}, "various": {}, "virus": {}, "was": {},
}

// Lemmatize - reduce a lower-case token to its morphological base form
func Lemmatize(w string) string {
	if base, ok := irregulars[w]; ok {
		return base
	}
	if _, ok := notplural[w]; ok {
		return w
	}
	if len(w) < 4 || !strings.HasSuffix(w, "s") {
		return w
	}

	switch {
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "xes"), strings.HasSuffix(w, "zes"),
		strings.HasSuffix(w, "ches"), strings.HasSuffix(w, "shes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ss"), strings.HasSuffix(w, "us"), strings.HasSuffix(w, "is"):
		return w
	default:
		return w[:len(w)-1]
	}
}
