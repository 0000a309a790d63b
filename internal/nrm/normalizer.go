//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package nrm

import (
	"regexp"
	"strings"
)

// keep alphabetic runs only: digits, punctuation and symbols are dropped
var wordfinder = regexp.MustCompile(`[a-zA-Z]+`)

// Normalizer - turns raw abstract text into filtered token sequences
type Normalizer struct {
	MinLen    int
	Stops     map[string]struct{}
	Lemmatize bool
}

func NewNormalizer(minlen int, language string, extrastops []string, lemmatize bool) *Normalizer {
	return &Normalizer{
		MinLen:    minlen,
		Stops:     BuildStopSet(language, extrastops),
		Lemmatize: lemmatize,
	}
}

// Tokens - lower-case, extract alphabetic runs, filter short words and stops,
// optionally lemmatize; pure function of the configuration + input
func (n *Normalizer) Tokens(text string) []string {
	text = strings.ToLower(text)
	found := wordfinder.FindAllString(text, -1)

	result := make([]string, 0, len(found))
	for _, t := range found {
		if len(t) < n.MinLen {
			continue
		}
		if _, stop := n.Stops[t]; stop {
			continue
		}
		if n.Lemmatize {
			t = Lemmatize(t)
		}
		result = append(result, t)
	}
	return result
}
