//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

// response payloads; field names are part of the API surface

// TermWeight - one weighted term of a topic
type TermWeight struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// Topic - id, human label, heaviest terms
type Topic struct {
	ID       int          `json:"id"`
	Label    string       `json:"label"`
	TopTerms []TermWeight `json:"topTerms"`
}

// TrendTopic - one topic's per-year intensity series, aligned to the years axis
type TrendTopic struct {
	ID     int       `json:"id"`
	Label  string    `json:"label"`
	Series []float64 `json:"series"`
}

// TrendsPayload - the year axis plus every displayed topic's series
type TrendsPayload struct {
	Years  []int        `json:"years"`
	Topics []TrendTopic `json:"topics"`
}

// YearDetailTerm - a term with its share of the topic in one year
type YearDetailTerm struct {
	Term    string  `json:"term"`
	Weight  float64 `json:"weight"`
	Percent float64 `json:"percent"`
}

// YearDetail - one (topic, year) cell: dominant-document count + term shares
type YearDetail struct {
	ID       int              `json:"id"`
	Year     int              `json:"year"`
	Label    string           `json:"label"`
	DocCount int              `json:"docCount"`
	Terms    []YearDetailTerm `json:"terms"`
}

// TopicCount - dominant-document count for one topic
type TopicCount struct {
	ID       int    `json:"id"`
	Label    string `json:"label"`
	DocCount int    `json:"docCount"`
}

// KeywordCount - a keyword with its estimated occurrence count; the count is
// the round(weight x docs x 10) heuristic, not a measured frequency
type KeywordCount struct {
	Term   string  `json:"term"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"`
}

// AllYearsDetail - one topic across the whole year axis
type AllYearsDetail struct {
	ID        int            `json:"id"`
	Label     string         `json:"label"`
	Years     []int          `json:"years"`
	DocCounts []int          `json:"docCounts"`
	Keywords  []KeywordCount `json:"keywords"`
}

// AuthorCount - an author name and how many selected documents carried it
type AuthorCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
