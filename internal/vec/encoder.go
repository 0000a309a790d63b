//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import "sort"

// TermCount - one (term id, occurrence count) pair of a sparse document vector
type TermCount struct {
	ID    int
	Count int
}

// Encode - map tokens through the final vocabulary, counting occurrences and
// dropping anything out of vocabulary; output is sorted by term id, so
// re-encoding identical tokens yields an identical vector
func (v *Vocabulary) Encode(tokens []string) []TermCount {
	counts := make(map[int]int)
	for _, t := range tokens {
		if id, ok := v.TermID[t]; ok {
			counts[id]++
		}
	}

	enc := make([]TermCount, 0, len(counts))
	for id, n := range counts {
		enc = append(enc, TermCount{ID: id, Count: n})
	}
	sort.Slice(enc, func(i, j int) bool { return enc[i].ID < enc[j].ID })
	return enc
}
