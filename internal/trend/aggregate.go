//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package trend

import (
	"fmt"
	"sort"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/lda"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/store"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vec"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

// ComputeDocTopics - one dense K-wide probability row per document; corpus
// order and metadata order must align 1:1
func ComputeDocTopics(m *lda.Model, docs [][]vec.TermCount, meta []store.DocMetaRow) ([]store.DocTopicRow, error) {
	if len(docs) != len(meta) {
		return nil, fmt.Errorf("corpus/metadata mismatch: %d documents vs %d metadata rows", len(docs), len(meta))
	}

	rows := make([]store.DocTopicRow, len(docs))
	for i, doc := range docs {
		rows[i] = store.DocTopicRow{
			ArticleID: meta[i].ArticleID,
			Year:      meta[i].Year,
			Probs:     m.DocTopics(doc, vv.LDAFOLDITER),
		}
	}
	return rows, nil
}

// YearlyTrends - group the document-topic matrix by year and take the
// column-wise arithmetic mean; rows come back year-ascending
func YearlyTrends(rows []store.DocTopicRow, k int) []store.TrendRow {
	sums := make(map[int][]float64)
	counts := make(map[int]int)

	for _, r := range rows {
		s, ok := sums[r.Year]
		if !ok {
			s = make([]float64, k)
			sums[r.Year] = s
		}
		for t := 0; t < k && t < len(r.Probs); t++ {
			s[t] += r.Probs[t]
		}
		counts[r.Year]++
	}

	years := make([]int, 0, len(sums))
	for y := range sums {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]store.TrendRow, len(years))
	for i, y := range years {
		means := make([]float64, k)
		for t := 0; t < k; t++ {
			means[t] = sums[y][t] / float64(counts[y])
		}
		out[i] = store.TrendRow{Year: y, Means: means}
	}
	return out
}
