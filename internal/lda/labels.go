//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/store"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

// DefaultLabels - per topic, the top-k terms joined with the separator;
// "ai / model / data" style
func DefaultLabels(rows []store.TopicTermRow, topk int) map[int]string {
	bytopic := make(map[int][]store.TopicTermRow)
	for _, r := range rows {
		bytopic[r.TopicID] = append(bytopic[r.TopicID], r)
	}

	labels := make(map[int]string, len(bytopic))
	for id, terms := range bytopic {
		sort.SliceStable(terms, func(i, j int) bool { return terms[i].Weight > terms[j].Weight })
		n := topk
		if n > len(terms) {
			n = len(terms)
		}
		lbl := ""
		for i := 0; i < n; i++ {
			if i > 0 {
				lbl += vv.LABELSEPARATOR
			}
			lbl += terms[i].Term
		}
		labels[id] = lbl
	}
	return labels
}

// ApplyOverrides - replace defaults with the hand-curated labels from a JSON
// file; a corrupt override file aborts the labeling step rather than applying
// half of it
func ApplyOverrides(labels map[int]string, path string) error {
	if path == "" {
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read label overrides '%s': %w", path, err)
	}
	var raw map[string]string
	if err := json.Unmarshal(content, &raw); err != nil {
		return fmt.Errorf("parse label overrides '%s': %w", path, err)
	}
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("non-integer topic id '%s' in label overrides", k)
		}
		labels[id] = v
	}
	return nil
}
