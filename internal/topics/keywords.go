//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"math"
	"sort"
	"strings"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

// KeywordRank merges every in-scope topic's term estimates into one ranked
// keyword list. Both filters are optional: nil topic means all displayed
// topics, nil year means all years. Terms differing only in case are merged;
// the most frequently seen casing is the one displayed.
func (s *TopicService) KeywordRank(topicID *int, year *int) ([]KeywordCount, error) {
	rows, err := s.ensureTerms()
	if err != nil {
		return nil, err
	}
	grouped := termsByTopic(rows)
	ids := sortedTopicIDs(grouped)
	scope := ids[:shownTopics(len(ids))]
	if topicID != nil {
		idx := *topicID - 1
		if _, ok := grouped[idx]; !ok {
			return []KeywordCount{}, nil
		}
		scope = []int{idx}
	}

	// dominant-document counts per (topic, year), under the optional year
	// filter; the estimate heuristic is a per-year quantity, so the counts
	// must stay bucketed by year until each year's estimate is taken
	docs := make(map[int]map[int]int)
	for _, d := range s.ensureDocTopics() {
		if year != nil && d.Year != *year {
			continue
		}
		if len(d.Probs) == 0 {
			continue
		}
		dom := dominant(d.Probs)
		if docs[dom] == nil {
			docs[dom] = make(map[int]int)
		}
		docs[dom][d.Year]++
	}

	type agg struct {
		count   int
		weight  float64
		casings map[string]int
		seen    map[string]int // first-seen rank per casing, for ties
		order   int
	}
	merged := make(map[string]*agg)
	next := 0

	for _, idx := range scope {
		for _, t := range grouped[idx] {
			low := strings.ToLower(t.Term)
			a, ok := merged[low]
			if !ok {
				a = &agg{casings: make(map[string]int), seen: make(map[string]int), order: next}
				next++
				merged[low] = a
			}
			for _, c := range docs[idx] {
				a.count += estimate(t.Weight, c)
			}
			a.weight += t.Weight
			if _, ok := a.seen[t.Term]; !ok {
				a.seen[t.Term] = len(a.seen)
			}
			a.casings[t.Term]++
		}
	}

	out := make([]KeywordCount, 0, len(merged))
	for _, a := range merged {
		out = append(out, KeywordCount{Term: bestCasing(a.casings, a.seen), Count: a.count, Weight: a.weight})
	}
	sortKeywords(out)
	if len(out) > vv.KEYWORDRANKN {
		out = out[:vv.KEYWORDRANKN]
	}
	return out, nil
}

// estimate is the occurrence heuristic: weight x dominant documents x scale,
// rounded to the nearest integer.
func estimate(weight float64, docs int) int {
	return int(math.Round(weight * float64(docs) * vv.KEYWORDESTSCALE))
}

// bestCasing picks the most frequently seen spelling; ties keep the casing
// that appeared first.
func bestCasing(casings map[string]int, seen map[string]int) string {
	best := ""
	for c := range casings {
		if best == "" {
			best = c
			continue
		}
		if casings[c] > casings[best] || (casings[c] == casings[best] && seen[c] < seen[best]) {
			best = c
		}
	}
	return best
}

// sortKeywords ranks by estimated count, then by merged weight, then
// alphabetically.
func sortKeywords(kw []KeywordCount) {
	sort.Slice(kw, func(i, j int) bool {
		if kw[i].Count != kw[j].Count {
			return kw[i].Count > kw[j].Count
		}
		if kw[i].Weight != kw[j].Weight {
			return kw[i].Weight > kw[j].Weight
		}
		return kw[i].Term < kw[j].Term
	})
}
