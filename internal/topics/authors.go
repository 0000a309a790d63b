//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"sort"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

// RepresentativeAuthors names the authors behind the documents most strongly
// associated with a topic: the pool is the hundred highest-probability
// documents, ranked by raw probability rather than dominance. Missing tables
// or an unknown topic yield an empty list, never an error.
func (s *TopicService) RepresentativeAuthors(id int, n int) []AuthorCount {
	idx := id - 1
	if n <= 0 {
		n = vv.AUTHORTOPN
	}

	doct := s.ensureDocTopics()
	at := s.ensureAuthors()

	type scored struct {
		article int
		p       float64
	}
	pool := make([]scored, 0, len(doct))
	for _, d := range doct {
		if idx < 0 || len(d.Probs) <= idx {
			continue
		}
		pool = append(pool, scored{article: d.ArticleID, p: d.Probs[idx]})
	}
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].p != pool[j].p {
			return pool[i].p > pool[j].p
		}
		return pool[i].article < pool[j].article
	})
	if len(pool) > vv.AUTHORPOOLSIZE {
		pool = pool[:vv.AUTHORPOOLSIZE]
	}

	tally := make(map[string]int)
	for _, d := range pool {
		for _, a := range at.Resolve(d.article) {
			if a.Name == "" {
				continue
			}
			tally[a.Name]++
		}
	}

	out := make([]AuthorCount, 0, len(tally))
	for name, c := range tally {
		out = append(out, AuthorCount{Name: name, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
