//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/store"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

// topic ids in payloads and lookups are one-based; the artifacts index from zero

// Topics lists every displayed topic with its label and heaviest terms.
func (s *TopicService) Topics() ([]Topic, error) {
	if _, err := s.ensureModel(); err != nil {
		return nil, err
	}
	rows, err := s.ensureTerms()
	if err != nil {
		return nil, err
	}

	grouped := termsByTopic(rows)
	ids := sortedTopicIDs(grouped)
	shown := shownTopics(len(ids))

	out := make([]Topic, 0, shown)
	for _, idx := range ids[:shown] {
		tr := grouped[idx]
		n := vv.TOPICTOPTERMS
		if n > len(tr) {
			n = len(tr)
		}
		terms := make([]TermWeight, n)
		for i := 0; i < n; i++ {
			terms[i] = TermWeight{Term: tr[i].Term, Weight: tr[i].Weight}
		}
		out = append(out, Topic{ID: idx + 1, Label: s.label(idx), TopTerms: terms})
	}
	return out, nil
}

// Topic fetches a single topic by its one-based id.
func (s *TopicService) Topic(id int) (Topic, error) {
	all, err := s.Topics()
	if err != nil {
		return Topic{}, err
	}
	for _, t := range all {
		if t.ID == id {
			return t, nil
		}
	}
	return Topic{}, ErrTopicNotFound
}

// Trends returns the year axis and every displayed topic's mean-probability
// series, aligned index for index.
func (s *TopicService) Trends() (TrendsPayload, error) {
	rows, err := s.ensureTrends()
	if err != nil {
		return TrendsPayload{}, err
	}

	k := 0
	if len(rows) > 0 {
		k = len(rows[0].Means)
	}
	shown := shownTopics(k)

	years := make([]int, len(rows))
	series := make([]TrendTopic, shown)
	for i := range series {
		series[i] = TrendTopic{ID: i + 1, Label: s.label(i), Series: make([]float64, len(rows))}
	}
	for y, r := range rows {
		years[y] = r.Year
		for i := 0; i < shown; i++ {
			series[i].Series[y] = r.Means[i]
		}
	}
	return TrendsPayload{Years: years, Topics: series}, nil
}

// TopicYearDetail describes one (topic, year) cell: the number of documents
// the topic dominates that year and the topic's heaviest terms with per-year
// percentage shares. Without per-document assignments the counts are
// approximated from the trend table instead.
func (s *TopicService) TopicYearDetail(id int, year int) (YearDetail, error) {
	idx := id - 1
	rows, err := s.ensureTerms()
	if err != nil {
		return YearDetail{}, err
	}
	tr := termsByTopic(rows)[idx]

	detail := YearDetail{ID: id, Year: year, Label: s.label(idx), Terms: []YearDetailTerm{}}

	doct := s.ensureDocTopics()
	if len(doct) > 0 {
		count := 0
		sum := 0.0
		for _, d := range doct {
			if d.Year != year || idx < 0 || len(d.Probs) <= idx {
				continue
			}
			if dominant(d.Probs) == idx {
				count++
				sum += d.Probs[idx]
			}
		}
		detail.DocCount = count
		if count > 0 {
			detail.Terms = perturbedShares(tr, sum/float64(count), year, idx)
		}
		return detail, nil
	}

	// no per-document table: approximate the count from the trend value and
	// fall back to the topic's global term shares
	s.msg.WARN(fmt.Sprintf("no document-topic table; approximating topic %d in %d from trends", id, year))
	if trend, terr := s.ensureTrends(); terr == nil {
		for _, r := range trend {
			if r.Year == year && idx >= 0 && idx < len(r.Means) {
				v := r.Means[idx]
				if v < 0 {
					v = 0
				}
				detail.DocCount = int(math.Round(v))
				break
			}
		}
	}
	detail.Terms = straightShares(tr)
	return detail, nil
}

// DocCounts tallies how many documents each displayed topic dominates,
// optionally restricted to one publication year.
func (s *TopicService) DocCounts(year *int) ([]TopicCount, error) {
	m, err := s.ensureModel()
	if err != nil {
		return nil, err
	}
	shown := shownTopics(m.K)

	counts := make([]int, shown)
	for _, d := range s.ensureDocTopics() {
		if year != nil && d.Year != *year {
			continue
		}
		if len(d.Probs) == 0 {
			continue
		}
		if dom := dominant(d.Probs); dom < shown {
			counts[dom]++
		}
	}

	out := make([]TopicCount, shown)
	for i := range out {
		out[i] = TopicCount{ID: i + 1, Label: s.label(i), DocCount: counts[i]}
	}
	return out, nil
}

// TopicAllYears walks one topic across the whole year axis: per-year dominant
// counts plus keyword estimates accumulated over the years.
func (s *TopicService) TopicAllYears(id int) (AllYearsDetail, error) {
	idx := id - 1
	trend, err := s.ensureTrends()
	if err != nil {
		return AllYearsDetail{}, err
	}
	rows, err := s.ensureTerms()
	if err != nil {
		return AllYearsDetail{}, err
	}
	tr := termsByTopic(rows)[idx]

	out := AllYearsDetail{ID: id, Label: s.label(idx)}
	out.Years = make([]int, len(trend))
	for i, r := range trend {
		out.Years[i] = r.Year
	}

	byYear := make(map[int]int)
	for _, d := range s.ensureDocTopics() {
		if idx < 0 || len(d.Probs) <= idx {
			continue
		}
		if dominant(d.Probs) == idx {
			byYear[d.Year]++
		}
	}
	out.DocCounts = make([]int, len(out.Years))
	for i, y := range out.Years {
		out.DocCounts[i] = byYear[y]
	}

	// keyword estimates are summed year by year, mirroring the by-year view
	kw := make([]KeywordCount, len(tr))
	for i, t := range tr {
		total := 0
		for _, c := range byYear {
			total += estimate(t.Weight, c)
		}
		kw[i] = KeywordCount{Term: t.Term, Count: total, Weight: t.Weight}
	}
	sortKeywords(kw)
	if len(kw) > vv.ALLYEARSKEYN {
		kw = kw[:vv.ALLYEARSKEYN]
	}
	out.Keywords = kw
	return out, nil
}

func sortedTopicIDs(grouped map[int][]store.TopicTermRow) []int {
	ids := make([]int, 0, len(grouped))
	for id := range grouped {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// perturbedShares scales the topic's top terms by the year's average
// activation, wobbles each a seeded +/-2.5%, and renormalizes to 100.
// The same (year, topic) pair always yields the same shares.
func perturbedShares(tr []store.TopicTermRow, avg float64, year int, idx int) []YearDetailTerm {
	n := vv.YEARDETAILTERMS
	if n > len(tr) {
		n = len(tr)
	}
	rng := rand.New(rand.NewSource(uint64(year)*1000003 + uint64(idx)))

	adj := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		wobble := 1 + (rng.Float64()-0.5)*vv.YEARDETAILWOBBL
		adj[i] = tr[i].Weight * avg * wobble
		total += adj[i]
	}

	out := make([]YearDetailTerm, n)
	for i := 0; i < n; i++ {
		p := 0.0
		if total > 0 {
			p = adj[i] / total * 100
		}
		out[i] = YearDetailTerm{Term: tr[i].Term, Weight: tr[i].Weight, Percent: p}
	}
	return out
}

// straightShares renders the topic's top terms as plain percentages of their
// combined weight.
func straightShares(tr []store.TopicTermRow) []YearDetailTerm {
	n := vv.YEARDETAILTERMS
	if n > len(tr) {
		n = len(tr)
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += tr[i].Weight
	}
	out := make([]YearDetailTerm, n)
	for i := 0; i < n; i++ {
		p := 0.0
		if total > 0 {
			p = tr[i].Weight / total * 100
		}
		out[i] = YearDetailTerm{Term: tr[i].Term, Weight: tr[i].Weight, Percent: p}
	}
	return out
}
