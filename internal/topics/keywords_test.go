//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/store"
)

func TestKeywordRankMergesCasings(t *testing.T) {
	svc := service(t, fixture(t))

	kw, err := svc.KeywordRank(nil, nil)
	if err != nil {
		t.Fatalf("KeywordRank: %v", err)
	}
	if len(kw) == 0 {
		t.Fatal("no keywords")
	}

	// "Network" (topic 1: 1+2+1 dominant docs over the years) and "network"
	// (topic 2: 1+1) merge: (4+8+4) + (2+2) = 16 + 4
	if kw[0].Term != "Network" || kw[0].Count != 20 {
		t.Errorf("top keyword = %+v, want Network with 20", kw[0])
	}
	if kw[0].Weight != 0.6 {
		t.Errorf("merged weight = %f, want 0.6", kw[0].Weight)
	}

	// no case-insensitive duplicates survive
	seen := make(map[string]bool)
	for _, k := range kw {
		low := strings.ToLower(k.Term)
		if seen[low] {
			t.Errorf("duplicate keyword %q", k.Term)
		}
		seen[low] = true
	}

	// ranked by count
	for i := 1; i < len(kw); i++ {
		if kw[i].Count > kw[i-1].Count {
			t.Errorf("keywords out of order: %+v before %+v", kw[i-1], kw[i])
		}
	}
}

func TestKeywordRankTopicFilter(t *testing.T) {
	svc := service(t, fixture(t))

	topic := 2
	kw, err := svc.KeywordRank(&topic, nil)
	if err != nil {
		t.Fatalf("KeywordRank: %v", err)
	}
	// topic 2 dominates one document in 2018 and one in 2019; "graph" = 5 + 5
	if kw[0].Term != "graph" || kw[0].Count != 10 {
		t.Errorf("top keyword = %+v, want graph with 10", kw[0])
	}
	for _, k := range kw {
		if k.Term == "deep" || k.Term == "robot" {
			t.Errorf("keyword %q leaked from another topic", k.Term)
		}
	}
}

func TestKeywordRankYearFilter(t *testing.T) {
	svc := service(t, fixture(t))

	year := 2019
	kw, err := svc.KeywordRank(nil, &year)
	if err != nil {
		t.Fatalf("KeywordRank: %v", err)
	}
	// 2019 dominance: topic 1 twice, topic 2 once, topic 3 never
	// "Network"/"network": round(.4*2*10) + round(.2*1*10) = 8 + 2
	if kw[0].Term != "Network" || kw[0].Count != 10 {
		t.Errorf("top keyword = %+v, want Network with 10", kw[0])
	}
}

func TestKeywordRankEstimatesYearByYear(t *testing.T) {
	// a term too light to register in any single year must not pick up a
	// phantom count from the years added together
	lay := store.NewLayout(t.TempDir())
	if err := lay.EnsureDirs(); err != nil {
		t.Fatal(err)
	}
	terms := []store.TopicTermRow{
		{TopicID: 0, Term: "signal", Weight: 0.5},
		{TopicID: 0, Term: "trace", Weight: 0.04},
	}
	if err := store.WriteTopicTerms(lay.TopicTerms(), terms); err != nil {
		t.Fatal(err)
	}
	doct := []store.DocTopicRow{
		{ArticleID: 1, Year: 2018, Probs: []float64{0.9, 0.1}},
		{ArticleID: 2, Year: 2019, Probs: []float64{0.9, 0.1}},
		{ArticleID: 3, Year: 2020, Probs: []float64{0.9, 0.1}},
	}
	if err := store.WriteDocTopics(lay.DocTopics(), doct, 2); err != nil {
		t.Fatal(err)
	}
	trends := []store.TrendRow{
		{Year: 2018, Means: []float64{0.9, 0.1}},
		{Year: 2019, Means: []float64{0.9, 0.1}},
		{Year: 2020, Means: []float64{0.9, 0.1}},
	}
	if err := store.WriteTrends(lay.Trends(), trends, 2); err != nil {
		t.Fatal(err)
	}

	svc := service(t, lay)
	kw, err := svc.KeywordRank(nil, nil)
	if err != nil {
		t.Fatalf("KeywordRank: %v", err)
	}
	got := make(map[string]int, len(kw))
	for _, k := range kw {
		got[k.Term] = k.Count
	}
	// one dominant document in each of three years: round(.04*1*10) is 0
	// every year, so "trace" stays at 0 - never round(.04*3*10) = 1
	if got["trace"] != 0 {
		t.Errorf("trace count = %d, want 0", got["trace"])
	}
	if got["signal"] != 15 {
		t.Errorf("signal count = %d, want 15", got["signal"])
	}

	// the unfiltered ranking and the per-topic year walk agree
	ay, err := svc.TopicAllYears(1)
	if err != nil {
		t.Fatalf("TopicAllYears: %v", err)
	}
	for _, k := range ay.Keywords {
		if got[k.Term] != k.Count {
			t.Errorf("%q: rank count %d != all-years count %d", k.Term, got[k.Term], k.Count)
		}
	}
}

func TestKeywordRankUnknownTopic(t *testing.T) {
	svc := service(t, fixture(t))

	topic := 99
	kw, err := svc.KeywordRank(&topic, nil)
	if err != nil {
		t.Fatalf("KeywordRank: %v", err)
	}
	if len(kw) != 0 {
		t.Errorf("unknown topic yielded %v", kw)
	}
}

func TestKeywordRankIdempotent(t *testing.T) {
	lay := fixture(t)

	a, err := service(t, lay).KeywordRank(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := service(t, lay).KeywordRank(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two loads ranked differently")
	}
}

func TestBestCasing(t *testing.T) {
	casings := map[string]int{"BERT": 3, "bert": 1}
	seen := map[string]int{"BERT": 0, "bert": 1}
	if got := bestCasing(casings, seen); got != "BERT" {
		t.Errorf("bestCasing = %q, want the majority spelling", got)
	}

	// a tie keeps the first-seen spelling
	casings = map[string]int{"Gan": 2, "GAN": 2}
	seen = map[string]int{"Gan": 1, "GAN": 0}
	if got := bestCasing(casings, seen); got != "GAN" {
		t.Errorf("bestCasing = %q, want the first-seen spelling", got)
	}
}
