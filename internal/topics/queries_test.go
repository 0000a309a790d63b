//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"database/sql"
	"math"
	"os"
	"reflect"
	"testing"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/store"
)

func TestTopicYearDetail(t *testing.T) {
	svc := service(t, fixture(t))

	// 2019: articles 103 and 104 are dominated by topic 1
	d, err := svc.TopicYearDetail(1, 2019)
	if err != nil {
		t.Fatalf("TopicYearDetail: %v", err)
	}
	if d.DocCount != 2 {
		t.Errorf("DocCount = %d, want 2", d.DocCount)
	}
	if d.Label != "Deep Learning" {
		t.Errorf("Label = %q", d.Label)
	}
	if len(d.Terms) != 4 {
		t.Fatalf("got %d terms, want 4", len(d.Terms))
	}

	sum := 0.0
	for _, term := range d.Terms {
		sum += term.Percent
	}
	if math.Abs(sum-100.0) > 1e-9 {
		t.Errorf("percentages sum to %f, want 100", sum)
	}
}

func TestTopicYearDetailDeterministic(t *testing.T) {
	lay := fixture(t)

	a, err := service(t, lay).TopicYearDetail(1, 2019)
	if err != nil {
		t.Fatal(err)
	}
	// a fresh service must reproduce the same perturbed shares
	b, err := service(t, lay).TopicYearDetail(1, 2019)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two loads diverged:\n%+v\n%+v", a, b)
	}
}

func TestTopicYearDetailTieGoesToLowerTopic(t *testing.T) {
	svc := service(t, fixture(t))

	// article 107 ties topics 1 and 2 in 2020; it must count for topic 1 only
	d1, _ := svc.TopicYearDetail(1, 2020)
	d2, _ := svc.TopicYearDetail(2, 2020)
	if d1.DocCount != 1 {
		t.Errorf("topic 1 / 2020 DocCount = %d, want 1", d1.DocCount)
	}
	if d2.DocCount != 0 {
		t.Errorf("topic 2 / 2020 DocCount = %d, want 0", d2.DocCount)
	}
}

func TestTopicYearDetailNoDominantDocs(t *testing.T) {
	svc := service(t, fixture(t))

	// nothing in 2018 is dominated by topic 3
	d, err := svc.TopicYearDetail(3, 2018)
	if err != nil {
		t.Fatalf("TopicYearDetail: %v", err)
	}
	if d.DocCount != 0 {
		t.Errorf("DocCount = %d, want 0", d.DocCount)
	}
	if len(d.Terms) != 0 {
		t.Errorf("terms = %v, want none", d.Terms)
	}
}

func TestTopicYearDetailFallback(t *testing.T) {
	lay := fixture(t)
	if err := os.Remove(lay.DocTopics()); err != nil {
		t.Fatal(err)
	}
	svc := service(t, lay)

	// topic 2 averaged 0.5 in 2019; the trend value itself becomes the count
	d, err := svc.TopicYearDetail(2, 2019)
	if err != nil {
		t.Fatalf("TopicYearDetail: %v", err)
	}
	if d.DocCount != 1 {
		t.Errorf("DocCount = %d, want round(0.5) = 1", d.DocCount)
	}
	if len(d.Terms) != 3 {
		t.Fatalf("got %d terms, want 3", len(d.Terms))
	}
	sum := 0.0
	for _, term := range d.Terms {
		sum += term.Percent
	}
	if math.Abs(sum-100.0) > 1e-9 {
		t.Errorf("fallback percentages sum to %f, want 100", sum)
	}
}

func TestDocCounts(t *testing.T) {
	svc := service(t, fixture(t))

	all, err := svc.DocCounts(nil)
	if err != nil {
		t.Fatalf("DocCounts: %v", err)
	}
	want := []int{4, 2, 1}
	for i, c := range all {
		if c.ID != i+1 || c.DocCount != want[i] {
			t.Errorf("counts[%d] = %+v, want DocCount %d", i, c, want[i])
		}
	}

	year := 2019
	in2019, err := svc.DocCounts(&year)
	if err != nil {
		t.Fatalf("DocCounts(2019): %v", err)
	}
	want = []int{2, 1, 0}
	for i, c := range in2019 {
		if c.DocCount != want[i] {
			t.Errorf("2019 counts[%d] = %d, want %d", i, c.DocCount, want[i])
		}
	}
}

func TestDocCountsWithoutDocTopics(t *testing.T) {
	lay := fixture(t)
	if err := os.Remove(lay.DocTopics()); err != nil {
		t.Fatal(err)
	}

	all, err := service(t, lay).DocCounts(nil)
	if err != nil {
		t.Fatalf("DocCounts: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d counts, want 3", len(all))
	}
	for _, c := range all {
		if c.DocCount != 0 {
			t.Errorf("count without assignments = %+v, want 0", c)
		}
	}
}

func TestTopicAllYears(t *testing.T) {
	svc := service(t, fixture(t))

	d, err := svc.TopicAllYears(1)
	if err != nil {
		t.Fatalf("TopicAllYears: %v", err)
	}
	if !reflect.DeepEqual(d.Years, []int{2018, 2019, 2020}) {
		t.Errorf("Years = %v", d.Years)
	}
	if !reflect.DeepEqual(d.DocCounts, []int{1, 2, 1}) {
		t.Errorf("DocCounts = %v", d.DocCounts)
	}
	if len(d.Keywords) == 0 {
		t.Fatal("no keywords")
	}
	// "Network" at weight 0.4: round(.4*1*10) + round(.4*2*10) + round(.4*1*10)
	if d.Keywords[0].Term != "Network" || d.Keywords[0].Count != 16 {
		t.Errorf("top keyword = %+v, want Network with 16", d.Keywords[0])
	}
}

func TestTopicsAreLoadedOnce(t *testing.T) {
	lay := fixture(t)
	svc := service(t, lay)

	first, err := svc.Topics()
	if err != nil {
		t.Fatal(err)
	}

	// the artifacts can vanish after the first load; answers must not change
	if err := os.Remove(lay.TopicTerms()); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(lay.Model()); err != nil {
		t.Fatal(err)
	}

	second, err := svc.Topics()
	if err != nil {
		t.Fatalf("second Topics: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("answers changed after artifact removal")
	}
}

func TestRepresentativeAuthors(t *testing.T) {
	lay := fixture(t)

	conn, err := sql.Open("sqlite", lay.PapersDB())
	if err != nil {
		t.Fatal(err)
	}
	stmts := []string{
		`CREATE TABLE main_records (record_id INTEGER PRIMARY KEY, article_id INTEGER, authors TEXT)`,
		`INSERT INTO main_records VALUES (1, 101, '[{"name":"Ada Lovelace","affiliation":""}]')`,
		`INSERT INTO main_records VALUES (2, 103, '[{"name":"Ada Lovelace","affiliation":""}]')`,
		`INSERT INTO main_records VALUES (3, 104, '[{"name":"Grace Hopper","affiliation":""}]')`,
	}
	for _, s := range stmts {
		if _, err := conn.Exec(s); err != nil {
			t.Fatal(err)
		}
	}
	conn.Close()

	got := service(t, lay).RepresentativeAuthors(1, 10)
	if len(got) != 2 {
		t.Fatalf("got %v, want two authors", got)
	}
	if got[0].Name != "Ada Lovelace" || got[0].Count != 2 {
		t.Errorf("first author = %+v", got[0])
	}
	if got[1].Name != "Grace Hopper" || got[1].Count != 1 {
		t.Errorf("second author = %+v", got[1])
	}
}

func TestRepresentativeAuthorsWithoutTables(t *testing.T) {
	svc := service(t, fixture(t))
	if got := svc.RepresentativeAuthors(1, 10); len(got) != 0 {
		t.Errorf("no author tables should mean no authors, got %v", got)
	}
}

func TestPyLDAvisPath(t *testing.T) {
	lay := store.NewLayout("/tmp/artifacts")
	svc := NewTopicService(lay, nil)
	if svc.PyLDAvisPath() != lay.PyLDAvis() {
		t.Errorf("PyLDAvisPath = %q", svc.PyLDAvisPath())
	}
}
