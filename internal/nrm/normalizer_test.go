//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package nrm

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestTokensFiltering(t *testing.T) {
	n := NewNormalizer(2, "english", nil, false)

	got := n.Tokens("The QUICK-brown fox v2.0 jumped over 37 lazy dogs!")
	want := []string{"quick", "brown", "fox", "jumped", "lazy", "dogs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens() = %v, want %v", got, want)
	}
}

func TestTokensMinLength(t *testing.T) {
	n := NewNormalizer(4, "english", nil, false)
	got := n.Tokens("ai ml llm deep learning")
	want := []string{"deep", "learning"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens() = %v, want %v", got, want)
	}
}

func TestTokensExtraStops(t *testing.T) {
	n := NewNormalizer(2, "english", []string{"paper", "propose"}, false)
	got := n.Tokens("this paper will propose a novel method")
	want := []string{"novel", "method"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens() = %v, want %v", got, want)
	}
}

func TestTokensDeterministic(t *testing.T) {
	n := NewNormalizer(2, "english", nil, true)
	in := "Neural networks are trained on large datasets of images."
	a := n.Tokens(in)
	b := n.Tokens(in)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same input produced %v then %v", a, b)
	}
}

func TestLemmatize(t *testing.T) {
	cases := map[string]string{
		"networks":   "network",
		"classes":    "class",
		"studies":    "study",
		"matches":    "match",
		"boxes":      "box",
		"analysis":   "analysis", // -is is not a plural
		"corpus":     "corpus",   // -us is not a plural
		"loss":       "loss",     // -ss is not a plural
		"children":   "child",
		"data":       "data",
		"series":     "series",
		"algorithms": "algorithm",
	}
	for in, want := range cases {
		if got := Lemmatize(in); got != want {
			t.Errorf("Lemmatize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIteratePapersCSV(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "papers.csv")
	content := "article_id,year,abstract_cleaned\n" +
		"101,2019,deep learning for vision\n" +
		"oops,2019,unparsable id is skipped\n" +
		"102,2021,graph neural networks\n"
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var got []PaperAbstract
	err := IteratePapersCSV(p, func(pa PaperAbstract) error {
		got = append(got, pa)
		return nil
	})
	if err != nil {
		t.Fatalf("IteratePapersCSV: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if got[0].ArticleID != 101 || got[0].Year != 2019 || got[0].Abstract != "deep learning for vision" {
		t.Errorf("first row wrong: %+v", got[0])
	}
	if got[1].ArticleID != 102 || got[1].Year != 2021 {
		t.Errorf("second row wrong: %+v", got[1])
	}
}

func TestIteratePapersCSVMissingFile(t *testing.T) {
	err := IteratePapersCSV(filepath.Join(t.TempDir(), "nothing.csv"), func(PaperAbstract) error { return nil })
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}
