//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/store"
)

func termrows() []store.TopicTermRow {
	return []store.TopicTermRow{
		{TopicID: 0, Term: "network", Weight: 0.05},
		{TopicID: 0, Term: "deep", Weight: 0.04},
		{TopicID: 0, Term: "learning", Weight: 0.03},
		{TopicID: 0, Term: "layer", Weight: 0.02},
		{TopicID: 1, Term: "graph", Weight: 0.06},
		{TopicID: 1, Term: "node", Weight: 0.01},
	}
}

func TestDefaultLabels(t *testing.T) {
	labels := DefaultLabels(termrows(), 3)

	if labels[0] != "network / deep / learning" {
		t.Errorf("label 0 = %q", labels[0])
	}
	// fewer terms than topk is fine
	if labels[1] != "graph / node" {
		t.Errorf("label 1 = %q", labels[1])
	}
}

func TestApplyOverrides(t *testing.T) {
	p := filepath.Join(t.TempDir(), "overrides.json")
	if err := os.WriteFile(p, []byte(`{"1": "Graph Methods"}`), 0644); err != nil {
		t.Fatal(err)
	}

	labels := DefaultLabels(termrows(), 3)
	if err := ApplyOverrides(labels, p); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if labels[1] != "Graph Methods" {
		t.Errorf("label 1 = %q, want the override", labels[1])
	}
	if labels[0] != "network / deep / learning" {
		t.Errorf("label 0 changed: %q", labels[0])
	}
}

func TestApplyOverridesRejectsBadInput(t *testing.T) {
	d := t.TempDir()

	missing := filepath.Join(d, "nothing.json")
	if err := ApplyOverrides(map[int]string{}, missing); err == nil {
		t.Error("expected an error for a missing overrides file")
	}

	malformed := filepath.Join(d, "malformed.json")
	os.WriteFile(malformed, []byte(`{"0": `), 0644)
	if err := ApplyOverrides(map[int]string{}, malformed); err == nil {
		t.Error("expected an error for malformed json")
	}

	badkey := filepath.Join(d, "badkey.json")
	os.WriteFile(badkey, []byte(`{"zero": "label"}`), 0644)
	if err := ApplyOverrides(map[int]string{}, badkey); err == nil {
		t.Error("expected an error for a non-integer topic id")
	}
}
