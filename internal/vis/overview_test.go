//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vis

import (
	"os"
	"strings"
	"testing"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/store"
)

func TestBuildTopicOverview(t *testing.T) {
	lay := store.NewLayout(t.TempDir())
	if err := lay.EnsureDirs(); err != nil {
		t.Fatal(err)
	}

	trends := []store.TrendRow{
		{Year: 2019, Means: []float64{0.6, 0.4}},
		{Year: 2020, Means: []float64{0.3, 0.7}},
	}
	if err := store.WriteTrends(lay.Trends(), trends, 2); err != nil {
		t.Fatal(err)
	}
	if err := store.WriteLabels(lay.Labels(), map[int]string{0: "Deep Learning"}); err != nil {
		t.Fatal(err)
	}

	if err := BuildTopicOverview(lay); err != nil {
		t.Fatalf("BuildTopicOverview: %v", err)
	}

	content, err := os.ReadFile(lay.TopicOverview())
	if err != nil {
		t.Fatalf("overview file missing: %v", err)
	}
	html := string(content)
	if !strings.Contains(html, "echarts") {
		t.Error("overview does not embed the charting runtime")
	}
	if !strings.Contains(html, "Deep Learning") {
		t.Error("overview does not carry the topic label")
	}
	if !strings.Contains(html, "Topic 2") {
		t.Error("overview does not carry the generated label")
	}
}

func TestBuildTopicOverviewWithoutTrends(t *testing.T) {
	lay := store.NewLayout(t.TempDir())
	if err := lay.EnsureDirs(); err != nil {
		t.Fatal(err)
	}
	if err := BuildTopicOverview(lay); err == nil {
		t.Error("expected an error without the trend table")
	}
}
