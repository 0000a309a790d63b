//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"reflect"
	"testing"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

func TestBuildDefaultConfig(t *testing.T) {
	c := BuildDefaultConfig()

	if c.HostPort != vv.DEFAULTHOSTPORT {
		t.Errorf("HostPort = %d", c.HostPort)
	}
	if c.LDA.Topics != vv.LDATOPICS || c.LDA.Seed != vv.LDASEED {
		t.Errorf("LDA defaults = %+v", c.LDA)
	}
	if c.LDA.Alpha != "auto" || c.LDA.Eta != "auto" {
		t.Errorf("concentrations default to %q/%q, want auto", c.LDA.Alpha, c.LDA.Eta)
	}
	if c.NoBelow != vv.VOCABNOBELOW || c.NoAbove != vv.VOCABNOABOVE || c.KeepN != vv.VOCABKEEPN {
		t.Errorf("vocabulary defaults = %d/%f/%d", c.NoBelow, c.NoAbove, c.KeepN)
	}
	if !c.Lemmatize {
		t.Error("lemmatization should default on")
	}
}

func TestPipelineSteps(t *testing.T) {
	saved := Config.Pipeline
	defer func() { Config.Pipeline = saved }()

	Config.Pipeline = ""
	if got := PipelineSteps(); got != nil {
		t.Errorf("empty pipeline yielded %v", got)
	}

	Config.Pipeline = "all"
	want := []string{"normalize", "vectorize", "train", "label", "trends", "vis"}
	if got := PipelineSteps(); !reflect.DeepEqual(got, want) {
		t.Errorf("all = %v, want %v", got, want)
	}

	Config.Pipeline = "train, label , trends"
	want = []string{"train", "label", "trends"}
	if got := PipelineSteps(); !reflect.DeepEqual(got, want) {
		t.Errorf("subset = %v, want %v", got, want)
	}
}
