//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/james-bowman/nlp"
	"github.com/james-bowman/sparse"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/store"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vec"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

// the actual topic inference lives in james-bowman's nlp package; this file
// owns the knobs and the artifact export around it

// TrainConfig - the exact configuration of one training run; persisted next
// to the model for reproducibility
type TrainConfig struct {
	Topics     int
	Seed       uint64
	Passes     int
	Iterations int
	Alpha      string // numeric string or "auto"
	Eta        string // ditto
	ChunkSize  int
	RunID      string
	TrainedAt  time.Time
}

// concentration - "auto" falls back to the library's stock value; anything
// else must parse as a float
func concentration(s string, auto float64) (float64, error) {
	if s == "" || s == "auto" {
		return auto, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad concentration value '%s': %w", s, err)
	}
	return v, nil
}

// Train - fit the topic model over the encoded corpus. The term x document
// count matrix is built from our own vocabulary encoding; the vectoriser the
// nlp package bundles is bypassed because its vocabulary is not frequency-pruned.
func Train(docs [][]vec.TermCount, vocab *vec.Vocabulary, tc TrainConfig) (*Model, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("cannot train on an empty corpus")
	}
	if vocab.Size() == 0 {
		return nil, fmt.Errorf("cannot train on an empty vocabulary")
	}

	alpha, err := concentration(tc.Alpha, vv.LDAAUTOALPHA)
	if err != nil {
		return nil, err
	}
	eta, err := concentration(tc.Eta, vv.LDAAUTOETA)
	if err != nil {
		return nil, err
	}

	dok := sparse.NewDOK(vocab.Size(), len(docs))
	for d, doc := range docs {
		for _, t := range doc {
			dok.Set(t.ID, d, float64(t.Count))
		}
	}

	model := nlp.NewLatentDirichletAllocation(tc.Topics)
	model.Iterations = tc.Iterations
	model.BurnInPasses = tc.Passes
	model.BatchSize = tc.ChunkSize
	model.Alpha = alpha
	model.Eta = eta
	model.Processes = 1 // single-threaded batch: keeps runs bit-reproducible
	model.Rnd = rand.New(rand.NewSource(tc.Seed))

	if _, err := model.FitTransform(dok.ToCSR()); err != nil {
		return nil, fmt.Errorf("lda fit failed: %w", err)
	}

	comps := model.Components() // topics x terms
	k, v := comps.Dims()

	out := &Model{K: k, V: v, Alpha: alpha, Components: make([][]float64, k)}
	for topic := 0; topic < k; topic++ {
		row := make([]float64, v)
		for term := 0; term < v; term++ {
			row[term] = comps.At(topic, term)
		}
		if total := floats.Sum(row); total > 0 {
			floats.Scale(1/total, row)
		}
		out.Components[topic] = row
	}
	return out, nil
}

// ExportTopicTerms - the top-n terms of every topic, for the derived table
func ExportTopicTerms(m *Model, vocab *vec.Vocabulary, topn int) []store.TopicTermRow {
	var rows []store.TopicTermRow
	for topic := 0; topic < m.K; topic++ {
		rows = append(rows, m.TopTerms(topic, topn, vocab)...)
	}
	return rows
}

//
// TRAIN CONFIG PERSISTENCE
//

func SaveTrainConfig(tc TrainConfig, path string) error {
	content, err := json.MarshalIndent(tc, "", vv.JSONINDENT)
	if err != nil {
		return fmt.Errorf("encode train config: %w", err)
	}
	if err := os.WriteFile(path, content, vv.WRITEPERMS); err != nil {
		return fmt.Errorf("write train config: %w", err)
	}
	return nil
}

func LoadTrainConfig(path string) (TrainConfig, error) {
	var tc TrainConfig
	content, err := os.ReadFile(path)
	if err != nil {
		return tc, fmt.Errorf("read train config: %w", err)
	}
	if err := json.Unmarshal(content, &tc); err != nil {
		return tc, fmt.Errorf("parse train config: %w", err)
	}
	return tc, nil
}
