//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"encoding/gob"
	"fmt"
	"os"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/store"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vec"
)

// Model - the loadable training artifact: K topics, each a probability
// distribution over the vocabulary's term ids
type Model struct {
	K          int
	V          int
	Alpha      float64     // doc-topic concentration; reused by fold-in inference
	Components [][]float64 // K x V, each row sums to 1
}

// TopTerms - the n heaviest terms of one topic, weight-descending
func (m *Model) TopTerms(topic int, n int, vocab *vec.Vocabulary) []store.TopicTermRow {
	if topic < 0 || topic >= m.K {
		return nil
	}

	type tw struct {
		id int
		w  float64
	}
	all := make([]tw, m.V)
	for id := 0; id < m.V; id++ {
		all[id] = tw{id: id, w: m.Components[topic][id]}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].w != all[j].w {
			return all[i].w > all[j].w
		}
		return all[i].id < all[j].id
	})
	if n > len(all) {
		n = len(all)
	}

	rows := make([]store.TopicTermRow, n)
	for i := 0; i < n; i++ {
		rows[i] = store.TopicTermRow{TopicID: topic, Term: vocab.Terms[all[i].id], Weight: all[i].w}
	}
	return rows
}

// DocTopics - fold one encoded document into the trained topics: a fixed-point
// EM iteration against the frozen topic-term distributions. Deterministic for
// a given model and document; every topic gets an explicit value, with a
// minimum-probability floor of zero rather than omission.
func (m *Model) DocTopics(doc []vec.TermCount, iterations int) []float64 {
	theta := make([]float64, m.K)
	for k := range theta {
		theta[k] = 1.0 / float64(m.K)
	}
	if len(doc) == 0 {
		return theta
	}

	next := make([]float64, m.K)
	for it := 0; it < iterations; it++ {
		for k := range next {
			next[k] = m.Alpha
		}
		for _, tc := range doc {
			if tc.ID < 0 || tc.ID >= m.V {
				continue
			}
			denom := 0.0
			for k := 0; k < m.K; k++ {
				denom += theta[k] * m.Components[k][tc.ID]
			}
			if denom <= 0 {
				continue
			}
			c := float64(tc.Count)
			for k := 0; k < m.K; k++ {
				next[k] += c * theta[k] * m.Components[k][tc.ID] / denom
			}
		}

		total := floats.Sum(next)
		for k := 0; k < m.K; k++ {
			theta[k] = next[k] / total
		}
	}
	return theta
}

//
// PERSISTENCE
//

func SaveModel(m *Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create model file: %w", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(m); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return nil
}

func LoadModel(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}
	defer f.Close()
	var m Model
	if err := gob.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	return &m, nil
}
