//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"encoding/gob"
	"fmt"
	"os"
	"sort"
)

// Vocabulary - a bidirectional term <-> integer id mapping, pruned by document
// frequency; every downstream artifact depends on this exact mapping
type Vocabulary struct {
	TermID  map[string]int
	Terms   []string // id -> term
	DocFreq []int    // id -> number of documents containing the term
	Docs    int      // corpus size the vocabulary was built from
}

func (v *Vocabulary) Size() int { return len(v.Terms) }

// VocabularyBuilder - accumulates per-term document frequencies one document
// at a time; no full token corpus needs to be held in memory
type VocabularyBuilder struct {
	df   map[string]int
	docs int
}

func NewVocabularyBuilder() *VocabularyBuilder {
	return &VocabularyBuilder{df: make(map[string]int)}
}

// AddDocument - count each distinct term of one document once
func (b *VocabularyBuilder) AddDocument(tokens []string) {
	b.docs++
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		b.df[t]++
	}
}

func (b *VocabularyBuilder) Documents() int { return b.docs }

// Build - prune by document frequency and cap the size: a term survives if it
// appears in at least nobelow documents and in no more than noabove of the
// corpus; the keepn most frequent survivors are kept. Term ids are assigned
// alphabetically so that rebuilding from identical input is reproducible.
func (b *VocabularyBuilder) Build(nobelow int, noabove float64, keepn int) *Vocabulary {
	ceiling := int(noabove * float64(b.docs))

	type tf struct {
		term string
		df   int
	}
	var kept []tf
	for term, df := range b.df {
		if df < nobelow || df > ceiling {
			continue
		}
		kept = append(kept, tf{term, df})
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].df != kept[j].df {
			return kept[i].df > kept[j].df
		}
		return kept[i].term < kept[j].term
	})
	if keepn > 0 && len(kept) > keepn {
		kept = kept[:keepn]
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].term < kept[j].term })

	v := &Vocabulary{
		TermID:  make(map[string]int, len(kept)),
		Terms:   make([]string, len(kept)),
		DocFreq: make([]int, len(kept)),
		Docs:    b.docs,
	}
	for id, k := range kept {
		v.TermID[k.term] = id
		v.Terms[id] = k.term
		v.DocFreq[id] = k.df
	}
	return v
}

//
// PERSISTENCE
//

func SaveVocabulary(v *Vocabulary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create vocabulary file: %w", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("encode vocabulary: %w", err)
	}
	return nil
}

func LoadVocabulary(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary file: %w", err)
	}
	defer f.Close()
	var v Vocabulary
	if err := gob.NewDecoder(f).Decode(&v); err != nil {
		return nil, fmt.Errorf("decode vocabulary: %w", err)
	}
	return &v, nil
}
