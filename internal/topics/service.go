//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/db"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/lda"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/mm"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/store"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

// ErrTopicNotFound - the requested topic id does not exist
var ErrTopicNotFound = errors.New("topic not found")

// TopicService answers topic queries from the trained artifacts on disk.
// Every artifact is loaded lazily, at most once, on first use: the mutex plus
// the per-artifact "tried" flags implement the double-checked load. A failed
// load of an optional artifact is cached as an empty value; a failed load of
// a mandatory artifact is cached as an error and resurfaces on every call.
type TopicService struct {
	lay store.Layout
	msg *mm.MessageMaker

	mu sync.Mutex

	modelTried bool
	model      *lda.Model
	modelErr   error

	termsTried bool
	terms      []store.TopicTermRow
	termsErr   error

	labelsTried bool
	labels      map[int]string

	trendsTried bool
	trends      []store.TrendRow
	trendsErr   error

	doctTried bool
	doct      []store.DocTopicRow

	authTried bool
	auth      *db.AuthorTables
}

// NewTopicService wires a service to an artifact directory; nothing is read
// until the first query arrives.
func NewTopicService(lay store.Layout, msg *mm.MessageMaker) *TopicService {
	return &TopicService{lay: lay, msg: msg}
}

// ensureModel - mandatory artifact; a missing model is a server error
func (s *TopicService) ensureModel() (*lda.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.modelTried {
		s.modelTried = true
		m, err := lda.LoadModel(s.lay.Model())
		if err != nil {
			s.modelErr = fmt.Errorf("topic model unavailable: %w", err)
			s.msg.EC(s.modelErr)
		} else {
			s.model = m
		}
	}
	return s.model, s.modelErr
}

// ensureTerms - mandatory artifact; the topic-term table backs every listing
func (s *TopicService) ensureTerms() ([]store.TopicTermRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.termsTried {
		s.termsTried = true
		rows, err := store.ReadTopicTerms(s.lay.TopicTerms())
		if err != nil {
			s.termsErr = fmt.Errorf("topic-term table unavailable: %w", err)
			s.msg.EC(s.termsErr)
		} else {
			s.terms = rows
		}
	}
	return s.terms, s.termsErr
}

// ensureTrends - mandatory for the trend queries only
func (s *TopicService) ensureTrends() ([]store.TrendRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.trendsTried {
		s.trendsTried = true
		rows, err := store.ReadTrends(s.lay.Trends())
		if err != nil {
			s.trendsErr = fmt.Errorf("trend table unavailable: %w", err)
			s.msg.EC(s.trendsErr)
		} else {
			s.trends = rows
		}
	}
	return s.trends, s.trendsErr
}

// ensureLabels - optional; queries fall back to generated labels
func (s *TopicService) ensureLabels() map[int]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.labelsTried {
		s.labelsTried = true
		lb, err := store.ReadLabels(s.lay.Labels())
		if err != nil {
			s.msg.NOTE(fmt.Sprintf("no label table (%v); labels will be generated", err))
			lb = make(map[int]string)
		}
		s.labels = lb
	}
	return s.labels
}

// ensureDocTopics - optional; counts degrade to zero without it
func (s *TopicService) ensureDocTopics() []store.DocTopicRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.doctTried {
		s.doctTried = true
		rows, err := store.ReadDocTopics(s.lay.DocTopics())
		if err != nil {
			s.msg.WARN(fmt.Sprintf("no document-topic table (%v); document counts will be zero", err))
			rows = nil
		}
		s.doct = rows
	}
	return s.doct
}

// ensureAuthors - optional; author queries degrade to empty lists
func (s *TopicService) ensureAuthors() *db.AuthorTables {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authTried {
		s.authTried = true
		// LoadAuthorTables always hands back usable (possibly empty) tables
		at, err := db.LoadAuthorTables(s.lay.PapersDB())
		if err != nil {
			s.msg.WARN(fmt.Sprintf("author tables unreadable (%v); author queries will be empty", err))
		}
		s.auth = at
	}
	return s.auth
}

// PyLDAvisPath reports where the interactive visualization artifact lives.
func (s *TopicService) PyLDAvisPath() string {
	return s.lay.PyLDAvis()
}

// label returns the configured label for a zero-based topic id, or a
// generated "Topic N" placeholder (N is one-based, as displayed).
func (s *TopicService) label(idx int) string {
	if l, ok := s.ensureLabels()[idx]; ok && l != "" {
		return l
	}
	return fmt.Sprintf("Topic %d", idx+1)
}

// termsByTopic groups the flat topic-term table and orders each group by
// weight, heaviest first. The exporter already writes rows in that order, but
// a hand-edited table must not leak out of order; ties keep the file order.
func termsByTopic(rows []store.TopicTermRow) map[int][]store.TopicTermRow {
	grouped := make(map[int][]store.TopicTermRow)
	for _, r := range rows {
		grouped[r.TopicID] = append(grouped[r.TopicID], r)
	}
	for _, tr := range grouped {
		sort.SliceStable(tr, func(i, j int) bool { return tr[i].Weight > tr[j].Weight })
	}
	return grouped
}

// shownTopics caps the number of displayed topics at the configured maximum
func shownTopics(k int) int {
	if k > vv.TOPICSSHOWN {
		return vv.TOPICSSHOWN
	}
	return k
}

// dominant returns the argmax topic of a probability row; ties go to the
// lowest index.
func dominant(probs []float64) int {
	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}
	return best
}
