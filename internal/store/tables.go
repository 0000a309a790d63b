//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// typed rows for each tabular artifact; named fields instead of the original's
// string-keyed frame columns

// DocMetaRow - document identifier + publication year; row i aligns with
// corpus row i
type DocMetaRow struct {
	ArticleID int
	Year      int
}

// TopicTermRow - one (topic, term, weight) entry of the topic-term table
type TopicTermRow struct {
	TopicID int
	Term    string
	Weight  float64
}

// DocTopicRow - one document's dense topic-probability vector plus its year
type DocTopicRow struct {
	ArticleID int
	Year      int
	Probs     []float64
}

// TrendRow - per-year mean topic probabilities
type TrendRow struct {
	Year  int
	Means []float64
}

//
// CSV I/O
//

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create '%s': %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header of '%s': %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows of '%s': %w", path, err)
	}
	w.Flush()
	return w.Error()
}

func readCSV(path string) (header []string, rows [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open '%s': %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read '%s': %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("'%s' is empty", path)
	}
	return all[0], all[1:], nil
}

func topicheader(k int) []string {
	h := make([]string, k)
	for i := 0; i < k; i++ {
		h[i] = fmt.Sprintf("topic_%d", i)
	}
	return h
}

func ffmt(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

//
// doc_meta.csv
//

func WriteDocMeta(path string, rows []DocMetaRow) error {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{strconv.Itoa(r.ArticleID), strconv.Itoa(r.Year)}
	}
	return writeCSV(path, []string{"article_id", "year"}, out)
}

func ReadDocMeta(path string) ([]DocMetaRow, error) {
	_, raw, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	rows := make([]DocMetaRow, 0, len(raw))
	for _, r := range raw {
		if len(r) < 2 {
			continue
		}
		id, e1 := strconv.Atoi(r[0])
		yr, e2 := strconv.Atoi(r[1])
		if e1 != nil || e2 != nil {
			return nil, fmt.Errorf("malformed doc_meta row: %v", r)
		}
		rows = append(rows, DocMetaRow{ArticleID: id, Year: yr})
	}
	return rows, nil
}

//
// topic_terms.csv
//

func WriteTopicTerms(path string, rows []TopicTermRow) error {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{strconv.Itoa(r.TopicID), r.Term, ffmt(r.Weight)}
	}
	return writeCSV(path, []string{"topic_id", "term", "weight"}, out)
}

func ReadTopicTerms(path string) ([]TopicTermRow, error) {
	_, raw, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	rows := make([]TopicTermRow, 0, len(raw))
	for _, r := range raw {
		if len(r) < 3 {
			continue
		}
		id, e1 := strconv.Atoi(r[0])
		w, e2 := strconv.ParseFloat(r[2], 64)
		if e1 != nil || e2 != nil {
			return nil, fmt.Errorf("malformed topic_terms row: %v", r)
		}
		rows = append(rows, TopicTermRow{TopicID: id, Term: r[1], Weight: w})
	}
	return rows, nil
}

//
// doc_topics.csv
//

func WriteDocTopics(path string, rows []DocTopicRow, k int) error {
	out := make([][]string, len(rows))
	for i, r := range rows {
		line := make([]string, 0, k+2)
		line = append(line, strconv.Itoa(r.ArticleID), strconv.Itoa(r.Year))
		for _, p := range r.Probs {
			line = append(line, ffmt(p))
		}
		out[i] = line
	}
	header := append([]string{"article_id", "year"}, topicheader(k)...)
	return writeCSV(path, header, out)
}

func ReadDocTopics(path string) ([]DocTopicRow, error) {
	header, raw, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	k := 0
	for _, h := range header {
		if strings.HasPrefix(h, "topic_") {
			k++
		}
	}
	if k == 0 {
		return nil, fmt.Errorf("'%s' has no topic_* columns", path)
	}

	rows := make([]DocTopicRow, 0, len(raw))
	for _, r := range raw {
		if len(r) < 2+k {
			return nil, fmt.Errorf("short doc_topics row: %v", r)
		}
		id, e1 := strconv.Atoi(r[0])
		yr, e2 := strconv.Atoi(r[1])
		if e1 != nil || e2 != nil {
			return nil, fmt.Errorf("malformed doc_topics row: %v", r)
		}
		probs := make([]float64, k)
		for i := 0; i < k; i++ {
			p, e := strconv.ParseFloat(r[2+i], 64)
			if e != nil {
				return nil, fmt.Errorf("malformed doc_topics probability: %v", r)
			}
			probs[i] = p
		}
		rows = append(rows, DocTopicRow{ArticleID: id, Year: yr, Probs: probs})
	}
	return rows, nil
}

//
// yearly_trends.csv
//

func WriteTrends(path string, rows []TrendRow, k int) error {
	out := make([][]string, len(rows))
	for i, r := range rows {
		line := make([]string, 0, k+1)
		line = append(line, strconv.Itoa(r.Year))
		for _, m := range r.Means {
			line = append(line, ffmt(m))
		}
		out[i] = line
	}
	header := append([]string{"year"}, topicheader(k)...)
	return writeCSV(path, header, out)
}

func ReadTrends(path string) ([]TrendRow, error) {
	header, raw, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	k := 0
	for _, h := range header {
		if strings.HasPrefix(h, "topic_") {
			k++
		}
	}
	if k == 0 {
		return nil, fmt.Errorf("'%s' has no topic_* columns", path)
	}

	rows := make([]TrendRow, 0, len(raw))
	for _, r := range raw {
		if len(r) < 1+k {
			return nil, fmt.Errorf("short yearly_trends row: %v", r)
		}
		yr, e := strconv.Atoi(r[0])
		if e != nil {
			return nil, fmt.Errorf("malformed yearly_trends year: %v", r)
		}
		means := make([]float64, k)
		for i := 0; i < k; i++ {
			m, e := strconv.ParseFloat(r[1+i], 64)
			if e != nil {
				return nil, fmt.Errorf("malformed yearly_trends value: %v", r)
			}
			means[i] = m
		}
		rows = append(rows, TrendRow{Year: yr, Means: means})
	}
	return rows, nil
}
