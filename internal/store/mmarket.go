//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package store

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/vec"
)

// matrix market coordinate format, docs as rows and term ids as columns; a
// plain interchange format other toolchains can read back

const mmheader = "%%MatrixMarket matrix coordinate integer general"

// WriteCorpusMM - persist the encoded corpus; row order must match doc_meta
func WriteCorpusMM(path string, docs [][]vec.TermCount, vocabsize int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create corpus file: %w", err)
	}
	defer f.Close()

	nnz := 0
	for _, d := range docs {
		nnz += len(d)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, mmheader)
	fmt.Fprintf(w, "%d %d %d\n", len(docs), vocabsize, nnz)
	for i, d := range docs {
		for _, tc := range d {
			// matrix market indices are 1-based
			fmt.Fprintf(w, "%d %d %d\n", i+1, tc.ID+1, tc.Count)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write corpus file: %w", err)
	}
	return nil
}

// ReadCorpusMM - load the encoded corpus back; empty documents stay empty
func ReadCorpusMM(path string) (docs [][]vec.TermCount, vocabsize int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)

	// header + comments
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		var rows, cols, nnz int
		if _, err := fmt.Sscanf(line, "%d %d %d", &rows, &cols, &nnz); err != nil {
			return nil, 0, fmt.Errorf("parse corpus size line: %w", err)
		}
		docs = make([][]vec.TermCount, rows)
		vocabsize = cols
		break
	}
	if docs == nil {
		return nil, 0, fmt.Errorf("corpus file '%s' has no size line", path)
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var doc, term, count int
		if _, err := fmt.Sscanf(line, "%d %d %d", &doc, &term, &count); err != nil {
			return nil, 0, fmt.Errorf("parse corpus entry: %w", err)
		}
		if doc < 1 || doc > len(docs) || term < 1 || term > vocabsize {
			return nil, 0, fmt.Errorf("corpus entry out of range: %s", line)
		}
		docs[doc-1] = append(docs[doc-1], vec.TermCount{ID: term - 1, Count: count})
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("read corpus file: %w", err)
	}
	return docs, vocabsize, nil
}
