//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package nrm

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// the input corpus csv is large: iterate it row by row rather than slurping it

// PaperAbstract - one input row from the papers csv
type PaperAbstract struct {
	ArticleID int
	Year      int
	Abstract  string
}

// IteratePapersCSV - stream rows to fn; requires "article_id" and "year" columns
// plus "abstract_cleaned" (preferred) or "abstract"
func IteratePapersCSV(path string, fn func(PaperAbstract) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open papers csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read papers csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[h] = i
	}

	idcol, ok := cols["article_id"]
	if !ok {
		return fmt.Errorf("papers csv lacks an 'article_id' column")
	}
	yearcol, ok := cols["year"]
	if !ok {
		return fmt.Errorf("papers csv lacks a 'year' column")
	}
	abscol, ok := cols["abstract_cleaned"]
	if !ok {
		abscol, ok = cols["abstract"]
	}
	if !ok {
		return fmt.Errorf("papers csv lacks an 'abstract_cleaned' or 'abstract' column")
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read papers csv row: %w", err)
		}
		if len(rec) <= idcol || len(rec) <= yearcol || len(rec) <= abscol {
			continue
		}
		id, err := strconv.Atoi(rec[idcol])
		if err != nil {
			continue
		}
		yr, err := strconv.Atoi(rec[yearcol])
		if err != nil {
			continue
		}
		if err := fn(PaperAbstract{ArticleID: id, Year: yr, Abstract: rec[abscol]}); err != nil {
			return err
		}
	}
	return nil
}
