//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package store

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

// TokenRow - one normalized document: identifier, publication year, tokens
type TokenRow struct {
	ArticleID int
	Year      int
	Tokens    []string
}

// TokenPartWriter - spills normalized token rows into numbered part files so
// the normalizer never materializes a multi-hundred-thousand-document corpus
type TokenPartWriter struct {
	layout  Layout
	maxrows int
	buf     []TokenRow
	part    int
}

func NewTokenPartWriter(l Layout) *TokenPartWriter {
	return &TokenPartWriter{layout: l, maxrows: vv.NORMPARTSIZE}
}

func (w *TokenPartWriter) Append(row TokenRow) error {
	w.buf = append(w.buf, row)
	if len(w.buf) >= w.maxrows {
		return w.flush()
	}
	return nil
}

// Close - flush whatever remains buffered
func (w *TokenPartWriter) Close() error {
	if len(w.buf) > 0 {
		return w.flush()
	}
	return nil
}

func (w *TokenPartWriter) flush() error {
	w.part++
	f, err := os.Create(w.layout.TokenPart(w.part))
	if err != nil {
		return fmt.Errorf("create token part %d: %w", w.part, err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(w.buf); err != nil {
		return fmt.Errorf("encode token part %d: %w", w.part, err)
	}
	w.buf = w.buf[:0]
	return nil
}

// IterateTokenParts - walk every part file in order, row by row
func IterateTokenParts(l Layout, fn func(TokenRow) error) error {
	entries, err := os.ReadDir(l.TokenPartsDir())
	if err != nil {
		return fmt.Errorf("read token parts dir: %w", err)
	}

	var parts []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".gob") {
			parts = append(parts, e.Name())
		}
	}
	sort.Strings(parts)
	if len(parts) == 0 {
		return fmt.Errorf("no token part files under '%s'", l.TokenPartsDir())
	}

	for _, p := range parts {
		f, err := os.Open(filepath.Join(l.TokenPartsDir(), p))
		if err != nil {
			return fmt.Errorf("open token part '%s': %w", p, err)
		}
		var rows []TokenRow
		err = gob.NewDecoder(f).Decode(&rows)
		f.Close()
		if err != nil {
			return fmt.Errorf("decode token part '%s': %w", p, err)
		}
		for _, r := range rows {
			if err := fn(r); err != nil {
				return err
			}
		}
	}
	return nil
}
