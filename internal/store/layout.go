//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

// Layout - where every persisted artifact lives; the filenames are a contract
// between the offline pipeline and the query layer
type Layout struct {
	Dir string
}

func NewLayout(dir string) Layout { return Layout{Dir: dir} }

func (l Layout) TokenPartsDir() string { return filepath.Join(l.Dir, vv.TOKENPARTSDIR) }
func (l Layout) TokenPart(n int) string {
	return filepath.Join(l.TokenPartsDir(), fmt.Sprintf(vv.TOKENPARTFILE, n))
}
func (l Layout) Vocabulary() string    { return filepath.Join(l.Dir, vv.VOCABFILE) }
func (l Layout) Corpus() string        { return filepath.Join(l.Dir, vv.CORPUSFILE) }
func (l Layout) DocMeta() string       { return filepath.Join(l.Dir, vv.DOCMETAFILE) }
func (l Layout) Model() string         { return filepath.Join(l.Dir, vv.MODELFILE) }
func (l Layout) TrainConfig() string   { return filepath.Join(l.Dir, vv.TRAINCONFFILE) }
func (l Layout) TopicTerms() string    { return filepath.Join(l.Dir, vv.TOPICTERMSFILE) }
func (l Layout) Labels() string        { return filepath.Join(l.Dir, vv.LABELSFILE) }
func (l Layout) DocTopics() string     { return filepath.Join(l.Dir, vv.DOCTOPICSFILE) }
func (l Layout) Trends() string        { return filepath.Join(l.Dir, vv.TRENDSFILE) }
func (l Layout) PapersDB() string      { return filepath.Join(l.Dir, vv.PAPERSDBFILE) }
func (l Layout) VisDir() string        { return filepath.Join(l.Dir, vv.VISDIR) }
func (l Layout) TopicOverview() string { return filepath.Join(l.VisDir(), vv.TOPICOVERVIEW) }
func (l Layout) PyLDAvis() string      { return filepath.Join(l.VisDir(), vv.PYLDAVISFILE) }

// EnsureDirs - create the artifact directories if absent
func (l Layout) EnsureDirs() error {
	for _, d := range []string{l.Dir, l.TokenPartsDir(), l.VisDir()} {
		if err := os.MkdirAll(d, vv.FOLDPERMS); err != nil {
			return fmt.Errorf("create artifact dir '%s': %w", d, err)
		}
	}
	return nil
}
