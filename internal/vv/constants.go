//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "Tech Trend Analysis Server"
	SHORTNAME = "TTA"
	VERSION   = "1.0.0"

	CONFIGLOCATION = "."
	CONFIGALTAPTH  = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC    = "tta-conf.json"

	DEFAULTHOSTIP       = "127.0.0.1"
	DEFAULTHOSTPORT     = 8000
	DEFAULTECHOLOGLEVEL = 0
	DEFAULTGOLOGLEVEL   = 0
	DEFAULTARTIFACTDIR  = "data/models/lda"
	DEFAULTINPUTCSV     = "data/processed_data/df_papers.csv"

	TIMEOUTRD = 15 * time.Second
	TIMEOUTWR = 120 * time.Second

	JSONINDENT = "  "
	WRITEPERMS = 0644
	FOLDPERMS  = 0755

	// normalization
	TOKENMINLENGTH = 2
	NORMCHUNKSIZE  = 10000  // csv rows read per chunk
	NORMPARTSIZE   = 200000 // token rows per persisted part file

	// vocabulary filtering
	VOCABNOBELOW = 5   // term must appear in at least this many docs
	VOCABNOABOVE = 0.5 // ...and in no more than this fraction of docs
	VOCABKEEPN   = 100000

	// lda training
	LDATOPICS    = 12
	LDASEED      = 42
	LDAPASSES    = 5
	LDAITER      = 200
	LDACHUNKSIZE = 2000
	LDAAUTOALPHA = 0.1  // stand-in when the concentration is "auto"
	LDAAUTOETA   = 0.01 // ditto
	LDAFOLDITER  = 50   // fold-in inference iterations per document

	// display conventions
	TOPICSSHOWN     = 15 // models may carry more topics; display stops here
	TOPICTOPTERMS   = 10
	TOPICTERMEXPORT = 20
	YEARDETAILTERMS = 30
	YEARDETAILWOBBL = 0.05 // +/-2.5% seeded perturbation of per-year term shares
	ALLYEARSKEYN    = 20
	KEYWORDRANKN    = 50
	KEYWORDESTSCALE = 10 // the count heuristic: round(weight * docs * 10)
	LABELTOPTERMS   = 3
	LABELSEPARATOR  = " / "
	AUTHORPOOLSIZE  = 100
	AUTHORTOPN      = 10

	// message levels
	MSGMAND = -1
	MSGCRIT = 0
	MSGWARN = 1
	MSGNOTE = 2
	MSGFYI  = 3
	MSGPEEK = 4
	MSGTMI  = 5
)

// artifact filenames: the contract between the offline pipeline and the query layer
const (
	TOKENPARTSDIR  = "normalized_tokens"
	TOKENPARTFILE  = "part_%06d.gob"
	VOCABFILE      = "vocabulary.gob"
	CORPUSFILE     = "corpus_bow.mm"
	DOCMETAFILE    = "doc_meta.csv"
	MODELFILE      = "lda_model.gob"
	TRAINCONFFILE  = "lda_config.json"
	TOPICTERMSFILE = "topic_terms.csv"
	LABELSFILE     = "topic_labels.json"
	DOCTOPICSFILE  = "doc_topics.csv"
	TRENDSFILE     = "yearly_trends.csv"
	PAPERSDBFILE   = "papers.db"
	VISDIR         = "vis"
	TOPICOVERVIEW  = "topic_overview.html"
	PYLDAVISFILE   = "pyldavis.html"
)
