//    TechTrendAnalysis
//    Copyright: dayuruozhi333 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package pipe runs the offline analysis pipeline. Each step reads the
// artifacts of the one before it, so any step can be re-run in a fresh
// process: normalize -> vectorize -> train -> label -> trends -> vis.
package pipe

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dayuruozhi333/tech-trend-analysis/internal/lda"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/lnch"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/nrm"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/store"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/trend"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vec"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vis"
	"github.com/dayuruozhi333/tech-trend-analysis/internal/vv"
)

// Run executes the requested steps in pipeline order. A broken step is fatal:
// the later steps would only fail more confusingly without its artifacts.
func Run(steps []string) {
	lay := store.NewLayout(lnch.Config.ArtifactDir)
	if err := lay.EnsureDirs(); err != nil {
		lnch.Msg.EF(err)
	}

	launch := time.Now()
	previous := time.Now()
	for _, s := range steps {
		var err error
		switch s {
		case "normalize":
			err = normalize(lay)
		case "vectorize":
			err = vectorize(lay)
		case "train":
			err = train(lay)
		case "label":
			err = label(lay)
		case "trends":
			err = trends(lay)
		case "vis":
			err = buildvis(lay)
		default:
			err = fmt.Errorf("unknown pipeline step '%s'", s)
		}
		if err != nil {
			lnch.Msg.EF(fmt.Errorf("pipeline step '%s': %w", s, err))
		}
		lnch.Msg.Timer("PL", fmt.Sprintf("step '%s' complete", s), launch, previous)
		previous = time.Now()
	}
}

// normalize streams the input csv and writes tokenized documents in parts
func normalize(lay store.Layout) error {
	cfg := lnch.Config
	nz := nrm.NewNormalizer(cfg.TokenMinLen, cfg.StopLanguage, cfg.ExtraStops, cfg.Lemmatize)
	w := store.NewTokenPartWriter(lay)

	read := 0
	kept := 0
	err := nrm.IteratePapersCSV(cfg.InputCSV, func(p nrm.PaperAbstract) error {
		read++
		toks := nz.Tokens(p.Abstract)
		if len(toks) == 0 {
			return nil
		}
		kept++
		if kept%vv.NORMCHUNKSIZE == 0 {
			lnch.Msg.FYI(fmt.Sprintf("normalized %d documents", kept))
		}
		return w.Append(store.TokenRow{ArticleID: p.ArticleID, Year: p.Year, Tokens: toks})
	})
	if err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	lnch.Msg.NOTE(fmt.Sprintf("normalize: %d rows read, %d documents kept", read, kept))
	return nil
}

// vectorize makes two passes over the token parts: the first builds and
// prunes the vocabulary, the second encodes every document against it
func vectorize(lay store.Layout) error {
	cfg := lnch.Config

	vb := vec.NewVocabularyBuilder()
	err := store.IterateTokenParts(lay, func(r store.TokenRow) error {
		vb.AddDocument(r.Tokens)
		return nil
	})
	if err != nil {
		return err
	}

	vocab := vb.Build(cfg.NoBelow, cfg.NoAbove, cfg.KeepN)
	lnch.Msg.NOTE(fmt.Sprintf("vectorize: vocabulary of %d terms from %d documents", vocab.Size(), vb.Documents()))
	if err := vec.SaveVocabulary(vocab, lay.Vocabulary()); err != nil {
		return err
	}

	var docs [][]vec.TermCount
	var meta []store.DocMetaRow
	err = store.IterateTokenParts(lay, func(r store.TokenRow) error {
		docs = append(docs, vocab.Encode(r.Tokens))
		meta = append(meta, store.DocMetaRow{ArticleID: r.ArticleID, Year: r.Year})
		return nil
	})
	if err != nil {
		return err
	}

	if err := store.WriteCorpusMM(lay.Corpus(), docs, vocab.Size()); err != nil {
		return err
	}
	return store.WriteDocMeta(lay.DocMeta(), meta)
}

// train fits the topic model and exports the per-topic term table
func train(lay store.Layout) error {
	cfg := lnch.Config

	vocab, err := vec.LoadVocabulary(lay.Vocabulary())
	if err != nil {
		return err
	}
	docs, _, err := store.ReadCorpusMM(lay.Corpus())
	if err != nil {
		return err
	}

	tc := lda.TrainConfig{
		Topics:     cfg.LDA.Topics,
		Seed:       cfg.LDA.Seed,
		Passes:     cfg.LDA.Passes,
		Iterations: cfg.LDA.Iterations,
		Alpha:      cfg.LDA.Alpha,
		Eta:        cfg.LDA.Eta,
		ChunkSize:  cfg.LDA.ChunkSize,
		RunID:      uuid.New().String(),
		TrainedAt:  time.Now(),
	}

	lnch.Msg.NOTE(fmt.Sprintf("train: fitting %d topics over %d documents (run %s)", tc.Topics, len(docs), tc.RunID))
	m, err := lda.Train(docs, vocab, tc)
	if err != nil {
		return err
	}

	if err := lda.SaveModel(m, lay.Model()); err != nil {
		return err
	}
	if err := lda.SaveTrainConfig(tc, lay.TrainConfig()); err != nil {
		return err
	}
	return store.WriteTopicTerms(lay.TopicTerms(), lda.ExportTopicTerms(m, vocab, vv.TOPICTERMEXPORT))
}

// label derives default labels from the term table, then applies overrides
func label(lay store.Layout) error {
	rows, err := store.ReadTopicTerms(lay.TopicTerms())
	if err != nil {
		return err
	}
	labels := lda.DefaultLabels(rows, vv.LABELTOPTERMS)
	if lnch.Config.LabelOverrides != "" {
		if err := lda.ApplyOverrides(labels, lnch.Config.LabelOverrides); err != nil {
			return err
		}
	}
	return store.WriteLabels(lay.Labels(), labels)
}

// trends infers per-document topic mixtures and averages them by year
func trends(lay store.Layout) error {
	m, err := lda.LoadModel(lay.Model())
	if err != nil {
		return err
	}
	docs, _, err := store.ReadCorpusMM(lay.Corpus())
	if err != nil {
		return err
	}
	meta, err := store.ReadDocMeta(lay.DocMeta())
	if err != nil {
		return err
	}

	rows, err := trend.ComputeDocTopics(m, docs, meta)
	if err != nil {
		return err
	}
	if err := store.WriteDocTopics(lay.DocTopics(), rows, m.K); err != nil {
		return err
	}
	return store.WriteTrends(lay.Trends(), trend.YearlyTrends(rows, m.K), m.K)
}

func buildvis(lay store.Layout) error {
	return vis.BuildTopicOverview(lay)
}
