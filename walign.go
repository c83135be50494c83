// Package walign learns word-to-word translation probabilities from a
// parallel corpus with IBM Model 1 or Model 2 and decodes the result into a
// probability table or per-sentence alignments.
//
//	a, _ := walign.Train("corpus.en", "corpus.de", walign.DefaultTrainConfig())
//	entries, _ := a.Table(0.1)
//	for _, e := range entries {
//	    fmt.Println(e.Source, e.Target, e.Probability)
//	}
package walign

import (
	"fmt"

	"github.com/happyhackingspace/walign/ibm"
)

// Aligner holds a trained model together with the corpus it was trained on.
type Aligner struct {
	model  *ibm.Model
	corpus *ibm.Corpus
}

// Model returns the trained model.
func (a *Aligner) Model() *ibm.Model {
	return a.model
}

// Corpus returns the encoded training corpus.
func (a *Aligner) Corpus() *ibm.Corpus {
	return a.corpus
}

// Vocabulary returns the training vocabulary.
func (a *Aligner) Vocabulary() *ibm.Vocabulary {
	if a.model == nil {
		return nil
	}
	return a.model.Vocabulary
}

// Table returns the translation table entries with probability >= threshold,
// sorted by source word then target word.
func (a *Aligner) Table(threshold float64) ([]ibm.TableEntry, error) {
	res, err := a.Decode(ibm.DecodeConfig{Mode: ibm.TableMode, Threshold: threshold})
	if err != nil {
		return nil, err
	}
	return res.Table, nil
}

// Alignments returns the best alignment of every training pair, in corpus
// order. Target words with no source scoring above threshold are unaligned.
func (a *Aligner) Alignments(threshold float64) ([]ibm.SentenceAlignment, error) {
	res, err := a.Decode(ibm.DecodeConfig{Mode: ibm.AlignMode, Threshold: threshold})
	if err != nil {
		return nil, err
	}
	return res.Alignments, nil
}

// Decode runs the decoder in the mode given by config.
func (a *Aligner) Decode(config ibm.DecodeConfig) (*ibm.Result, error) {
	if a.model == nil || a.corpus == nil {
		return nil, fmt.Errorf("walign: aligner not trained")
	}
	if err := CheckThreshold(config.Threshold); err != nil {
		return nil, fmt.Errorf("walign: %w", err)
	}
	res, err := ibm.Decode(a.model, a.corpus, config)
	if err != nil {
		return nil, fmt.Errorf("walign: %w", err)
	}
	return res, nil
}

// CheckThreshold reports whether p is a usable probability threshold.
func CheckThreshold(p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("threshold %v outside [0, 1]", p)
	}
	return nil
}
