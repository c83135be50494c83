package ibm

import (
	"log/slog"
	"math"
	"time"
)

// TrainerConfig holds EM training parameters.
type TrainerConfig struct {
	Iterations int
}

// DefaultTrainerConfig returns the default training config.
func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{
		Iterations: 5,
	}
}

// IterationStats describes one completed EM iteration.
type IterationStats struct {
	Iteration int
	// LogLikelihood is the corpus log-likelihood under the parameters the
	// iteration started from. For Model1 each target word contributes
	// log(total / SourceLen); for Model2 it contributes log(total), the
	// distortion table standing in for the alignment prior.
	LogLikelihood float64
	// Skipped counts contributions whose total was zero.
	Skipped  int
	Duration time.Duration
}

// Model is a trained alignment model.
type Model struct {
	Variant     Variant
	Vocabulary  *Vocabulary
	Translation *TranslationTable
	Distortion  *DistortionTable // nil for Model1
	Stats       []IterationStats
}

// Trainer runs EM iterations over an encoded corpus. It owns the tables it
// updates; nothing else may mutate them while training.
type Trainer struct {
	corpus *Corpus
	trans  *TranslationTable
	dist   *DistortionTable
	stats  []IterationStats
}

// NewTrainer initializes the tables for the corpus variant.
func NewTrainer(c *Corpus) *Trainer {
	tr := &Trainer{
		corpus: c,
		trans:  NewTranslationTable(c),
	}
	if c.Variant == Model2 {
		tr.dist = NewDistortionTable(c)
	}
	return tr
}

// counts are the per-iteration accumulators.
type counts struct {
	pair   map[int]map[int]float64 // count(s, t)
	source map[int]float64         // count(s)
	dist   *DistortionTable        // Model2 only
}

func newCounts(withDistortion bool) *counts {
	c := &counts{
		pair:   make(map[int]map[int]float64),
		source: make(map[int]float64),
	}
	if withDistortion {
		c.dist = newEmptyDistortionTable()
	}
	return c
}

func (c *counts) add(s, t int, delta float64) {
	row, ok := c.pair[s]
	if !ok {
		row = make(map[int]float64)
		c.pair[s] = row
	}
	row[t] += delta
	c.source[s] += delta
}

// weight is the alignment prior of source position i for target position j.
func (tr *Trainer) weight(i, j, le, lf int) float64 {
	if tr.dist == nil {
		return 1
	}
	return tr.dist.Prob(i, j, le, lf)
}

// Step runs one E-step and M-step over the whole corpus.
func (tr *Trainer) Step() IterationStats {
	start := time.Now()
	stats := IterationStats{Iteration: len(tr.stats) + 1}
	acc := newCounts(tr.dist != nil)

	// E-step
	for _, p := range tr.corpus.Pairs {
		le, lf := len(p.Source), len(p.Target)
		for j, t := range p.Target {
			total := 0.0
			for i, s := range p.Source {
				total += tr.trans.Prob(s, t) * tr.weight(i, j, le, lf)
			}
			if total == 0 {
				stats.Skipped++
				continue
			}
			if tr.dist == nil {
				stats.LogLikelihood += math.Log(total / float64(le))
			} else {
				stats.LogLikelihood += math.Log(total)
			}
			for i, s := range p.Source {
				delta := tr.trans.Prob(s, t) * tr.weight(i, j, le, lf) / total
				acc.add(s, t, delta)
				if acc.dist != nil {
					acc.dist.Add(i, j, le, lf, delta)
				}
			}
		}
	}

	// M-step
	for s, row := range tr.trans.rows {
		total := tr.rowTotal(acc, s)
		if total == 0 {
			continue
		}
		for t := range row {
			tr.trans.Set(s, t, acc.pair[s][t]/total)
		}
	}
	if tr.dist != nil {
		acc.dist.Normalize()
		tr.dist = acc.dist
	}

	stats.Duration = time.Since(start)
	tr.stats = append(tr.stats, stats)
	return stats
}

// rowTotal is count(s) for Model1 and the sum of count(s, ·) for Model2.
func (tr *Trainer) rowTotal(acc *counts, s int) float64 {
	if tr.dist == nil {
		return acc.source[s]
	}
	var sum float64
	for _, v := range acc.pair[s] {
		sum += v
	}
	return sum
}

// Model returns the current state of training.
func (tr *Trainer) Model() *Model {
	stats := make([]IterationStats, len(tr.stats))
	copy(stats, tr.stats)
	return &Model{
		Variant:     tr.corpus.Variant,
		Vocabulary:  tr.corpus.Vocabulary,
		Translation: tr.trans,
		Distortion:  tr.dist,
		Stats:       stats,
	}
}

// Train runs config.Iterations EM iterations over c.
func Train(c *Corpus, config TrainerConfig) *Model {
	tr := NewTrainer(c)
	slog.Debug("EM training started",
		"model", c.Variant,
		"pairs", c.Len(),
		"vocabulary", c.Vocabulary.Size(),
		"translation_entries", tr.trans.Len())

	for range config.Iterations {
		stats := tr.Step()
		slog.Info("EM iteration completed",
			"iteration", stats.Iteration,
			"log_likelihood", stats.LogLikelihood,
			"skipped", stats.Skipped,
			"duration", stats.Duration)
	}
	return tr.Model()
}
