package ibm

import (
	"fmt"
	"sort"
)

// Mode selects what the decoder produces.
type Mode int

const (
	// TableMode lists the translation table above a threshold.
	TableMode Mode = iota
	// AlignMode picks the best source word for every target word.
	AlignMode
)

// DecodeConfig carries the decoding choices for one call.
type DecodeConfig struct {
	Mode      Mode
	Threshold float64
}

// TableEntry is one row of the translation table.
type TableEntry struct {
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	Probability float64 `json:"probability"`
}

// Link is the decision for one target word. When Aligned is false, Source is
// empty and Probability is the threshold nothing exceeded.
type Link struct {
	Source      string  `json:"source,omitempty"`
	Target      string  `json:"target"`
	Probability float64 `json:"probability"`
	Aligned     bool    `json:"aligned"`
	SourcePos   int     `json:"source_pos"`
	TargetPos   int     `json:"target_pos"`
}

// SentenceAlignment holds the links of one sentence pair, in target order.
type SentenceAlignment struct {
	Links []Link `json:"links"`
}

// Result is the output of Decode. Exactly one of Table or Alignments is set
// according to the mode.
type Result struct {
	Mode       Mode
	Table      []TableEntry
	Alignments []SentenceAlignment
}

// Decode runs the decoder selected by config.Mode.
func Decode(m *Model, c *Corpus, config DecodeConfig) (*Result, error) {
	switch config.Mode {
	case TableMode:
		entries, err := Table(m, config.Threshold)
		if err != nil {
			return nil, err
		}
		return &Result{Mode: TableMode, Table: entries}, nil
	case AlignMode:
		als, err := Align(m, c, config.Threshold)
		if err != nil {
			return nil, err
		}
		return &Result{Mode: AlignMode, Alignments: als}, nil
	}
	return nil, fmt.Errorf("ibm: unknown decode mode %d", config.Mode)
}

// Table returns every translation entry with probability >= threshold,
// sorted by source word then target word.
func Table(m *Model, threshold float64) ([]TableEntry, error) {
	var entries []TableEntry
	for _, s := range m.Translation.Sources() {
		src, err := m.Vocabulary.Word(s)
		if err != nil {
			return nil, err
		}
		for _, t := range m.Translation.Targets(s) {
			p := m.Translation.Prob(s, t)
			if p < threshold {
				continue
			}
			tgt, err := m.Vocabulary.Word(t)
			if err != nil {
				return nil, err
			}
			entries = append(entries, TableEntry{Source: src, Target: tgt, Probability: p})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Source != entries[j].Source {
			return entries[i].Source < entries[j].Source
		}
		return entries[i].Target < entries[j].Target
	})
	return entries, nil
}

// Align returns the best alignment of every pair in c, in corpus order.
// A target word links to the source position with the strictly greatest
// score above threshold; the leftmost position wins ties.
func Align(m *Model, c *Corpus, threshold float64) ([]SentenceAlignment, error) {
	out := make([]SentenceAlignment, 0, len(c.Pairs))
	for _, p := range c.Pairs {
		le, lf := len(p.Source), len(p.Target)
		sa := SentenceAlignment{Links: make([]Link, 0, lf)}
		for j, t := range p.Target {
			best, bestScore := -1, threshold
			for i, s := range p.Source {
				score := m.Translation.Prob(s, t)
				if m.Distortion != nil {
					score *= m.Distortion.Prob(i, j, le, lf)
				}
				if score > bestScore {
					best, bestScore = i, score
				}
			}

			tgt, err := m.Vocabulary.Word(t)
			if err != nil {
				return nil, err
			}
			link := Link{Target: tgt, Probability: bestScore, TargetPos: j, SourcePos: -1}
			if best >= 0 {
				src, err := m.Vocabulary.Word(p.Source[best])
				if err != nil {
					return nil, err
				}
				link.Source = src
				link.SourcePos = best
				link.Aligned = true
			}
			sa.Links = append(sa.Links, link)
		}
		out = append(out, sa)
	}
	return out, nil
}
