// Package report formats decoder output.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/happyhackingspace/walign/ibm"
)

// Format is an output format.
type Format string

const (
	// Text is the line-oriented format.
	Text Format = "text"
	// JSON is an indented JSON array of records.
	JSON Format = "json"
)

// ParseFormat parses "text" or "json".
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case Text, JSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want text or json)", s)
}

// PairHeader opens every sentence pair block in text alignment output.
const PairHeader = "Sentence pair alignment:"

// Unaligned stands in for the source word of an unaligned target word.
const Unaligned = "(none)"

// WriteTable writes one "source target probability" line per entry.
func WriteTable(w io.Writer, entries []ibm.TableEntry, format Format) error {
	if format == JSON {
		return writeJSON(w, entries)
	}
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		fmt.Fprintf(bw, "%s %s %.15f\n", e.Source, e.Target, e.Probability)
	}
	return bw.Flush()
}

// AlignOptions controls alignment output.
type AlignOptions struct {
	Format        Format
	ShowUnaligned bool
}

// WriteAlignments writes one block per sentence pair. Unaligned target words
// are left out unless opts.ShowUnaligned is set.
func WriteAlignments(w io.Writer, als []ibm.SentenceAlignment, opts AlignOptions) error {
	if !opts.ShowUnaligned {
		als = alignedOnly(als)
	}
	if opts.Format == JSON {
		return writeJSON(w, als)
	}
	bw := bufio.NewWriter(w)
	for _, sa := range als {
		fmt.Fprintln(bw, PairHeader)
		for _, l := range sa.Links {
			src := l.Source
			if !l.Aligned {
				src = Unaligned
			}
			fmt.Fprintf(bw, "%s -> %s (p=%v)\n", src, l.Target, l.Probability)
		}
	}
	return bw.Flush()
}

func alignedOnly(als []ibm.SentenceAlignment) []ibm.SentenceAlignment {
	out := make([]ibm.SentenceAlignment, len(als))
	for i, sa := range als {
		links := make([]ibm.Link, 0, len(sa.Links))
		for _, l := range sa.Links {
			if l.Aligned {
				links = append(links, l)
			}
		}
		out[i] = ibm.SentenceAlignment{Links: links}
	}
	return out
}

type vocabEntry struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

// WriteVocabulary writes the admitted words with their corpus frequency.
func WriteVocabulary(w io.Writer, vocab *ibm.Vocabulary, format Format) error {
	words := vocab.Words()
	if format == JSON {
		entries := make([]vocabEntry, len(words))
		for i, word := range words {
			entries[i] = vocabEntry{Word: word, Frequency: vocab.Frequency(word)}
		}
		return writeJSON(w, entries)
	}
	bw := bufio.NewWriter(w)
	for _, word := range words {
		fmt.Fprintf(bw, "%s %d\n", word, vocab.Frequency(word))
	}
	return bw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
