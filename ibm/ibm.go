// Package ibm implements IBM Model 1 and Model 2 word alignment trained with
// Expectation-Maximization.
//
// The pipeline is: BuildVocabulary, Encode, Train, then Decode (or the Table
// and Align helpers) on the trained Model.
package ibm

import "fmt"

// Variant selects the alignment model.
type Variant int

const (
	// Model1 learns lexical translation probabilities only. Sentences are
	// treated as sets: repeated tokens collapse.
	Model1 Variant = iota + 1
	// Model2 adds a distortion table over positions. Sentences are ordered
	// sequences and repeated tokens are kept.
	Model2
)

// String returns the variant name used on the command line.
func (v Variant) String() string {
	switch v {
	case Model1:
		return "ibm1"
	case Model2:
		return "ibm2"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant parses "ibm1" or "ibm2".
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "ibm1", "model1", "1":
		return Model1, nil
	case "ibm2", "model2", "2":
		return Model2, nil
	}
	return 0, fmt.Errorf("unknown model %q (want ibm1 or ibm2)", s)
}

// RawPair is a tokenized sentence pair as read from the corpus.
type RawPair struct {
	Source []string
	Target []string
}

// SentencePair is a sentence pair encoded to vocabulary ids.
// Source[0] is always NullID.
type SentencePair struct {
	Source []int
	Target []int
}

// Corpus holds the encoded sentence pairs of one training run.
type Corpus struct {
	Pairs      []SentencePair
	Variant    Variant
	Vocabulary *Vocabulary
}

// Len returns the number of encoded pairs.
func (c *Corpus) Len() int {
	return len(c.Pairs)
}
