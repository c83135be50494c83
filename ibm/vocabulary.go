package ibm

import (
	"fmt"
	"sort"
)

// NullID is the reserved source-side id for "no source word".
const NullID = 0

// NullToken is how NullID is rendered.
const NullToken = "NULL"

// LookupError is returned when decoding an id the vocabulary never issued.
type LookupError struct {
	ID int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("ibm: unknown vocabulary id %d", e.ID)
}

// Vocabulary maps between words and dense integer ids.
// Id 0 is reserved for NULL; admitted words follow in lexicographic order.
// A corpus token spelled NULL maps to the reserved id.
type Vocabulary struct {
	toID  map[string]int
	toStr []string
	freq  map[string]int
}

// BuildVocabulary counts token frequencies over both sides of the corpus and
// admits every word seen at least minFrequency times.
func BuildVocabulary(pairs []RawPair, minFrequency int) *Vocabulary {
	if minFrequency < 1 {
		minFrequency = 1
	}

	freq := make(map[string]int)
	for _, p := range pairs {
		for _, w := range p.Source {
			freq[w]++
		}
		for _, w := range p.Target {
			freq[w]++
		}
	}

	words := make([]string, 0, len(freq))
	for w, n := range freq {
		if w != NullToken && n >= minFrequency {
			words = append(words, w)
		}
	}
	sort.Strings(words)

	v := &Vocabulary{
		toID:  make(map[string]int, len(words)+1),
		toStr: make([]string, 0, len(words)+1),
		freq:  freq,
	}
	v.toID[NullToken] = NullID
	v.toStr = append(v.toStr, NullToken)
	for _, w := range words {
		v.toID[w] = len(v.toStr)
		v.toStr = append(v.toStr, w)
	}
	return v
}

// ID returns the id of an admitted word. NullToken always maps to NullID.
func (v *Vocabulary) ID(word string) (int, bool) {
	id, ok := v.toID[word]
	return id, ok
}

// Word returns the word for id, or a *LookupError.
func (v *Vocabulary) Word(id int) (string, error) {
	if id < 0 || id >= len(v.toStr) {
		return "", &LookupError{ID: id}
	}
	return v.toStr[id], nil
}

// Frequency returns the raw corpus frequency of word, admitted or not.
func (v *Vocabulary) Frequency(word string) int {
	return v.freq[word]
}

// Size returns the number of ids, NULL included.
func (v *Vocabulary) Size() int {
	return len(v.toStr)
}

// Words returns the admitted words in id order (lexicographic), without NULL.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.toStr)-1)
	copy(out, v.toStr[1:])
	return out
}
