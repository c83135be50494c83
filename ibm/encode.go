package ibm

// Encode maps raw pairs to vocabulary ids. Unknown tokens are dropped, NULL
// is prepended to every source side, and pairs left without target words
// are discarded. Model1 deduplicates each side keeping first occurrences.
func Encode(pairs []RawPair, vocab *Vocabulary, variant Variant) *Corpus {
	c := &Corpus{
		Variant:    variant,
		Vocabulary: vocab,
	}
	dedup := variant == Model1

	for _, p := range pairs {
		src := encodeSide(p.Source, vocab, []int{NullID}, dedup)
		tgt := encodeSide(p.Target, vocab, nil, dedup)
		if len(tgt) == 0 {
			continue
		}
		c.Pairs = append(c.Pairs, SentencePair{Source: src, Target: tgt})
	}
	return c
}

func encodeSide(words []string, vocab *Vocabulary, ids []int, dedup bool) []int {
	var seen map[int]bool
	if dedup {
		seen = make(map[int]bool, len(words)+len(ids))
		for _, id := range ids {
			seen[id] = true
		}
	}
	for _, w := range words {
		id, ok := vocab.ID(w)
		if !ok {
			continue
		}
		if dedup {
			if seen[id] {
				continue
			}
			seen[id] = true
		}
		ids = append(ids, id)
	}
	return ids
}
