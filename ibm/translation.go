package ibm

import "sort"

// TranslationTable holds t(target | source) over the co-occurrence support
// collected at construction. Pairs outside the support have probability 0.
type TranslationTable struct {
	rows map[int]map[int]float64
}

// NewTranslationTable gives every source id a uniform distribution over the
// target ids it co-occurs with anywhere in the corpus.
func NewTranslationTable(c *Corpus) *TranslationTable {
	rows := make(map[int]map[int]float64)
	for _, p := range c.Pairs {
		for _, s := range p.Source {
			row, ok := rows[s]
			if !ok {
				row = make(map[int]float64)
				rows[s] = row
			}
			for _, t := range p.Target {
				row[t] = 0
			}
		}
	}
	for _, row := range rows {
		u := 1.0 / float64(len(row))
		for t := range row {
			row[t] = u
		}
	}
	return &TranslationTable{rows: rows}
}

// Prob returns t(target | source), 0 for unobserved pairs.
func (tt *TranslationTable) Prob(source, target int) float64 {
	return tt.rows[source][target]
}

// Set updates t(target | source). Pairs outside the support are ignored.
func (tt *TranslationTable) Set(source, target int, p float64) {
	row, ok := tt.rows[source]
	if !ok {
		return
	}
	if _, ok := row[target]; !ok {
		return
	}
	row[target] = p
}

// Sources returns every source id with a row, ascending.
func (tt *TranslationTable) Sources() []int {
	out := make([]int, 0, len(tt.rows))
	for s := range tt.rows {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// Targets returns the support of source, ascending.
func (tt *TranslationTable) Targets(source int) []int {
	row := tt.rows[source]
	out := make([]int, 0, len(row))
	for t := range row {
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}

// RowSum returns the sum of t(· | source).
func (tt *TranslationTable) RowSum(source int) float64 {
	var sum float64
	for _, p := range tt.rows[source] {
		sum += p
	}
	return sum
}

// Len returns the number of (source, target) entries.
func (tt *TranslationTable) Len() int {
	n := 0
	for _, row := range tt.rows {
		n += len(row)
	}
	return n
}
