package ibm

// DistortionKey addresses a(TargetPos | SourcePos, SourceLen, TargetLen).
// SourceLen counts the NULL slot.
type DistortionKey struct {
	SourcePos int
	TargetPos int
	SourceLen int
	TargetLen int
}

type distortionGroup struct {
	SourcePos int
	SourceLen int
	TargetLen int
}

func (k DistortionKey) group() distortionGroup {
	return distortionGroup{k.SourcePos, k.SourceLen, k.TargetLen}
}

// DistortionTable holds the Model 2 positional probabilities. Entries that
// share (SourcePos, SourceLen, TargetLen) sum to 1 after Normalize.
type DistortionTable struct {
	probs map[DistortionKey]float64
}

func newEmptyDistortionTable() *DistortionTable {
	return &DistortionTable{probs: make(map[DistortionKey]float64)}
}

// NewDistortionTable covers every (i, j) for each (SourceLen, TargetLen)
// combination in the corpus, uniform within each group.
func NewDistortionTable(c *Corpus) *DistortionTable {
	d := newEmptyDistortionTable()
	type lengths struct{ le, lf int }
	seen := make(map[lengths]bool)
	for _, p := range c.Pairs {
		l := lengths{len(p.Source), len(p.Target)}
		if seen[l] {
			continue
		}
		seen[l] = true
		u := 1.0 / float64(l.lf)
		for i := range l.le {
			for j := range l.lf {
				d.probs[DistortionKey{i, j, l.le, l.lf}] = u
			}
		}
	}
	return d
}

// Prob returns a(j | i, le, lf), 0 for tuples never initialized.
func (d *DistortionTable) Prob(i, j, le, lf int) float64 {
	return d.probs[DistortionKey{i, j, le, lf}]
}

// Add accumulates delta onto the entry for (i, j, le, lf).
func (d *DistortionTable) Add(i, j, le, lf int, delta float64) {
	d.probs[DistortionKey{i, j, le, lf}] += delta
}

// Normalize divides each entry by its group total. Groups with zero mass are
// left as they are.
func (d *DistortionTable) Normalize() {
	totals := make(map[distortionGroup]float64)
	for k, v := range d.probs {
		totals[k.group()] += v
	}
	for k, v := range d.probs {
		if total := totals[k.group()]; total != 0 {
			d.probs[k] = v / total
		}
	}
}

// GroupSum returns the total of the entries sharing (i, le, lf).
func (d *DistortionTable) GroupSum(i, le, lf int) float64 {
	var sum float64
	for j := range lf {
		sum += d.probs[DistortionKey{i, j, le, lf}]
	}
	return sum
}

// Keys returns every key in the table, in no particular order.
func (d *DistortionTable) Keys() []DistortionKey {
	out := make([]DistortionKey, 0, len(d.probs))
	for k := range d.probs {
		out = append(out, k)
	}
	return out
}

// Len returns the number of entries.
func (d *DistortionTable) Len() int {
	return len(d.probs)
}
