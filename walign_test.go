package walign

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/happyhackingspace/walign/ibm"
)

func writeCorpus(t *testing.T, src, tgt string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "corpus.src")
	tgtPath := filepath.Join(dir, "corpus.tgt")
	if err := os.WriteFile(srcPath, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tgtPath, []byte(tgt), 0644); err != nil {
		t.Fatal(err)
	}
	return srcPath, tgtPath
}

func prob(entries []ibm.TableEntry, src, tgt string) (float64, bool) {
	for _, e := range entries {
		if e.Source == src && e.Target == tgt {
			return e.Probability, true
		}
	}
	return 0, false
}

func TestTrain(t *testing.T) {
	src, tgt := writeCorpus(t, "a b\na\n", "x y\nx\n")
	config := DefaultTrainConfig()
	config.Iterations = 1

	a, err := Train(src, tgt, config)
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Vocabulary().Size(); got != 5 {
		t.Errorf("vocabulary size = %d, want 5", got)
	}

	entries, err := a.Table(0)
	if err != nil {
		t.Fatal(err)
	}
	ax, ok1 := prob(entries, "a", "x")
	bx, ok2 := prob(entries, "b", "x")
	if !ok1 || !ok2 {
		t.Fatalf("missing entries in %v", entries)
	}
	if !(ax > bx) {
		t.Errorf("t(x|a) = %v should exceed t(x|b) = %v", ax, bx)
	}
	if len(entries) != 6 {
		t.Errorf("threshold 0 emitted %d entries, want 6", len(entries))
	}

	als, err := a.Alignments(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(als) != 2 {
		t.Errorf("alignments = %d, want 2", len(als))
	}
}

func TestTrainModel2(t *testing.T) {
	src, tgt := writeCorpus(t,
		"the house\nthe book\na book\n",
		"das haus\ndas buch\nein buch\n")
	config := DefaultTrainConfig()
	config.Model = ibm.Model2
	config.Iterations = 5

	a, err := Train(src, tgt, config)
	if err != nil {
		t.Fatal(err)
	}
	if a.Model().Distortion == nil {
		t.Fatal("Model2 should carry a distortion table")
	}
	if len(a.Model().Stats) != 5 {
		t.Errorf("stats = %d, want 5", len(a.Model().Stats))
	}
}

func TestTrainEmptyVocabulary(t *testing.T) {
	src, tgt := writeCorpus(t, "a b\na\n", "x y\nx\n")
	config := DefaultTrainConfig()
	config.MinFrequency = 10

	a, err := Train(src, tgt, config)
	if err != nil {
		t.Fatal(err)
	}
	entries, err := a.Table(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %v, want none", entries)
	}
	als, err := a.Alignments(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(als) != 0 {
		t.Errorf("alignments = %v, want none", als)
	}
}

func TestTrainTMX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mem.tmx")
	tmx := `<tmx version="1.4"><body>
<tu><tuv xml:lang="en"><seg>the house</seg></tuv><tuv xml:lang="de"><seg>das haus</seg></tuv></tu>
<tu><tuv xml:lang="en"><seg>the book</seg></tuv><tuv xml:lang="de"><seg>das buch</seg></tuv></tu>
</body></tmx>`
	if err := os.WriteFile(path, []byte(tmx), 0644); err != nil {
		t.Fatal(err)
	}
	a, err := TrainTMX(path, "en", "de", nil)
	if err != nil {
		t.Fatal(err)
	}
	if a.Corpus().Len() != 2 {
		t.Errorf("pairs = %d, want 2", a.Corpus().Len())
	}
}

func TestTrainConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*TrainConfig)
	}{
		{"zero iterations", func(c *TrainConfig) { c.Iterations = 0 }},
		{"zero min frequency", func(c *TrainConfig) { c.MinFrequency = 0 }},
		{"bad model", func(c *TrainConfig) { c.Model = 3 }},
		{"bad encoding", func(c *TrainConfig) { c.Encoding = "klingon" }},
	}
	for _, tt := range tests {
		config := DefaultTrainConfig()
		tt.modify(config)
		if err := config.Validate(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		// validation happens before the files are opened
		if _, err := Train("does-not-exist", "does-not-exist", config); err == nil {
			t.Errorf("%s: Train should fail", tt.name)
		}
	}
	if err := DefaultTrainConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestTrainPairsRejectsInvalidConfig(t *testing.T) {
	pairs := []ibm.RawPair{{Source: []string{"a"}, Target: []string{"x"}}}
	config := DefaultTrainConfig()
	config.Iterations = -1
	if _, err := TrainPairs(pairs, config); err == nil {
		t.Error("expected error for negative iterations")
	}
	a, err := TrainPairs(pairs, DefaultTrainConfig())
	if err != nil {
		t.Fatal(err)
	}
	if a.Corpus().Len() != 1 {
		t.Errorf("pairs = %d, want 1", a.Corpus().Len())
	}
}

func TestTrainMissingFile(t *testing.T) {
	if _, err := Train("nonexistent.src", "nonexistent.tgt", nil); err == nil {
		t.Error("expected error for missing corpus")
	}
}

func TestThreshold(t *testing.T) {
	a, err := TrainPairs([]ibm.RawPair{{Source: []string{"a"}, Target: []string{"x"}}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []float64{-0.1, 1.5} {
		if _, err := a.Table(p); err == nil {
			t.Errorf("Table(%v): expected error", p)
		}
	}
	if _, err := a.Alignments(1); err != nil {
		t.Errorf("Alignments(1): %v", err)
	}
}

func TestAlignerNotTrained(t *testing.T) {
	a := &Aligner{}
	if _, err := a.Table(0); err == nil {
		t.Error("expected error for untrained aligner")
	}
}
