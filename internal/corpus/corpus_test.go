package corpus

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/happyhackingspace/walign/ibm"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadParallel(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "src.txt", "a b\r\n\na\n")
	tgt := writeFile(t, dir, "tgt.txt", "x  y\nz\nx")

	pairs, err := ReadParallel(src, tgt, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []ibm.RawPair{
		{Source: []string{"a", "b"}, Target: []string{"x", "y"}},
		{Source: []string{}, Target: []string{"z"}},
		{Source: []string{"a"}, Target: []string{"x"}},
	}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
	}
	for i := range want {
		if len(pairs[i].Source) != len(want[i].Source) ||
			(len(want[i].Source) > 0 && !reflect.DeepEqual(pairs[i].Source, want[i].Source)) {
			t.Errorf("pair %d source = %v, want %v", i, pairs[i].Source, want[i].Source)
		}
		if !reflect.DeepEqual(pairs[i].Target, want[i].Target) {
			t.Errorf("pair %d target = %v, want %v", i, pairs[i].Target, want[i].Target)
		}
	}
}

func TestReadParallelTruncatesToShorter(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "src.txt", "a\nb\nc\n")
	tgt := writeFile(t, dir, "tgt.txt", "x\ny\n")

	pairs, err := ReadParallel(src, tgt, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 {
		t.Errorf("got %d pairs, want 2", len(pairs))
	}

	pairs, err = ReadParallel(tgt, src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 {
		t.Errorf("swapped: got %d pairs, want 2", len(pairs))
	}
}

func TestReadParallelLowercaseAndBOM(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "src.txt", "\uFEFFThe House\n")
	tgt := writeFile(t, dir, "tgt.txt", "Das Haus\n")

	pairs, err := ReadParallel(src, tgt, Options{Lowercase: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(pairs[0].Source, []string{"the", "house"}) {
		t.Errorf("source = %q", pairs[0].Source)
	}
	if !reflect.DeepEqual(pairs[0].Target, []string{"das", "haus"}) {
		t.Errorf("target = %q", pairs[0].Target)
	}
}

func TestReadParallelGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "src.txt.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(f)
	if _, err := gw.Write([]byte("a b\nc\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	tgt := writeFile(t, dir, "tgt.txt", "x\ny\n")

	pairs, err := ReadParallel(path, tgt, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 || !reflect.DeepEqual(pairs[0].Source, []string{"a", "b"}) {
		t.Errorf("pairs = %v", pairs)
	}
}

func TestReadParallelLatin1(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "src.txt", "caf\xe9\n")
	tgt := writeFile(t, dir, "tgt.txt", "coffee\n")

	pairs, err := ReadParallel(src, tgt, Options{Encoding: "latin1"})
	if err != nil {
		t.Fatal(err)
	}
	if got := pairs[0].Source[0]; got != "café" {
		t.Errorf("decoded = %q, want café", got)
	}
}

func TestReadParallelErrors(t *testing.T) {
	dir := t.TempDir()
	tgt := writeFile(t, dir, "tgt.txt", "x\n")

	if _, err := ReadParallel(filepath.Join(dir, "missing.txt"), tgt, Options{}); err == nil {
		t.Error("expected error for missing source file")
	}
	if _, err := ReadParallel(tgt, filepath.Join(dir, "missing.txt"), Options{}); err == nil {
		t.Error("expected error for missing target file")
	}
	if _, err := ReadParallel(tgt, tgt, Options{Encoding: "no-such-charset"}); err == nil {
		t.Error("expected error for unknown encoding")
	}
}

func TestCheckEncoding(t *testing.T) {
	tests := []struct {
		label string
		ok    bool
	}{
		{"", true},
		{"utf-8", true},
		{"latin1", true},
		{"windows-1252", true},
		{"shift_jis", true},
		{"klingon", false},
	}
	for _, tt := range tests {
		err := CheckEncoding(tt.label)
		if (err == nil) != tt.ok {
			t.Errorf("CheckEncoding(%q) = %v, want ok=%v", tt.label, err, tt.ok)
		}
	}
}

const sampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<tmx version="1.4">
  <header creationtool="test" srclang="en" datatype="plaintext" segtype="sentence" adminlang="en" o-tmf="none"></header>
  <body>
    <tu>
      <tuv xml:lang="en-US"><seg>The house</seg></tuv>
      <tuv xml:lang="de"><seg>Das
        Haus</seg></tuv>
    </tu>
    <tu>
      <tuv xml:lang="en"><seg>the book &amp; pen</seg></tuv>
      <tuv lang="DE"><seg>das Buch</seg></tuv>
    </tu>
    <tu>
      <tuv xml:lang="en"><seg>orphan</seg></tuv>
      <tuv xml:lang="fr"><seg>orphelin</seg></tuv>
    </tu>
  </body>
</tmx>
`

func TestReadTMX(t *testing.T) {
	path := writeFile(t, t.TempDir(), "mem.tmx", sampleTMX)

	pairs, err := ReadTMX(path, "en", "de", Options{Lowercase: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []ibm.RawPair{
		{Source: []string{"the", "house"}, Target: []string{"das", "haus"}},
		{Source: []string{"the", "book", "&", "pen"}, Target: []string{"das", "buch"}},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("pairs = %q, want %q", pairs, want)
	}
}

func TestLangMatches(t *testing.T) {
	tests := []struct {
		tag, want string
		match     bool
	}{
		{"en", "en", true},
		{"EN-us", "en", true},
		{"en_GB", "en-gb", true},
		{"eng", "en", false},
		{"de", "en", false},
	}
	for _, tt := range tests {
		if got := langMatches(tt.tag, tt.want); got != tt.match {
			t.Errorf("langMatches(%q, %q) = %v, want %v", tt.tag, tt.want, got, tt.match)
		}
	}
}
