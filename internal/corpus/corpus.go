// Package corpus reads parallel corpora for alignment training.
package corpus

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/happyhackingspace/walign/ibm"
	"github.com/happyhackingspace/walign/internal/textutil"
)

// Options controls how corpus files are decoded and tokenized.
type Options struct {
	// Encoding is a character set label such as "latin1" or "shift_jis".
	// Empty means UTF-8.
	Encoding  string
	Lowercase bool
}

// CheckEncoding reports whether label names a known character set.
func CheckEncoding(label string) error {
	if label == "" {
		return nil
	}
	if enc, _ := charset.Lookup(label); enc == nil {
		return fmt.Errorf("unknown encoding %q", label)
	}
	return nil
}

// ReadParallel reads two line-aligned files, pairing line i of sourcePath
// with line i of targetPath. Reading stops at the end of the shorter file.
func ReadParallel(sourcePath, targetPath string, opts Options) ([]ibm.RawPair, error) {
	src, err := open(sourcePath, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	tgt, err := open(targetPath, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tgt.Close() }()

	srcLines := newLineReader(src)
	tgtLines := newLineReader(tgt)

	var pairs []ibm.RawPair
	for {
		s, ok, err := srcLines.next()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", sourcePath, err)
		}
		if !ok {
			break
		}
		t, ok, err := tgtLines.next()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", targetPath, err)
		}
		if !ok {
			break
		}
		pairs = append(pairs, ibm.RawPair{
			Source: textutil.Tokenize(s, opts.Lowercase),
			Target: textutil.Tokenize(t, opts.Lowercase),
		})
	}

	slog.Debug("Corpus read", "source", sourcePath, "target", targetPath, "pairs", len(pairs))
	return pairs, nil
}

// file is an opened corpus file with its decoding layers.
type file struct {
	io.Reader
	closers []io.Closer
}

func (f *file) Close() error {
	var first error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// open opens path, gunzipping ".gz" files and decoding opts.Encoding.
func open(path string, opts Options) (*file, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	f := &file{Reader: fh, closers: []io.Closer{fh}}

	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("gzip reader %s: %w", path, err)
		}
		f.Reader = gr
		f.closers = append(f.closers, gr)
	}

	if opts.Encoding != "" {
		r, err := charset.NewReaderLabel(opts.Encoding, f.Reader)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		f.Reader = r
	}
	return f, nil
}

type lineReader struct {
	r     *bufio.Reader
	first bool
	done  bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r), first: true}
}

// next returns the next line without its terminator. The last line counts
// even without a trailing newline.
func (lr *lineReader) next() (string, bool, error) {
	if lr.done {
		return "", false, nil
	}
	line, err := lr.r.ReadString('\n')
	if err == io.EOF {
		lr.done = true
		if line == "" {
			return "", false, nil
		}
	} else if err != nil {
		return "", false, err
	}
	line = strings.TrimRight(line, "\r\n")
	if lr.first {
		line = textutil.TrimBOM(line)
		lr.first = false
	}
	return line, true, nil
}
