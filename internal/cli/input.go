package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/happyhackingspace/walign/ibm"
	"github.com/happyhackingspace/walign/internal/corpus"
	"github.com/spf13/pflag"
)

// inputFlags are the corpus reading flags shared by train and vocab.
type inputFlags struct {
	minFrequency int
	lowercase    bool
	encoding     string
	sourceLang   string
	targetLang   string
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.minFrequency, "min-frequency", 1, "Drop words seen fewer times than this across both sides")
	fs.BoolVar(&f.lowercase, "lowercase", false, "Lowercase tokens before counting")
	fs.StringVar(&f.encoding, "encoding", "", "Character set of the corpus files (default UTF-8)")
	fs.StringVar(&f.sourceLang, "source-lang", "", "Source language of TMX input")
	fs.StringVar(&f.targetLang, "target-lang", "", "Target language of TMX input")
}

// validate checks the flags against the positional arguments before any
// file is opened.
func (f *inputFlags) validate(args []string) error {
	if f.minFrequency < 1 {
		return fmt.Errorf("--min-frequency must be at least 1, got %d", f.minFrequency)
	}
	if err := corpus.CheckEncoding(f.encoding); err != nil {
		return fmt.Errorf("--encoding: %w", err)
	}
	if len(args) == 1 && (f.sourceLang == "" || f.targetLang == "") {
		return fmt.Errorf("TMX input requires --source-lang and --target-lang")
	}
	return nil
}

func (f *inputFlags) options() corpus.Options {
	return corpus.Options{Encoding: f.encoding, Lowercase: f.lowercase}
}

// read loads the corpus named by args: two line-aligned files, or one TMX file.
func (f *inputFlags) read(args []string) ([]ibm.RawPair, error) {
	start := time.Now()
	var (
		pairs []ibm.RawPair
		err   error
	)
	if len(args) == 1 {
		slog.Info("Reading TMX", "path", args[0], "source-lang", f.sourceLang, "target-lang", f.targetLang)
		pairs, err = corpus.ReadTMX(args[0], f.sourceLang, f.targetLang, f.options())
	} else {
		slog.Info("Reading corpus", "source", args[0], "target", args[1])
		pairs, err = corpus.ReadParallel(args[0], args[1], f.options())
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("Corpus loaded", "pairs", len(pairs), "duration", time.Since(start))
	return pairs, nil
}
