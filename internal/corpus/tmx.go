package corpus

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/happyhackingspace/walign/ibm"
	"github.com/happyhackingspace/walign/internal/textutil"
)

// ReadTMX reads translation units from a TMX file. Each <tu> holding a
// <tuv> for both languages becomes one pair; other units are skipped.
func ReadTMX(path, sourceLang, targetLang string, opts Options) ([]ibm.RawPair, error) {
	f, err := open(path, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse tmx %s: %w", path, err)
	}

	var pairs []ibm.RawPair
	skipped := 0
	doc.Find("tu").Each(func(_ int, tu *goquery.Selection) {
		src, okSrc := segment(tu, sourceLang)
		tgt, okTgt := segment(tu, targetLang)
		if !okSrc || !okTgt {
			skipped++
			return
		}
		pairs = append(pairs, ibm.RawPair{
			Source: textutil.Tokenize(src, opts.Lowercase),
			Target: textutil.Tokenize(tgt, opts.Lowercase),
		})
	})

	slog.Debug("TMX read", "path", path, "pairs", len(pairs), "skipped", skipped)
	return pairs, nil
}

// segment returns the <seg> text of the first <tuv> in lang.
func segment(tu *goquery.Selection, lang string) (string, bool) {
	var text string
	found := false
	tu.Find("tuv").EachWithBreak(func(_ int, tuv *goquery.Selection) bool {
		l, ok := tuv.Attr("xml:lang")
		if !ok {
			l, ok = tuv.Attr("lang")
		}
		if !ok || !langMatches(l, lang) {
			return true
		}
		text = textutil.NormalizeWhitespaces(tuv.Find("seg").First().Text())
		found = true
		return false
	})
	return text, found
}

// langMatches compares language tags case-insensitively, letting a primary
// subtag such as "en" match "en-US".
func langMatches(tag, want string) bool {
	tag = strings.ToLower(strings.ReplaceAll(tag, "_", "-"))
	want = strings.ToLower(strings.ReplaceAll(want, "_", "-"))
	return tag == want || strings.HasPrefix(tag, want+"-")
}
