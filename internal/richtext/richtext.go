// Package richtext turns WordPress HTML fields into styled terminal text.
//
// Conversion is best effort. Convert reports failure through its boolean
// result and never returns an error, so callers decide how to fall back.
package richtext

import (
	"strings"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// Document is an HTML fragment interpreted as a document.
type Document struct {
	HTML     string `json:"html"`
	Markdown string `json:"markdown"`
	Text     string `json:"text"`
}

// Convert interprets html as a document. It returns false for blank input,
// invalid UTF-8, or markup the converters reject.
func Convert(html string) (Document, bool) {
	if strings.TrimSpace(html) == "" || !utf8.ValidString(html) {
		return Document{}, false
	}
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return Document{}, false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Document{}, false
	}
	return Document{
		HTML:     html,
		Markdown: strings.TrimSpace(md),
		Text:     collapseSpace(doc.Text()),
	}, true
}

// collapseSpace keeps paragraph breaks but folds runs of blanks inside lines.
func collapseSpace(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, l := range lines {
		l = strings.Join(strings.Fields(l), " ")
		if l == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, l)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
