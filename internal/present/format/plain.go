package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mithrel/wpreader/internal/view"
)

// TSV columns: kind, id, title, slug, modified
var headerLine = "kind\tid\ttitle\tslug\tmodified\n"

// WritePlainSummaries writes one tab-aligned line per item.
func WritePlainSummaries(w io.Writer, items []view.Summary, headers bool, st Style) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, headerLine)
	}
	for _, s := range items {
		line := fmt.Sprintf("%s\t%d\t%s\t%s\t%s\n",
			s.Kind, s.ID, esc(s.Title), esc(s.Slug), st.formatDate(s.Modified))
		_, _ = io.WriteString(tw, line)
	}
	return tw.Flush()
}

// WritePlainDisplay writes the form layout as unstyled text: the title,
// then each section header followed by its indented rows.
func WritePlainDisplay(w io.Writer, d view.Display, st Style) error {
	var b strings.Builder
	b.WriteString(d.Title + "\n")
	b.WriteString(strings.Repeat("=", max(3, len([]rune(d.Title)))) + "\n")
	for _, sec := range d.Sections {
		b.WriteString("\n" + sec.Header + "\n")
		for _, r := range sec.Rows {
			writeIndented(&b, plainRow(r, st))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func plainRow(r view.Row, st Style) string {
	switch r.Kind {
	case view.RowLink:
		if r.Text == r.URL || r.Text == "" {
			return r.URL
		}
		return r.Text + " <" + r.URL + ">"
	case view.RowDate:
		return st.formatDate(r.Time)
	case view.RowRich:
		if r.Rich != nil {
			return r.Rich.Text
		}
		return r.Text
	default:
		return r.Text
	}
}

func writeIndented(b *strings.Builder, s string) {
	for _, line := range strings.Split(s, "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("  " + line + "\n")
	}
}
