package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/mithrel/wpreader/internal/richtext"
	"github.com/mithrel/wpreader/internal/view"
)

// DisplayMarkdown lays the display out as a markdown document, one
// second-level heading per section.
func DisplayMarkdown(d view.Display, st Style) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", d.Title)
	for _, sec := range d.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n", sec.Header)
		list := len(sec.Rows) > 1 || sec.Header == view.HeaderCategories || sec.Header == view.HeaderTags
		if len(sec.Rows) == 0 {
			b.WriteString("_none_\n")
			continue
		}
		for _, r := range sec.Rows {
			md := markdownRow(r, st)
			if list {
				b.WriteString("- " + md + "\n")
				continue
			}
			b.WriteString(md + "\n")
		}
	}
	return b.String()
}

func markdownRow(r view.Row, st Style) string {
	switch r.Kind {
	case view.RowLink:
		if r.Text == r.URL || r.Text == "" {
			return "<" + r.URL + ">"
		}
		return fmt.Sprintf("[%s](%s)", r.Text, r.URL)
	case view.RowDate:
		return st.formatDate(r.Time)
	case view.RowRich:
		if r.Rich != nil {
			return r.Rich.Markdown
		}
		return fenced(r.Text)
	default:
		if strings.ContainsAny(r.Text, "<>\n") {
			return fenced(r.Text)
		}
		return r.Text
	}
}

// fenced shows text verbatim; unconverted HTML must not be interpreted.
func fenced(s string) string {
	fence := "```"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	return fence + "\n" + s + "\n" + fence
}

// WritePrettyDisplay renders the display through the glamour renderer.
// If styling fails the plain layout is written instead.
func WritePrettyDisplay(w io.Writer, d view.Display, st Style) error {
	r := st.Renderer
	if r == nil {
		r = richtext.NewRenderer("", 0)
	}
	out, ok := r.RenderMarkdown(DisplayMarkdown(d, st))
	if !ok {
		return WritePlainDisplay(w, d, st)
	}
	_, err := io.WriteString(w, out)
	return err
}
