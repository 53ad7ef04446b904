package format

import (
	"html/template"
	"io"

	"github.com/mithrel/wpreader/internal/richtext"
	"github.com/mithrel/wpreader/internal/view"
)

var displayTmpl = template.Must(template.New("display").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font: 18px/1.5 system-ui, sans-serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; }
section { margin-bottom: 1.25rem; }
section > h2 { font-size: .8rem; text-transform: uppercase; color: #666; margin: 0 0 .25rem; }
.rich { background: #fff; padding: 1rem; border: 1px solid #ddd; }
pre { white-space: pre-wrap; }
</style>
</head>
<body>
{{if .Back}}<p><a href="{{.Back}}">&larr; all items</a></p>{{end}}
<h1>{{.Title}}</h1>
{{range .Sections}}<section>
<h2>{{.Header}}</h2>
{{range .Rows}}{{if .URL}}<div><a href="{{.URL}}">{{.Text}}</a></div>
{{else if .HTML}}<div class="rich">{{.HTML}}</div>
{{else if .Pre}}<pre>{{.Text}}</pre>
{{else}}<div>{{.Text}}</div>
{{end}}{{end}}</section>
{{end}}</body>
</html>
`))

type htmlPage struct {
	Title    string
	Back     string
	Sections []htmlSection
}

type htmlSection struct {
	Header string
	Rows   []htmlRow
}

type htmlRow struct {
	Text string
	URL  string
	HTML template.HTML
	Pre  bool
}

// WriteHTMLDisplay writes a standalone HTML page. back, when set, links to
// the item index.
func WriteHTMLDisplay(w io.Writer, d view.Display, st Style, back string) error {
	page := htmlPage{Title: d.Title, Back: back}
	for _, sec := range d.Sections {
		hs := htmlSection{Header: sec.Header}
		for _, r := range sec.Rows {
			hs.Rows = append(hs.Rows, toHTMLRow(r, st))
		}
		page.Sections = append(page.Sections, hs)
	}
	return displayTmpl.Execute(w, page)
}

func toHTMLRow(r view.Row, st Style) htmlRow {
	switch r.Kind {
	case view.RowLink:
		text := r.Text
		if text == "" {
			text = r.URL
		}
		return htmlRow{Text: text, URL: r.URL}
	case view.RowDate:
		return htmlRow{Text: st.formatDate(r.Time)}
	case view.RowRich:
		if r.Rich != nil {
			return htmlRow{HTML: template.HTML(richtext.Sanitize(r.Rich.HTML))}
		}
		return htmlRow{Text: r.Text, Pre: true}
	default:
		return htmlRow{Text: r.Text, Pre: len(r.Text) > 0 && containsMarkup(r.Text)}
	}
}

func containsMarkup(s string) bool {
	for _, c := range s {
		if c == '<' || c == '\n' {
			return true
		}
	}
	return false
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Site}}</title></head>
<body>
<h1>{{.Site}}</h1>
<ul>
{{range .Items}}<li><a href="{{$.Prefix}}{{.ID}}">{{.Title}}</a> <small>{{.Kind}} #{{.ID}}</small></li>
{{end}}</ul>
</body>
</html>
`))

// WriteHTMLIndex writes a list of links to prefix+id for each item.
func WriteHTMLIndex(w io.Writer, site string, prefix string, items []view.Summary) error {
	return indexTmpl.Execute(w, struct {
		Site   string
		Prefix string
		Items  []view.Summary
	}{Site: site, Prefix: prefix, Items: items})
}
