// Package view lays a content item out as titled form sections.
package view

import (
	"strconv"
	"time"

	"github.com/mithrel/wpreader/internal/richtext"
	"github.com/mithrel/wpreader/pkg/wp"
)

type RowKind string

const (
	RowText RowKind = "text"
	RowLink RowKind = "link"
	RowDate RowKind = "date"
	RowRich RowKind = "rich"
)

// Row is one displayed value inside a section.
type Row struct {
	Kind RowKind            `json:"kind"`
	Text string             `json:"text,omitempty"`
	URL  string             `json:"url,omitempty"`
	Time *time.Time         `json:"time,omitempty"`
	Rich *richtext.Document `json:"rich,omitempty"`
}

type Section struct {
	Header string `json:"header"`
	Rows   []Row  `json:"rows"`
}

// Display is the rendered form of one item, independent of output mode.
type Display struct {
	Title    string    `json:"title"`
	Kind     string    `json:"kind"`
	ID       int       `json:"id"`
	Sections []Section `json:"sections"`
}

// Section headers, in display order.
const (
	HeaderID         = "ID"
	HeaderLink       = "Link"
	HeaderSlug       = "Slug"
	HeaderDate       = "Date Posted"
	HeaderModified   = "Date Modified"
	HeaderExcerpt    = "Excerpt"
	HeaderContent    = "Content"
	HeaderCategories = "Categories"
	HeaderTags       = "Tags"
)

// Converter interprets an HTML field; false selects the plain fallback.
type Converter func(html string) (richtext.Document, bool)

// Title picks the display title for item.
func Title(item wp.Item) string {
	switch it := item.(type) {
	case wp.Post:
		return it.TitleCleaned()
	case wp.Page:
		return it.TitleCleaned()
	case wp.Category:
		return it.ItemSlug()
	default:
		// Item is sealed; kept so a new variant still gets a title.
		return item.ItemSlug()
	}
}

// Build lays out item. It never fails and does not modify item.
func Build(item wp.Item, site wp.Site, conv Converter) Display {
	if conv == nil {
		conv = richtext.Convert
	}
	id := item.ItemID()
	d := Display{
		Title: Title(item),
		Kind:  item.Kind().String(),
		ID:    id,
	}
	d.Sections = append(d.Sections,
		Section{Header: HeaderID, Rows: []Row{{Kind: RowLink, Text: strconv.Itoa(id), URL: site.PageURL(id)}}},
		Section{Header: HeaderLink, Rows: []Row{{Kind: RowLink, Text: item.ItemLink(), URL: item.ItemLink()}}},
		Section{Header: HeaderSlug, Rows: []Row{{Kind: RowText, Text: item.SlugCleaned()}}},
	)

	if c, ok := wp.AsContent(item); ok {
		d.Sections = append(d.Sections,
			Section{Header: HeaderDate, Rows: []Row{dateRow(c.DateGMT)}},
			Section{Header: HeaderModified, Rows: []Row{dateRow(c.ModifiedGMT)}},
			Section{Header: HeaderExcerpt, Rows: []Row{htmlRow(c.ExcerptCleaned(), conv)}},
			Section{Header: HeaderContent, Rows: []Row{htmlRow(c.ContentHTML, conv)}},
		)
	}

	if p, ok := item.(wp.Post); ok {
		d.Sections = append(d.Sections,
			Section{Header: HeaderCategories, Rows: idRows(p.Categories)},
			Section{Header: HeaderTags, Rows: idRows(p.Tags)},
		)
	}
	return d
}

func htmlRow(html string, conv Converter) Row {
	if doc, ok := conv(html); ok {
		return Row{Kind: RowRich, Text: html, Rich: &doc}
	}
	return Row{Kind: RowText, Text: html}
}

func dateRow(t time.Time) Row {
	return Row{Kind: RowDate, Time: &t}
}

func idRows(ids []int) []Row {
	rows := make([]Row, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, Row{Kind: RowText, Text: strconv.Itoa(id)})
	}
	return rows
}

// Section returns the section with header, if present.
func (d Display) Section(header string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Header == header {
			return s, true
		}
	}
	return Section{}, false
}
