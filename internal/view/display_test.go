package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mithrel/wpreader/internal/richtext"
	"github.com/mithrel/wpreader/pkg/wp"
)

func helloPost() wp.Post {
	return wp.Post{
		Base: wp.Base{ID: 42, Link: "https://example.com/42", Slug: "hello-world"},
		Content: wp.Content{
			DateGMT:     time.Date(2021, 5, 18, 10, 0, 0, 0, time.UTC),
			ModifiedGMT: time.Date(2021, 5, 19, 10, 0, 0, 0, time.UTC),
			Excerpt:     "<p>Short</p>",
			ContentHTML: "<p>Long <em>body</em></p>",
		},
		Title:      "Hello World",
		Categories: []int{1, 2},
		Tags:       []int{3},
	}
}

func headers(d Display) []string {
	out := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		out = append(out, s.Header)
	}
	return out
}

func rowTexts(s Section) []string {
	out := make([]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		out = append(out, r.Text)
	}
	return out
}

func TestBuildHelloWorldPost(t *testing.T) {
	d := Build(helloPost(), wp.Wordhord, nil)

	require.Equal(t, "Hello World", d.Title)
	require.Equal(t, "post", d.Kind)
	require.Equal(t, []string{
		HeaderID, HeaderLink, HeaderSlug,
		HeaderDate, HeaderModified, HeaderExcerpt, HeaderContent,
		HeaderCategories, HeaderTags,
	}, headers(d))

	id, _ := d.Section(HeaderID)
	require.Equal(t, Row{Kind: RowLink, Text: "42", URL: "https://wordhord.com/?p=42"}, id.Rows[0])

	link, _ := d.Section(HeaderLink)
	require.Equal(t, RowLink, link.Rows[0].Kind)
	require.Equal(t, "https://example.com/42", link.Rows[0].URL)

	slug, _ := d.Section(HeaderSlug)
	require.Equal(t, []string{"hello-world"}, rowTexts(slug))

	cats, _ := d.Section(HeaderCategories)
	require.Equal(t, []string{"1", "2"}, rowTexts(cats))
	tags, _ := d.Section(HeaderTags)
	require.Equal(t, []string{"3"}, rowTexts(tags))

	posted, _ := d.Section(HeaderDate)
	require.Equal(t, RowDate, posted.Rows[0].Kind)
	require.True(t, posted.Rows[0].Time.Equal(time.Date(2021, 5, 18, 10, 0, 0, 0, time.UTC)))

	body, _ := d.Section(HeaderContent)
	require.Equal(t, RowRich, body.Rows[0].Kind)
	require.NotNil(t, body.Rows[0].Rich)
	require.Contains(t, body.Rows[0].Rich.Text, "Long body")
}

func TestBuildPageHasContentButNoTaxonomies(t *testing.T) {
	page := wp.Page{
		Base:    wp.Base{ID: 7, Link: "https://example.com/about", Slug: "about"},
		Content: wp.Content{ContentHTML: "<p>About us</p>"},
		Title:   "About &amp; Contact",
	}
	d := Build(page, wp.Wordhord, nil)
	require.Equal(t, "About & Contact", d.Title)
	require.Equal(t, []string{
		HeaderID, HeaderLink, HeaderSlug,
		HeaderDate, HeaderModified, HeaderExcerpt, HeaderContent,
	}, headers(d))
}

func TestBuildCategoryFallsBackToSlug(t *testing.T) {
	cat := wp.Category{
		Base: wp.Base{ID: 9, Link: "https://example.com/category/news", Slug: "news%20desk"},
		Name: "News Desk",
	}
	d := Build(cat, wp.Wordhord, nil)
	require.Equal(t, "news%20desk", d.Title)
	require.Equal(t, []string{HeaderID, HeaderLink, HeaderSlug}, headers(d))

	slug, _ := d.Section(HeaderSlug)
	require.Equal(t, []string{"news desk"}, rowTexts(slug))

	_, ok := d.Section(HeaderContent)
	require.False(t, ok)
}

func TestBuildFallsBackToRawHTML(t *testing.T) {
	p := helloPost()
	p.Excerpt = ""
	p.ContentHTML = "bad \xff bytes"
	d := Build(p, wp.Wordhord, nil)

	ex, _ := d.Section(HeaderExcerpt)
	require.Equal(t, Row{Kind: RowText, Text: ""}, ex.Rows[0])
	body, _ := d.Section(HeaderContent)
	require.Equal(t, Row{Kind: RowText, Text: "bad \xff bytes"}, body.Rows[0])
}

func TestBuildUsesInjectedConverter(t *testing.T) {
	calls := 0
	never := func(string) (richtext.Document, bool) {
		calls++
		return richtext.Document{}, false
	}
	d := Build(helloPost(), wp.Wordhord, never)
	require.Equal(t, 2, calls)
	body, _ := d.Section(HeaderContent)
	require.Equal(t, "<p>Long <em>body</em></p>", body.Rows[0].Text)
	require.Nil(t, body.Rows[0].Rich)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	p := helloPost()
	_ = Build(p, wp.Site{Domain: "other.example"}, nil)
	require.Equal(t, helloPost(), p)
}

func TestBuildPreservesEmptyTaxonomies(t *testing.T) {
	p := helloPost()
	p.Categories = nil
	p.Tags = []int{}
	d := Build(p, wp.Wordhord, nil)
	cats, ok := d.Section(HeaderCategories)
	require.True(t, ok)
	require.Empty(t, cats.Rows)
	tags, ok := d.Section(HeaderTags)
	require.True(t, ok)
	require.Empty(t, tags.Rows)
}
