package wp

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"
)

// Kind names a concrete item variant.
type Kind int

const (
	KindPost Kind = iota
	KindPage
	KindCategory
)

var ErrUnknownKind = errors.New("unknown item kind")

func (k Kind) String() string {
	switch k {
	case KindPost:
		return "post"
	case KindPage:
		return "page"
	case KindCategory:
		return "category"
	default:
		return "unknown"
	}
}

// ParseKind accepts singular or plural names ("post", "posts", ...).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "post", "posts":
		return KindPost, nil
	case "page", "pages":
		return KindPage, nil
	case "category", "categories":
		return KindCategory, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Item is the closed set of content records: Post, Page and Category.
type Item interface {
	ItemID() int
	ItemLink() string
	ItemSlug() string
	SlugCleaned() string
	Kind() Kind

	sealed()
}

// Base holds the fields every item carries.
type Base struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
	Slug string `json:"slug"`
}

func (b Base) ItemID() int      { return b.ID }
func (b Base) ItemLink() string { return b.Link }
func (b Base) ItemSlug() string { return b.Slug }

// SlugCleaned percent-decodes the slug; non-latin slugs come back encoded.
func (b Base) SlugCleaned() string {
	s, err := url.PathUnescape(b.Slug)
	if err != nil {
		return b.Slug
	}
	return s
}

// Content is the richer capability shared by posts and pages.
type Content struct {
	DateGMT     time.Time `json:"date_gmt"`
	ModifiedGMT time.Time `json:"modified_gmt"`
	Excerpt     string    `json:"excerpt"`
	ContentHTML string    `json:"content"`
}

// ExcerptCleaned trims the excerpt and replaces the read-more marker.
func (c Content) ExcerptCleaned() string {
	s := strings.TrimSpace(c.Excerpt)
	s = strings.ReplaceAll(s, "[&hellip;]", "…")
	s = strings.ReplaceAll(s, "[…]", "…")
	return s
}

type Post struct {
	Base
	Content
	Title      string `json:"title"`
	Categories []int  `json:"categories"`
	Tags       []int  `json:"tags"`
}

func (Post) Kind() Kind { return KindPost }
func (Post) sealed()    {}

func (p Post) TitleCleaned() string { return CleanHTML(p.Title) }

type Page struct {
	Base
	Content
	Title string `json:"title"`
}

func (Page) Kind() Kind { return KindPage }
func (Page) sealed()    {}

func (p Page) TitleCleaned() string { return CleanHTML(p.Title) }

type Category struct {
	Base
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Parent      int    `json:"parent"`
	Taxonomy    string `json:"taxonomy"`
}

func (Category) Kind() Kind { return KindCategory }
func (Category) sealed()    {}

// AsContent reports whether item carries the content capability.
func AsContent(item Item) (Content, bool) {
	switch it := item.(type) {
	case Post:
		return it.Content, true
	case Page:
		return it.Content, true
	default:
		return Content{}, false
	}
}

// CleanHTML strips tags and decodes entities from a short rendered field.
func CleanHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>' && inTag:
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(html.UnescapeString(b.String()))
}
