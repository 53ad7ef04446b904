package wp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// gmtLayout is how the REST API formats date_gmt and modified_gmt.
const gmtLayout = "2006-01-02T15:04:05"

type rendered struct {
	Rendered string `json:"rendered"`
}

type restItem struct {
	ID          int      `json:"id"`
	Link        string   `json:"link"`
	Slug        string   `json:"slug"`
	DateGMT     string   `json:"date_gmt"`
	ModifiedGMT string   `json:"modified_gmt"`
	Title       rendered `json:"title"`
	Excerpt     rendered `json:"excerpt"`
	Content     rendered `json:"content"`
	Categories  []int    `json:"categories"`
	Tags        []int    `json:"tags"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Count       int      `json:"count"`
	Parent      int      `json:"parent"`
	Taxonomy    string   `json:"taxonomy"`
}

// Decode reads a REST API response body holding one object or an array.
func Decode(kind Kind, r io.Reader) ([]Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	var raws []restItem
	if data[0] == '[' {
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("decode %s list: %w", kind, err)
		}
	} else {
		var one restItem
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, fmt.Errorf("decode %s: %w", kind, err)
		}
		raws = []restItem{one}
	}
	out := make([]Item, 0, len(raws))
	for _, raw := range raws {
		it, err := raw.item(kind)
		if err != nil {
			return nil, fmt.Errorf("decode %s id=%d: %w", kind, raw.ID, err)
		}
		out = append(out, it)
	}
	return out, nil
}

func (r restItem) item(kind Kind) (Item, error) {
	base := Base{ID: r.ID, Link: r.Link, Slug: r.Slug}
	switch kind {
	case KindPost:
		c, err := r.content()
		if err != nil {
			return nil, err
		}
		return Post{
			Base:       base,
			Content:    c,
			Title:      r.Title.Rendered,
			Categories: append([]int(nil), r.Categories...),
			Tags:       append([]int(nil), r.Tags...),
		}, nil
	case KindPage:
		c, err := r.content()
		if err != nil {
			return nil, err
		}
		return Page{Base: base, Content: c, Title: r.Title.Rendered}, nil
	case KindCategory:
		return Category{
			Base:        base,
			Name:        r.Name,
			Description: r.Description,
			Count:       r.Count,
			Parent:      r.Parent,
			Taxonomy:    r.Taxonomy,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

func (r restItem) content() (Content, error) {
	date, err := parseGMT(r.DateGMT)
	if err != nil {
		return Content{}, fmt.Errorf("date_gmt: %w", err)
	}
	mod, err := parseGMT(r.ModifiedGMT)
	if err != nil {
		return Content{}, fmt.Errorf("modified_gmt: %w", err)
	}
	return Content{
		DateGMT:     date,
		ModifiedGMT: mod,
		Excerpt:     r.Excerpt.Rendered,
		ContentHTML: r.Content.Rendered,
	}, nil
}

// parseGMT accepts the zone-less REST format and RFC3339.
func parseGMT(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(gmtLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
