package view

import (
	"time"

	"github.com/mithrel/wpreader/pkg/wp"
)

// Summary is the one-line form of an item used by lists and the browser.
type Summary struct {
	Kind     string     `json:"kind"`
	ID       int        `json:"id"`
	Title    string     `json:"title"`
	Slug     string     `json:"slug"`
	Link     string     `json:"link"`
	Modified *time.Time `json:"modified,omitempty"`
}

func Summarize(item wp.Item) Summary {
	s := Summary{
		Kind:  item.Kind().String(),
		ID:    item.ItemID(),
		Title: Title(item),
		Slug:  item.SlugCleaned(),
		Link:  item.ItemLink(),
	}
	if c, ok := wp.AsContent(item); ok && !c.ModifiedGMT.IsZero() {
		mod := c.ModifiedGMT
		s.Modified = &mod
	}
	return s
}

func SummarizeAll(items []wp.Item) []Summary {
	out := make([]Summary, 0, len(items))
	for _, it := range items {
		out = append(out, Summarize(it))
	}
	return out
}
