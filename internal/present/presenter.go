package present

import (
	"context"
	"io"

	"github.com/mithrel/wpreader/internal/present/format"
	"github.com/mithrel/wpreader/internal/present/tui"
	"github.com/mithrel/wpreader/internal/view"
	"github.com/mithrel/wpreader/pkg/wp"
)

type Mode int

const (
	ModePlain Mode = iota
	ModePretty
	ModeJSON
	ModeNDJSON
	ModeTUI
	ModeHTML
)

type Options struct {
	Mode        Mode
	JSONIndent  bool
	Headers     bool
	Site        wp.Site
	Style       format.Style
	FilterLimit int
}

// ParseMode parses a string like "plain", "pretty", "json", "ndjson", "tui", "html".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	case "ndjson":
		return ModeNDJSON, true
	case "tui":
		return ModeTUI, true
	case "html":
		return ModeHTML, true
	default:
		return ModePretty, false
	}
}

// RenderItem builds the display for item and writes it according to options.
func RenderItem(ctx context.Context, w io.Writer, item wp.Item, opts Options) error {
	d := view.Build(item, opts.Site, nil)
	switch opts.Mode {
	case ModeJSON, ModeNDJSON:
		return format.WriteJSONDisplay(w, d, opts.JSONIndent && opts.Mode == ModeJSON)
	case ModePlain:
		return format.WritePlainDisplay(w, d, opts.Style)
	case ModeHTML:
		return format.WriteHTMLDisplay(w, d, opts.Style, "")
	case ModeTUI:
		return tui.ShowItem(ctx, d, opts.Style)
	default:
		return format.WritePrettyDisplay(w, d, opts.Style)
	}
}

// RenderItems writes a list of items according to options.
func RenderItems(ctx context.Context, w io.Writer, items []wp.Item, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONSummaries(w, view.SummarizeAll(items), opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONSummaries(w, view.SummarizeAll(items))
	case ModeHTML:
		return format.WriteHTMLIndex(w, opts.Site.Name, opts.Site.PageURLPrefix(), view.SummarizeAll(items))
	case ModeTUI:
		return tui.Browse(ctx, items, tui.BrowseOptions{
			Site:        opts.Site,
			Style:       opts.Style,
			Headers:     opts.Headers,
			FilterLimit: opts.FilterLimit,
		})
	default:
		return format.WritePlainSummaries(w, view.SummarizeAll(items), opts.Headers, opts.Style)
	}
}
