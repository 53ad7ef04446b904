package richtext

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/microcosm-cc/bluemonday"
)

const (
	DefaultStyle    = "dracula"
	DefaultWordWrap = 80
)

// Renderer applies the fixed base style to documents.
type Renderer struct {
	style string
	wrap  int
	term  *glamour.TermRenderer
}

// NewRenderer builds a glamour renderer. An unknown style or non-positive
// wrap falls back to the defaults.
func NewRenderer(style string, wrap int) *Renderer {
	if strings.TrimSpace(style) == "" {
		style = DefaultStyle
	}
	if wrap <= 0 {
		wrap = DefaultWordWrap
	}
	tr, err := newTerm(style, wrap)
	if err != nil && style != DefaultStyle {
		style = DefaultStyle
		tr, err = newTerm(style, wrap)
	}
	r := &Renderer{style: style, wrap: wrap}
	if err == nil {
		r.term = tr
	}
	return r
}

func newTerm(style string, wrap int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
}

func (r *Renderer) Style() string { return r.style }

func (r *Renderer) WordWrap() int { return r.wrap }

// RenderMarkdown styles a markdown string. False means the caller should
// show the unstyled source.
func (r *Renderer) RenderMarkdown(md string) (string, bool) {
	if r == nil || r.term == nil {
		return "", false
	}
	out, err := r.term.Render(md)
	if err != nil {
		return "", false
	}
	return out, true
}

// Render styles a converted document.
func (r *Renderer) Render(d Document) (string, bool) {
	return r.RenderMarkdown(d.Markdown)
}

var ugc = bluemonday.UGCPolicy()

// Sanitize strips scripts, handlers and unknown elements from body HTML.
func Sanitize(html string) string {
	return ugc.Sanitize(html)
}
