package format

import (
	"strings"
	"time"

	"github.com/mithrel/wpreader/internal/richtext"
)

// Style carries the knobs shared by every display writer.
type Style struct {
	DateFormat string
	Renderer   *richtext.Renderer
}

const defaultDateFormat = "Jan 2, 2006"

func (s Style) formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	layout := s.DateFormat
	if strings.TrimSpace(layout) == "" {
		layout = defaultDateFormat
	}
	return t.Format(layout)
}

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}
