package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/wpreader/internal/view"
)

func WriteJSONDisplay(w io.Writer, d view.Display, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(d)
}

func WriteJSONSummaries(w io.Writer, items []view.Summary, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if items == nil {
		items = []view.Summary{}
	}
	return enc.Encode(items)
}
