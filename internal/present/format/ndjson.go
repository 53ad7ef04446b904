package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/wpreader/internal/view"
)

// WriteNDJSONSummaries writes items as newline-delimited JSON objects.
func WriteNDJSONSummaries(w io.Writer, items []view.Summary) error {
	enc := json.NewEncoder(w)
	for _, s := range items {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return nil
}
