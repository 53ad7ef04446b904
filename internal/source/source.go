// Package source loads WordPress REST exports from disk or stdin.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mithrel/wpreader/pkg/wp"
)

var ErrNotFound = errors.New("item not found")

// Stdin is the path that reads from the process's standard input.
const Stdin = "-"

// Load decodes every item in path. stdin is used when path is "-".
func Load(path string, kind wp.Kind, stdin io.Reader) ([]wp.Item, error) {
	var r io.Reader
	if path == Stdin {
		if stdin == nil {
			stdin = os.Stdin
		}
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	items, err := wp.Decode(kind, r)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return items, nil
}

// Find returns the item with id.
func Find(items []wp.Item, id int) (wp.Item, error) {
	for _, it := range items {
		if it.ItemID() == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%d", ErrNotFound, id)
}

// First returns the first item, or ErrNotFound for an empty export.
func First(items []wp.Item) (wp.Item, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: export is empty", ErrNotFound)
	}
	return items[0], nil
}
