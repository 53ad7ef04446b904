package tui

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func percent(f float64) string {
	return fmt.Sprintf("%3.f%%", f*100)
}

// relTime renders t relative to now, "-" for unknown dates.
func relTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return humanize.Time(*t)
}
