package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseTimeExpr parses relative ("2h", "3d", "2w", "1mo") and absolute
// (RFC3339, "2006-01-02T15:04", "2006-01-02") time expressions.
func parseTimeExpr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time expression")
	}

	suffixes := []struct {
		suffix string
		apply  func(int) time.Time
	}{
		{"mo", func(n int) time.Time { return now.AddDate(0, -n, 0) }},
		{"y", func(n int) time.Time { return now.AddDate(-n, 0, 0) }},
		{"w", func(n int) time.Time { return now.AddDate(0, 0, -7*n) }},
		{"d", func(n int) time.Time { return now.AddDate(0, 0, -n) }},
	}
	for _, sfx := range suffixes {
		if num, ok := strings.CutSuffix(s, sfx.suffix); ok {
			if n, err := strconv.Atoi(num); err == nil && n >= 0 {
				return sfx.apply(n), nil
			}
			return time.Time{}, fmt.Errorf("invalid %s duration: %q", sfx.suffix, s)
		}
	}

	// Standard Go durations (keeps 'm' = minutes)
	if d, err := time.ParseDuration(s); err == nil {
		return now.Add(-d), nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time expression: %q", s)
}

// TimeRange is an inclusive window; zero ends are open.
type TimeRange struct {
	Since time.Time
	Until time.Time
}

// ParseTimeRange parses since/until (empty allowed) and swaps if reversed.
func ParseTimeRange(since, until string, now time.Time) (TimeRange, error) {
	var r TimeRange
	var err error
	if since != "" {
		if r.Since, err = parseTimeExpr(since, now); err != nil {
			return TimeRange{}, fmt.Errorf("invalid --since: %w", err)
		}
	}
	if until != "" {
		if r.Until, err = parseTimeExpr(until, now); err != nil {
			return TimeRange{}, fmt.Errorf("invalid --until: %w", err)
		}
	}
	if !r.Since.IsZero() && !r.Until.IsZero() && r.Since.After(r.Until) {
		r.Since, r.Until = r.Until, r.Since
	}
	return r, nil
}

// Contains reports whether t falls inside the window. A zero t only
// matches an unbounded window.
func (r TimeRange) Contains(t time.Time) bool {
	if r.Since.IsZero() && r.Until.IsZero() {
		return true
	}
	if t.IsZero() {
		return false
	}
	if !r.Since.IsZero() && t.Before(r.Since) {
		return false
	}
	if !r.Until.IsZero() && t.After(r.Until) {
		return false
	}
	return true
}
