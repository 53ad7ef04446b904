package config

import (
	"fmt"
	"sort"
	"strings"
)

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	top, sections, order := splitOptions(GetConfigOptions())

	var lines []string
	lines = append(lines, "# wpreader configuration (TOML)", "")
	for _, o := range top {
		lines = appendOption(lines, o)
	}
	for _, section := range order {
		lines = append(lines, "["+section+"]")
		for _, o := range sections[section] {
			lines = appendOption(lines, o)
		}
	}
	return strings.Join(lines, "\n")
}

// UpdateTOML appends missing defaults to an existing TOML string and comments
// out keys the schema no longer knows. The bool reports whether anything changed.
func UpdateTOML(existing string) (string, bool) {
	opts := GetConfigOptions()
	known := make(map[string]bool, len(opts))
	for _, o := range opts {
		known[o.Key] = true
	}

	seen := make(map[string]bool)
	headers := make(map[string]int)
	firstHeader := -1
	section := ""
	changed := false
	lines := strings.Split(existing, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trim := strings.TrimSpace(line)
		switch {
		case trim == "" || strings.HasPrefix(trim, "#"):
			out = append(out, line)
			continue
		case strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]"):
			section = strings.TrimSpace(trim[1 : len(trim)-1])
			if firstHeader < 0 {
				firstHeader = len(out)
			}
			headers[section] = len(out)
			out = append(out, line)
			continue
		}
		key, ok := parseTOMLKey(line)
		if !ok {
			out = append(out, line)
			continue
		}
		if section != "" {
			key = section + "." + key
		}
		seen[key] = true
		if !known[key] {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+"# OUTDATED: option removed from config schema")
			out = append(out, indent+"# "+strings.TrimLeft(line, " \t"))
			changed = true
			continue
		}
		out = append(out, line)
	}

	var missing []ConfigOption
	for _, o := range opts {
		if !seen[o.Key] {
			missing = append(missing, o)
		}
	}
	if len(missing) == 0 {
		return strings.Join(out, "\n"), changed
	}

	// Keys must land inside their own table: top-level ones before the first
	// header, section ones right after an existing header.
	top, sections, order := splitOptions(missing)
	type insertion struct {
		at    int
		lines []string
	}
	var inserts []insertion
	if len(top) > 0 {
		at := len(out)
		if firstHeader >= 0 {
			at = firstHeader
		}
		var block []string
		for _, o := range top {
			block = appendOption(block, o)
		}
		inserts = append(inserts, insertion{at: at, lines: block})
	}
	var tail []string
	for _, s := range order {
		var block []string
		for _, o := range sections[s] {
			block = appendOption(block, o)
		}
		if pos, ok := headers[s]; ok {
			inserts = append(inserts, insertion{at: pos + 1, lines: block})
			continue
		}
		tail = append(tail, "["+s+"]")
		tail = append(tail, block...)
	}
	sort.Slice(inserts, func(i, j int) bool { return inserts[i].at > inserts[j].at })
	for _, ins := range inserts {
		out = append(out[:ins.at], append(ins.lines, out[ins.at:]...)...)
	}
	if len(tail) > 0 {
		out = append(out, "", "# Added by config update")
		out = append(out, tail...)
	}
	return strings.Join(out, "\n"), true
}

// splitOptions separates top-level keys from dotted section keys, keeping
// first-seen section order.
func splitOptions(opts []ConfigOption) ([]ConfigOption, map[string][]ConfigOption, []string) {
	var top []ConfigOption
	sections := make(map[string][]ConfigOption)
	var order []string
	for _, o := range opts {
		section, key, ok := strings.Cut(o.Key, ".")
		if !ok {
			top = append(top, o)
			continue
		}
		if _, exists := sections[section]; !exists {
			order = append(order, section)
		}
		sections[section] = append(sections[section], ConfigOption{Key: key, Default: o.Default, Comment: o.Comment})
	}
	return top, sections, order
}

func parseTOMLKey(line string) (string, bool) {
	idx := strings.Index(line, "=")
	if idx == -1 {
		return "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" || strings.HasPrefix(key, "[") || strings.HasPrefix(key, "\"") || strings.HasPrefix(key, "'") {
		return "", false
	}
	return key, true
}

func appendOption(lines []string, o ConfigOption) []string {
	if o.Comment != "" {
		lines = append(lines, "# "+o.Comment)
	}
	return append(lines, o.Key+" = "+tomlValue(o.Default), "")
}

func tomlValue(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case []string:
		quoted := make([]string, 0, len(x))
		for _, s := range x {
			quoted = append(quoted, fmt.Sprintf("%q", s))
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return fmt.Sprintf("%v", x)
	}
}
