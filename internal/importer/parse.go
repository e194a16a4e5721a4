package importer

import "strings"

// ParseRaw splits pasted spreadsheet text into a grid: one row per line, one
// cell per tab. Lines with no content at all are dropped, but rows of empty
// tab-separated cells are kept so the caller can count and exclude them.
func ParseRaw(text string) [][]string {
	if text == "" {
		return nil
	}

	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	return rows
}
