// Package csvparse converts published-spreadsheet CSV text into tables of
// string records.
//
// The splitter is deliberately the dashboard's own: a character scan where a
// double quote toggles "inside quoted field" mode and commas only terminate
// fields outside quotes. Quotes are stripped from the stored values, rows
// shorter than the header are dropped, and an unbalanced quote corrupts the
// remainder of its line. encoding/csv is stricter and recovers differently
// on exactly these inputs, so the live sheets would parse differently
// through it.
package csvparse

import (
	"errors"
	"strings"

	"github.com/opsboard/opsboard/internal/model"
)

// ErrEmptyInput is returned when the input has no header row.
var ErrEmptyInput = errors.New("csvparse: empty input")

// Parse converts raw CSV text into a table. The first line is the header;
// each subsequent non-blank line becomes a record when it yields at least
// as many cells as the header has columns. Shorter rows are dropped, extra
// trailing cells are truncated, and blank lines are skipped.
func Parse(raw string) (model.Table, error) {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return model.Table{}, ErrEmptyInput
	}

	header := splitLine(lines[0])
	for i, h := range header {
		header[i] = clean(h)
	}

	records := make([]model.Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := splitLine(line)
		if len(cells) < len(header) {
			continue
		}
		rec := make(model.Record, len(header))
		for i, col := range header {
			rec[col] = clean(cells[i])
		}
		records = append(records, rec)
	}

	return model.Table{Header: header, Records: records}, nil
}

// splitLine splits one CSV line on commas, treating commas inside
// double-quoted regions as literal characters. The quote characters
// themselves are kept; clean strips them afterwards.
func splitLine(line string) []string {
	var cells []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ',' && !inQuotes:
			cells = append(cells, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	cells = append(cells, current.String())
	return cells
}

// clean trims surrounding whitespace and removes every double-quote
// character, matching the source dashboard's cell normalization.
func clean(cell string) string {
	return strings.ReplaceAll(strings.TrimSpace(cell), `"`, "")
}
