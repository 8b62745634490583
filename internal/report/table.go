// Package report renders aligned plain-text tables for console reports.
package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table is a header row plus data rows.
type Table struct {
	Headers []string
	Rows    [][]string
	// RightAlign marks columns (by index) whose cells are padded on the left.
	RightAlign map[int]bool
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers, RightAlign: map[int]bool{}}
}

// AddRow appends a data row. Missing cells render empty.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render returns the table as markdown-style pipe rows. Column widths use
// terminal display width, so CJK text and emoji stay aligned.
func (t *Table) Render() string {
	colCount := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return ""
	}

	colWidths := make([]int, colCount)

	measure := func(row []string) {
		for i := 0; i < len(row) && i < colCount; i++ {
			if width := runewidth.StringWidth(row[i]); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	measure(t.Headers)

	for _, row := range t.Rows {
		measure(row)
	}

	// Separator needs at least three dashes.
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	lines := make([]string, 0, len(t.Rows)+2)
	lines = append(lines, t.renderRow(t.Headers, colWidths))

	var sep strings.Builder

	sep.WriteString("|")

	for _, width := range colWidths {
		sep.WriteString(" ")
		sep.WriteString(strings.Repeat("-", width))
		sep.WriteString(" |")
	}

	lines = append(lines, sep.String())

	for _, row := range t.Rows {
		lines = append(lines, t.renderRow(row, colWidths))
	}

	return strings.Join(lines, "\n")
}

func (t *Table) renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = row[j]
		}

		padding := strings.Repeat(" ", max(width-runewidth.StringWidth(content), 0))

		sb.WriteString(" ")

		if t.RightAlign[j] {
			sb.WriteString(padding)
			sb.WriteString(content)
		} else {
			sb.WriteString(content)
			sb.WriteString(padding)
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
