package ui

import (
	"fmt"
	"io"
	"strings"
)

// Table renders rows with aligned columns.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row; missing cells are blank, extra cells dropped.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.headers))
	for i := range t.headers {
		if i < len(values) {
			row[i] = values[i]
			if len(values[i]) > t.widths[i] {
				t.widths[i] = len(values[i])
			}
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) {
	if len(t.headers) == 0 {
		return
	}

	line := func(left, mid, right string) {
		fmt.Fprint(w, left)
		for i, width := range t.widths {
			fmt.Fprint(w, strings.Repeat("─", width+2))
			if i < len(t.widths)-1 {
				fmt.Fprint(w, mid)
			}
		}
		fmt.Fprintln(w, right)
	}

	row := func(cells []string) {
		fmt.Fprint(w, "│")
		for i := range t.headers {
			val := ""
			if i < len(cells) {
				val = cells[i]
			}
			fmt.Fprintf(w, " %-*s │", t.widths[i], val)
		}
		fmt.Fprintln(w)
	}

	line("┌", "┬", "┐")
	row(t.headers)
	line("├", "┼", "┤")
	for _, r := range t.rows {
		row(r)
	}
	line("└", "┴", "┘")
}
