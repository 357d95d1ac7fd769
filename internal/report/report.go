// Package report renders engine results as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// Table is a titled grid of text cells.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// Render writes the table. An empty table prints "(no rows)".
func (t *Table) Render(w io.Writer) {
	if t.Title != "" {
		fmt.Fprintf(w, "\n%s\n", t.Title)
	}
	if len(t.Rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return
	}
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
	table.Header(toAny(t.Header)...)
	for _, r := range t.Rows {
		table.Append(toAny(r)...)
	}
	table.Render()
}

// Limit keeps the first n rows; n <= 0 keeps all.
func (t *Table) Limit(n int) *Table {
	if n > 0 && len(t.Rows) > n {
		t.Rows = t.Rows[:n]
	}
	return t
}

// Titled sets the title.
func (t *Table) Titled(title string) *Table {
	t.Title = title
	return t
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// column renders one field of T. Optional columns are dropped when every
// row renders them empty.
type column[T any] struct {
	name     string
	cell     func(T) string
	optional bool
}

func col[T any](name string, cell func(T) string) column[T] {
	return column[T]{name: name, cell: cell}
}

func opt[T any](name string, cell func(T) string) column[T] {
	return column[T]{name: name, cell: cell, optional: true}
}

func build[T any](rows []T, cols ...column[T]) *Table {
	var keep []column[T]
	for _, c := range cols {
		if !c.optional || anyCell(rows, c.cell) {
			keep = append(keep, c)
		}
	}
	t := &Table{Header: make([]string, len(keep)), Rows: make([][]string, 0, len(rows))}
	for i, c := range keep {
		t.Header[i] = c.name
	}
	for _, r := range rows {
		cells := make([]string, len(keep))
		for i, c := range keep {
			cells[i] = c.cell(r)
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func anyCell[T any](rows []T, cell func(T) string) bool {
	for _, r := range rows {
		if cell(r) != "" {
			return true
		}
	}
	return false
}

// keyValues is a two-column FIELD/VALUE table.
func keyValues(title string, pairs ...string) *Table {
	t := &Table{Title: title, Header: []string{"FIELD", "VALUE"}}
	for i := 0; i+1 < len(pairs); i += 2 {
		t.Rows = append(t.Rows, []string{pairs[i], pairs[i+1]})
	}
	return t
}

// ---- cell formatting ----

func itoa(n int) string { return strconv.Itoa(n) }

func itoa64(n int64) string { return strconv.FormatInt(n, 10) }

func rate(r model.Rate) string { return r.String() }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func nonZero(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func list(ss []string) string { return strings.Join(ss, ", ") }
