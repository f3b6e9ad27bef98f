package jobseq

import "encoding/json"

// Table is the uniform tabular shape every normalized JobsEQ response is
// flattened into: a set of named columns in their original order, each
// holding one ordered slice of cell values.
//
// A Table is both the column-map and the frame representation. Use
// [Table.Column] for column-oriented access and [Table.Row] / [Table.Rows]
// for row-oriented access. Marshalling a Table to JSON produces the
// column map:
//
//	{"Occupation": ["11-1011", ...], "Employment": [1204, ...]}
type Table struct {
	headers []string
	columns map[string][]any
}

// NewTable builds a Table from ordered headers and their columns.
// Headers missing from columns get an empty column; columns not named in
// headers are ignored.
func NewTable(headers []string, columns map[string][]any) *Table {
	t := &Table{
		headers: append([]string(nil), headers...),
		columns: make(map[string][]any, len(headers)),
	}
	for _, h := range t.headers {
		t.columns[h] = columns[h]
	}
	return t
}

// Headers returns the column names in their original response order.
func (t *Table) Headers() []string {
	return append([]string(nil), t.headers...)
}

// Column returns the values of the named column, or nil if the column
// does not exist.
func (t *Table) Column(name string) []any {
	return t.columns[name]
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.headers) == 0 {
		return 0
	}
	return len(t.columns[t.headers[0]])
}

// Row returns the i-th row in header order. It panics if i is out of
// range, matching slice indexing semantics.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.headers))
	for j, h := range t.headers {
		row[j] = t.columns[h][i]
	}
	return row
}

// Rows returns all rows in header order.
func (t *Table) Rows() [][]any {
	rows := make([][]any, t.Len())
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// MarshalJSON encodes the table as its column map.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.columns)
}

// tableBuilder accumulates rows for a known header set and produces the
// pivoted Table. Cells arrive row-oriented from the vendor; the builder
// does the row-to-column pivot once at the end.
type tableBuilder struct {
	headers []string
	rows    [][]any
}

func newTableBuilder(headers []string) *tableBuilder {
	return &tableBuilder{headers: headers}
}

func (b *tableBuilder) append(row []any) {
	b.rows = append(b.rows, row)
}

// table pivots the accumulated rows. Columns with an empty header are
// dropped, and when the vendor repeats a name the first occurrence wins;
// skipped cells still consumed a position in each row.
func (b *tableBuilder) table() *Table {
	var kept []string
	columns := make(map[string][]any)
	for i, h := range b.headers {
		if h == "" {
			continue
		}
		if _, dup := columns[h]; dup {
			continue
		}
		values := make([]any, len(b.rows))
		for j, row := range b.rows {
			values[j] = row[i]
		}
		kept = append(kept, h)
		columns[h] = values
	}
	return NewTable(kept, columns)
}
