package dataset

import (
	"strconv"
	"strings"
)

// Field names a logical column of the restaurant dataset. Physical CSV
// headers vary between exports, so every field carries an ordered alias
// list and the first alias present in the header wins.
type Field string

const (
	FieldLocation Field = "location"
	FieldCuisine  Field = "cuisine"
	FieldPrice    Field = "price"
	FieldRating   Field = "rating"
	FieldName     Field = "name"
)

// alias order = priority
var fieldAliases = map[Field][]string{
	FieldLocation: {"Location", "location", "LOCATION"},
	FieldCuisine:  {"Cuisines", "cuisines", "CUISINES", "Cuisine", "cuisine"},
	FieldPrice:    {"Price_for_one", "price_for_one", "Price", "price"},
	FieldRating:   {"Rating", "rating", "RATING"},
	FieldName:     {"Name", "name", "NAME", "Restaurant_Name", "restaurant_name"},
}

// Table holds the in-memory dataset: one header row plus string cells.
// It is built once at startup and shared read-only across all requests,
// so no locking is needed anywhere.
type Table struct {
	headers []string
	index   map[string]int
	rows    [][]string
}

// New builds a Table from a header and raw rows. Headers are trimmed;
// rows shorter than the header are padded with empty cells and longer
// rows are truncated, so cell access never goes out of range.
func New(headers []string, rows [][]string) *Table {
	t := &Table{
		headers: make([]string, len(headers)),
		index:   make(map[string]int, len(headers)),
	}
	for i, h := range headers {
		h = strings.TrimSpace(h)
		t.headers[i] = h
		if _, exists := t.index[h]; !exists {
			t.index[h] = i
		}
	}

	t.rows = make([][]string, 0, len(rows))
	for _, row := range rows {
		fixed := make([]string, len(headers))
		copy(fixed, row)
		t.rows = append(t.rows, fixed)
	}
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Empty reports whether the dataset has no rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// Headers returns a copy of the physical column names.
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// Column resolves a logical field to a physical column index, taking
// the first alias present in the header. ok is false when no alias
// matches, which callers treat as "field unavailable".
func (t *Table) Column(field Field) (int, bool) {
	for _, alias := range fieldAliases[field] {
		if idx, ok := t.index[alias]; ok {
			return idx, true
		}
	}
	return 0, false
}

// ColumnName resolves a logical field to its physical column name.
func (t *Table) ColumnName(field Field) (string, bool) {
	idx, ok := t.Column(field)
	if !ok {
		return "", false
	}
	return t.headers[idx], true
}

// Cell returns the trimmed text of a cell. An empty result means the
// value is missing.
func (t *Table) Cell(row, col int) string {
	return strings.TrimSpace(t.rows[row][col])
}

// Float parses a cell as a number. Missing or unparsable cells report
// ok=false and are ignored by every aggregate.
func (t *Table) Float(row, col int) (float64, bool) {
	raw := t.Cell(row, col)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
