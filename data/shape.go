// Package data turns caller datasets into validated tables and holds the
// rectangle collections bar charts are built from.
package data

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/tiendc/go-deepcopy"
)

// ErrFormat is matched by every FormatError.
var ErrFormat = errors.New("data: malformed dataset")

// FormatError reports a dataset that is not a rectangular table of labels
// and values.
type FormatError struct {
	Row, Col int // -1 if not applicable
	Reason   string
}

func (e *FormatError) Error() string {
	switch {
	case e.Row >= 0 && e.Col >= 0:
		return fmt.Sprintf("data: row %d, column %d: %s", e.Row, e.Col, e.Reason)
	case e.Row >= 0:
		return fmt.Sprintf("data: row %d: %s", e.Row, e.Reason)
	}
	return "data: " + e.Reason
}

// Is makes errors.Is(err, ErrFormat) true for every FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Dataset is the raw input of a chart: row 0 holds the column labels,
// all other rows hold a category key (or x value) in column 0 followed by
// the series values. Cells may be strings or any numeric kind; numeric
// strings are accepted for values.
type Dataset [][]any

// Clone returns a deep copy of d.
func (d Dataset) Clone() (Dataset, error) {
	var c Dataset
	if err := deepcopy.Copy(&c, d); err != nil {
		return nil, fmt.Errorf("data: copying dataset: %w", err)
	}
	return c, nil
}

// Row is one shaped data row.
type Row struct {
	Key    string    // column 0 as text
	X      float64   // column 0 as number, NaN if it is not numeric
	Values []float64 // one value per series
}

// Table is the shaped form of a Dataset.
type Table struct {
	XLabel string
	Series []string
	Rows   []Row
}

// Shape splits ds into the x label, the series labels and the value rows.
// The returned Table shares no memory with ds.
func Shape(ds Dataset) (*Table, error) {
	if len(ds) == 0 {
		return nil, &FormatError{Row: -1, Col: -1, Reason: "no header row"}
	}
	width := len(ds[0])
	if width < 1 {
		return nil, &FormatError{Row: 0, Col: -1, Reason: "empty header row"}
	}

	t := &Table{Series: make([]string, 0, width-1)}
	for c, cell := range ds[0] {
		label, ok := cell.(string)
		if !ok {
			return nil, &FormatError{Row: 0, Col: c, Reason: fmt.Sprintf("label %v is not a string", cell)}
		}
		if c == 0 {
			t.XLabel = label
			continue
		}
		t.Series = append(t.Series, label)
	}

	t.Rows = make([]Row, 0, len(ds)-1)
	for r := 1; r < len(ds); r++ {
		if len(ds[r]) != width {
			return nil, &FormatError{Row: r, Col: -1,
				Reason: fmt.Sprintf("has %d cells, header has %d", len(ds[r]), width)}
		}
		row := Row{Values: make([]float64, width-1)}
		row.Key = keyString(ds[r][0])
		if x, ok := Number(ds[r][0]); ok {
			row.X = x
		} else {
			row.X = math.NaN()
		}
		for c := 1; c < width; c++ {
			v, ok := Number(ds[r][c])
			if !ok {
				return nil, &FormatError{Row: r, Col: c,
					Reason: fmt.Sprintf("value %v is not numeric", ds[r][c])}
			}
			row.Values[c-1] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Require fails with a FormatError if t has fewer than n series columns.
func (t *Table) Require(n int) error {
	if len(t.Series) < n {
		return &FormatError{Row: 0, Col: -1,
			Reason: fmt.Sprintf("need at least %d value column(s), have %d", n, len(t.Series))}
	}
	return nil
}

// RequireNumericX fails if some row key is not numeric.
func (t *Table) RequireNumericX() error {
	for i, r := range t.Rows {
		if math.IsNaN(r.X) {
			return &FormatError{Row: i + 1, Col: 0, Reason: fmt.Sprintf("x value %q is not numeric", r.Key)}
		}
	}
	return nil
}

// SingleSeries reports whether t has exactly one series.
func (t *Table) SingleSeries() bool { return len(t.Series) == 1 }

// DisplayLabel is the label shown for the value axis: the series label
// for a single series, empty otherwise.
func (t *Table) DisplayLabel() string {
	if t.SingleSeries() {
		return t.Series[0]
	}
	return ""
}

// Keys returns the distinct row keys in first-seen order.
func (t *Table) Keys() []string {
	seen := make(map[string]bool, len(t.Rows))
	keys := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		if seen[r.Key] {
			continue
		}
		seen[r.Key] = true
		keys = append(keys, r.Key)
	}
	return keys
}

// Column returns the values of series j over all rows.
func (t *Table) Column(j int) []float64 {
	col := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		col[i] = r.Values[j]
	}
	return col
}

// Xs returns column 0 as numbers.
func (t *Table) Xs() []float64 {
	xs := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		xs[i] = r.X
	}
	return xs
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	c := new(Table)
	if err := deepcopy.Copy(c, t); err != nil {
		// A Table holds only strings and float slices.
		panic(err)
	}
	return c
}

// Number converts a cell to a float64. Strings are parsed permissively
// (surrounding blanks are ignored).
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func keyString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
