package storage

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"flatdb/internal/sql"
)

// ColumnIndex returns the header position of name, or -1.
func ColumnIndex(header []sql.Column, name string) int {
	return slices.IndexFunc(header, func(c sql.Column) bool { return c.Name == name })
}

// BuildRow turns an INSERT's column list and values into a full-width row in
// header order. A nil columns slice means every header column in order.
// Columns that are not named receive sql.DefaultField of their type.
func BuildRow(header []sql.Column, columns []string, values []sql.Field) (sql.Row, error) {
	if columns == nil {
		columns = sql.ColumnNames(header)
	}

	out := make(sql.Row, len(header))
	seen := make([]bool, len(header))

	for i, name := range columns {
		pos := ColumnIndex(header, name)
		if pos == -1 {
			return nil, &ColumnNotFoundError{Columns: unresolved(header, columns)}
		}
		if i >= len(values) {
			return nil, fmt.Errorf("%w: no value for column %q", ErrMalformedInsertInput, name)
		}
		if seen[pos] {
			return nil, fmt.Errorf("%w: duplicate column %q in column list", ErrMalformedInsertInput, name)
		}

		v := values[i]
		if v.Type != header[pos].Type {
			return nil, &MistypedInsertError{Column: name, Value: v, Expected: header[pos].Type}
		}
		if v.Type == sql.TypeText {
			if err := checkText(v.Text); err != nil {
				return nil, fmt.Errorf("%w: column %q: %v", ErrMalformedInsertInput, name, err)
			}
		}
		out[pos] = v
		seen[pos] = true
	}

	if len(values) > len(columns) {
		return nil, fmt.Errorf("%w: %d values for %d columns", ErrMalformedInsertInput, len(values), len(columns))
	}

	for i, s := range seen {
		if !s {
			out[i] = sql.DefaultField(header[i].Type)
		}
	}
	return out, nil
}

// checkText rejects TEXT values that would not read back unchanged from a
// table file: rows are split on commas and lines, and tokens are trimmed.
func checkText(s string) error {
	if strings.ContainsAny(s, ",\n\r") {
		return fmt.Errorf("text %q contains a comma or line break", s)
	}
	if strings.TrimSpace(s) != s {
		return fmt.Errorf("text %q has leading or trailing whitespace", s)
	}
	return nil
}

// ResolveColumns maps every requested name to its header position.
// Resolution is all-or-nothing: one unknown name fails the whole request.
func ResolveColumns(header []sql.Column, requested []string) ([]int, error) {
	if len(requested) == 0 {
		return nil, &ColumnNotFoundError{}
	}
	if missing := unresolved(header, requested); len(missing) > 0 {
		return nil, &ColumnNotFoundError{Columns: missing}
	}

	idx := make([]int, len(requested))
	for i, name := range requested {
		idx[i] = ColumnIndex(header, name)
	}
	return idx, nil
}

// SelectRows projects rows onto the requested columns, keeping only rows for
// which every expression in where evaluates to true. A nil where keeps every
// row. Rows too short to hold the highest requested position are skipped.
// The first evaluation error aborts the selection.
func SelectRows(header []sql.Column, rows []sql.Row, requested []string, where []sql.Expr, ev Evaluator) ([]sql.Row, error) {
	idx, err := ResolveColumns(header, requested)
	if err != nil {
		return nil, err
	}
	maxIdx := slices.Max(idx)

	out := make([]sql.Row, 0, len(rows))
	for _, row := range rows {
		if len(row) < maxIdx+1 {
			continue
		}

		ok, err := matchAll(where, row, header, ev)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		proj := make(sql.Row, len(idx))
		for i, pos := range idx {
			proj[i] = row[pos]
		}
		out = append(out, proj)
	}
	return out, nil
}

func matchAll(where []sql.Expr, row sql.Row, header []sql.Column, ev Evaluator) (bool, error) {
	for _, expr := range where {
		ok, err := ev.EvalExpr(expr, row, header)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// CopyRows returns a deep copy so callers cannot mutate stored data.
func CopyRows(rows []sql.Row) []sql.Row {
	out := make([]sql.Row, len(rows))
	for i, r := range rows {
		out[i] = slices.Clone(r)
	}
	return out
}

func unresolved(header []sql.Column, names []string) []string {
	var missing []string
	for _, name := range names {
		if ColumnIndex(header, name) == -1 {
			missing = append(missing, name)
		}
	}
	return missing
}
