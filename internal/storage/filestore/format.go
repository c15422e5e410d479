package filestore

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"flatdb/internal/sql"
	"flatdb/internal/storage"
)

const (
	fieldSep      = ", "
	typeSep       = ": "
	lineSep       = "\n"
	splitFieldSep = ","
	splitTypeSep  = ":"
)

// writeHeader writes the table schema as the first line of the file:
//
//	id: INT, name: TEXT
func writeHeader(w io.Writer, cols []sql.Column) error {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c.Name + typeSep + c.Type.String()
	}
	_, err := io.WriteString(w, strings.Join(parts, fieldSep)+lineSep)
	return err
}

// readHeader parses the first line of a table file.
// Any structural problem makes the whole table unusable and is reported as
// storage.ErrInvalidSchema.
func readHeader(line string) ([]sql.Column, error) {
	if strings.TrimSpace(line) == "" {
		return nil, fmt.Errorf("%w: empty header line", storage.ErrInvalidSchema)
	}

	elems := strings.Split(line, splitFieldSep)
	cols := make([]sql.Column, 0, len(elems))
	for _, elem := range elems {
		name, typ, ok := strings.Cut(elem, splitTypeSep)
		if !ok {
			return nil, fmt.Errorf("%w: no type for column %q", storage.ErrInvalidSchema, strings.TrimSpace(elem))
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty column name in %q", storage.ErrInvalidSchema, elem)
		}
		dt, err := sql.ParseDataType(strings.TrimSpace(typ))
		if err != nil {
			return nil, fmt.Errorf("%w: column %q: %v", storage.ErrInvalidSchema, name, err)
		}
		cols = append(cols, sql.Column{Name: name, Type: dt})
	}
	return cols, nil
}

// writeRow encodes a row as one line of comma-space separated values.
func writeRow(w io.Writer, row sql.Row) error {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = v.String()
	}
	_, err := io.WriteString(w, strings.Join(parts, fieldSep)+lineSep)
	return err
}

// readRow decodes one data line against the header. ok is false for lines
// that split into at most one field; those act as blank separators.
// A row with fewer fields than the header is returned as-is.
func readRow(line string, header []sql.Column) (row sql.Row, ok bool, err error) {
	parts := strings.Split(line, splitFieldSep)
	if len(parts) <= 1 {
		return nil, false, nil
	}
	if len(parts) > len(header) {
		return nil, false, fmt.Errorf("%d fields for %d columns", len(parts), len(header))
	}

	row = make(sql.Row, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		switch header[i].Type {
		case sql.TypeInt:
			n, err := strconv.ParseInt(p, 10, 32)
			if err != nil {
				return nil, false, fmt.Errorf("column %q: invalid INT %q", header[i].Name, p)
			}
			row[i] = sql.IntField(int32(n))
		default:
			row[i] = sql.TextField(p)
		}
	}
	return row, true, nil
}

// decodeTable parses a whole table file.
func decodeTable(data string) ([]sql.Column, []sql.Row, error) {
	lines := strings.Split(data, lineSep)

	header, err := readHeader(lines[0])
	if err != nil {
		return nil, nil, err
	}

	rows := make([]sql.Row, 0, len(lines)-1)
	for i, line := range lines[1:] {
		row, ok, err := readRow(line, header)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", storage.ErrGenericLoading, i+2, err)
		}
		if ok {
			rows = append(rows, row)
		}
	}
	return header, rows, nil
}

// encodeTable writes the header, every row and a trailing blank line.
func encodeTable(w io.Writer, header []sql.Column, rows []sql.Row) error {
	if err := writeHeader(w, header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, lineSep)
	return err
}
