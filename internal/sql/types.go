package sql

import (
	"fmt"
	"strconv"
)

// DataType represents the logical type of a value in a column.
type DataType int

const (
	TypeText DataType = iota
	TypeInt
)

// String returns the name used for the type in table file headers.
func (t DataType) String() string {
	switch t {
	case TypeText:
		return "TEXT"
	case TypeInt:
		return "INT"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// ParseDataType maps a header type token to a DataType.
// Only the exact upper-case names written by String are accepted.
func ParseDataType(s string) (DataType, error) {
	switch s {
	case "TEXT":
		return TypeText, nil
	case "INT":
		return TypeInt, nil
	default:
		return 0, fmt.Errorf("unknown column type %q", s)
	}
}

// Field represents a single cell in a table (one column in one row).
// Only the member matching Type should be read; the other one stays at its
// zero value so two Fields can be compared with ==.
type Field struct {
	Type DataType

	Int  int32  // for TypeInt
	Text string // for TypeText
}

// TextField returns a TEXT field.
func TextField(s string) Field {
	return Field{Type: TypeText, Text: s}
}

// IntField returns an INT field.
func IntField(n int32) Field {
	return Field{Type: TypeInt, Int: n}
}

// DefaultField returns the value stored for a column left out of an INSERT.
func DefaultField(t DataType) Field {
	if t == TypeInt {
		return IntField(0)
	}
	return TextField("")
}

// String formats the field the way it is written to a table file.
func (f Field) String() string {
	switch f.Type {
	case TypeInt:
		return strconv.FormatInt(int64(f.Int), 10)
	default:
		return f.Text
	}
}

// Row represents one record in a table: one Field per header column,
// in header order.
type Row []Field

// Column describes metadata for a single column in a table.
type Column struct {
	Name string
	Type DataType
}

// ColumnNames returns the names of cols in order.
func ColumnNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}
