package storage

import (
	"errors"
	"fmt"
	"strings"

	"flatdb/internal/sql"
)

var (
	ErrColumnNotFound       = errors.New("column not found")
	ErrMalformedInsertInput = errors.New("malformed insert input")
	ErrMistypedInsertInput  = errors.New("mistyped insert input")
	ErrGenericLoading       = errors.New("error loading table")
	ErrInvalidSchema        = errors.New("invalid table schema")
	ErrTableNotFound        = errors.New("table not found")
	ErrTableExists          = errors.New("table already exists")
)

// ColumnNotFoundError lists the requested column names missing from a header.
type ColumnNotFoundError struct {
	Columns []string
}

func (e *ColumnNotFoundError) Error() string {
	if len(e.Columns) == 0 {
		return "no columns requested"
	}
	return fmt.Sprintf("columns '%s' not found", strings.Join(e.Columns, ", "))
}

func (e *ColumnNotFoundError) Is(target error) bool { return target == ErrColumnNotFound }

// MistypedInsertError reports a value whose type differs from its column.
type MistypedInsertError struct {
	Column   string
	Value    sql.Field
	Expected sql.DataType
}

func (e *MistypedInsertError) Error() string {
	return fmt.Sprintf("wrong input type for column %q: got %s %q, expected %s",
		e.Column, e.Value.Type, e.Value.String(), e.Expected)
}

func (e *MistypedInsertError) Is(target error) bool { return target == ErrMistypedInsertInput }

// FileError wraps an I/O failure on a table file.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("table file %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
