package filestore

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"flatdb/internal/sql"
	"flatdb/internal/storage"
)

// Table is a table backed by one text file.
//
// Layout:
//
//	id: INT, name: TEXT     <- header, name: TYPE pairs
//	1, Alice                <- one line per row
//	2, Rob
//	                        <- trailing blank line
//
// Rows are held in memory. Every successful Insert truncates the file and
// rewrites header and rows. The rewrite is not atomic: a crash between the
// truncate and the write loses the table contents.
type Table struct {
	name string
	path string
	file *os.File
	log  *slog.Logger

	header []sql.Column
	rows   []sql.Row
}

// OpenTable opens and loads the table file at path. The table name is the
// file base name.
func OpenTable(path string, opts Options) (*Table, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, &storage.FileError{Op: "open", Path: path, Err: err}
	}

	t := &Table{
		name: tableName(path),
		path: path,
		file: f,
		log:  opts.logger(),
	}
	if err := t.load(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("filestore: load %s: %w", path, err)
	}

	if len(t.header) < minColumns {
		t.log.Warn("table has a single column; its rows cannot be read back", "table", t.name, "path", path)
	}
	t.log.Debug("table loaded", "table", t.name, "columns", len(t.header), "rows", len(t.rows))
	return t, nil
}

func tableName(path string) string {
	return filepath.Base(path)
}

func (t *Table) load() error {
	if _, err := t.file.Seek(0, io.SeekStart); err != nil {
		return &storage.FileError{Op: "seek", Path: t.path, Err: err}
	}
	data, err := io.ReadAll(t.file)
	if err != nil {
		return &storage.FileError{Op: "read", Path: t.path, Err: err}
	}

	header, rows, err := decodeTable(string(data))
	if err != nil {
		return err
	}
	t.header = header
	t.rows = rows
	return nil
}

func (t *Table) Name() string { return t.name }

// Path returns the backing file path.
func (t *Table) Path() string { return t.path }

func (t *Table) Header() []sql.Column {
	return append([]sql.Column(nil), t.header...)
}

// Insert validates and appends one row, then rewrites the file.
// If the rewrite fails the row is dropped from memory again, so the
// in-memory rows never run ahead of what was handed to the file.
func (t *Table) Insert(columns []string, values []sql.Field) error {
	row, err := storage.BuildRow(t.header, columns, values)
	if err != nil {
		return err
	}

	n := len(t.rows)
	t.rows = append(t.rows, row)
	if err := t.persist(); err != nil {
		t.rows = t.rows[:n]
		return err
	}

	t.log.Debug("row inserted", "table", t.name, "rows", len(t.rows))
	return nil
}

func (t *Table) SelectCols(columns []string) ([]sql.Row, error) {
	return storage.SelectRows(t.header, t.rows, columns, nil, nil)
}

func (t *Table) SelectWhere(columns []string, where []sql.Expr, ev storage.Evaluator) ([]sql.Row, error) {
	return storage.SelectRows(t.header, t.rows, columns, where, ev)
}

func (t *Table) SelectAll() ([]sql.Row, error) {
	return storage.CopyRows(t.rows), nil
}

// persist truncates the backing file and writes header and rows.
func (t *Table) persist() error {
	var buf bytes.Buffer
	if err := encodeTable(&buf, t.header, t.rows); err != nil {
		return &storage.FileError{Op: "encode", Path: t.path, Err: err}
	}

	if err := t.file.Truncate(0); err != nil {
		return &storage.FileError{Op: "truncate", Path: t.path, Err: err}
	}
	if _, err := t.file.Seek(0, io.SeekStart); err != nil {
		return &storage.FileError{Op: "seek", Path: t.path, Err: err}
	}
	if _, err := t.file.Write(buf.Bytes()); err != nil {
		return &storage.FileError{Op: "write", Path: t.path, Err: err}
	}
	if err := t.file.Sync(); err != nil {
		return &storage.FileError{Op: "sync", Path: t.path, Err: err}
	}
	return nil
}

// Close releases the backing file.
func (t *Table) Close() error {
	if err := t.file.Close(); err != nil {
		return &storage.FileError{Op: "close", Path: t.path, Err: err}
	}
	return nil
}
