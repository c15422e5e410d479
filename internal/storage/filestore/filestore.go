package filestore

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"flatdb/internal/sql"
	"flatdb/internal/storage"
)

// Options configures a Database or a single Table.
type Options struct {
	// Logger receives load and insert events. Nil discards them.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// minColumns is the smallest header a table file can hold rows for: a data
// line with a single field is read as a blank separator.
const minColumns = 2

// Database is a directory of table files, one file per table.
// It is meant for use from a single goroutine.
type Database struct {
	dir    string
	opts   Options
	log    *slog.Logger
	tables map[string]*Table
}

// Open loads every regular file in dir as a table. Subdirectories and
// dotfiles are skipped. Any table that fails to load fails the whole open.
func Open(dir string, opts Options) (*Database, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &storage.FileError{Op: "list", Path: dir, Err: err}
	}

	db := &Database{
		dir:    dir,
		opts:   opts,
		log:    opts.logger(),
		tables: make(map[string]*Table),
	}

	for _, ent := range entries {
		if ent.IsDir() || strings.HasPrefix(ent.Name(), ".") {
			continue
		}
		t, err := OpenTable(filepath.Join(dir, ent.Name()), opts)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		db.tables[t.Name()] = t
	}

	db.log.Info("database opened", "dir", dir, "tables", len(db.tables))
	return db, nil
}

func (db *Database) tablePath(name string) string {
	// very simple mapping: "<dir>/<name>"
	return filepath.Join(db.dir, name)
}

// Dir returns the database directory.
func (db *Database) Dir() string { return db.dir }

// Table returns the loaded table with the given name.
func (db *Database) Table(name string) (storage.Table, error) {
	t, ok := db.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrTableNotFound, name)
	}
	return t, nil
}

// ListTables returns the names of all loaded tables, sorted.
func (db *Database) ListTables() ([]string, error) {
	names := make([]string, 0, len(db.tables))
	for name := range db.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// TableSchema returns the header of the given table.
func (db *Database) TableSchema(name string) ([]sql.Column, error) {
	t, ok := db.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrTableNotFound, name)
	}
	return t.Header(), nil
}

// CreateTable creates a new table file with the given schema and no rows.
func (db *Database) CreateTable(name string, cols []sql.Column) error {
	if name == "" || strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: invalid table name %q", storage.ErrInvalidSchema, name)
	}
	if len(cols) < minColumns {
		return fmt.Errorf("%w: table %s needs at least %d columns", storage.ErrInvalidSchema, name, minColumns)
	}
	if _, exists := db.tables[name]; exists {
		return fmt.Errorf("%w: %s", storage.ErrTableExists, name)
	}

	var buf bytes.Buffer
	if err := encodeTable(&buf, cols, nil); err != nil {
		return fmt.Errorf("filestore: encode header: %w", err)
	}

	path := db.tablePath(name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", storage.ErrTableExists, name)
		}
		return &storage.FileError{Op: "create", Path: path, Err: err}
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return &storage.FileError{Op: "write header", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &storage.FileError{Op: "close", Path: path, Err: err}
	}

	t, err := OpenTable(path, db.opts)
	if err != nil {
		return err
	}
	db.tables[name] = t

	db.log.Info("table created", "table", name, "columns", len(cols))
	return nil
}

// Close closes every table file. It returns the first error encountered.
func (db *Database) Close() error {
	var first error
	for _, t := range db.tables {
		if err := t.Close(); err != nil && first == nil {
			first = err
		}
	}
	db.tables = map[string]*Table{}
	return first
}
