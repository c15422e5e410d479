package memstore

import (
	"fmt"
	"sort"

	"flatdb/internal/sql"
	"flatdb/internal/storage"
)

// Table is an in-memory table. It follows the same insert and select rules
// as the file-backed table but never touches disk.
type Table struct {
	name string
	cols []sql.Column // column definitions
	rows []sql.Row    // stored rows
}

// NewTable creates an empty in-memory table.
func NewTable(name string, cols []sql.Column) *Table {
	return &Table{
		name: name,
		cols: append([]sql.Column(nil), cols...),
		rows: make([]sql.Row, 0),
	}
}

func (t *Table) Name() string { return t.name }

func (t *Table) Header() []sql.Column {
	return append([]sql.Column(nil), t.cols...)
}

// Insert adds a row into the table.
func (t *Table) Insert(columns []string, values []sql.Field) error {
	row, err := storage.BuildRow(t.cols, columns, values)
	if err != nil {
		return err
	}
	t.rows = append(t.rows, row)
	return nil
}

func (t *Table) SelectCols(columns []string) ([]sql.Row, error) {
	return storage.SelectRows(t.cols, t.rows, columns, nil, nil)
}

func (t *Table) SelectWhere(columns []string, where []sql.Expr, ev storage.Evaluator) ([]sql.Row, error) {
	return storage.SelectRows(t.cols, t.rows, columns, where, ev)
}

// SelectAll returns a deep copy to prevent callers from mutating stored data.
func (t *Table) SelectAll() ([]sql.Row, error) {
	return storage.CopyRows(t.rows), nil
}

// Catalog is a set of in-memory tables keyed by name.
type Catalog struct {
	tables map[string]*Table
}

// New creates a new in-memory catalog.
func New() *Catalog {
	return &Catalog{
		tables: make(map[string]*Table),
	}
}

// Table returns the named table.
func (c *Catalog) Table(name string) (storage.Table, error) {
	t, ok := c.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrTableNotFound, name)
	}
	return t, nil
}

// ListTables returns the names of all tables, sorted.
func (c *Catalog) ListTables() ([]string, error) {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// TableSchema returns the column definitions for a table.
func (c *Catalog) TableSchema(name string) ([]sql.Column, error) {
	t, ok := c.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrTableNotFound, name)
	}
	return t.Header(), nil
}

// CreateTable creates a new empty table in memory. Like the file store it
// requires at least two columns.
func (c *Catalog) CreateTable(name string, cols []sql.Column) error {
	if _, exists := c.tables[name]; exists {
		return fmt.Errorf("%w: %s", storage.ErrTableExists, name)
	}
	if len(cols) < 2 {
		return fmt.Errorf("%w: table %s needs at least 2 columns", storage.ErrInvalidSchema, name)
	}
	c.tables[name] = NewTable(name, cols)
	return nil
}
