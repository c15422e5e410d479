package storage

import "flatdb/internal/sql"

// Evaluator decides whether a row satisfies one WHERE expression.
// The query engine implements it; tables call it once per candidate row.
type Evaluator interface {
	EvalExpr(expr sql.Expr, row sql.Row, header []sql.Column) (bool, error)
}

// Table is one named relation with a fixed header.
//
// Different implementations are possible:
//   - in-memory (memstore, for tests and scratch data)
//   - one text file per table (filestore)
type Table interface {
	Name() string

	// Header returns the table schema in column order.
	Header() []sql.Column

	// Insert validates values against the named columns (the whole header
	// when columns is nil), fills the remaining columns with defaults and
	// appends the row.
	Insert(columns []string, values []sql.Field) error

	// SelectCols projects every row onto the requested columns.
	SelectCols(columns []string) ([]sql.Row, error)

	// SelectWhere projects the rows for which ev returns true on every
	// expression in where.
	SelectWhere(columns []string, where []sql.Expr, ev Evaluator) ([]sql.Row, error)

	// SelectAll returns a copy of every stored row.
	SelectAll() ([]sql.Row, error)
}

// Catalog is a named collection of tables.
type Catalog interface {
	// Table returns the table with the given name or ErrTableNotFound.
	Table(name string) (Table, error)

	// ListTables returns the table names in sorted order.
	ListTables() ([]string, error)

	// TableSchema returns the header of the named table.
	TableSchema(name string) ([]sql.Column, error)

	// CreateTable creates a new empty table with the given header.
	CreateTable(name string, cols []sql.Column) error
}
