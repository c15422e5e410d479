package engine

import (
	"fmt"

	"flatdb/internal/sql"
	"flatdb/internal/storage"
)

// ResultKind tells rows-producing statements apart from the rest.
type ResultKind int

const (
	// ResultEmpty is returned by INSERT.
	ResultEmpty ResultKind = iota
	// ResultRows is returned by SELECT.
	ResultRows
)

func (k ResultKind) String() string {
	if k == ResultRows {
		return "rows"
	}
	return "empty"
}

// QueryResult is the outcome of running one statement.
type QueryResult struct {
	Kind    ResultKind
	Columns []string // projected column names, in output order
	Rows    []sql.Row
}

// Engine runs a single parsed statement against a table.
// It also implements storage.Evaluator so tables can call back into it
// while filtering.
type Engine struct {
	stmt sql.Statement
}

var _ storage.Evaluator = (*Engine)(nil)

// New returns an engine for stmt.
func New(stmt sql.Statement) *Engine {
	return &Engine{stmt: stmt}
}

// Statement returns the statement the engine was built for.
func (e *Engine) Statement() sql.Statement { return e.stmt }

// Run executes the statement against table.
func (e *Engine) Run(table storage.Table) (QueryResult, error) {
	switch s := e.stmt.(type) {
	case *sql.InsertStmt:
		return e.runInsert(table, s)

	case *sql.SelectStmt:
		return e.runSelect(table, s)

	default:
		return QueryResult{}, fmt.Errorf("unsupported statement type %T", e.stmt)
	}
}
