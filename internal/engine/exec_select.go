package engine

import (
	"fmt"

	"flatdb/internal/sql"
	"flatdb/internal/storage"
)

func (e *Engine) runSelect(table storage.Table, stmt *sql.SelectStmt) (QueryResult, error) {
	var (
		rows []sql.Row
		err  error
	)
	if stmt.Where == nil {
		rows, err = table.SelectCols(stmt.Columns)
	} else {
		rows, err = table.SelectWhere(stmt.Columns, stmt.Where, e)
	}
	if err != nil {
		return QueryResult{}, fmt.Errorf("select from %s: %w", table.Name(), err)
	}

	cols := make([]string, len(stmt.Columns))
	copy(cols, stmt.Columns)
	return QueryResult{Kind: ResultRows, Columns: cols, Rows: rows}, nil
}
