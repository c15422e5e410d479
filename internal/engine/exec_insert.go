package engine

import (
	"fmt"

	"flatdb/internal/sql"
	"flatdb/internal/storage"
)

// runInsert converts VALUES to fields and hands them to the table, which
// does all column and type checking.
func (e *Engine) runInsert(table storage.Table, stmt *sql.InsertStmt) (QueryResult, error) {
	values := make([]sql.Field, len(stmt.Values))
	for i, v := range stmt.Values {
		f, err := literalField(v)
		if err != nil {
			return QueryResult{}, err
		}
		values[i] = f
	}

	if err := table.Insert(stmt.Columns, values); err != nil {
		return QueryResult{}, fmt.Errorf("insert into %s: %w", table.Name(), err)
	}
	return QueryResult{Kind: ResultEmpty}, nil
}

func literalField(expr sql.Expr) (sql.Field, error) {
	switch x := expr.(type) {
	case *sql.StringLiteral:
		return sql.TextField(x.Value), nil
	case *sql.NumberLiteral:
		return sql.IntField(x.Value), nil
	default:
		return sql.Field{}, &UnexpectedExprError{Expected: "literal", Expr: expr}
	}
}
