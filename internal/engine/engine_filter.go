package engine

import (
	"fmt"

	"flatdb/internal/sql"
	"flatdb/internal/storage"
)

// EvalExpr reports whether row satisfies expr. expr must be a binary node:
// comparisons reduce both sides to values, AND/OR recurse into both sides.
func (e *Engine) EvalExpr(expr sql.Expr, row sql.Row, header []sql.Column) (bool, error) {
	bin, ok := expr.(*sql.BinaryExpr)
	if !ok {
		return false, &UnexpectedExprError{Expected: "expression", Expr: expr}
	}

	switch bin.Op {
	case sql.OpAnd, sql.OpOr:
		l, err := e.EvalExpr(bin.Left, row, header)
		if err != nil {
			return false, err
		}
		r, err := e.EvalExpr(bin.Right, row, header)
		if err != nil {
			return false, err
		}
		if bin.Op == sql.OpAnd {
			return l && r, nil
		}
		return l || r, nil

	default:
		l, err := e.EvalValue(bin.Left, row, header)
		if err != nil {
			return false, err
		}
		r, err := e.EvalValue(bin.Right, row, header)
		if err != nil {
			return false, err
		}
		return Compare(l, r, bin.Op)
	}
}

// EvalValue reduces a literal or identifier to a field.
func (e *Engine) EvalValue(expr sql.Expr, row sql.Row, header []sql.Column) (sql.Field, error) {
	id, ok := expr.(*sql.Identifier)
	if !ok {
		return literalField(expr)
	}

	idx := storage.ColumnIndex(header, id.Name)
	if idx == -1 {
		return sql.Field{}, fmt.Errorf("%w: column %q not in header", ErrUnexpectedState, id.Name)
	}
	if idx >= len(row) {
		return sql.Field{}, fmt.Errorf("%w: row has no value for column %q", ErrUnexpectedState, id.Name)
	}
	return row[idx], nil
}

// Compare applies a comparison operator to two fields of the same type.
// INT supports =, !=, > and <; TEXT supports = and != only.
// There is no coercion between types.
func Compare(left, right sql.Field, op sql.Operator) (bool, error) {
	if left.Type != right.Type {
		return false, fmt.Errorf("%w: %s %s %s", ErrInvalidComparison, left.Type, op, right.Type)
	}

	switch left.Type {
	case sql.TypeInt:
		switch op {
		case sql.OpEqual:
			return left.Int == right.Int, nil
		case sql.OpNotEqual:
			return left.Int != right.Int, nil
		case sql.OpGreater:
			return left.Int > right.Int, nil
		case sql.OpSmaller:
			return left.Int < right.Int, nil
		}
	case sql.TypeText:
		switch op {
		case sql.OpEqual:
			return left.Text == right.Text, nil
		case sql.OpNotEqual:
			return left.Text != right.Text, nil
		}
	}
	return false, fmt.Errorf("%w: %s %s %s", ErrInvalidComparison, left.Type, op, right.Type)
}
