package engine

import (
	"errors"
	"fmt"

	"flatdb/internal/sql"
)

var (
	// ErrInvalidComparison is returned when two fields cannot be compared
	// with the requested operator.
	ErrInvalidComparison = errors.New("invalid comparison")

	// ErrUnexpectedState is returned when an identifier cannot be resolved
	// against the row being evaluated.
	ErrUnexpectedState = errors.New("unexpected state")

	// ErrUnexpectedExpr matches every *UnexpectedExprError.
	ErrUnexpectedExpr = errors.New("unexpected expression")

	// ErrNotStarted is returned by DBEngine methods called before Start.
	ErrNotStarted = errors.New("engine not started")
	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("engine already started")
)

// UnexpectedExprError reports an expression node of the wrong shape, for
// example a literal where a comparison was expected.
type UnexpectedExprError struct {
	Expected string // "expression" or "literal"
	Expr     sql.Expr
}

func (e *UnexpectedExprError) Error() string {
	return fmt.Sprintf("unexpected expression %s: expected %s", e.Expr, e.Expected)
}

func (e *UnexpectedExprError) Is(target error) bool { return target == ErrUnexpectedExpr }
