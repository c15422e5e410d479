package sql

import (
	"fmt"
	"strconv"
)

// Statement is the common interface for all SQL statements.
type Statement interface {
	stmtNode()
	// Table returns the name of the table the statement targets.
	Table() string
}

// InsertStmt represents a parsed INSERT statement.
type InsertStmt struct {
	TableName string
	Columns   []string // nil when the statement has no column list
	Values    []Expr
}

// SelectStmt represents a parsed SELECT statement.
//
// Where holds every WHERE/AND-introduced expression; a row matches only if
// all of them are true. It is nil for a SELECT without a WHERE clause.
type SelectStmt struct {
	Columns   []string
	TableName string
	Where     []Expr
}

// CreateTableStmt represents a parsed CREATE TABLE statement.
type CreateTableStmt struct {
	TableName string
	Columns   []Column
}

func (*InsertStmt) stmtNode()      {}
func (*SelectStmt) stmtNode()      {}
func (*CreateTableStmt) stmtNode() {}

func (s *InsertStmt) Table() string      { return s.TableName }
func (s *SelectStmt) Table() string      { return s.TableName }
func (s *CreateTableStmt) Table() string { return s.TableName }

// Expr is a node of a WHERE or VALUES expression tree.
type Expr interface {
	exprNode()
	String() string
}

// BinaryExpr applies Op to two sub-expressions.
type BinaryExpr struct {
	Left  Expr
	Op    Operator
	Right Expr
}

// Identifier references a column by name.
type Identifier struct {
	Name string
}

// StringLiteral is a quoted text constant.
type StringLiteral struct {
	Value string
}

// NumberLiteral is an integer constant.
type NumberLiteral struct {
	Value int32
}

func (*BinaryExpr) exprNode()    {}
func (*Identifier) exprNode()    {}
func (*StringLiteral) exprNode() {}
func (*NumberLiteral) exprNode() {}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

func (e *Identifier) String() string    { return e.Name }
func (e *StringLiteral) String() string { return "'" + e.Value + "'" }
func (e *NumberLiteral) String() string { return strconv.FormatInt(int64(e.Value), 10) }
