package sql

import "fmt"

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenKeyword
	TokenIdentifier
	TokenString
	TokenNumber
	TokenOperator
	TokenComma
	TokenSemicolon
	TokenLeftParen
	TokenRightParen
)

// Keyword is one of the reserved words of the query language.
type Keyword int

const (
	KeywordSelect Keyword = iota + 1
	KeywordFrom
	KeywordInsert
	KeywordInto
	KeywordValues
	KeywordWhere
	KeywordAnd
	KeywordOr
	KeywordCreate
	KeywordTable
)

var keywordNames = map[Keyword]string{
	KeywordSelect: "SELECT",
	KeywordFrom:   "FROM",
	KeywordInsert: "INSERT",
	KeywordInto:   "INTO",
	KeywordValues: "VALUES",
	KeywordWhere:  "WHERE",
	KeywordAnd:    "AND",
	KeywordOr:     "OR",
	KeywordCreate: "CREATE",
	KeywordTable:  "TABLE",
}

func (k Keyword) String() string {
	if s, ok := keywordNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Keyword(%d)", int(k))
}

// Operator is a comparison or logical operator.
type Operator int

const (
	OpEqual Operator = iota + 1
	OpNotEqual
	OpGreater
	OpSmaller
	OpAnd
	OpOr
)

func (o Operator) String() string {
	switch o {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpGreater:
		return ">"
	case OpSmaller:
		return "<"
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// IsComparison reports whether o compares two values.
func (o Operator) IsComparison() bool {
	return o == OpEqual || o == OpNotEqual || o == OpGreater || o == OpSmaller
}

// Token is one lexical unit. Keyword is set only for TokenKeyword, Op only
// for TokenOperator; Value carries identifier names, string contents and
// number digits.
type Token struct {
	Kind    TokenKind
	Keyword Keyword
	Op      Operator
	Value   string
}

func keywordToken(k Keyword) Token   { return Token{Kind: TokenKeyword, Keyword: k} }
func operatorToken(o Operator) Token { return Token{Kind: TokenOperator, Op: o} }

// String renders the token for error messages.
func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenKeyword:
		return t.Keyword.String()
	case TokenIdentifier:
		return fmt.Sprintf("identifier %q", t.Value)
	case TokenString:
		return fmt.Sprintf("string '%s'", t.Value)
	case TokenNumber:
		return fmt.Sprintf("number %s", t.Value)
	case TokenOperator:
		return fmt.Sprintf("operator %s", t.Op)
	case TokenComma:
		return "','"
	case TokenSemicolon:
		return "';'"
	case TokenLeftParen:
		return "'('"
	case TokenRightParen:
		return "')'"
	default:
		return fmt.Sprintf("token(%d)", int(t.Kind))
	}
}
