package sql

import (
	"errors"
	"fmt"
)

var (
	// ErrLex matches every *LexError.
	ErrLex = errors.New("lex error")
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("parse error")
)

// LexError reports input the lexer could not turn into a token.
type LexError struct {
	Pos  int  // byte offset into the input
	Char rune // offending character, 0 at end of input
	Msg  string
}

func (e *LexError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("lex error at position %d: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("lex error at position %d (%q): %s", e.Pos, e.Char, e.Msg)
}

func (e *LexError) Is(target error) bool { return target == ErrLex }

// ParseError reports the first token that does not fit the grammar.
type ParseError struct {
	Expected string
	Found    Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: expected %s, found %s", e.Expected, e.Found)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }
