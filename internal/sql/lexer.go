package sql

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

var keywords = []Keyword{
	KeywordSelect,
	KeywordFrom,
	KeywordInsert,
	KeywordInto,
	KeywordValues,
	KeywordWhere,
	KeywordAnd,
	KeywordOr,
	KeywordCreate,
	KeywordTable,
}

// Lexer turns query text into tokens in a single left-to-right pass.
type Lexer struct {
	input string
	pos   int  // byte offset of ch
	ch    rune // current rune, 0 at end of input
	width int
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.decode()
	return l
}

// Lex tokenizes input. The result always ends with an EOF token.
func Lex(input string) ([]Token, error) {
	return NewLexer(input).Lex()
}

func (l *Lexer) decode() {
	if l.pos >= len(l.input) {
		l.ch, l.width = 0, 0
		return
	}
	l.ch, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
}

func (l *Lexer) advance() {
	l.pos += l.width
	l.decode()
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// Lex consumes the remaining input.
func (l *Lexer) Lex() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() (Token, error) {
	for !l.atEOF() && (l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r') {
		l.advance()
	}
	if l.atEOF() {
		return Token{Kind: TokenEOF}, nil
	}

	start := l.pos
	switch l.ch {
	case '(':
		l.advance()
		return Token{Kind: TokenLeftParen}, nil
	case ')':
		l.advance()
		return Token{Kind: TokenRightParen}, nil
	case ',':
		l.advance()
		return Token{Kind: TokenComma}, nil
	case ';':
		l.advance()
		return Token{Kind: TokenSemicolon}, nil
	case '=':
		l.advance()
		return operatorToken(OpEqual), nil
	case '<':
		l.advance()
		return operatorToken(OpSmaller), nil
	case '>':
		l.advance()
		return operatorToken(OpGreater), nil
	case '!':
		l.advance()
		if !l.atEOF() && l.ch == '=' {
			l.advance()
			return operatorToken(OpNotEqual), nil
		}
		return Token{}, &LexError{Pos: start, Char: '!', Msg: "expected '=' after '!'"}
	case '\'':
		return l.readString(start)
	}

	if isWordRune(l.ch) {
		return l.readWord(), nil
	}
	return Token{}, &LexError{Pos: start, Char: l.ch, Msg: "unexpected character"}
}

// readString reads a single-quoted literal. The content is taken verbatim;
// there is no escape syntax.
func (l *Lexer) readString(start int) (Token, error) {
	l.advance()
	contentStart := l.pos
	for !l.atEOF() && l.ch != '\'' {
		l.advance()
	}
	if l.atEOF() {
		return Token{}, &LexError{Pos: start, Msg: "unterminated string literal"}
	}
	value := l.input[contentStart:l.pos]
	l.advance()
	return Token{Kind: TokenString, Value: value}, nil
}

func (l *Lexer) readWord() Token {
	start := l.pos
	allDigits := true
	for !l.atEOF() && isWordRune(l.ch) {
		if l.ch < '0' || l.ch > '9' {
			allDigits = false
		}
		l.advance()
	}
	word := l.input[start:l.pos]

	upper := strings.ToUpper(word)
	if i := slices.IndexFunc(keywords, func(k Keyword) bool { return k.String() == upper }); i >= 0 {
		return keywordToken(keywords[i])
	}
	if allDigits {
		return Token{Kind: TokenNumber, Value: word}
	}
	return Token{Kind: TokenIdentifier, Value: word}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
