package sql

// Parser is a recursive-descent parser over a token slice.
// It parses exactly one statement and stops at the first mismatch.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a parser positioned at the first token.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse lexes and parses a single SQL statement string into an AST Statement.
func Parse(query string) (Statement, error) {
	tokens, err := Lex(query)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses a single statement from tokens produced by Lex.
func ParseTokens(tokens []Token) (Statement, error) {
	return NewParser(tokens).ParseStatement()
}

// ParseStatement parses one statement and an optional trailing semicolon,
// and requires the end of input after it.
func (p *Parser) ParseStatement() (Statement, error) {
	var (
		stmt Statement
		err  error
	)

	tok := p.current()
	switch {
	case tok.Kind == TokenKeyword && tok.Keyword == KeywordSelect:
		stmt, err = p.parseSelect()
	case tok.Kind == TokenKeyword && tok.Keyword == KeywordInsert:
		stmt, err = p.parseInsert()
	case tok.Kind == TokenKeyword && tok.Keyword == KeywordCreate:
		stmt, err = p.parseCreateTable()
	default:
		return nil, p.errorf("SELECT, INSERT or CREATE")
	}
	if err != nil {
		return nil, err
	}

	if p.current().Kind == TokenSemicolon {
		p.advance()
	}
	if p.current().Kind != TokenEOF {
		return nil, p.errorf("end of statement")
	}
	return stmt, nil
}
