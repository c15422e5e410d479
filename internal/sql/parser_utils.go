package sql

import (
	"strconv"
)

// current returns the token at the cursor. Past the end it keeps returning
// EOF, so a slice without the EOF sentinel still terminates cleanly.
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) errorf(expected string) error {
	return &ParseError{Expected: expected, Found: p.current()}
}

func (p *Parser) isKeyword(k Keyword) bool {
	tok := p.current()
	return tok.Kind == TokenKeyword && tok.Keyword == k
}

func (p *Parser) expectKeyword(k Keyword) error {
	if !p.isKeyword(k) {
		return p.errorf(k.String())
	}
	p.advance()
	return nil
}

func (p *Parser) expect(kind TokenKind, what string) error {
	if p.current().Kind != kind {
		return p.errorf(what)
	}
	p.advance()
	return nil
}

func (p *Parser) parseIdentifier() (string, error) {
	tok := p.current()
	if tok.Kind != TokenIdentifier {
		return "", p.errorf("identifier")
	}
	p.advance()
	return tok.Value, nil
}

// parseIdentifierList parses: ident (COMMA ident)*
func (p *Parser) parseIdentifierList() ([]string, error) {
	first, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	names := []string{first}
	for p.current().Kind == TokenComma {
		p.advance()
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// parseExprList parses: expr (COMMA expr)*
func (p *Parser) parseExprList() ([]Expr, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	exprs := []Expr{first}
	for p.current().Kind == TokenComma {
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

// parseExpr parses: comparison ((AND|OR) comparison)*
// AND and OR bind equally and associate to the left.
func (p *Parser) parseExpr() (Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.isKeyword(KeywordAnd) || p.isKeyword(KeywordOr) {
		op := OpAnd
		if p.isKeyword(KeywordOr) {
			op = OpOr
		}
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// parseComparison parses: primary ((= | != | > | <) primary)?
func (p *Parser) parseComparison() (Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	tok := p.current()
	if tok.Kind != TokenOperator || !tok.Op.IsComparison() {
		return left, nil
	}
	p.advance()
	right, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Left: left, Op: tok.Op, Right: right}, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.current()
	switch tok.Kind {
	case TokenString:
		p.advance()
		return &StringLiteral{Value: tok.Value}, nil
	case TokenNumber:
		n, err := strconv.ParseInt(tok.Value, 10, 32)
		if err != nil {
			return nil, p.errorf("32-bit integer literal")
		}
		p.advance()
		return &NumberLiteral{Value: int32(n)}, nil
	case TokenIdentifier:
		p.advance()
		return &Identifier{Name: tok.Value}, nil
	default:
		return nil, p.errorf("literal or identifier")
	}
}
