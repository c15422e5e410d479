package sql

// parseInsert parses an INSERT INTO ... VALUES (...) statement.
// Example supported syntax:
//
//	INSERT INTO users (id, name) VALUES (1, 'Alice');
//	INSERT INTO users VALUES (1, 'Alice');
//
// Without a column list, InsertStmt.Columns stays nil and the values are
// matched to the table header in schema order.
func (p *Parser) parseInsert() (Statement, error) {
	if err := p.expectKeyword(KeywordInsert); err != nil {
		return nil, err
	}
	if err := p.expectKeyword(KeywordInto); err != nil {
		return nil, err
	}

	table, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	var columns []string
	if p.current().Kind == TokenLeftParen {
		p.advance()
		columns, err = p.parseIdentifierList()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRightParen, "')'"); err != nil {
			return nil, err
		}
	}

	if err := p.expectKeyword(KeywordValues); err != nil {
		return nil, err
	}
	if err := p.expect(TokenLeftParen, "'('"); err != nil {
		return nil, err
	}
	values, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRightParen, "')'"); err != nil {
		return nil, err
	}

	return &InsertStmt{
		TableName: table,
		Columns:   columns,
		Values:    values,
	}, nil
}
