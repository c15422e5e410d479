package sql

// parseSelect parses a SELECT statement.
// Supported forms (keywords case-insensitive):
//
//	SELECT name FROM users
//	SELECT id, name FROM users WHERE id > 1 AND name != 'Rob'
//	SELECT name FROM users WHERE id > 1 WHERE id < 5
//
// Every expression introduced by WHERE, or by an AND that follows a complete
// expression, becomes one element of SelectStmt.Where.
func (p *Parser) parseSelect() (Statement, error) {
	if err := p.expectKeyword(KeywordSelect); err != nil {
		return nil, err
	}

	columns, err := p.parseIdentifierList()
	if err != nil {
		return nil, err
	}

	if err := p.expectKeyword(KeywordFrom); err != nil {
		return nil, err
	}

	table, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	var where []Expr
	for p.isKeyword(KeywordWhere) || p.isKeyword(KeywordAnd) {
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		where = append(where, e)
	}

	return &SelectStmt{
		Columns:   columns,
		TableName: table,
		Where:     where,
	}, nil
}
