package sql

import "strings"

// parseCreateTable parses a CREATE TABLE statement:
//
//	CREATE TABLE accounts (id INT, owner TEXT);
//
// Type names are case-insensitive. INTEGER is accepted for INT and
// STRING or VARCHAR for TEXT.
func (p *Parser) parseCreateTable() (Statement, error) {
	if err := p.expectKeyword(KeywordCreate); err != nil {
		return nil, err
	}
	if err := p.expectKeyword(KeywordTable); err != nil {
		return nil, err
	}

	table, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if err := p.expect(TokenLeftParen, "'('"); err != nil {
		return nil, err
	}

	var columns []Column
	for {
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)

		if p.current().Kind != TokenComma {
			break
		}
		p.advance()
	}

	if err := p.expect(TokenRightParen, "')'"); err != nil {
		return nil, err
	}

	return &CreateTableStmt{
		TableName: table,
		Columns:   columns,
	}, nil
}

// parseColumnDef parses one "name TYPE" pair.
func (p *Parser) parseColumnDef() (Column, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return Column{}, err
	}

	tok := p.current()
	if tok.Kind != TokenIdentifier {
		return Column{}, p.errorf("column type")
	}

	var dt DataType
	switch strings.ToUpper(tok.Value) {
	case "INT", "INTEGER":
		dt = TypeInt
	case "TEXT", "STRING", "VARCHAR":
		dt = TypeText
	default:
		return Column{}, p.errorf("column type")
	}
	p.advance()

	return Column{Name: name, Type: dt}, nil
}
