package parser

import (
	"github.com/zinclang/zinc/internal/ast"
	"github.com/zinclang/zinc/internal/diagnostics"
	"github.com/zinclang/zinc/internal/lexer"
	"github.com/zinclang/zinc/internal/token"
)

type Parser struct {
	l        *lexer.Lexer
	curToken token.Token
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.l.NextToken()
}

// ParseProgram collects successive top-level nodes under a PROGRAM node
// until the input is exhausted. The first malformed node aborts the parse.
func (p *Parser) ParseProgram() (*ast.Node, error) {
	program := ast.NewProgram()
	for p.curToken.Type != token.EOF {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		program.Children = append(program.Children, node)
	}
	return program, nil
}

func (p *Parser) parseNode() (*ast.Node, error) {
	switch p.curToken.Type {
	case token.INT:
		node := ast.NewInt(p.curToken.Literal.(int64))
		p.nextToken()
		return node, nil
	case token.STRING:
		node := ast.NewString(p.curToken.Literal.(string))
		p.nextToken()
		return node, nil
	case token.NAME:
		node := ast.NewName(p.curToken.Lexeme)
		p.nextToken()
		return node, nil
	case token.LBRACKET:
		return p.parseList()
	case token.RBRACKET:
		// a closing bracket with no open list
		return nil, diagnostics.NewParseError(p.curToken.Line, "unexpected character ']'")
	case token.ILLEGAL:
		return nil, diagnostics.NewParseError(p.curToken.Line, "%s", p.curToken.Literal)
	}
	return nil, diagnostics.NewParseError(p.curToken.Line, "unexpected token '%s'", p.curToken.Lexeme)
}

func (p *Parser) parseList() (*ast.Node, error) {
	p.nextToken() // consume [

	list := ast.NewList()
	for p.curToken.Type != token.RBRACKET {
		if p.curToken.Type == token.EOF {
			return nil, diagnostics.NewParseError(p.curToken.Line, "expected closing ']'")
		}
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		list.Children = append(list.Children, child)
	}
	p.nextToken() // consume ]

	return list, nil
}
