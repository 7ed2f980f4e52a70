package compiler

import "tinyc/pkg/ast"

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar:
//
//	program = node*
//	node    = NUMBER | STRING | call
//	call    = "(" NAME node* ")"
//
// Error positions are indexes into the token slice, not source offsets.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) done() bool { return p.pos >= len(p.tokens) }

// peek returns the current token, or ErrUnexpectedEOF when none remain.
func (p *Parser) peek() (Token, error) {
	if p.done() {
		return Token{}, ErrUnexpectedEOF
	}
	return p.tokens[p.pos], nil
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *Parser) unexpected(tok Token) error {
	return &UnexpectedTokenError{Token: tok.Lexeme, Pos: p.pos}
}

// ParseProgram parses top-level nodes until the tokens are exhausted.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{Body: []ast.Child{}}
	for !p.done() {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, node)
	}
	return prog, nil
}

// parseNode dispatches on the current token.
func (p *Parser) parseNode() (ast.Child, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.Type == NUMBER:
		p.advance()
		return &ast.NumberLiteral{Value: tok.Lexeme}, nil
	case tok.Type == STRING:
		p.advance()
		return &ast.StringLiteral{Value: tok.Lexeme}, nil
	case tok.isOpen():
		return p.parseCall()
	default:
		return nil, p.unexpected(tok)
	}
}

// parseCall parses "(" NAME node* ")". The "(" must still be current.
// "()" is rejected: a name is always required.
func (p *Parser) parseCall() (*ast.CallExpression, error) {
	p.advance() // (

	name, err := p.peek()
	if err != nil {
		return nil, err
	}
	if name.Type != NAME {
		return nil, p.unexpected(name)
	}
	p.advance()

	call := &ast.CallExpression{Name: name.Lexeme, Params: []ast.Child{}}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.isClose() {
			p.advance()
			return call, nil
		}
		param, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		call.Params = append(call.Params, param)
	}
}

// Parse builds a Program from tokens.
func Parse(tokens []Token) (*ast.Program, error) {
	return NewParser(tokens).ParseProgram()
}
