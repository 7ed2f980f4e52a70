// Package target declares the tree the code generator renders: C-like
// calls wrapped in expression statements.
package target

import (
	"fmt"
	"strings"
)

// Node is implemented by every target node.
type Node interface {
	String() string
	targetNode()
}

// Expr is a node that may be a statement's expression or a call argument.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of the target tree. Every top-level element is an
// ExpressionStatement.
type Program struct {
	Body []*ExpressionStatement
}

func (*Program) targetNode() {}
func (p *Program) String() string {
	parts := make([]string, len(p.Body))
	for i, s := range p.Body {
		parts[i] = s.String()
	}
	return fmt.Sprintf("Program(%s)", strings.Join(parts, " "))
}

// ExpressionStatement marks a top-level expression as a statement.
type ExpressionStatement struct {
	Expression Expr
}

func (*ExpressionStatement) targetNode() {}
func (s *ExpressionStatement) String() string {
	return fmt.Sprintf("ExpressionStatement(%v)", s.Expression)
}

// Identifier names a callee.
type Identifier struct {
	Name string
}

// CallExpression is callee(arguments...).
type CallExpression struct {
	Callee    Identifier
	Arguments []Expr
}

func (*CallExpression) targetNode() {}
func (*CallExpression) exprNode()   {}
func (c *CallExpression) String() string {
	return fmt.Sprintf("CallExpression(%s, args=%v)", c.Callee.Name, c.Arguments)
}

// NumberLiteral is rendered verbatim.
type NumberLiteral struct {
	Value string
}

func (*NumberLiteral) targetNode()      {}
func (*NumberLiteral) exprNode()        {}
func (n *NumberLiteral) String() string { return n.Value }

// StringLiteral is rendered between double quotes without re-escaping.
type StringLiteral struct {
	Value string
}

func (*StringLiteral) targetNode()      {}
func (*StringLiteral) exprNode()        {}
func (s *StringLiteral) String() string { return fmt.Sprintf("%q", s.Value) }
