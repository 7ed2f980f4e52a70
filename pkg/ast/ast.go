// Package ast declares the source tree built by the parser: a Program of
// number literals, string literals and nested call expressions.
package ast

import (
	"fmt"
	"strings"
)

// NodeType identifies the kind of a source node.
type NodeType int

const (
	ProgramNode NodeType = iota
	NumberLiteralNode
	StringLiteralNode
	CallExpressionNode
)

var nodeTypeNames = [...]string{
	ProgramNode:        "Program",
	NumberLiteralNode:  "NumberLiteral",
	StringLiteralNode:  "StringLiteral",
	CallExpressionNode: "CallExpression",
}

func (t NodeType) String() string {
	if int(t) >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// Node is implemented by every source node, Program included.
type Node interface {
	Type() NodeType
	String() string
}

// Child is a node that may appear in a Program body or as a call parameter.
// Program does not implement it, so a Program can never be nested.
type Child interface {
	Node
	childNode()
}

// Parent is a node that owns children: *Program or *CallExpression.
type Parent interface {
	Node
	parentNode()
}

// Program is the root of a parsed source file.
//
//	(add 1 2) 42
//	^^^^^^^^^ ^^  Program{Body: [CallExpression, NumberLiteral]}
type Program struct {
	Body []Child
}

func (*Program) Type() NodeType { return ProgramNode }
func (*Program) parentNode()    {}
func (p *Program) String() string {
	return fmt.Sprintf("Program(%s)", joinNodes(p.Body))
}

// NumberLiteral keeps the digits exactly as written.
type NumberLiteral struct {
	Value string
}

func (*NumberLiteral) Type() NodeType   { return NumberLiteralNode }
func (*NumberLiteral) childNode()       {}
func (n *NumberLiteral) String() string { return n.Value }

// StringLiteral holds the unescaped string content.
type StringLiteral struct {
	Value string
}

func (*StringLiteral) Type() NodeType   { return StringLiteralNode }
func (*StringLiteral) childNode()       {}
func (s *StringLiteral) String() string { return fmt.Sprintf("%q", s.Value) }

// CallExpression is a parenthesised call. Params keep source order.
//
//	(subtract 4 2)
//	 ^^^^^^^^ ^ ^
//	 |        Params
//	 Name
type CallExpression struct {
	Name   string
	Params []Child
}

func (*CallExpression) Type() NodeType { return CallExpressionNode }
func (*CallExpression) childNode()     {}
func (*CallExpression) parentNode()    {}
func (c *CallExpression) String() string {
	return fmt.Sprintf("CallExpression(%s, params=[%s])", c.Name, joinNodes(c.Params))
}

func joinNodes(nodes []Child) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}
