package compiler

import (
	"fmt"
	"strings"

	"tinyc/pkg/target"
)

// CodeGen walks a target tree and emits C-like call syntax.
type CodeGen struct {
	out strings.Builder
}

func newCodeGen() *CodeGen {
	return &CodeGen{}
}

func nilNode(n target.Node) error {
	return &StageError{Stage: StageCodegen, Message: fmt.Sprintf("nil %T", n)}
}

func (cg *CodeGen) gen(n target.Node) error {
	switch node := n.(type) {
	case *target.Program:
		if node == nil {
			return nilNode(n)
		}
		for _, s := range node.Body {
			if err := cg.gen(s); err != nil {
				return err
			}
		}
	case *target.ExpressionStatement:
		if node == nil {
			return nilNode(n)
		}
		if err := cg.gen(node.Expression); err != nil {
			return err
		}
		cg.out.WriteByte(';')
	case *target.CallExpression:
		if node == nil {
			return nilNode(n)
		}
		cg.out.WriteString(node.Callee.Name)
		cg.out.WriteByte('(')
		for i, arg := range node.Arguments {
			if i > 0 {
				cg.out.WriteString(", ")
			}
			if err := cg.gen(arg); err != nil {
				return err
			}
		}
		cg.out.WriteByte(')')
	case *target.NumberLiteral:
		if node == nil {
			return nilNode(n)
		}
		cg.out.WriteString(node.Value)
	case *target.StringLiteral:
		if node == nil {
			return nilNode(n)
		}
		// content is emitted raw; control characters produced by the lexer's
		// escape handling are not re-escaped
		cg.out.WriteByte('"')
		cg.out.WriteString(node.Value)
		cg.out.WriteByte('"')
	default:
		return &StageError{Stage: StageCodegen, Message: fmt.Sprintf("cannot render %T", n)}
	}
	return nil
}

// Generate renders any target node. An empty Program renders as ""; a nil
// node anywhere in the tree is a codegen StageError.
func Generate(n target.Node) (string, error) {
	cg := newCodeGen()
	if err := cg.gen(n); err != nil {
		return "", err
	}
	return cg.out.String(), nil
}
