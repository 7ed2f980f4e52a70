package compiler

import (
	"fmt"

	"tinyc/pkg/ast"
	"tinyc/pkg/target"
)

// Transform maps a source Program onto the target tree. Each top-level node
// becomes an ExpressionStatement; call parameters become unwrapped arguments.
// It cannot fail on a Program produced by Parse.
func Transform(prog *ast.Program) *target.Program {
	out := &target.Program{Body: make([]*target.ExpressionStatement, 0, len(prog.Body))}
	for _, n := range prog.Body {
		out.Body = append(out.Body, &target.ExpressionStatement{Expression: transformExpr(n)})
	}
	return out
}

func transformExpr(n ast.Child) target.Expr {
	switch node := n.(type) {
	case *ast.NumberLiteral:
		return &target.NumberLiteral{Value: node.Value}
	case *ast.StringLiteral:
		return &target.StringLiteral{Value: node.Value}
	case *ast.CallExpression:
		args := make([]target.Expr, 0, len(node.Params))
		for _, param := range node.Params {
			args = append(args, transformExpr(param))
		}
		return &target.CallExpression{
			Callee:    target.Identifier{Name: node.Name},
			Arguments: args,
		}
	default:
		panic(fmt.Sprintf("compiler: cannot transform %T", n))
	}
}
