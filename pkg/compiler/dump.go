package compiler

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"tinyc/pkg/ast"
	"tinyc/pkg/target"
)

var dumpOptions = protojson.MarshalOptions{Multiline: true, Indent: "  "}

// DumpAST renders a source tree as JSON, one object per node keyed by "type".
func DumpAST(n ast.Node) ([]byte, error) {
	return dump(astFields(n))
}

// DumpTarget renders a target tree as JSON in the same shape as DumpAST.
func DumpTarget(n target.Node) ([]byte, error) {
	return dump(targetFields(n))
}

func dump(fields map[string]any) ([]byte, error) {
	v, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("dump: %w", err)
	}
	return dumpOptions.Marshal(v)
}

func astFields(n ast.Node) map[string]any {
	m := map[string]any{"type": n.Type().String()}
	switch node := n.(type) {
	case *ast.Program:
		m["body"] = astList(node.Body)
	case *ast.NumberLiteral:
		m["value"] = node.Value
	case *ast.StringLiteral:
		m["value"] = node.Value
	case *ast.CallExpression:
		m["name"] = node.Name
		m["params"] = astList(node.Params)
	}
	return m
}

func astList(nodes []ast.Child) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = astFields(n)
	}
	return out
}

func targetFields(n target.Node) map[string]any {
	switch node := n.(type) {
	case *target.Program:
		body := make([]any, len(node.Body))
		for i, s := range node.Body {
			body[i] = targetFields(s)
		}
		return map[string]any{"type": "Program", "body": body}
	case *target.ExpressionStatement:
		return map[string]any{"type": "ExpressionStatement", "expression": targetFields(node.Expression)}
	case *target.CallExpression:
		args := make([]any, len(node.Arguments))
		for i, a := range node.Arguments {
			args[i] = targetFields(a)
		}
		return map[string]any{
			"type":      "CallExpression",
			"callee":    map[string]any{"type": "Identifier", "name": node.Callee.Name},
			"arguments": args,
		}
	case *target.NumberLiteral:
		return map[string]any{"type": "NumberLiteral", "value": node.Value}
	case *target.StringLiteral:
		return map[string]any{"type": "StringLiteral", "value": node.Value}
	}
	return map[string]any{"type": fmt.Sprintf("%T", n)}
}
