package compiler

import (
	"reflect"
	"testing"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"tinyc/pkg/ast"
)

func decodeDump(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var s structpb.Struct
	if err := protojson.Unmarshal(data, &s); err != nil {
		t.Fatalf("dump is not valid JSON: %v\n%s", err, data)
	}
	return s.AsMap()
}

func TestDumpAST(t *testing.T) {
	tokens, err := Lex(`(add 2 "x")`)
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	prog, err := Parse(tokens)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	data, err := DumpAST(prog)
	if err != nil {
		t.Fatalf("DumpAST failed: %v", err)
	}

	want := map[string]any{
		"type": "Program",
		"body": []any{
			map[string]any{
				"type": "CallExpression",
				"name": "add",
				"params": []any{
					map[string]any{"type": "NumberLiteral", "value": "2"},
					map[string]any{"type": "StringLiteral", "value": "x"},
				},
			},
		},
	}
	if got := decodeDump(t, data); !reflect.DeepEqual(got, want) {
		t.Errorf("DumpAST\n got  %v\n want %v", got, want)
	}
}

func TestDumpTarget(t *testing.T) {
	data, err := DumpTarget(Transform(&ast.Program{Body: []ast.Child{call("f", num("1"))}}))
	if err != nil {
		t.Fatalf("DumpTarget failed: %v", err)
	}

	want := map[string]any{
		"type": "Program",
		"body": []any{
			map[string]any{
				"type": "ExpressionStatement",
				"expression": map[string]any{
					"type":   "CallExpression",
					"callee": map[string]any{"type": "Identifier", "name": "f"},
					"arguments": []any{
						map[string]any{"type": "NumberLiteral", "value": "1"},
					},
				},
			},
		},
	}
	if got := decodeDump(t, data); !reflect.DeepEqual(got, want) {
		t.Errorf("DumpTarget\n got  %v\n want %v", got, want)
	}
}

func TestDumpEmptyProgram(t *testing.T) {
	prog, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	data, err := DumpAST(prog)
	if err != nil {
		t.Fatalf("DumpAST failed: %v", err)
	}
	want := map[string]any{"type": "Program", "body": []any{}}
	if got := decodeDump(t, data); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
