package compiler

import (
	"errors"
	"reflect"
	"testing"

	"tinyc/pkg/ast"
)

func num(v string) *ast.NumberLiteral { return &ast.NumberLiteral{Value: v} }
func str(v string) *ast.StringLiteral { return &ast.StringLiteral{Value: v} }
func call(name string, params ...ast.Child) *ast.CallExpression {
	if params == nil {
		params = []ast.Child{}
	}
	return &ast.CallExpression{Name: name, Params: params}
}

// TestParse verifies that Parse produces the correct AST for valid inputs.
func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []ast.Child
	}{
		{
			name:     "Empty",
			input:    "",
			expected: []ast.Child{},
		},
		{
			name:     "Number",
			input:    "2",
			expected: []ast.Child{num("2")},
		},
		{
			name:     "String",
			input:    `"hello"`,
			expected: []ast.Child{str("hello")},
		},
		{
			name:     "Call",
			input:    "(add 1 1)",
			expected: []ast.Child{call("add", num("1"), num("1"))},
		},
		{
			name:     "Nullary call",
			input:    "(func)",
			expected: []ast.Child{call("func")},
		},
		{
			name:  "Nested call",
			input: "(add 2 (subtract 4 2))",
			expected: []ast.Child{
				call("add", num("2"), call("subtract", num("4"), num("2"))),
			},
		},
		{
			name:  "Siblings",
			input: `(add 1 2) 42 "s"`,
			expected: []ast.Child{
				call("add", num("1"), num("2")),
				num("42"),
				str("s"),
			},
		},
		{
			name:  "Mixed params keep order",
			input: `(f "a" 1 (g) "b")`,
			expected: []ast.Child{
				call("f", str("a"), num("1"), call("g"), str("b")),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			if err != nil {
				t.Fatalf("Lex failed: %v", err)
			}
			prog, err := Parse(tokens)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if !reflect.DeepEqual(prog.Body, tt.expected) {
				t.Errorf("Parse(%q)\n got  %v\n want %v", tt.input, prog.Body, tt.expected)
			}
		})
	}
}

func TestParseFromTokens(t *testing.T) {
	tokens := []Token{
		{Type: PAREN, Lexeme: "("},
		{Type: NAME, Lexeme: "add"},
		{Type: NUMBER, Lexeme: "1"},
		{Type: STRING, Lexeme: "x"},
		{Type: PAREN, Lexeme: ")"},
	}
	prog, err := Parse(tokens)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := &ast.Program{Body: []ast.Child{call("add", num("1"), str("x"))}}
	if !reflect.DeepEqual(prog, want) {
		t.Errorf("got %v, want %v", prog, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantEOF bool
		token   string
		pos     int
	}{
		{name: "Missing close paren", input: "(add 1 2", wantEOF: true},
		{name: "Lone open paren", input: "(", wantEOF: true},
		{name: "Unclosed nested", input: "(add (sub 1)", wantEOF: true},
		{name: "Empty call", input: "()", token: ")", pos: 1},
		{name: "Stray close paren", input: ")", token: ")", pos: 0},
		{name: "Stray close after call", input: "(f) )", token: ")", pos: 3},
		{name: "Bare name", input: "add", token: "add", pos: 0},
		{name: "Name as param", input: "(add x)", token: "x", pos: 2},
		{name: "Number as callee", input: "(1 2)", token: "1", pos: 1},
		{name: "String as callee", input: `("f" 2)`, token: "f", pos: 1},
		{name: "Digit-led name", input: "(1add 2)", token: "1", pos: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			if err != nil {
				t.Fatalf("Lex failed: %v", err)
			}
			_, err = Parse(tokens)
			if tt.wantEOF {
				if !errors.Is(err, ErrUnexpectedEOF) {
					t.Fatalf("error = %v, want ErrUnexpectedEOF", err)
				}
				return
			}
			var ute *UnexpectedTokenError
			if !errors.As(err, &ute) {
				t.Fatalf("error = %v, want UnexpectedTokenError", err)
			}
			if ute.Token != tt.token || ute.Pos != tt.pos {
				t.Errorf("got token %q at %d, want %q at %d", ute.Token, ute.Pos, tt.token, tt.pos)
			}
		})
	}
}
