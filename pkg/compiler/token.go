package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	PAREN  TokenType = iota // "(" or ")"
	NAME                    // function name: letters and underscores
	NUMBER                  // digits and decimal points, kept verbatim
	STRING                  // unescaped string content
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	PAREN:  "PAREN",
	NAME:   "NAME",
	NUMBER: "NUMBER",
	STRING: "STRING",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // exact source text; for STRING the unescaped content
}

func (t Token) String() string {
	return fmt.Sprintf("%-7s %q", t.Type, t.Lexeme)
}

// isOpen reports whether t is the "(" paren.
func (t Token) isOpen() bool { return t.Type == PAREN && t.Lexeme == "(" }

// isClose reports whether t is the ")" paren.
func (t Token) isClose() bool { return t.Type == PAREN && t.Lexeme == ")" }
