package compiler

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is returned when input ends while a call or string is still open.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// InvalidCharacterError reports a character the lexer has no rule for.
// Pos is the zero-based character (rune) offset into the source.
type InvalidCharacterError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character: '%c' at position %d", e.Char, e.Pos)
}

// UnexpectedTokenError reports a token that cannot begin or continue the
// current production. Pos is an index into the token slice.
type UnexpectedTokenError struct {
	Token string
	Pos   int
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token: %s at position %d", e.Token, e.Pos)
}

// Stage names a pipeline stage for StageError.
type Stage int

const (
	StageTokenizer Stage = iota
	StageParser
	StageTransformer
	StageCodegen
)

var stageNames = [...]string{
	StageTokenizer:   "tokenizer",
	StageParser:      "parser",
	StageTransformer: "transformer",
	StageCodegen:     "code generation",
}

func (s Stage) String() string {
	if int(s) >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// StageError is a free-form failure attributed to one pipeline stage.
// None of the current stages produce it; Generate returns it for a nil or
// unknown node.
type StageError struct {
	Stage   Stage
	Message string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Stage, e.Message)
}
