package compiler

import "unicode"

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src []rune
	pos int // index of the next rune to consume
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	return r
}

func (l *Lexer) done() bool { return l.pos >= len(l.src) }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isAlpha reports whether r has the Unicode Alphabetic property: letters,
// letter numbers such as Ⅻ, and other alphabetic marks such as U+0345.
func isAlpha(r rune) bool {
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}

// scanName collects a run of alphabetic characters and underscores.
// The first character must still be at l.peek().
func (l *Lexer) scanName() Token {
	start := l.pos
	for !l.done() {
		r := l.peek()
		if !isAlpha(r) && r != '_' {
			break
		}
		l.advance()
	}
	return Token{Type: NAME, Lexeme: string(l.src[start:l.pos])}
}

// scanNumber collects digits and decimal points. "1.2.3" is accepted as-is;
// numbers are opaque text to every later stage.
func (l *Lexer) scanNumber() Token {
	start := l.pos
	for !l.done() {
		r := l.peek()
		if !isDigit(r) && r != '.' {
			break
		}
		l.advance()
	}
	return Token{Type: NUMBER, Lexeme: string(l.src[start:l.pos])}
}

// scanString collects a string literal "...". Unknown escapes are kept
// as backslash plus the character.
func (l *Lexer) scanString() (Token, error) {
	l.advance() // consume opening "
	var val []rune

	for !l.done() {
		r := l.advance()
		if r == '"' {
			return Token{Type: STRING, Lexeme: string(val)}, nil
		}
		if r != '\\' {
			val = append(val, r)
			continue
		}
		if l.done() {
			return Token{}, ErrUnexpectedEOF
		}
		switch next := l.advance(); next {
		case 'n':
			val = append(val, '\n')
		case 't':
			val = append(val, '\t')
		case 'r':
			val = append(val, '\r')
		case '\\':
			val = append(val, '\\')
		case '"':
			val = append(val, '"')
		default:
			val = append(val, '\\', next)
		}
	}

	return Token{}, ErrUnexpectedEOF
}

// Lex tokenises src. Empty or whitespace-only input yields no tokens and no error.
// It returns a non-nil error on the first illegal character or unterminated string.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	tokens := []Token{}
	for !l.done() {
		ch := l.peek()
		switch {
		case unicode.IsSpace(ch):
			l.advance()
		case ch == '(' || ch == ')':
			l.advance()
			tokens = append(tokens, Token{Type: PAREN, Lexeme: string(ch)})
		case isAlpha(ch):
			tokens = append(tokens, l.scanName())
		case isDigit(ch):
			tokens = append(tokens, l.scanNumber())
		case ch == '"':
			tok, err := l.scanString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			return nil, &InvalidCharacterError{Char: ch, Pos: l.pos}
		}
	}
	return tokens, nil
}
