// Package compiler translates s-expression calls into C-like call syntax.
//
// Pipeline: source → Lex → Parse → Transform → Generate → target text
//
//	(add 2 (subtract 4 2))  →  add(2, subtract(4, 2));
package compiler
