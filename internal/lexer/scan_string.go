package lexer

import (
	"strings"

	"pyfieldlint/internal/token"
)

// scanString scans a string or bytes literal. prefix holds an already
// consumed literal prefix ("", "r", "f", "rb", ...); the token span covers
// the prefix as well. The literal body is kept raw in Token.Text.
func (lx *Lexer) scanString(prefix string) token.Token {
	start := lx.cursor.Off - uint32(len(prefix))
	quote := lx.cursor.Bump() // '"' or '\''

	triple := false
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == quote && b1 == quote {
		lx.cursor.Bump()
		lx.cursor.Bump()
		triple = true
	} else if lx.cursor.Peek() == quote {
		// empty short string: "" or ''
		lx.cursor.Bump()
		return lx.stringToken(start, prefix)
	}

	terminated := false
scan:
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			// A backslash keeps the next character from terminating the
			// literal, in raw strings too.
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
		case b == quote:
			if !triple {
				lx.cursor.Bump()
				terminated = true
				break scan
			}
			if lx.try3(quote, quote, quote) {
				terminated = true
				break scan
			}
			lx.cursor.Bump()
		case b == '\n' && !triple:
			break scan
		default:
			lx.cursor.Bump()
		}
	}

	if !terminated {
		lx.report(KindUnterminatedString, lx.cursor.SpanFrom(start), "unterminated string literal")
	}
	return lx.stringToken(start, prefix)
}

func (lx *Lexer) stringToken(start uint32, prefix string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	kind := token.StringLit
	if strings.ContainsAny(prefix, "fF") {
		kind = token.FStringLit
	}
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
