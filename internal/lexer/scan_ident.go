package lexer

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"pyfieldlint/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies it via
// LookupKeyword. When the identifier turns out to be a string prefix
// (r, b, u, f and two-letter combinations) directly followed by a quote,
// the whole thing is rescanned as one string token.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}

	ascii := true
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		ascii = false
		lx.bumpRune()
	}

	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		ascii = false
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// String literal prefix: "r'...'", 'f"..."', "rb'...'", etc.
	if b := lx.cursor.Peek(); (b == '"' || b == '\'') && isStringPrefix(text) {
		return lx.scanString(text)
	}

	if !ascii {
		// Python identifiers compare NFKC-normalized.
		text = norm.NFKC.String(text)
	}

	if k := token.LookupKeyword(text); k != token.Ident {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// isStringPrefix reports whether s is a valid Python string literal prefix.
func isStringPrefix(s string) bool {
	if len(s) == 0 || len(s) > 2 {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune("rbufRBUF", c) {
			return false
		}
	}
	return true
}
