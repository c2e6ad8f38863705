package lexer

import (
	"pyfieldlint/internal/token"
)

// scanNumber scans integer, float, and imaginary literals, including the
// 0x/0o/0b radix prefixes and '_' digit separators.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok {
			switch b1 {
			case 'x', 'X':
				lx.cursor.Bump()
				lx.cursor.Bump()
				if !lx.scanDigits(isHex) {
					lx.report(KindBadNumber, lx.cursor.SpanFrom(start), "hex literal has no digits")
				}
				return lx.numberToken(start, token.IntLit)
			case 'o', 'O':
				lx.cursor.Bump()
				lx.cursor.Bump()
				if !lx.scanDigits(func(b byte) bool { return b >= '0' && b <= '7' }) {
					lx.report(KindBadNumber, lx.cursor.SpanFrom(start), "octal literal has no digits")
				}
				return lx.numberToken(start, token.IntLit)
			case 'b', 'B':
				lx.cursor.Bump()
				lx.cursor.Bump()
				if !lx.scanDigits(func(b byte) bool { return b == '0' || b == '1' }) {
					lx.report(KindBadNumber, lx.cursor.SpanFrom(start), "binary literal has no digits")
				}
				return lx.numberToken(start, token.IntLit)
			}
		}
	}

	lx.scanDigits(isDec)

	// fraction
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		lx.scanDigits(isDec)
		kind = token.FloatLit
	} else if lx.cursor.Peek() == '.' {
		// "1." is a float unless the dot starts an attribute or ellipsis
		next := lx.cursor.PeekAt(1)
		if !isIdentStartByte(next) && next != '.' {
			lx.cursor.Bump()
			kind = token.FloatLit
		}
	}

	// exponent
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		if _, b1, ok := lx.cursor.Peek2(); ok && (isDec(b1) || b1 == '+' || b1 == '-') {
			lx.cursor.Bump()
			if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
				lx.cursor.Bump()
			}
			if !lx.scanDigits(isDec) {
				lx.report(KindBadNumber, lx.cursor.SpanFrom(start), "exponent has no digits")
			}
			kind = token.FloatLit
		}
	}

	// imaginary suffix
	if b := lx.cursor.Peek(); b == 'j' || b == 'J' {
		lx.cursor.Bump()
		kind = token.FloatLit
	}

	return lx.numberToken(start, kind)
}

// scanDigits consumes digits accepted by ok, allowing '_' separators.
// It reports whether at least one digit was consumed.
func (lx *Lexer) scanDigits(ok func(byte) bool) bool {
	seen := false
	for {
		b := lx.cursor.Peek()
		if ok(b) {
			seen = true
			lx.cursor.Bump()
			continue
		}
		if b == '_' {
			if _, b1, has := lx.cursor.Peek2(); has && ok(b1) {
				lx.cursor.Bump()
				continue
			}
		}
		return seen
	}
}

func (lx *Lexer) numberToken(start uint32, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
