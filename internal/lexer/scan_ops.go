package lexer

import (
	"fmt"

	"pyfieldlint/internal/token"
)

// scanOperatorOrPunct scans operators and delimiters, tracking bracket
// depth so the layout machinery knows when newlines are insignificant.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	mk := func(kind token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: kind,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch ch {
	case '(':
		lx.cursor.Bump()
		lx.depth++
		return mk(token.LParen)
	case '[':
		lx.cursor.Bump()
		lx.depth++
		return mk(token.LBracket)
	case '{':
		lx.cursor.Bump()
		lx.depth++
		return mk(token.LBrace)
	case ')':
		lx.cursor.Bump()
		lx.closeBracket()
		return mk(token.RParen)
	case ']':
		lx.cursor.Bump()
		lx.closeBracket()
		return mk(token.RBracket)
	case '}':
		lx.cursor.Bump()
		lx.closeBracket()
		return mk(token.RBrace)

	case ',':
		lx.cursor.Bump()
		return mk(token.Comma)
	case ';':
		lx.cursor.Bump()
		return mk(token.Semicolon)
	case '~':
		lx.cursor.Bump()
		return mk(token.Tilde)

	case ':':
		if lx.try2(':', '=') {
			return mk(token.Walrus)
		}
		lx.cursor.Bump()
		return mk(token.Colon)

	case '.':
		if lx.try3('.', '.', '.') {
			return mk(token.EllipsisLit)
		}
		lx.cursor.Bump()
		return mk(token.Dot)

	case '=':
		if lx.try2('=', '=') {
			return mk(token.EqEq)
		}
		lx.cursor.Bump()
		return mk(token.Assign)

	case '!':
		if lx.try2('!', '=') {
			return mk(token.BangEq)
		}
		lx.cursor.Bump()
		return mk(token.Bang)

	case '<':
		if lx.try3('<', '<', '=') {
			return mk(token.AugAssign)
		}
		if lx.try2('<', '<') {
			return mk(token.Shl)
		}
		if lx.try2('<', '=') {
			return mk(token.LtEq)
		}
		lx.cursor.Bump()
		return mk(token.Lt)

	case '>':
		if lx.try3('>', '>', '=') {
			return mk(token.AugAssign)
		}
		if lx.try2('>', '>') {
			return mk(token.Shr)
		}
		if lx.try2('>', '=') {
			return mk(token.GtEq)
		}
		lx.cursor.Bump()
		return mk(token.Gt)

	case '+':
		if lx.try2('+', '=') {
			return mk(token.AugAssign)
		}
		lx.cursor.Bump()
		return mk(token.Plus)

	case '-':
		if lx.try2('-', '=') {
			return mk(token.AugAssign)
		}
		if lx.try2('-', '>') {
			return mk(token.Arrow)
		}
		lx.cursor.Bump()
		return mk(token.Minus)

	case '*':
		if lx.try3('*', '*', '=') {
			return mk(token.AugAssign)
		}
		if lx.try2('*', '*') {
			return mk(token.DoubleStar)
		}
		if lx.try2('*', '=') {
			return mk(token.AugAssign)
		}
		lx.cursor.Bump()
		return mk(token.Star)

	case '/':
		if lx.try3('/', '/', '=') {
			return mk(token.AugAssign)
		}
		if lx.try2('/', '/') {
			return mk(token.DoubleSlash)
		}
		if lx.try2('/', '=') {
			return mk(token.AugAssign)
		}
		lx.cursor.Bump()
		return mk(token.Slash)

	case '%':
		if lx.try2('%', '=') {
			return mk(token.AugAssign)
		}
		lx.cursor.Bump()
		return mk(token.Percent)

	case '@':
		if lx.try2('@', '=') {
			return mk(token.AugAssign)
		}
		lx.cursor.Bump()
		return mk(token.At)

	case '&':
		if lx.try2('&', '=') {
			return mk(token.AugAssign)
		}
		lx.cursor.Bump()
		return mk(token.Amp)

	case '|':
		if lx.try2('|', '=') {
			return mk(token.AugAssign)
		}
		lx.cursor.Bump()
		return mk(token.Pipe)

	case '^':
		if lx.try2('^', '=') {
			return mk(token.AugAssign)
		}
		lx.cursor.Bump()
		return mk(token.Caret)
	}

	// Unknown character: consume one rune, report, keep going.
	r, _ := lx.peekRune()
	lx.bumpRune()
	tok := mk(token.Invalid)
	lx.report(KindUnknownChar, tok.Span, fmt.Sprintf("unknown character %q", r))
	return tok
}

func (lx *Lexer) closeBracket() {
	if lx.depth > 0 {
		lx.depth--
	}
}
