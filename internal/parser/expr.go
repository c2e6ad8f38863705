package parser

import (
	"strings"

	"pyfieldlint/internal/ast"
	"pyfieldlint/internal/diag"
	"pyfieldlint/internal/source"
	"pyfieldlint/internal/token"
)

// isExprTerminator reports whether the current token ends an expression
// at bracket depth zero.
func isExprTerminator(k token.Kind) bool {
	switch k {
	case token.Newline, token.EOF, token.Dedent,
		token.RParen, token.RBracket, token.RBrace,
		token.Comma, token.Colon, token.Semicolon,
		token.Assign, token.KwFor:
		return true
	default:
		return false
	}
}

// isBinaryOp reports whether the token continues a binary expression.
func isBinaryOp(k token.Kind) bool {
	switch k {
	case token.Plus, token.Minus, token.Star, token.DoubleStar,
		token.Slash, token.DoubleSlash, token.Percent, token.At,
		token.Amp, token.Pipe, token.Caret, token.Shl, token.Shr,
		token.Lt, token.Gt, token.LtEq, token.GtEq,
		token.EqEq, token.BangEq,
		token.KwAnd, token.KwOr, token.KwIn, token.KwIs, token.KwNot:
		return true
	default:
		return false
	}
}

// parseExpr parses one expression. Precedence is not modeled: any use of
// an operator, conditional, or lambda yields an Opaque node with the
// right span, which is all the field rules need.
func (p *Parser) parseExpr() ast.Expr {
	start := p.tok.Span
	e := p.parseBinary()

	// Conditional expression: `a if cond else b`.
	if p.tok.Kind == token.KwIf {
		p.skipExprTail()
		return &ast.Opaque{Sp: start.Cover(p.lastSpan)}
	}
	return e
}

// parseBinary parses a chain of unary operands joined by binary
// operators. A chain of more than one operand is Opaque.
func (p *Parser) parseBinary() ast.Expr {
	start := p.tok.Span
	e := p.parseUnary()
	opaque := false
	for isBinaryOp(p.tok.Kind) {
		opaque = true
		p.advance()
		// `is not` and `not in` are two-token operators.
		if p.tok.Kind == token.KwNot || p.tok.Kind == token.KwIn {
			p.advance()
		}
		p.parseUnary()
	}
	if opaque {
		return &ast.Opaque{Sp: start.Cover(p.lastSpan)}
	}
	return e
}

func (p *Parser) parseUnary() ast.Expr {
	start := p.tok.Span
	switch p.tok.Kind {
	case token.Plus, token.Minus, token.Tilde, token.KwNot, token.KwAwait, token.KwYield, token.Star, token.DoubleStar:
		p.advance()
		p.parseUnary()
		return &ast.Opaque{Sp: start.Cover(p.lastSpan)}
	case token.KwLambda:
		return p.parseLambda()
	default:
		return p.parsePostfix()
	}
}

// parseLambda skips `lambda params: body` as one opaque expression.
func (p *Parser) parseLambda() ast.Expr {
	start := p.tok.Span
	p.advance() // 'lambda'
	depth := 0
	for p.tok.Kind != token.EOF {
		if depth == 0 {
			if p.tok.Kind == token.Colon {
				p.advance()
				p.parseExpr()
				break
			}
			if isExprTerminator(p.tok.Kind) {
				break
			}
		}
		switch p.tok.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			if depth > 0 {
				depth--
			}
		}
		p.advance()
	}
	return &ast.Opaque{Sp: start.Cover(p.lastSpan)}
}

// parsePostfix parses an atom followed by attribute access, calls, and
// subscripts.
func (p *Parser) parsePostfix() ast.Expr {
	start := p.tok.Span
	e := p.parseAtom()
	for {
		switch p.tok.Kind {
		case token.Dot:
			if p.peek().Kind != token.Ident {
				p.advance()
				return &ast.Opaque{Sp: start.Cover(p.lastSpan)}
			}
			p.advance()
			attr := p.tok.Text
			p.advance()
			e = &ast.Attribute{Sp: start.Cover(p.lastSpan), Value: e, Attr: attr}

		case token.LParen:
			e = p.parseCall(e, start)

		case token.LBracket:
			p.skipBracketed()
			e = &ast.Subscript{Sp: start.Cover(p.lastSpan), Value: e}

		default:
			return e
		}
	}
}

func (p *Parser) parseAtom() ast.Expr {
	start := p.tok.Span
	switch p.tok.Kind {
	case token.Ident:
		id := p.tok.Text
		p.advance()
		return &ast.Name{Sp: start, ID: id}

	case token.KwNone:
		p.advance()
		return &ast.ConstLit{Sp: start, Kind: ast.ConstNone}
	case token.KwTrue:
		p.advance()
		return &ast.ConstLit{Sp: start, Kind: ast.ConstTrue}
	case token.KwFalse:
		p.advance()
		return &ast.ConstLit{Sp: start, Kind: ast.ConstFalse}
	case token.EllipsisLit:
		p.advance()
		return &ast.ConstLit{Sp: start, Kind: ast.ConstEllipsis}

	case token.IntLit, token.FloatLit:
		raw := p.tok.Text
		p.advance()
		return &ast.NumberLit{Sp: start, Raw: raw}

	case token.StringLit, token.FStringLit:
		return p.parseStringConcat()

	case token.LParen:
		return p.parseParenAtom()

	case token.LBracket:
		p.skipBracketed()
		return &ast.Collection{Sp: start.Cover(p.lastSpan), Kind: ast.CollectionList}

	case token.LBrace:
		p.skipBracketed()
		return &ast.Collection{Sp: start.Cover(p.lastSpan), Kind: ast.CollectionDictOrSet}

	default:
		if isExprTerminator(p.tok.Kind) {
			p.report(diag.SynUnexpectedToken, p.tok.Span, "expected an expression")
			return &ast.Opaque{Sp: start}
		}
		// Unknown shape: consume one token so the parser always makes
		// progress, then give up on the atom.
		p.advance()
		return &ast.Opaque{Sp: start.Cover(p.lastSpan)}
	}
}

// parseParenAtom handles `(...)`: a parenthesized expression unwraps, a
// tuple display becomes a Collection, a generator expression is Opaque.
func (p *Parser) parseParenAtom() ast.Expr {
	start := p.tok.Span
	p.advance() // '('

	if p.tok.Kind == token.RParen {
		p.advance()
		return &ast.Collection{Sp: start.Cover(p.lastSpan), Kind: ast.CollectionTuple}
	}

	inner := p.parseExpr()
	switch p.tok.Kind {
	case token.RParen:
		p.advance()
		return inner
	case token.Comma:
		p.skipBalancedTo(token.RParen)
		if p.tok.Kind == token.RParen {
			p.advance()
		}
		return &ast.Collection{Sp: start.Cover(p.lastSpan), Kind: ast.CollectionTuple}
	default:
		p.skipBalancedTo(token.RParen)
		if p.tok.Kind == token.RParen {
			p.advance()
		}
		return &ast.Opaque{Sp: start.Cover(p.lastSpan)}
	}
}

// parseCall parses the argument list of a call whose callee and opening
// span are already known. The current token is '('.
func (p *Parser) parseCall(fn ast.Expr, start source.Span) ast.Expr {
	p.advance() // '('
	call := &ast.Call{Func: fn}

	for p.tok.Kind != token.RParen && p.tok.Kind != token.EOF {
		switch {
		case p.tok.Kind == token.Comma:
			p.advance()
			continue

		case p.tok.Kind == token.DoubleStar:
			kwStart := p.tok.Span
			p.advance()
			val := p.parseExpr()
			call.Keywords = append(call.Keywords, ast.Keyword{
				Sp:    kwStart.Cover(p.lastSpan),
				Value: val,
			})

		case p.tok.Kind == token.Star:
			p.advance()
			call.Args = append(call.Args, p.parseExpr())

		case p.tok.Kind == token.Ident && p.peek().Kind == token.Assign:
			kwStart := p.tok.Span
			name := p.tok.Text
			p.advance()
			p.advance()
			val := p.parseExpr()
			call.Keywords = append(call.Keywords, ast.Keyword{
				Sp:    kwStart.Cover(p.lastSpan),
				Name:  name,
				Value: val,
			})

		default:
			argStart := p.tok.Span
			arg := p.parseExpr()
			if p.tok.Kind == token.KwFor {
				// Generator expression argument.
				p.skipBalancedTo(token.RParen)
				arg = &ast.Opaque{Sp: argStart.Cover(p.lastSpan)}
			}
			call.Args = append(call.Args, arg)
		}

		if p.tok.Kind != token.Comma && p.tok.Kind != token.RParen && p.tok.Kind != token.EOF {
			// Could not resync after an argument; skip to the closer.
			p.skipBalancedTo(token.RParen)
		}
	}

	if p.tok.Kind == token.RParen {
		p.advance()
	} else {
		p.report(diag.SynUnclosedBracket, start, "unclosed '(' in call")
	}
	call.Sp = start.Cover(p.lastSpan)
	return call
}

// parseStringConcat parses one or more adjacent string literals as a
// single StringLit.
func (p *Parser) parseStringConcat() ast.Expr {
	start := p.tok.Span
	var raw strings.Builder
	var value strings.Builder
	fstring := false

	for p.tok.Kind == token.StringLit || p.tok.Kind == token.FStringLit {
		if p.tok.Kind == token.FStringLit {
			fstring = true
		}
		raw.WriteString(p.tok.Text)
		value.WriteString(unquoteString(p.tok.Text))
		p.advance()
	}

	return &ast.StringLit{
		Sp:      start.Cover(p.lastSpan),
		Raw:     raw.String(),
		Value:   value.String(),
		FString: fstring,
	}
}

// skipBracketed consumes a balanced bracket group starting at the
// current opener, including nested brackets of any kind.
func (p *Parser) skipBracketed() {
	switch p.tok.Kind {
	case token.LParen, token.LBracket, token.LBrace:
	default:
		return
	}
	p.advance()
	depth := 1
	for depth > 0 && p.tok.Kind != token.EOF {
		switch p.tok.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		}
		p.advance()
	}
}

// skipExprTail consumes the rest of an expression up to a terminator at
// depth zero.
func (p *Parser) skipExprTail() {
	depth := 0
	for p.tok.Kind != token.EOF {
		if depth == 0 && isExprTerminator(p.tok.Kind) {
			return
		}
		switch p.tok.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			if depth > 0 {
				depth--
			}
		}
		p.advance()
	}
}

// unquoteString strips the prefix letters and quotes from a string
// literal's source text. Escape sequences are left verbatim.
func unquoteString(raw string) string {
	i := 0
	for i < len(raw) && raw[i] != '"' && raw[i] != '\'' {
		i++
	}
	if i >= len(raw) {
		return ""
	}
	body := raw[i:]
	q := body[0]
	if len(body) >= 6 && body[1] == q && body[2] == q {
		// triple-quoted
		if strings.HasSuffix(body[3:], string([]byte{q, q, q})) {
			return body[3 : len(body)-3]
		}
		return body[3:]
	}
	if len(body) >= 2 && body[len(body)-1] == q {
		return body[1 : len(body)-1]
	}
	// unterminated literal; keep what is there
	if len(body) >= 1 {
		return body[1:]
	}
	return ""
}
