package parser

import (
	"pyfieldlint/internal/ast"
	"pyfieldlint/internal/diag"
	"pyfieldlint/internal/source"
	"pyfieldlint/internal/token"
)

// parseDecorated parses a run of decorators followed by a class or
// function definition. Decorators over anything else collapse into an
// Other statement.
func (p *Parser) parseDecorated() ast.Stmt {
	start := p.tok.Span
	var decorators []ast.Expr

	for p.tok.Kind == token.At {
		p.advance() // '@'
		dec := p.parseExpr()
		decorators = append(decorators, dec)
		if p.tok.Kind == token.Newline {
			p.advance()
		} else if p.tok.Kind != token.KwClass && p.tok.Kind != token.KwDef && p.tok.Kind != token.KwAsync {
			p.report(diag.SynBadDecorator, p.tok.Span, "expected newline after decorator")
			p.skipToLineEnd()
		}
		// Blank lines between decorators show up as extra Newlines.
		for p.tok.Kind == token.Newline {
			p.advance()
		}
	}

	switch p.tok.Kind {
	case token.KwClass:
		return p.parseClass(decorators, start)
	case token.KwDef:
		return p.parseFunc(decorators, false, start)
	case token.KwAsync:
		if p.peek().Kind == token.KwDef {
			p.advance()
			return p.parseFunc(decorators, true, start)
		}
	}

	p.report(diag.SynBadDecorator, p.tok.Span, "decorator is not followed by a class or function definition")
	p.skipToLineEnd()
	return &ast.Other{Sp: start.Cover(p.lastSpan)}
}

// parseClass parses `class Name(bases, kw=...): suite`. start is the span
// of the first decorator when the class is decorated.
func (p *Parser) parseClass(decorators []ast.Expr, start source.Span) ast.Stmt {
	p.advance() // 'class'

	if p.tok.Kind != token.Ident {
		p.report(diag.SynBadClassHeader, p.tok.Span, "expected class name")
		p.skipToLineEnd()
		return &ast.Other{Sp: start.Cover(p.lastSpan)}
	}

	cls := &ast.ClassDef{
		Name:       p.tok.Text,
		NameSpan:   p.tok.Span,
		Decorators: decorators,
	}
	p.advance()

	if p.tok.Kind == token.LParen {
		p.parseClassBases(cls)
	}

	if p.tok.Kind != token.Colon {
		p.report(diag.SynBadClassHeader, p.tok.Span, "expected ':' in class header")
		p.skipToLineEnd()
		return &ast.Other{Sp: start.Cover(p.lastSpan)}
	}
	cls.Sp = start.Cover(p.tok.Span)
	p.advance() // ':'

	cls.Body = p.parseSuite()
	return cls
}

// parseClassBases parses the parenthesized base list: positional bases
// and header keywords such as metaclass=. Malformed entries become
// Opaque bases so the class still classifies.
func (p *Parser) parseClassBases(cls *ast.ClassDef) {
	p.advance() // '('
	for p.tok.Kind != token.RParen && p.tok.Kind != token.EOF {
		if p.tok.Kind == token.Comma {
			p.advance()
			continue
		}
		if p.tok.Kind == token.DoubleStar {
			// **kwargs in a class header; skip its value.
			p.advance()
			p.parseExpr()
			continue
		}
		if p.tok.Kind == token.Ident && p.peek().Kind == token.Assign {
			kwStart := p.tok.Span
			name := p.tok.Text
			p.advance()
			p.advance()
			val := p.parseExpr()
			cls.Keywords = append(cls.Keywords, ast.Keyword{
				Sp:    kwStart.Cover(p.lastSpan),
				Name:  name,
				Value: val,
			})
			continue
		}
		cls.Bases = append(cls.Bases, p.parseExpr())
		if p.tok.Kind != token.Comma && p.tok.Kind != token.RParen {
			// Something we cannot make sense of; bail to ')'.
			p.skipBalancedTo(token.RParen)
			break
		}
	}
	if p.tok.Kind == token.RParen {
		p.advance()
	}
}

// parseSuite parses an indented block, or an inline suite on the header
// line (`class C: pass`).
func (p *Parser) parseSuite() []ast.Stmt {
	if p.tok.Kind != token.Newline {
		return p.parseInlineSuite()
	}

	p.advance() // Newline
	if p.tok.Kind != token.Indent {
		// Empty suite. Real Python rejects this; we tolerate it.
		return nil
	}
	p.advance() // Indent

	stmts := p.parseStmts()
	if p.tok.Kind == token.Dedent {
		p.advance()
	}
	return stmts
}

// parseFunc parses a def header and skips the body. start covers the
// first decorator when decorated; async defs have 'async' consumed by
// the caller.
func (p *Parser) parseFunc(decorators []ast.Expr, async bool, start source.Span) ast.Stmt {
	p.advance() // 'def'

	fn := &ast.FuncDef{
		Async:      async,
		Decorators: decorators,
	}
	if p.tok.Kind == token.Ident {
		fn.Name = p.tok.Text
		p.advance()
	}

	// Parameter list, return annotation, colon: all skipped with bracket
	// awareness. The colon that ends the header is the first one at
	// depth zero.
	depth := 0
header:
	for {
		switch p.tok.Kind {
		case token.EOF, token.Dedent:
			fn.Sp = start.Cover(p.lastSpan)
			return fn
		case token.Newline:
			p.advance()
			fn.Sp = start.Cover(p.lastSpan)
			return fn
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			if depth > 0 {
				depth--
			}
		case token.Colon:
			if depth == 0 {
				fn.Sp = start.Cover(p.tok.Span)
				p.advance()
				break header
			}
		}
		p.advance()
	}

	p.skipSuiteBlock()
	return fn
}

// skipBalancedTo consumes tokens until the given closer at depth zero,
// leaving the closer current.
func (p *Parser) skipBalancedTo(closer token.Kind) {
	depth := 0
	for p.tok.Kind != token.EOF {
		switch p.tok.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			if depth == 0 && p.tok.Kind == closer {
				return
			}
			if depth > 0 {
				depth--
			}
		}
		p.advance()
	}
}
