// Package parser turns the token stream into the Python-subset AST.
//
// The parser is deliberately tolerant: it fully understands class
// definitions, decorators, function headers, and assignments, and treats
// every other statement shape as ast.Other with an exact span. Function
// bodies are skipped wholesale. A malformed construct degrades to Other
// and parsing resumes at the next logical line; the parser never fails.
package parser

import (
	"pyfieldlint/internal/ast"
	"pyfieldlint/internal/lexer"
	"pyfieldlint/internal/source"
	"pyfieldlint/internal/token"
)

// Parser consumes tokens from a lexer and builds an ast.Module.
type Parser struct {
	lx       *lexer.Lexer
	tok      token.Token
	lastSpan source.Span
	opts     Options
	errs     uint
}

// Parse lexes and parses one file into a module. It never returns an
// error: faults become diagnostics via opts.Reporter and Other nodes in
// the tree.
func Parse(file *source.File, lx *lexer.Lexer, opts Options) *ast.Module {
	p := &Parser{
		lx:   lx,
		opts: opts,
	}
	p.advance()
	return &ast.Module{
		File: file.ID,
		Body: p.parseStmts(),
	}
}

func (p *Parser) advance() {
	p.lastSpan = p.tok.Span
	p.tok = p.lx.Next()
}

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

// parseStmts parses statements until a Dedent or EOF. The terminating
// Dedent is left for the caller.
func (p *Parser) parseStmts() []ast.Stmt {
	var stmts []ast.Stmt
	for {
		switch p.tok.Kind {
		case token.EOF, token.Dedent:
			return stmts

		case token.Newline, token.Semicolon:
			p.advance()

		case token.Indent:
			// Unexpected indentation: swallow the whole block as one
			// opaque statement.
			start := p.tok.Span
			p.advance()
			p.skipIndentedTail(1)
			stmts = append(stmts, &ast.Other{Sp: start.Cover(p.lastSpan)})

		case token.At:
			stmts = append(stmts, p.parseDecorated())

		case token.KwClass:
			stmts = append(stmts, p.parseClass(nil, p.tok.Span))

		case token.KwDef:
			stmts = append(stmts, p.parseFunc(nil, false, p.tok.Span))

		case token.KwAsync:
			if p.peek().Kind == token.KwDef {
				start := p.tok.Span
				p.advance()
				stmts = append(stmts, p.parseFunc(nil, true, start))
			} else {
				stmts = append(stmts, p.skipCompound())
			}

		case token.KwIf, token.KwFor, token.KwWhile, token.KwWith, token.KwTry:
			stmts = append(stmts, p.skipCompound())

		default:
			stmts = append(stmts, p.parseSimple()...)
		}
	}
}

// parseSimple parses one simple-statement line: an annotated assignment,
// a plain assignment, or anything else as Other. It consumes the line's
// terminating Newline.
func (p *Parser) parseSimple() []ast.Stmt {
	if p.tok.Kind == token.Ident && p.peek().Kind == token.Colon {
		return p.parseAnnAssign()
	}
	return []ast.Stmt{p.classifyLine()}
}

// parseAnnAssign parses `name: annotation [= value]`.
func (p *Parser) parseAnnAssign() []ast.Stmt {
	start := p.tok.Span
	name := p.tok.Text
	nameSpan := p.tok.Span
	p.advance() // name
	p.advance() // ':'

	annotation := p.parseExpr()
	var value ast.Expr
	if p.tok.Kind == token.Assign {
		p.advance()
		value = p.parseExpr()
	}

	stmt := &ast.AnnAssign{
		Sp:         start.Cover(p.lastSpan),
		Name:       name,
		NameSpan:   nameSpan,
		Annotation: annotation,
		Value:      value,
	}

	switch p.tok.Kind {
	case token.Newline:
		p.advance()
		return []ast.Stmt{stmt}
	case token.Dedent, token.EOF:
		return []ast.Stmt{stmt}
	case token.Semicolon:
		// The tail after ';' is a separate statement we do not model.
		p.advance()
		tail := p.classifyLine()
		return []ast.Stmt{stmt, tail}
	default:
		// The line did not end where an annotated assignment should:
		// treat the whole line as unmodeled rather than guessing.
		p.skipToLineEnd()
		return []ast.Stmt{&ast.Other{Sp: start.Cover(p.lastSpan)}}
	}
}

// classifyLine consumes one logical line and classifies it as a plain
// assignment (a top-level '=' outside brackets) or Other.
func (p *Parser) classifyLine() ast.Stmt {
	start := p.tok.Span
	sawAssign := false
	depth := 0

	for p.tok.Kind != token.Newline && p.tok.Kind != token.EOF && p.tok.Kind != token.Dedent {
		switch p.tok.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			if depth > 0 {
				depth--
			}
		case token.Assign:
			if depth == 0 {
				sawAssign = true
			}
		}
		p.advance()
	}
	if p.tok.Kind == token.Newline {
		p.advance()
	}

	sp := start.Cover(p.lastSpan)
	if sawAssign {
		return &ast.Assign{Sp: sp}
	}
	return &ast.Other{Sp: sp}
}

// parseInlineSuite parses the simple statements that follow a header
// colon on the same line (`class C: x: int = 1; y: int = 2`). It
// consumes the terminating Newline.
func (p *Parser) parseInlineSuite() []ast.Stmt {
	var stmts []ast.Stmt
	for {
		switch p.tok.Kind {
		case token.Newline:
			p.advance()
			return stmts
		case token.EOF, token.Dedent:
			return stmts
		case token.Semicolon:
			p.advance()
		default:
			stmts = append(stmts, p.parseInlineSimple())
		}
	}
}

// parseInlineSimple parses one semicolon-separated segment of an inline
// suite, stopping before the segment terminator.
func (p *Parser) parseInlineSimple() ast.Stmt {
	if p.tok.Kind == token.Ident && p.peek().Kind == token.Colon {
		start := p.tok.Span
		name := p.tok.Text
		nameSpan := p.tok.Span
		p.advance()
		p.advance()
		annotation := p.parseExpr()
		var value ast.Expr
		if p.tok.Kind == token.Assign {
			p.advance()
			value = p.parseExpr()
		}
		switch p.tok.Kind {
		case token.Newline, token.EOF, token.Dedent, token.Semicolon:
			return &ast.AnnAssign{
				Sp:         start.Cover(p.lastSpan),
				Name:       name,
				NameSpan:   nameSpan,
				Annotation: annotation,
				Value:      value,
			}
		}
		p.skipSegment()
		return &ast.Other{Sp: start.Cover(p.lastSpan)}
	}

	start := p.tok.Span
	sawAssign := p.skipSegment()
	sp := start.Cover(p.lastSpan)
	if sawAssign {
		return &ast.Assign{Sp: sp}
	}
	return &ast.Other{Sp: sp}
}

// skipSegment consumes tokens up to the next segment terminator without
// consuming it, reporting whether a top-level '=' was seen.
func (p *Parser) skipSegment() bool {
	sawAssign := false
	depth := 0
	for {
		switch p.tok.Kind {
		case token.Newline, token.EOF, token.Dedent, token.Semicolon:
			return sawAssign
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			if depth > 0 {
				depth--
			}
		case token.Assign:
			if depth == 0 {
				sawAssign = true
			}
		}
		p.advance()
	}
}

// skipToLineEnd consumes tokens up to and including the next Newline.
// Dedent and EOF are left for the caller.
func (p *Parser) skipToLineEnd() {
	for p.tok.Kind != token.Newline && p.tok.Kind != token.EOF && p.tok.Kind != token.Dedent {
		p.advance()
	}
	if p.tok.Kind == token.Newline {
		p.advance()
	}
}

// skipIndentedTail consumes tokens until the indentation depth returns to
// zero, consuming the final Dedent.
func (p *Parser) skipIndentedTail(depth int) {
	for depth > 0 && p.tok.Kind != token.EOF {
		switch p.tok.Kind {
		case token.Indent:
			depth++
		case token.Dedent:
			depth--
		}
		p.advance()
	}
}

// skipSuiteBlock skips the suite that follows a compound-statement colon:
// either an indented block or the remainder of the current line.
func (p *Parser) skipSuiteBlock() {
	if p.tok.Kind != token.Newline {
		p.skipToLineEnd()
		return
	}
	p.advance()
	if p.tok.Kind != token.Indent {
		return
	}
	p.advance()
	p.skipIndentedTail(1)
}

// skipCompound skips an entire compound statement (if/for/while/with/try
// and any chained elif/else/except/finally clauses) as one Other node.
func (p *Parser) skipCompound() ast.Stmt {
	start := p.tok.Span
	p.skipHeaderAndSuite()
	for {
		switch p.tok.Kind {
		case token.KwElif, token.KwElse, token.KwExcept, token.KwFinally:
			p.skipHeaderAndSuite()
		default:
			return &ast.Other{Sp: start.Cover(p.lastSpan)}
		}
	}
}

// skipHeaderAndSuite consumes up to the header colon (outside brackets),
// then the suite. A header without a colon degrades to line skipping.
func (p *Parser) skipHeaderAndSuite() {
	depth := 0
	for {
		switch p.tok.Kind {
		case token.EOF, token.Dedent:
			return
		case token.Newline:
			// malformed header; give up on this line
			p.advance()
			return
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			if depth > 0 {
				depth--
			}
		case token.Colon:
			if depth == 0 {
				p.advance()
				p.skipSuiteBlock()
				return
			}
		}
		p.advance()
	}
}
