package lexer

import (
	"pyfieldlint/internal/source"
	"pyfieldlint/internal/token"
)

// tabStop is the column multiple a tab advances to when measuring
// indentation, matching CPython's tokenizer.
const tabStop = 8

// Lexer produces Python tokens, including the structural Newline, Indent,
// and Dedent tokens derived from layout.
type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	pending []token.Token  // queued structural tokens
	look    *token.Token   // one-token lookahead buffer
	hold    []token.Trivia // accumulated leading trivia

	indents      []uint32 // indentation stack; always starts with 0
	depth        int      // open bracket depth; layout is off inside brackets
	atLineStart  bool
	lineHadToken bool // a significant token was emitted on this logical line
	eofDone      bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		opts:        opts,
		indents:     []uint32{0},
		atLineStart: true,
	}
}

// Next returns the next significant token with its Leading trivia attached.
// After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		if len(lx.pending) > 0 {
			tok := lx.pending[0]
			lx.pending = lx.pending[1:]
			return tok
		}

		if lx.atLineStart && lx.depth == 0 {
			lx.scanLineStart()
			continue // pending may now hold Indent/Dedent tokens
		}

		lx.collectLeadingTrivia()

		if lx.cursor.EOF() {
			lx.finishEOF()
			continue
		}

		ch := lx.cursor.Peek()

		// Logical line terminator. Newlines inside brackets were already
		// swallowed as trivia.
		if ch == '\n' {
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			tok := token.Token{
				Kind: token.Newline,
				Span: lx.cursor.SpanFrom(start),
				Text: "\n",
			}
			tok.Leading = lx.takeHold()
			lx.atLineStart = true
			lx.lineHadToken = false
			return tok
		}

		var tok token.Token
		switch {
		case isIdentStartByte(ch) || ch >= utf8RuneSelf:
			tok = lx.scanIdentOrKeyword()

		case isDec(ch):
			tok = lx.scanNumber()

		case ch == '.' && lx.isNumberAfterDot():
			tok = lx.scanNumber()

		case ch == '"' || ch == '\'':
			tok = lx.scanString("")

		default:
			tok = lx.scanOperatorOrPunct()
		}

		tok.Leading = lx.takeHold()
		lx.lineHadToken = true
		return tok
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) takeHold() []token.Trivia {
	h := lx.hold
	lx.hold = nil
	return h
}

// scanLineStart measures indentation at the start of a logical line,
// skipping blank and comment-only lines, and queues Indent/Dedent tokens.
func (lx *Lexer) scanLineStart() {
	lx.atLineStart = false

	var width uint32
	for {
		start := lx.cursor.Mark()
		width = 0

	measure:
		for !lx.cursor.EOF() {
			switch lx.cursor.Peek() {
			case ' ':
				width++
				lx.cursor.Bump()
			case '\t':
				width = (width/tabStop + 1) * tabStop
				lx.cursor.Bump()
			case '\f':
				// formfeed resets the column count
				width = 0
				lx.cursor.Bump()
			default:
				break measure
			}
		}
		if sp := lx.cursor.SpanFrom(start); !sp.Empty() {
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
		}

		if lx.cursor.EOF() {
			return
		}

		switch lx.cursor.Peek() {
		case '#':
			lx.scanCommentIntoHold()
			continue // comment-only line carries no layout
		case '\n':
			start := lx.cursor.Mark()
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue // blank line carries no layout
		}
		break
	}

	here := lx.emptySpan()
	top := lx.indents[len(lx.indents)-1]
	switch {
	case width > top:
		lx.indents = append(lx.indents, width)
		lx.pending = append(lx.pending, token.Token{Kind: token.Indent, Span: here})
	case width < top:
		for len(lx.indents) > 1 && width < lx.indents[len(lx.indents)-1] {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.pending = append(lx.pending, token.Token{Kind: token.Dedent, Span: here})
		}
		if width != lx.indents[len(lx.indents)-1] {
			lx.report(KindInconsistentDedent, here, "unindent does not match any outer indentation level")
			lx.indents = append(lx.indents, width)
		}
	}
}

// finishEOF queues the synthetic trailing Newline, the closing Dedents, and
// the final EOF token.
func (lx *Lexer) finishEOF() {
	if lx.eofDone {
		lx.pending = append(lx.pending, token.Token{Kind: token.EOF, Span: lx.emptySpan()})
		return
	}
	lx.eofDone = true

	here := lx.emptySpan()
	if lx.lineHadToken {
		lx.pending = append(lx.pending, token.Token{Kind: token.Newline, Span: here})
		lx.lineHadToken = false
	}
	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.pending = append(lx.pending, token.Token{Kind: token.Dedent, Span: here})
	}
	eof := token.Token{Kind: token.EOF, Span: here}
	eof.Leading = lx.takeHold()
	lx.pending = append(lx.pending, eof)
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
