package lexer

import (
	"pyfieldlint/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant
// token, away from the start of a line:
//   - runs of ' ' and '\t' coalesce into one TriviaSpace
//   - '#...' up to (not including) '\n' becomes TriviaComment
//   - '\\' immediately followed by '\n' becomes TriviaLineContinuation
//   - inside brackets, '\n' runs coalesce into TriviaNewline
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '#' {
			lx.scanCommentIntoHold()
			continue
		}

		if b == '\\' {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '\\' && b1 == '\n' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(start)
				lx.hold = append(lx.hold, token.Trivia{
					Kind: token.TriviaLineContinuation,
					Span: sp,
					Text: "\\\n",
				})
				continue
			}
		}

		if b == '\n' && lx.depth > 0 {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		break
	}
}

// scanCommentIntoHold consumes '#' up to but not including the newline.
func (lx *Lexer) scanCommentIntoHold() {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: token.TriviaComment,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
